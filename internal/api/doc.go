// Package api provides a client for the Moscow Exchange ISS REST API.
//
// REST endpoint:
//   - http://iss.moex.com/iss
//
// ISS responses group data into named sections ("securities", "marketdata").
// With iss.meta=off each section is an object holding a "columns" array of
// column names and a "data" array of rows aligned positionally to "columns".
package api
