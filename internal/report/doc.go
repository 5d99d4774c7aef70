// Package report renders ISS tables as the two quote reports.
//
// Every report follows the same steps: fetch one section, decode it,
// resolve the report's columns by name, then print one line per row.
// Output is buffered until all steps succeed, so a failed report prints
// nothing.
package report
