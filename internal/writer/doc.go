// Package writer implements the optional quote sinks.
//
// Writers:
//   - Archive writer (TimescaleDB iss_quotes table)
//   - Publisher (Kafka topic, one message per quote keyed by SECID)
//
// All writers use append-only semantics (never update, only insert).
// Prices are stored as NUMERIC and stay NULL when ISS sent no number.
package writer
