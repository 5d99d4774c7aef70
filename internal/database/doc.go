// Package database provides the TimescaleDB connection pool used by the
// quote archive.
package database
