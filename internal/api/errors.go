package api

import (
	"fmt"
	"strings"
)

// NetworkError reports a request that did not produce a complete HTTP
// response: dial failures, timeouts, cancellation and truncated bodies.
type NetworkError struct {
	URL string
	Err error
}

func (e *NetworkError) Error() string {
	return fmt.Sprintf("iss request %s: %v", e.URL, e.Err)
}

func (e *NetworkError) Unwrap() error {
	return e.Err
}

// HTTPStatusError reports a non-2xx response from ISS.
type HTTPStatusError struct {
	StatusCode int
	Message    string
	Body       []byte // at most the first 4 KiB
}

func (e *HTTPStatusError) Error() string {
	return fmt.Sprintf("iss api error %d: %s", e.StatusCode, e.Message)
}

// DecodeError reports a response body that is not valid UTF-8.
type DecodeError struct {
	Offset int // byte offset of the first invalid sequence
}

func (e *DecodeError) Error() string {
	return fmt.Sprintf("response body is not valid utf-8 at byte %d", e.Offset)
}

// ParseError reports a response body that is not valid JSON.
type ParseError struct {
	Section string
	Err     error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("parse iss %s response: %v", e.Section, e.Err)
}

func (e *ParseError) Unwrap() error {
	return e.Err
}

// SchemaError reports valid JSON that does not have the table layout ISS
// promises for a section.
type SchemaError struct {
	Section string
	Reason  string
}

func (e *SchemaError) Error() string {
	return fmt.Sprintf("iss section %q: %s", e.Section, e.Reason)
}

// ColumnNotFoundError reports a required column missing from a table.
type ColumnNotFoundError struct {
	Section string
	Column  string
	Columns []string
}

func (e *ColumnNotFoundError) Error() string {
	return fmt.Sprintf("column %q not found in section %q (have %s)",
		e.Column, e.Section, strings.Join(e.Columns, ","))
}
