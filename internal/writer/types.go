package writer

import (
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// quoteRow represents a row to be inserted into the iss_quotes table.
type quoteRow struct {
	RunID     uuid.UUID
	Report    string
	Row       int
	SecID     string
	Stamp     string
	PriceText string
	Price     decimal.NullDecimal // NUMERIC, NULL if not numeric
	FetchedAt int64               // Microseconds
}

// WriterMetrics holds metrics for a writer.
type WriterMetrics struct {
	Inserts   int64
	Conflicts int64
	Published int64
	Errors    int64
}
