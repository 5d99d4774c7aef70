package model

import (
	"strings"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Report names.
const (
	ReportPrevAdmittedQuote = "prev_admitted_quote"
	ReportMarketData        = "market_data"
)

// Quote is one printed report row.
type Quote struct {
	RunID     uuid.UUID           `json:"run_id"`     // One per process invocation
	Report    string              `json:"report"`     // ReportPrevAdmittedQuote or ReportMarketData
	Row       int                 `json:"row"`        // Zero-based position in the report
	SecID     string              `json:"secid"`      // Security identifier (e.g., "SBER")
	Stamp     string              `json:"stamp"`      // PREVDATE or UPDATETIME text
	PriceText string              `json:"price_text"` // PREVADMITTEDQUOTE or LAST text
	Price     decimal.NullDecimal `json:"price"`      // Parsed PriceText, null if not numeric
	FetchedAt int64               `json:"fetched_at"` // Receive time (µs since epoch)
}

// ParsePrice parses a price cell. ISS may render the decimal point as a
// comma; both forms are accepted. Non-numeric text yields a null decimal.
func ParsePrice(text string) decimal.NullDecimal {
	d, err := decimal.NewFromString(strings.Replace(text, ",", ".", 1))
	if err != nil {
		return decimal.NullDecimal{}
	}
	return decimal.NewNullDecimal(d)
}
