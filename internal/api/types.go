package api

// Path segments of the board securities endpoint.
const (
	Engine = "stock"
	Market = "shares"
	Board  = "TQBR"
)

// ISS section names.
const (
	SectionSecurities = "securities"
	SectionMarketData = "marketdata"
)

// DefaultSecurities is the fixed set of shares the reports cover.
var DefaultSecurities = []string{"SBER", "GAZP", "YNDX"}

// BoardSecuritiesOptions configures a GetBoardSecurities request.
type BoardSecuritiesOptions struct {
	Securities []string // SECIDs to request
	Section    string   // value for iss.only
	Columns    []string // value for <section>.columns
}

// Table is one ISS section: column names plus rows aligned to them.
//
// Cells are the decoded JSON values: string, json.Number, bool, nil, or
// nested []any / map[string]any. Row order is the order ISS returned.
type Table struct {
	Section string
	Columns []string
	Data    [][]any
}
