package report

import (
	"github.com/rickgao/moex-quotes/internal/api"
	"github.com/rickgao/moex-quotes/internal/model"
)

// Definition describes one report. Stamp, SecID and Price are column names,
// printed in that order.
type Definition struct {
	Name    string
	Section string
	Header  string
	Stamp   string
	SecID   string
	Price   string
}

// Columns returns the report columns in print order.
func (d Definition) Columns() []string {
	return []string{d.Stamp, d.SecID, d.Price}
}

// PrevAdmittedQuote lists the previous session's official closing prices.
var PrevAdmittedQuote = Definition{
	Name:    model.ReportPrevAdmittedQuote,
	Section: api.SectionSecurities,
	Header:  "дата закрытия / Id / цена закрытия",
	Stamp:   "PREVDATE",
	SecID:   "SECID",
	Price:   "PREVADMITTEDQUOTE",
}

// MarketData lists the last trade price and its update time.
var MarketData = Definition{
	Name:    model.ReportMarketData,
	Section: api.SectionMarketData,
	Header:  "время обновления / Id / текущая цена",
	Stamp:   "UPDATETIME",
	SecID:   "SECID",
	Price:   "LAST",
}

// Defaults are the reports printed by cmd/quotes, in order.
var Defaults = []Definition{PrevAdmittedQuote, MarketData}
