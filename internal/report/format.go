// Package report renders totals and metadata into display strings.
package report

import (
	"github.com/shopspring/decimal"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"

	"github.com/grupocolon/cfdi-fuel/internal/model"
)

// es-MX groups thousands with commas and keeps the dot decimal point
var printer = message.NewPrinter(language.Make("es-MX"))

// Summary holds the display strings handed to the presentation layer
type Summary struct {
	DieselLiters   string `json:"diesel_liters"`
	DieselAmount   string `json:"diesel_amount"`
	GasolineAmount string `json:"gasoline_amount"`
	Date           string `json:"date"`
	Folio          string `json:"folio"`
}

// Build formats totals and metadata into a Summary
func Build(totals model.FuelTotals, meta model.Metadata) Summary {
	return Summary{
		DieselLiters:   Liters(totals.DieselLiters),
		DieselAmount:   Amount(totals.DieselAmount),
		GasolineAmount: Amount(totals.GasolineAmount),
		Date:           meta.Date,
		Folio:          meta.Folio,
	}
}

// Liters formats a fuel volume with 3 decimals and thousands separators
func Liters(d decimal.Decimal) string {
	return printer.Sprintf("%v", number.Decimal(d.InexactFloat64(), number.Scale(3)))
}

// Amount formats a monetary value with 2 decimals, thousands separators
// and a currency prefix
func Amount(d decimal.Decimal) string {
	return "$" + printer.Sprintf("%v", number.Decimal(d.InexactFloat64(), number.Scale(2)))
}
