// Package fuel classifies invoice line items into fuel categories and
// accumulates their totals.
package fuel

import (
	"strings"

	"github.com/beevik/etree"
	"github.com/shopspring/decimal"

	"github.com/grupocolon/cfdi-fuel/internal/cfdi"
	"github.com/grupocolon/cfdi-fuel/internal/model"
)

// Classification keywords matched against the lowercased Descripcion.
// Diesel wins over gasoline when both appear; magna and premium collapse
// into a single gasoline bucket.
const (
	keywordDiesel  = "diesel"
	keywordMagna   = "magna"
	keywordPremium = "premium"
)

// Aggregate walks every Concepto in document order and accumulates fuel
// totals. Malformed or absent Cantidad/Importe values contribute zero, a
// single bad line item never aborts the pass.
func Aggregate(doc *cfdi.Document) model.FuelTotals {
	var totals model.FuelTotals

	for _, concepto := range doc.Conceptos() {
		description := strings.ToLower(cfdi.Attr(concepto, "Descripcion"))
		quantity := parseAmount(concepto, "Cantidad")
		amount := parseAmount(concepto, "Importe")

		switch {
		case strings.Contains(description, keywordDiesel):
			totals.AddDiesel(quantity, amount)
		case strings.Contains(description, keywordMagna),
			strings.Contains(description, keywordPremium):
			totals.AddGasoline(amount)
		}
	}

	return totals
}

// parseAmount reads a decimal attribute, zero when missing or malformed
func parseAmount(elem *etree.Element, key string) decimal.Decimal {
	raw := cfdi.Attr(elem, key)
	if raw == "" {
		return decimal.Zero
	}
	d, err := decimal.NewFromString(raw)
	if err != nil {
		return decimal.Zero
	}
	return d
}
