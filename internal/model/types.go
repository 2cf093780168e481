package model

import "github.com/shopspring/decimal"

// FuelTotals accumulates fuel line items from one invoice.
// A line item contributes to at most one category; gasoline volume is
// intentionally not tracked, only its amount.
type FuelTotals struct {
	DieselLiters   decimal.Decimal `json:"diesel_liters"`
	DieselAmount   decimal.Decimal `json:"diesel_amount"`
	GasolineAmount decimal.Decimal `json:"gasoline_amount"`
}

// AddDiesel accumulates a diesel line item
func (t *FuelTotals) AddDiesel(liters, amount decimal.Decimal) {
	t.DieselLiters = t.DieselLiters.Add(liters)
	t.DieselAmount = t.DieselAmount.Add(amount)
}

// AddGasoline accumulates a gasoline (magna/premium) line item amount
func (t *FuelTotals) AddGasoline(amount decimal.Decimal) {
	t.GasolineAmount = t.GasolineAmount.Add(amount)
}

// IsZero reports whether nothing was accumulated
func (t FuelTotals) IsZero() bool {
	return t.DieselLiters.IsZero() && t.DieselAmount.IsZero() && t.GasolineAmount.IsZero()
}

// Metadata holds invoice header data prepared for display
type Metadata struct {
	Date  string `json:"date"`
	Folio string `json:"folio"`
}

// CheckKind identifies which identity check produced an issue
type CheckKind string

const (
	CheckIssuer    CheckKind = "issuer"
	CheckRecipient CheckKind = "recipient"
)

// ValidationIssue describes one failed identity check. Found carries the
// value read from the document so the operator can see what was there.
type ValidationIssue struct {
	Check   CheckKind `json:"check"`
	Found   string    `json:"found"`
	Message string    `json:"message"`
}

// ValidationResult is the outcome of the identity checks.
// A mismatch is a recoverable outcome, not an error; Issues lists every
// check that failed.
type ValidationResult struct {
	Valid  bool              `json:"valid"`
	Issues []ValidationIssue `json:"issues,omitempty"`
}

// AddIssue records a failed check and marks the result invalid
func (r *ValidationResult) AddIssue(check CheckKind, found, message string) {
	r.Valid = false
	r.Issues = append(r.Issues, ValidationIssue{
		Check:   check,
		Found:   found,
		Message: message,
	})
}
