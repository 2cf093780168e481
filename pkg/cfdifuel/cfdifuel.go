// Package cfdifuel provides the public API for summarizing fuel purchases
// from CFDI tax invoices.
//
// The package validates that an invoice belongs to the expected trading
// partner, then aggregates diesel and gasoline line items and extracts
// header metadata for display.
//
// Example usage:
//
//	proc := cfdifuel.NewDefaultProcessor()
//	result, err := proc.ProcessFile("factura.xml")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	if result.Validation.Valid {
//	    fmt.Println(result.Summary.DieselLiters)
//	}
package cfdifuel

import (
	"github.com/grupocolon/cfdi-fuel/internal/config"
	"github.com/grupocolon/cfdi-fuel/internal/model"
	"github.com/grupocolon/cfdi-fuel/internal/report"
)

// Re-export core types for public API
type (
	Config           = config.Config
	FuelTotals       = model.FuelTotals
	Metadata         = model.Metadata
	ValidationResult = model.ValidationResult
	ValidationIssue  = model.ValidationIssue
	Summary          = report.Summary
)

// Re-export error types
type (
	ParseError       = model.ParseError
	MissingNodeError = model.MissingNodeError
)

// Re-export check kinds
const (
	CheckIssuer    = model.CheckIssuer
	CheckRecipient = model.CheckRecipient
)

// DefaultConfig returns the built-in trading-partner identity
func DefaultConfig() Config {
	return config.Default()
}
