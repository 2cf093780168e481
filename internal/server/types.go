package server

import (
	"github.com/grupocolon/cfdi-fuel/internal/model"
	"github.com/grupocolon/cfdi-fuel/internal/report"
)

// SummarizeResponse is returned by the summarize endpoint
type SummarizeResponse struct {
	Summary    report.Summary          `json:"summary"`
	Totals     model.FuelTotals        `json:"totals"`
	Metadata   model.Metadata          `json:"metadata"`
	Validation *model.ValidationResult `json:"validation"`
}

// ValidateResponse is returned by the validate endpoint
type ValidateResponse struct {
	Valid  bool                    `json:"valid"`
	Issues []model.ValidationIssue `json:"issues,omitempty"`
}

// InfoResponse is returned by the info endpoint
type InfoResponse struct {
	Version      string `json:"version,omitempty"`
	Issuer       string `json:"issuer,omitempty"`
	RecipientRFC string `json:"recipient_rfc,omitempty"`
	Folio        string `json:"folio,omitempty"`
	Conceptos    int    `json:"conceptos"`
}
