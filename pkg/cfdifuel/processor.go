package cfdifuel

import (
	"github.com/grupocolon/cfdi-fuel/internal/cfdi"
	"github.com/grupocolon/cfdi-fuel/internal/fuel"
	"github.com/grupocolon/cfdi-fuel/internal/identity"
	"github.com/grupocolon/cfdi-fuel/internal/metadata"
	"github.com/grupocolon/cfdi-fuel/internal/report"
)

// Processor runs the full validate-then-summarize flow over one invoice
type Processor struct {
	validator *identity.Validator
}

// NewProcessor creates a processor enforcing the given identity config
func NewProcessor(cfg Config) *Processor {
	return &Processor{
		validator: identity.NewValidator(cfg),
	}
}

// NewDefaultProcessor creates a processor with the built-in identity config
func NewDefaultProcessor() *Processor {
	return NewProcessor(DefaultConfig())
}

// Result holds everything extracted from one invoice. Totals, Metadata and
// Summary are only populated when Validation passed; an identity mismatch
// is recoverable and leaves them zero.
type Result struct {
	Validation *ValidationResult `json:"validation"`
	Totals     FuelTotals        `json:"totals"`
	Metadata   Metadata          `json:"metadata"`
	Summary    Summary           `json:"summary"`
}

// ProcessFile loads an invoice from disk and summarizes it
func (p *Processor) ProcessFile(path string) (*Result, error) {
	doc, err := cfdi.Load(path)
	if err != nil {
		return nil, err
	}
	return p.process(doc)
}

// Process parses an invoice from raw bytes and summarizes it
func (p *Processor) Process(data []byte) (*Result, error) {
	doc, err := cfdi.Parse(data)
	if err != nil {
		return nil, err
	}
	return p.process(doc)
}

func (p *Processor) process(doc *cfdi.Document) (*Result, error) {
	validation, err := p.validator.Validate(doc)
	if err != nil {
		return nil, err
	}

	result := &Result{Validation: validation}
	if !validation.Valid {
		return result, nil
	}

	result.Totals = fuel.Aggregate(doc)
	result.Metadata = metadata.Extract(doc)
	result.Summary = report.Build(result.Totals, result.Metadata)
	return result, nil
}
