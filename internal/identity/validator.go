// Package identity validates that an invoice was issued by the expected
// provider to one of our registered RFCs before any data is trusted.
package identity

import (
	"fmt"
	"strings"

	"github.com/grupocolon/cfdi-fuel/internal/cfdi"
	"github.com/grupocolon/cfdi-fuel/internal/config"
	"github.com/grupocolon/cfdi-fuel/internal/model"
)

// Validator runs the issuer and recipient identity checks
type Validator struct {
	cfg config.Config
}

// NewValidator creates a validator for the given expected identity
func NewValidator(cfg config.Config) *Validator {
	cfg.Normalize()
	return &Validator{cfg: cfg}
}

// Validate runs both identity checks and reports every mismatch. A missing
// Emisor or Receptor node is structural and returns a MissingNodeError;
// Emisor is probed first. Mismatches are recoverable: they land in the
// result's Issues with the value found in the document.
func (v *Validator) Validate(doc *cfdi.Document) (*model.ValidationResult, error) {
	issuerIssue, err := v.CheckIssuer(doc)
	if err != nil {
		return nil, err
	}
	recipientIssue, err := v.CheckRecipient(doc)
	if err != nil {
		return nil, err
	}

	result := &model.ValidationResult{Valid: true}
	if issuerIssue != nil {
		result.AddIssue(issuerIssue.Check, issuerIssue.Found, issuerIssue.Message)
	}
	if recipientIssue != nil {
		result.AddIssue(recipientIssue.Check, recipientIssue.Found, recipientIssue.Message)
	}
	return result, nil
}

// CheckIssuer compares the Emisor Nombre against the configured provider
func (v *Validator) CheckIssuer(doc *cfdi.Document) (*model.ValidationIssue, error) {
	emisor := doc.Emisor()
	if emisor == nil {
		return nil, model.NewMissingNodeError(cfdi.NodeEmisor)
	}

	nombre := strings.ToUpper(cfdi.Attr(emisor, "Nombre"))
	if nombre == v.cfg.Provider {
		return nil, nil
	}
	return &model.ValidationIssue{
		Check:   model.CheckIssuer,
		Found:   nombre,
		Message: fmt.Sprintf("invoice issuer is not %s", v.cfg.Provider),
	}, nil
}

// CheckRecipient compares the Receptor Rfc against the allow-list
func (v *Validator) CheckRecipient(doc *cfdi.Document) (*model.ValidationIssue, error) {
	receptor := doc.Receptor()
	if receptor == nil {
		return nil, model.NewMissingNodeError(cfdi.NodeReceptor)
	}

	rfc := strings.ToUpper(cfdi.Attr(receptor, "Rfc"))
	if v.cfg.AllowsRFC(rfc) {
		return nil, nil
	}
	return &model.ValidationIssue{
		Check:   model.CheckRecipient,
		Found:   rfc,
		Message: "invoice recipient RFC is not registered",
	}, nil
}
