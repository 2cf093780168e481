package model

import "fmt"

// ParseError represents failures reading or parsing a CFDI document
type ParseError struct {
	Path    string
	Message string
	Cause   error
}

func (e *ParseError) Error() string {
	if e.Path != "" {
		if e.Cause != nil {
			return fmt.Sprintf("parse %s: %s (%v)", e.Path, e.Message, e.Cause)
		}
		return fmt.Sprintf("parse %s: %s", e.Path, e.Message)
	}
	if e.Cause != nil {
		return fmt.Sprintf("parse: %s (%v)", e.Message, e.Cause)
	}
	return fmt.Sprintf("parse: %s", e.Message)
}

func (e *ParseError) Unwrap() error {
	return e.Cause
}

// NewParseError creates a new parse error
func NewParseError(path, message string, cause error) *ParseError {
	return &ParseError{
		Path:    path,
		Message: message,
		Cause:   cause,
	}
}

// MissingNodeError indicates a structurally required element is absent
// from the document. Node carries the CFDI element name ("Emisor", "Receptor").
type MissingNodeError struct {
	Node string
}

func (e *MissingNodeError) Error() string {
	return fmt.Sprintf("required node %s not found in document", e.Node)
}

// NewMissingNodeError creates a new missing node error
func NewMissingNodeError(node string) *MissingNodeError {
	return &MissingNodeError{Node: node}
}
