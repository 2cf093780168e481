// Package metadata extracts and formats invoice header data (Fecha, Folio).
//
// Extraction is best-effort: missing header data degrades to sentinel
// strings so the caller can always display something, it never fails.
package metadata

import (
	"fmt"
	"strings"
	"time"

	"github.com/grupocolon/cfdi-fuel/internal/cfdi"
	"github.com/grupocolon/cfdi-fuel/internal/model"
)

// Sentinels returned when header data is absent
const (
	DateNotFound  = "Fecha no encontrada"
	FolioNotFound = "Folio no encontrado"
)

// English month names substituted by their Spanish equivalent
var months = map[string]string{
	"January": "enero", "February": "febrero", "March": "marzo",
	"April": "abril", "May": "mayo", "June": "junio",
	"July": "julio", "August": "agosto", "September": "septiembre",
	"October": "octubre", "November": "noviembre", "December": "diciembre",
}

// Extract reads Fecha and Folio from the Comprobante header and formats the
// date for display. A missing header yields the sentinels; a present but
// unparseable date passes through verbatim.
func Extract(doc *cfdi.Document) model.Metadata {
	comprobante := doc.Comprobante()
	if comprobante == nil {
		return model.Metadata{Date: DateNotFound, Folio: FolioNotFound}
	}

	fecha := cfdi.Attr(comprobante, "Fecha")
	if fecha == "" {
		fecha = DateNotFound
	}
	folio := cfdi.Attr(comprobante, "Folio")
	if folio == "" {
		folio = FolioNotFound
	}

	return model.Metadata{
		Date:  FormatDate(fecha),
		Folio: folio,
	}
}

// FormatDate renders an ISO-8601 date-time as "DD de <mes> YYYY". The
// sentinel passes through unchanged, as does anything that does not start
// with a YYYY-MM-DD calendar date.
func FormatDate(raw string) string {
	if raw == DateNotFound {
		return raw
	}

	truncated := raw
	if len(truncated) > 10 {
		truncated = truncated[:10]
	}

	date, err := time.Parse("2006-01-02", truncated)
	if err != nil {
		return raw
	}

	formatted := fmt.Sprintf("%02d de %s %d", date.Day(), date.Month().String(), date.Year())
	return TranslateMonth(formatted)
}

// TranslateMonth replaces any English month name in s with its Spanish name
func TranslateMonth(s string) string {
	for english, spanish := range months {
		s = strings.ReplaceAll(s, english, spanish)
	}
	return s
}
