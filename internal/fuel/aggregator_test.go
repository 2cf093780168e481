package fuel_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/grupocolon/cfdi-fuel/internal/cfdi"
	"github.com/grupocolon/cfdi-fuel/internal/fuel"
)

func parseDoc(t *testing.T, content string) *cfdi.Document {
	t.Helper()
	doc, err := cfdi.Parse([]byte(content))
	require.NoError(t, err)
	return doc
}

func invoiceWithConceptos(conceptos string) string {
	return `<cfdi:Comprobante xmlns:cfdi="http://www.sat.gob.mx/cfd/4">
		<cfdi:Conceptos>` + conceptos + `</cfdi:Conceptos>
	</cfdi:Comprobante>`
}

func assertDecimal(t *testing.T, want string, got decimal.Decimal) {
	t.Helper()
	assert.True(t, got.Equal(decimal.RequireFromString(want)),
		"expected %s, got %s", want, got.String())
}

func TestAggregate_DieselAndGasoline(t *testing.T) {
	doc := parseDoc(t, invoiceWithConceptos(`
		<cfdi:Concepto Descripcion="DIESEL AUTOMOTRIZ" Cantidad="100.500" Importe="2100.00"/>
		<cfdi:Concepto Descripcion="MAGNA" Cantidad="50" Importe="1050.00"/>
	`))

	totals := fuel.Aggregate(doc)
	assertDecimal(t, "100.5", totals.DieselLiters)
	assertDecimal(t, "2100.00", totals.DieselAmount)
	assertDecimal(t, "1050.00", totals.GasolineAmount)
}

func TestAggregate_CaseInsensitiveKeywords(t *testing.T) {
	doc := parseDoc(t, invoiceWithConceptos(`
		<cfdi:Concepto Descripcion="Diesel de bajo azufre" Cantidad="10" Importe="220.00"/>
		<cfdi:Concepto Descripcion="gasolina PREMIUM 91" Cantidad="20" Importe="480.00"/>
	`))

	totals := fuel.Aggregate(doc)
	assertDecimal(t, "10", totals.DieselLiters)
	assertDecimal(t, "220.00", totals.DieselAmount)
	assertDecimal(t, "480.00", totals.GasolineAmount)
}

func TestAggregate_DieselWinsOverGasolineKeywords(t *testing.T) {
	doc := parseDoc(t, invoiceWithConceptos(`
		<cfdi:Concepto Descripcion="DIESEL PREMIUM" Cantidad="30" Importe="700.00"/>
	`))

	totals := fuel.Aggregate(doc)
	// A line item contributes to one category only
	assertDecimal(t, "30", totals.DieselLiters)
	assertDecimal(t, "700.00", totals.DieselAmount)
	assert.True(t, totals.GasolineAmount.IsZero())
}

func TestAggregate_GasolineQuantityNotTracked(t *testing.T) {
	doc := parseDoc(t, invoiceWithConceptos(`
		<cfdi:Concepto Descripcion="MAGNA" Cantidad="45.5" Importe="999.00"/>
	`))

	totals := fuel.Aggregate(doc)
	assert.True(t, totals.DieselLiters.IsZero())
	assertDecimal(t, "999.00", totals.GasolineAmount)
}

func TestAggregate_UnclassifiedItemsIgnored(t *testing.T) {
	doc := parseDoc(t, invoiceWithConceptos(`
		<cfdi:Concepto Descripcion="ADITIVO LIMPIADOR" Cantidad="2" Importe="150.00"/>
		<cfdi:Concepto Descripcion="LAVADO DE AUTO" Cantidad="1" Importe="80.00"/>
	`))

	totals := fuel.Aggregate(doc)
	assert.True(t, totals.IsZero())
}

func TestAggregate_MalformedQuantityDoesNotAbort(t *testing.T) {
	doc := parseDoc(t, invoiceWithConceptos(`
		<cfdi:Concepto Descripcion="DIESEL" Cantidad="abc" Importe="500.00"/>
		<cfdi:Concepto Descripcion="DIESEL" Cantidad="25" Importe="550.00"/>
	`))

	totals := fuel.Aggregate(doc)
	// Bad Cantidad contributes zero liters; its Importe and the following
	// item still accumulate
	assertDecimal(t, "25", totals.DieselLiters)
	assertDecimal(t, "1050.00", totals.DieselAmount)
}

func TestAggregate_MissingAttributesDefaultToZero(t *testing.T) {
	doc := parseDoc(t, invoiceWithConceptos(`
		<cfdi:Concepto Descripcion="DIESEL"/>
	`))

	totals := fuel.Aggregate(doc)
	assert.True(t, totals.DieselLiters.IsZero())
	assert.True(t, totals.DieselAmount.IsZero())
}

func TestAggregate_NoConceptos(t *testing.T) {
	doc := parseDoc(t, `<Comprobante/>`)

	totals := fuel.Aggregate(doc)
	assert.True(t, totals.IsZero())
}

func TestAggregate_Idempotent(t *testing.T) {
	doc := parseDoc(t, invoiceWithConceptos(`
		<cfdi:Concepto Descripcion="DIESEL" Cantidad="100.500" Importe="2100.00"/>
		<cfdi:Concepto Descripcion="MAGNA" Cantidad="50" Importe="1050.00"/>
	`))

	first := fuel.Aggregate(doc)
	second := fuel.Aggregate(doc)

	assert.True(t, first.DieselLiters.Equal(second.DieselLiters))
	assert.True(t, first.DieselAmount.Equal(second.DieselAmount))
	assert.True(t, first.GasolineAmount.Equal(second.GasolineAmount))
}
