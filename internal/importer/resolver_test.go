package importer

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func row(pairs ...interface{}) *RawRow {
	r := NewRawRow()
	for i := 0; i < len(pairs); i += 2 {
		header := pairs[i].(string)
		switch v := pairs[i+1].(type) {
		case string:
			r.Set(header, StringCell(v))
		case float64:
			r.Set(header, NumberCell(v))
		case int:
			r.Set(header, NumberCell(float64(v)))
		}
	}
	return r
}

func TestResolve_ExactMatchWins(t *testing.T) {
	r := row("FOB Value", "100", "Value", "999", "Some FOB Value Col", "555")

	got := Resolve(r, []string{"FOB Value", "Value"})
	assert.Equal(t, "100", got.String())
}

func TestResolve_AliasPriorityOverRowOrder(t *testing.T) {
	// "Value" appears first in the row, but the more specific alias wins.
	r := row("Value", "999", "FOB Value", "100")

	got := Resolve(r, []string{"FOB Value", "Value"})
	assert.Equal(t, "100", got.String())
}

func TestResolve_NormalizedMatch(t *testing.T) {
	r := row("fob_value", "840.25")
	got := Resolve(r, []string{"FOB Value"})
	assert.Equal(t, "840.25", got.String())

	r = row("EXPORTER-NAME", "ACME")
	got = Resolve(r, []string{"Exporter Name"})
	assert.Equal(t, "ACME", got.String())
}

func TestResolve_SubstringMatch(t *testing.T) {
	r := row("Total FOB Value in USD", "1200")
	got := Resolve(r, []string{"FOB Value"})
	assert.Equal(t, "1200", got.String())

	// Alias containing the header also matches.
	r = row("Qty", "5")
	got = Resolve(r, []string{"Net Qty"})
	assert.Equal(t, "5", got.String())
}

func TestResolve_ZeroIsPresent(t *testing.T) {
	r := row("Quantity", 0)
	got := Resolve(r, []string{"Quantity"})
	assert.False(t, got.IsEmpty())
	assert.Equal(t, "0", got.String())

	r = row("Quantity", "0")
	got = Resolve(r, []string{"Quantity"})
	assert.False(t, got.IsEmpty())
}

func TestResolve_EmptyValueFallsThrough(t *testing.T) {
	// The preferred alias matches a blank column; the next alias holds data.
	r := row("Exporter Name", "   ", "Shipper", "ACME EXPORTS")

	got := Resolve(r, []string{"Exporter Name", "Shipper"})
	assert.Equal(t, "ACME EXPORTS", got.String())
}

func TestResolve_NoCrossMatchBetweenPorts(t *testing.T) {
	r := row("Port of Discharge", "ROTTERDAM")

	got := Resolve(r, []string{"Port of Loading"})
	assert.True(t, got.IsEmpty())
}

func TestResolve_NoMatchReturnsEmpty(t *testing.T) {
	r := row("Completely Unrelated", "x")
	got := Resolve(r, []string{"HS Code", "HSCode"})
	assert.True(t, got.IsEmpty())
	assert.Equal(t, "", got.String())
}

func TestResolve_DuplicateNormalizedHeaders_FirstColumnWins(t *testing.T) {
	// "FOB Value" and "fob_value" collide after normalization; the leftmost
	// spreadsheet column is the deterministic winner.
	r := NewRawRow()
	r.Set("fob value", StringCell("first"))
	r.Set("FOB_VALUE", StringCell("second"))

	got := Resolve(r, []string{"FOB Value"})
	assert.Equal(t, "first", got.String())
}

func TestResolveField_UsesAliasTable(t *testing.T) {
	r := row("SHIPPER", "ACME", "SB No", "SB-1042")

	assert.Equal(t, "SB-1042", ResolveField(r, FieldDeclarationID).String())
	assert.Equal(t, "ACME", ResolveField(r, FieldExporterName).String())
}

func TestNormalizeHeader(t *testing.T) {
	assert.Equal(t, "fob(usd)", normalizeHeader("FOB (USD)"))
	assert.Equal(t, "portofloading", normalizeHeader("Port_of-Loading"))
	assert.Equal(t, "sbno", normalizeHeader("  SB No "))
}
