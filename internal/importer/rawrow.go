package importer

import (
	"strconv"
	"strings"
	"time"
)

// CellKind discriminates the value held by a Cell.
type CellKind int

const (
	CellEmpty CellKind = iota
	CellString
	CellNumber
	CellDate
)

// Cell is one spreadsheet cell value. Numeric cells keep both the parsed
// number and the original text so fields like HS codes don't lose leading
// zeros when a column happens to look numeric.
type Cell struct {
	Kind   CellKind
	Text   string
	Number float64
	Date   time.Time
}

// StringCell wraps a text value. Values that parse fully as a number are
// tagged CellNumber, which is how serial-date cells read with raw cell
// values are recognized later.
func StringCell(s string) Cell {
	trimmed := strings.TrimSpace(s)
	if trimmed != "" {
		if f, err := strconv.ParseFloat(trimmed, 64); err == nil {
			return Cell{Kind: CellNumber, Text: s, Number: f}
		}
	}
	return Cell{Kind: CellString, Text: s}
}

// NumberCell wraps a numeric value.
func NumberCell(f float64) Cell {
	return Cell{Kind: CellNumber, Number: f, Text: strconv.FormatFloat(f, 'f', -1, 64)}
}

// DateCell wraps an already-decoded date value.
func DateCell(t time.Time) Cell {
	return Cell{Kind: CellDate, Date: t, Text: t.Format("2006-01-02")}
}

// IsEmpty reports whether the cell counts as missing. Only absent values and
// whitespace-only text are empty; the number 0 and the string "0" are present.
func (c Cell) IsEmpty() bool {
	switch c.Kind {
	case CellEmpty:
		return true
	case CellString:
		return strings.TrimSpace(c.Text) == ""
	default:
		return false
	}
}

// String returns the raw textual form of the cell, trimmed.
func (c Cell) String() string {
	if c.Kind == CellEmpty {
		return ""
	}
	return strings.TrimSpace(c.Text)
}

// RawRow is one parsed spreadsheet row: an ordered mapping from the original
// header string to the cell under it. Order is the spreadsheet's left-to-right
// column order and is the tie-break whenever two headers compete for a match.
type RawRow struct {
	headers []string
	cells   map[string]Cell
}

// NewRawRow returns an empty row.
func NewRawRow() *RawRow {
	return &RawRow{cells: make(map[string]Cell)}
}

// Set stores a cell under header, preserving first-seen column order. Setting
// a header twice overwrites the value but keeps the original position.
func (r *RawRow) Set(header string, cell Cell) {
	if _, ok := r.cells[header]; !ok {
		r.headers = append(r.headers, header)
	}
	r.cells[header] = cell
}

// Get returns the cell under the exact header.
func (r *RawRow) Get(header string) (Cell, bool) {
	c, ok := r.cells[header]
	return c, ok
}

// Headers returns the row's headers in column order.
func (r *RawRow) Headers() []string {
	return r.headers
}

// Len returns the number of columns in the row.
func (r *RawRow) Len() int {
	return len(r.headers)
}
