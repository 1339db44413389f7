package importer

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
)

func TestParseShipmentDate_Serial(t *testing.T) {
	// 45312 is 2024-01-21 in the 1900 date system.
	got, ok := ParseShipmentDate(NumberCell(45312))
	require.True(t, ok)
	assert.Equal(t, "2024-01-21", got.Format("2006-01-02"))
}

func TestParseShipmentDate_SerialRoundTrip(t *testing.T) {
	// Decoding a serial and re-rendering it must agree with the sheet
	// library's own decode of the same serial.
	for _, serial := range []float64{45312, 44927, 36526} {
		want, err := excelize.ExcelDateToTime(serial, false)
		require.NoError(t, err)

		got, ok := ParseShipmentDate(NumberCell(serial))
		require.True(t, ok)
		assert.Equal(t, want.Format("2006-01-02"), got.Format("2006-01-02"))
	}
}

func TestParseShipmentDate_SerialOutOfRange(t *testing.T) {
	// Large numerics like a raw "20240115" are not date serials.
	_, ok := ParseShipmentDate(NumberCell(20240115))
	assert.False(t, ok)

	_, ok = ParseShipmentDate(NumberCell(-3))
	assert.False(t, ok)
}

func TestParseShipmentDate_KnownLayouts(t *testing.T) {
	cases := map[string]string{
		"2024-01-21":  "2024-01-21",
		"21/01/2024":  "2024-01-21",
		"21-01-2024":  "2024-01-21",
		"2024/01/21":  "2024-01-21",
		"21 Jan 2024": "2024-01-21",
	}
	for input, want := range cases {
		got, ok := ParseShipmentDate(Cell{Kind: CellString, Text: input})
		require.True(t, ok, "input %q", input)
		assert.Equal(t, want, got.Format("2006-01-02"), "input %q", input)
	}
}

func TestParseShipmentDate_DayMonthYearSplit(t *testing.T) {
	// Single-digit parts fall through the fixed layouts to the d-m-y split,
	// which must read day first.
	got, ok := ParseShipmentDate(Cell{Kind: CellString, Text: "5/6/2024"})
	require.True(t, ok)
	assert.Equal(t, time.June, got.Month())
	assert.Equal(t, 5, got.Day())
	assert.Equal(t, 2024, got.Year())
}

func TestParseShipmentDate_Garbage(t *testing.T) {
	for _, input := range []string{
		"", "not a date", "12-31", "1/2/3/4",
		"31/12/99",   // 2-digit year fails the >1900 guard
		"32/01/2024", // no such day
		"01/13/2024", // month-first is not accepted
	} {
		_, ok := ParseShipmentDate(Cell{Kind: CellString, Text: input})
		assert.False(t, ok, "input %q", input)
	}
}

func TestMonthBucket(t *testing.T) {
	d := time.Date(2024, time.January, 21, 0, 0, 0, 0, time.UTC)
	assert.Equal(t, "2024-01", MonthBucket(d))
}
