package xlsx

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"backend/internal/importer"
)

func buildWorkbook(t *testing.T, rows [][]interface{}) []byte {
	t.Helper()
	f := excelize.NewFile()
	defer func() { _ = f.Close() }()
	sheet := f.GetSheetName(0)
	for i, row := range rows {
		cell, err := excelize.CoordinatesToCellName(1, i+1)
		require.NoError(t, err)
		require.NoError(t, f.SetSheetRow(sheet, cell, &row))
	}
	buf, err := f.WriteToBuffer()
	require.NoError(t, err)
	return buf.Bytes()
}

func TestRead_HeadersAndRows(t *testing.T) {
	data := buildWorkbook(t, [][]interface{}{
		{"SB No", "Exporter", "FOB (USD)"},
		{"SB-1", "ACME EXPORTS", 1200.50},
		{"SB-2", "ZETA TRADING", "940"},
	})

	headers, rows, err := Read(data)
	require.NoError(t, err)
	assert.Equal(t, []string{"SB No", "Exporter", "FOB (USD)"}, headers)
	require.Len(t, rows, 2)

	cell, ok := rows[0].Get("Exporter")
	require.True(t, ok)
	assert.Equal(t, "ACME EXPORTS", cell.String())

	fob, ok := rows[0].Get("FOB (USD)")
	require.True(t, ok)
	assert.Equal(t, importer.CellNumber, fob.Kind)
	assert.Equal(t, 1200.50, fob.Number)
}

func TestRead_DropsBlankRows(t *testing.T) {
	data := buildWorkbook(t, [][]interface{}{
		{"SB No", "Exporter"},
		{"SB-1", "ACME"},
		{"", ""},
		{nil, nil},
		{"SB-2", "ZETA"},
	})

	_, rows, err := Read(data)
	require.NoError(t, err)
	require.Len(t, rows, 2)
	first, _ := rows[0].Get("SB No")
	second, _ := rows[1].Get("SB No")
	assert.Equal(t, "SB-1", first.String())
	assert.Equal(t, "SB-2", second.String())
}

func TestRead_SkipsUnnamedColumns(t *testing.T) {
	data := buildWorkbook(t, [][]interface{}{
		{"SB No", "", "Exporter"},
		{"SB-1", "stray", "ACME"},
	})

	_, rows, err := Read(data)
	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.Equal(t, 2, rows[0].Len())
	_, ok := rows[0].Get("")
	assert.False(t, ok)
}

func TestRead_ShortRowsPadWithEmptyCells(t *testing.T) {
	data := buildWorkbook(t, [][]interface{}{
		{"SB No", "Exporter", "FOB (USD)"},
		{"SB-1"},
	})

	_, rows, err := Read(data)
	require.NoError(t, err)
	require.Len(t, rows, 1)
	fob, ok := rows[0].Get("FOB (USD)")
	require.True(t, ok)
	assert.True(t, fob.IsEmpty())
}

func TestRead_CorruptBytes(t *testing.T) {
	_, _, err := Read([]byte("this is not a workbook"))
	assert.Error(t, err)
}

func TestRead_HeaderOnly(t *testing.T) {
	data := buildWorkbook(t, [][]interface{}{
		{"SB No", "Exporter"},
	})

	headers, rows, err := Read(data)
	require.NoError(t, err)
	assert.Equal(t, []string{"SB No", "Exporter"}, headers)
	assert.Empty(t, rows)
}
