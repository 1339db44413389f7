// Package xlsx turns uploaded workbook bytes into the raw rows the import
// pipeline consumes.
package xlsx

import (
	"bytes"
	"fmt"

	"github.com/xuri/excelize/v2"

	"backend/internal/importer"
)

// Read parses the first sheet of an xlsx workbook. The first row is the
// header row; every following row becomes a RawRow keyed by those headers.
// Cells are read with raw values so date cells arrive as serial numbers and
// keep the workbook's own epoch convention.
//
// Rows on which every cell is blank are dropped — trailing padding rows are
// common in customs exports and would otherwise all count as no-id.
func Read(data []byte) ([]string, []*importer.RawRow, error) {
	f, err := excelize.OpenReader(bytes.NewReader(data))
	if err != nil {
		return nil, nil, fmt.Errorf("open workbook: %w", err)
	}
	defer func() { _ = f.Close() }()

	sheet := f.GetSheetName(0)
	if sheet == "" {
		return nil, nil, fmt.Errorf("workbook has no sheets")
	}

	rows, err := f.GetRows(sheet, excelize.Options{RawCellValue: true})
	if err != nil {
		return nil, nil, fmt.Errorf("read sheet %q: %w", sheet, err)
	}
	if len(rows) == 0 {
		return nil, nil, fmt.Errorf("sheet %q is empty", sheet)
	}

	headers := rows[0]
	parsed := make([]*importer.RawRow, 0, len(rows)-1)
	for _, cols := range rows[1:] {
		row := importer.NewRawRow()
		blank := true
		for i, header := range headers {
			if header == "" {
				continue
			}
			var cell importer.Cell
			if i < len(cols) {
				cell = importer.StringCell(cols[i])
			}
			if !cell.IsEmpty() {
				blank = false
			}
			row.Set(header, cell)
		}
		if !blank {
			parsed = append(parsed, row)
		}
	}

	return headers, parsed, nil
}
