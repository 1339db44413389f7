package importer

import (
	"strings"
	"time"

	"github.com/xuri/excelize/v2"
)

// maxExcelSerial is 9999-12-31 in the 1900 date system; anything larger is a
// plain number, not a date serial.
const maxExcelSerial = 2958465

// dateLayouts are tried, in order, against string-valued date cells before
// falling back to the day-month-year split.
var dateLayouts = []string{
	"2006-01-02",
	"02/01/2006",
	"02-01-2006",
	"2006/01/02",
	"02 Jan 2006",
	"2 Jan 2006",
	"02-Jan-2006",
	time.RFC3339,
}

// ParseShipmentDate decodes a resolved date cell. Numeric cells are treated
// as Excel date serials and decoded with the epoch convention of the workbook
// format itself (excelize, 1900 system). String cells are tried against known
// layouts, then split on "-" or "/" and read day-month-year. Years of 1900 or
// less are rejected as garbage parses. An unparseable date is not an error;
// the caller stores a null date.
func ParseShipmentDate(c Cell) (time.Time, bool) {
	switch c.Kind {
	case CellDate:
		return c.Date, true
	case CellNumber:
		if c.Number <= 0 || c.Number > maxExcelSerial {
			return time.Time{}, false
		}
		t, err := excelize.ExcelDateToTime(c.Number, false)
		if err != nil || t.Year() <= 1900 {
			return time.Time{}, false
		}
		return t, true
	case CellString:
		return parseDateString(c.String())
	default:
		return time.Time{}, false
	}
}

func parseDateString(s string) (time.Time, bool) {
	if s == "" {
		return time.Time{}, false
	}
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, s); err == nil && t.Year() > 1900 {
			return t, true
		}
	}

	// Fallback: split on - or / and read the parts as day-month-year. Indian
	// customs exports are day-first, never month-first.
	parts := strings.FieldsFunc(s, func(r rune) bool { return r == '-' || r == '/' })
	if len(parts) != 3 {
		return time.Time{}, false
	}
	day, okD := atoiStrict(parts[0])
	month, okM := atoiStrict(parts[1])
	year, okY := atoiStrict(parts[2])
	if !okD || !okM || !okY || year <= 1900 || month < 1 || month > 12 {
		return time.Time{}, false
	}
	t := time.Date(year, time.Month(month), day, 0, 0, 0, 0, time.UTC)
	// time.Date normalizes out-of-range days (32 Jan -> 1 Feb); reject those.
	if t.Day() != day || t.Month() != time.Month(month) || t.Year() != year {
		return time.Time{}, false
	}
	return t, true
}

func atoiStrict(s string) (int, bool) {
	s = strings.TrimSpace(s)
	if s == "" || len(s) > 4 {
		return 0, false
	}
	n := 0
	for _, r := range s {
		if r < '0' || r > '9' {
			return 0, false
		}
		n = n*10 + int(r-'0')
	}
	return n, true
}

// MonthBucket renders the "YYYY-MM" grouping key for a shipment date.
func MonthBucket(t time.Time) string {
	return t.Format("2006-01")
}
