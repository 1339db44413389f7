package importer

import "strings"

// Resolve finds the best cell in row for an alias list, trying three passes
// in order and returning the first hit:
//
//  1. exact header match, alias priority order;
//  2. normalized match (lowercase, spaces/underscores/hyphens stripped);
//  3. substring match over normalized headers, where either the alias
//     contains the header or the header contains the alias.
//
// Within a pass, earlier aliases beat later ones and, for the substring pass,
// earlier columns beat later ones. A cell only qualifies if it is non-empty
// under Cell.IsEmpty, so a column holding 0 still wins over a later alias.
// When nothing matches, the zero Cell (CellEmpty) is returned.
//
// Callers must order aliases most-specific-first: "Port of Loading" before
// "POL", never a bare "Port" that could cross-match "Port of Discharge".
func Resolve(row *RawRow, aliases []string) Cell {
	for _, alias := range aliases {
		if c, ok := row.Get(alias); ok && !c.IsEmpty() {
			return c
		}
	}

	// Two headers can normalize to the same key ("FOB Value" / "fob_value").
	// The first column in spreadsheet order wins, deterministically.
	index := make(map[string]Cell, row.Len())
	for _, h := range row.Headers() {
		n := normalizeHeader(h)
		if _, seen := index[n]; !seen {
			c, _ := row.Get(h)
			index[n] = c
		}
	}
	for _, alias := range aliases {
		if c, ok := index[normalizeHeader(alias)]; ok && !c.IsEmpty() {
			return c
		}
	}

	for _, alias := range aliases {
		na := normalizeHeader(alias)
		if na == "" {
			continue
		}
		for _, h := range row.Headers() {
			nh := normalizeHeader(h)
			if nh == "" {
				continue
			}
			if strings.Contains(nh, na) || strings.Contains(na, nh) {
				if c, _ := row.Get(h); !c.IsEmpty() {
					return c
				}
			}
		}
	}

	return Cell{}
}

// ResolveField resolves one canonical field against its alias table.
func ResolveField(row *RawRow, field CanonicalField) Cell {
	return Resolve(row, fieldAliases[field])
}

// normalizeHeader lowercases a header and strips whitespace, underscores and
// hyphens, so "FOB (USD)", "fob_(usd)" and "Fob (Usd)" all collide.
func normalizeHeader(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	for _, r := range strings.ToLower(s) {
		switch r {
		case ' ', '\t', '\n', '_', '-':
			continue
		default:
			b.WriteRune(r)
		}
	}
	return b.String()
}
