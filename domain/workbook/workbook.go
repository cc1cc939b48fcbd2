// Package workbook models the Suivi Global tracker: ordered sheets of raw
// string rows, addressed through fixed per-sheet column schemas. Column
// positions are part of the contract; there is no header-driven discovery,
// so a column-shifted file fails structural validation instead of being
// silently misread.
package workbook

import "strings"

// Row is an ordered sequence of raw cell values as read from one sheet row.
// Trailing blank cells may be absent; Cell treats them as empty.
type Row []string

// Cell returns the trimmed value at the zero-based index. The second result
// is false when the row is too short to hold the index, which callers treat
// the same as a blank cell.
func (r Row) Cell(idx int) (string, bool) {
	if idx < 0 || idx >= len(r) {
		return "", false
	}
	return strings.TrimSpace(r[idx]), true
}

// Sheet is an ordered sequence of rows under an exact, case-sensitive name.
type Sheet struct {
	Name string
	Rows []Row
}

// Width returns the widest row of the sheet.
func (s Sheet) Width() int {
	max := 0
	for _, row := range s.Rows {
		if len(row) > max {
			max = len(row)
		}
	}
	return max
}
