package workbook

import (
	"sort"

	"pladria/domain/core"
)

// Logical column names used in schemas and validation messages.
const (
	ColDate          = "date"
	ColCollaborateur = "collaborateur"
	ColDuree         = "duree"
	ColMotif         = "motif"
	ColCategorie     = "categorie"
)

// Sheet names, exact and case-sensitive.
const (
	SheetTraitementPA = "Traitement PA"
	SheetCM           = "CM"
	SheetUPR          = "Suivi Tickets UPR"
	Sheet501511       = "Tickets 501-511"
)

// SheetSchema fixes the zero-based column layout of one sheet. Layouts are
// sheet-specific: conceptually similar columns sit at different indices on
// different sheets and must never be assumed interchangeable.
type SheetSchema struct {
	Sheet   string
	Columns map[string]int
}

// Column returns the fixed index of a logical column. Asking for a column
// the schema does not declare is a programming error surfaced as a
// structural error rather than a silent zero.
func (s SheetSchema) Column(name string) (int, error) {
	idx, ok := s.Columns[name]
	if !ok {
		return 0, core.NewColumnMissingError(s.Sheet, name, -1)
	}
	return idx, nil
}

// Cell reads the logical column from a row. A row too short to reach the
// index yields an empty value, which aggregation treats as blank.
func (s SheetSchema) Cell(row Row, name string) (string, error) {
	idx, err := s.Column(name)
	if err != nil {
		return "", err
	}
	v, _ := row.Cell(idx)
	return v, nil
}

// Validate checks the structural preconditions of one sheet: it must be
// non-empty and wide enough, on at least one row, to hold every declared
// column. Returns the first failure as a structural error naming the sheet
// and column.
func (s SheetSchema) Validate(sheet Sheet) error {
	if len(sheet.Rows) == 0 {
		return core.NewSheetEmptyError(s.Sheet)
	}
	width := sheet.Width()
	for _, name := range s.columnNames() {
		idx := s.Columns[name]
		if idx >= width {
			return core.NewColumnMissingError(s.Sheet, name, idx)
		}
	}
	return nil
}

func (s SheetSchema) columnNames() []string {
	names := make([]string, 0, len(s.Columns))
	for name := range s.Columns {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Fixed layouts of the Suivi Global tracker.
var (
	SchemaTraitementPA = SheetSchema{
		Sheet: SheetTraitementPA,
		Columns: map[string]int{
			ColDate:          2,
			ColCollaborateur: 5,
			ColDuree:         7,
		},
	}
	SchemaCM = SheetSchema{
		Sheet: SheetCM,
		Columns: map[string]int{
			ColDate:          2,
			ColCollaborateur: 4,
			ColDuree:         6,
		},
	}
	SchemaUPR = SheetSchema{
		Sheet: SheetUPR,
		Columns: map[string]int{
			ColDate:  1,
			ColMotif: 3,
		},
	}
	Schema501511 = SheetSchema{
		Sheet: Sheet501511,
		Columns: map[string]int{
			ColDate:      1,
			ColCategorie: 2,
		},
	}
)

// RequiredSchemas lists every sheet a report generation depends on, in the
// order validation reports them.
func RequiredSchemas() []SheetSchema {
	return []SheetSchema{SchemaTraitementPA, SchemaCM, SchemaUPR, Schema501511}
}
