// Package analysis implements the aggregation core of the report pipeline:
// date-window filtering, per-collaborator mean treatment durations and the
// dashboard section counts.
package analysis

import (
	"pladria/domain/core"
	"pladria/domain/workbook"
)

// FilteredRows is the stable subsequence of one sheet's rows whose date cell
// falls within an inclusive window, plus the count of rows excluded because
// their date cell was missing or unparseable.
type FilteredRows struct {
	Sheet    string
	Rows     []workbook.Row
	Excluded int
}

// FilterByDate selects the rows of a sheet whose date column falls within
// the inclusive range. The filter is a pure function: it preserves row
// order, never consumes its input, and can be re-run over the same sheet.
// Rows with no parseable date are excluded and tallied, not errored.
func FilterByDate(sheet workbook.Sheet, schema workbook.SheetSchema, r core.DateRange) (FilteredRows, error) {
	dateCol, err := schema.Column(workbook.ColDate)
	if err != nil {
		return FilteredRows{}, err
	}

	out := FilteredRows{Sheet: sheet.Name}
	if r.IsEmpty() {
		return out, nil
	}
	for _, row := range sheet.Rows {
		raw, _ := row.Cell(dateCol)
		d, err := core.ParseDate(raw)
		if err != nil {
			out.Excluded++
			continue
		}
		if r.Contains(d) {
			out.Rows = append(out.Rows, row)
		}
	}
	return out, nil
}
