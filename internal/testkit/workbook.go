// Package testkit builds synthetic Suivi Global workbooks for tests, both
// in memory and as real .xlsx files on disk.
package testkit

import (
	"fmt"

	"github.com/xuri/excelize/v2"

	"pladria/domain/workbook"
)

// WorkbookBuilder assembles an in-memory workbook sheet by sheet.
type WorkbookBuilder struct {
	order  []string
	sheets map[string]workbook.Sheet
}

// NewWorkbookBuilder creates an empty builder.
func NewWorkbookBuilder() *WorkbookBuilder {
	return &WorkbookBuilder{sheets: make(map[string]workbook.Sheet)}
}

// AddSheet appends a sheet of raw rows. Adding a name twice replaces the
// earlier sheet but keeps its position.
func (b *WorkbookBuilder) AddSheet(name string, rows ...[]string) *WorkbookBuilder {
	wbRows := make([]workbook.Row, len(rows))
	for i, r := range rows {
		wbRows[i] = workbook.Row(r)
	}
	if _, exists := b.sheets[name]; !exists {
		b.order = append(b.order, name)
	}
	b.sheets[name] = workbook.Sheet{Name: name, Rows: wbRows}
	return b
}

// Build returns the workbook as a ports.WorkbookPort implementation.
func (b *WorkbookBuilder) Build() *FakeWorkbook {
	return &FakeWorkbook{order: b.order, sheets: b.sheets}
}

// WriteXLSX writes the built workbook to a real .xlsx file so reader tests
// can exercise the excelize path end to end.
func (b *WorkbookBuilder) WriteXLSX(path string) error {
	f := excelize.NewFile()
	defer f.Close()

	for i, name := range b.order {
		if i == 0 {
			if err := f.SetSheetName(f.GetSheetName(0), name); err != nil {
				return err
			}
		} else {
			if _, err := f.NewSheet(name); err != nil {
				return err
			}
		}
		for rowIdx, row := range b.sheets[name].Rows {
			for colIdx, val := range row {
				if val == "" {
					continue
				}
				cell, err := excelize.CoordinatesToCellName(colIdx+1, rowIdx+1)
				if err != nil {
					return err
				}
				if err := f.SetCellStr(name, cell, val); err != nil {
					return err
				}
			}
		}
	}
	if err := f.SaveAs(path); err != nil {
		return fmt.Errorf("failed to write workbook %s: %w", path, err)
	}
	return nil
}

// FakeWorkbook is an in-memory ports.WorkbookPort for tests.
type FakeWorkbook struct {
	order  []string
	sheets map[string]workbook.Sheet
}

func (w *FakeWorkbook) SheetNames() []string {
	names := make([]string, len(w.order))
	copy(names, w.order)
	return names
}

func (w *FakeWorkbook) Sheet(name string) (workbook.Sheet, bool) {
	s, ok := w.sheets[name]
	return s, ok
}

// PARow builds a "Traitement PA" row with the date, collaborator and
// duration cells at their fixed indices (2, 5, 7).
func PARow(date, collaborator, duration string) []string {
	row := make([]string, 8)
	row[2] = date
	row[5] = collaborator
	row[7] = duration
	return row
}

// CMRow builds a "CM" row with the date, collaborator and duration cells at
// their fixed indices (2, 4, 6).
func CMRow(date, collaborator, duration string) []string {
	row := make([]string, 7)
	row[2] = date
	row[4] = collaborator
	row[6] = duration
	return row
}

// UPRRow builds a "Suivi Tickets UPR" row with date and motif cells at
// their fixed indices (1, 3).
func UPRRow(date, motif string) []string {
	row := make([]string, 4)
	row[1] = date
	row[3] = motif
	return row
}

// TicketRow builds a "Tickets 501-511" row with date and category cells at
// their fixed indices (1, 2).
func TicketRow(date, category string) []string {
	row := make([]string, 3)
	row[1] = date
	row[2] = category
	return row
}

// FullWorkbook returns a builder preloaded with every required sheet and a
// small, plausible data set covering January 2025.
func FullWorkbook() *WorkbookBuilder {
	return NewWorkbookBuilder().
		AddSheet(workbook.SheetTraitementPA,
			PARow("06/01/2025", "Alice Martin", "12"),
			PARow("07/01/2025", "Alice Martin", "0"),
			PARow("08/01/2025", "Bruno Leroy", "8"),
			PARow("09/01/2025", "Alice Martin", "18"),
		).
		AddSheet(workbook.SheetCM,
			CMRow("06/01/2025", "Bruno Leroy", "20"),
			CMRow("07/01/2025", "Chloé Petit", "10"),
			CMRow("08/01/2025", "Chloé Petit", ""),
		).
		AddSheet(workbook.SheetUPR,
			UPRRow("06/01/2025", "UPR OK"),
			UPRRow("07/01/2025", "UPR-NOK"),
			UPRRow("08/01/2025", "upr_ok"),
		).
		AddSheet(workbook.Sheet501511,
			TicketRow("06/01/2025", "501"),
			TicketRow("07/01/2025", "511"),
			TicketRow("08/01/2025", "501"),
		)
}
