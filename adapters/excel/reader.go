// Package excel reads the Suivi Global tracker through excelize and exposes
// it as an immutable in-memory workbook.
package excel

import (
	"fmt"
	"os"
	"time"

	"github.com/xuri/excelize/v2"

	"pladria/domain/core"
	"pladria/domain/workbook"
	"pladria/internal"
)

// WorkbookReader loads an .xlsx tracker from disk.
type WorkbookReader struct {
	filePath string
	log      *internal.Logger
}

// NewWorkbookReader creates a reader for the given file path.
func NewWorkbookReader(filePath string) *WorkbookReader {
	return &WorkbookReader{
		filePath: filePath,
		log:      internal.NewDefaultLogger("WorkbookReader"),
	}
}

// Load opens the file and reads every sheet into memory. The returned
// workbook is read-only; later report generations reuse it without touching
// the file again.
func (r *WorkbookReader) Load() (*Workbook, error) {
	if _, err := os.Stat(r.filePath); os.IsNotExist(err) {
		return nil, fmt.Errorf("%w: %s", core.ErrWorkbookNotFound, r.filePath)
	}

	start := time.Now()
	f, err := excelize.OpenFile(r.filePath)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", core.ErrWorkbookInvalid, err)
	}
	defer f.Close()
	r.log.Debug("workbook opened in %.2fms", float64(time.Since(start).Nanoseconds())/1e6)

	wb := &Workbook{sheets: make(map[string]workbook.Sheet)}
	for _, name := range f.GetSheetList() {
		rawRows, err := f.GetRows(name)
		if err != nil {
			return nil, fmt.Errorf("failed to read sheet %q: %w", name, err)
		}
		rows := make([]workbook.Row, len(rawRows))
		for i, raw := range rawRows {
			rows[i] = workbook.Row(raw)
		}
		wb.order = append(wb.order, name)
		wb.sheets[name] = workbook.Sheet{Name: name, Rows: rows}
		r.log.Debug("sheet %q read (%d rows)", name, len(rows))
	}

	r.log.Info("workbook %s loaded (%d sheets) in %.2fms",
		r.filePath, len(wb.order), float64(time.Since(start).Nanoseconds())/1e6)
	return wb, nil
}

// Workbook is an ordered, read-only collection of sheets.
type Workbook struct {
	order  []string
	sheets map[string]workbook.Sheet
}

// SheetNames returns the sheet names in workbook order.
func (w *Workbook) SheetNames() []string {
	names := make([]string, len(w.order))
	copy(names, w.order)
	return names
}

// Sheet returns the named sheet; ok is false when the workbook has no sheet
// under that exact, case-sensitive name.
func (w *Workbook) Sheet(name string) (workbook.Sheet, bool) {
	s, ok := w.sheets[name]
	return s, ok
}
