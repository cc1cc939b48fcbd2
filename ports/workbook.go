package ports

import "pladria/domain/workbook"

// WorkbookPort provides read-only access to a loaded workbook. The workbook
// is immutable for the lifetime of a report generation; implementations must
// not mutate sheets after Load returns.
type WorkbookPort interface {
	// SheetNames returns the sheet names in workbook order.
	SheetNames() []string
	// Sheet returns the named sheet; ok is false when it does not exist.
	Sheet(name string) (workbook.Sheet, bool)
}
