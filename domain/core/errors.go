package core

import (
	"errors"
	"fmt"
)

// Domain errors - centralized error definitions
var (
	// Structural errors abort a report generation before any metric is computed.
	ErrStructural    = errors.New("structural error")
	ErrSheetMissing  = fmt.Errorf("%w: required sheet missing", ErrStructural)
	ErrColumnMissing = fmt.Errorf("%w: required column missing", ErrStructural)
	ErrSheetEmpty    = fmt.Errorf("%w: required sheet empty", ErrStructural)

	// Workbook errors
	ErrWorkbookNotFound = errors.New("workbook file not found")
	ErrWorkbookInvalid  = errors.New("workbook format invalid")

	// Range errors
	ErrInvalidDate = errors.New("unparseable date value")

	// Task errors
	ErrTaskSuperseded = errors.New("task result superseded by a newer generation")
)

// Error constructors with context
func NewSheetMissingError(sheet string) error {
	return fmt.Errorf("%w: %q", ErrSheetMissing, sheet)
}

func NewSheetEmptyError(sheet string) error {
	return fmt.Errorf("%w: %q", ErrSheetEmpty, sheet)
}

func NewColumnMissingError(sheet, column string, index int) error {
	return fmt.Errorf("%w: %q (index %d) in sheet %q", ErrColumnMissing, column, index, sheet)
}

// Error checking helpers
func IsStructuralError(err error) bool {
	return errors.Is(err, ErrStructural)
}

func IsWorkbookError(err error) bool {
	return errors.Is(err, ErrWorkbookNotFound) ||
		errors.Is(err, ErrWorkbookInvalid)
}
