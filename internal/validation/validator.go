// Package validation checks the structural and semantic preconditions of a
// report generation. Structural failures block; semantic anomalies become
// advisory findings because a zero count can be a legitimate outcome for a
// given date range.
package validation

import (
	"pladria/domain/core"
	"pladria/domain/report"
	"pladria/domain/workbook"
	"pladria/ports"
)

// ValidateStructure verifies that every required sheet exists, is non-empty
// and is wide enough for its declared columns. The first failure is returned
// as a structural error naming the offending sheet or column; nothing is
// computed after a structural failure.
func ValidateStructure(wb ports.WorkbookPort, schemas []workbook.SheetSchema) error {
	for _, schema := range schemas {
		sheet, ok := wb.Sheet(schema.Sheet)
		if !ok {
			return core.NewSheetMissingError(schema.Sheet)
		}
		if err := schema.Validate(sheet); err != nil {
			return err
		}
	}
	return nil
}

// SectionFindings folds one extracted section into advisory findings:
// unrecognized labels and, for sections that usually carry traffic, an
// all-zero anomaly.
func SectionFindings(v *report.ValidationReport, section, sheet string, counts report.SectionCounts, unrecognized []string) {
	for _, label := range unrecognized {
		v.Add(report.Finding{
			Severity: report.SeverityAdvisory,
			Code:     report.CodeUnrecognizedMotif,
			Sheet:    sheet,
			Category: label,
			Message:  "label " + label + " in sheet " + sheet + " matches no known category",
		})
	}
	if counts.Total() == 0 {
		v.AddAdvisory(report.CodeEmptySection, sheet,
			"section %s has zero occurrences in every bucket for the selected range", section)
	}
}

// FamilyFindings folds one DMT family into advisory findings: a no-data
// marker per collaborator without qualifying rows, and a parse summary when
// duration cells were dropped.
func FamilyFindings(v *report.ValidationReport, family, sheet string, noData []string, excludedDurations int) {
	for _, name := range noData {
		v.Add(report.Finding{
			Severity: report.SeverityAdvisory,
			Code:     report.CodeNoQualifyingData,
			Sheet:    sheet,
			Category: name,
			Message:  "collaborator " + name + " has no qualifying " + family + " rows for the selected range",
		})
	}
	if excludedDurations > 0 {
		v.AddAdvisory(report.CodeExcludedRows, sheet,
			"%d %s rows excluded: duration cell zero, blank or non-numeric", excludedDurations, family)
	}
}

// DateFindings records a parse summary for rows dropped by the date filter.
func DateFindings(v *report.ValidationReport, sheet string, excludedDates int) {
	if excludedDates > 0 {
		v.AddAdvisory(report.CodeExcludedRows, sheet,
			"%d rows excluded from sheet %s: date cell missing or unparseable", excludedDates, sheet)
	}
}
