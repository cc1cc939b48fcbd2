package report

import "fmt"

// Severity classifies a validation finding.
type Severity string

const (
	// SeverityBlocking aborts the report generation.
	SeverityBlocking Severity = "blocking"
	// SeverityAdvisory is surfaced to the operator but does not block.
	SeverityAdvisory Severity = "advisory"
)

// Finding codes. Each names the condition, not the mechanism.
const (
	CodeSheetMissing      = "sheet-missing"
	CodeColumnMissing     = "column-missing"
	CodeSheetEmpty        = "sheet-empty"
	CodeUnrecognizedMotif = "unrecognized-motif"
	CodeNoQualifyingData  = "no-qualifying-data"
	CodeExcludedRows      = "excluded-rows"
	CodeEmptySection      = "empty-section"
)

// Finding is a single validation result naming the offending sheet, column
// or category so the operator can fix the source file.
type Finding struct {
	Severity Severity `json:"severity"`
	Code     string   `json:"code"`
	Sheet    string   `json:"sheet,omitempty"`
	Column   string   `json:"column,omitempty"`
	Category string   `json:"category,omitempty"`
	Message  string   `json:"message"`
}

// ValidationReport accumulates findings across a report generation.
type ValidationReport struct {
	Findings []Finding `json:"findings"`
}

// Add appends a finding.
func (v *ValidationReport) Add(f Finding) {
	v.Findings = append(v.Findings, f)
}

// AddAdvisory appends an advisory finding with a formatted message.
func (v *ValidationReport) AddAdvisory(code, sheet string, format string, args ...any) {
	v.Add(Finding{
		Severity: SeverityAdvisory,
		Code:     code,
		Sheet:    sheet,
		Message:  fmt.Sprintf(format, args...),
	})
}

// HasBlocking reports whether any blocking finding was recorded.
func (v *ValidationReport) HasBlocking() bool {
	for _, f := range v.Findings {
		if f.Severity == SeverityBlocking {
			return true
		}
	}
	return false
}

// Advisories returns the advisory subset, preserving order.
func (v *ValidationReport) Advisories() []Finding {
	out := make([]Finding, 0, len(v.Findings))
	for _, f := range v.Findings {
		if f.Severity == SeverityAdvisory {
			out = append(out, f)
		}
	}
	return out
}
