package analysis

import (
	"strconv"
	"strings"

	"github.com/montanaflynn/stats"
	"github.com/samber/lo"

	"pladria/domain/report"
	"pladria/domain/workbook"
)

// FamilyResult is the outcome of one metric family (PA or CM): the computed
// means plus the collaborators that had no qualifying rows and the count of
// rows whose duration cell could not be used.
type FamilyResult struct {
	Sheet             string
	Means             report.DMTResult
	NoData            []string
	ExcludedDurations int
}

// ComputeDMT computes the mean treatment duration per collaborator over the
// date-filtered rows of one family sheet. Each collaborator's mean is
// computed from an independent subset; no accumulator is shared across
// collaborators. Collaborators whose every row has a zero, blank or
// non-numeric duration end up in NoData, never at 0.0.
func ComputeDMT(filtered FilteredRows, schema workbook.SheetSchema) (FamilyResult, error) {
	collabCol, err := schema.Column(workbook.ColCollaborateur)
	if err != nil {
		return FamilyResult{}, err
	}
	durCol, err := schema.Column(workbook.ColDuree)
	if err != nil {
		return FamilyResult{}, err
	}

	result := FamilyResult{
		Sheet: filtered.Sheet,
		Means: make(report.DMTResult),
	}

	roster := collaborators(filtered.Rows, collabCol)
	for _, name := range roster {
		mean, ok, skipped := collaboratorMean(filtered.Rows, collabCol, durCol, name)
		result.ExcludedDurations += skipped
		if ok {
			result.Means[name] = mean
		} else {
			result.NoData = append(result.NoData, name)
		}
	}
	return result, nil
}

// collaborators returns the distinct trimmed collaborator names of the row
// set, in first-appearance order. Names keep their case: display identity
// matters, so "Alice" and "ALICE" are two collaborators.
func collaborators(rows []workbook.Row, collabCol int) []string {
	names := lo.FilterMap(rows, func(row workbook.Row, _ int) (string, bool) {
		name, _ := row.Cell(collabCol)
		return name, name != ""
	})
	return lo.Uniq(names)
}

// collaboratorMean computes the arithmetic mean of the strictly positive
// numeric durations of the rows belonging to one collaborator. The second
// result is false when no row qualifies; the third counts rows that matched
// the collaborator but were dropped by the duration filter.
func collaboratorMean(rows []workbook.Row, collabCol, durCol int, collaborator string) (float64, bool, int) {
	target := strings.TrimSpace(collaborator)
	skipped := 0
	var durations []float64
	for _, row := range rows {
		name, _ := row.Cell(collabCol)
		if name != target {
			continue
		}
		raw, _ := row.Cell(durCol)
		d, ok := parseDuration(raw)
		if !ok || d <= 0 {
			skipped++
			continue
		}
		durations = append(durations, d)
	}
	if len(durations) == 0 {
		return 0, false, skipped
	}
	mean, err := stats.Mean(durations)
	if err != nil {
		return 0, false, skipped
	}
	return mean, true, skipped
}

// parseDuration reads a duration cell. The tracker is filled by French
// operators, so a decimal comma is accepted alongside the decimal point.
func parseDuration(raw string) (float64, bool) {
	v := strings.TrimSpace(raw)
	if v == "" {
		return 0, false
	}
	v = strings.ReplaceAll(v, ",", ".")
	d, err := strconv.ParseFloat(v, 64)
	if err != nil {
		return 0, false
	}
	return d, true
}
