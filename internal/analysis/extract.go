package analysis

import (
	"github.com/samber/lo"

	"pladria/domain/motif"
	"pladria/domain/report"
	"pladria/domain/workbook"
)

// SectionResult holds one dashboard section's counts plus the raw labels
// that normalized to the unrecognized sentinel. Unrecognized labels are
// reported, not counted into any bucket, so label noise never fragments or
// inflates the section.
type SectionResult struct {
	Sheet        string
	Counts       report.SectionCounts
	Unrecognized []string
}

// ExtractUPR buckets the date-filtered UPR rows into created vs not-created
// tickets. The motif column goes through the normalizer first, so "UPR NOK",
// "upr-nok" and "UPR_NOK" land in the same bucket. Both bucket keys are
// always present, at zero when nothing matched.
func ExtractUPR(filtered FilteredRows, schema workbook.SheetSchema) (SectionResult, error) {
	motifCol, err := schema.Column(workbook.ColMotif)
	if err != nil {
		return SectionResult{}, err
	}

	result := SectionResult{
		Sheet:  filtered.Sheet,
		Counts: report.NewSectionCounts(report.UPRBuckets()),
	}
	for _, row := range filtered.Rows {
		raw, _ := row.Cell(motifCol)
		if raw == "" {
			continue
		}
		switch motif.Normalize(raw) {
		case motif.TagOK, motif.TagUPROK:
			result.Counts[report.BucketUPRCree]++
		case motif.TagNOK, motif.TagUPRNOK:
			result.Counts[report.BucketUPRNon]++
		default:
			result.Unrecognized = append(result.Unrecognized, raw)
		}
	}
	return result, nil
}

// Extract501511 counts the date-filtered ticket rows per category bucket.
// Category cells are matched on their trimmed value; anything that is not a
// declared bucket is reported as unrecognized.
func Extract501511(filtered FilteredRows, schema workbook.SheetSchema) (SectionResult, error) {
	catCol, err := schema.Column(workbook.ColCategorie)
	if err != nil {
		return SectionResult{}, err
	}

	buckets := report.Ticket501511Buckets()
	result := SectionResult{
		Sheet:  filtered.Sheet,
		Counts: report.NewSectionCounts(buckets),
	}
	for _, row := range filtered.Rows {
		raw, _ := row.Cell(catCol)
		if raw == "" {
			continue
		}
		if lo.Contains(buckets, raw) {
			result.Counts[raw]++
		} else {
			result.Unrecognized = append(result.Unrecognized, raw)
		}
	}
	return result, nil
}
