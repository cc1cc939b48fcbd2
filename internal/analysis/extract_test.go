package analysis

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"pladria/domain/report"
	"pladria/domain/workbook"
	"pladria/internal/testkit"
)

func uprFiltered(t *testing.T, rows ...[]string) FilteredRows {
	t.Helper()
	sheet, _ := testkit.NewWorkbookBuilder().
		AddSheet(workbook.SheetUPR, rows...).
		Build().
		Sheet(workbook.SheetUPR)
	filtered, err := FilterByDate(sheet, workbook.SchemaUPR, rangeOf(1, 31))
	require.NoError(t, err)
	return filtered
}

func ticketFiltered(t *testing.T, rows ...[]string) FilteredRows {
	t.Helper()
	sheet, _ := testkit.NewWorkbookBuilder().
		AddSheet(workbook.Sheet501511, rows...).
		Build().
		Sheet(workbook.Sheet501511)
	filtered, err := FilterByDate(sheet, workbook.Schema501511, rangeOf(1, 31))
	require.NoError(t, err)
	return filtered
}

func TestExtractUPRMergesLabelVariants(t *testing.T) {
	res, err := ExtractUPR(uprFiltered(t,
		testkit.UPRRow("06/01/2025", "UPR OK"),
		testkit.UPRRow("06/01/2025", "upr-ok"),
		testkit.UPRRow("06/01/2025", "UPR_OK"),
		testkit.UPRRow("06/01/2025", "UPR NOK"),
	), workbook.SchemaUPR)
	require.NoError(t, err)

	assert.Equal(t, 3, res.Counts[report.BucketUPRCree], "variant noise must not fragment counts")
	assert.Equal(t, 1, res.Counts[report.BucketUPRNon])
	assert.Empty(t, res.Unrecognized)
}

func TestExtractUPRBucketCompleteness(t *testing.T) {
	res, err := ExtractUPR(uprFiltered(t), workbook.SchemaUPR)
	require.NoError(t, err)

	assert.Equal(t, report.SectionCounts{
		report.BucketUPRCree: 0,
		report.BucketUPRNon:  0,
	}, res.Counts, "every declared bucket present even at zero")
}

func TestExtractUPRUnrecognizedReported(t *testing.T) {
	res, err := ExtractUPR(uprFiltered(t,
		testkit.UPRRow("06/01/2025", "RAS"),
		testkit.UPRRow("06/01/2025", "UPR OK"),
	), workbook.SchemaUPR)
	require.NoError(t, err)

	assert.Equal(t, 1, res.Counts[report.BucketUPRCree])
	assert.Equal(t, []string{"RAS"}, res.Unrecognized, "unknown labels are reported, not bucketed")
}

func TestExtract501511(t *testing.T) {
	res, err := Extract501511(ticketFiltered(t,
		testkit.TicketRow("06/01/2025", "501"),
		testkit.TicketRow("06/01/2025", "511"),
		testkit.TicketRow("06/01/2025", " 501 "),
		testkit.TicketRow("06/01/2025", "502"),
	), workbook.Schema501511)
	require.NoError(t, err)

	assert.Equal(t, 2, res.Counts[report.Bucket501])
	assert.Equal(t, 1, res.Counts[report.Bucket511])
	assert.Equal(t, []string{"502"}, res.Unrecognized)
}

func TestExtract501511BucketCompleteness(t *testing.T) {
	res, err := Extract501511(ticketFiltered(t), workbook.Schema501511)
	require.NoError(t, err)

	assert.Equal(t, report.SectionCounts{
		report.Bucket501: 0,
		report.Bucket511: 0,
	}, res.Counts)
}
