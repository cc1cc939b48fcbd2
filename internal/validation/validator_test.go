package validation

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"pladria/domain/core"
	"pladria/domain/report"
	"pladria/domain/workbook"
	"pladria/internal/testkit"
)

func TestValidateStructureOK(t *testing.T) {
	wb := testkit.FullWorkbook().Build()
	assert.NoError(t, ValidateStructure(wb, workbook.RequiredSchemas()))
}

func TestValidateStructureMissingSheet(t *testing.T) {
	wb := testkit.NewWorkbookBuilder().
		AddSheet(workbook.SheetTraitementPA, testkit.PARow("06/01/2025", "Alice", "10")).
		Build()

	err := ValidateStructure(wb, workbook.RequiredSchemas())
	require.ErrorIs(t, err, core.ErrSheetMissing)
	assert.Contains(t, err.Error(), `"CM"`, "error names the missing sheet")
	assert.True(t, core.IsStructuralError(err))
}

func TestValidateStructureNarrowSheet(t *testing.T) {
	wb := testkit.FullWorkbook().
		AddSheet(workbook.SheetCM, []string{"only", "three", "cells"}).
		Build()

	err := ValidateStructure(wb, workbook.RequiredSchemas())
	require.ErrorIs(t, err, core.ErrColumnMissing)
	assert.Contains(t, err.Error(), workbook.SheetCM)
}

func TestSectionFindings(t *testing.T) {
	var v report.ValidationReport
	counts := report.NewSectionCounts(report.UPRBuckets())
	SectionFindings(&v, report.SectionUPR, workbook.SheetUPR, counts, []string{"RAS"})

	require.Len(t, v.Findings, 2)
	assert.False(t, v.HasBlocking(), "semantic anomalies are advisory")

	codes := []string{v.Findings[0].Code, v.Findings[1].Code}
	assert.Contains(t, codes, report.CodeUnrecognizedMotif)
	assert.Contains(t, codes, report.CodeEmptySection)
}

func TestFamilyFindings(t *testing.T) {
	var v report.ValidationReport
	FamilyFindings(&v, "DMT-PA", workbook.SheetTraitementPA, []string{"Alice"}, 3)

	require.Len(t, v.Findings, 2)
	assert.Equal(t, report.CodeNoQualifyingData, v.Findings[0].Code)
	assert.Equal(t, "Alice", v.Findings[0].Category)
	assert.Equal(t, report.CodeExcludedRows, v.Findings[1].Code)
}

func TestDateFindingsSilentAtZero(t *testing.T) {
	var v report.ValidationReport
	DateFindings(&v, workbook.SheetCM, 0)
	assert.Empty(t, v.Findings)
}
