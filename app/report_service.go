package app

import (
	"context"
	"sync"
	"time"

	"golang.org/x/sync/errgroup"

	"pladria/domain/core"
	"pladria/domain/report"
	"pladria/domain/workbook"
	"pladria/internal"
	"pladria/internal/analysis"
	"pladria/internal/validation"
	"pladria/ports"
)

// ReportService runs the aggregation pipeline over a loaded workbook:
// structural validation, date filtering, the two DMT families, the dashboard
// sections, and the semantic findings. The workbook is read-only for the
// whole generation, so the four aggregates run concurrently.
type ReportService struct {
	wb  ports.WorkbookPort
	log *internal.Logger
}

// NewReportService creates a report service over a loaded workbook.
func NewReportService(wb ports.WorkbookPort) *ReportService {
	return &ReportService{
		wb:  wb,
		log: internal.NewDefaultLogger("ReportService"),
	}
}

// Generate produces the dashboard payload for an inclusive date range.
// A structural failure aborts before any metric is computed and returns a
// single blocking error naming the offending sheet or column. All other
// anomalies accumulate into the validation report returned with the payload.
func (s *ReportService) Generate(ctx context.Context, r core.DateRange) (*report.DashboardPayload, *report.ValidationReport, error) {
	if err := validation.ValidateStructure(s.wb, workbook.RequiredSchemas()); err != nil {
		s.log.Error("structural validation failed: %v", err)
		return nil, nil, err
	}

	start := time.Now()
	var (
		mu      sync.Mutex
		vreport report.ValidationReport

		dmtPA, dmtCM analysis.FamilyResult
		upr, t501511 analysis.SectionResult
	)

	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		res, err := s.computeFamily(ctx, "DMT-PA", workbook.SchemaTraitementPA, r, &mu, &vreport)
		dmtPA = res
		return err
	})
	g.Go(func() error {
		res, err := s.computeFamily(ctx, "DMT-CM", workbook.SchemaCM, r, &mu, &vreport)
		dmtCM = res
		return err
	})
	g.Go(func() error {
		res, err := s.computeSection(ctx, report.SectionUPR, workbook.SchemaUPR, r, analysis.ExtractUPR, &mu, &vreport)
		upr = res
		return err
	})
	g.Go(func() error {
		res, err := s.computeSection(ctx, report.Section501511, workbook.Schema501511, r, analysis.Extract501511, &mu, &vreport)
		t501511 = res
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, nil, err
	}

	payload := &report.DashboardPayload{
		GeneratedAt:   time.Now().UTC(),
		Range:         r,
		DMTPA:         dmtPA.Means,
		DMTCM:         dmtCM.Means,
		UPR:           upr.Counts,
		Tickets501511: t501511.Counts,
	}

	s.log.Info("report generated for %s in %.2fms (%d findings)",
		r, float64(time.Since(start).Nanoseconds())/1e6, len(vreport.Findings))
	return payload, &vreport, nil
}

func (s *ReportService) computeFamily(ctx context.Context, family string, schema workbook.SheetSchema, r core.DateRange, mu *sync.Mutex, vreport *report.ValidationReport) (analysis.FamilyResult, error) {
	if err := ctx.Err(); err != nil {
		return analysis.FamilyResult{}, err
	}
	sheet, _ := s.wb.Sheet(schema.Sheet)
	filtered, err := analysis.FilterByDate(sheet, schema, r)
	if err != nil {
		return analysis.FamilyResult{}, err
	}
	res, err := analysis.ComputeDMT(filtered, schema)
	if err != nil {
		return analysis.FamilyResult{}, err
	}
	mu.Lock()
	validation.DateFindings(vreport, schema.Sheet, filtered.Excluded)
	validation.FamilyFindings(vreport, family, schema.Sheet, res.NoData, res.ExcludedDurations)
	mu.Unlock()
	return res, nil
}

func (s *ReportService) computeSection(ctx context.Context, section string, schema workbook.SheetSchema, r core.DateRange, extract func(analysis.FilteredRows, workbook.SheetSchema) (analysis.SectionResult, error), mu *sync.Mutex, vreport *report.ValidationReport) (analysis.SectionResult, error) {
	if err := ctx.Err(); err != nil {
		return analysis.SectionResult{}, err
	}
	sheet, _ := s.wb.Sheet(schema.Sheet)
	filtered, err := analysis.FilterByDate(sheet, schema, r)
	if err != nil {
		return analysis.SectionResult{}, err
	}
	res, err := extract(filtered, schema)
	if err != nil {
		return analysis.SectionResult{}, err
	}
	mu.Lock()
	validation.DateFindings(vreport, schema.Sheet, filtered.Excluded)
	validation.SectionFindings(vreport, section, schema.Sheet, res.Counts, res.Unrecognized)
	mu.Unlock()
	return res, nil
}
