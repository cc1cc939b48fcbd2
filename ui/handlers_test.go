package ui

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"pladria/app"
	"pladria/domain/report"
	"pladria/domain/workbook"
	"pladria/internal/testkit"
)

func newTestServer(t *testing.T, wb *testkit.FakeWorkbook) *Server {
	t.Helper()
	return NewServer(Config{Port: "0"}, app.NewReportService(wb))
}

func TestHandleHealth(t *testing.T) {
	srv := newTestServer(t, testkit.FullWorkbook().Build())

	rec := httptest.NewRecorder()
	srv.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/healthz", nil))
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestHandleReport(t *testing.T) {
	srv := newTestServer(t, testkit.FullWorkbook().Build())

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/report?start=2025-01-01&end=2025-01-31", nil)
	srv.Handler().ServeHTTP(rec, req)
	require.Equal(t, http.StatusOK, rec.Code)

	var body struct {
		Payload  report.DashboardPayload `json:"payload"`
		Findings []report.Finding        `json:"findings"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))

	assert.InDelta(t, 15.0, body.Payload.DMTPA["Alice Martin"], 1e-9)
	assert.Contains(t, body.Payload.UPR, report.BucketUPRCree)
	assert.Contains(t, body.Payload.UPR, report.BucketUPRNon)
	assert.NotNil(t, body.Findings)
}

func TestHandleReportBadRange(t *testing.T) {
	srv := newTestServer(t, testkit.FullWorkbook().Build())

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/report?start=January&end=2025-01-31", nil)
	srv.Handler().ServeHTTP(rec, req)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestHandleReportStructuralFailure(t *testing.T) {
	wb := testkit.NewWorkbookBuilder().
		AddSheet(workbook.SheetTraitementPA, testkit.PARow("06/01/2025", "Alice", "10")).
		Build()
	srv := newTestServer(t, wb)

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/report?start=2025-01-01&end=2025-01-31", nil)
	srv.Handler().ServeHTTP(rec, req)
	require.Equal(t, http.StatusUnprocessableEntity, rec.Code)

	var body struct {
		Error string `json:"error"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Contains(t, body.Error, `"CM"`)
}
