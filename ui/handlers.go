package ui

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"pladria/app"
	"pladria/domain/core"
	"pladria/domain/report"
)

// reportResponse is the wire shape of GET /api/report.
type reportResponse struct {
	Payload  *report.DashboardPayload `json:"payload"`
	Findings []report.Finding         `json:"findings"`
}

type errorResponse struct {
	Error string `json:"error"`
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

// handleReport generates the dashboard payload for the requested range.
// The generation runs on the task runner; if a newer request for the same
// task name lands while this one is in flight, the stale result is dropped
// and the client told to retry.
func (s *Server) handleReport(w http.ResponseWriter, r *http.Request) {
	rng, err := parseRange(r.URL.Query().Get("start"), r.URL.Query().Get("end"))
	if err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: err.Error()})
		return
	}

	task := s.dispatcher.Submit(r.Context(), "report", func(ctx context.Context) (*app.GenerationOutcome, error) {
		payload, findings, err := s.service.Generate(ctx, rng)
		if err != nil {
			return nil, err
		}
		return &app.GenerationOutcome{Payload: payload, Findings: findings}, nil
	})

	res, err := task.Await(r.Context())
	if err != nil {
		writeJSON(w, http.StatusRequestTimeout, errorResponse{Error: err.Error()})
		return
	}
	if err := s.dispatcher.Accept(res); err != nil {
		switch {
		case errors.Is(err, core.ErrTaskSuperseded):
			writeJSON(w, http.StatusConflict, errorResponse{Error: err.Error()})
		case core.IsStructuralError(err):
			writeJSON(w, http.StatusUnprocessableEntity, errorResponse{Error: err.Error()})
		default:
			writeJSON(w, http.StatusInternalServerError, errorResponse{Error: err.Error()})
		}
		return
	}

	findings := res.Outcome.Findings.Findings
	if findings == nil {
		findings = []report.Finding{}
	}
	writeJSON(w, http.StatusOK, reportResponse{
		Payload:  res.Outcome.Payload,
		Findings: findings,
	})
}

func parseRange(start, end string) (core.DateRange, error) {
	const layout = "2006-01-02"
	s, err := time.Parse(layout, start)
	if err != nil {
		return core.DateRange{}, errors.New("start must be a YYYY-MM-DD date")
	}
	e, err := time.Parse(layout, end)
	if err != nil {
		return core.DateRange{}, errors.New("end must be a YYYY-MM-DD date")
	}
	return core.NewDateRange(s, e), nil
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
