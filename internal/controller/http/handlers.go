package http

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/m-mizutani/ctxlog"
	"github.com/m-mizutani/goerr/v2"

	"PoliceDigest/internal/dashboard"
	"PoliceDigest/internal/domain"
)

const (
	defaultExportLimit = 20
	maxExportLimit     = 200
)

var errBadRequest = goerr.New("bad request")

type digestResponse struct {
	Digest     domain.DailyDigest `json:"digest"`
	Alerts     []domain.Alert     `json:"alerts"`
	Generation uint64             `json:"generation"`
}

type analyticsResponse struct {
	Date      string                 `json:"date"`
	Overview  dashboard.Overview     `json:"overview"`
	Districts []domain.DistrictStats `json:"districts"`
	Weather   *domain.WeatherImpact  `json:"weather,omitempty"`
}

func handleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, r, http.StatusOK, map[string]string{
		"status":  "healthy",
		"service": "police-digest",
	})
}

func (s *Server) handleStatus(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, r, http.StatusOK, s.session.Status())
}

// handleProcess runs processing synchronously and answers with the new
// snapshot. A request overtaken by a newer one gets 409.
func (s *Server) handleProcess(w http.ResponseWriter, r *http.Request) {
	today := s.now()
	day, err := dashboard.ParseDay(r.URL.Query().Get("date"), today)
	if err != nil {
		writeError(w, r, goerr.Wrap(errBadRequest, err.Error()))
		return
	}
	if err := dashboard.CheckDay(day, today); err != nil {
		writeError(w, r, err)
		return
	}

	snap, err := s.session.Process(r.Context(), day)
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, r, http.StatusOK, digestResponse{Digest: snap.Digest, Alerts: snap.Alerts, Generation: snap.Generation})
}

func (s *Server) handleDigest(w http.ResponseWriter, r *http.Request) {
	snap, err := s.session.Snapshot()
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, r, http.StatusOK, digestResponse{Digest: snap.Digest, Alerts: snap.Alerts, Generation: snap.Generation})
}

func (s *Server) handleClusters(w http.ResponseWriter, r *http.Request) {
	filter, err := dashboard.ParseFilter(r.URL.Query().Get("priority"))
	if err != nil {
		writeError(w, r, goerr.Wrap(errBadRequest, err.Error()))
		return
	}
	clusters, err := s.session.Clusters(filter, r.URL.Query().Get("q"))
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, r, http.StatusOK, map[string]any{
		"filter":   filter,
		"count":    len(clusters),
		"clusters": clusters,
	})
}

func (s *Server) handleCluster(w http.ResponseWriter, r *http.Request) {
	cluster, err := s.session.Cluster(chi.URLParam(r, "id"))
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, r, http.StatusOK, cluster)
}

func (s *Server) handleAlerts(w http.ResponseWriter, r *http.Request) {
	alerts, err := s.session.Alerts()
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, r, http.StatusOK, map[string]any{"alerts": alerts})
}

func (s *Server) handleDismiss(w http.ResponseWriter, r *http.Request) {
	if err := s.session.Dismiss(chi.URLParam(r, "id")); err != nil {
		writeError(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (s *Server) handleAnalytics(w http.ResponseWriter, r *http.Request) {
	snap, err := s.session.Snapshot()
	if err != nil {
		writeError(w, r, err)
		return
	}
	overview, err := s.session.Overview()
	if err != nil {
		writeError(w, r, err)
		return
	}
	districts, err := s.session.Analytics()
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, r, http.StatusOK, analyticsResponse{
		Date:      snap.Digest.Date,
		Overview:  overview,
		Districts: districts,
		Weather:   snap.Digest.WeatherImpact,
	})
}

// handleReport renders into memory first so a failed render still gets a
// JSON error instead of a truncated PDF.
func (s *Server) handleReport(w http.ResponseWriter, r *http.Request) {
	var buf bytes.Buffer
	result, err := s.session.WriteReport(r.Context(), &buf)
	if err != nil {
		writeError(w, r, err)
		return
	}

	w.Header().Set("Content-Type", "application/pdf")
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", result.FileName))
	w.Header().Set("Content-Length", strconv.Itoa(buf.Len()))
	w.WriteHeader(http.StatusOK)
	if _, err := buf.WriteTo(w); err != nil {
		ctxlog.From(r.Context()).Error("Failed to write report", "error", err)
	}
}

func (s *Server) handleExports(w http.ResponseWriter, r *http.Request) {
	limit := defaultExportLimit
	if v := r.URL.Query().Get("limit"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil || n <= 0 {
			writeError(w, r, goerr.Wrap(errBadRequest, "limit must be a positive integer", goerr.V("limit", v)))
			return
		}
		limit = min(n, maxExportLimit)
	}

	records, err := s.session.Exports(r.Context(), limit)
	if err != nil {
		writeError(w, r, err)
		return
	}
	if records == nil {
		records = []domain.ExportRecord{}
	}
	writeJSON(w, r, http.StatusOK, map[string]any{"exports": records})
}

func writeJSON(w http.ResponseWriter, r *http.Request, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		ctxlog.From(r.Context()).Error("Failed to encode response", "error", err)
	}
}

func statusOf(err error) int {
	switch {
	case errors.Is(err, errBadRequest), errors.Is(err, dashboard.ErrDayOutOfRange):
		return http.StatusBadRequest
	case errors.Is(err, domain.ErrNoDigest),
		errors.Is(err, domain.ErrClusterNotFound),
		errors.Is(err, domain.ErrAlertNotFound):
		return http.StatusNotFound
	case errors.Is(err, domain.ErrSuperseded):
		return http.StatusConflict
	default:
		return http.StatusInternalServerError
	}
}

func writeError(w http.ResponseWriter, r *http.Request, err error) {
	status := statusOf(err)
	if status >= http.StatusInternalServerError {
		ctxlog.From(r.Context()).Error("Request failed", "error", err, "path", r.URL.Path)
	}
	writeJSON(w, r, status, map[string]string{"error": err.Error()})
}
