package web

import (
	"bytes"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/JonMunkholm/acme-reports/internal/logging"
	"github.com/JonMunkholm/acme-reports/internal/report"
	"github.com/JonMunkholm/acme-reports/internal/web/templates"
	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
)

// ReportInfo is the JSON shape of a report listing entry.
type ReportInfo struct {
	Key         string `json:"key"`
	Label       string `json:"label"`
	Description string `json:"description"`
	URL         string `json:"url"`
}

func reportInfos() []ReportInfo {
	defs := report.All()
	infos := make([]ReportInfo, len(defs))
	for i, def := range defs {
		infos[i] = ReportInfo{
			Key:         def.Info.Key,
			Label:       def.Info.Label,
			Description: def.Info.Description,
			URL:         "/api/reports/" + def.Info.Key,
		}
	}
	return infos
}

func (s *Server) handleIndex(w http.ResponseWriter, r *http.Request) {
	entries := make([]templates.ReportEntry, 0)
	for _, info := range reportInfos() {
		entries = append(entries, templates.ReportEntry{
			Key:         info.Key,
			Label:       info.Label,
			Description: info.Description,
			URL:         info.URL,
		})
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := templates.Index(entries, s.dataset.Counts()).Render(r.Context(), w); err != nil {
		logging.FromContext(r.Context()).Error("render index", "error", err)
	}
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, map[string]any{
		"status":  "ok",
		"dataset": s.dataset.Counts(),
	})
}

func (s *Server) handleListReports(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, reportInfos())
}

// handleReport computes a report and writes it in the negotiated format.
// The body is buffered so a formatting error still yields an error status.
func (s *Server) handleReport(w http.ResponseWriter, r *http.Request) {
	key := chi.URLParam(r, "reportKey")
	format := negotiateFormat(r)
	start := time.Now()

	table, err := report.Generate(key, s.dataset)
	if err != nil {
		s.respondError(w, r, err, http.StatusNotFound)
		return
	}

	var body bytes.Buffer
	formatter, err := report.NewFormatter(format, &body)
	if err != nil {
		s.respondError(w, r, err, http.StatusBadRequest)
		return
	}
	if err := formatter.Format(table); err != nil {
		s.respondError(w, r, fmt.Errorf("formatting %s: %w", key, err), http.StatusInternalServerError)
		return
	}

	reportID := uuid.New().String()
	w.Header().Set("Content-Type", report.ContentType(format))
	w.Header().Set("X-Report-ID", reportID)
	if format == report.FormatParquet {
		w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", key+report.Extension(format)))
	}
	if _, err := w.Write(body.Bytes()); err != nil {
		logging.FromContext(r.Context()).Warn("write report", "report", key, "error", err)
		return
	}

	s.metrics.ReportsGenerated.WithLabelValues(key, format).Inc()
	s.metrics.ReportDurationSec.WithLabelValues(key).Observe(time.Since(start).Seconds())
	s.metrics.ReportRows.WithLabelValues(key).Set(float64(table.Len()))

	logging.FromContext(r.Context()).Info("report generated",
		"report", key,
		"format", format,
		"rows", table.Len(),
		"report_id", reportID,
	)
}

// negotiateFormat picks the output format from ?format= or the Accept header.
func negotiateFormat(r *http.Request) string {
	if f := r.URL.Query().Get("format"); f != "" {
		return strings.ToLower(f)
	}

	accept := r.Header.Get("Accept")
	switch {
	case strings.Contains(accept, "json"):
		return report.FormatJSON
	case strings.Contains(accept, "parquet"):
		return report.FormatParquet
	case strings.Contains(accept, "text/plain"):
		return report.FormatTable
	default:
		return report.FormatCSV
	}
}

// writeJSON encodes v as JSON and writes it to w.
// Logs encoding errors since headers are already sent.
func writeJSON(w http.ResponseWriter, v any) {
	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(v); err != nil {
		slog.Error("json encode error", "error", err)
	}
}
