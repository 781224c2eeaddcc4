// Package site exposes the export pipeline over HTTP. It is the server-side
// analog of the portal export button: POST a page snapshot, get back the
// calendar file.
package site

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/rs/zerolog/log"

	"cunycal/calendar"
	"cunycal/exporter"
	"cunycal/scraper"
	"cunycal/settings"
)

// Server serves the export and settings endpoints.
type Server struct {
	Exporter exporter.Exporter
	Settings *settings.Store

	// Now overrides the clock driving semester fallbacks; nil means time.Now.
	Now func() time.Time
}

type exportRequest struct {
	URL  string `json:"url"`
	HTML string `json:"html"`
}

type errorResponse struct {
	Error string `json:"error"`
}

// Routes builds the request mux.
func (s *Server) Routes() *http.ServeMux {
	mux := http.NewServeMux()
	mux.HandleFunc("/export", s.handleExport)
	mux.HandleFunc("/settings", s.handleSettings)
	mux.HandleFunc("/health", s.handleHealth)
	return mux
}

// ListenAndServe blocks serving the export API on addr.
func (s *Server) ListenAndServe(addr string) error {
	log.Info().Str("addr", addr).Msg("starting export server")
	return http.ListenAndServe(addr, s.Routes())
}

func (s *Server) now() time.Time {
	if s.Now != nil {
		return s.Now()
	}
	return time.Now()
}

func (s *Server) handleExport(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		writeError(w, http.StatusMethodNotAllowed, "POST required")
		return
	}

	var req exportRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "malformed request body")
		return
	}

	page, err := scraper.NewPage(req.URL, req.HTML)
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	result, err := s.Exporter.Export(r.Context(), page, s.now())
	switch {
	case errors.Is(err, exporter.ErrNoSchedule):
		writeError(w, http.StatusNotFound, err.Error())
		return
	case err != nil:
		log.Error().Err(err).Str("url", req.URL).Msg("export failed")
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}

	w.Header().Set("Content-Type", exporter.MIMEType)
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", result.Filename))
	fmt.Fprint(w, result.Document)
}

// handleSettings reads or updates the reminder lead time, the server-side
// counterpart of the extension options page.
func (s *Server) handleSettings(w http.ResponseWriter, r *http.Request) {
	switch r.Method {
	case http.MethodGet:
		writeJSON(w, http.StatusOK, s.Settings.Get(r.Context()))
	case http.MethodPost:
		var req calendar.ExportSettings
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			writeError(w, http.StatusBadRequest, "malformed request body")
			return
		}
		if req.ReminderMinutes < 0 {
			writeError(w, http.StatusBadRequest, "reminderMinutes must be zero or positive")
			return
		}
		if err := s.Settings.Put(r.Context(), req); err != nil {
			writeError(w, http.StatusInternalServerError, err.Error())
			return
		}
		writeJSON(w, http.StatusOK, req)
	default:
		writeError(w, http.StatusMethodNotAllowed, "GET or POST required")
	}
}

func (s *Server) handleHealth(w http.ResponseWriter, _ *http.Request) {
	w.WriteHeader(http.StatusOK)
	fmt.Fprint(w, "ok")
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		log.Error().Err(err).Msg("writing response")
	}
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, errorResponse{Error: msg})
}
