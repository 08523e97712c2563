package web

import (
	"net/http"

	"github.com/JonMunkholm/atelier/internal/web/templates"
)

// handleDashboard renders the list pages grouped by role with record counts.
func (s *Server) handleDashboard(w http.ResponseWriter, r *http.Request) {
	summaries, err := s.service.Summaries(r.Context())
	if err != nil {
		s.respondError(w, r, err)
		return
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	templates.Dashboard(summaries).Render(r.Context(), w)
}

// handleListTables returns all tables organized by group.
func (s *Server) handleListTables(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, s.service.ListTablesByGroup())
}

// handleSummary returns the record count of every table.
func (s *Server) handleSummary(w http.ResponseWriter, r *http.Request) {
	summaries, err := s.service.Summaries(r.Context())
	if err != nil {
		s.respondError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, summaries)
}
