package web

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"net/http"

	"github.com/JonMunkholm/atelier/internal/core"
	"github.com/JonMunkholm/atelier/internal/logging"
	"github.com/JonMunkholm/atelier/internal/table"
	"github.com/JonMunkholm/atelier/internal/web/templates"
	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
)

// handleTableView computes one page from query parameters without a session.
func (s *Server) handleTableView(w http.ResponseWriter, r *http.Request) {
	tableKey := chi.URLParam(r, "tableKey")

	state, err := s.queryState(tableKey, r)
	if err != nil {
		s.respondError(w, r, err)
		return
	}

	res, err := s.service.Query(r.Context(), tableKey, state)
	if err != nil {
		s.respondError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, res)
}

// queryState builds the state for a sessionless request: the table's
// default state with query parameters applied.
func (s *Server) queryState(tableKey string, r *http.Request) (table.State, error) {
	def, err := s.service.Definition(tableKey)
	if err != nil {
		return table.State{}, err
	}
	base, err := s.service.DefaultState(tableKey)
	if err != nil {
		return table.State{}, err
	}
	return applyQuery(table.Table{Columns: def.Columns}, base, r.URL.Query(), s.service.ClampPageSize), nil
}

// handleSessionView returns the current page of a session.
func (s *Server) handleSessionView(w http.ResponseWriter, r *http.Request) {
	id, err := sessionID(r)
	if err != nil {
		s.respondError(w, r, err)
		return
	}
	s.respondView(w, r, id, http.StatusOK)
}

// respondView renders the session's current page as JSON or, for HTMX, as
// the table fragment.
func (s *Server) respondView(w http.ResponseWriter, r *http.Request, id uuid.UUID, status int) {
	res, err := s.viewClamped(r.Context(), id)
	if err != nil {
		s.respondError(w, r, err)
		return
	}

	if isHTMX(r) {
		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		w.WriteHeader(status)
		if err := templates.Table(res).Render(r.Context(), w); err != nil {
			logging.FromContext(r.Context()).Error("render table", "error", err)
		}
		return
	}
	writeJSON(w, status, res)
}

// viewClamped computes the view and, when the current page lies past the
// last page (e.g. a filter removed rows), moves the session to the last
// page and recomputes.
func (s *Server) viewClamped(ctx context.Context, id uuid.UUID) (*core.TableDataResult, error) {
	res, err := s.service.View(ctx, id)
	if err != nil {
		return nil, err
	}
	page := res.State.CurrentPage
	if res.TotalPages == 0 || page <= res.TotalPages {
		return res, nil
	}

	if _, err := s.service.Apply(ctx, id, core.SetPage(table.ClampPage(page, res.TotalPages))); err != nil {
		return nil, err
	}
	return s.service.View(ctx, id)
}

// handleTableExport sends the filtered and sorted rows for query parameters.
func (s *Server) handleTableExport(w http.ResponseWriter, r *http.Request) {
	tableKey := chi.URLParam(r, "tableKey")

	state, err := s.queryState(tableKey, r)
	if err != nil {
		s.respondError(w, r, err)
		return
	}
	s.export(w, r, func(out io.Writer) (string, error) {
		return s.service.ExportTable(r.Context(), tableKey, state, out)
	})
}

// handleSessionExport sends the filtered and sorted rows of a session.
func (s *Server) handleSessionExport(w http.ResponseWriter, r *http.Request) {
	id, err := sessionID(r)
	if err != nil {
		s.respondError(w, r, err)
		return
	}
	s.export(w, r, func(out io.Writer) (string, error) {
		return s.service.Export(r.Context(), id, out)
	})
}

// export buffers the payload so a load failure can still produce an error
// response, then sends it as a download.
func (s *Server) export(w http.ResponseWriter, r *http.Request, run func(io.Writer) (string, error)) {
	var buf bytes.Buffer
	filename, err := run(&buf)
	if err != nil {
		s.respondError(w, r, err)
		return
	}

	w.Header().Set("Content-Type", s.service.ContentType())
	w.Header().Set("Content-Disposition", fmt.Sprintf(`attachment; filename="%s"`, filename))
	w.WriteHeader(http.StatusOK)
	if _, err := buf.WriteTo(w); err != nil {
		logging.FromContext(r.Context()).Warn("export write failed", "error", err)
	}
}
