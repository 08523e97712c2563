package web

import (
	"fmt"
	"net/http"
	"strings"

	"github.com/JonMunkholm/atelier/internal/core"
	"github.com/JonMunkholm/atelier/internal/table"
	"github.com/go-chi/chi/v5"
)

// createSessionResponse is returned when a table session is opened.
type createSessionResponse struct {
	ID       string      `json:"id"`
	TableKey string      `json:"tableKey"`
	State    table.State `json:"state"`
}

// handleCreateSession opens a table session with the table's default state.
func (s *Server) handleCreateSession(w http.ResponseWriter, r *http.Request) {
	tableKey := chi.URLParam(r, "tableKey")

	sess, err := s.service.CreateSession(r.Context(), tableKey)
	if err != nil {
		s.respondError(w, r, err)
		return
	}

	if isHTMX(r) {
		s.respondView(w, r, sess.ID, http.StatusCreated)
		return
	}
	writeJSON(w, http.StatusCreated, createSessionResponse{
		ID:       sess.ID.String(),
		TableKey: sess.TableKey,
		State:    sess.State(),
	})
}

// handleDeleteSession closes a session.
func (s *Server) handleDeleteSession(w http.ResponseWriter, r *http.Request) {
	id, err := sessionID(r)
	if err != nil {
		s.respondError(w, r, err)
		return
	}
	s.service.CloseSession(id)
	w.WriteHeader(http.StatusNoContent)
}

// applyAndRespond runs a transition built from the request, then responds
// with the recomputed page.
func (s *Server) applyAndRespond(w http.ResponseWriter, r *http.Request, build func() (core.Transition, error)) {
	id, err := sessionID(r)
	if err != nil {
		s.respondError(w, r, err)
		return
	}
	tr, err := build()
	if err != nil {
		s.respondError(w, r, err)
		return
	}
	if _, err := s.service.Apply(r.Context(), id, tr); err != nil {
		s.respondError(w, r, err)
		return
	}
	s.respondView(w, r, id, http.StatusOK)
}

// handleToggleSort toggles sorting on a column id.
func (s *Server) handleToggleSort(w http.ResponseWriter, r *http.Request) {
	s.applyAndRespond(w, r, func() (core.Transition, error) {
		return core.ToggleSort(chi.URLParam(r, "columnID")), nil
	})
}

// handleClearSort removes the active sort.
func (s *Server) handleClearSort(w http.ResponseWriter, r *http.Request) {
	s.applyAndRespond(w, r, func() (core.Transition, error) {
		return core.ClearSort(), nil
	})
}

// handleSearch sets the search query from form field q.
func (s *Server) handleSearch(w http.ResponseWriter, r *http.Request) {
	s.applyAndRespond(w, r, func() (core.Transition, error) {
		if err := r.ParseForm(); err != nil {
			return nil, fmt.Errorf("%w: %v", errBadRequest, err)
		}
		return core.SetSearch(r.PostForm.Get("q")), nil
	})
}

// handleFilter sets the filter on form field "field". An empty value
// removes the filter.
func (s *Server) handleFilter(w http.ResponseWriter, r *http.Request) {
	s.applyAndRespond(w, r, func() (core.Transition, error) {
		if err := r.ParseForm(); err != nil {
			return nil, fmt.Errorf("%w: %v", errBadRequest, err)
		}
		field := strings.TrimSpace(r.PostForm.Get("field"))
		if field == "" {
			return nil, fmt.Errorf("%w: field is required", errBadRequest)
		}
		value := r.PostForm.Get("value")
		if value == "" {
			return core.RemoveFilter(field), nil
		}

		op := table.Operator(r.PostForm.Get("op"))
		if op == "" {
			op = table.OpContains
		}
		if !op.Known() {
			return nil, fmt.Errorf("%w: unknown operator %q", errBadRequest, op)
		}
		return core.SetFilter(table.FilterConfig{Field: field, Operator: op, Value: value}), nil
	})
}

// handleSetPage moves the session to a page. Pages past the end are clamped
// by the view.
func (s *Server) handleSetPage(w http.ResponseWriter, r *http.Request) {
	s.applyAndRespond(w, r, func() (core.Transition, error) {
		page, err := positiveIntParam(r, "page")
		if err != nil {
			return nil, err
		}
		return core.SetPage(page), nil
	})
}

// handleSetPageSize changes the page size, capped at the configured maximum.
func (s *Server) handleSetPageSize(w http.ResponseWriter, r *http.Request) {
	s.applyAndRespond(w, r, func() (core.Transition, error) {
		size, err := positiveIntParam(r, "size")
		if err != nil {
			return nil, err
		}
		return core.SetPageSize(s.service.ClampPageSize(size)), nil
	})
}
