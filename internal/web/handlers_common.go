package web

// handlers_common.go parses table view parameters from requests.

import (
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"strings"

	"github.com/JonMunkholm/atelier/internal/table"
	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
)

// sessionID reads the {sessionID} URL parameter.
func sessionID(r *http.Request) (uuid.UUID, error) {
	raw := chi.URLParam(r, "sessionID")
	id, err := uuid.Parse(raw)
	if err != nil {
		return uuid.Nil, fmt.Errorf("%w: invalid session id %q", errBadRequest, raw)
	}
	return id, nil
}

// positiveIntParam reads a positive integer URL parameter.
func positiveIntParam(r *http.Request, name string) (int, error) {
	raw := chi.URLParam(r, name)
	n, err := strconv.Atoi(raw)
	if err != nil || n < 1 {
		return 0, fmt.Errorf("%w: %s must be a positive integer, got %q", errBadRequest, name, raw)
	}
	return n, nil
}

// parseIntQuery parses an integer query parameter with a default value.
func parseIntQuery(q url.Values, name string, defaultVal int) int {
	val := q.Get(name)
	if val == "" {
		return defaultVal
	}
	i, err := strconv.Atoi(val)
	if err != nil || i < 1 {
		return defaultVal
	}
	return i
}

// parseFilters extracts filter[field]=op:value query parameters.
// Entries with an unknown operator or empty value are skipped.
func parseFilters(q url.Values) []table.FilterConfig {
	var filters []table.FilterConfig
	for key, values := range q {
		if !strings.HasPrefix(key, "filter[") || !strings.HasSuffix(key, "]") {
			continue
		}
		field := key[len("filter[") : len(key)-1]
		if field == "" {
			continue
		}
		for _, val := range values {
			op, value, ok := strings.Cut(val, ":")
			if !ok || value == "" {
				continue
			}
			f := table.FilterConfig{Field: field, Operator: table.Operator(op), Value: value}
			if !f.Operator.Known() {
				continue
			}
			filters = append(filters, f)
		}
	}
	return filters
}

// applyQuery layers query parameters over base: filters replace any active
// filter on the same field, then search, sort, page size and finally page.
// A sort on an unknown or non-sortable column is ignored.
func applyQuery(t table.Table, base table.State, q url.Values, clampSize func(int) int) table.State {
	s := base
	for _, f := range parseFilters(q) {
		s = s.SetFilter(f)
	}
	if q.Has("search") {
		s = s.SetSearch(q.Get("search"))
	}
	if key := q.Get("sort"); key != "" {
		dir := table.Asc
		if strings.EqualFold(q.Get("dir"), string(table.Desc)) {
			dir = table.Desc
		}
		s = t.SetSort(s, key, dir)
	}
	if q.Has("size") {
		s = s.SetPageSize(clampSize(parseIntQuery(q, "size", s.ItemsPerPage)))
	}
	return s.SetPage(parseIntQuery(q, "page", 1))
}
