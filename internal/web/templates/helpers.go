// Package templates renders the HTML fragments swapped in by HTMX clients.
//
// The components live in the .templ files; the *_templ.go files are
// produced by `templ generate` and must not be edited by hand.
package templates

//go:generate templ generate

import (
	"strconv"
	"strings"
	"time"

	"github.com/JonMunkholm/atelier/internal/core"
	"github.com/JonMunkholm/atelier/internal/table"
)

// CellText renders an accessor output for display. Dates show as
// YYYY-MM-DD; slices are joined with ", ".
func CellText(v any) string {
	switch val := v.(type) {
	case time.Time:
		if val.IsZero() {
			return ""
		}
		return val.Format("2006-01-02")
	case []string:
		return strings.Join(val, ", ")
	}
	return table.Stringify(v)
}

func sessionPath(sessionID string, parts ...string) string {
	return "/api/sessions/" + sessionID + "/" + strings.Join(parts, "/")
}

func pagePath(sessionID string, page int) string {
	return sessionPath(sessionID, "page", strconv.Itoa(page))
}

func tableTarget(sessionID string) string {
	return "#table-" + sessionID
}

func headerText(c core.ColumnInfo, sc *table.SortConfig) string {
	if sc == nil || sc.Key != c.ID {
		return c.Header
	}
	if sc.Direction == table.Desc {
		return c.Header + " ▼"
	}
	return c.Header + " ▲"
}

func resultCount(n int) string {
	return strconv.Itoa(n) + " results"
}

// pageLabel reports at least one page so an empty view reads "Page 1 of 1".
func pageLabel(page, totalPages int) string {
	return "Page " + strconv.Itoa(page) + " of " + strconv.Itoa(max(totalPages, 1))
}

func recordCount(n int64) string {
	return strconv.FormatInt(n, 10) + " records"
}

type summaryGroup struct {
	Name   string
	Tables []core.TableSummary
}

// groupSummaries folds consecutive summaries with the same group name.
// Summaries arrive ordered by group, so each group appears once.
func groupSummaries(summaries []core.TableSummary) []summaryGroup {
	var groups []summaryGroup
	for _, s := range summaries {
		if n := len(groups); n > 0 && groups[n-1].Name == s.Info.Group {
			groups[n-1].Tables = append(groups[n-1].Tables, s)
			continue
		}
		groups = append(groups, summaryGroup{Name: s.Info.Group, Tables: []core.TableSummary{s}})
	}
	return groups
}
