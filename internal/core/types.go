// Package core provides the list-page service behind the admin tables.
// This package has no UI dependencies and can be used by any frontend.
package core

import (
	"fmt"

	"github.com/JonMunkholm/atelier/internal/table"
)

// ColumnInfo is the serializable part of a column: everything but the accessor.
type ColumnInfo struct {
	ID       string `json:"id"`
	Header   string `json:"header"`
	Sortable bool   `json:"sortable"`
	Width    string `json:"width,omitempty"`
}

// TableInfo contains display information about a list page.
type TableInfo struct {
	Key          string       `json:"key"`   // Unique identifier: "orders"
	Group        string       `json:"group"` // Role section: "Admin", "Tailor", "Client"
	Label        string       `json:"label"` // Display name: "Orders"
	Columns      []ColumnInfo `json:"columns"`
	SearchFields []string     `json:"searchFields"`
	PageSize     int          `json:"pageSize"`
}

// TableDefinition contains everything needed to serve one list page.
type TableDefinition struct {
	Info           TableInfo
	Source         string // Relation name for PgSource; defaults to Info.Key
	Columns        table.Columns
	SearchFields   []string
	InitialFilters []table.FilterConfig
	PageSize       int  // 0 uses the configured default
	NestedFields   bool // Resolve dotted filter/search fields through nested objects
}

// Validate checks the definition for caller errors that would make sort or
// width lookups ambiguous.
func (d TableDefinition) Validate() error {
	if d.Info.Key == "" {
		return fmt.Errorf("%w: missing key", ErrInvalidDefinition)
	}
	if len(d.Columns) == 0 {
		return fmt.Errorf("%w: table %s has no columns", ErrInvalidDefinition, d.Info.Key)
	}
	seen := make(map[string]bool, len(d.Columns))
	for _, c := range d.Columns {
		if c.ID == "" {
			return fmt.Errorf("%w: table %s has a column without id", ErrInvalidDefinition, d.Info.Key)
		}
		if seen[c.ID] {
			return fmt.Errorf("%w: table %s has duplicate column id %q", ErrInvalidDefinition, d.Info.Key, c.ID)
		}
		seen[c.ID] = true
	}
	if d.PageSize < 0 {
		return fmt.Errorf("%w: table %s has negative page size", ErrInvalidDefinition, d.Info.Key)
	}
	return nil
}

// SourceName returns the relation the records are loaded from.
func (d TableDefinition) SourceName() string {
	if d.Source != "" {
		return d.Source
	}
	return d.Info.Key
}

// Table returns the engine view of the definition. nested forces dotted-path
// resolution even when the definition does not ask for it.
func (d TableDefinition) Table(nested bool) table.Table {
	t := table.Table{Columns: d.Columns, SearchFields: d.SearchFields}
	if nested || d.NestedFields {
		t.Resolve = table.NestedField
	}
	return t
}

// TableRow is one displayed row: column id to accessor output.
type TableRow map[string]any

// TableDataResult contains one computed page of a list.
type TableDataResult struct {
	TableKey      string         `json:"tableKey"`
	SessionID     string         `json:"sessionId,omitempty"`
	Columns       []ColumnInfo   `json:"columns"`
	Rows          []TableRow     `json:"rows"`
	Records       []table.Record `json:"-"`
	TotalFiltered int            `json:"totalFiltered"`
	TotalPages    int            `json:"totalPages"`
	State         table.State    `json:"state"`
}

// TableSummary is the dashboard entry for one list page.
type TableSummary struct {
	Info        TableInfo `json:"info"`
	RecordCount int64     `json:"recordCount"`
	Error       string    `json:"error,omitempty"`
}

// columnInfos strips accessors from a column model.
func columnInfos(cols table.Columns) []ColumnInfo {
	out := make([]ColumnInfo, len(cols))
	for i, c := range cols {
		out[i] = ColumnInfo{ID: c.ID, Header: c.Header, Sortable: c.Sortable, Width: c.Width}
	}
	return out
}

// displayRows applies every accessor to every record.
func displayRows(records []table.Record, cols table.Columns) []TableRow {
	rows := make([]TableRow, len(records))
	for i, r := range records {
		row := make(TableRow, len(cols))
		for _, c := range cols {
			row[c.ID] = c.Value(r)
		}
		rows[i] = row
	}
	return rows
}
