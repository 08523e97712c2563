// Package catalog loads additional list page definitions from a YAML file
// and registers them with the core registry.
//
// Example:
//
//	tables:
//	  - key: measurements
//	    group: Tailor
//	    label: Measurements
//	    source: shop.measurements
//	    page_size: 20
//	    nested_fields: true
//	    search_fields: [client.lastName, garment]
//	    initial_filters:
//	      - {field: status, operator: equals, value: open}
//	    columns:
//	      - {id: client, header: Client, join: [client.firstName, client.lastName], sortable: true}
//	      - {id: garment, header: Garment, field: garment, sortable: true, width: 160px}
//	      - {id: chest, header: Chest (cm), field: chest, sortable: true, compare_as: number}
package catalog

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/JonMunkholm/atelier/internal/core"
	"github.com/JonMunkholm/atelier/internal/table"
	"gopkg.in/yaml.v3"
)

// File is the top-level document.
type File struct {
	Tables []TableSpec `yaml:"tables"`
}

// TableSpec declares one list page.
type TableSpec struct {
	Key            string               `yaml:"key"`
	Group          string               `yaml:"group"`
	Label          string               `yaml:"label"`
	Source         string               `yaml:"source"`
	PageSize       int                  `yaml:"page_size"`
	NestedFields   bool                 `yaml:"nested_fields"`
	SearchFields   []string             `yaml:"search_fields"`
	InitialFilters []table.FilterConfig `yaml:"initial_filters"`
	Columns        []ColumnSpec         `yaml:"columns"`
}

// ColumnSpec declares one column. Exactly one of Field, Path or Join is used:
// Field reads a top-level key, Path walks a dotted path, and Join
// concatenates several paths with Separator (default " ").
type ColumnSpec struct {
	ID        string   `yaml:"id"`
	Header    string   `yaml:"header"`
	Field     string   `yaml:"field"`
	Path      string   `yaml:"path"`
	Join      []string `yaml:"join"`
	Separator *string  `yaml:"separator"`
	Sortable  bool     `yaml:"sortable"`
	Width     string   `yaml:"width"`
	CompareAs string   `yaml:"compare_as"`
}

// LoadFile reads path and registers every table it declares.
// Returns the number of tables registered.
func LoadFile(path string) (int, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return 0, fmt.Errorf("read catalog: %w", err)
	}
	defs, err := Parse(data)
	if err != nil {
		return 0, fmt.Errorf("%s: %w", path, err)
	}
	for _, def := range defs {
		if err := core.RegisterE(def); err != nil {
			return 0, fmt.Errorf("%s: %w", path, err)
		}
	}
	return len(defs), nil
}

// Parse decodes a catalog document into table definitions without
// registering them. Unknown keys are rejected.
func Parse(data []byte) ([]core.TableDefinition, error) {
	var f File
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&f); err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("parse catalog: %w", err)
	}

	defs := make([]core.TableDefinition, 0, len(f.Tables))
	for i, ts := range f.Tables {
		def, err := ts.Definition()
		if err != nil {
			return nil, fmt.Errorf("tables[%d]: %w", i, err)
		}
		defs = append(defs, def)
	}
	return defs, nil
}

// Definition converts the entry into a validated core definition.
func (ts TableSpec) Definition() (core.TableDefinition, error) {
	cols := make(table.Columns, 0, len(ts.Columns))
	for _, cs := range ts.Columns {
		col, err := cs.Column()
		if err != nil {
			return core.TableDefinition{}, fmt.Errorf("table %s: %w", ts.Key, err)
		}
		cols = append(cols, col)
	}

	for _, f := range ts.InitialFilters {
		if !f.Operator.Known() {
			return core.TableDefinition{}, fmt.Errorf("%w: table %s: unknown operator %q on %s",
				core.ErrInvalidDefinition, ts.Key, f.Operator, f.Field)
		}
	}

	def := core.TableDefinition{
		Info:           core.TableInfo{Key: ts.Key, Group: ts.Group, Label: ts.Label},
		Source:         ts.Source,
		Columns:        cols,
		SearchFields:   ts.SearchFields,
		InitialFilters: ts.InitialFilters,
		PageSize:       ts.PageSize,
		NestedFields:   ts.NestedFields,
	}
	if err := def.Validate(); err != nil {
		return core.TableDefinition{}, err
	}
	return def, nil
}

// Column builds the engine column, including its accessor.
func (cs ColumnSpec) Column() (table.Column, error) {
	kind, err := compareKind(cs.CompareAs)
	if err != nil {
		return table.Column{}, fmt.Errorf("column %s: %w", cs.ID, err)
	}
	acc, err := cs.accessor()
	if err != nil {
		return table.Column{}, fmt.Errorf("column %s: %w", cs.ID, err)
	}

	header := cs.Header
	if header == "" {
		header = cs.ID
	}
	return table.Column{
		ID:        cs.ID,
		Header:    header,
		Accessor:  acc,
		Sortable:  cs.Sortable,
		Width:     cs.Width,
		CompareAs: kind,
	}, nil
}

func (cs ColumnSpec) accessor() (table.Accessor, error) {
	set := 0
	for _, b := range []bool{cs.Field != "", cs.Path != "", len(cs.Join) > 0} {
		if b {
			set++
		}
	}
	if set != 1 {
		return nil, fmt.Errorf("%w: exactly one of field, path or join is required", core.ErrInvalidDefinition)
	}

	switch {
	case cs.Field != "":
		return table.Field(cs.Field), nil
	case cs.Path != "":
		return table.Path(cs.Path), nil
	}

	sep := " "
	if cs.Separator != nil {
		sep = *cs.Separator
	}
	paths := cs.Join
	return func(r table.Record) any {
		parts := make([]string, 0, len(paths))
		for _, p := range paths {
			v, _ := table.NestedField(r, p)
			if s := table.Stringify(v); s != "" {
				parts = append(parts, s)
			}
		}
		return strings.Join(parts, sep)
	}, nil
}

func compareKind(s string) (table.CompareKind, error) {
	switch k := table.CompareKind(strings.ToLower(s)); k {
	case table.CompareAuto, table.CompareNumber, table.CompareDate, table.CompareString:
		return k, nil
	}
	return "", fmt.Errorf("%w: unknown compare_as %q", core.ErrInvalidDefinition, s)
}
