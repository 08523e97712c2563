package catalog

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/JonMunkholm/atelier/internal/core"
	"github.com/JonMunkholm/atelier/internal/table"
)

const measurementsYAML = `
tables:
  - key: measurements
    group: Tailor
    label: Measurements
    source: shop.measurements
    page_size: 20
    nested_fields: true
    search_fields: [client.lastName, garment]
    initial_filters:
      - {field: status, operator: equals, value: open}
    columns:
      - {id: client, header: Client, join: [client.firstName, client.lastName], sortable: true}
      - {id: garment, header: Garment, field: garment, sortable: true, width: 160px}
      - {id: chest, header: Chest (cm), path: sizes.chest, sortable: true, compare_as: number}
      - {id: code, join: [garment, status], separator: "-"}
`

func TestParse(t *testing.T) {
	defs, err := Parse([]byte(measurementsYAML))
	if err != nil {
		t.Fatalf("Parse() error = %v", err)
	}
	if len(defs) != 1 {
		t.Fatalf("Parse() length = %d, want 1", len(defs))
	}

	def := defs[0]
	if def.Info.Key != "measurements" || def.Info.Group != "Tailor" {
		t.Errorf("Info = %+v, want measurements/Tailor", def.Info)
	}
	if def.SourceName() != "shop.measurements" {
		t.Errorf("SourceName() = %q, want %q", def.SourceName(), "shop.measurements")
	}
	if def.PageSize != 20 || !def.NestedFields {
		t.Errorf("PageSize, NestedFields = %d, %v; want 20, true", def.PageSize, def.NestedFields)
	}
	if len(def.InitialFilters) != 1 || def.InitialFilters[0].Operator != table.OpEquals {
		t.Errorf("InitialFilters = %+v, want one equals filter", def.InitialFilters)
	}

	rec := table.Record{
		"client":  map[string]any{"firstName": "Awa", "lastName": "Diop"},
		"garment": "Boubou",
		"status":  "open",
		"sizes":   map[string]any{"chest": 96},
	}

	tests := []struct {
		id   string
		want any
	}{
		{"client", "Awa Diop"},
		{"garment", "Boubou"},
		{"chest", 96},
		{"code", "Boubou-open"},
	}
	for _, tt := range tests {
		col, ok := def.Columns.Find(tt.id)
		if !ok {
			t.Errorf("column %s missing", tt.id)
			continue
		}
		if got := col.Value(rec); got != tt.want {
			t.Errorf("column %s value = %v, want %v", tt.id, got, tt.want)
		}
	}

	chest, _ := def.Columns.Find("chest")
	if chest.CompareAs != table.CompareNumber {
		t.Errorf("chest CompareAs = %q, want number", chest.CompareAs)
	}
	code, _ := def.Columns.Find("code")
	if code.Header != "code" {
		t.Errorf("code Header = %q, want id fallback", code.Header)
	}
}

func TestParse_Errors(t *testing.T) {
	tests := []struct {
		name    string
		doc     string
		wantErr string
	}{
		{
			name:    "unknown key",
			doc:     "tables:\n  - key: x\n    colums: []\n",
			wantErr: "colums",
		},
		{
			name:    "no accessor",
			doc:     "tables:\n  - key: x\n    columns:\n      - {id: a}\n",
			wantErr: "exactly one of field, path or join",
		},
		{
			name:    "two accessors",
			doc:     "tables:\n  - key: x\n    columns:\n      - {id: a, field: a, path: b.c}\n",
			wantErr: "exactly one of field, path or join",
		},
		{
			name:    "bad compare_as",
			doc:     "tables:\n  - key: x\n    columns:\n      - {id: a, field: a, compare_as: money}\n",
			wantErr: "compare_as",
		},
		{
			name:    "duplicate column id",
			doc:     "tables:\n  - key: x\n    columns:\n      - {id: a, field: a}\n      - {id: a, field: b}\n",
			wantErr: "duplicate column id",
		},
		{
			name:    "unknown initial operator",
			doc:     "tables:\n  - key: x\n    initial_filters: [{field: a, operator: regex, value: y}]\n    columns:\n      - {id: a, field: a}\n",
			wantErr: "unknown operator",
		},
		{
			name:    "missing key",
			doc:     "tables:\n  - columns:\n      - {id: a, field: a}\n",
			wantErr: "missing key",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse([]byte(tt.doc))
			if err == nil {
				t.Fatalf("Parse() expected error containing %q", tt.wantErr)
			}
			if !strings.Contains(err.Error(), tt.wantErr) {
				t.Errorf("Parse() error = %v, want it to contain %q", err, tt.wantErr)
			}
		})
	}
}

func TestParse_Empty(t *testing.T) {
	defs, err := Parse(nil)
	if err != nil {
		t.Fatalf("Parse(nil) error = %v", err)
	}
	if len(defs) != 0 {
		t.Errorf("Parse(nil) length = %d, want 0", len(defs))
	}
}

func TestLoadFile(t *testing.T) {
	core.Clear()
	defer core.Clear()

	path := filepath.Join(t.TempDir(), "catalog.yaml")
	if err := os.WriteFile(path, []byte(measurementsYAML), 0o600); err != nil {
		t.Fatal(err)
	}

	n, err := LoadFile(path)
	if err != nil {
		t.Fatalf("LoadFile() error = %v", err)
	}
	if n != 1 {
		t.Errorf("LoadFile() = %d, want 1", n)
	}
	if _, ok := core.Get("measurements"); !ok {
		t.Error("measurements not registered")
	}

	if _, err := LoadFile(path); err == nil {
		t.Error("LoadFile() twice should fail on duplicate key")
	}

	if _, err := LoadFile(filepath.Join(t.TempDir(), "missing.yaml")); !errors.Is(err, os.ErrNotExist) {
		t.Errorf("LoadFile(missing) error = %v, want os.ErrNotExist", err)
	}
}
