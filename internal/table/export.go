package table

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"io"
	"strings"
)

// Exporter serializes the filtered, sorted and unpaginated rows of a table.
type Exporter interface {
	Export(w io.Writer, records []Record, columns Columns) error
	ContentType() string
	Extension() string
}

// CSVExporter writes a header row of column headers followed by one row per
// record with accessor outputs in column order.
//
// With Legacy set, fields are joined with "," verbatim: commas, quotes and
// newlines inside values are not escaped. Otherwise fields are quoted per
// RFC 4180.
type CSVExporter struct {
	Legacy bool
}

func (CSVExporter) ContentType() string { return "text/csv" }
func (CSVExporter) Extension() string   { return "csv" }

// Export writes records to w.
func (e CSVExporter) Export(w io.Writer, records []Record, columns Columns) error {
	if e.Legacy {
		return exportLegacy(w, records, columns)
	}

	cw := csv.NewWriter(w)
	if err := cw.Write(columns.Headers()); err != nil {
		return fmt.Errorf("write header: %w", err)
	}
	row := make([]string, len(columns))
	for _, r := range records {
		for i, c := range columns {
			row[i] = ExportValue(c.Value(r))
		}
		if err := cw.Write(row); err != nil {
			return fmt.Errorf("write row: %w", err)
		}
	}
	cw.Flush()
	return cw.Error()
}

func exportLegacy(w io.Writer, records []Record, columns Columns) error {
	if _, err := io.WriteString(w, strings.Join(columns.Headers(), ",")); err != nil {
		return fmt.Errorf("write header: %w", err)
	}
	row := make([]string, len(columns))
	for _, r := range records {
		for i, c := range columns {
			row[i] = ExportValue(c.Value(r))
		}
		if _, err := io.WriteString(w, "\n"+strings.Join(row, ",")); err != nil {
			return fmt.Errorf("write row: %w", err)
		}
	}
	return nil
}

// ExportValue renders one accessor output. Primitives use Stringify; any
// other value, dates included, is JSON encoded.
func ExportValue(v any) string {
	switch v.(type) {
	case nil:
		return ""
	case string, bool, float64, float32, int, int32, int64, uint, uint32, uint64, json.Number:
		return Stringify(v)
	}
	b, err := json.Marshal(v)
	if err != nil {
		return Stringify(v)
	}
	return string(b)
}
