package table

import "time"

// Accessor extracts the display value of one column from a record.
// It must be deterministic and free of side effects.
type Accessor func(r Record) any

// CompareKind selects how the sort stage compares two accessor outputs.
type CompareKind string

const (
	CompareAuto   CompareKind = ""       // sniff the first non-nil value
	CompareNumber CompareKind = "number" // numeric, via ToNumber
	CompareDate   CompareKind = "date"   // by epoch millisecond
	CompareString CompareKind = "string" // case-insensitive collation
)

// Column describes one displayed column.
type Column struct {
	ID        string      // Stable identity used for sorting and width lookup
	Header    string      // Display label only
	Accessor  Accessor    // Extracts the value shown and compared
	Sortable  bool        // Toggling sort on a non-sortable column is a no-op
	Width     string      // Display hint, e.g. "120px"
	CompareAs CompareKind // Comparison strategy; CompareAuto sniffs the data
}

// Value applies the column's accessor. A column without an accessor yields nil.
func (c Column) Value(r Record) any {
	if c.Accessor == nil {
		return nil
	}
	return c.Accessor(r)
}

// Columns is an ordered column model.
type Columns []Column

// Find returns the first column with the given id.
// Duplicate ids are a caller error; the first match wins.
func (cs Columns) Find(id string) (Column, bool) {
	for _, c := range cs {
		if c.ID == id {
			return c, true
		}
	}
	return Column{}, false
}

// Width returns the width hint for a column id, or "" if unknown.
func (cs Columns) Width(id string) string {
	c, ok := cs.Find(id)
	if !ok {
		return ""
	}
	return c.Width
}

// Headers returns the display headers in declared order.
func (cs Columns) Headers() []string {
	headers := make([]string, len(cs))
	for i, c := range cs {
		headers[i] = c.Header
	}
	return headers
}

// Field returns an accessor reading one field with DirectField.
func Field(name string) Accessor {
	return func(r Record) any {
		v, _ := DirectField(r, name)
		return v
	}
}

// Path returns an accessor reading a dotted path with NestedField.
func Path(path string) Accessor {
	return func(r Record) any {
		v, _ := NestedField(r, path)
		return v
	}
}

// detectKind picks a comparison strategy from the first non-nil value the
// column produces over records.
func detectKind(c Column, records []Record) CompareKind {
	for _, r := range records {
		v := c.Value(r)
		if v == nil {
			continue
		}
		if _, ok := v.(time.Time); ok {
			return CompareDate
		}
		if isNumber(v) {
			return CompareNumber
		}
		return CompareString
	}
	return CompareString
}
