// Package table implements the in-memory table engine used by every admin
// list page: a declarative column model plus the filter, search, sort and
// pagination stages, composed by an immutable State.
//
// The package performs no I/O. Every stage returns a new slice and never
// mutates the records it was given.
//
// # Pipeline
//
// A view is always computed in the same order:
//
//  1. Filter (all FilterConfigs ANDed) and Search (any search field matches)
//  2. Sort (at most one active column)
//  3. Paginate (1-based page, fixed page size)
//
// # Permissive defaults
//
// Malformed input never produces an error:
//
//   - unknown filter operator: record kept
//   - numeric filter on a non-numeric value: record excluded
//   - sort key naming no column: order unchanged
//   - page beyond the last page: empty slice
package table

import (
	"encoding/json"
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"
	"time"
)

// Record is one row of arbitrary shape, keyed by field name.
type Record map[string]any

// FieldResolver looks up a field on a record.
type FieldResolver func(r Record, field string) (any, bool)

// DirectField resolves field as a literal key. Dotted paths such as
// "client.name" are looked up verbatim and are not traversed.
func DirectField(r Record, field string) (any, bool) {
	v, ok := r[field]
	return v, ok
}

// NestedField resolves dotted paths by walking nested maps. A literal key
// containing dots takes precedence over traversal.
func NestedField(r Record, field string) (any, bool) {
	if v, ok := r[field]; ok {
		return v, true
	}

	var cur any = map[string]any(r)
	for _, part := range strings.Split(field, ".") {
		switch m := cur.(type) {
		case Record:
			v, ok := m[part]
			if !ok {
				return nil, false
			}
			cur = v
		case map[string]any:
			v, ok := m[part]
			if !ok {
				return nil, false
			}
			cur = v
		default:
			return nil, false
		}
	}
	return cur, true
}

// Stringify converts a value to the text used for filtering, searching and
// string sorting. nil becomes the empty string; whole floats print without
// a fractional part ("2" not "2.000000").
func Stringify(v any) string {
	switch val := v.(type) {
	case nil:
		return ""
	case string:
		return val
	case time.Time:
		return val.Format(time.RFC3339)
	case fmt.Stringer:
		return val.String()
	case bool:
		return strconv.FormatBool(val)
	case float64:
		return formatFloat(val)
	case float32:
		return formatFloat(float64(val))
	case int:
		return strconv.Itoa(val)
	case int32:
		return strconv.FormatInt(int64(val), 10)
	case int64:
		return strconv.FormatInt(val, 10)
	case uint:
		return strconv.FormatUint(uint64(val), 10)
	case uint32:
		return strconv.FormatUint(uint64(val), 10)
	case uint64:
		return strconv.FormatUint(val, 10)
	}
	return fmt.Sprint(v)
}

func formatFloat(f float64) string {
	switch {
	case math.IsNaN(f):
		return "NaN"
	case math.IsInf(f, 1):
		return "Infinity"
	case math.IsInf(f, -1):
		return "-Infinity"
	}
	return strconv.FormatFloat(f, 'f', -1, 64)
}

// ToNumber coerces a value to float64. It returns NaN when the value has no
// numeric reading: nil, non-numeric text, or a composite value.
// Blank text coerces to 0.
func ToNumber(v any) float64 {
	switch val := v.(type) {
	case nil:
		return math.NaN()
	case float64:
		return val
	case float32:
		return float64(val)
	case int:
		return float64(val)
	case int32:
		return float64(val)
	case int64:
		return float64(val)
	case uint:
		return float64(val)
	case uint32:
		return float64(val)
	case uint64:
		return float64(val)
	case bool:
		if val {
			return 1
		}
		return 0
	case time.Time:
		return float64(val.UnixMilli())
	case json.Number:
		f, err := val.Float64()
		if err != nil {
			return math.NaN()
		}
		return f
	case string:
		return parseNumber(val)
	}
	return math.NaN()
}

// parseNumber reads decimal text. Only "Infinity" with an optional sign
// spells an infinite value; "inf", "nan" and digit underscores are not
// numbers. Decimal overflow still yields ±Inf.
func parseNumber(text string) float64 {
	s := strings.TrimSpace(text)
	switch s {
	case "":
		return 0
	case "Infinity", "+Infinity":
		return math.Inf(1)
	case "-Infinity":
		return math.Inf(-1)
	}
	if strings.ContainsRune(s, '_') {
		return math.NaN()
	}
	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		if errors.Is(err, strconv.ErrRange) {
			return f
		}
		return math.NaN()
	}
	if math.IsInf(f, 0) || math.IsNaN(f) {
		return math.NaN()
	}
	return f
}

// isNumber reports whether v is a Go numeric type.
func isNumber(v any) bool {
	switch v.(type) {
	case float64, float32, int, int32, int64, uint, uint32, uint64, json.Number:
		return true
	}
	return false
}
