package table

import (
	"cmp"
	"math"
	"slices"
	"strings"
	"time"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"
)

// Direction is a sort direction.
type Direction string

const (
	Asc  Direction = "asc"
	Desc Direction = "desc"
)

// SortConfig is the single active sort. Key is a column ID.
type SortConfig struct {
	Key       string    `json:"key"`
	Direction Direction `json:"direction"`
}

// Sort returns a stably ordered copy of records. A nil config or a key that
// names no column returns a copy in the original order.
func Sort(records []Record, sc *SortConfig, columns Columns) []Record {
	out := slices.Clone(records)
	if out == nil {
		out = []Record{}
	}
	if sc == nil {
		return out
	}
	col, ok := columns.Find(sc.Key)
	if !ok {
		return out
	}

	cmpFn := comparator(col, records)
	sign := 1
	if sc.Direction == Desc {
		sign = -1
	}

	// Accessor output is computed once per record rather than per comparison.
	type keyed struct {
		rec Record
		key any
	}
	rows := make([]keyed, len(out))
	for i, r := range out {
		rows[i] = keyed{rec: r, key: col.Value(r)}
	}
	slices.SortStableFunc(rows, func(a, b keyed) int {
		return sign * cmpFn(a.key, b.key)
	})
	for i := range rows {
		out[i] = rows[i].rec
	}
	return out
}

// comparator returns the comparison strategy for a column, sniffing the
// data once when CompareAs is CompareAuto.
func comparator(col Column, records []Record) func(a, b any) int {
	kind := col.CompareAs
	if kind == CompareAuto {
		kind = detectKind(col, records)
	}

	switch kind {
	case CompareNumber:
		return compareNumbers
	case CompareDate:
		return compareDates
	default:
		// A Collator keeps internal buffers, so each sort gets its own.
		c := collate.New(language.Und)
		return func(a, b any) int {
			return c.CompareString(strings.ToLower(Stringify(a)), strings.ToLower(Stringify(b)))
		}
	}
}

// compareNumbers orders numerically; values with no numeric reading sort
// after all numbers.
func compareNumbers(a, b any) int {
	x, y := ToNumber(a), ToNumber(b)
	xNaN, yNaN := math.IsNaN(x), math.IsNaN(y)
	switch {
	case xNaN && yNaN:
		return 0
	case xNaN:
		return 1
	case yNaN:
		return -1
	}
	return cmp.Compare(x, y)
}

// compareDates orders by epoch millisecond; non-dates sort after all dates.
func compareDates(a, b any) int {
	x, xok := a.(time.Time)
	y, yok := b.(time.Time)
	switch {
	case !xok && !yok:
		return 0
	case !xok:
		return 1
	case !yok:
		return -1
	}
	return cmp.Compare(x.UnixMilli(), y.UnixMilli())
}
