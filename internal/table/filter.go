package table

import (
	"math"
	"strings"
)

// Operator is a filter comparison operator.
type Operator string

const (
	OpEquals      Operator = "equals"
	OpContains    Operator = "contains"
	OpStartsWith  Operator = "startsWith"
	OpEndsWith    Operator = "endsWith"
	OpGreaterThan Operator = "greaterThan"
	OpLessThan    Operator = "lessThan"
)

// Operators lists the supported operators in display order.
var Operators = []Operator{OpEquals, OpContains, OpStartsWith, OpEndsWith, OpGreaterThan, OpLessThan}

// Known reports whether op is one of the supported operators.
func (op Operator) Known() bool {
	for _, o := range Operators {
		if o == op {
			return true
		}
	}
	return false
}

// FilterConfig is one (field, operator, value) predicate.
// Field addresses a record property, not a column.
type FilterConfig struct {
	Field    string   `json:"field" yaml:"field"`
	Operator Operator `json:"operator" yaml:"operator"`
	Value    string   `json:"value" yaml:"value"`
}

// Matches evaluates a single predicate against a record.
// Unknown operators match everything. Numeric operators exclude the record
// when either side is not a number.
func Matches(r Record, f FilterConfig, resolve FieldResolver) bool {
	if resolve == nil {
		resolve = DirectField
	}
	raw, _ := resolve(r, f.Field)

	switch f.Operator {
	case OpEquals:
		return strings.ToLower(Stringify(raw)) == strings.ToLower(f.Value)
	case OpContains:
		return strings.Contains(strings.ToLower(Stringify(raw)), strings.ToLower(f.Value))
	case OpStartsWith:
		return strings.HasPrefix(strings.ToLower(Stringify(raw)), strings.ToLower(f.Value))
	case OpEndsWith:
		return strings.HasSuffix(strings.ToLower(Stringify(raw)), strings.ToLower(f.Value))
	case OpGreaterThan, OpLessThan:
		a, b := ToNumber(raw), ToNumber(f.Value)
		if math.IsNaN(a) || math.IsNaN(b) {
			return false
		}
		if f.Operator == OpGreaterThan {
			return a > b
		}
		return a < b
	default:
		return true
	}
}

// MatchesAll reports whether r satisfies every filter. An empty list matches.
func MatchesAll(r Record, filters []FilterConfig, resolve FieldResolver) bool {
	for _, f := range filters {
		if !Matches(r, f, resolve) {
			return false
		}
	}
	return true
}

// Filter returns the records that satisfy every filter and the search query.
// The input slice is not modified.
func Filter(records []Record, filters []FilterConfig, query string, searchFields []string, resolve FieldResolver) []Record {
	out := make([]Record, 0, len(records))
	for _, r := range records {
		if MatchesAll(r, filters, resolve) && Search(r, query, searchFields, resolve) {
			out = append(out, r)
		}
	}
	return out
}
