package table

import "strings"

// Search reports whether any of fields holds a value whose text contains
// query, ignoring case. An empty query matches every record.
//
// With DirectField, a dotted field such as "client.name" is a literal key and
// never reaches into nested objects; pass NestedField to traverse.
func Search(r Record, query string, fields []string, resolve FieldResolver) bool {
	if query == "" {
		return true
	}
	if resolve == nil {
		resolve = DirectField
	}

	q := strings.ToLower(query)
	for _, field := range fields {
		v, ok := resolve(r, field)
		if !ok {
			continue
		}
		if strings.Contains(strings.ToLower(Stringify(v)), q) {
			return true
		}
	}
	return false
}
