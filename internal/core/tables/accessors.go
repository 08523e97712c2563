package tables

import (
	"strings"

	"github.com/JonMunkholm/atelier/internal/table"
)

// fullName joins two name fields, skipping blanks: "Awa Diop".
func fullName(first, last string) table.Accessor {
	return func(r table.Record) any {
		return joinNonEmpty(" ", table.Stringify(r[first]), table.Stringify(r[last]))
	}
}

// clientLabel renders the nested client object of an order as
// "First Last (City)". Orders without a client render as "".
func clientLabel(r table.Record) any {
	client, ok := r["client"].(map[string]any)
	if !ok {
		return ""
	}
	name := joinNonEmpty(" ", table.Stringify(client["firstName"]), table.Stringify(client["lastName"]))
	if city := table.Stringify(client["city"]); city != "" {
		return name + " (" + city + ")"
	}
	return name
}

// garments lists the garment names of an order. The value is a slice, so
// exports serialize it as JSON.
func garments(r table.Record) any {
	items, ok := r["items"].([]any)
	if !ok {
		return []string{}
	}
	out := make([]string, 0, len(items))
	for _, it := range items {
		if m, ok := it.(map[string]any); ok {
			out = append(out, table.Stringify(m["garment"]))
		}
	}
	return out
}

func joinNonEmpty(sep string, parts ...string) string {
	kept := parts[:0]
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			kept = append(kept, p)
		}
	}
	return strings.Join(kept, sep)
}
