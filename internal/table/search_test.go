package table

import "testing"

func TestSearch(t *testing.T) {
	rec := Record{"name": "Fatou", "phone": 221770001, "client.nom": "literal", "client": map[string]any{"nom": "Awa"}}

	tests := []struct {
		name    string
		query   string
		fields  []string
		resolve FieldResolver
		want    bool
	}{
		{"empty query matches", "", nil, nil, true},
		{"case-insensitive substring", "ATO", []string{"name"}, nil, true},
		{"no match", "omar", []string{"name"}, nil, false},
		{"any field matches", "7700", []string{"name", "phone"}, nil, true},
		{"field not listed", "fatou", []string{"phone"}, nil, false},
		{"unknown field", "fatou", []string{"missing"}, nil, false},
		{"no fields", "fatou", nil, nil, false},
		{"dotted key is literal with DirectField", "literal", []string{"client.nom"}, DirectField, true},
		{"direct lookup does not traverse", "awa", []string{"client.nom"}, DirectField, false},
		{"nested lookup prefers literal key", "literal", []string{"client.nom"}, NestedField, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Search(rec, tt.query, tt.fields, tt.resolve); got != tt.want {
				t.Errorf("Search(%q, %v) = %v, want %v", tt.query, tt.fields, got, tt.want)
			}
		})
	}
}

func TestSearch_NestedTraversal(t *testing.T) {
	rec := Record{"client": map[string]any{"nom": "Awa Ndiaye", "address": Record{"city": "Dakar"}}}

	if Search(rec, "awa", []string{"client.nom"}, DirectField) {
		t.Error("DirectField matched a nested path")
	}
	if !Search(rec, "awa", []string{"client.nom"}, NestedField) {
		t.Error("NestedField did not match client.nom")
	}
	if !Search(rec, "dak", []string{"client.address.city"}, NestedField) {
		t.Error("NestedField did not match client.address.city")
	}
	if Search(rec, "awa", []string{"client.nom.first"}, NestedField) {
		t.Error("NestedField matched through a non-map value")
	}
}

func TestSearch_Scenario(t *testing.T) {
	records := []Record{{"name": "Fatou"}, {"name": "Omar"}}
	got := Filter(records, nil, "fa", []string{"name"}, nil)
	if want := []string{"Fatou"}; !equalStrings(names(got), want) {
		t.Errorf("Filter = %v, want %v", names(got), want)
	}
}

func TestSearch_Property(t *testing.T) {
	records := []Record{
		{"name": "Aminata", "city": "Dakar"},
		{"name": "Moussa", "city": "Saint-Louis"},
		{"name": "Khady", "city": "Ziguinchor"},
	}
	fields := []string{"name", "city"}

	for _, q := range []string{"a", "DAK", "louis", "x", "ou"} {
		got := Filter(records, nil, q, fields, nil)
		want := 0
		for _, r := range records {
			if Search(r, q, fields, nil) {
				want++
			}
		}
		if len(got) != want {
			t.Errorf("query %q: len = %d, want %d", q, len(got), want)
		}
	}
}
