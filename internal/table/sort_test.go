package table

import (
	"testing"
	"time"
)

var nameColumns = Columns{
	{ID: "name", Header: "Name", Accessor: Field("name"), Sortable: true},
	{ID: "n", Header: "N", Accessor: Field("n"), Sortable: true},
}

func TestSort_Scenario(t *testing.T) {
	records := []Record{{"name": "B", "n": 2}, {"name": "A", "n": 1}}
	got := Sort(records, &SortConfig{Key: "name", Direction: Asc}, nameColumns)
	if want := []string{"A", "B"}; !equalStrings(names(got), want) {
		t.Errorf("Sort = %v, want %v", names(got), want)
	}
	if records[0]["name"] != "B" {
		t.Error("Sort mutated its input")
	}
}

func TestSort_NilConfigIsNoOp(t *testing.T) {
	records := []Record{{"name": "C"}, {"name": "A"}, {"name": "B"}}
	got := Sort(records, nil, nameColumns)
	if want := []string{"C", "A", "B"}; !equalStrings(names(got), want) {
		t.Errorf("Sort = %v, want %v", names(got), want)
	}
}

func TestSort_UnknownKeyIsNoOp(t *testing.T) {
	records := []Record{{"name": "C"}, {"name": "A"}}
	got := Sort(records, &SortConfig{Key: "nope", Direction: Asc}, nameColumns)
	if want := []string{"C", "A"}; !equalStrings(names(got), want) {
		t.Errorf("Sort = %v, want %v", names(got), want)
	}
}

func TestSort_Numbers(t *testing.T) {
	records := []Record{{"name": "ten", "n": 10}, {"name": "nine", "n": 9}, {"name": "hundred", "n": 100.0}}

	asc := Sort(records, &SortConfig{Key: "n", Direction: Asc}, nameColumns)
	if want := []string{"nine", "ten", "hundred"}; !equalStrings(names(asc), want) {
		t.Errorf("asc = %v, want %v", names(asc), want)
	}

	desc := Sort(records, &SortConfig{Key: "n", Direction: Desc}, nameColumns)
	if want := []string{"hundred", "ten", "nine"}; !equalStrings(names(desc), want) {
		t.Errorf("desc = %v, want %v", names(desc), want)
	}
}

func TestSort_Dates(t *testing.T) {
	cols := Columns{{ID: "created", Header: "Created", Accessor: Field("created"), Sortable: true}}
	records := []Record{
		{"name": "mid", "created": time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC)},
		{"name": "late", "created": time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)},
		{"name": "early", "created": time.Date(2023, 3, 9, 0, 0, 0, 0, time.UTC)},
	}

	got := Sort(records, &SortConfig{Key: "created", Direction: Desc}, cols)
	if want := []string{"late", "mid", "early"}; !equalStrings(names(got), want) {
		t.Errorf("Sort = %v, want %v", names(got), want)
	}
}

func TestSort_StringsIgnoreCaseAndCollate(t *testing.T) {
	records := []Record{{"name": "f"}, {"name": "é"}, {"name": "B"}, {"name": "a"}, {"name": "e"}}
	got := Sort(records, &SortConfig{Key: "name", Direction: Asc}, nameColumns)
	if want := []string{"a", "B", "e", "é", "f"}; !equalStrings(names(got), want) {
		t.Errorf("Sort = %v, want %v", names(got), want)
	}
}

func TestSort_Stable(t *testing.T) {
	cols := Columns{{ID: "group", Header: "Group", Accessor: Field("group"), Sortable: true}}
	records := []Record{
		{"name": "1", "group": "b"},
		{"name": "2", "group": "a"},
		{"name": "3", "group": "b"},
		{"name": "4", "group": "a"},
	}

	asc := Sort(records, &SortConfig{Key: "group", Direction: Asc}, cols)
	if want := []string{"2", "4", "1", "3"}; !equalStrings(names(asc), want) {
		t.Errorf("asc = %v, want %v", names(asc), want)
	}
	desc := Sort(records, &SortConfig{Key: "group", Direction: Desc}, cols)
	if want := []string{"1", "3", "2", "4"}; !equalStrings(names(desc), want) {
		t.Errorf("desc = %v, want %v", names(desc), want)
	}
}

func TestSort_AutoSniffSkipsNil(t *testing.T) {
	records := []Record{{"name": "none"}, {"name": "three", "n": 3}, {"name": "one", "n": 1}}
	got := Sort(records, &SortConfig{Key: "n", Direction: Asc}, nameColumns)
	if want := []string{"one", "three", "none"}; !equalStrings(names(got), want) {
		t.Errorf("Sort = %v, want %v", names(got), want)
	}
}

func TestSort_ExplicitCompareAs(t *testing.T) {
	// Numeric strings compare as text unless the column says otherwise.
	records := []Record{{"name": "10", "n": "10"}, {"name": "9", "n": "9"}}

	text := Columns{{ID: "n", Header: "N", Accessor: Field("n"), Sortable: true}}
	if got := names(Sort(records, &SortConfig{Key: "n", Direction: Asc}, text)); !equalStrings(got, []string{"10", "9"}) {
		t.Errorf("string compare = %v, want [10 9]", got)
	}

	num := Columns{{ID: "n", Header: "N", Accessor: Field("n"), Sortable: true, CompareAs: CompareNumber}}
	if got := names(Sort(records, &SortConfig{Key: "n", Direction: Asc}, num)); !equalStrings(got, []string{"9", "10"}) {
		t.Errorf("number compare = %v, want [9 10]", got)
	}
}

func TestSort_ComposedAccessor(t *testing.T) {
	cols := Columns{{
		ID:     "client",
		Header: "Client",
		Accessor: func(r Record) any {
			return Stringify(r["last"]) + " " + Stringify(r["first"])
		},
		Sortable: true,
	}}
	records := []Record{
		{"name": "x", "first": "Awa", "last": "Sow"},
		{"name": "y", "first": "Omar", "last": "Ba"},
	}
	got := Sort(records, &SortConfig{Key: "client", Direction: Asc}, cols)
	if want := []string{"y", "x"}; !equalStrings(names(got), want) {
		t.Errorf("Sort = %v, want %v", names(got), want)
	}
}

func TestSort_ToggleReversesDistinctKeys(t *testing.T) {
	records := []Record{{"name": "Moussa"}, {"name": "Awa"}, {"name": "Khady"}}
	table := Table{Columns: nameColumns}

	s := NewState(10, nil)
	s = table.ToggleSort(s, "name")
	first := names(Sort(records, s.Sort, nameColumns))
	s = table.ToggleSort(s, "name")
	second := names(Sort(records, s.Sort, nameColumns))

	for i := range first {
		if first[i] != second[len(second)-1-i] {
			t.Fatalf("second toggle %v is not the reverse of %v", second, first)
		}
	}
}

func TestSort_DuplicateColumnIDFirstWins(t *testing.T) {
	cols := Columns{
		{ID: "k", Header: "By name", Accessor: Field("name"), Sortable: true},
		{ID: "k", Header: "By n", Accessor: Field("n"), Sortable: true},
	}
	records := []Record{{"name": "a", "n": 2}, {"name": "b", "n": 1}}
	got := Sort(records, &SortConfig{Key: "k", Direction: Asc}, cols)
	if want := []string{"a", "b"}; !equalStrings(names(got), want) {
		t.Errorf("Sort = %v, want %v", names(got), want)
	}
}
