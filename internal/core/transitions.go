package core

import "github.com/JonMunkholm/atelier/internal/table"

// Transition is one state change on a table instance.
type Transition func(t table.Table, s table.State) table.State

// ToggleSort toggles sorting on a column id.
func ToggleSort(columnID string) Transition {
	return func(t table.Table, s table.State) table.State {
		return t.ToggleSort(s, columnID)
	}
}

// ClearSort removes the active sort.
func ClearSort() Transition {
	return func(_ table.Table, s table.State) table.State {
		return s.ClearSort()
	}
}

// SetSearch replaces the free-text query.
func SetSearch(query string) Transition {
	return func(_ table.Table, s table.State) table.State {
		return s.SetSearch(query)
	}
}

// SetFilter sets the filter on f.Field.
func SetFilter(f table.FilterConfig) Transition {
	return func(_ table.Table, s table.State) table.State {
		return s.SetFilter(f)
	}
}

// RemoveFilter drops the filter on field.
func RemoveFilter(field string) Transition {
	return func(_ table.Table, s table.State) table.State {
		return s.RemoveFilter(field)
	}
}

// SetPage moves to page.
func SetPage(page int) Transition {
	return func(_ table.Table, s table.State) table.State {
		return s.SetPage(page)
	}
}

// SetPageSize changes the page size.
func SetPageSize(size int) Transition {
	return func(_ table.Table, s table.State) table.State {
		return s.SetPageSize(size)
	}
}
