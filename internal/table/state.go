package table

import "slices"

// State is the view state of one table instance. It is a value: every
// transition returns a new State and leaves the receiver untouched, so a
// reader never observes a half-applied change.
type State struct {
	CurrentPage  int            `json:"currentPage"`
	ItemsPerPage int            `json:"itemsPerPage"`
	Sort         *SortConfig    `json:"sortConfig"`
	Filters      []FilterConfig `json:"filters"`
	SearchQuery  string         `json:"searchQuery"`
}

// NewState returns the initial state: page 1, no sort, empty search and the
// given initial filters (later duplicates of a field replace earlier ones).
func NewState(itemsPerPage int, initial []FilterConfig) State {
	s := State{CurrentPage: 1, ItemsPerPage: itemsPerPage, Filters: []FilterConfig{}}
	for _, f := range initial {
		s.Filters = upsertFilter(s.Filters, f)
	}
	return s
}

// clone copies the state including its owned slices and pointers.
func (s State) clone() State {
	c := s
	c.Filters = slices.Clone(s.Filters)
	if c.Filters == nil {
		c.Filters = []FilterConfig{}
	}
	if s.Sort != nil {
		sc := *s.Sort
		c.Sort = &sc
	}
	return c
}

// ToggleSort activates sorting on col. The first toggle, or a toggle on a
// different column, sorts ascending; toggling the active ascending column
// flips it to descending and a descending one back to ascending. There is no
// unsorted step; use ClearSort for that. Non-sortable columns leave the state
// unchanged.
func (s State) ToggleSort(col Column) State {
	if !col.Sortable {
		return s.clone()
	}
	next := s.clone()
	dir := Asc
	if s.Sort != nil && s.Sort.Key == col.ID && s.Sort.Direction == Asc {
		dir = Desc
	}
	next.Sort = &SortConfig{Key: col.ID, Direction: dir}
	next.CurrentPage = 1
	return next
}

// SetSort sorts on col in direction dir. Non-sortable columns leave the
// state unchanged.
func (s State) SetSort(col Column, dir Direction) State {
	if !col.Sortable {
		return s.clone()
	}
	if dir != Desc {
		dir = Asc
	}
	next := s.clone()
	next.Sort = &SortConfig{Key: col.ID, Direction: dir}
	next.CurrentPage = 1
	return next
}

// ClearSort removes the active sort.
func (s State) ClearSort() State {
	next := s.clone()
	next.Sort = nil
	next.CurrentPage = 1
	return next
}

// SetSearch replaces the search query.
func (s State) SetSearch(query string) State {
	next := s.clone()
	next.SearchQuery = query
	next.CurrentPage = 1
	return next
}

// SetFilter adds f, replacing any active filter on the same field.
func (s State) SetFilter(f FilterConfig) State {
	next := s.clone()
	next.Filters = upsertFilter(next.Filters, f)
	next.CurrentPage = 1
	return next
}

// RemoveFilter drops the filter on field, if any.
func (s State) RemoveFilter(field string) State {
	next := s.clone()
	next.Filters = slices.DeleteFunc(next.Filters, func(f FilterConfig) bool {
		return f.Field == field
	})
	next.CurrentPage = 1
	return next
}

// SetPage moves to page. Out-of-range pages are accepted as-is.
func (s State) SetPage(page int) State {
	next := s.clone()
	next.CurrentPage = page
	return next
}

// SetPageSize changes the page size. Non-positive sizes are ignored.
func (s State) SetPageSize(size int) State {
	next := s.clone()
	if size > 0 {
		next.ItemsPerPage = size
		next.CurrentPage = 1
	}
	return next
}

// Filter returns the active filter on field.
func (s State) Filter(field string) (FilterConfig, bool) {
	for _, f := range s.Filters {
		if f.Field == field {
			return f, true
		}
	}
	return FilterConfig{}, false
}

// upsertFilter replaces the filter on f.Field in place, or appends it.
func upsertFilter(filters []FilterConfig, f FilterConfig) []FilterConfig {
	for i := range filters {
		if filters[i].Field == f.Field {
			filters[i] = f
			return filters
		}
	}
	return append(filters, f)
}
