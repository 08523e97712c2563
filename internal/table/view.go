package table

// Table binds a column model to the fields searched by the free-text query.
// It holds no state of its own; pass a State to View.
type Table struct {
	Columns      Columns
	SearchFields []string
	Resolve      FieldResolver // nil means DirectField
}

// View is one computed page.
type View struct {
	Visible       []Record `json:"visible"`
	TotalFiltered int      `json:"totalFiltered"`
	TotalPages    int      `json:"totalPages"`
}

// Rows returns the filtered and sorted records without pagination. This is
// the set handed to an Exporter.
func (t Table) Rows(records []Record, s State) []Record {
	filtered := Filter(records, s.Filters, s.SearchQuery, t.SearchFields, t.Resolve)
	return Sort(filtered, s.Sort, t.Columns)
}

// View runs Filter, Search, Sort and Paginate in that order.
func (t Table) View(records []Record, s State) View {
	sorted := t.Rows(records, s)
	return View{
		Visible:       Paginate(sorted, s.CurrentPage, s.ItemsPerPage),
		TotalFiltered: len(sorted),
		TotalPages:    TotalPages(len(sorted), s.ItemsPerPage),
	}
}

// ToggleSort is State.ToggleSort by column id. Unknown ids leave s unchanged.
func (t Table) ToggleSort(s State, columnID string) State {
	col, ok := t.Columns.Find(columnID)
	if !ok {
		return s.clone()
	}
	return s.ToggleSort(col)
}

// SetSort is State.SetSort by column id. Unknown ids leave s unchanged.
func (t Table) SetSort(s State, columnID string, dir Direction) State {
	col, ok := t.Columns.Find(columnID)
	if !ok {
		return s.clone()
	}
	return s.SetSort(col, dir)
}
