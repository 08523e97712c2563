package table

// Paginate returns the 1-based page of records as a new slice.
// Pages outside 1..TotalPages yield an empty slice; no clamping is done.
func Paginate(records []Record, page, pageSize int) []Record {
	// Compare page counts before multiplying: (page-1)*pageSize overflows
	// for large pages.
	if page < 1 || pageSize <= 0 || page > TotalPages(len(records), pageSize) {
		return []Record{}
	}
	start := (page - 1) * pageSize
	end := len(records)
	if pageSize < end-start {
		end = start + pageSize
	}
	out := make([]Record, end-start)
	copy(out, records[start:end])
	return out
}

// TotalPages returns ceil(count/pageSize), or 0 when there is nothing to show.
func TotalPages(count, pageSize int) int {
	if count <= 0 || pageSize <= 0 {
		return 0
	}
	return (count-1)/pageSize + 1
}

// ClampPage bounds page to 1..totalPages. With no pages it returns 1.
func ClampPage(page, totalPages int) int {
	if page > totalPages {
		page = totalPages
	}
	if page < 1 {
		page = 1
	}
	return page
}
