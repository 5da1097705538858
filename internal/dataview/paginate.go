package dataview

// TotalPages returns the number of pages needed for n rows at the given
// page size.
func TotalPages(n, perPage int) int {
	if perPage < 1 {
		perPage = 1
	}
	if n <= 0 {
		return 0
	}
	return (n + perPage - 1) / perPage
}

// PageSlice returns the one-based page of rows. Out-of-range pages are
// clamped to [1, TotalPages].
func PageSlice[T any](rows []T, page, perPage int) []T {
	if perPage < 1 {
		perPage = 1
	}
	total := TotalPages(len(rows), perPage)
	if total == 0 {
		return nil
	}
	if page < 1 {
		page = 1
	} else if page > total {
		page = total
	}
	start := (page - 1) * perPage
	end := start + perPage
	if end > len(rows) {
		end = len(rows)
	}
	return rows[start:end]
}
