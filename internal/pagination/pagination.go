// Package pagination implements the tolerant 1-based pager used by every
// list endpoint: out-of-range page numbers are clamped to the nearest valid
// page instead of erroring, and an empty result set still reports one page.
package pagination

// NumPages returns ceil(total/pageSize), never less than 1.
func NumPages(total int64, pageSize int) int {
	if pageSize <= 0 {
		return 1
	}
	if total <= 0 {
		return 1
	}
	return int((total + int64(pageSize) - 1) / int64(pageSize))
}

// Clamp snaps page into [1, numPages].
func Clamp(page, numPages int) int {
	if page < 1 {
		return 1
	}
	if page > numPages {
		return numPages
	}
	return page
}

// Offset converts a clamped 1-based page number into a skip count.
func Offset(page, pageSize int) int64 {
	if page < 1 {
		page = 1
	}
	return int64(page-1) * int64(pageSize)
}
