package utils

import "strconv"

// ParsePage reads page and limit query values, falling back to page 1 and defaultLimit
// for anything missing or non-positive. limit is capped at maxLimit.
func ParsePage(pageStr, limitStr string, defaultLimit, maxLimit int) (int, int) {
	page, err := strconv.Atoi(pageStr)
	if err != nil || page < 1 {
		page = 1
	}
	limit, err := strconv.Atoi(limitStr)
	if err != nil || limit < 1 {
		limit = defaultLimit
	}
	if maxLimit > 0 && limit > maxLimit {
		limit = maxLimit
	}
	return page, limit
}

// PageLinks returns the neighbouring page numbers, or nil when there is none.
func PageLinks(page, limit int, total int64) (next, prev *int) {
	if int64(page*limit) < total {
		n := page + 1
		next = &n
	}
	if page > 1 {
		p := page - 1
		prev = &p
	}
	return next, prev
}
