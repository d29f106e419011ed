package pagination

// Page describes offset pagination metadata for feed and listing responses.
type Page struct {
	CurrentPage int   `json:"currentPage"`
	TotalPages  int   `json:"totalPages"`
	Total       int64 `json:"total"`
	HasMore     bool  `json:"hasMore"`
}

// Normalize clamps page/limit to usable values: page >= 1, 0 < limit <= maxLimit.
func Normalize(page, limit, defaultLimit, maxLimit int) (int, int) {
	if page < 1 {
		page = 1
	}
	if limit <= 0 {
		limit = defaultLimit
	}
	if limit > maxLimit {
		limit = maxLimit
	}
	return page, limit
}

// Build computes page metadata from a total row count. TotalPages is
// ceil(total/limit) and HasMore is page < TotalPages.
func Build(page, limit int, total int64) Page {
	totalPages := int((total + int64(limit) - 1) / int64(limit))
	return Page{
		CurrentPage: page,
		TotalPages:  totalPages,
		Total:       total,
		HasMore:     page < totalPages,
	}
}

// Offset converts page/limit into a row offset.
func Offset(page, limit int) int {
	return (page - 1) * limit
}
