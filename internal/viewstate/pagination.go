package viewstate

// DefaultWindow is how many page buttons a pager renders
const DefaultWindow = 5

// TotalPages is ceil(total/limit); no results means no pages
func TotalPages(total int64, limit int) int {
	if total <= 0 || limit <= 0 {
		return 0
	}
	return int((total + int64(limit) - 1) / int64(limit))
}

// ClampPage keeps page within [1, totalPages]
func ClampPage(page, totalPages int) int {
	if totalPages < 1 || page < 1 {
		return 1
	}
	if page > totalPages {
		return totalPages
	}
	return page
}

// PageWindow returns up to size consecutive page numbers centred on
// current, never leaving [1, totalPages].
func PageWindow(current, totalPages, size int) []int {
	if totalPages < 1 {
		return nil
	}
	if size < 1 {
		size = DefaultWindow
	}
	if size > totalPages {
		size = totalPages
	}
	current = ClampPage(current, totalPages)

	start := current - size/2
	if start < 1 {
		start = 1
	}
	if start+size-1 > totalPages {
		start = totalPages - size + 1
	}

	pages := make([]int, size)
	for i := range pages {
		pages[i] = start + i
	}
	return pages
}

// Pagination is what a pager needs to render
type Pagination struct {
	Page       int   `json:"page"`
	Limit      int   `json:"limit"`
	Total      int64 `json:"total"`
	TotalPages int   `json:"total_pages"`
	HasPrev    bool  `json:"has_prev"`
	HasNext    bool  `json:"has_next"`
	Window     []int `json:"window"`
}

// NewPagination derives pager state; page is clamped to the valid range
func NewPagination(page, limit int, total int64) Pagination {
	pages := TotalPages(total, limit)
	page = ClampPage(page, pages)
	return Pagination{
		Page:       page,
		Limit:      limit,
		Total:      total,
		TotalPages: pages,
		HasPrev:    page > 1,
		HasNext:    page < pages,
		Window:     PageWindow(page, pages, DefaultWindow),
	}
}
