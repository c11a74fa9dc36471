package model

// Page is a paginated projection result. Total reflects the full filtered
// set, not just the returned slice.
type Page[T any] struct {
	Items      []T
	Total      int
	Page       int
	PageSize   int
	TotalPages int
}

// NewPage slices items for the requested page and fills the envelope.
// Pages are 1-based; out-of-range pages return an empty item list with
// the true total.
func NewPage[T any](items []T, page, pageSize int) *Page[T] {
	if page < 1 {
		page = 1
	}
	if pageSize < 1 {
		pageSize = DefaultPageSize
	}

	total := len(items)
	totalPages := (total + pageSize - 1) / pageSize

	start := (page - 1) * pageSize
	if start > total {
		start = total
	}
	end := start + pageSize
	if end > total {
		end = total
	}

	return &Page[T]{
		Items:      items[start:end],
		Total:      total,
		Page:       page,
		PageSize:   pageSize,
		TotalPages: totalPages,
	}
}

// DefaultPageSize is applied when a caller omits page_size
const DefaultPageSize = 25
