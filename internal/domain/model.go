package domain

// PageRequest holds pagination, sorting, searching, and filtering parameters
// for list queries. Page is 1-based.
type PageRequest struct {
	Page     int
	PageSize int
	Sort     string
	Search   string
	Filter   map[string]string
}

// PageResult is a page of items plus pagination metadata. Total is computed
// before slicing, so callers can derive the full page count from any page.
type PageResult[T any] struct {
	Items      []T   `json:"items"`
	Total      int64 `json:"total"`
	Page       int   `json:"page"`
	PageSize   int   `json:"page_size"`
	TotalPages int   `json:"total_pages"`
}

// FilterOption is an id/name pair offered to clients for building
// discrete filter dropdowns.
type FilterOption struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}
