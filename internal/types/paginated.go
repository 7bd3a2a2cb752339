package types

// PaginatedResult is the envelope returned by server-side paginated list
// queries. TotalPages lets the caller disable its "next" control on the
// last page.
type PaginatedResult[T any] struct {
	Data       []T   `json:"data"`
	Total      int64 `json:"total"`
	Page       int   `json:"page"`
	PageSize   int   `json:"pageSize"`
	TotalPages int   `json:"totalPages"`
}
