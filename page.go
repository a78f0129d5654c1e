package vlrgg

// Paginated holds one page of a listing along with its position in the
// full result set. Pages are 1-based. A request past the last page
// carries empty Items rather than an error.
type Paginated[T any] struct {
	Items      []T `json:"items"`
	Page       int `json:"page"`
	TotalPages int `json:"totalPages"`
}

// HasMore reports whether pages beyond this one exist.
func (p Paginated[T]) HasMore() bool {
	return p.Page < p.TotalPages
}
