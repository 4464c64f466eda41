package domain

import "math"

// Paging defaults and limits.
const (
	DefaultPage     = 1
	DefaultPageSize = 10
	MaxPageSize     = 100
)

// PageRequest is a 1-based page selection.
type PageRequest struct {
	Page int
	Size int
}

// Normalize applies defaults and clamps. Size is clamped to
// [1, MaxPageSize]; page is floored at 1 and capped so that Offset cannot
// overflow int.
func (p PageRequest) Normalize() PageRequest {
	size := min(max(p.Size, 1), MaxPageSize)
	return PageRequest{
		Page: min(max(p.Page, DefaultPage), math.MaxInt/size),
		Size: size,
	}
}

// NewPageRequest builds a normalized request from optional query values.
func NewPageRequest(page, size *int) PageRequest {
	req := PageRequest{Page: DefaultPage, Size: DefaultPageSize}
	if page != nil {
		req.Page = *page
	}
	if size != nil {
		req.Size = *size
	}
	return req.Normalize()
}

// Offset returns the number of rows skipped before this page.
func (p PageRequest) Offset() int {
	return (p.Page - 1) * p.Size
}

// Page is one page of results with its position in the full result set.
type Page[T any] struct {
	Items      []T
	Page       int
	TotalPages int
	TotalItems int64
}

// NewPage assembles a page, computing the page count from the total.
func NewPage[T any](items []T, req PageRequest, total int64) Page[T] {
	if items == nil {
		items = []T{}
	}
	return Page[T]{
		Items:      items,
		Page:       req.Page,
		TotalPages: TotalPages(total, req.Size),
		TotalItems: total,
	}
}

// TotalPages returns ceil(total/size), or 0 when size is not positive.
func TotalPages(total int64, size int) int {
	if size <= 0 {
		return 0
	}
	return int(math.Ceil(float64(total) / float64(size)))
}
