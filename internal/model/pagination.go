package model

import (
	"errors"

	"github.com/passdesk/passdesk/internal/model1"
)

// ErrInvalidPageSize is returned when a page size is not positive.
var ErrInvalidPageSize = errors.New("page size must be positive")

// PageRequest asks the data loader for the rows of one page.
// Generation identifies the cache layout the request was issued against.
type PageRequest struct {
	Index      int
	PageSize   int
	Offset     int
	Generation uint64
}

// PaginationCache owns the paged view of a countable dataset.
// It is not safe for concurrent use.
type PaginationCache[T any] struct {
	listLength int
	data       model1.PaginatedData[T]
	current    model1.Rows[T]
}

// NewPaginationCache returns a cache for a dataset of the given length.
func NewPaginationCache[T any](listLength int) *PaginationCache[T] {
	p := PaginationCache[T]{}
	p.SetListLength(listLength)
	return &p
}

// SetListLength updates the dataset length. Negative lengths are clamped to zero.
// The cache layout is rebuilt on the next Initialize.
func (p *PaginationCache[T]) SetListLength(n int) {
	if n < 0 {
		n = 0
	}
	p.listLength = n
}

// ListLength returns the dataset length.
func (p *PaginationCache[T]) ListLength() int {
	return p.listLength
}

// IsDataExisting returns true if the dataset is not empty.
func (p *PaginationCache[T]) IsDataExisting() bool {
	return p.listLength > 0
}

// Initialize rebuilds the cache with all pages cold and requests page 0.
func (p *PaginationCache[T]) Initialize(pageSize int) (*PageRequest, error) {
	if pageSize <= 0 {
		return nil, ErrInvalidPageSize
	}
	p.data = model1.PaginatedData[T]{
		Pages:      make([]model1.Page[T], model1.PageCountFor(p.listLength, pageSize)),
		PageSize:   pageSize,
		Generation: p.data.Generation + 1,
	}
	p.current = nil
	if len(p.data.Pages) == 0 {
		return nil, nil
	}

	return p.request(0), nil
}

// ChangePageSize discards every cached page and starts over with the new size.
func (p *PaginationCache[T]) ChangePageSize(pageSize int) (*PageRequest, error) {
	return p.Initialize(pageSize)
}

// ChangePage moves to the given page. A cold page yields a load request and the current
// view stays as is until the data arrives; a warm page is served from cache.
func (p *PaginationCache[T]) ChangePage(index int) *PageRequest {
	if index < 0 || index >= len(p.data.Pages) {
		return nil
	}
	p.data.CurrentIndex = index
	if p.data.Pages[index].Cold() {
		return p.request(index)
	}
	p.current = p.data.Pages[index].Values

	return nil
}

// ReceivePageData stores the rows answering req. Replies issued against a previous layout
// are dropped, warm pages are never overwritten. The current view is republished only when
// req targets the current page. Returns true if the current view changed.
func (p *PaginationCache[T]) ReceivePageData(req PageRequest, rows model1.Rows[T]) bool {
	if req.Generation != p.data.Generation {
		return false
	}
	if req.Index < 0 || req.Index >= len(p.data.Pages) {
		return false
	}
	if !p.data.Pages[req.Index].Cold() {
		return false
	}
	p.data.Pages[req.Index].Values = rows
	if req.Index != p.data.CurrentIndex {
		return false
	}
	p.current = rows

	return true
}

// Current returns the rows of the currently displayed page.
func (p *PaginationCache[T]) Current() model1.Rows[T] {
	return p.current
}

// Data returns a snapshot of the paginated data.
func (p *PaginationCache[T]) Data() model1.PaginatedData[T] {
	return p.data.Clone()
}

// PageSize returns the active page size, zero before Initialize.
func (p *PaginationCache[T]) PageSize() int {
	return p.data.PageSize
}

// CurrentIndex returns the current page index.
func (p *PaginationCache[T]) CurrentIndex() int {
	return p.data.CurrentIndex
}

// PageCount returns the number of pages.
func (p *PaginationCache[T]) PageCount() int {
	return len(p.data.Pages)
}

func (p *PaginationCache[T]) request(index int) *PageRequest {
	return &PageRequest{
		Index:      index,
		PageSize:   p.data.PageSize,
		Offset:     index * p.data.PageSize,
		Generation: p.data.Generation,
	}
}
