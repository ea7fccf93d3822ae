package model1

// Row wraps a caller-owned record with the flags the table controller works with.
// Only Selected is ever mutated by the controller.
type Row[T any] struct {
	Item             T
	Selected         bool
	CheckboxDisabled bool
}

// NewRow returns a row for the given item.
func NewRow[T any](item T, disabled bool) *Row[T] {
	return &Row[T]{Item: item, CheckboxDisabled: disabled}
}

// Rows represents a collection of rows
type Rows[T any] []*Row[T]

// Selected returns the selected rows in order.
func (r Rows[T]) Selected() Rows[T] {
	out := make(Rows[T], 0, len(r))
	for _, row := range r {
		if row.Selected {
			out = append(out, row)
		}
	}
	return out
}

// Enabled returns the number of rows whose checkbox can be toggled.
func (r Rows[T]) Enabled() int {
	var n int
	for _, row := range r {
		if !row.CheckboxDisabled {
			n++
		}
	}
	return n
}

// Page holds the rows of a single page. An empty page has not been loaded yet.
type Page[T any] struct {
	Values Rows[T]
}

// Cold returns true if the page was never populated.
func (p Page[T]) Cold() bool {
	return len(p.Values) == 0
}

// PaginatedData tracks the paged view of a dataset of known length.
type PaginatedData[T any] struct {
	Pages        []Page[T]
	PageSize     int
	CurrentIndex int
	Generation   uint64
}

// PageCount returns the number of pages.
func (p PaginatedData[T]) PageCount() int {
	return len(p.Pages)
}

// Clone returns a copy sharing the row pointers but not the page slice.
func (p PaginatedData[T]) Clone() PaginatedData[T] {
	pages := make([]Page[T], len(p.Pages))
	for i, pg := range p.Pages {
		vv := make(Rows[T], len(pg.Values))
		copy(vv, pg.Values)
		pages[i] = Page[T]{Values: vv}
	}
	p.Pages = pages
	return p
}

// PageCountFor returns ceil(listLength/pageSize), zero for empty lists.
func PageCountFor(listLength, pageSize int) int {
	if listLength <= 0 || pageSize <= 0 {
		return 0
	}
	return (listLength + pageSize - 1) / pageSize
}
