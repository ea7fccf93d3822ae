package ui

import (
	"fmt"

	"github.com/derailed/tcell/v2"
	"github.com/derailed/tview"
)

// PageInfo describes the paginator footer.
type PageInfo struct {
	Index    int
	Pages    int
	Size     int
	Total    int
	Selected int
	Loading  bool
}

// String renders the footer text.
func (p PageInfo) String() string {
	page := 0
	if p.Pages > 0 {
		page = p.Index + 1
	}
	s := fmt.Sprintf("Page %d/%d | %d per page | %d items | %d selected", page, p.Pages, p.Size, p.Total, p.Selected)
	if p.Loading {
		s += " | loading..."
	}
	return s
}

// Paginator shows the page position below a table.
type Paginator struct {
	*tview.TextView

	info PageInfo
}

// NewPaginator returns a new paginator footer.
func NewPaginator() *Paginator {
	p := Paginator{TextView: tview.NewTextView()}
	p.SetBackgroundColor(tcell.ColorDefault)
	p.SetTextColor(tcell.ColorAqua)
	p.SetTextAlign(tview.AlignRight)
	p.SetBorderPadding(0, 0, 1, 1)
	p.Update(PageInfo{})

	return &p
}

// Update refreshes the footer.
func (p *Paginator) Update(info PageInfo) {
	p.info = info
	p.SetText(info.String())
}

// Info returns the last rendered state.
func (p *Paginator) Info() PageInfo {
	return p.info
}
