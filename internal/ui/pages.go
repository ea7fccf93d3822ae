package ui

import (
	"strings"

	"github.com/derailed/tview"
)

const viewPrefix = "view-"

// Pages shows the top component of a stack.
type Pages struct {
	*tview.Pages
	*Stack
}

// NewPages returns a new pages manager
func NewPages() *Pages {
	p := Pages{
		Pages: tview.NewPages(),
		Stack: NewStack(),
	}
	p.Stack.AddListener(&p)

	return &p
}

// Current returns the current component.
func (p *Pages) Current() Component {
	return p.Top()
}

// Show adds an overlay page on top of the current component.
func (p *Pages) Show(name string, page tview.Primitive) {
	p.AddPage(name, page, true, true)
}

// HasOverlay returns true when a dialog or modal sits above the components.
func (p *Pages) HasOverlay() bool {
	name, _ := p.GetFrontPage()
	return name != "" && !strings.HasPrefix(name, viewPrefix)
}

// Hide removes an overlay page.
func (p *Pages) Hide(name string) {
	if p.HasPage(name) {
		p.RemovePage(name)
	}
}

// StackPushed notifies a new component was pushed.
func (p *Pages) StackPushed(c Component) {
	p.AddPage(componentID(c), c, true, true)
	p.SwitchToPage(componentID(c))
}

// StackPopped notifies a component was removed.
func (p *Pages) StackPopped(old, top Component) {
	p.RemovePage(componentID(old))
	if top != nil {
		p.SwitchToPage(componentID(top))
	}
}

// StackTop notifies a new top component.
func (*Pages) StackTop(Component) {}

func componentID(c Component) string {
	return viewPrefix + c.Name()
}
