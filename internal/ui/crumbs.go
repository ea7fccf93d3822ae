// SPDX-License-Identifier: Apache-2.0
// Copyright Authors of passdesk

package ui

import (
	"fmt"
	"strings"

	"github.com/derailed/tcell/v2"
	"github.com/derailed/tview"
)

// Crumbs represents user breadcrumbs.
type Crumbs struct {
	*tview.TextView

	names []string
}

// NewCrumbs returns a new breadcrumb view.
func NewCrumbs() *Crumbs {
	c := &Crumbs{
		TextView: tview.NewTextView(),
	}
	c.SetBackgroundColor(tcell.ColorDefault)
	c.SetTextAlign(tview.AlignLeft)
	c.SetBorderPadding(0, 0, 1, 1)
	c.SetDynamicColors(true)

	return c
}

// StackPushed indicates a new item was added.
func (c *Crumbs) StackPushed(comp Component) {
	c.names = append(c.names, comp.Name())
	c.refresh()
}

// StackPopped indicates an item was deleted.
func (c *Crumbs) StackPopped(_, _ Component) {
	if len(c.names) > 0 {
		c.names = c.names[:len(c.names)-1]
	}
	c.refresh()
}

// StackTop indicates the top of the stack.
func (*Crumbs) StackTop(Component) {}

// Names returns the current breadcrumbs.
func (c *Crumbs) Names() []string {
	return append([]string(nil), c.names...)
}

func (c *Crumbs) refresh() {
	var sb strings.Builder
	last := len(c.names) - 1
	for i, crumb := range c.names {
		crumb = strings.ReplaceAll(strings.ToLower(crumb), " ", "")
		if i == last {
			fmt.Fprintf(&sb, "[black:aqua:b] <%s> [-:-:-] ", crumb)
			continue
		}
		fmt.Fprintf(&sb, "[gray::-] <%s> [-:-:-] ", crumb)
	}
	c.SetText(sb.String())
}
