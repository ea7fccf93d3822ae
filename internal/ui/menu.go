// SPDX-License-Identifier: Apache-2.0
// Copyright Authors of passdesk

package ui

import (
	"fmt"
	"sort"
	"strconv"
	"strings"

	"github.com/derailed/tcell/v2"
	"github.com/derailed/tview"
)

const (
	menuIndexFmt = " [yellow::b]<%d>[white::-] %s "
	menuPlainFmt = " [yellow::b]%s[white::-] %s "

	// MenuRows is the number of hints stacked per menu column.
	MenuRows = 6
)

// Menu lists the key bindings of the top component.
type Menu struct {
	*tview.Table
}

// NewMenu returns a new menu.
func NewMenu() *Menu {
	m := &Menu{
		Table: tview.NewTable(),
	}
	m.SetBackgroundColor(tcell.ColorDefault)
	m.SetBorderPadding(0, 0, 1, 1)

	return m
}

// HydrateMenu renders the visible hints column by column.
func (m *Menu) HydrateMenu(hh MenuHints) {
	m.Clear()
	for r, cells := range MenuLayout(hh) {
		for c, s := range cells {
			m.SetCell(r, c, tview.NewTableCell(s).SetBackgroundColor(tcell.ColorDefault))
		}
	}
}

// MenuLayout arranges the visible hints in a grid of MenuRows rows.
// Mnemonics are padded to the widest one of their column.
func MenuLayout(hh MenuHints) [][]string {
	visible := make(MenuHints, 0, len(hh))
	for _, h := range hh {
		if h.Visible && h.Mnemonic != "" && h.Description != "" {
			visible = append(visible, h)
		}
	}
	if len(visible) == 0 {
		return nil
	}
	sort.Sort(visible)

	cols := (len(visible) + MenuRows - 1) / MenuRows
	rows := min(len(visible), MenuRows)
	out := make([][]string, rows)
	for r := range out {
		out[r] = make([]string, cols)
	}

	for c := range cols {
		chunk := visible[c*MenuRows : min((c+1)*MenuRows, len(visible))]
		width := 0
		for _, h := range chunk {
			width = max(width, len(h.Mnemonic)+2)
		}
		for r, h := range chunk {
			out[r][c] = formatHint(h, width)
		}
	}

	return out
}

func formatHint(h MenuHint, width int) string {
	if i, err := strconv.Atoi(h.Mnemonic); err == nil {
		return fmt.Sprintf(menuIndexFmt, i, h.Description)
	}
	key := "<" + h.Mnemonic + ">"
	key += strings.Repeat(" ", width-len(key))

	return fmt.Sprintf(menuPlainFmt, key, h.Description)
}

func (m *Menu) hydrate(c Component) {
	if c == nil {
		m.Clear()
		return
	}
	m.HydrateMenu(c.Hints())
}

// StackPushed notifies a component was added.
func (m *Menu) StackPushed(c Component) {
	m.hydrate(c)
}

// StackPopped notifies a component was removed.
func (m *Menu) StackPopped(_, top Component) {
	m.hydrate(top)
}

// StackTop notifies the top component.
func (m *Menu) StackTop(c Component) {
	m.hydrate(c)
}
