// SPDX-License-Identifier: Apache-2.0
// Copyright Authors of passdesk

package view

import (
	"strings"

	"github.com/derailed/tcell/v2"
	"github.com/derailed/tview"

	"github.com/passdesk/passdesk/internal/config"
)

// HelpBind represents a single keybinding.
type HelpBind struct {
	Key  string
	Desc string
}

// HelpSection is a titled column of bindings.
type HelpSection struct {
	Title string
	Binds []HelpBind
}

// Help lists the commands and key bindings.
type Help struct {
	*tview.Table

	sections []HelpSection
	closeFn  func()
}

// NewHelp returns a help view for the given resources and aliases.
func NewHelp(resources []string, aliases *config.Aliases) *Help {
	h := Help{
		Table:    tview.NewTable(),
		sections: HelpSections(resources, aliases),
	}
	h.SetBorder(true)
	h.SetTitle(" Help ")
	h.SetTitleAlign(tview.AlignCenter)
	h.SetBorderColor(tcell.ColorYellow)
	h.SetBackgroundColor(tcell.ColorDefault)
	h.SetSelectable(false, false)
	h.SetInputCapture(h.keyboard)
	h.build()

	return &h
}

// SetCloseFn sets the callback when help is closed.
func (h *Help) SetCloseFn(fn func()) {
	h.closeFn = fn
}

// Sections returns the rendered sections.
func (h *Help) Sections() []HelpSection {
	return h.sections
}

func (h *Help) keyboard(evt *tcell.EventKey) *tcell.EventKey {
	switch {
	case evt.Key() == tcell.KeyEsc, evt.Key() == tcell.KeyEnter,
		evt.Rune() == '?', evt.Rune() == 'q':
		if h.closeFn != nil {
			h.closeFn()
		}
		return nil
	}
	return evt
}

// HelpSections returns the help content. Resources list their aliases.
func HelpSections(resources []string, aliases *config.Aliases) []HelpSection {
	res := make([]HelpBind, 0, len(resources)+1)
	for _, r := range resources {
		var desc string
		if aliases != nil {
			desc = strings.Join(aliases.ShortNames(r), ",")
		}
		res = append(res, HelpBind{Key: ":" + r, Desc: desc})
	}
	res = append(res, HelpBind{Key: ":resources", Desc: "Pick"})

	return []HelpSection{
		{Title: "RESOURCES", Binds: res},
		{Title: "GENERAL", Binds: []HelpBind{
			{"<:>", "Command"},
			{"</>", "Search Options"},
			{"<?>", "Help"},
			{"<esc>", "Back"},
			{"<q>", "Quit"},
			{"<ctrl-r>", "Refresh"},
		}},
		{Title: "TABLE", Binds: []HelpBind{
			{"<j>/<k>", "Down/Up"},
			{"<g>/<G>", "Top/Bottom"},
			{"<n>/<p>", "Next/Prev Page"},
			{"<s>", "Page Size"},
			{"<c>", "Columns"},
			{"<f>", "Filters"},
		}},
		{Title: "SELECTION", Binds: []HelpBind{
			{"<space>", "Toggle Row"},
			{"<a>", "Toggle All"},
			{"<x>", "Clear"},
			{"<enter>", "Details"},
			{"<y>", "Copy ID"},
		}},
	}
}

// build lays the sections out side by side, two table columns each.
func (h *Help) build() {
	rows := 0
	for _, s := range h.sections {
		rows = max(rows, len(s.Binds))
	}

	for i, s := range h.sections {
		col := i * 3
		h.SetCell(0, col, tview.NewTableCell(s.Title).
			SetTextColor(tcell.ColorAqua).
			SetAttributes(tcell.AttrBold))
		for r, b := range s.Binds {
			h.SetCell(r+1, col, tview.NewTableCell(b.Key).SetTextColor(tcell.ColorYellow))
			h.SetCell(r+1, col+1, tview.NewTableCell(b.Desc).
				SetTextColor(tcell.ColorWhite).
				SetExpansion(1))
		}
		if i < len(h.sections)-1 {
			h.SetCell(0, col+2, tview.NewTableCell("").SetExpansion(1))
		}
	}
	h.SetCell(rows+2, 0, tview.NewTableCell("<esc> to close").SetTextColor(tcell.ColorGray))
}
