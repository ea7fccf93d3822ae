// SPDX-License-Identifier: Apache-2.0
// Copyright Authors of passdesk

package ui

import (
	"fmt"
	"sync"

	"github.com/derailed/tcell/v2"
	"github.com/derailed/tview"

	"github.com/passdesk/passdesk/internal/model"
	"github.com/passdesk/passdesk/internal/model1"
)

// Checkbox glyphs.
const (
	CheckboxOff   = "☐"
	CheckboxOn    = "☑"
	CheckboxMixed = "▣"
)

const (
	// TitleFmt formats the table title with resource name and counts.
	TitleFmt = " <%s>[%d/%d] "

	checkboxCol = 0
)

// RowView is a rendered table row.
type RowView struct {
	Fields   model1.Fields
	Selected bool
	Disabled bool
}

// HeaderGlyph returns the select-all checkbox glyph for a selection state.
func HeaderGlyph(st model.SelectionState) string {
	switch {
	case st.All:
		return CheckboxOn
	case st.Indeterminate:
		return CheckboxMixed
	default:
		return CheckboxOff
	}
}

// RowGlyph returns the checkbox glyph of a row.
func RowGlyph(selected bool) string {
	if selected {
		return CheckboxOn
	}
	return CheckboxOff
}

// Table represents a paged table with a leading checkbox column.
type Table struct {
	*tview.Table

	name    string
	actions *KeyActions
	colorer model1.ColorerFunc
	cols    model1.Columns
	rows    int
	mx      sync.RWMutex
}

// NewTable returns a new table instance.
func NewTable(name string) *Table {
	return &Table{
		Table:   tview.NewTable(),
		name:    name,
		actions: NewKeyActions(),
		colorer: model1.DefaultColorer,
	}
}

// Init initializes the table component.
func (t *Table) Init() {
	t.SetFixed(1, 0)
	t.SetBorder(true)
	t.SetBorderAttributes(tcell.AttrBold)
	t.SetBorderPadding(0, 0, 1, 1)
	t.SetSelectable(true, false)
	t.SetBackgroundColor(tcell.ColorDefault)
	t.SetBorderColor(tcell.ColorWhite)
	t.SetTitle(fmt.Sprintf(TitleFmt, t.name, 0, 0))
	t.ShowMessage("Loading...")

	t.SetInputCapture(t.keyboard)
}

// Name returns the table name.
func (t *Table) Name() string {
	return t.name
}

// Actions returns the key actions.
func (t *Table) Actions() *KeyActions {
	return t.actions
}

// Hints returns menu hints for key bindings.
func (t *Table) Hints() MenuHints {
	return t.actions.Hints()
}

// SetColorerFn sets the row colorer.
func (t *Table) SetColorerFn(f model1.ColorerFunc) {
	if f == nil {
		return
	}
	t.mx.Lock()
	defer t.mx.Unlock()
	t.colorer = f
}

// keyboard handles table keyboard input.
func (t *Table) keyboard(evt *tcell.EventKey) *tcell.EventKey {
	row, col := t.GetSelection()
	rowCount := t.GetRowCount()

	if evt.Key() == tcell.KeyRune {
		switch evt.Rune() {
		case 'j':
			if row < rowCount-1 {
				t.Select(row+1, col)
			}
			return nil
		case 'k':
			if row > 1 {
				t.Select(row-1, col)
			}
			return nil
		case 'g':
			if rowCount > 1 {
				t.Select(1, col)
			}
			return nil
		case 'G':
			if rowCount > 1 {
				t.Select(rowCount-1, col)
			}
			return nil
		}
	}

	if out, ok := t.actions.Handle(evt); ok {
		return out
	}

	return evt
}

// ShowMessage replaces the table content with a single message.
func (t *Table) ShowMessage(msg string) {
	t.mx.Lock()
	t.rows = 0
	t.mx.Unlock()

	t.Clear()
	cell := tview.NewTableCell(msg)
	cell.SetTextColor(tcell.ColorGray)
	cell.SetAlign(tview.AlignCenter)
	cell.SetSelectable(false)
	cell.SetExpansion(1)
	t.SetCell(0, 0, cell)
}

// Update renders the visible columns and the current page rows.
func (t *Table) Update(cols model1.Columns, rows []RowView, st model.SelectionState, total int) {
	t.mx.Lock()
	t.cols = cols.Clone()
	t.rows = len(rows)
	colorer := t.colorer
	t.mx.Unlock()

	row, _ := t.GetSelection()
	t.Clear()
	t.buildHeader(cols, st)
	for i, r := range rows {
		t.buildRow(i+1, cols, r, colorer)
	}
	t.SetTitle(fmt.Sprintf(TitleFmt, t.name, st.Count, total))

	switch {
	case len(rows) == 0:
		t.SetCell(1, 0, tview.NewTableCell("No matching records").
			SetTextColor(tcell.ColorGray).
			SetSelectable(false))
	case row < 1:
		t.Select(1, 0)
	case row > len(rows):
		t.Select(len(rows), 0)
	default:
		t.Select(row, 0)
	}
}

func (t *Table) buildHeader(cols model1.Columns, st model.SelectionState) {
	t.SetCell(0, checkboxCol, tview.NewTableCell(HeaderGlyph(st)).
		SetTextColor(tcell.ColorYellow).
		SetAttributes(tcell.AttrBold).
		SetSelectable(false))

	for i, c := range cols {
		align := tview.AlignLeft
		if c.DataType == model1.DataNumber {
			align = tview.AlignRight
		}
		t.SetCell(0, i+1, tview.NewTableCell(c.Label).
			SetTextColor(tcell.ColorYellow).
			SetAttributes(tcell.AttrBold).
			SetAlign(align).
			SetExpansion(1).
			SetSelectable(false))
	}
}

func (t *Table) buildRow(idx int, cols model1.Columns, r RowView, colorer model1.ColorerFunc) {
	fg := colorer(r.Selected, r.Disabled)

	t.SetCell(idx, checkboxCol, tview.NewTableCell(RowGlyph(r.Selected)).
		SetTextColor(fg))
	for i, c := range cols {
		align := tview.AlignLeft
		if c.DataType == model1.DataNumber {
			align = tview.AlignRight
		}
		t.SetCell(idx, i+1, tview.NewTableCell(r.Fields.Get(c.Property)).
			SetTextColor(fg).
			SetAlign(align).
			SetExpansion(1))
	}
}

// SelectedIndex returns the page index of the highlighted row, or -1.
func (t *Table) SelectedIndex() int {
	t.mx.RLock()
	n := t.rows
	t.mx.RUnlock()

	row, _ := t.GetSelection()
	if row < 1 || row > n {
		return -1
	}
	return row - 1
}

// VisibleColumns returns the columns currently rendered.
func (t *Table) VisibleColumns() model1.Columns {
	t.mx.RLock()
	defer t.mx.RUnlock()

	return t.cols.Clone()
}
