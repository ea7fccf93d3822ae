// SPDX-License-Identifier: Apache-2.0
// Copyright Authors of passdesk

package ui

import (
	"sync"

	"github.com/derailed/tcell/v2"
	"github.com/derailed/tview"

	"github.com/passdesk/passdesk/internal/model1"
)

const columnManagerPage = "column-manager"

// ColumnManager is a modal letting the user pick the visible columns.
// Fixed columns are shown locked.
type ColumnManager struct {
	*tview.Table

	pages   *Pages
	working model1.Columns
	initial model1.Columns
	done    func(model1.Columns)
	focusFn func(tview.Primitive)
	mx      sync.Mutex
}

// NewColumnManager returns a column manager rendered on top of pages.
func NewColumnManager(pages *Pages) *ColumnManager {
	m := ColumnManager{
		Table: tview.NewTable(),
		pages: pages,
	}
	m.SetBorder(true)
	m.SetTitle(" Columns <space> toggle <r> reset <enter> apply <esc> cancel ")
	m.SetBorderColor(tcell.ColorAqua)
	m.SetBackgroundColor(tcell.ColorDefault)
	m.SetSelectable(true, false)
	m.SetInputCapture(m.keyboard)

	return &m
}

// SetFocusFn sets the callback used to move focus to and from the modal.
func (m *ColumnManager) SetFocusFn(f func(tview.Primitive)) {
	m.focusFn = f
}

// ManageColumns opens the modal on a copy of cols. done receives the edited
// columns on apply, or nil on cancel and on an apply that changed nothing.
func (m *ColumnManager) ManageColumns(cols model1.Columns, done func(model1.Columns)) {
	m.mx.Lock()
	m.working = cols.Clone()
	m.initial = cols.Clone()
	m.done = done
	m.mx.Unlock()

	m.render()
	m.Select(0, 0)
	if m.pages != nil {
		m.pages.Show(columnManagerPage, centered(m, 50, len(cols)+2))
	}
	if m.focusFn != nil {
		m.focusFn(m)
	}
}

// Working returns a copy of the columns being edited.
func (m *ColumnManager) Working() model1.Columns {
	m.mx.Lock()
	defer m.mx.Unlock()

	return m.working.Clone()
}

// Toggle flips the checked state of a column. Fixed columns do not change.
func (m *ColumnManager) Toggle(i int) bool {
	m.mx.Lock()
	if i < 0 || i >= len(m.working) || m.working[i].IsFixed {
		m.mx.Unlock()
		return false
	}
	m.working[i].IsChecked = !m.working[i].IsChecked
	m.mx.Unlock()

	m.render()
	return true
}

// Reset restores the declared default visibility.
func (m *ColumnManager) Reset() {
	m.mx.Lock()
	m.working = m.working.Defaults()
	m.mx.Unlock()

	m.render()
}

// Apply closes the modal and hands over the edited columns.
func (m *ColumnManager) Apply() {
	m.close(true)
}

// Cancel closes the modal without changes.
func (m *ColumnManager) Cancel() {
	m.close(false)
}

func (m *ColumnManager) close(apply bool) {
	m.mx.Lock()
	done := m.done
	cols := m.working.Clone()
	unchanged := !cols.Diff(m.initial)
	m.done = nil
	m.mx.Unlock()

	if m.pages != nil {
		m.pages.Hide(columnManagerPage)
	}
	if done == nil {
		return
	}
	if apply && !unchanged {
		done(cols)
		return
	}
	done(nil)
}

func (m *ColumnManager) keyboard(evt *tcell.EventKey) *tcell.EventKey {
	row, _ := m.GetSelection()
	switch evt.Key() {
	case tcell.KeyEnter:
		m.Apply()
		return nil
	case tcell.KeyEsc:
		m.Cancel()
		return nil
	case tcell.KeyRune:
		switch evt.Rune() {
		case ' ':
			m.Toggle(row)
			return nil
		case 'r':
			m.Reset()
			return nil
		}
	}

	return evt
}

func (m *ColumnManager) render() {
	m.mx.Lock()
	cols := m.working.Clone()
	m.mx.Unlock()

	row, _ := m.GetSelection()
	m.Clear()
	for i, c := range cols {
		glyph, color := RowGlyph(c.IsChecked), tcell.ColorWhite
		if c.IsFixed {
			glyph, color = CheckboxOn, tcell.ColorGray
		}
		m.SetCell(i, 0, tview.NewTableCell(glyph).SetTextColor(color))
		label := c.Label
		if c.IsFixed {
			label += " (fixed)"
		}
		m.SetCell(i, 1, tview.NewTableCell(label).SetTextColor(color).SetExpansion(1))
	}
	if row >= 0 && row < len(cols) {
		m.Select(row, 0)
	}
}

// centered wraps p in a flex centering it at the given size.
func centered(p tview.Primitive, width, height int) tview.Primitive {
	return tview.NewFlex().
		AddItem(nil, 0, 1, false).
		AddItem(tview.NewFlex().SetDirection(tview.FlexRow).
			AddItem(nil, 0, 1, false).
			AddItem(p, height, 1, true).
			AddItem(nil, 0, 1, false), width, 1, true).
		AddItem(nil, 0, 1, false)
}
