// SPDX-License-Identifier: Apache-2.0
// Copyright Authors of passdesk

package ui

import (
	"fmt"
	"sync"

	"github.com/derailed/tcell/v2"
	"github.com/derailed/tview"

	"github.com/passdesk/passdesk/internal/model1"
)

// AllOption is shown for a filter without a value.
const AllOption = "All"

// FilterOrder returns the filter names in bar order: the pinned slots first,
// then the remaining filters in their own order.
func FilterOrder(filters model1.FilterColumns, slots []string) []string {
	present := make(map[string]struct{}, len(filters))
	for _, f := range filters {
		present[f.FilterName] = struct{}{}
	}

	out := make([]string, 0, len(filters))
	pinned := make(map[string]struct{}, len(slots))
	for _, s := range slots {
		if _, ok := present[s]; !ok {
			continue
		}
		if _, dup := pinned[s]; dup {
			continue
		}
		pinned[s] = struct{}{}
		out = append(out, s)
	}
	for _, f := range filters {
		if _, ok := pinned[f.FilterName]; !ok {
			out = append(out, f.FilterName)
		}
	}

	return out
}

// FilterBar shows one selector per active filter.
type FilterBar struct {
	*tview.Table

	order     []string
	filters   map[string]model1.TableFilterColumn
	criteria  model1.FilterCriteria
	focus     int
	changedFn func(name, value string)
	doneFn    func()
	mx        sync.RWMutex
}

// NewFilterBar returns an empty filter bar.
func NewFilterBar() *FilterBar {
	b := FilterBar{
		Table:   tview.NewTable(),
		filters: make(map[string]model1.TableFilterColumn),
	}
	b.SetBackgroundColor(tcell.ColorDefault)
	b.SetBorderPadding(0, 0, 1, 1)
	b.SetInputCapture(b.keyboard)

	return &b
}

// SetChangedFn sets the callback invoked when a filter value changes.
func (b *FilterBar) SetChangedFn(f func(name, value string)) {
	b.mx.Lock()
	defer b.mx.Unlock()
	b.changedFn = f
}

// SetDoneFn sets the callback invoked when the user leaves the bar.
func (b *FilterBar) SetDoneFn(f func()) {
	b.mx.Lock()
	defer b.mx.Unlock()
	b.doneFn = f
}

// Update redraws the bar from the filter configuration and current values.
func (b *FilterBar) Update(filters model1.FilterColumns, slots []string, criteria model1.FilterCriteria) {
	b.mx.Lock()
	focused := b.focusedLocked()
	b.order = FilterOrder(filters, slots)
	b.filters = make(map[string]model1.TableFilterColumn, len(filters))
	for _, f := range filters {
		b.filters[f.FilterName] = f.Clone()
	}
	b.criteria = criteria.Clone()
	b.focus = 0
	for i, n := range b.order {
		if n == focused {
			b.focus = i
		}
	}
	b.mx.Unlock()

	b.render()
}

// Order returns the filter names as displayed.
func (b *FilterBar) Order() []string {
	b.mx.RLock()
	defer b.mx.RUnlock()

	return append([]string(nil), b.order...)
}

// Focused returns the name of the focused filter or blank.
func (b *FilterBar) Focused() string {
	b.mx.RLock()
	defer b.mx.RUnlock()

	return b.focusedLocked()
}

func (b *FilterBar) focusedLocked() string {
	if b.focus < 0 || b.focus >= len(b.order) {
		return ""
	}
	return b.order[b.focus]
}

// MoveFocus moves the focus by delta, wrapping around.
func (b *FilterBar) MoveFocus(delta int) {
	b.mx.Lock()
	if n := len(b.order); n > 0 {
		b.focus = ((b.focus+delta)%n + n) % n
	}
	b.mx.Unlock()

	b.render()
}

// Cycle picks the option delta steps away from the current value of the
// focused filter. The unset value sits before the first option.
func (b *FilterBar) Cycle(delta int) {
	b.mx.Lock()
	name := b.focusedLocked()
	f, ok := b.filters[name]
	if !ok {
		b.mx.Unlock()
		return
	}
	values := make([]string, 0, len(f.Source)+1)
	values = append(values, "")
	for _, o := range f.Source {
		values = append(values, o.Value)
	}
	cur := 0
	for i, v := range values {
		if v == b.criteria[name] {
			cur = i
		}
	}
	n := len(values)
	next := values[((cur+delta)%n+n)%n]
	b.criteria.Set(name, next)
	fn := b.changedFn
	b.mx.Unlock()

	b.render()
	if fn != nil {
		fn(name, next)
	}
}

// ClearFocused unsets the focused filter.
func (b *FilterBar) ClearFocused() {
	b.mx.Lock()
	name := b.focusedLocked()
	_, set := b.criteria[name]
	b.criteria.Set(name, "")
	fn := b.changedFn
	b.mx.Unlock()

	b.render()
	if set && fn != nil {
		fn(name, "")
	}
}

// Label returns the display text of a filter cell.
func (b *FilterBar) Label(name string) string {
	b.mx.RLock()
	defer b.mx.RUnlock()

	return b.labelLocked(name)
}

func (b *FilterBar) labelLocked(name string) string {
	f := b.filters[name]
	value := AllOption
	if v, ok := b.criteria[name]; ok {
		value = v
		for _, o := range f.FilteredSource {
			if o.Value != v {
				continue
			}
			if d, ok := o.Display(f.LabelType); ok {
				value = d
			}
		}
	}
	title := f.Placeholder
	if title == "" {
		title = name
	}
	narrowed := ""
	if len(f.Source) != len(f.FilteredSource) {
		narrowed = fmt.Sprintf(" (%d/%d)", len(f.Source), len(f.FilteredSource))
	}

	return fmt.Sprintf("%s: %s%s ▾", title, value, narrowed)
}

func (b *FilterBar) keyboard(evt *tcell.EventKey) *tcell.EventKey {
	switch evt.Key() {
	case tcell.KeyEsc, tcell.KeyEnter:
		b.mx.RLock()
		fn := b.doneFn
		b.mx.RUnlock()
		if fn != nil {
			fn()
		}
		return nil
	case tcell.KeyLeft:
		b.MoveFocus(-1)
		return nil
	case tcell.KeyRight, tcell.KeyTab:
		b.MoveFocus(1)
		return nil
	case tcell.KeyUp:
		b.Cycle(-1)
		return nil
	case tcell.KeyDown:
		b.Cycle(1)
		return nil
	case tcell.KeyBackspace, tcell.KeyBackspace2, tcell.KeyDelete:
		b.ClearFocused()
		return nil
	}

	return evt
}

func (b *FilterBar) render() {
	b.mx.RLock()
	order := append([]string(nil), b.order...)
	focus := b.focus
	labels := make([]string, len(order))
	for i, n := range order {
		labels[i] = b.labelLocked(n)
	}
	b.mx.RUnlock()

	b.Clear()
	for i, l := range labels {
		cell := tview.NewTableCell(" " + l + " ").SetTextColor(tcell.ColorWhite)
		if i == focus {
			cell.SetTextColor(tcell.ColorBlack).SetBackgroundColor(tcell.ColorAqua)
		}
		b.SetCell(0, i, cell)
	}
}
