package model

import "github.com/passdesk/passdesk/internal/model1"

// SelectionState represents the tri-state header checkbox.
type SelectionState struct {
	All           bool
	Indeterminate bool
	Count         int
}

// SelectionTracker tracks row selection on the currently displayed page.
// It is not safe for concurrent use.
type SelectionTracker[T any] struct {
	selectAll     bool
	indeterminate bool
}

// NewSelectionTracker returns a tracker with nothing selected.
func NewSelectionTracker[T any]() *SelectionTracker[T] {
	return &SelectionTracker[T]{}
}

// State returns the current aggregate.
func (s *SelectionTracker[T]) State(rows model1.Rows[T]) SelectionState {
	return SelectionState{
		All:           s.selectAll,
		Indeterminate: s.indeterminate,
		Count:         len(rows.Selected()),
	}
}

// SelectAll selects every enabled row. The aggregate is indeterminate unless every row on
// the page, disabled ones included, got marked.
func (s *SelectionTracker[T]) SelectAll(rows model1.Rows[T]) SelectionState {
	var marked int
	for _, r := range rows {
		if r.CheckboxDisabled {
			continue
		}
		r.Selected = true
		marked++
	}
	s.selectAll = true
	s.indeterminate = marked != len(rows)

	return s.State(rows)
}

// DeselectAll clears every enabled row. Disabled rows keep their flag.
func (s *SelectionTracker[T]) DeselectAll(rows model1.Rows[T]) SelectionState {
	for _, r := range rows {
		if !r.CheckboxDisabled {
			r.Selected = false
		}
	}
	s.selectAll, s.indeterminate = false, false

	return SelectionState{}
}

// Toggle flips the header checkbox.
func (s *SelectionTracker[T]) Toggle(rows model1.Rows[T]) SelectionState {
	if !s.selectAll {
		return s.SelectAll(rows)
	}
	return s.DeselectAll(rows)
}

// Recompute derives the aggregate from the per-row flags.
func (s *SelectionTracker[T]) Recompute(rows model1.Rows[T]) SelectionState {
	selected, enabled := len(rows.Selected()), rows.Enabled()
	s.selectAll = selected == enabled
	s.indeterminate = !s.selectAll && selected > 0
	if selected == 0 {
		s.selectAll, s.indeterminate = false, false
	}

	return s.State(rows)
}

// SelectedRows returns the selected rows in page order.
func (s *SelectionTracker[T]) SelectedRows(rows model1.Rows[T]) model1.Rows[T] {
	return rows.Selected()
}
