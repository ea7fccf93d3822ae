package model

import (
	"sync"

	"github.com/passdesk/passdesk/internal/model1"
)

// Table is a paginated, filterable, multi-select table controller.
type Table[T any] struct {
	pager     *PaginationCache[T]
	selection *SelectionTracker[T]
	columns   *ColumnVisibilityManager
	filters   *FilterReconciler
	criteria  model1.FilterCriteria
	listeners []TableListener[T]
	mx        sync.RWMutex
}

// NewTable returns a controller for the declared columns and filters.
func NewTable[T any](cols model1.Columns, filters model1.FilterColumns, slots []string, listLength int) *Table[T] {
	t := Table[T]{
		pager:     NewPaginationCache[T](listLength),
		selection: NewSelectionTracker[T](),
		columns:   NewColumnVisibilityManager(cols),
		filters:   NewFilterReconciler(filters, slots),
		criteria:  make(model1.FilterCriteria),
		listeners: make([]TableListener[T], 0, 2),
	}
	t.filters.Reconcile(t.columns.Columns())

	return &t
}

// AddListener registers a table listener. Registering it again is a no-op.
func (t *Table[T]) AddListener(l TableListener[T]) {
	t.mx.Lock()
	defer t.mx.Unlock()
	for _, listener := range t.listeners {
		if listener == l {
			return
		}
	}
	t.listeners = append(t.listeners, l)
}

// RemoveListener unregisters a table listener.
func (t *Table[T]) RemoveListener(l TableListener[T]) {
	t.mx.Lock()
	defer t.mx.Unlock()

	for i, listener := range t.listeners {
		if listener == l {
			t.listeners = append(t.listeners[:i], t.listeners[i+1:]...)
			return
		}
	}
}

// SetListLength updates the dataset length. Call Initialize to rebuild the pages.
func (t *Table[T]) SetListLength(n int) {
	t.mx.Lock()
	defer t.mx.Unlock()
	t.pager.SetListLength(n)
}

// ListLength returns the dataset length.
func (t *Table[T]) ListLength() int {
	t.mx.RLock()
	defer t.mx.RUnlock()
	return t.pager.ListLength()
}

// IsDataExisting returns true if the dataset is not empty.
func (t *Table[T]) IsDataExisting() bool {
	t.mx.RLock()
	defer t.mx.RUnlock()
	return t.pager.IsDataExisting()
}

// Initialize rebuilds the page cache for the given page size.
func (t *Table[T]) Initialize(pageSize int) error {
	t.mx.Lock()
	req, err := t.pager.Initialize(pageSize)
	data := t.pager.Data()
	t.mx.Unlock()
	if err != nil {
		return err
	}

	t.notifyPageChanged(data)
	if req != nil {
		t.notifyLoadData(*req)
	}
	return nil
}

// ChangePageSize discards the cached pages and starts over with the new size.
func (t *Table[T]) ChangePageSize(pageSize int) error {
	return t.Initialize(pageSize)
}

// ChangePage moves to the given page.
func (t *Table[T]) ChangePage(index int) {
	t.mx.Lock()
	valid := index >= 0 && index < t.pager.PageCount()
	req := t.pager.ChangePage(index)
	data := t.pager.Data()
	t.mx.Unlock()

	switch {
	case req != nil:
		t.notifyLoadData(*req)
	case valid:
		t.notifyPageChanged(data)
	}
}

// NextPage moves to the following page if any.
func (t *Table[T]) NextPage() {
	t.mx.RLock()
	idx, count := t.pager.CurrentIndex(), t.pager.PageCount()
	t.mx.RUnlock()

	if idx+1 < count {
		t.ChangePage(idx + 1)
	}
}

// PrevPage moves to the previous page if any.
func (t *Table[T]) PrevPage() {
	t.mx.RLock()
	idx := t.pager.CurrentIndex()
	t.mx.RUnlock()

	if idx > 0 {
		t.ChangePage(idx - 1)
	}
}

// ReceivePageData stores the rows answering req.
func (t *Table[T]) ReceivePageData(req PageRequest, rows model1.Rows[T]) {
	t.mx.Lock()
	changed := t.pager.ReceivePageData(req, rows)
	data := t.pager.Data()
	t.mx.Unlock()

	if changed {
		t.notifyPageChanged(data)
	}
}

// Paginated returns a snapshot of the paginated data.
func (t *Table[T]) Paginated() model1.PaginatedData[T] {
	t.mx.RLock()
	defer t.mx.RUnlock()
	return t.pager.Data()
}

// PageSize returns the active page size.
func (t *Table[T]) PageSize() int {
	t.mx.RLock()
	defer t.mx.RUnlock()
	return t.pager.PageSize()
}

// CurrentRows returns the rows of the displayed page.
func (t *Table[T]) CurrentRows() model1.Rows[T] {
	t.mx.RLock()
	defer t.mx.RUnlock()
	return t.pager.Current()
}

// Selection returns the current selection aggregate.
func (t *Table[T]) Selection() SelectionState {
	t.mx.RLock()
	defer t.mx.RUnlock()
	return t.selection.State(t.pager.Current())
}

// SelectAll selects every enabled row of the displayed page.
func (t *Table[T]) SelectAll() {
	t.mx.Lock()
	st := t.selection.SelectAll(t.pager.Current())
	t.mx.Unlock()
	t.notifySelection(st)
}

// DeselectAll clears every enabled row of the displayed page.
func (t *Table[T]) DeselectAll() {
	t.mx.Lock()
	st := t.selection.DeselectAll(t.pager.Current())
	t.mx.Unlock()
	t.notifySelection(st)
}

// Toggle flips the header checkbox.
func (t *Table[T]) Toggle() {
	t.mx.Lock()
	st := t.selection.Toggle(t.pager.Current())
	t.mx.Unlock()
	t.notifySelection(st)
}

// SetRowSelected sets the selected flag of a displayed row. Disabled rows are left alone.
func (t *Table[T]) SetRowSelected(index int, selected bool) {
	t.mx.Lock()
	rows := t.pager.Current()
	if index < 0 || index >= len(rows) || rows[index].CheckboxDisabled {
		t.mx.Unlock()
		return
	}
	rows[index].Selected = selected
	st := t.selection.Recompute(rows)
	t.mx.Unlock()
	t.notifySelection(st)
}

// ToggleRow flips the selected flag of a displayed row.
func (t *Table[T]) ToggleRow(index int) {
	t.mx.RLock()
	rows := t.pager.Current()
	var selected bool
	if index >= 0 && index < len(rows) {
		selected = rows[index].Selected
	}
	t.mx.RUnlock()

	t.SetRowSelected(index, !selected)
}

// SelectedRows returns the selected rows of the displayed page.
func (t *Table[T]) SelectedRows() model1.Rows[T] {
	t.mx.RLock()
	defer t.mx.RUnlock()
	return t.selection.SelectedRows(t.pager.Current())
}

// Columns returns a copy of the declared columns.
func (t *Table[T]) Columns() model1.Columns {
	t.mx.RLock()
	defer t.mx.RUnlock()
	return t.columns.Columns()
}

// VisibleColumns returns the visible columns.
func (t *Table[T]) VisibleColumns() model1.Columns {
	t.mx.RLock()
	defer t.mx.RUnlock()
	return t.columns.VisibleColumns()
}

// VisibleProperties returns the visible column properties.
func (t *Table[T]) VisibleProperties() []string {
	t.mx.RLock()
	defer t.mx.RUnlock()
	return t.columns.VisibleProperties()
}

// ApplyColumns applies a column manager result. A nil result means the user cancelled.
// Values of filters that left the bar are cleared and the new criteria emitted.
func (t *Table[T]) ApplyColumns(cols model1.Columns) bool {
	if cols == nil {
		return false
	}

	t.mx.Lock()
	t.columns.SetColumns(cols)
	t.filters.Reconcile(t.columns.Columns())
	var dropped bool
	for name := range t.criteria {
		if t.filters.Declared(name) && !t.filters.Live(name) {
			delete(t.criteria, name)
			dropped = true
		}
	}
	c := t.criteria.Clone()
	t.mx.Unlock()

	if dropped {
		t.notifyFiltersApplied(c)
	}

	return true
}

// ManageColumns hands a copy of the columns to the manager and applies its result.
func (t *Table[T]) ManageColumns(m ColumnManager, done func(applied bool)) {
	m.ManageColumns(t.Columns(), func(cols model1.Columns) {
		applied := t.ApplyColumns(cols)
		if done != nil {
			done(applied)
		}
	})
}

// FilterColumns returns the live filter bar configuration.
func (t *Table[T]) FilterColumns() model1.FilterColumns {
	t.mx.RLock()
	defer t.mx.RUnlock()
	return t.filters.FilterColumns()
}

// DisplayedSlots returns the live displayed filter slots.
func (t *Table[T]) DisplayedSlots() []string {
	t.mx.RLock()
	defer t.mx.RUnlock()
	return t.filters.DisplayedSlots()
}

// NarrowOptions narrows the option list of the named filter.
func (t *Table[T]) NarrowOptions(name, text string) {
	t.mx.Lock()
	defer t.mx.Unlock()
	t.filters.NarrowOptions(name, text)
}

// SetFilterValue records a filter value and emits the resulting criteria.
func (t *Table[T]) SetFilterValue(name, value string) {
	t.mx.Lock()
	t.criteria.Set(name, value)
	c := t.criteria.Clone()
	t.mx.Unlock()

	t.notifyFiltersApplied(c)
}

// Criteria returns the current filter criteria.
func (t *Table[T]) Criteria() model1.FilterCriteria {
	t.mx.RLock()
	defer t.mx.RUnlock()
	return t.criteria.Clone()
}

// ClickAction reports a row action activation.
func (t *Table[T]) ClickAction(action string, index int) {
	t.mx.RLock()
	rows := t.pager.Current()
	if index < 0 || index >= len(rows) {
		t.mx.RUnlock()
		return
	}
	evt := ActionEvent[T]{Action: action, Index: index, Row: rows[index]}
	t.mx.RUnlock()

	for _, l := range t.snapshot() {
		l.TableActionClicked(evt)
	}
}

func (t *Table[T]) snapshot() []TableListener[T] {
	t.mx.RLock()
	defer t.mx.RUnlock()

	ll := make([]TableListener[T], len(t.listeners))
	copy(ll, t.listeners)
	return ll
}

func (t *Table[T]) notifyLoadData(req PageRequest) {
	for _, l := range t.snapshot() {
		l.TableLoadData(req)
	}
}

func (t *Table[T]) notifyPageChanged(data model1.PaginatedData[T]) {
	for _, l := range t.snapshot() {
		l.TablePageChanged(data)
	}
}

func (t *Table[T]) notifySelection(st SelectionState) {
	for _, l := range t.snapshot() {
		l.TableCheckboxUpdated(true)
		l.TableSelectedItems(st.Count)
	}
}

func (t *Table[T]) notifyFiltersApplied(c model1.FilterCriteria) {
	for _, l := range t.snapshot() {
		l.TableFiltersApplied(c)
	}
}
