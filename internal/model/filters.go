package model

import "github.com/passdesk/passdesk/internal/model1"

// FilterReconciler keeps the filter bar in sync with column visibility.
// Baselines are captured once and never mutated; a filter removed when its column is hidden
// comes back at its original position, with its last live state, when the column is shown.
// It is not safe for concurrent use.
type FilterReconciler struct {
	baselineFilters model1.FilterColumns
	baselineSlots   []string
	filterRank      map[string]int
	slotRank        map[string]int

	filters model1.FilterColumns
	slots   []string
	parked  map[string]model1.TableFilterColumn
}

// NewFilterReconciler returns a reconciler for the declared filters and displayed slots.
func NewFilterReconciler(filters model1.FilterColumns, slots []string) *FilterReconciler {
	r := FilterReconciler{
		baselineFilters: filters.Clone(),
		baselineSlots:   append([]string(nil), slots...),
		filterRank:      make(map[string]int, len(filters)),
		slotRank:        make(map[string]int, len(slots)),
		filters:         filters.Clone(),
		slots:           append([]string(nil), slots...),
		parked:          make(map[string]model1.TableFilterColumn),
	}
	for i, f := range r.baselineFilters {
		if _, ok := r.filterRank[f.FilterName]; !ok {
			r.filterRank[f.FilterName] = i
		}
	}
	for i, s := range r.baselineSlots {
		if _, ok := r.slotRank[s]; !ok {
			r.slotRank[s] = i
		}
	}

	return &r
}

// Reconcile applies the checked state of every column to the live filters and slots.
func (r *FilterReconciler) Reconcile(cols model1.Columns) {
	for _, col := range cols {
		key := col.FilterKey()
		switch {
		case !model1.IsProtected(key) && !col.IsChecked:
			r.removeFilter(key)
		case !col.IsChecked:
			r.removeSlot(key)
			r.removeFilter(key)
		default:
			r.insertFilter(key)
			r.insertSlot(key)
		}
	}
}

// Declared returns true if the filter belongs to the baseline.
func (r *FilterReconciler) Declared(name string) bool {
	_, ok := r.filterRank[name]
	return ok
}

// Live returns true if the filter is currently in the filter bar.
func (r *FilterReconciler) Live(name string) bool {
	_, ok := r.filters.IndexOf(name)
	return ok
}

// FilterColumns returns a deep copy of the live filters.
func (r *FilterReconciler) FilterColumns() model1.FilterColumns {
	return r.filters.Clone()
}

// DisplayedSlots returns a copy of the live displayed slots.
func (r *FilterReconciler) DisplayedSlots() []string {
	return append([]string(nil), r.slots...)
}

// Filter returns the live filter with the given name.
func (r *FilterReconciler) Filter(name string) (model1.TableFilterColumn, bool) {
	idx, ok := r.filters.IndexOf(name)
	if !ok {
		return model1.TableFilterColumn{}, false
	}
	return r.filters[idx].Clone(), true
}

// NarrowOptions narrows the option list of a filter to the master options matching text.
// An empty text restores the master list. Unknown filters and label types are ignored.
func (r *FilterReconciler) NarrowOptions(name, text string) {
	idx, ok := r.filters.IndexOf(name)
	if !ok {
		return
	}
	f := &r.filters[idx]
	if !f.LabelType.Known() {
		return
	}
	if text == "" {
		f.Source = f.FilteredSource.Clone()
		return
	}
	if oo, ok := f.Narrow(text); ok {
		f.Source = oo
	}
}

func (r *FilterReconciler) removeFilter(key string) {
	idx, ok := r.filters.IndexOf(key)
	if !ok {
		return
	}
	r.parked[key] = r.filters[idx]
	r.filters = append(r.filters[:idx], r.filters[idx+1:]...)
}

func (r *FilterReconciler) removeSlot(key string) {
	for i, s := range r.slots {
		if s == key {
			r.slots = append(r.slots[:i], r.slots[i+1:]...)
			return
		}
	}
}

// insertFilter splices key back in front of the first live filter that follows it in the
// baseline order.
func (r *FilterReconciler) insertFilter(key string) {
	rank, ok := r.filterRank[key]
	if !ok {
		return
	}
	if _, ok := r.filters.IndexOf(key); ok {
		return
	}
	f, ok := r.parked[key]
	if ok {
		delete(r.parked, key)
	} else {
		f = r.baselineFilters[rank].Clone()
	}

	pos := len(r.filters)
	for i, live := range r.filters {
		if lr, ok := r.filterRank[live.FilterName]; ok && lr > rank {
			pos = i
			break
		}
	}
	r.filters = append(r.filters, model1.TableFilterColumn{})
	copy(r.filters[pos+1:], r.filters[pos:])
	r.filters[pos] = f
}

func (r *FilterReconciler) insertSlot(key string) {
	rank, ok := r.slotRank[key]
	if !ok {
		return
	}
	for _, s := range r.slots {
		if s == key {
			return
		}
	}

	pos := len(r.slots)
	for i, s := range r.slots {
		if sr, ok := r.slotRank[s]; ok && sr > rank {
			pos = i
			break
		}
	}
	r.slots = append(r.slots, "")
	copy(r.slots[pos+1:], r.slots[pos:])
	r.slots[pos] = key
}
