package model1

import "strings"

const filterSuffix = "Filter"

// FilterKey derives a filter name from a column property.
func FilterKey(property string) string {
	return property + filterSuffix
}

// Filter keys that stay in the filter bar regardless of column visibility.
const (
	StatusFilter    = "statusFilter"
	OfferTypeFilter = "offerTypeFilter"
	GrantsFilter    = "grantsFilter"
)

// ProtectedFilterSet lists filters whose source data is not 1:1 with a toggleable column.
var ProtectedFilterSet = map[string]struct{}{
	StatusFilter:    {},
	OfferTypeFilter: {},
	GrantsFilter:    {},
}

// IsProtected returns true if the filter key belongs to the protected set.
func IsProtected(key string) bool {
	_, ok := ProtectedFilterSet[key]
	return ok
}

// LabelType tells how an option is displayed.
type LabelType int

const (
	// LabelValue displays the raw option value.
	LabelValue LabelType = iota

	// LabelText displays the option label.
	LabelText
)

// Known returns true for label types the filter bar knows how to display.
func (lt LabelType) Known() bool {
	return lt == LabelValue || lt == LabelText
}

// Option represents a selectable filter value.
type Option struct {
	Value string `json:"value"`
	Label string `json:"label,omitempty"`
}

// Display returns the option display value for the given label type.
func (o Option) Display(lt LabelType) (string, bool) {
	switch lt {
	case LabelValue:
		return o.Value, true
	case LabelText:
		if o.Label == "" {
			return o.Value, true
		}
		return o.Label, true
	default:
		return "", false
	}
}

// Options represents a list of filter options.
type Options []Option

// Clone returns a copy of the options.
func (o Options) Clone() Options {
	if o == nil {
		return nil
	}
	oo := make(Options, len(o))
	copy(oo, o)
	return oo
}

// TableFilterColumn represents a filter control of the filter bar.
// Source is the live, possibly narrowed, option list. FilteredSource is the master list.
type TableFilterColumn struct {
	FilterName     string    `json:"filterName"`
	Source         Options   `json:"source"`
	FilteredSource Options   `json:"filteredSource"`
	Placeholder    string    `json:"placeholder"`
	LabelType      LabelType `json:"labelType"`
}

// NewTableFilterColumn returns a filter whose live source equals the master list.
func NewTableFilterColumn(name, placeholder string, lt LabelType, opts Options) TableFilterColumn {
	return TableFilterColumn{
		FilterName:     name,
		Source:         opts.Clone(),
		FilteredSource: opts.Clone(),
		Placeholder:    placeholder,
		LabelType:      lt,
	}
}

// Clone returns a deep copy.
func (f TableFilterColumn) Clone() TableFilterColumn {
	f.Source = f.Source.Clone()
	f.FilteredSource = f.FilteredSource.Clone()
	return f
}

// Narrow returns the master options whose display value contains text, case-insensitively.
// The second return is false when the label type cannot be narrowed.
func (f TableFilterColumn) Narrow(text string) (Options, bool) {
	if !f.LabelType.Known() {
		return nil, false
	}
	needle := strings.ToLower(strings.TrimSpace(text))
	out := make(Options, 0, len(f.FilteredSource))
	for _, o := range f.FilteredSource {
		d, _ := o.Display(f.LabelType)
		if strings.Contains(strings.ToLower(d), needle) {
			out = append(out, o)
		}
	}
	return out, true
}

// FilterColumns represents an ordered filter bar configuration.
type FilterColumns []TableFilterColumn

// Clone returns a deep copy.
func (ff FilterColumns) Clone() FilterColumns {
	if ff == nil {
		return nil
	}
	out := make(FilterColumns, len(ff))
	for i, f := range ff {
		out[i] = f.Clone()
	}
	return out
}

// IndexOf returns the position of the named filter.
func (ff FilterColumns) IndexOf(name string) (int, bool) {
	for i, f := range ff {
		if f.FilterName == name {
			return i, true
		}
	}
	return -1, false
}

// Names returns the filter names in order.
func (ff FilterColumns) Names() []string {
	nn := make([]string, 0, len(ff))
	for _, f := range ff {
		nn = append(nn, f.FilterName)
	}
	return nn
}

// FilterCriteria maps filter names to their chosen value. Absent means unset.
type FilterCriteria map[string]string

// Clone returns a copy of the criteria.
func (c FilterCriteria) Clone() FilterCriteria {
	out := make(FilterCriteria, len(c))
	for k, v := range c {
		out[k] = v
	}
	return out
}

// Set assigns a value, an empty value clears the filter.
func (c FilterCriteria) Set(name, value string) {
	if value == "" {
		delete(c, name)
		return
	}
	c[name] = value
}
