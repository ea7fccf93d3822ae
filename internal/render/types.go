package render

import (
	"context"

	"github.com/passdesk/passdesk/internal/dao"
	"github.com/passdesk/passdesk/internal/model1"
)

const (
	// Record states
	StateActive  = "ACTIVE"
	StateExpired = "EXPIRED"
	StateDraft   = "DRAFT"

	// Display values
	MissingValue = "<none>"
	NAValue      = model1.NAValue
	UnknownValue = "<unknown>"
	Blank        = ""
)

// Row actions
const (
	ActionDetails = "details"
	ActionCopyID  = "copy-id"
)

// FilterSpec declares a filter control. Options are looked up at runtime.
type FilterSpec struct {
	Name        string
	Placeholder string
	LabelType   model1.LabelType

	// Labels maps raw values to display text for LabelText filters.
	Labels map[string]string
}

// OptionsFunc returns the distinct values of a filter.
type OptionsFunc func(ctx context.Context, filterName string) ([]string, error)

// Renderer describes how a resource is presented in a table.
type Renderer interface {
	// Columns returns the declared columns in display order.
	Columns() model1.Columns

	// Filters returns the filter declarations in baseline order.
	Filters() []FilterSpec

	// DisplayedSlots returns the filters pinned to the front of the filter bar.
	DisplayedSlots() []string

	// Fields renders a record keyed by column property.
	Fields(o dao.Object) model1.Fields

	// CheckboxDisabled returns true if the record cannot be selected.
	CheckboxDisabled(o dao.Object) bool

	// Actions returns the row actions, the first one is the default.
	Actions() []string

	// ColorerFunc returns the row colorer.
	ColorerFunc() model1.ColorerFunc
}
