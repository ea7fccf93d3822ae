package render

import (
	"context"
	"fmt"
	"strings"

	"github.com/passdesk/passdesk/internal/dao"
	"github.com/passdesk/passdesk/internal/model1"
)

// Base provides a base renderer implementation
type Base struct{}

// ColorerFunc returns the default colorer
func (*Base) ColorerFunc() model1.ColorerFunc {
	return model1.DefaultColorer
}

// CheckboxDisabled locks expired records.
func (*Base) CheckboxDisabled(o dao.Object) bool {
	return o != nil && o.GetStatus() == StateExpired
}

// Actions returns the default row actions.
func (*Base) Actions() []string {
	return []string{ActionDetails, ActionCopyID}
}

var statusLabels = map[string]string{
	StateActive:  "Active",
	StateExpired: "Expired",
	StateDraft:   "Draft",
}

func statusFilter() FilterSpec {
	return FilterSpec{
		Name:        model1.StatusFilter,
		Placeholder: "Status",
		LabelType:   model1.LabelText,
		Labels:      statusLabels,
	}
}

func cityFilter() FilterSpec {
	return FilterSpec{
		Name:        model1.FilterKey("city"),
		Placeholder: "City",
		LabelType:   model1.LabelValue,
	}
}

func baseFields(o dao.Object) model1.Fields {
	return model1.Fields{
		"id":        o.GetID(),
		"name":      NA(o.GetName()),
		"status":    StatusLabel(o.GetStatus()),
		"createdAt": ToAge(o.GetCreatedAt()),
	}
}

// StatusLabel returns the display text of a record status.
func StatusLabel(s string) string {
	if l, ok := statusLabels[s]; ok {
		return l
	}
	return NA(s)
}

// BuildFilters resolves the renderer filter declarations into filter columns.
// Option lists are sorted in natural order of their display values.
func BuildFilters(ctx context.Context, r Renderer, options OptionsFunc) (model1.FilterColumns, error) {
	specs := r.Filters()
	ff := make(model1.FilterColumns, 0, len(specs))
	for _, s := range specs {
		var values []string
		if options != nil {
			vv, err := options(ctx, s.Name)
			if err != nil {
				return nil, fmt.Errorf("failed to load %s options: %w", s.Name, err)
			}
			values = vv
		}

		oo := model1.OptionsFrom(values)
		if s.LabelType == model1.LabelText {
			for i := range oo {
				if l, ok := s.Labels[oo[i].Value]; ok {
					oo[i].Label = l
				} else {
					oo[i].Label = Title(oo[i].Value)
				}
			}
			model1.SortOptions(oo, s.LabelType)
		}
		ff = append(ff, model1.NewTableFilterColumn(s.Name, s.Placeholder, s.LabelType, oo))
	}

	return ff, nil
}

// Title capitalizes an upper or lower case token, e.g. "DISCOUNT" becomes "Discount".
func Title(s string) string {
	if s == "" {
		return s
	}
	s = strings.ToLower(strings.ReplaceAll(s, "_", " "))
	return strings.ToUpper(s[:1]) + s[1:]
}
