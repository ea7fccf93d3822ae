package render

import (
	"github.com/passdesk/passdesk/internal/dao"
	"github.com/passdesk/passdesk/internal/model1"
)

var grantKindLabels = map[string]string{
	"UITPAS":  "UiTPAS",
	"SOCIAL":  "Social tariff",
	"STUDENT": "Student",
	"SENIOR":  "Senior",
}

func grantsFilter() FilterSpec {
	return FilterSpec{
		Name:        model1.GrantsFilter,
		Placeholder: "Grant",
		LabelType:   model1.LabelText,
		Labels:      grantKindLabels,
	}
}

// Grant renders grants
type Grant struct {
	Base
}

// Columns returns the grant columns
func (*Grant) Columns() model1.Columns {
	return model1.Columns{
		{Label: "Name", Property: "name", IsChecked: true, IsDefault: true, DataType: model1.DataText, IsFixed: true},
		{Label: "Kind", Property: "kind", IsChecked: true, IsDefault: true, DataType: model1.DataText},
		{Label: "City", Property: "city", IsChecked: true, IsDefault: true, DataType: model1.DataText},
		{Label: "Amount", Property: "amount", IsChecked: true, IsDefault: true, DataType: model1.DataNumber},
		{Label: "Status", Property: "status", IsChecked: true, IsDefault: true, DataType: model1.DataStatus, IsFixed: true},
		{Label: "Created", Property: "createdAt", DataType: model1.DataDate},
	}
}

// Filters returns the grant filters
func (*Grant) Filters() []FilterSpec {
	return []FilterSpec{statusFilter(), grantsFilter(), cityFilter()}
}

// DisplayedSlots returns the pinned grant filters
func (*Grant) DisplayedSlots() []string {
	return []string{model1.StatusFilter, model1.GrantsFilter}
}

// Fields renders a grant
func (*Grant) Fields(o dao.Object) model1.Fields {
	ff := baseFields(o)
	rec, ok := o.(*dao.GrantRecord)
	if !ok {
		return ff
	}
	ff["kind"] = labelOr(grantKindLabels, rec.Kind)
	ff["city"] = rec.City
	ff["amount"] = FormatCents(rec.Amount)
	return ff
}
