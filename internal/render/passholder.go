package render

import (
	"github.com/passdesk/passdesk/internal/dao"
	"github.com/passdesk/passdesk/internal/model1"
)

// Passholder renders passholders
type Passholder struct {
	Base
}

// Columns returns the passholder columns
func (*Passholder) Columns() model1.Columns {
	return model1.Columns{
		{Label: "Name", Property: "name", IsChecked: true, IsDefault: true, DataType: model1.DataText, IsFixed: true},
		{Label: "City", Property: "city", IsChecked: true, IsDefault: true, DataType: model1.DataText},
		{Label: "Grant", Property: "grantKind", IsChecked: true, IsDefault: true, DataType: model1.DataText},
		{Label: "Status", Property: "status", IsChecked: true, IsDefault: true, DataType: model1.DataStatus, IsFixed: true},
		{Label: "ID", Property: "id", DataType: model1.DataText},
		{Label: "Created", Property: "createdAt", DataType: model1.DataDate},
	}
}

// Filters returns the passholder filters
func (*Passholder) Filters() []FilterSpec {
	return []FilterSpec{statusFilter(), grantsFilter(), cityFilter()}
}

// DisplayedSlots returns the pinned passholder filters
func (*Passholder) DisplayedSlots() []string {
	return []string{model1.StatusFilter, model1.GrantsFilter}
}

// Fields renders a passholder
func (*Passholder) Fields(o dao.Object) model1.Fields {
	ff := baseFields(o)
	rec, ok := o.(*dao.PassholderRecord)
	if !ok {
		return ff
	}
	ff["city"] = rec.City
	ff["grantKind"] = labelOr(grantKindLabels, rec.GrantKind)
	return ff
}
