package render

import (
	"github.com/passdesk/passdesk/internal/dao"
	"github.com/passdesk/passdesk/internal/model1"
)

var offerTypeLabels = map[string]string{
	"DISCOUNT": "Discount",
	"FREE":     "Free entry",
	"VOUCHER":  "Voucher",
}

// Offer renders offers
type Offer struct {
	Base
}

// Columns returns the offer columns
func (*Offer) Columns() model1.Columns {
	return model1.Columns{
		{Label: "Title", Property: "name", IsChecked: true, IsDefault: true, DataType: model1.DataText, IsFixed: true},
		{Label: "City", Property: "city", IsChecked: true, IsDefault: true, DataType: model1.DataText},
		{Label: "Category", Property: "category", IsChecked: true, IsDefault: true, DataType: model1.DataText},
		{Label: "Type", Property: "type", IsChecked: true, IsDefault: true, DataType: model1.DataText},
		{Label: "Price", Property: "price", DataType: model1.DataNumber},
		{Label: "Status", Property: "status", IsChecked: true, IsDefault: true, DataType: model1.DataStatus, IsFixed: true},
		{Label: "Created", Property: "createdAt", DataType: model1.DataDate},
	}
}

// Filters returns the offer filters
func (*Offer) Filters() []FilterSpec {
	return []FilterSpec{
		statusFilter(),
		{Name: model1.OfferTypeFilter, Placeholder: "Type", LabelType: model1.LabelText, Labels: offerTypeLabels},
		cityFilter(),
		{Name: model1.FilterKey("category"), Placeholder: "Category", LabelType: model1.LabelValue},
	}
}

// DisplayedSlots returns the pinned offer filters
func (*Offer) DisplayedSlots() []string {
	return []string{model1.StatusFilter, model1.OfferTypeFilter}
}

// Fields renders an offer
func (*Offer) Fields(o dao.Object) model1.Fields {
	ff := baseFields(o)
	rec, ok := o.(*dao.OfferRecord)
	if !ok {
		return ff
	}
	ff["city"] = rec.City
	ff["category"] = rec.Category
	ff["type"] = labelOr(offerTypeLabels, rec.Type)
	ff["price"] = FormatCents(rec.Price)
	return ff
}
