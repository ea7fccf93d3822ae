package model_test

import (
	"github.com/passdesk/passdesk/internal/model"
	"github.com/passdesk/passdesk/internal/model1"
)

type offer struct {
	ID    int
	Title string
}

func makeRows(n int, disabled ...int) model1.Rows[offer] {
	locked := make(map[int]struct{}, len(disabled))
	for _, d := range disabled {
		locked[d] = struct{}{}
	}
	rows := make(model1.Rows[offer], 0, n)
	for i := 0; i < n; i++ {
		_, ok := locked[i]
		rows = append(rows, model1.NewRow(offer{ID: i + 1}, ok))
	}
	return rows
}

func selectedFlags(rows model1.Rows[offer]) []bool {
	ff := make([]bool, 0, len(rows))
	for _, r := range rows {
		ff = append(ff, r.Selected)
	}
	return ff
}

// offerColumns declares five columns, the 2nd and 4th carry a visibility driven filter.
func offerColumns() model1.Columns {
	return model1.Columns{
		{Label: "Title", Property: "title", IsChecked: true, IsDefault: true},
		{Label: "City", Property: "city", IsChecked: true, IsDefault: true},
		{Label: "Price", Property: "price", IsChecked: true, DataType: model1.DataNumber},
		{Label: "Category", Property: "category", IsChecked: true},
		{Label: "Status", Property: "status", IsChecked: true, IsFixed: true, DataType: model1.DataStatus},
	}
}

func offerFilters() model1.FilterColumns {
	return model1.FilterColumns{
		model1.NewTableFilterColumn(model1.StatusFilter, "Status", model1.LabelText, model1.Options{
			{Value: "ACTIVE", Label: "Active"},
			{Value: "EXPIRED", Label: "Expired"},
		}),
		model1.NewTableFilterColumn("cityFilter", "City", model1.LabelValue, model1.OptionsFrom([]string{
			"Amsterdam", "Antwerp", "Brussels", "Leuven", "Ghent",
		})),
		model1.NewTableFilterColumn(model1.OfferTypeFilter, "Type", model1.LabelValue, model1.Options{
			{Value: "DISCOUNT"}, {Value: "EXPERIENCE"},
		}),
		model1.NewTableFilterColumn("categoryFilter", "Category", model1.LabelValue, model1.Options{
			{Value: "Culture"}, {Value: "Sport"}, {Value: "Youth"},
		}),
	}
}

func offerSlots() []string {
	return []string{model1.StatusFilter, model1.OfferTypeFilter}
}

func hide(cols model1.Columns, props ...string) model1.Columns {
	cc := cols.Clone()
	for _, p := range props {
		if i, ok := cc.IndexOf(p); ok {
			cc[i].IsChecked = false
		}
	}
	return cc
}

func show(cols model1.Columns, props ...string) model1.Columns {
	cc := cols.Clone()
	for _, p := range props {
		if i, ok := cc.IndexOf(p); ok {
			cc[i].IsChecked = true
		}
	}
	return cc
}

type recorder struct {
	loads    []model.PageRequest
	pages    []model1.PaginatedData[offer]
	checkbox []bool
	counts   []int
	criteria []model1.FilterCriteria
	actions  []model.ActionEvent[offer]
}

func (r *recorder) TableLoadData(req model.PageRequest) { r.loads = append(r.loads, req) }

func (r *recorder) TablePageChanged(d model1.PaginatedData[offer]) { r.pages = append(r.pages, d) }

func (r *recorder) TableCheckboxUpdated(b bool) { r.checkbox = append(r.checkbox, b) }

func (r *recorder) TableSelectedItems(n int) { r.counts = append(r.counts, n) }

func (r *recorder) TableFiltersApplied(c model1.FilterCriteria) {
	r.criteria = append(r.criteria, c)
}

func (r *recorder) TableActionClicked(e model.ActionEvent[offer]) {
	r.actions = append(r.actions, e)
}
