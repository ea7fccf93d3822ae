package model_test

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/passdesk/passdesk/internal/model"
	"github.com/passdesk/passdesk/internal/model1"
)

func newOfferTable(listLength int) (*model.Table[offer], *recorder) {
	t := model.NewTable[offer](offerColumns(), offerFilters(), offerSlots(), listLength)
	r := &recorder{}
	t.AddListener(r)
	return t, r
}

type fakeManager struct {
	got    model1.Columns
	result model1.Columns
}

func (f *fakeManager) ManageColumns(cols model1.Columns, done func(model1.Columns)) {
	f.got = cols
	done(f.result)
}

func TestTableInitializeRequestsFirstPage(t *testing.T) {
	tbl, r := newOfferTable(23)

	require.NoError(t, tbl.Initialize(10))
	require.Len(t, r.loads, 1)
	assert.Equal(t, model.PageRequest{Index: 0, PageSize: 10, Offset: 0, Generation: 1}, r.loads[0])
	require.Len(t, r.pages, 1)
	assert.Equal(t, 3, r.pages[0].PageCount())

	tbl.ReceivePageData(r.loads[0], makeRows(10))
	assert.Len(t, tbl.CurrentRows(), 10)
	assert.Len(t, r.pages, 2)
}

func TestTableEmptyDatasetNeverLoads(t *testing.T) {
	tbl, r := newOfferTable(0)

	require.NoError(t, tbl.Initialize(10))
	tbl.NextPage()
	tbl.ChangePage(0)

	assert.Empty(t, r.loads)
	assert.False(t, tbl.IsDataExisting())
	assert.Empty(t, tbl.CurrentRows())
}

func TestTableNoRedundantLoads(t *testing.T) {
	tbl, r := newOfferTable(25)
	require.NoError(t, tbl.Initialize(10))
	tbl.ReceivePageData(r.loads[0], makeRows(10))

	tbl.NextPage()
	require.Len(t, r.loads, 2)
	tbl.ReceivePageData(r.loads[1], makeRows(10))

	tbl.PrevPage()
	tbl.ChangePage(1)
	assert.Len(t, r.loads, 2)
	assert.Equal(t, 1, tbl.Paginated().CurrentIndex)
}

func TestTablePageSizeChangeDropsCache(t *testing.T) {
	tbl, r := newOfferTable(25)
	require.NoError(t, tbl.Initialize(10))
	tbl.ReceivePageData(r.loads[0], makeRows(10))

	require.NoError(t, tbl.ChangePageSize(5))
	assert.Equal(t, 5, tbl.Paginated().PageCount())
	assert.Empty(t, tbl.CurrentRows())
	assert.Len(t, r.loads, 2)

	assert.ErrorIs(t, tbl.ChangePageSize(0), model.ErrInvalidPageSize)
	assert.Equal(t, 5, tbl.PageSize())
}

func TestTableSelectionEvents(t *testing.T) {
	tbl, r := newOfferTable(4)
	require.NoError(t, tbl.Initialize(10))
	tbl.ReceivePageData(r.loads[0], makeRows(4, 3))

	tbl.Toggle()
	st := tbl.Selection()
	assert.True(t, st.All)
	assert.True(t, st.Indeterminate)
	assert.Equal(t, []int{3}, r.counts)
	assert.Equal(t, []bool{true}, r.checkbox)

	tbl.Toggle()
	assert.Equal(t, []int{3, 0}, r.counts)
	assert.Equal(t, model.SelectionState{}, tbl.Selection())

	tbl.SetRowSelected(0, true)
	tbl.SetRowSelected(3, true)
	assert.Equal(t, []int{3, 0, 1}, r.counts, "disabled row click is ignored")
	assert.True(t, tbl.Selection().Indeterminate)

	tbl.ToggleRow(1)
	tbl.ToggleRow(2)
	assert.Equal(t, model.SelectionState{All: true, Count: 3}, tbl.Selection())
	assert.Len(t, tbl.SelectedRows(), 3)

	tbl.ToggleRow(1)
	assert.Equal(t, model.SelectionState{Indeterminate: true, Count: 2}, tbl.Selection())
	assert.Len(t, r.checkbox, 5)
}

func TestTableSelectionSurvivesPageRevisit(t *testing.T) {
	tbl, r := newOfferTable(15)
	require.NoError(t, tbl.Initialize(10))
	tbl.ReceivePageData(r.loads[0], makeRows(10))
	tbl.SetRowSelected(2, true)

	tbl.NextPage()
	tbl.ReceivePageData(r.loads[1], makeRows(5))
	assert.Empty(t, tbl.SelectedRows())

	tbl.PrevPage()
	require.Len(t, tbl.SelectedRows(), 1)
	assert.Equal(t, 3, tbl.SelectedRows()[0].Item.ID)
}

func TestTableCancelledColumnManager(t *testing.T) {
	tbl, _ := newOfferTable(10)
	visible, filters, slots := tbl.VisibleColumns(), tbl.FilterColumns(), tbl.DisplayedSlots()

	m := &fakeManager{}
	var applied *bool
	tbl.ManageColumns(m, func(ok bool) { applied = &ok })

	require.NotNil(t, applied)
	assert.False(t, *applied)
	assert.Equal(t, offerColumns(), m.got)
	if diff := cmp.Diff(visible, tbl.VisibleColumns()); diff != "" {
		t.Errorf("VisibleColumns() changed (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff(filters, tbl.FilterColumns()); diff != "" {
		t.Errorf("FilterColumns() changed (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff(slots, tbl.DisplayedSlots()); diff != "" {
		t.Errorf("DisplayedSlots() changed (-want +got):\n%s", diff)
	}
}

func TestTableAcceptedColumnManager(t *testing.T) {
	tbl, _ := newOfferTable(10)
	m := &fakeManager{result: hide(offerColumns(), "city")}

	tbl.ManageColumns(m, nil)
	assert.Equal(t, []string{"title", "price", "category", "status"}, tbl.VisibleProperties())
	assert.NotContains(t, tbl.FilterColumns().Names(), "cityFilter")

	m.got[0].IsChecked = false
	assert.Contains(t, tbl.VisibleProperties(), "title", "manager receives a copy")
}

func TestTableHiddenAtConstruction(t *testing.T) {
	tbl := model.NewTable[offer](hide(offerColumns(), "category"), offerFilters(), offerSlots(), 0)
	assert.Equal(t, []string{"statusFilter", "cityFilter", "offerTypeFilter"}, tbl.FilterColumns().Names())

	tbl.ApplyColumns(offerColumns())
	assert.Equal(t, offerFilters().Names(), tbl.FilterColumns().Names())
}

func TestTableFilterValues(t *testing.T) {
	tbl, r := newOfferTable(10)

	tbl.SetFilterValue("cityFilter", "Ghent")
	tbl.SetFilterValue(model1.StatusFilter, "ACTIVE")
	tbl.SetFilterValue("cityFilter", "")

	require.Len(t, r.criteria, 3)
	assert.Equal(t, model1.FilterCriteria{"cityFilter": "Ghent"}, r.criteria[0])
	assert.Equal(t, model1.FilterCriteria{"cityFilter": "Ghent", "statusFilter": "ACTIVE"}, r.criteria[1])
	assert.Equal(t, model1.FilterCriteria{"statusFilter": "ACTIVE"}, r.criteria[2])
	assert.Equal(t, r.criteria[2], tbl.Criteria())
}

func TestTableNarrowOptions(t *testing.T) {
	tbl, _ := newOfferTable(10)

	tbl.NarrowOptions("cityFilter", "gh")
	idx, ok := tbl.FilterColumns().IndexOf("cityFilter")
	require.True(t, ok)
	assert.Equal(t, model1.Options{{Value: "Ghent"}}, tbl.FilterColumns()[idx].Source)
}

func TestTableClickAction(t *testing.T) {
	tbl, r := newOfferTable(3)
	require.NoError(t, tbl.Initialize(10))
	tbl.ReceivePageData(r.loads[0], makeRows(3))

	tbl.ClickAction("details", 1)
	tbl.ClickAction("details", 7)

	require.Len(t, r.actions, 1)
	assert.Equal(t, "details", r.actions[0].Action)
	assert.Equal(t, 2, r.actions[0].Row.Item.ID)
}

func TestTableRemoveListener(t *testing.T) {
	tbl, r := newOfferTable(3)
	tbl.RemoveListener(r)

	require.NoError(t, tbl.Initialize(10))
	assert.Empty(t, r.loads)
}

func TestTableHiddenFilterLosesItsValue(t *testing.T) {
	tbl, r := newOfferTable(10)
	tbl.SetFilterValue("categoryFilter", "Film")
	tbl.SetFilterValue("cityFilter", "Ghent")

	tbl.ApplyColumns(offerColumns())
	assert.Len(t, r.criteria, 2)

	tbl.ApplyColumns(hide(offerColumns(), "category"))
	require.Len(t, r.criteria, 3)
	assert.Equal(t, model1.FilterCriteria{"cityFilter": "Ghent"}, r.criteria[2])
	assert.Equal(t, r.criteria[2], tbl.Criteria())
}
