package render_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/passdesk/passdesk/internal/dao"
	"github.com/passdesk/passdesk/internal/model"
	"github.com/passdesk/passdesk/internal/model1"
	"github.com/passdesk/passdesk/internal/render"
)

func TestRendererFor(t *testing.T) {
	for _, rid := range []dao.ResourceID{dao.OfferRID, dao.GrantRID, dao.PassholderRID} {
		r, err := render.RendererFor(rid)
		require.NoError(t, err, rid.String())
		assert.NotEmpty(t, r.Columns())
	}

	_, err := render.RendererFor(dao.ResourceID{Resource: "pods"})
	assert.ErrorIs(t, err, dao.ErrUnknownResource)
}

// Protected filters must bind to a fixed column or to no column at all.
func TestProtectedFiltersBindToFixedColumns(t *testing.T) {
	for _, rid := range []dao.ResourceID{dao.OfferRID, dao.GrantRID, dao.PassholderRID} {
		r, err := render.RendererFor(rid)
		require.NoError(t, err)

		for _, c := range r.Columns() {
			if model1.IsProtected(c.FilterKey()) {
				assert.True(t, c.IsFixed, "%s: %s", rid, c.Property)
			}
		}
		for _, slot := range r.DisplayedSlots() {
			found := false
			for _, f := range r.Filters() {
				found = found || f.Name == slot
			}
			assert.True(t, found, "%s: slot %s has no filter", rid, slot)
		}
	}
}

func TestBuildFilters(t *testing.T) {
	values := map[string][]string{
		model1.StatusFilter:    {"EXPIRED", "ACTIVE", "ACTIVE", ""},
		model1.OfferTypeFilter: {"VOUCHER", "FREE", "DISCOUNT"},
		"cityFilter":           {"Leuven", "antwerp", "Brussels"},
		"categoryFilter":       {"Sport 10", "Sport 9"},
	}
	options := func(_ context.Context, name string) ([]string, error) {
		return values[name], nil
	}

	ff, err := render.BuildFilters(context.Background(), &render.Offer{}, options)
	require.NoError(t, err)
	if diff := cmp.Diff([]string{"statusFilter", "offerTypeFilter", "cityFilter", "categoryFilter"}, ff.Names()); diff != "" {
		t.Errorf("BuildFilters() names mismatch (-want +got):\n%s", diff)
	}

	display := func(f model1.TableFilterColumn) []string {
		var out []string
		for _, o := range f.Source {
			d, _ := o.Display(f.LabelType)
			out = append(out, d)
		}
		return out
	}
	if diff := cmp.Diff([]string{"Active", "Expired"}, display(ff[0])); diff != "" {
		t.Errorf("status options mismatch (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff([]string{"Discount", "Free entry", "Voucher"}, display(ff[1])); diff != "" {
		t.Errorf("type options mismatch (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff([]string{"antwerp", "Brussels", "Leuven"}, display(ff[2])); diff != "" {
		t.Errorf("city options mismatch (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff([]string{"Sport 9", "Sport 10"}, display(ff[3])); diff != "" {
		t.Errorf("category options mismatch (-want +got):\n%s", diff)
	}
	assert.Equal(t, ff[0].Source, ff[0].FilteredSource)
}

func TestBuildFiltersError(t *testing.T) {
	boom := errors.New("boom")
	_, err := render.BuildFilters(context.Background(), &render.Grant{}, func(context.Context, string) ([]string, error) {
		return nil, boom
	})
	assert.ErrorIs(t, err, boom)
}

// Renderer declarations must be accepted by the table controller as-is.
func TestRendererDeclarationsBuildTable(t *testing.T) {
	r := &render.Passholder{}
	ff, err := render.BuildFilters(context.Background(), r, nil)
	require.NoError(t, err)

	tbl := model.NewTable[dao.Object](r.Columns(), ff, r.DisplayedSlots(), 0)
	if diff := cmp.Diff([]string{"statusFilter", "grantsFilter"}, tbl.DisplayedSlots()); diff != "" {
		t.Errorf("DisplayedSlots() mismatch (-want +got):\n%s", diff)
	}
	assert.Equal(t, []string{"statusFilter", "grantsFilter", "cityFilter"}, tbl.FilterColumns().Names())
}

func TestFields(t *testing.T) {
	created := time.Now().Add(-49 * time.Hour)
	o := &dao.OfferRecord{
		BaseObject: dao.BaseObject{ID: "off-1", Name: "Cinema 1", Status: "EXPIRED", CreatedAt: &created},
		City:       "Ghent",
		Type:       "FREE",
		Price:      1250,
	}

	r := &render.Offer{}
	ff := r.Fields(o)
	assert.Equal(t, "Cinema 1", ff.Get("name"))
	assert.Equal(t, "Free entry", ff.Get("type"))
	assert.Equal(t, "€12.50", ff.Get("price"))
	assert.Equal(t, "Expired", ff.Get("status"))
	assert.Equal(t, "2d", ff.Get("createdAt"))
	assert.Equal(t, model1.NAValue, ff.Get("category"))
	assert.True(t, r.CheckboxDisabled(o))

	p := &dao.PassholderRecord{BaseObject: dao.BaseObject{ID: "ph-1", Name: "Emma Maes", Status: "ACTIVE"}, GrantKind: "SOCIAL"}
	pf := (&render.Passholder{}).Fields(p)
	assert.Equal(t, "Social tariff", pf.Get("grantKind"))
	assert.Equal(t, render.UnknownValue, pf.Get("createdAt"))
	assert.False(t, (&render.Passholder{}).CheckboxDisabled(p))
}

func TestHelpers(t *testing.T) {
	tests := map[string]struct {
		got, want string
	}{
		"cents":         {render.FormatCents(5), "€0.05"},
		"negative":      {render.FormatCents(-1999), "-€19.99"},
		"title":         {render.Title("SOCIAL_TARIFF"), "Social tariff"},
		"truncate":      {render.Truncate("Theatre night", 8), "Theatre…"},
		"no truncation": {render.Truncate("Zoo", 8), "Zoo"},
		"join":          {render.JoinStrings(", ", "a", "", "b"), "a, b"},
		"duration":      {render.HumanDuration(90 * time.Minute), "1h"},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.got)
		})
	}
}
