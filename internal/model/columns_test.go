package model_test

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"

	"github.com/passdesk/passdesk/internal/model"
)

func TestColumnVisibilityManager(t *testing.T) {
	cols := offerColumns()
	m := model.NewColumnVisibilityManager(cols)
	assert.Equal(t, []string{"title", "city", "price", "category", "status"}, m.VisibleProperties())

	m.SetColumns(hide(cols, "city", "price"))
	if diff := cmp.Diff([]string{"title", "category", "status"}, m.VisibleProperties()); diff != "" {
		t.Errorf("VisibleProperties() mismatch (-want +got):\n%s", diff)
	}
	assert.Len(t, m.VisibleColumns(), 3)
	assert.Len(t, m.Columns(), 5)
}

func TestColumnVisibilityManagerCopies(t *testing.T) {
	cols := offerColumns()
	m := model.NewColumnVisibilityManager(cols)

	cols[0].IsChecked = false
	assert.True(t, m.Columns()[0].IsChecked, "manager must own its columns")

	out := m.Columns()
	out[1].IsChecked = false
	assert.Contains(t, m.VisibleProperties(), "city")
}
