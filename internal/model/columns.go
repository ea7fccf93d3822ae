package model

import "github.com/passdesk/passdesk/internal/model1"

// ColumnVisibilityManager holds the declared columns and derives the visible projection.
// It is not safe for concurrent use.
type ColumnVisibilityManager struct {
	columns    model1.Columns
	visible    model1.Columns
	properties []string
}

// NewColumnVisibilityManager returns a manager for the given columns.
func NewColumnVisibilityManager(cols model1.Columns) *ColumnVisibilityManager {
	var m ColumnVisibilityManager
	m.SetColumns(cols)
	return &m
}

// SetColumns replaces the full column set.
func (m *ColumnVisibilityManager) SetColumns(cols model1.Columns) {
	m.columns = cols.Clone()
	m.visible = m.columns.Visible()
	m.properties = m.visible.Properties()
}

// Columns returns a deep copy of the declared columns.
func (m *ColumnVisibilityManager) Columns() model1.Columns {
	return m.columns.Clone()
}

// VisibleColumns returns the checked columns in declaration order.
func (m *ColumnVisibilityManager) VisibleColumns() model1.Columns {
	return m.visible.Clone()
}

// VisibleProperties returns the visible column properties.
func (m *ColumnVisibilityManager) VisibleProperties() []string {
	if m.properties == nil {
		return nil
	}
	pp := make([]string, len(m.properties))
	copy(pp, m.properties)
	return pp
}
