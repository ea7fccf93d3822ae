package model1

import (
	"fmt"
	"reflect"
)

// DataType hints how a column renders.
type DataType string

const (
	DataText   DataType = "text"
	DataNumber DataType = "number"
	DataDate   DataType = "date"
	DataStatus DataType = "status"
)

// TableColumn represents a declared table column.
// Property is the column identity.
type TableColumn struct {
	Label     string   `json:"label" yaml:"label"`
	Property  string   `json:"property" yaml:"property"`
	IsChecked bool     `json:"isChecked" yaml:"isChecked"`
	IsDefault bool     `json:"isDefault" yaml:"isDefault"`
	DataType  DataType `json:"dataType" yaml:"dataType"`
	IsFixed   bool     `json:"isFixed" yaml:"isFixed"`
}

func (c TableColumn) String() string {
	return fmt.Sprintf("%s [%s::%t::%t]", c.Property, c.DataType, c.IsChecked, c.IsFixed)
}

// FilterKey returns the filter key derived from the column property.
func (c TableColumn) FilterKey() string {
	return FilterKey(c.Property)
}

// Columns represents an ordered set of columns.
type Columns []TableColumn

// Clone returns a deep copy.
func (c Columns) Clone() Columns {
	if c == nil {
		return nil
	}
	cc := make(Columns, len(c))
	copy(cc, c)
	return cc
}

// Diff returns true if the columns differ.
func (c Columns) Diff(o Columns) bool {
	if len(c) != len(o) {
		return true
	}
	return !reflect.DeepEqual(c, o)
}

// Visible returns the checked columns in declaration order.
func (c Columns) Visible() Columns {
	cc := make(Columns, 0, len(c))
	for _, col := range c {
		if col.IsChecked {
			cc = append(cc, col)
		}
	}
	return cc
}

// Properties returns the column properties in order.
func (c Columns) Properties() []string {
	if len(c) == 0 {
		return nil
	}
	pp := make([]string, 0, len(c))
	for _, col := range c {
		pp = append(pp, col.Property)
	}
	return pp
}

// IndexOf returns the index of the first column with the given property.
func (c Columns) IndexOf(property string) (int, bool) {
	for i, col := range c {
		if col.Property == property {
			return i, true
		}
	}
	return -1, false
}

// Defaults returns a copy where only default and fixed columns are checked.
func (c Columns) Defaults() Columns {
	cc := c.Clone()
	for i := range cc {
		cc[i].IsChecked = cc[i].IsDefault || cc[i].IsFixed
	}
	return cc
}
