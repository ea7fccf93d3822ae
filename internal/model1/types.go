package model1

import "github.com/derailed/tcell/v2"

// NAValue renders missing fields.
const NAValue = "n/a"

// Fields maps column properties to rendered text.
type Fields map[string]string

// Get returns the rendered field or NAValue.
func (f Fields) Get(property string) string {
	if v, ok := f[property]; ok && v != "" {
		return v
	}
	return NAValue
}

// ColorerFunc represents a row colorer
type ColorerFunc func(selected, disabled bool) tcell.Color
