package model1

import "github.com/derailed/tcell/v2"

var (
	// SelectedColor row selected color
	SelectedColor tcell.Color = tcell.ColorAqua

	// DisabledColor row with a locked checkbox
	DisabledColor tcell.Color = tcell.ColorGray

	// StdColor row default color
	StdColor tcell.Color = tcell.ColorWhite
)

// DefaultColorer sets the default table row colors
func DefaultColorer(selected, disabled bool) tcell.Color {
	switch {
	case disabled:
		return DisabledColor
	case selected:
		return SelectedColor
	default:
		return StdColor
	}
}
