package constant

import "image/color"

// Colors shared by all presenters
var (
	ColorPlayer  = color.RGBA{R: 0, G: 0, B: 255, A: 255}
	ColorEnemy   = color.RGBA{R: 255, G: 0, B: 0, A: 255}
	ColorGoal    = color.NRGBA{R: 255, G: 255, B: 255, A: 128} // translucent white, not premultiplied
	ColorField   = color.RGBA{R: 0, G: 255, B: 0, A: 255}
	ColorMessage = color.RGBA{R: 255, G: 0, B: 0, A: 255}
)

// End message anchor in field units (baseline-left)
const (
	MessageX = 30.0
	MessageY = FieldHeight / 2
)

// Terminal presenter layout
const (
	// StatusBarRows is the number of rows reserved under the field
	StatusBarRows = 1

	// CellAspect is the height/width ratio of a terminal cell
	CellAspect = 2.0
)

// Window presenter layout
const (
	WindowTitle = "Robotic Soccer"

	// MessageScale enlarges the 7x13 bitmap font to roughly 50px
	MessageScale = 4.0
)
