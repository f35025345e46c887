package ebiten

import "image/color"

// Cell metrics in pixels
const (
	cellWidth    = 10
	cellHeight   = 16
	baseFontSize = 14.0
)

// pendingLimit caps keys buffered between frames; older presses are dropped
const pendingLimit = 2

// colorWindow fills the window behind the board
var colorWindow = color.RGBA{0, 0, 0, 255}
