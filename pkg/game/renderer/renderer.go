package renderer

import (
	"fmt"
	"image/color"
	"unicode/utf8"

	gcolor "github.com/gookit/color"
)

// Color is a 24-bit RGB color. Each surface converts it to its own color model.
type Color struct {
	R, G, B uint8
}

// Palette used by the game. The names follow the classic web color names.
var (
	White       = Color{255, 255, 255}
	Black       = Color{0, 0, 0}
	GreenYellow = Color{173, 255, 47}
)

// RGBA converts the color for image-based surfaces.
func (c Color) RGBA() color.RGBA {
	return color.RGBA{R: c.R, G: c.G, B: c.B, A: 255}
}

// String formats the color as a hex triplet.
func (c Color) String() string {
	return fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B)
}

// Styles for plain terminal output outside of a surface (e.g. after exit).
var (
	ColorScore  = gcolor.Style{gcolor.FgGreen, gcolor.OpBold}
	ColorDenied = gcolor.Style{gcolor.FgRed, gcolor.OpBold}
)

// CenterColumn returns the x at which text starts when centered on a board of the given width.
func CenterColumn(width int, text string) int {
	x := (width - utf8.RuneCountInString(text)) / 2
	if x < 0 {
		return 0
	}
	return x
}

// DrawText writes text left-to-right starting at (x,y) in the given colors.
func DrawText(s Surface, x, y int, fg, bg Color, text string) {
	for _, r := range text {
		s.SetCell(x, y, fg, bg, r)
		x++
	}
}
