package ebiten

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"snaketerm/pkg/game/renderer"
)

type cell struct {
	fg, bg renderer.Color
	glyph  rune
}

func blankCell() cell {
	return cell{fg: renderer.White, bg: renderer.Black, glyph: ' '}
}

func (s *Surface) Clear() {
	for i := range s.cells {
		s.cells[i] = blankCell()
	}
}

func (s *Surface) SetCell(x, y int, fg, bg renderer.Color, glyph rune) {
	if x < 0 || x >= s.width || y < 0 || y >= s.height {
		return
	}
	s.cells[y*s.width+x] = cell{fg: fg, bg: bg, glyph: glyph}
}

func (s *Surface) PrintCentered(row int, text string) {
	renderer.DrawText(s, renderer.CenterColumn(s.width, text), row, renderer.White, renderer.Black, text)
}

// glyphAt returns the glyph stored at (x,y), or 0 outside the board
func (s *Surface) glyphAt(x, y int) rune {
	if x < 0 || x >= s.width || y < 0 || y >= s.height {
		return 0
	}
	return s.cells[y*s.width+x].glyph
}

// drawCell fills the cell background and draws its glyph centered in the cell
func (s *Surface) drawCell(screen *ebiten.Image, x, y int, c cell) {
	px := float32(x * cellWidth)
	py := float32(y * cellHeight)
	if c.bg != renderer.Black {
		vector.DrawFilledRect(screen, px, py, cellWidth, cellHeight, c.bg.RGBA(), false)
	}
	if c.glyph == ' ' || s.face == nil {
		return
	}

	op := &text.DrawOptions{}
	op.GeoM.Translate(float64(px)+cellWidth/2, float64(py)+cellHeight/2)
	op.ColorScale.ScaleWithColor(c.fg.RGBA())
	op.PrimaryAlign = text.AlignCenter
	op.SecondaryAlign = text.AlignCenter
	text.Draw(screen, string(c.glyph), s.face, op)
}
