// Package ebiten draws the board in a desktop window with Ebiten.
package ebiten

import (
	"errors"
	"log"
	"sync/atomic"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"

	"snaketerm/pkg/engine/input"
	"snaketerm/pkg/game/renderer"
)

// Surface is a fixed character grid drawn into an Ebiten window.
// Update runs one game frame per tick; Draw paints the last finished frame.
type Surface struct {
	width, height int
	fps           int
	title         string
	cells         []cell

	bindings *input.Bindings
	pending  *input.Pending
	quit     atomic.Bool

	frame              renderer.FrameFunc
	face               *text.GoTextFace
	windowOpenedLogged bool
}

// New creates a width x height surface that ticks fps times per second
func New(width, height, fps int, title string, bindings *input.Bindings) *Surface {
	s := &Surface{
		width:    width,
		height:   height,
		fps:      fps,
		title:    title,
		cells:    make([]cell, width*height),
		bindings: bindings,
		pending:  input.NewPending(pendingLimit),
	}
	s.Clear()
	return s
}

// Run opens the window and blocks until RequestQuit or the window is closed
func (s *Surface) Run(frame renderer.FrameFunc) error {
	face, err := loadMonoFace(baseFontSize)
	if err != nil {
		return err
	}
	s.face = face
	s.frame = frame

	ebiten.SetWindowSize(s.width*cellWidth, s.height*cellHeight)
	ebiten.SetWindowTitle(s.title)
	ebiten.SetTPS(s.fps)

	if err := ebiten.RunGame(s); err != nil && !errors.Is(err, ebiten.Termination) {
		return err
	}
	return nil
}

// Close is a no-op; the window closes when Run returns
func (s *Surface) Close() error {
	return nil
}

// Update polls the keyboard and runs one frame (Ebiten interface)
func (s *Surface) Update() error {
	if !s.windowOpenedLogged {
		s.windowOpenedLogged = true
		w, h := ebiten.WindowSize()
		log.Printf("Main window opened successfully (%dx%d)", w, h)
	}

	s.pollKeys()
	return s.step()
}

// step runs one frame and reports ebiten.Termination once quit is requested
func (s *Surface) step() error {
	if s.frame != nil {
		s.frame(s)
	}
	if s.quit.Load() {
		return ebiten.Termination
	}
	return nil
}

// Draw paints the cell buffer (Ebiten interface)
func (s *Surface) Draw(screen *ebiten.Image) {
	screen.Fill(colorWindow)
	for y := 0; y < s.height; y++ {
		for x := 0; x < s.width; x++ {
			s.drawCell(screen, x, y, s.cells[y*s.width+x])
		}
	}
}

// Layout returns the board size in pixels (Ebiten interface)
func (s *Surface) Layout(outsideWidth, outsideHeight int) (int, int) {
	return s.width * cellWidth, s.height * cellHeight
}
