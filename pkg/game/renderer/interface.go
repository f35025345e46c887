// Package renderer defines the display/input surface the game draws on
// and the frame drivers that call into the game once per frame.
package renderer

import (
	"errors"

	"snaketerm/pkg/engine/input"
)

// ErrBoardTooLarge is returned when a surface cannot fit the requested board.
var ErrBoardTooLarge = errors.New("board does not fit the display")

// Surface is the narrow display/input contract the game core draws through.
// Implementations include the tcell TUI, a raw ANSI terminal, and an Ebiten window.
type Surface interface {
	// Clear blanks every cell of the board
	Clear()

	// SetCell draws one glyph at (x,y) with the given colors.
	// Cells outside the board are ignored.
	SetCell(x, y int, fg, bg Color, glyph rune)

	// PrintCentered writes text horizontally centered on the given board row
	PrintCentered(row int, text string)

	// PendingKey returns at most one key pressed since the last call.
	// It never blocks.
	PendingKey() (input.Key, bool)

	// RequestQuit asks the driver to stop after the current frame
	RequestQuit()
}

// FrameFunc is invoked by a driver once per frame.
type FrameFunc func(s Surface)

// Driver owns a surface and the loop that paces frames.
type Driver interface {
	// Run calls frame at the configured rate until RequestQuit is called
	// or the underlying display goes away.
	Run(frame FrameFunc) error

	// Close releases the display. It is safe to call more than once.
	Close() error
}
