// Package ansi draws the board with plain ANSI escape codes on a raw terminal.
package ansi

import (
	"io"
	"os"
	"strings"
	"sync"
	"sync/atomic"
	"time"

	"github.com/gookit/color"

	"snaketerm/pkg/engine/input"
	"snaketerm/pkg/engine/terminal"
	"snaketerm/pkg/game/renderer"
)

// pendingLimit caps keys buffered between frames; older presses are dropped
const pendingLimit = 2

type cell struct {
	fg, bg renderer.Color
	glyph  rune
}

type colorPair struct {
	fg, bg renderer.Color
}

// Surface keeps a cell buffer and repaints the whole board every frame.
type Surface struct {
	width, height int
	fps           int
	cells         []cell

	in  io.Reader
	out io.Writer
	raw *terminal.Raw

	bindings *input.Bindings
	pending  *input.Pending
	quit     atomic.Bool

	styles    map[colorPair]*color.RGBStyle
	closeOnce sync.Once
}

// New takes over the terminal in raw mode and returns a surface of width x height cells
func New(width, height, fps int, bindings *input.Bindings) (*Surface, error) {
	raw, err := terminal.EnterRaw(os.Stdout)
	if err != nil {
		return nil, err
	}
	color.ForceColor()

	s := NewWithIO(width, height, fps, bindings, os.Stdin, os.Stdout)
	s.raw = raw
	return s, nil
}

// NewWithIO creates a surface reading keys from in and painting to out.
// The terminal mode is left alone.
func NewWithIO(width, height, fps int, bindings *input.Bindings, in io.Reader, out io.Writer) *Surface {
	s := &Surface{
		width:    width,
		height:   height,
		fps:      fps,
		cells:    make([]cell, width*height),
		in:       in,
		out:      out,
		bindings: bindings,
		pending:  input.NewPending(pendingLimit),
		styles:   make(map[colorPair]*color.RGBStyle),
	}
	s.Clear()
	return s
}

// Clear blanks the buffer to white on black
func (s *Surface) Clear() {
	for i := range s.cells {
		s.cells[i] = cell{fg: renderer.White, bg: renderer.Black, glyph: ' '}
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

func (s *Surface) PendingKey() (input.Key, bool) {
	return s.pending.Pop()
}

func (s *Surface) RequestQuit() {
	s.quit.Store(true)
}

func (s *Surface) style(fg, bg renderer.Color) *color.RGBStyle {
	pair := colorPair{fg: fg, bg: bg}
	st, ok := s.styles[pair]
	if !ok {
		st = color.NewRGBStyle(color.RGB(fg.R, fg.G, fg.B), color.RGB(bg.R, bg.G, bg.B, true))
		s.styles[pair] = st
	}
	return st
}

// Frame renders the buffer as text, one styled run per color change
func (s *Surface) Frame() string {
	var sb strings.Builder
	var run strings.Builder

	for y := 0; y < s.height; y++ {
		row := s.cells[y*s.width : (y+1)*s.width]
		start := 0
		for x := 1; x <= len(row); x++ {
			if x < len(row) && row[x].fg == row[start].fg && row[x].bg == row[start].bg {
				continue
			}
			run.Reset()
			for _, c := range row[start:x] {
				run.WriteRune(c.glyph)
			}
			sb.WriteString(s.style(row[start].fg, row[start].bg).Sprint(run.String()))
			start = x
		}
		if y < s.height-1 {
			sb.WriteString("\r\n")
		}
	}
	return sb.String()
}

// Flush paints the buffer to the output
func (s *Surface) Flush() error {
	if s.raw != nil {
		if err := s.raw.Home(); err != nil {
			return err
		}
	}
	_, err := io.WriteString(s.out, s.Frame())
	return err
}

// HandleBytes decodes raw terminal input and queues the bound keys
func (s *Surface) HandleBytes(buf []byte) {
	for _, code := range input.DecodeTerminal(buf) {
		s.pending.Push(s.bindings.Map(input.RawInput{Device: input.DeviceTerminal, Code: code}))
	}
}

func (s *Surface) readInput() {
	buf := make([]byte, 64)
	for {
		n, err := s.in.Read(buf)
		if n > 0 {
			s.HandleBytes(buf[:n])
		}
		if err != nil {
			return
		}
	}
}

// Run calls frame fps times per second until RequestQuit
func (s *Surface) Run(frame renderer.FrameFunc) error {
	go s.readInput()

	ticker := time.NewTicker(time.Second / time.Duration(s.fps))
	defer ticker.Stop()

	for range ticker.C {
		frame(s)
		if err := s.Flush(); err != nil {
			return err
		}
		if s.quit.Load() {
			return nil
		}
	}
	return nil
}

// Close restores the terminal
func (s *Surface) Close() error {
	var err error
	s.closeOnce.Do(func() {
		if s.raw != nil {
			err = s.raw.Restore()
		}
	})
	return err
}
