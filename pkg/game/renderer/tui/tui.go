// Package tui draws the board on a tcell screen.
package tui

import (
	"sync"
	"sync/atomic"
	"time"

	"github.com/gdamore/tcell/v2"

	"snaketerm/pkg/engine/input"
	"snaketerm/pkg/game/renderer"
)

// pendingLimit caps keys buffered between frames; older presses are dropped
const pendingLimit = 2

// Surface is a tcell screen limited to a width x height board.
type Surface struct {
	screen        tcell.Screen
	width, height int
	fps           int

	bindings *input.Bindings
	pending  *input.Pending
	quit     atomic.Bool

	closeOnce sync.Once
}

// New opens the terminal screen
func New(width, height, fps int, title string, bindings *input.Bindings) (*Surface, error) {
	screen, err := tcell.NewScreen()
	if err != nil {
		return nil, err
	}
	if err := screen.Init(); err != nil {
		return nil, err
	}
	screen.SetTitle(title)
	return NewWithScreen(screen, width, height, fps, bindings), nil
}

// NewWithScreen wraps an initialized screen, such as a tcell simulation screen
func NewWithScreen(screen tcell.Screen, width, height, fps int, bindings *input.Bindings) *Surface {
	screen.HideCursor()
	screen.SetStyle(styleFor(renderer.White, renderer.Black))
	screen.Clear()
	return &Surface{
		screen:   screen,
		width:    width,
		height:   height,
		fps:      fps,
		bindings: bindings,
		pending:  input.NewPending(pendingLimit),
	}
}

func tcellColor(c renderer.Color) tcell.Color {
	return tcell.NewRGBColor(int32(c.R), int32(c.G), int32(c.B))
}

func styleFor(fg, bg renderer.Color) tcell.Style {
	return tcell.StyleDefault.Foreground(tcellColor(fg)).Background(tcellColor(bg))
}

func (s *Surface) Clear() {
	s.screen.Clear()
}

func (s *Surface) SetCell(x, y int, fg, bg renderer.Color, glyph rune) {
	if x < 0 || x >= s.width || y < 0 || y >= s.height {
		return
	}
	s.screen.SetContent(x, y, glyph, nil, styleFor(fg, bg))
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

// keyCode names a tcell key event the way the input bindings expect
func keyCode(ev *tcell.EventKey) string {
	switch ev.Key() {
	case tcell.KeyLeft:
		return "arrow_left"
	case tcell.KeyRight:
		return "arrow_right"
	case tcell.KeyUp:
		return "arrow_up"
	case tcell.KeyDown:
		return "arrow_down"
	case tcell.KeyEscape:
		return "escape"
	case tcell.KeyCtrlC:
		return "ctrl_c"
	case tcell.KeyEnter:
		return "enter"
	case tcell.KeyRune:
		return string(ev.Rune())
	default:
		return ev.Name()
	}
}

// HandleEvent queues key presses and repaints after a resize
func (s *Surface) HandleEvent(ev tcell.Event) {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		raw := input.RawInput{Device: input.DeviceKeyboard, Code: keyCode(ev)}
		s.pending.Push(s.bindings.Map(raw))
	case *tcell.EventResize:
		s.screen.Sync()
	}
}

// Run calls frame fps times per second until RequestQuit or the screen closes
func (s *Surface) Run(frame renderer.FrameFunc) error {
	ticker := time.NewTicker(time.Second / time.Duration(s.fps))
	defer ticker.Stop()

	done := make(chan struct{})
	defer close(done)

	events := make(chan tcell.Event, pendingLimit)
	go func() {
		defer close(events)
		for {
			ev := s.screen.PollEvent()
			if ev == nil {
				return
			}
			select {
			case events <- ev:
			case <-done:
				return
			}
		}
	}()

	for {
		select {
		case ev, ok := <-events:
			if !ok {
				return nil
			}
			s.HandleEvent(ev)

		case <-ticker.C:
			frame(s)
			s.screen.Show()
			if s.quit.Load() {
				return nil
			}
		}
	}
}

// Close hands the terminal back
func (s *Surface) Close() error {
	s.closeOnce.Do(s.screen.Fini)
	return nil
}
