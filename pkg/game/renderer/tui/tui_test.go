package tui

import (
	"testing"

	"github.com/gdamore/tcell/v2"

	"snaketerm/pkg/engine/input"
	"snaketerm/pkg/game/renderer"
)

func newSimSurface(t *testing.T, w, h int) (*Surface, tcell.SimulationScreen) {
	t.Helper()
	screen := tcell.NewSimulationScreen("UTF-8")
	if err := screen.Init(); err != nil {
		t.Fatalf("Init() error = %v", err)
	}
	screen.SetSize(w, h)
	s := NewWithScreen(screen, w, h, 240, input.NewBindings(true))
	t.Cleanup(func() { s.Close() })
	return s, screen
}

func runeAt(t *testing.T, screen tcell.SimulationScreen, x, y int) (rune, tcell.Style) {
	t.Helper()
	cells, w, _ := screen.GetContents()
	c := cells[y*w+x]
	if len(c.Runes) == 0 {
		return ' ', c.Style
	}
	return c.Runes[0], c.Style
}

func TestSetCellDrawsInsideBoard(t *testing.T) {
	s, screen := newSimSurface(t, 20, 10)

	s.SetCell(3, 4, renderer.White, renderer.GreenYellow, 'X')
	s.SetCell(20, 0, renderer.White, renderer.Black, '!')
	screen.Show()

	r, style := runeAt(t, screen, 3, 4)
	if r != 'X' {
		t.Errorf("rune at (3,4) = %q, want 'X'", r)
	}
	_, bg, _ := style.Decompose()
	if want := tcell.NewRGBColor(173, 255, 47); bg != want {
		t.Errorf("background = %v, want %v", bg, want)
	}
}

func TestPrintCentered(t *testing.T) {
	s, screen := newSimSurface(t, 20, 10)

	s.PrintCentered(5, "Main menu")
	screen.Show()

	// (20 - 9) / 2 = 5
	for i, want := range "Main menu" {
		if r, _ := runeAt(t, screen, 5+i, 5); r != want {
			t.Errorf("rune at (%d,5) = %q, want %q", 5+i, r, want)
		}
	}
}

func TestHandleEventMapsKeys(t *testing.T) {
	s, _ := newSimSurface(t, 20, 10)

	tests := []struct {
		ev   *tcell.EventKey
		want input.Key
	}{
		{tcell.NewEventKey(tcell.KeyLeft, 0, tcell.ModNone), input.KeyLeft},
		{tcell.NewEventKey(tcell.KeyRune, 'P', tcell.ModNone), input.KeyPlay},
		{tcell.NewEventKey(tcell.KeyRune, 'j', tcell.ModNone), input.KeyDown},
		{tcell.NewEventKey(tcell.KeyEscape, 0, tcell.ModNone), input.KeyQuit},
		{tcell.NewEventKey(tcell.KeyCtrlC, 0, tcell.ModCtrl), input.KeyQuit},
		{tcell.NewEventKey(tcell.KeyRune, 'z', tcell.ModNone), input.KeyOther},
	}
	for i, tt := range tests {
		s.HandleEvent(tt.ev)
		if k, ok := s.PendingKey(); !ok || k != tt.want {
			t.Errorf("key %d = %v, %v, want %v", i, k, ok, tt.want)
		}
	}
}

func TestRunReadsInjectedKeys(t *testing.T) {
	s, screen := newSimSurface(t, 20, 10)
	screen.InjectKey(tcell.KeyRune, 'q', tcell.ModNone)

	frames := 0
	var got input.Key
	err := s.Run(func(surf renderer.Surface) {
		frames++
		surf.Clear()
		surf.SetCell(0, 0, renderer.White, renderer.Black, 'F')
		if k, ok := surf.PendingKey(); ok {
			got = k
		}
		if got != input.KeyNone || frames >= 500 {
			surf.RequestQuit()
		}
	})
	if err != nil {
		t.Fatalf("Run() error = %v", err)
	}
	if got != input.KeyQuit {
		t.Errorf("key read during Run = %v, want Quit", got)
	}
	if r, _ := runeAt(t, screen, 0, 0); r != 'F' {
		t.Errorf("rune at (0,0) = %q, want 'F'", r)
	}
}
