package ebiten

import (
	"strings"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"snaketerm/pkg/engine/input"
)

// keyCode names an Ebiten key the way the input bindings expect
func keyCode(k ebiten.Key, ctrl bool) string {
	switch k {
	case ebiten.KeyArrowLeft:
		return "arrow_left"
	case ebiten.KeyArrowRight:
		return "arrow_right"
	case ebiten.KeyArrowUp:
		return "arrow_up"
	case ebiten.KeyArrowDown:
		return "arrow_down"
	case ebiten.KeyEscape:
		return "escape"
	case ebiten.KeyEnter, ebiten.KeyNumpadEnter:
		return "enter"
	}
	name := strings.ToLower(k.String())
	if ctrl && name == "c" {
		return "ctrl_c"
	}
	return name
}

// pollKeys queues every key pressed since the previous tick
func (s *Surface) pollKeys() {
	ctrl := ebiten.IsKeyPressed(ebiten.KeyControl)
	for _, k := range inpututil.AppendJustPressedKeys(nil) {
		s.pushCode(keyCode(k, ctrl))
	}
}

func (s *Surface) pushCode(code string) {
	s.pending.Push(s.bindings.Map(input.RawInput{Device: input.DeviceKeyboard, Code: code}))
}

func (s *Surface) PendingKey() (input.Key, bool) {
	return s.pending.Pop()
}

func (s *Surface) RequestQuit() {
	s.quit.Store(true)
}
