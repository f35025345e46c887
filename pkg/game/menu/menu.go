// Package menu lays out the static text screens shown outside of play.
package menu

import (
	"snaketerm/pkg/engine/input"
	"snaketerm/pkg/game/renderer"
)

// Action is what a screen asks the controller to do after a key press.
type Action int

const (
	ActionNone Action = iota
	ActionPlay
	ActionQuit
)

// String returns the action name
func (a Action) String() string {
	switch a {
	case ActionPlay:
		return "play"
	case ActionQuit:
		return "quit"
	default:
		return "none"
	}
}

// Line is one centered row of text.
type Line struct {
	Row  int
	Text string
}

// Screen is a page of centered text lines.
type Screen struct {
	Lines []Line
}

// Render draws every line of the screen centered on its row
func (s Screen) Render(surf renderer.Surface) {
	for _, l := range s.Lines {
		surf.PrintCentered(l.Row, l.Text)
	}
}

// Text returns the text on row, or "" when the row is empty
func (s Screen) Text(row int) string {
	for _, l := range s.Lines {
		if l.Row == row {
			return l.Text
		}
	}
	return ""
}

// ActionForKey maps the play and quit keys every screen listens for.
// Direction keys and anything else are ignored.
func ActionForKey(k input.Key) Action {
	switch k {
	case input.KeyPlay:
		return ActionPlay
	case input.KeyQuit:
		return ActionQuit
	default:
		return ActionNone
	}
}
