// Package state holds the explicit game state passed to the frame controller.
package state

import (
	"snaketerm/pkg/engine/world"
	"snaketerm/pkg/game/entities"
)

// Mode is the top-level state machine position
type Mode int

// Game modes
const (
	ModeMenu Mode = iota
	ModePlaying
	ModeEnd
)

// String returns the mode name
func (m Mode) String() string {
	switch m {
	case ModeMenu:
		return "Menu"
	case ModePlaying:
		return "Playing"
	case ModeEnd:
		return "End"
	default:
		return "Unknown"
	}
}

// Listener receives game events. Implementations must not block the frame.
type Listener interface {
	OnModeChange(from, to Mode)
	OnEat(score int)
	OnCrash(score int, at world.Point)
}

// Game represents the complete state of one snake session.
// The controller owns it; nothing else mutates it.
type Game struct {
	Mode   Mode
	Snake  *entities.Snake
	Food   *entities.Food
	Bounds world.Bounds
	Rand   world.Rand

	// Frame counts frames ticked since the session started
	Frame uint64

	listeners []Listener
}

// NewGame creates a game in the menu with a fresh snake and randomly placed food
func NewGame(b world.Bounds, r world.Rand) *Game {
	return &Game{
		Mode:   ModeMenu,
		Snake:  entities.NewSnake(),
		Food:   entities.NewFood(b, r),
		Bounds: b,
		Rand:   r,
	}
}

// AddListener registers l for game events
func (g *Game) AddListener(l Listener) {
	g.listeners = append(g.listeners, l)
}

// SetMode switches mode and notifies listeners when it changes
func (g *Game) SetMode(m Mode) {
	if g.Mode == m {
		return
	}
	from := g.Mode
	g.Mode = m
	for _, l := range g.listeners {
		l.OnModeChange(from, m)
	}
}

// Restart resets the snake for a new round. Food stays where it is.
func (g *Game) Restart() {
	g.Snake.Reset()
}

// Score returns the current snake score
func (g *Game) Score() int {
	return g.Snake.Score
}

// NotifyEat tells listeners the snake just ate
func (g *Game) NotifyEat() {
	for _, l := range g.listeners {
		l.OnEat(g.Snake.Score)
	}
}

// NotifyCrash tells listeners the snake was blocked at cell at
func (g *Game) NotifyCrash(at world.Point) {
	for _, l := range g.listeners {
		l.OnCrash(g.Snake.Score, at)
	}
}
