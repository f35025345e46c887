package entities

import (
	"fmt"

	"github.com/zyedidia/generic/list"
	"github.com/zyedidia/generic/mapset"

	"snaketerm/pkg/engine/input"
	"snaketerm/pkg/engine/world"
	"snaketerm/pkg/game/renderer"
)

// Glyphs and timing for the snake body
const (
	BodyGlyph     = '*'
	FlashGlyph    = 'X'
	FallbackGlyph = 'H'
	FlashFrames   = 15
)

// FlashBackground is the body background shown right after eating
var FlashBackground = renderer.GreenYellow

// Outcome describes what a single Update did
type Outcome int

const (
	OutcomeMoved   Outcome = iota // Advanced one cell
	OutcomeAte                    // Ate the food, advanced and grew by one
	OutcomeBlocked                // Next cell is a wall or the body; nothing changed
)

// Step is the result of one Update
type Step struct {
	Outcome Outcome
	Target  world.Point // Cell the head tried to enter
}

// Snake is the player-controlled path. The path runs tail (front) to head (back).
// Path cells are always distinct, so occupied mirrors the path exactly.
type Snake struct {
	path     *list.List[world.Point]
	occupied mapset.Set[world.Point]
	length   int

	Direction world.Point
	Score     int

	// Render state: flashes after eating
	BodyGlyph       rune
	Background      renderer.Color
	FlashFramesLeft int
}

// StartPath is the three-cell path every game begins with, tail first
func StartPath() []world.Point {
	return []world.Point{world.Pt(0, 0), world.Pt(1, 0), world.Pt(2, 0)}
}

// NewSnake creates a snake on the start path heading right
func NewSnake() *Snake {
	s := &Snake{}
	s.Reset()
	return s
}

// NewSnakeWithPath creates a snake on the given path (tail first) heading dir.
// The cells must be distinct and adjacent; it is used to set up specific positions.
// It panics on an empty path or a repeated cell, since the occupancy index
// would otherwise disagree with the path.
func NewSnakeWithPath(path []world.Point, dir world.Point) *Snake {
	if len(path) == 0 {
		panic("entities: snake path is empty")
	}
	s := NewSnake()
	s.setPath(path)
	if s.occupied.Size() != len(path) {
		panic(fmt.Sprintf("entities: snake path %v repeats a cell", path))
	}
	s.Direction = dir
	return s
}

// Reset puts the snake back to its initial state
func (s *Snake) Reset() {
	s.setPath(StartPath())
	s.Direction = world.Right
	s.Score = 0
	s.BodyGlyph = BodyGlyph
	s.Background = renderer.Black
	s.FlashFramesLeft = 0
}

func (s *Snake) setPath(path []world.Point) {
	s.path = list.New[world.Point]()
	s.occupied = mapset.New[world.Point]()
	s.length = 0
	for _, p := range path {
		s.pushHead(p)
	}
}

func (s *Snake) pushHead(p world.Point) {
	s.path.PushBack(p)
	s.occupied.Put(p)
	s.length++
}

func (s *Snake) popTail() {
	n := s.path.Front
	s.path.Remove(n)
	s.occupied.Remove(n.Value)
	s.length--
}

// Head returns the cell in the direction of travel
func (s *Snake) Head() world.Point {
	return s.path.Back.Value
}

// Tail returns the cell that vacates next
func (s *Snake) Tail() world.Point {
	return s.path.Front.Value
}

// Len returns the number of cells in the path
func (s *Snake) Len() int {
	return s.length
}

// Path returns a copy of the path, tail first
func (s *Snake) Path() []world.Point {
	out := make([]world.Point, 0, s.length)
	s.path.Front.Each(func(p world.Point) {
		out = append(out, p)
	})
	return out
}

// Occupies checks if any path cell is p
func (s *Snake) Occupies(p world.Point) bool {
	return s.occupied.Has(p)
}

// LegalMove is false only for an exact reversal of the current direction
func (s *Snake) LegalMove(d world.Point) bool {
	return d != world.Opposite(s.Direction)
}

// Steer applies a direction key if the turn is legal. Other keys and reversals are ignored.
func (s *Snake) Steer(k input.Key) {
	d, ok := KeyDirection(k)
	if ok && s.LegalMove(d) {
		s.Direction = d
	}
}

// CanEnter checks if the head may move to p this frame. p must be inside b and off
// the body. The tail cell counts as free unless the snake is growing, because the
// tail only vacates when no food was eaten.
func (s *Snake) CanEnter(p world.Point, b world.Bounds, growing bool) bool {
	if !b.Contains(p) {
		return false
	}
	if !s.occupied.Has(p) {
		return true
	}
	return !growing && p == s.Tail()
}

// Update runs one frame: steer from key, then advance, eat, and grow.
// A blocked move leaves the snake and food untouched; the caller ends the game.
func (s *Snake) Update(key input.Key, food *Food, b world.Bounds, r world.Rand) Step {
	s.Steer(key)

	target := s.Head().Add(s.Direction)
	growing := s.Head() == food.Position

	if !s.CanEnter(target, b, growing) {
		return Step{Outcome: OutcomeBlocked, Target: target}
	}

	if growing {
		s.Score++
		s.startFlash()
	} else {
		s.tickFlash()
	}

	// The tail leaves before the head arrives so a head chasing its tail stays distinct
	if !growing {
		s.popTail()
	}
	s.pushHead(target)

	if growing {
		food.Respawn(s, b, r)
		return Step{Outcome: OutcomeAte, Target: target}
	}
	return Step{Outcome: OutcomeMoved, Target: target}
}

func (s *Snake) startFlash() {
	s.Background = FlashBackground
	s.BodyGlyph = FlashGlyph
	s.FlashFramesLeft = FlashFrames
}

func (s *Snake) tickFlash() {
	if s.FlashFramesLeft == 0 {
		return
	}
	s.FlashFramesLeft--
	if s.FlashFramesLeft == 0 {
		s.BodyGlyph = BodyGlyph
		s.Background = renderer.Black
	}
}

// HeadGlyph returns the arrow-like glyph for the current direction
func (s *Snake) HeadGlyph() rune {
	switch s.Direction {
	case world.Left:
		return '<'
	case world.Right:
		return '>'
	case world.Up:
		return '^'
	case world.Down:
		return 'v'
	default:
		return FallbackGlyph
	}
}

// Render draws the body with the current flash state and the head with its direction glyph
func (s *Snake) Render(surf renderer.Surface) {
	head := s.path.Back
	for n := s.path.Front; n != nil && n != head; n = n.Next {
		surf.SetCell(n.Value.X, n.Value.Y, renderer.White, s.Background, s.BodyGlyph)
	}
	surf.SetCell(head.Value.X, head.Value.Y, renderer.White, s.Background, s.HeadGlyph())
}

// KeyDirection maps an arrow key to its unit direction
func KeyDirection(k input.Key) (world.Point, bool) {
	switch k {
	case input.KeyLeft:
		return world.Left, true
	case input.KeyRight:
		return world.Right, true
	case input.KeyUp:
		return world.Up, true
	case input.KeyDown:
		return world.Down, true
	default:
		return world.Point{}, false
	}
}
