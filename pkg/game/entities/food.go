// Package entities contains the things that live on the board: the snake and its food.
package entities

import (
	"snaketerm/pkg/engine/world"
	"snaketerm/pkg/game/renderer"
)

// FoodGlyph is drawn at the food position
const FoodGlyph = 'F'

// Occupier reports which cells are taken. Food placement only reads it.
type Occupier interface {
	Occupies(p world.Point) bool
	Len() int
}

// Food is the single item the snake eats. It is relocated, never destroyed.
type Food struct {
	Position world.Point
}

// NewFood creates food at a uniformly random cell. The snake is not consulted.
func NewFood(b world.Bounds, r world.Rand) *Food {
	return &Food{Position: b.RandomPoint(r)}
}

// NewFoodAt creates food at a fixed cell
func NewFoodAt(p world.Point) *Food {
	return &Food{Position: p}
}

// Render draws the food glyph, white on black
func (f *Food) Render(s renderer.Surface) {
	s.SetCell(f.Position.X, f.Position.Y, renderer.White, renderer.Black, FoodGlyph)
}

// Respawn samples random cells until one is free of o and moves the food there.
// If o already covers the whole board there is no free cell; the food stays put and
// Respawn returns false.
func (f *Food) Respawn(o Occupier, b world.Bounds, r world.Rand) bool {
	if o.Len() >= b.Area() {
		return false
	}

	for {
		p := b.RandomPoint(r)
		if !o.Occupies(p) {
			f.Position = p
			return true
		}
	}
}
