// Package gameplay runs the per-frame game loop: menus, movement, eating and crashing.
package gameplay

import (
	"time"

	"golang.org/x/exp/rand"

	"snaketerm/pkg/engine/world"
	"snaketerm/pkg/game/state"
)

// NewRand returns a seeded source for food placement.
// A zero seed picks one from the clock.
func NewRand(seed uint64) world.Rand {
	if seed == 0 {
		seed = uint64(time.Now().UnixNano())
	}
	return rand.New(rand.NewSource(seed))
}

// BuildGame creates a new game on a board of the given size
func BuildGame(b world.Bounds, seed uint64) *state.Game {
	return state.NewGame(b, NewRand(seed))
}
