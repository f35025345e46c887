package gameplay

import (
	"log"

	"snaketerm/pkg/engine/world"
	"snaketerm/pkg/game/state"
)

// LogListener writes game events to the standard logger
type LogListener struct{}

func (LogListener) OnModeChange(from, to state.Mode) {
	log.Printf("mode %s -> %s", from, to)
}

func (LogListener) OnEat(score int) {
	log.Printf("food eaten, score %d", score)
}

func (LogListener) OnCrash(score int, at world.Point) {
	log.Printf("blocked at %s, final score %d", at, score)
}
