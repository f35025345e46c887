package gameplay

import (
	"snaketerm/pkg/engine/input"
	"snaketerm/pkg/game/entities"
	"snaketerm/pkg/game/locale"
	"snaketerm/pkg/game/menu"
	"snaketerm/pkg/game/renderer"
	"snaketerm/pkg/game/state"
)

// Controller advances a game by one frame per Tick.
type Controller struct {
	game *state.Game
	text *locale.Catalog
}

// NewController creates a controller driving g with UI text from c
func NewController(g *state.Game, c *locale.Catalog) *Controller {
	return &Controller{game: g, text: c}
}

// Game returns the game being driven
func (c *Controller) Game() *state.Game {
	return c.game
}

// Tick clears the surface, reads at most one key and runs the active mode
func (c *Controller) Tick(s renderer.Surface) {
	g := c.game
	g.Frame++
	s.Clear()

	key, ok := s.PendingKey()
	if !ok {
		key = input.KeyNone
	}

	switch g.Mode {
	case state.ModeMenu:
		c.tickMenu(s, key)
	case state.ModePlaying:
		c.tickPlaying(s, key)
	case state.ModeEnd:
		c.tickEnd(s, key)
	}
}

func (c *Controller) tickMenu(s renderer.Surface, key input.Key) {
	menu.MainMenu(c.text).Render(s)

	switch menu.ActionForKey(key) {
	case menu.ActionPlay:
		c.game.SetMode(state.ModePlaying)
	case menu.ActionQuit:
		s.RequestQuit()
	}
}

func (c *Controller) tickEnd(s renderer.Surface, key input.Key) {
	menu.EndScreen(c.text, c.game.Score()).Render(s)

	switch menu.ActionForKey(key) {
	case menu.ActionPlay:
		c.game.Restart()
		c.game.SetMode(state.ModePlaying)
	case menu.ActionQuit:
		s.RequestQuit()
	}
}

func (c *Controller) tickPlaying(s renderer.Surface, key input.Key) {
	g := c.game
	if key == input.KeyQuit {
		s.RequestQuit()
		return
	}

	g.Food.Render(s)
	g.Snake.Render(s)

	step := g.Snake.Update(key, g.Food, g.Bounds, g.Rand)
	switch step.Outcome {
	case entities.OutcomeAte:
		g.NotifyEat()
	case entities.OutcomeBlocked:
		g.SetMode(state.ModeEnd)
		g.NotifyCrash(step.Target)
	}
}
