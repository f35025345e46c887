package menu

import (
	"fmt"

	"snaketerm/pkg/game/locale"
)

// End screen rows
const (
	endTitleRow = 5
	endScoreRow = 6
	endPlayRow  = 8
	endQuitRow  = 9
)

// EndScreen builds the screen shown after a crash, reporting score
func EndScreen(c *locale.Catalog, score int) Screen {
	return Screen{Lines: []Line{
		{Row: endTitleRow, Text: c.Get(locale.EndTitle)},
		{Row: endScoreRow, Text: fmt.Sprintf(c.Get(locale.EndScore), score)},
		{Row: endPlayRow, Text: c.Get(locale.EndPlayAgain)},
		{Row: endQuitRow, Text: c.Get(locale.MenuQuit)},
	}}
}
