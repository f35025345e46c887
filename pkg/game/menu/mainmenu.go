package menu

import "snaketerm/pkg/game/locale"

// Main menu rows
const (
	mainTitleRow = 5
	mainPlayRow  = 8
	mainQuitRow  = 9
)

// MainMenu builds the screen shown before the first round
func MainMenu(c *locale.Catalog) Screen {
	return Screen{Lines: []Line{
		{Row: mainTitleRow, Text: c.Get(locale.MenuTitle)},
		{Row: mainPlayRow, Text: c.Get(locale.MenuPlay)},
		{Row: mainQuitRow, Text: c.Get(locale.MenuQuit)},
	}}
}
