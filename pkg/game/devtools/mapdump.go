// Package devtools provides developer tools for testing and debugging.
package devtools

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"snaketerm/pkg/engine/world"
	"snaketerm/pkg/game/entities"
	"snaketerm/pkg/game/state"
)

const boardDumpFilename = "board.txt"

// cellSymbol returns the character for p: head glyph, body, food, or empty.
func cellSymbol(g *state.Game, p world.Point) rune {
	switch {
	case p == g.Snake.Head():
		return g.Snake.HeadGlyph()
	case g.Snake.Occupies(p):
		return entities.BodyGlyph
	case p == g.Food.Position:
		return entities.FoodGlyph
	default:
		return '.'
	}
}

// writeBoard writes the board one row per line.
func writeBoard(w io.Writer, g *state.Game) {
	for y := 0; y < g.Bounds.Height; y++ {
		for x := 0; x < g.Bounds.Width; x++ {
			fmt.Fprintf(w, "%c", cellSymbol(g, world.Pt(x, y)))
		}
		fmt.Fprintln(w)
	}
}

// DumpBoard writes a debug dump of g to w: metadata, legend, board and path.
func DumpBoard(w io.Writer, g *state.Game) error {
	bw := bufio.NewWriter(w)

	fmt.Fprintln(bw, "=== BOARD DUMP ===")
	fmt.Fprintln(bw, "")
	fmt.Fprintln(bw, "--- Metadata ---")
	fmt.Fprintf(bw, "mode: %s\n", g.Mode)
	fmt.Fprintf(bw, "frame: %d\n", g.Frame)
	fmt.Fprintf(bw, "board: %dx%d\n", g.Bounds.Width, g.Bounds.Height)
	fmt.Fprintf(bw, "score: %d\n", g.Score())
	fmt.Fprintf(bw, "length: %d\n", g.Snake.Len())
	fmt.Fprintf(bw, "direction: %s\n", world.DirectionName(g.Snake.Direction))
	fmt.Fprintf(bw, "head: %s\n", g.Snake.Head())
	fmt.Fprintf(bw, "tail: %s\n", g.Snake.Tail())
	fmt.Fprintf(bw, "food: %s\n", g.Food.Position)
	fmt.Fprintf(bw, "flash_frames_left: %d\n", g.Snake.FlashFramesLeft)
	fmt.Fprintln(bw, "")

	fmt.Fprintln(bw, "--- Legend ---")
	fmt.Fprintln(bw, ". = empty  * = body  F = food  < > ^ v = head")
	fmt.Fprintln(bw, "")

	fmt.Fprintln(bw, "--- Board ---")
	writeBoard(bw, g)
	fmt.Fprintln(bw, "")

	fmt.Fprintln(bw, "--- Path (tail to head) ---")
	for i, p := range g.Snake.Path() {
		fmt.Fprintf(bw, "%d: %s\n", i, p)
	}

	return bw.Flush()
}

// WriteBoardFile dumps g to path, or to board.txt when path is empty.
// It returns the absolute path written.
func WriteBoardFile(path string, g *state.Game) (string, error) {
	if path == "" {
		path = boardDumpFilename
	}
	absPath, err := filepath.Abs(path)
	if err != nil {
		return "", err
	}

	f, err := os.Create(absPath)
	if err != nil {
		return "", fmt.Errorf("create board dump: %w", err)
	}
	defer f.Close()

	if err := DumpBoard(f, g); err != nil {
		return "", fmt.Errorf("write board dump: %w", err)
	}
	return absPath, nil
}
