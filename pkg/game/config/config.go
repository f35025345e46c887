// Package config collects the command-line options of a game session.
package config

import (
	"errors"
	"flag"
	"fmt"
	"slices"
	"strings"

	"snaketerm/pkg/engine/world"
	"snaketerm/pkg/game/locale"
	"snaketerm/pkg/game/renderer"
)

// Surface names accepted by -renderer
const (
	RendererTcell  = "tcell"
	RendererANSI   = "ansi"
	RendererEbiten = "ebiten"
)

// Board and frame rate limits
const (
	DefaultWidth  = 80
	DefaultHeight = 50
	MinWidth      = 10
	MinHeight     = 5
	DefaultFPS    = 20
	MaxFPS        = 240
)

var (
	ErrInvalidConfig   = errors.New("invalid config")
	ErrUnknownRenderer = errors.New("unknown renderer")
)

// Renderers lists the surfaces that can be selected
func Renderers() []string {
	return []string{RendererTcell, RendererANSI, RendererEbiten}
}

// Config holds the settings for one run.
type Config struct {
	Renderer string
	Width    int // 0 picks the board size automatically
	Height   int
	FPS      int
	Seed     uint64 // 0 seeds from the clock
	Sound    bool
	Lang     string
	Vim      bool
	LogFile  string
	DumpFile string
}

// Default returns the settings used when no flags are given
func Default() Config {
	return Config{
		Renderer: RendererTcell,
		FPS:      DefaultFPS,
		Lang:     locale.DefaultLanguage,
	}
}

// RegisterFlags binds every option to fs, using the current values as defaults
func (c *Config) RegisterFlags(fs *flag.FlagSet) {
	fs.StringVar(&c.Renderer, "renderer", c.Renderer, "display surface: "+strings.Join(Renderers(), "|"))
	fs.IntVar(&c.Width, "width", c.Width, "board width in cells (0 = auto)")
	fs.IntVar(&c.Height, "height", c.Height, "board height in cells (0 = auto)")
	fs.IntVar(&c.FPS, "fps", c.FPS, "frames per second")
	fs.Uint64Var(&c.Seed, "seed", c.Seed, "random seed for food placement (0 = time based)")
	fs.BoolVar(&c.Sound, "sound", c.Sound, "play sound effects")
	fs.StringVar(&c.Lang, "lang", c.Lang, "language: "+strings.Join(locale.Languages(), "|"))
	fs.BoolVar(&c.Vim, "vim", c.Vim, "also steer with h/j/k/l and w/a/s/d")
	fs.StringVar(&c.LogFile, "log", c.LogFile, "append log output to this file")
	fs.StringVar(&c.DumpFile, "dump", c.DumpFile, "write the final board to this file on exit")
}

// Parse builds a validated config from command-line arguments
func Parse(name string, args []string) (Config, error) {
	c := Default()
	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	c.RegisterFlags(fs)
	if err := fs.Parse(args); err != nil {
		return c, err
	}
	if fs.NArg() > 0 {
		return c, fmt.Errorf("%w: unexpected arguments %v", ErrInvalidConfig, fs.Args())
	}
	return c, c.Validate()
}

// Validate checks every option against its allowed range
func (c Config) Validate() error {
	if !slices.Contains(Renderers(), c.Renderer) {
		return fmt.Errorf("%w %q", ErrUnknownRenderer, c.Renderer)
	}
	if !slices.Contains(locale.Languages(), c.Lang) {
		return fmt.Errorf("%w %q", locale.ErrUnknownLanguage, c.Lang)
	}
	if c.FPS < 1 || c.FPS > MaxFPS {
		return fmt.Errorf("%w: fps %d outside [1,%d]", ErrInvalidConfig, c.FPS, MaxFPS)
	}
	if c.Width < 0 || c.Height < 0 {
		return fmt.Errorf("%w: negative board size %dx%d", ErrInvalidConfig, c.Width, c.Height)
	}
	if c.Width != 0 && c.Width < MinWidth {
		return fmt.Errorf("%w: width %d below %d", ErrInvalidConfig, c.Width, MinWidth)
	}
	if c.Height != 0 && c.Height < MinHeight {
		return fmt.Errorf("%w: height %d below %d", ErrInvalidConfig, c.Height, MinHeight)
	}
	return nil
}

// IsTerminal reports whether the selected surface draws in the terminal
func (c Config) IsTerminal() bool {
	return c.Renderer != RendererEbiten
}

// BoardSize resolves the board for a display of termW x termH cells.
// Automatic sizes fall back to 80x50, capped to the display for terminal surfaces.
func (c Config) BoardSize(termW, termH int) (world.Bounds, error) {
	w, h := c.Width, c.Height
	if !c.IsTerminal() {
		if w == 0 {
			w = DefaultWidth
		}
		if h == 0 {
			h = DefaultHeight
		}
		return world.NewBounds(w, h), nil
	}

	if w == 0 {
		w = min(DefaultWidth, termW)
	}
	if h == 0 {
		h = min(DefaultHeight, termH)
	}
	if w > termW || h > termH {
		return world.Bounds{}, fmt.Errorf("%w: board %dx%d, terminal %dx%d", renderer.ErrBoardTooLarge, w, h, termW, termH)
	}
	if w < MinWidth || h < MinHeight {
		return world.Bounds{}, fmt.Errorf("%w: terminal %dx%d is smaller than %dx%d", renderer.ErrBoardTooLarge, termW, termH, MinWidth, MinHeight)
	}
	return world.NewBounds(w, h), nil
}
