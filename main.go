package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"runtime/debug"

	"snaketerm/pkg/engine/input"
	"snaketerm/pkg/engine/terminal"
	"snaketerm/pkg/engine/world"
	"snaketerm/pkg/game/audio"
	"snaketerm/pkg/game/config"
	"snaketerm/pkg/game/devtools"
	"snaketerm/pkg/game/gameplay"
	"snaketerm/pkg/game/locale"
	"snaketerm/pkg/game/renderer"
	"snaketerm/pkg/game/renderer/ansi"
	ebitenrenderer "snaketerm/pkg/game/renderer/ebiten"
	"snaketerm/pkg/game/renderer/tui"
)

// Exit codes
const (
	exitOK    = 0
	exitError = 1
	exitUsage = 2
)

// fail logs err, prints it in the denied color and returns code
func fail(code int, err error) int {
	log.Print(err)
	fmt.Fprintln(os.Stderr, renderer.ColorDenied.Sprint(err.Error()))
	return code
}

// setupLogging routes the standard logger. Terminal surfaces own stdout,
// so without -log their output is discarded.
func setupLogging(cfg config.Config) (*os.File, error) {
	if cfg.LogFile != "" {
		f, err := os.OpenFile(cfg.LogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			return nil, fmt.Errorf("open log file: %w", err)
		}
		log.SetOutput(f)
		return f, nil
	}
	if cfg.IsTerminal() {
		log.SetOutput(io.Discard)
	}
	return nil, nil
}

// openSurface builds the display selected by -renderer
func openSurface(cfg config.Config, b world.Bounds, title string) (renderer.Driver, error) {
	bindings := input.NewBindings(cfg.Vim)
	switch cfg.Renderer {
	case config.RendererTcell:
		return tui.New(b.Width, b.Height, cfg.FPS, title, bindings)
	case config.RendererANSI:
		return ansi.New(b.Width, b.Height, cfg.FPS, bindings)
	case config.RendererEbiten:
		return ebitenrenderer.New(b.Width, b.Height, cfg.FPS, title, bindings), nil
	default:
		return nil, fmt.Errorf("%w %q", config.ErrUnknownRenderer, cfg.Renderer)
	}
}

func main() {
	os.Exit(run(os.Args))
}

// run plays one session and returns the process exit code. Deferred cleanup
// runs before main exits.
func run(args []string) (code int) {
	// Hand the terminal back before printing a crash
	defer func() {
		if r := recover(); r != nil {
			terminal.EmergencyReset(os.Stdout)
			fmt.Fprintf(os.Stderr, "\r\n\x1b[31mSNAKE CRASHED: %v\x1b[0m\r\n", r)
			fmt.Fprintf(os.Stderr, "Stack Trace:\r\n%s\r\n", debug.Stack())
			code = exitError
		}
	}()

	cfg, err := config.Parse(args[0], args[1:])
	if errors.Is(err, flag.ErrHelp) {
		return exitOK
	}
	if err != nil {
		return fail(exitUsage, err)
	}

	logFile, err := setupLogging(cfg)
	if err != nil {
		return fail(exitError, err)
	}
	if logFile != nil {
		defer logFile.Close()
	}

	text, err := locale.Load(cfg.Lang)
	if err != nil {
		return fail(exitUsage, err)
	}

	termW, termH := terminal.GetSize()
	bounds, err := cfg.BoardSize(termW, termH)
	if err != nil {
		return fail(exitError, err)
	}
	log.Printf("starting: renderer=%s board=%dx%d fps=%d seed=%d lang=%s sound=%v",
		cfg.Renderer, bounds.Width, bounds.Height, cfg.FPS, cfg.Seed, cfg.Lang, cfg.Sound)

	g := gameplay.BuildGame(bounds, cfg.Seed)
	g.AddListener(gameplay.LogListener{})

	if cfg.Sound {
		player := audio.NewPlayer()
		if err := player.Initialize(); err != nil {
			log.Printf("sound disabled: %v", err)
		} else {
			defer player.Close()
			g.AddListener(player)
		}
	}

	driver, err := openSurface(cfg, bounds, text.Get(locale.WindowTitle))
	if err != nil {
		return fail(exitError, fmt.Errorf("cannot open %s display: %w", cfg.Renderer, err))
	}
	log.Printf("%s display opened", cfg.Renderer)

	ctrl := gameplay.NewController(g, text)
	runErr := driver.Run(ctrl.Tick)
	if err := driver.Close(); err != nil {
		log.Printf("closing display: %v", err)
	}
	if runErr != nil {
		return fail(exitError, fmt.Errorf("display stopped: %w", runErr))
	}
	log.Printf("shutdown after %d frames, score %d", g.Frame, g.Score())

	if cfg.DumpFile != "" {
		path, err := devtools.WriteBoardFile(cfg.DumpFile, g)
		if err != nil {
			log.Printf("board dump failed: %v", err)
		} else {
			log.Printf("board dumped to %s", path)
		}
	}

	fmt.Println(renderer.ColorScore.Sprint(fmt.Sprintf(text.Get(locale.Goodbye), g.Score())))
	return exitOK
}
