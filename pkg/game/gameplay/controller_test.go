package gameplay

import (
	"reflect"
	"testing"

	"snaketerm/pkg/engine/input"
	"snaketerm/pkg/engine/world"
	"snaketerm/pkg/game/entities"
	"snaketerm/pkg/game/locale"
	"snaketerm/pkg/game/renderer"
	"snaketerm/pkg/game/state"
)

type seqRand struct {
	vals []int
	i    int
}

func (s *seqRand) Intn(n int) int {
	v := s.vals[s.i%len(s.vals)] % n
	s.i++
	return v
}

// fakeSurface records one frame of drawing and feeds queued keys.
type fakeSurface struct {
	cells   map[world.Point]rune
	rows    map[int]string
	keys    []input.Key
	quit    bool
	cleared int
}

func newFakeSurface(keys ...input.Key) *fakeSurface {
	return &fakeSurface{
		cells: map[world.Point]rune{},
		rows:  map[int]string{},
		keys:  keys,
	}
}

func (f *fakeSurface) Clear() {
	f.cleared++
	f.cells = map[world.Point]rune{}
	f.rows = map[int]string{}
}

func (f *fakeSurface) SetCell(x, y int, fg, bg renderer.Color, glyph rune) {
	f.cells[world.Pt(x, y)] = glyph
}

func (f *fakeSurface) PrintCentered(row int, text string) { f.rows[row] = text }
func (f *fakeSurface) RequestQuit()                       { f.quit = true }

func (f *fakeSurface) PendingKey() (input.Key, bool) {
	if len(f.keys) == 0 {
		return input.KeyNone, false
	}
	k := f.keys[0]
	f.keys = f.keys[1:]
	return k, true
}

type eventLog struct {
	modes   []string
	eats    []int
	crashes []world.Point
}

func (e *eventLog) OnModeChange(from, to state.Mode) {
	e.modes = append(e.modes, from.String()+">"+to.String())
}

func (e *eventLog) OnEat(score int)                   { e.eats = append(e.eats, score) }
func (e *eventLog) OnCrash(score int, at world.Point) { e.crashes = append(e.crashes, at) }

// newTestController builds an 80x50 game with food far from the start path.
func newTestController(t *testing.T) (*Controller, *eventLog) {
	t.Helper()
	g := state.NewGame(world.NewBounds(80, 50), &seqRand{vals: []int{40, 30}})
	g.Food = entities.NewFoodAt(world.Pt(60, 40))
	events := &eventLog{}
	g.AddListener(events)
	return NewController(g, locale.MustLoad("en")), events
}

func TestMenuRendersAndWaits(t *testing.T) {
	c, _ := newTestController(t)
	surf := newFakeSurface()

	c.Tick(surf)

	if c.Game().Mode != state.ModeMenu {
		t.Errorf("Mode = %v, want Menu", c.Game().Mode)
	}
	if surf.rows[5] != "Main menu" || surf.rows[8] != "(P) Play Game" || surf.rows[9] != "(Q) Quit Game" {
		t.Errorf("menu rows = %v", surf.rows)
	}
	if surf.cleared != 1 {
		t.Errorf("Clear called %d times, want 1", surf.cleared)
	}
}

func TestMenuPlayStartsGame(t *testing.T) {
	c, events := newTestController(t)

	c.Tick(newFakeSurface(input.KeyPlay))

	if c.Game().Mode != state.ModePlaying {
		t.Errorf("Mode = %v, want Playing", c.Game().Mode)
	}
	if want := []string{"Menu>Playing"}; !reflect.DeepEqual(events.modes, want) {
		t.Errorf("mode events = %v, want %v", events.modes, want)
	}
}

func TestMenuQuitRequestsQuit(t *testing.T) {
	c, _ := newTestController(t)
	surf := newFakeSurface(input.KeyQuit)

	c.Tick(surf)

	if !surf.quit {
		t.Error("RequestQuit not called")
	}
	if c.Game().Mode != state.ModeMenu {
		t.Errorf("Mode = %v, want Menu", c.Game().Mode)
	}
}

func TestMenuIgnoresDirectionKeys(t *testing.T) {
	c, _ := newTestController(t)

	c.Tick(newFakeSurface(input.KeyDown))

	if c.Game().Mode != state.ModeMenu {
		t.Errorf("Mode = %v, want Menu", c.Game().Mode)
	}
	if c.Game().Snake.Direction != world.Right {
		t.Errorf("Direction = %v, want Right", c.Game().Snake.Direction)
	}
}

func TestPlayingRendersThenMoves(t *testing.T) {
	c, _ := newTestController(t)
	c.Game().SetMode(state.ModePlaying)
	surf := newFakeSurface()

	c.Tick(surf)

	// Drawn before the move
	wantCells := map[world.Point]rune{
		world.Pt(0, 0):   '*',
		world.Pt(1, 0):   '*',
		world.Pt(2, 0):   '>',
		world.Pt(60, 40): entities.FoodGlyph,
	}
	if !reflect.DeepEqual(surf.cells, wantCells) {
		t.Errorf("cells = %v, want %v", surf.cells, wantCells)
	}

	want := []world.Point{world.Pt(1, 0), world.Pt(2, 0), world.Pt(3, 0)}
	if got := c.Game().Snake.Path(); !reflect.DeepEqual(got, want) {
		t.Errorf("Path() = %v, want %v", got, want)
	}
	if c.Game().Mode != state.ModePlaying {
		t.Errorf("Mode = %v, want Playing", c.Game().Mode)
	}
}

func TestPlayingSteersWithKey(t *testing.T) {
	c, _ := newTestController(t)
	c.Game().SetMode(state.ModePlaying)

	c.Tick(newFakeSurface(input.KeyDown))

	if got := c.Game().Snake.Head(); got != world.Pt(2, 1) {
		t.Errorf("Head() = %v, want (2,1)", got)
	}
}

func TestPlayingEatNotifies(t *testing.T) {
	c, events := newTestController(t)
	g := c.Game()
	g.SetMode(state.ModePlaying)
	g.Food = entities.NewFoodAt(g.Snake.Head())

	c.Tick(newFakeSurface())

	if g.Score() != 1 {
		t.Errorf("Score() = %d, want 1", g.Score())
	}
	if g.Snake.Len() != 4 {
		t.Errorf("Len() = %d, want 4", g.Snake.Len())
	}
	if g.Snake.Occupies(g.Food.Position) {
		t.Errorf("food respawned onto the snake at %v", g.Food.Position)
	}
	if want := []int{1}; !reflect.DeepEqual(events.eats, want) {
		t.Errorf("eat events = %v, want %v", events.eats, want)
	}
}

func TestPlayingCrashEndsGame(t *testing.T) {
	c, events := newTestController(t)
	g := c.Game()
	g.SetMode(state.ModePlaying)
	g.Snake = entities.NewSnakeWithPath(
		[]world.Point{world.Pt(0, 2), world.Pt(0, 1), world.Pt(0, 0)}, world.Up)
	before := g.Snake.Path()

	c.Tick(newFakeSurface())

	if g.Mode != state.ModeEnd {
		t.Errorf("Mode = %v, want End", g.Mode)
	}
	if got := g.Snake.Path(); !reflect.DeepEqual(got, before) {
		t.Errorf("Path() = %v, want unchanged %v", got, before)
	}
	if want := []world.Point{world.Pt(0, -1)}; !reflect.DeepEqual(events.crashes, want) {
		t.Errorf("crash events = %v, want %v", events.crashes, want)
	}
}

func TestPlayingQuit(t *testing.T) {
	c, _ := newTestController(t)
	c.Game().SetMode(state.ModePlaying)
	surf := newFakeSurface(input.KeyQuit)

	c.Tick(surf)

	if !surf.quit {
		t.Error("RequestQuit not called")
	}
	if got := c.Game().Snake.Head(); got != world.Pt(2, 0) {
		t.Errorf("Head() = %v, want (2,0) after quit", got)
	}
}

func TestEndIsIdempotentWithoutKeys(t *testing.T) {
	c, _ := newTestController(t)
	g := c.Game()
	g.Snake.Score = 4
	g.SetMode(state.ModeEnd)

	for i := 0; i < 5; i++ {
		surf := newFakeSurface()
		c.Tick(surf)
		if surf.rows[6] != "You earned 4 points" {
			t.Errorf("frame %d: row 6 = %q", i, surf.rows[6])
		}
	}

	if g.Mode != state.ModeEnd {
		t.Errorf("Mode = %v, want End", g.Mode)
	}
	if g.Score() != 4 {
		t.Errorf("Score() = %d, want 4", g.Score())
	}
}

func TestEndPlayAgainRestarts(t *testing.T) {
	c, events := newTestController(t)
	g := c.Game()
	g.SetMode(state.ModePlaying)
	g.Snake = entities.NewSnakeWithPath(
		[]world.Point{world.Pt(5, 5), world.Pt(6, 5), world.Pt(7, 5), world.Pt(8, 5)}, world.Right)
	g.Snake.Score = 9
	g.SetMode(state.ModeEnd)
	food := g.Food.Position

	c.Tick(newFakeSurface(input.KeyPlay))

	if g.Mode != state.ModePlaying {
		t.Errorf("Mode = %v, want Playing", g.Mode)
	}
	if g.Score() != 0 {
		t.Errorf("Score() = %d, want 0", g.Score())
	}
	if got := g.Snake.Path(); !reflect.DeepEqual(got, entities.StartPath()) {
		t.Errorf("Path() = %v, want %v", got, entities.StartPath())
	}
	if g.Food.Position != food {
		t.Errorf("food moved to %v, want %v", g.Food.Position, food)
	}
	want := []string{"Menu>Playing", "Playing>End", "End>Playing"}
	if !reflect.DeepEqual(events.modes, want) {
		t.Errorf("mode events = %v, want %v", events.modes, want)
	}
}

func TestTickConsumesOneKeyPerFrame(t *testing.T) {
	c, _ := newTestController(t)
	surf := newFakeSurface(input.KeyPlay, input.KeyDown)

	c.Tick(surf)
	if len(surf.keys) != 1 {
		t.Fatalf("%d keys left after first frame, want 1", len(surf.keys))
	}
	c.Tick(surf)
	if got := c.Game().Snake.Head(); got != world.Pt(2, 1) {
		t.Errorf("Head() = %v, want (2,1)", got)
	}
	if c.Game().Frame != 2 {
		t.Errorf("Frame = %d, want 2", c.Game().Frame)
	}
}

func TestBuildGameIsDeterministic(t *testing.T) {
	b := world.NewBounds(80, 50)
	a := BuildGame(b, 42)
	z := BuildGame(b, 42)
	if a.Food.Position != z.Food.Position {
		t.Errorf("seed 42 placed food at %v and %v", a.Food.Position, z.Food.Position)
	}
	if !b.Contains(a.Food.Position) {
		t.Errorf("food %v outside %v", a.Food.Position, b)
	}
	if a.Mode != state.ModeMenu {
		t.Errorf("Mode = %v, want Menu", a.Mode)
	}
}
