package audio

import (
	"sync"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"

	"snaketerm/pkg/engine/world"
	"snaketerm/pkg/game/state"
)

const sampleRate = beep.SampleRate(44100)

// Player mixes effects into the speaker in response to game events.
// Every method is a no-op until Initialize succeeds.
type Player struct {
	mu          sync.Mutex
	mixer       *beep.Mixer
	initialized bool
}

// NewPlayer creates a player with an empty mixer
func NewPlayer() *Player {
	return &Player{mixer: &beep.Mixer{}}
}

// Initialize opens the speaker
func (p *Player) Initialize() error {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.initialized {
		return nil
	}
	if err := speaker.Init(sampleRate, sampleRate.N(100*time.Millisecond)); err != nil {
		return err
	}
	speaker.Play(p.mixer)
	p.initialized = true
	return nil
}

// Close silences anything still playing and releases the speaker
func (p *Player) Close() {
	p.mu.Lock()
	defer p.mu.Unlock()

	if !p.initialized {
		return
	}
	speaker.Lock()
	p.mixer.Clear()
	speaker.Unlock()
	speaker.Close()
	p.initialized = false
}

func (p *Player) play(s beep.Streamer) {
	p.mu.Lock()
	defer p.mu.Unlock()

	if !p.initialized {
		return
	}
	speaker.Lock()
	p.mixer.Add(s)
	speaker.Unlock()
}

// PlayEat plays the chime
func (p *Player) PlayEat() {
	p.play(NewChime(sampleRate))
}

// PlayCrash plays the buzz
func (p *Player) PlayCrash() {
	p.play(NewBuzz(sampleRate))
}

func (p *Player) OnModeChange(from, to state.Mode) {}

func (p *Player) OnEat(score int) {
	p.PlayEat()
}

func (p *Player) OnCrash(score int, at world.Point) {
	p.PlayCrash()
}
