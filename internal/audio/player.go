package audio

import (
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"
)

const sampleRate = beep.SampleRate(44100)

// ErrUnknownSound is returned by Player.Play for names the synth cannot build.
var ErrUnknownSound = errors.New("audio: unknown sound")

// Sounder plays named one-shot sounds.
type Sounder interface {
	Play(name string) error
	Close()
}

// Player mixes synthesized sounds into the system speaker.
type Player struct {
	mu          sync.Mutex
	synth       Synth
	mixer       *beep.Mixer
	initialized bool
}

// NewPlayer creates a player; Init must be called before sounds are heard.
func NewPlayer(volume float64) *Player {
	synth := NewSynth(sampleRate)
	synth.Volume = volume
	return &Player{synth: synth, mixer: &beep.Mixer{}}
}

// Init opens the speaker. Calling it again is a no-op.
func (p *Player) Init() error {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.initialized {
		return nil
	}
	if err := speaker.Init(sampleRate, sampleRate.N(100*time.Millisecond)); err != nil {
		return fmt.Errorf("audio: cannot open speaker: %w", err)
	}
	speaker.Play(p.mixer)
	p.initialized = true
	return nil
}

// Play mixes in a fresh copy of the named sound. Before Init it only
// validates the name.
func (p *Player) Play(name string) error {
	s := p.synth.Sound(name)
	if s == nil {
		return fmt.Errorf("%w: %q", ErrUnknownSound, name)
	}

	p.mu.Lock()
	defer p.mu.Unlock()
	if !p.initialized {
		return nil
	}
	speaker.Lock()
	p.mixer.Add(s)
	speaker.Unlock()
	return nil
}

// Close stops playback and releases the speaker.
func (p *Player) Close() {
	p.mu.Lock()
	defer p.mu.Unlock()

	if !p.initialized {
		return
	}
	speaker.Clear()
	speaker.Close()
	p.initialized = false
}

// Nop discards every sound.
type Nop struct{}

func (Nop) Play(string) error { return nil }
func (Nop) Close() {}

// Open returns a speaker-backed Sounder, or Nop when muted or when the
// speaker cannot be opened.
func Open(muted bool, volume float64) (Sounder, error) {
	if muted {
		return Nop{}, nil
	}
	p := NewPlayer(volume)
	if err := p.Init(); err != nil {
		return Nop{}, err
	}
	return p, nil
}
