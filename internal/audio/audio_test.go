package audio

import (
	"errors"
	"testing"
	"time"

	"github.com/gopxl/beep"

	"github.com/vovakirdan/tui-flappy/internal/games/flappy"
)

// drain streams s to completion and returns the sample count and peak level.
func drain(t *testing.T, s beep.Streamer) (int, float64) {
	t.Helper()
	buf := make([][2]float64, 512)
	total, peak := 0, 0.0
	for i := 0; i < 10000; i++ {
		n, ok := s.Stream(buf)
		for _, smp := range buf[:n] {
			if smp[0] > peak {
				peak = smp[0]
			}
			if -smp[0] > peak {
				peak = -smp[0]
			}
		}
		total += n
		if !ok {
			return total, peak
		}
	}
	t.Fatal("stream never ended")
	return 0, 0
}

func TestOscillatorLength(t *testing.T) {
	rate := beep.SampleRate(44100)
	for _, wave := range []WaveType{WaveSine, WaveSquare, WaveSaw, WaveNoise} {
		n, peak := drain(t, NewOscillator(440, 100*time.Millisecond, wave, rate))
		if n != rate.N(100*time.Millisecond) {
			t.Errorf("wave %d: streamed %d samples, want %d", wave, n, rate.N(100*time.Millisecond))
		}
		if peak > 1 {
			t.Errorf("wave %d: peak %v out of range", wave, peak)
		}
	}
}

func TestSweepStaysInRange(t *testing.T) {
	rate := beep.SampleRate(22050)
	_, peak := drain(t, NewSweep(100, 2000, 50*time.Millisecond, WaveSine, rate))
	if peak > 1 || peak == 0 {
		t.Errorf("peak = %v, want (0, 1]", peak)
	}
}

func TestEnvelopeFadesEdges(t *testing.T) {
	rate := beep.SampleRate(1000)
	osc := NewOscillator(0, time.Second, WaveSquare, rate)
	env := NewEnvelope(osc, time.Second, 100*time.Millisecond, 100*time.Millisecond, rate)

	buf := make([][2]float64, 1000)
	n, _ := env.Stream(buf)
	if n != 1000 {
		t.Fatalf("streamed %d samples, want 1000", n)
	}
	if buf[0][0] != 0 {
		t.Errorf("first sample = %v, want silent attack start", buf[0][0])
	}
	if buf[500][0] != 1 {
		t.Errorf("sustain sample = %v, want 1", buf[500][0])
	}
	if buf[999][0] > 0.02 {
		t.Errorf("last sample = %v, want near silence", buf[999][0])
	}
}

func TestSynthSounds(t *testing.T) {
	synth := NewSynth(beep.SampleRate(22050))

	tests := []struct {
		name string
		min  time.Duration
	}{
		{Wing, wingDuration},
		{Point, 3 * pointNote},
		{Hit, hitDuration},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := synth.Sound(tt.name)
			if s == nil {
				t.Fatal("no stream")
			}
			n, peak := drain(t, s)
			if n < synth.Rate.N(tt.min) {
				t.Errorf("streamed %d samples, want at least %d", n, synth.Rate.N(tt.min))
			}
			if peak == 0 {
				t.Error("sound is silent")
			}
		})
	}

	if synth.Sound("quack") != nil {
		t.Error("unknown sound should have no stream")
	}
}

func TestPlayerWithoutSpeaker(t *testing.T) {
	p := NewPlayer(0.5)
	if err := p.Play(Wing); err != nil {
		t.Errorf("Play(wing) = %v", err)
	}
	if err := p.Play("quack"); !errors.Is(err, ErrUnknownSound) {
		t.Errorf("Play(quack) = %v, want ErrUnknownSound", err)
	}
	p.Close()
}

func TestOpenMuted(t *testing.T) {
	s, err := Open(true, 1)
	if err != nil {
		t.Fatal(err)
	}
	if _, ok := s.(Nop); !ok {
		t.Errorf("Open(muted) = %T, want Nop", s)
	}
}

type recordingSounder struct {
	played []string
	err    error
}

func (r *recordingSounder) Play(name string) error {
	r.played = append(r.played, name)
	return r.err
}

func (r *recordingSounder) Close() {}

func TestStageEffectsRoutesSounds(t *testing.T) {
	rec := &recordingSounder{}
	var fx flappy.Effects = NewStageEffects(rec, nil)

	fx.PlaySound(flappy.SoundWing)
	fx.PlaySound(flappy.SoundPoint)
	fx.SetScoreText("3")
	fx.ShowBanner(flappy.FadeSpec{})

	if len(rec.played) != 2 || rec.played[0] != Wing || rec.played[1] != Point {
		t.Errorf("played = %v", rec.played)
	}

	rec.err = errors.New("device busy")
	fx.PlaySound(flappy.SoundHit)
}
