package audio

import (
	"time"

	"github.com/gopxl/beep"
)

// Sound names understood by Synth.
const (
	Wing  = "wing"
	Point = "point"
	Hit   = "hit"
)

const (
	wingDuration  = 90 * time.Millisecond
	pointNote     = 70 * time.Millisecond
	hitDuration   = 220 * time.Millisecond
	noteAttack    = 5 * time.Millisecond
	defaultVolume = 0.5
)

// Synth builds sound effect streams at a fixed sample rate and volume.
type Synth struct {
	Rate   beep.SampleRate
	Volume float64
}

// NewSynth creates a synth at the given rate with the default volume.
func NewSynth(rate beep.SampleRate) Synth {
	return Synth{Rate: rate, Volume: defaultVolume}
}

// Sound returns a fresh stream for name, or nil if the name is unknown.
func (s Synth) Sound(name string) beep.Streamer {
	switch name {
	case Wing:
		return s.wing()
	case Point:
		return s.point()
	case Hit:
		return s.hit()
	default:
		return nil
	}
}

// wing is a short upward noise swish.
func (s Synth) wing() beep.Streamer {
	swish := beep.Mix(
		newVolume(NewOscillator(0, wingDuration, WaveNoise, s.Rate), 0.4),
		newVolume(NewSweep(300, 700, wingDuration, WaveSine, s.Rate), 0.6),
	)
	return newVolume(NewEnvelope(swish, wingDuration, noteAttack, wingDuration/2, s.Rate), s.Volume)
}

// point is a rising two-note chime.
func (s Synth) point() beep.Streamer {
	n1 := NewEnvelope(NewOscillator(987.77, pointNote, WaveSquare, s.Rate), pointNote, noteAttack, pointNote/2, s.Rate)
	n2 := NewEnvelope(NewOscillator(1318.51, 2*pointNote, WaveSquare, s.Rate), 2*pointNote, noteAttack, pointNote, s.Rate)
	return newVolume(beep.Seq(n1, n2), s.Volume*0.6)
}

// hit is a falling saw thud.
func (s Synth) hit() beep.Streamer {
	thud := NewSweep(220, 60, hitDuration, WaveSaw, s.Rate)
	return newVolume(NewEnvelope(thud, hitDuration, noteAttack, hitDuration*3/4, s.Rate), s.Volume)
}
