package flappy

import "time"

// Sound names a one-shot sound effect.
type Sound string

// Sounds triggered by the stage.
const (
	SoundWing  Sound = "wing"
	SoundPoint Sound = "point"
	SoundHit   Sound = "hit"
)

// AnimFlap is the actor's looping wing animation.
const AnimFlap = "flap"

// FadeSpec describes a fade-in, hold, fade-out banner transition.
type FadeSpec struct {
	In   time.Duration
	Hold time.Duration
	Out  time.Duration
}

// Total returns the full length of the transition.
func (f FadeSpec) Total() time.Duration {
	return f.In + f.Hold + f.Out
}

// Effects receives one-way presentation notifications. The stage never waits
// on them; implementations must not call back into the stage.
type Effects interface {
	PlaySound(s Sound)
	PlayAnimation(name string, loop bool)
	StopAnimation()
	SetScoreText(text string)
	ShowBanner(spec FadeSpec)
}

// NopEffects ignores every notification.
type NopEffects struct{}

func (NopEffects) PlaySound(Sound) {}
func (NopEffects) PlayAnimation(string, bool) {}
func (NopEffects) StopAnimation() {}
func (NopEffects) SetScoreText(string) {}
func (NopEffects) ShowBanner(FadeSpec) {}
