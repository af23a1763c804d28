package flappy

import (
	"testing"
	"time"

	"github.com/vovakirdan/tui-flappy/internal/config"
)

const tick = time.Second / 60

type recordingEffects struct {
	sounds  map[Sound]int
	anims   []string
	stops   int
	texts   []string
	banners []FadeSpec
}

func newRecordingEffects() *recordingEffects {
	return &recordingEffects{sounds: make(map[Sound]int)}
}

func (r *recordingEffects) PlaySound(s Sound) { r.sounds[s]++ }

func (r *recordingEffects) PlayAnimation(name string, _ bool) { r.anims = append(r.anims, name) }

func (r *recordingEffects) StopAnimation() { r.stops++ }

func (r *recordingEffects) SetScoreText(text string) { r.texts = append(r.texts, text) }

func (r *recordingEffects) ShowBanner(spec FadeSpec) { r.banners = append(r.banners, spec) }

func (r *recordingEffects) lastText() string {
	if len(r.texts) == 0 {
		return ""
	}
	return r.texts[len(r.texts)-1]
}

type recordingStore struct {
	high    int
	writes  []int
	loadErr error
	saveErr error
}

func (r *recordingStore) HighScore() (int, error) {
	if r.loadErr != nil {
		return 0, r.loadErr
	}
	return r.high, nil
}

func (r *recordingStore) SetHighScore(score int) error {
	r.writes = append(r.writes, score)
	if r.saveErr != nil {
		return r.saveErr
	}
	r.high = score
	return nil
}

func newTestStage(t *testing.T, opts ...Option) (*Stage, *recordingEffects) {
	t.Helper()
	fx := newRecordingEffects()
	opts = append([]Option{WithEffects(fx), WithSeed(7)}, opts...)
	return NewStage(config.DefaultFlappyConfig(), opts...), fx
}

// advance runs whole ticks covering at least d.
func advance(s *Stage, d time.Duration) {
	for elapsed := time.Duration(0); elapsed < d; elapsed += tick {
		s.Update(tick)
	}
}

// hover holds the actor in place so a running stage can be observed
// without the actor falling into the ground.
func hover(s *Stage, centerY float64) {
	s.actor.SetGravityEnabled(false)
	s.actor.ResetVelocity()
	s.actor.setCenterY(centerY)
}

// untilState ticks until the stage reaches want, returning the ticks taken
// or -1 after max ticks.
func untilState(s *Stage, want RunState, max int) int {
	for i := 0; i < max; i++ {
		if s.State().Run == want {
			return i
		}
		s.Update(tick)
	}
	if s.State().Run == want {
		return max
	}
	return -1
}
