package audio

import (
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-flappy/internal/games/flappy"
)

// StageEffects routes a stage's sound notifications to a Sounder and
// ignores the visual ones, which hosts render from stage state.
type StageEffects struct {
	flappy.NopEffects

	sounder Sounder
	logger  *log.Logger
}

// NewStageEffects creates a stage effects adapter.
func NewStageEffects(s Sounder, logger *log.Logger) *StageEffects {
	return &StageEffects{sounder: s, logger: logger}
}

// PlaySound plays the named effect, logging failures.
func (e *StageEffects) PlaySound(s flappy.Sound) {
	if err := e.sounder.Play(string(s)); err != nil && e.logger != nil {
		e.logger.Warn("cannot play sound", "sound", s, "err", err)
	}
}
