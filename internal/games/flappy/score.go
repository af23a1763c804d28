package flappy

import (
	"strconv"

	"github.com/charmbracelet/log"
)

// HighScoreStore is the persistence port for the high score. The store may
// be shared by several stages; SetHighScore must never lower the saved value.
type HighScoreStore interface {
	HighScore() (int, error)
	SetHighScore(score int) error
}

// ScoreTracker holds the running score and the last known high score.
type ScoreTracker struct {
	score   int
	high    int
	store   HighScoreStore
	effects Effects
	logger  *log.Logger
}

func newScoreTracker(store HighScoreStore, effects Effects, logger *log.Logger) *ScoreTracker {
	st := &ScoreTracker{store: store, effects: effects, logger: logger}
	st.refresh()
	return st
}

// refresh adopts a higher saved value written by another stage sharing the
// store. A failed read keeps the in-memory value.
func (st *ScoreTracker) refresh() {
	if st.store == nil {
		return
	}
	high, err := st.store.HighScore()
	if err != nil {
		st.logger.Warn("cannot load high score", "err", err)
		return
	}
	if high > st.high {
		st.high = high
	}
}

// Reset zeroes the score and updates the score text.
func (st *ScoreTracker) Reset() {
	st.score = 0
	st.effects.SetScoreText(st.Text())
}

// Increment adds one point and updates the score text.
func (st *ScoreTracker) Increment() {
	st.score++
	st.effects.SetScoreText(st.Text())
}

// CommitIfHighScore adopts and persists the score if it beats the high
// score. Persistence failures are logged and swallowed.
func (st *ScoreTracker) CommitIfHighScore() bool {
	st.refresh()
	if st.score <= st.high {
		return false
	}
	st.high = st.score
	if st.store != nil {
		if err := st.store.SetHighScore(st.score); err != nil {
			st.logger.Warn("cannot persist high score", "score", st.score, "err", err)
		}
	}
	return true
}

// Score returns the current score.
func (st *ScoreTracker) Score() int {
	return st.score
}

// HighScore returns the in-memory high score.
func (st *ScoreTracker) HighScore() int {
	return st.high
}

// Text returns the on-screen score text.
func (st *ScoreTracker) Text() string {
	return strconv.Itoa(st.score)
}
