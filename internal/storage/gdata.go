package storage

import (
	"fmt"
	"strconv"
	"strings"
	"sync"

	"github.com/quasilyte/gdata/v2"
)

const (
	gdataObject   = "flappy"
	gdataProperty = "high_score"
)

// GdataStore persists the high score in the platform's per-user application
// data directory. It is the desktop counterpart of browser local storage.
type GdataStore struct {
	mu sync.Mutex // serializes read-compare-write in SetHighScore
	m  *gdata.Manager
}

// OpenGdata opens (creating if needed) the data directory for appName.
func OpenGdata(appName string) (*GdataStore, error) {
	m, err := gdata.Open(gdata.Config{AppName: appName})
	if err != nil {
		return nil, fmt.Errorf("storage: cannot open gdata for %q: %w", appName, err)
	}
	return &GdataStore{m: m}, nil
}

// HighScore returns the saved high score, or 0 when none exists.
func (g *GdataStore) HighScore() (int, error) {
	if !g.m.ObjectPropExists(gdataObject, gdataProperty) {
		return 0, nil
	}
	data, err := g.m.LoadObjectProp(gdataObject, gdataProperty)
	if err != nil {
		return 0, fmt.Errorf("storage: cannot load high score: %w", err)
	}
	score, err := strconv.Atoi(strings.TrimSpace(string(data)))
	if err != nil {
		return 0, fmt.Errorf("storage: corrupt high score %q: %w", data, err)
	}
	return score, nil
}

// SetHighScore raises the saved high score to score; lower values are
// ignored. An unreadable saved value is overwritten.
func (g *GdataStore) SetHighScore(score int) error {
	g.mu.Lock()
	defer g.mu.Unlock()

	if current, err := g.HighScore(); err == nil && current >= score {
		return nil
	}
	return g.save(score)
}

// ResetHighScore stores a zero high score.
func (g *GdataStore) ResetHighScore() error {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.save(0)
}

func (g *GdataStore) save(score int) error {
	if err := g.m.SaveObjectProp(gdataObject, gdataProperty, []byte(strconv.Itoa(score))); err != nil {
		return fmt.Errorf("storage: cannot save high score: %w", err)
	}
	return nil
}
