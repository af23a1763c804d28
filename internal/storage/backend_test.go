package storage

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestMemoryStore(t *testing.T) {
	m := NewMemoryStore(5)
	if v, _ := m.HighScore(); v != 5 {
		t.Errorf("HighScore() = %d, expected seed 5", v)
	}

	boom := errors.New("disk full")
	m.FailWith(boom)
	if err := m.SetHighScore(9); !errors.Is(err, boom) {
		t.Errorf("SetHighScore() = %v, expected injected error", err)
	}
	if _, err := m.HighScore(); !errors.Is(err, boom) {
		t.Errorf("HighScore() = %v, expected injected error", err)
	}

	m.FailWith(nil)
	if err := m.SetHighScore(9); err != nil {
		t.Fatalf("SetHighScore() failed: %v", err)
	}
	if v, _ := m.HighScore(); v != 9 {
		t.Errorf("HighScore() = %d, expected 9", v)
	}
	if err := m.SetHighScore(4); err != nil {
		t.Fatalf("SetHighScore() failed: %v", err)
	}
	if v, _ := m.HighScore(); v != 9 {
		t.Errorf("HighScore() = %d after a lower write, expected 9", v)
	}
	m.ResetHighScore()
	if v, _ := m.HighScore(); v != 0 {
		t.Errorf("HighScore() after reset = %d", v)
	}
}

func TestOpenHighScoresBackends(t *testing.T) {
	hs, closer, err := OpenHighScores(BackendSQLite, filepath.Join(t.TempDir(), "s.db"), "")
	if err != nil {
		t.Fatalf("sqlite backend failed: %v", err)
	}
	defer closer.Close()
	if _, ok := hs.(*Store); !ok {
		t.Errorf("sqlite backend returned %T", hs)
	}

	hs, closer, err = OpenHighScores(BackendMemory, "", "")
	if err != nil {
		t.Fatalf("memory backend failed: %v", err)
	}
	if _, ok := hs.(*MemoryStore); !ok {
		t.Errorf("memory backend returned %T", hs)
	}
	if err := closer.Close(); err != nil {
		t.Errorf("memory closer: %v", err)
	}

	if _, closer, err := OpenHighScores("floppy", "", ""); err == nil || closer == nil {
		t.Error("unknown backend should fail with a non-nil closer")
	}
}

// newTestGdataStore creates a throwaway gdata store, or nil when the platform
// data directory is unavailable.
func newTestGdataStore(t *testing.T) *GdataStore {
	t.Helper()
	appName := fmt.Sprintf("flappy_test_%d", time.Now().UnixNano())
	g, err := OpenGdata(appName)
	if err != nil {
		return nil
	}
	t.Cleanup(func() {
		if home, err := os.UserHomeDir(); err == nil {
			os.RemoveAll(filepath.Join(home, ".local", "share", appName))
		}
	})
	return g
}

func TestGdataStoreRoundTrip(t *testing.T) {
	g := newTestGdataStore(t)
	if g == nil {
		t.Skip("Cannot create gdata manager for testing")
	}

	if v, err := g.HighScore(); err != nil || v != 0 {
		t.Fatalf("fresh store: HighScore() = %d, %v", v, err)
	}
	if err := g.SetHighScore(17); err != nil {
		t.Fatalf("SetHighScore() failed: %v", err)
	}
	if v, err := g.HighScore(); err != nil || v != 17 {
		t.Errorf("HighScore() = %d, %v; expected 17", v, err)
	}
	if err := g.SetHighScore(5); err != nil {
		t.Fatalf("SetHighScore() failed: %v", err)
	}
	if v, _ := g.HighScore(); v != 17 {
		t.Errorf("HighScore() = %d after a lower write, expected 17", v)
	}
	if err := g.ResetHighScore(); err != nil {
		t.Fatalf("ResetHighScore() failed: %v", err)
	}
	if v, _ := g.HighScore(); v != 0 {
		t.Errorf("HighScore() after reset = %d", v)
	}
}
