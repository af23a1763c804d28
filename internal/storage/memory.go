package storage

import "sync"

// MemoryStore keeps the high score in process memory. Used when no durable
// backend could be opened, and in tests.
type MemoryStore struct {
	mu    sync.Mutex
	score int
	err   error
}

// NewMemoryStore creates a store seeded with an initial high score.
func NewMemoryStore(initial int) *MemoryStore {
	return &MemoryStore{score: initial}
}

// HighScore returns the stored value.
func (m *MemoryStore) HighScore() (int, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.err != nil {
		return 0, m.err
	}
	return m.score, nil
}

// SetHighScore raises the stored value to score; lower values are ignored.
func (m *MemoryStore) SetHighScore(score int) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.err != nil {
		return m.err
	}
	m.score = max(m.score, score)
	return nil
}

// ResetHighScore sets the stored value back to zero.
func (m *MemoryStore) ResetHighScore() error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.err != nil {
		return m.err
	}
	m.score = 0
	return nil
}

// FailWith makes every subsequent call return err (nil restores normal operation).
func (m *MemoryStore) FailWith(err error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.err = err
}
