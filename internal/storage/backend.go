package storage

import (
	"fmt"
	"io"
)

// Backend names accepted by OpenHighScores.
const (
	BackendSQLite = "sqlite"
	BackendGdata  = "gdata"
	BackendMemory = "memory"
)

// HighScores is the persistence port every backend implements: a single
// durable integer that defaults to 0 when absent. SetHighScore never lowers
// it; only ResetHighScore does.
type HighScores interface {
	HighScore() (int, error)
	SetHighScore(score int) error
	ResetHighScore() error
}

// OpenHighScores opens the named backend. The returned closer releases
// backend resources and is never nil.
func OpenHighScores(backend, dbPath, appName string) (HighScores, io.Closer, error) {
	switch backend {
	case "", BackendSQLite:
		s, err := Open(dbPath)
		if err != nil {
			return nil, nopCloser{}, err
		}
		return s, s, nil
	case BackendGdata:
		g, err := OpenGdata(appName)
		if err != nil {
			return nil, nopCloser{}, err
		}
		return g, nopCloser{}, nil
	case BackendMemory:
		return NewMemoryStore(0), nopCloser{}, nil
	default:
		return nil, nopCloser{}, fmt.Errorf("storage: unknown backend %q", backend)
	}
}

type nopCloser struct{}

func (nopCloser) Close() error { return nil }

var (
	_ HighScores = (*Store)(nil)
	_ HighScores = (*GdataStore)(nil)
	_ HighScores = (*MemoryStore)(nil)
)
