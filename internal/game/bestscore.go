package game

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"strconv"

	_ "modernc.org/sqlite"
)

const bestScoreKey = "snake.best"

// ScoreStore persists the single best snake score across runs. Injected into
// the session so the engine never touches storage directly.
type ScoreStore interface {
	// LoadBest returns the stored best score, 0 when absent or unreadable.
	LoadBest() int
	SaveBest(score int) error
}

// SQLiteStore keeps the score in a one-table key/value sqlite database.
type SQLiteStore struct {
	db *sql.DB
}

// DefaultScorePath places the database under the user config dir.
func DefaultScorePath() (string, error) {
	dir, err := os.UserConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "hardcore-snake", "scores.db"), nil
}

func OpenSQLiteStore(path string) (*SQLiteStore, error) {
	if path == "" {
		return nil, fmt.Errorf("empty db path")
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, err
	}
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, err
	}
	db.SetMaxOpenConns(1)
	db.SetMaxIdleConns(1)
	if _, err := db.Exec(`CREATE TABLE IF NOT EXISTS kv (
		key   TEXT PRIMARY KEY,
		value TEXT NOT NULL
	)`); err != nil {
		db.Close()
		return nil, fmt.Errorf("init kv table: %w", err)
	}
	return &SQLiteStore{db: db}, nil
}

// LoadBest degrades to 0 on any failure: a missing or mangled score is not
// worth surfacing to the player.
func (s *SQLiteStore) LoadBest() int {
	var raw string
	err := s.db.QueryRow(`SELECT value FROM kv WHERE key = ?`, bestScoreKey).Scan(&raw)
	if err != nil {
		return 0
	}
	v, err := strconv.Atoi(raw)
	if err != nil || v < 0 {
		return 0
	}
	return v
}

func (s *SQLiteStore) SaveBest(score int) error {
	_, err := s.db.Exec(
		`INSERT INTO kv (key, value) VALUES (?, ?)
		 ON CONFLICT(key) DO UPDATE SET value = excluded.value`,
		bestScoreKey, strconv.Itoa(score))
	if err != nil {
		return fmt.Errorf("save %s: %w", bestScoreKey, err)
	}
	return nil
}

func (s *SQLiteStore) Close() error { return s.db.Close() }

// memStore is the fallback when the database cannot be opened; the game runs
// with a session-only best score.
type memStore struct {
	best int
}

func (m *memStore) LoadBest() int { return m.best }

func (m *memStore) SaveBest(score int) error {
	m.best = score
	return nil
}
