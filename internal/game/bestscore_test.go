package game

import (
	"path/filepath"
	"testing"
)

func TestSQLiteStoreRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "scores.db")

	s, err := OpenSQLiteStore(path)
	if err != nil {
		t.Fatalf("OpenSQLiteStore: %v", err)
	}
	if got := s.LoadBest(); got != 0 {
		t.Fatalf("fresh store LoadBest=%d, want 0", got)
	}
	if err := s.SaveBest(85); err != nil {
		t.Fatalf("SaveBest: %v", err)
	}
	if err := s.SaveBest(120); err != nil {
		t.Fatalf("SaveBest (upsert): %v", err)
	}
	if err := s.Close(); err != nil {
		t.Fatalf("Close: %v", err)
	}

	// Reopen: the value must have hit the disk.
	s2, err := OpenSQLiteStore(path)
	if err != nil {
		t.Fatalf("reopen: %v", err)
	}
	defer s2.Close()
	if got := s2.LoadBest(); got != 120 {
		t.Fatalf("LoadBest after reopen=%d, want 120", got)
	}
}

func TestMemStore(t *testing.T) {
	m := &memStore{}
	if m.LoadBest() != 0 {
		t.Fatal("fresh memStore not zero")
	}
	if err := m.SaveBest(30); err != nil {
		t.Fatalf("SaveBest: %v", err)
	}
	if m.LoadBest() != 30 {
		t.Fatalf("LoadBest=%d, want 30", m.LoadBest())
	}
}

func TestSessionPersistsNewBest(t *testing.T) {
	store := &memStore{best: 40}
	gs := NewGameSession(9, store)
	if gs.BestScore != 40 {
		t.Fatalf("BestScore=%d, want 40", gs.BestScore)
	}

	newBests := 0
	gs.Events.Subscribe(EventNewBest, func(e Event) { newBests++ })

	gs.StartSnake()
	gs.Sim.Score = 90
	gs.Sim.gameOver(EndHit)

	if gs.State != StateSnakeOver {
		t.Fatalf("state=%v, want StateSnakeOver", gs.State)
	}
	if gs.BestScore != 90 || store.LoadBest() != 90 {
		t.Fatalf("best=%d stored=%d, want 90/90", gs.BestScore, store.LoadBest())
	}
	if newBests != 1 {
		t.Fatalf("new-best events=%d, want 1", newBests)
	}

	// A worse run must not touch the record.
	gs.StartSnake()
	gs.Sim.Score = 10
	gs.Sim.gameOver(EndHit)
	if gs.BestScore != 90 || store.LoadBest() != 90 {
		t.Fatalf("best regressed: %d/%d", gs.BestScore, store.LoadBest())
	}
}
