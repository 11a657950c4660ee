package game

import "testing"

func TestSessionStateTransitions(t *testing.T) {
	gs := NewGameSession(1, &memStore{})
	if gs.State != StateMenu {
		t.Fatalf("initial state=%v, want StateMenu", gs.State)
	}

	gs.OpenLock()
	if gs.State != StateLock || gs.ActiveRow != 0 {
		t.Fatalf("after OpenLock: state=%v row=%d", gs.State, gs.ActiveRow)
	}
	gs.BackToMenu()

	gs.OpenSnake()
	if gs.State != StateSnakeIdle {
		t.Fatalf("after OpenSnake: state=%v", gs.State)
	}
	if gs.Sim.Phase != PhaseIdle {
		t.Fatal("attract screen must not start the clock")
	}

	gs.StartSnake()
	if gs.State != StateSnakeRunning || gs.Sim.Phase != PhaseRunning {
		t.Fatalf("after StartSnake: state=%v phase=%v", gs.State, gs.Sim.Phase)
	}

	gs.BackToMenu()
	if gs.State != StateMenu || gs.Sim.Phase != PhaseIdle {
		t.Fatalf("abandoning a run: state=%v phase=%v", gs.State, gs.Sim.Phase)
	}
}

func TestOpenLockRerollsPuzzle(t *testing.T) {
	gs := NewGameSession(1, &memStore{})
	gs.OpenLock()
	gs.Lock.SetPosition(0, 60)
	old := gs.Lock.Target

	gs.BackToMenu()
	gs.OpenLock()

	if gs.Lock.Current[0] != 0 {
		t.Fatal("slider state survived re-entry")
	}
	if gs.Lock.Target == old {
		t.Fatal("re-entering the lock must reroll the targets")
	}
}

func TestSelectRowClamps(t *testing.T) {
	gs := NewGameSession(1, &memStore{})
	gs.OpenLock()

	gs.SelectRow(-3)
	if gs.ActiveRow != 0 {
		t.Fatalf("row=%d, want 0", gs.ActiveRow)
	}
	for i := 0; i < LockSliders+5; i++ {
		gs.SelectRow(1)
	}
	if gs.ActiveRow != LockSliders-1 {
		t.Fatalf("row=%d, want %d", gs.ActiveRow, LockSliders-1)
	}
}

func TestTapThenHoldRepeatIsForwardOnly(t *testing.T) {
	gs := NewGameSession(1, &memStore{})
	gs.OpenLock()

	gs.TapLock(1)
	if gs.Lock.Current[0] != 1 {
		t.Fatalf("tap moved to %d, want 1", gs.Lock.Current[0])
	}

	// Frames inside the post-tap delay must not move the slider at all, in
	// either direction.
	for i := 0; i < 3; i++ {
		gs.NudgeLock(1, 0.016)
		if gs.Lock.Current[0] != 1 {
			t.Fatalf("slider moved to %d during the hold delay", gs.Lock.Current[0])
		}
	}

	// Hold long enough and the repeat kicks in.
	for i := 0; i < 60; i++ {
		gs.NudgeLock(1, 0.016)
	}
	if gs.Lock.Current[0] <= 1 {
		t.Fatalf("slider=%d, hold repeat never engaged", gs.Lock.Current[0])
	}
}

func TestHoldRepeatRateIsFrameRateIndependent(t *testing.T) {
	run := func(frameDt float64) int {
		gs := NewGameSession(1, &memStore{})
		gs.OpenLock()
		elapsed := 0.0
		for elapsed < 1.0 {
			gs.NudgeLock(1, frameDt)
			elapsed += frameDt
		}
		return gs.Lock.Current[0]
	}

	at60 := run(1.0 / 60.0)
	at240 := run(1.0 / 240.0)
	if diff := abs(at60 - at240); diff > 2 {
		t.Fatalf("travel differs with frame rate: %d vs %d", at60, at240)
	}
}
