package game

import "testing"

func TestIsUnlockedExactlyWithinTolerance(t *testing.T) {
	p := NewLockPuzzle(42, nil)
	for i := range p.Target {
		p.Target[i] = 50
	}

	for off := -LockTolerance - 2; off <= LockTolerance+2; off++ {
		for i := range p.Current {
			p.Current[i] = 50
		}
		p.Current[3] = 50 + off

		want := abs(off) <= LockTolerance
		if got := p.IsUnlocked(); got != want {
			t.Fatalf("offset %d: IsUnlocked=%v, want %v", off, got, want)
		}
	}
}

func TestUnlockTransitionFiresOnce(t *testing.T) {
	events := NewEventBus()
	unlocks := 0
	events.Subscribe(EventUnlock, func(Event) { unlocks++ })

	p := NewLockPuzzle(42, events)
	for i := 0; i < LockSliders-1; i++ {
		if p.SetPosition(i, p.Target[i]) {
			t.Fatalf("unlocked with only %d sliders placed", i+1)
		}
	}
	if !p.SetPosition(LockSliders-1, p.Target[LockSliders-1]) {
		t.Fatal("placing the last slider did not report the unlock")
	}
	if !p.Unlocked {
		t.Fatal("latch not set")
	}

	// Further moves inside tolerance must not re-fire.
	if p.SetPosition(0, p.Target[0]+1) {
		t.Fatal("unlock reported twice")
	}
	if unlocks != 1 {
		t.Fatalf("unlock events=%d, want 1", unlocks)
	}
}

func TestLatchHoldsWhenSliderDrifts(t *testing.T) {
	p := NewLockPuzzle(42, nil)
	for i := range p.Target {
		p.SetPosition(i, p.Target[i])
	}
	p.SetPosition(0, clamp(p.Target[0]+LockTolerance+10, 0, LockMax-1))

	if p.IsUnlocked() {
		t.Fatal("IsUnlocked should be false after drifting out of tolerance")
	}
	if !p.Unlocked {
		t.Fatal("latch must hold once unlocked")
	}
}

func TestNudgeClampsToTrack(t *testing.T) {
	p := NewLockPuzzle(1, nil)
	p.Nudge(0, -500)
	if p.Current[0] != 0 {
		t.Fatalf("Current[0]=%d, want 0", p.Current[0])
	}
	p.Nudge(0, 500)
	if p.Current[0] != LockMax-1 {
		t.Fatalf("Current[0]=%d, want %d", p.Current[0], LockMax-1)
	}
	if p.Nudge(-1, 1) || p.Nudge(LockSliders, 1) {
		t.Fatal("out-of-range slider index must be a no-op")
	}
}

func TestResetRerollsAndClearsLatch(t *testing.T) {
	p := NewLockPuzzle(42, nil)
	for i := range p.Target {
		p.SetPosition(i, p.Target[i])
	}
	old := p.Target

	p.Reset()

	if p.Unlocked {
		t.Fatal("latch survived reset")
	}
	for i, v := range p.Current {
		if v != 0 {
			t.Fatalf("Current[%d]=%d after reset, want 0", i, v)
		}
	}
	if p.Target == old {
		t.Fatal("targets did not reroll")
	}
	for i, v := range p.Target {
		if v < 0 || v >= LockMax {
			t.Fatalf("Target[%d]=%d out of range", i, v)
		}
	}
}

func TestProximityBoundsAndMonotonicity(t *testing.T) {
	p := NewLockPuzzle(1, nil)
	p.Target[0] = 50

	p.Current[0] = 50
	if got := p.Proximity(0); got != 1 {
		t.Fatalf("dead-on proximity=%v, want 1", got)
	}
	p.Current[0] = 0
	if got := p.Proximity(0); got != 0 {
		t.Fatalf("half-track proximity=%v, want 0", got)
	}

	prev := 2.0
	for d := 0; d <= 50; d += 5 {
		p.Current[0] = 50 - d
		got := p.Proximity(0)
		if got > prev {
			t.Fatalf("proximity rose with distance at d=%d: %v > %v", d, got, prev)
		}
		prev = got
	}
	if p.Proximity(-1) != 0 || p.Proximity(LockSliders) != 0 {
		t.Fatal("out-of-range proximity must be 0")
	}
}
