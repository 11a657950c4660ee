package game

// LockPuzzle is the slider lock mini-game: eight hidden target positions,
// eight player-controlled sliders, solved when every slider sits within
// LockTolerance of its target. Pure state, no platform calls.
type LockPuzzle struct {
	Target   [LockSliders]int // each in [0,LockMax)
	Current  [LockSliders]int
	Unlocked bool

	rng    *Rand
	events *EventBus
}

func NewLockPuzzle(seed uint64, events *EventBus) *LockPuzzle {
	p := &LockPuzzle{rng: NewRand(seed), events: events}
	p.roll()
	return p
}

func (p *LockPuzzle) roll() {
	for i := range p.Target {
		p.Target[i] = p.rng.Intn(LockMax)
		p.Current[i] = 0
	}
	p.Unlocked = false
}

// SetPosition moves one slider. The value is clamped to the track, matching
// the target range [0,LockMax). Returns true exactly on the false-to-true
// unlock transition.
func (p *LockPuzzle) SetPosition(i, v int) bool {
	if i < 0 || i >= LockSliders {
		return false
	}
	p.Current[i] = clamp(v, 0, LockMax-1)
	if !p.Unlocked && p.IsUnlocked() {
		p.Unlocked = true
		p.events.Emit(Event{Type: EventUnlock})
		return true
	}
	return false
}

// Nudge moves slider i by delta steps, clamped to the track.
func (p *LockPuzzle) Nudge(i, delta int) bool {
	if i < 0 || i >= LockSliders {
		return false
	}
	return p.SetPosition(i, p.Current[i]+delta)
}

// IsUnlocked reports whether every slider is within tolerance. Pure; it does
// not latch (Unlocked holds the latched value).
func (p *LockPuzzle) IsUnlocked() bool {
	for i := range p.Target {
		if abs(p.Current[i]-p.Target[i]) > LockTolerance {
			return false
		}
	}
	return true
}

// Reset rerolls the targets, zeroes the sliders and clears the latch.
func (p *LockPuzzle) Reset() {
	p.roll()
}

// Proximity returns how close slider i is to its target, 1 at dead-on and 0
// at half a track away or more. Feedback for row tinting only; it never
// exposes the target position itself.
func (p *LockPuzzle) Proximity(i int) float64 {
	if i < 0 || i >= LockSliders {
		return 0
	}
	d := float64(abs(p.Current[i] - p.Target[i]))
	return clampF(1.0-d/(LockMax/2), 0, 1)
}
