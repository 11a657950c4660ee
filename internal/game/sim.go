package game

import "time"

// Cell is a grid position, 0 <= X < GridW, 0 <= Y < GridH.
type Cell struct {
	X, Y int
}

type Dir int

const (
	DirUp Dir = iota
	DirDown
	DirLeft
	DirRight
)

func (d Dir) Opposite() Dir {
	switch d {
	case DirUp:
		return DirDown
	case DirDown:
		return DirUp
	case DirLeft:
		return DirRight
	default:
		return DirLeft
	}
}

// Vector returns the per-tick cell delta for the direction.
func (d Dir) Vector() (int, int) {
	switch d {
	case DirUp:
		return 0, -1
	case DirDown:
		return 0, 1
	case DirLeft:
		return -1, 0
	default:
		return 1, 0
	}
}

type Phase int

const (
	PhaseIdle    Phase = iota
	PhaseRunning       // frame loop drives Advance
	PhaseOver          // frozen until Start
)

type EndReason int

const (
	EndNone    EndReason = iota
	EndHit               // wall, obstacle or own body
	EndTimeout           // countdown reached zero
)

// Sim owns all snake simulation state. It is mutated only by Start, Steer
// and Advance/Tick; rendering reads it between frames. No platform calls —
// side effects go through the event bus.
type Sim struct {
	Phase     Phase
	EndReason EndReason

	body      []Cell // head first
	dir       Dir
	pending   Dir
	obstacles map[Cell]bool
	food      Cell
	poison    *Cell

	Score        int
	TickInterval time.Duration
	TimeLeft     int // seconds

	ticks     int
	tickAcc   float64 // seconds accumulated toward the next tick
	secondAcc float64 // wall-clock accumulator for the countdown

	rng    *Rand
	events *EventBus
}

func NewSim(seed uint64, events *EventBus) *Sim {
	return &Sim{
		Phase:  PhaseIdle,
		rng:    NewRand(seed),
		events: events,
	}
}

// startObstacles returns the fixed starting pattern: four notches inset from
// the corners, clear of the spawn row.
func startObstacles() []Cell {
	return []Cell{
		{5, 4}, {6, 4}, {5, 5},
		{22, 4}, {21, 4}, {22, 5},
		{5, 15}, {6, 15}, {5, 14},
		{22, 15}, {21, 15}, {22, 14},
	}
}

// Start (re)initializes the whole simulation atomically and enters
// PhaseRunning. Restart from any state goes through here.
func (s *Sim) Start() {
	cx, cy := GridW/2, GridH/2
	s.body = []Cell{{cx, cy}, {cx - 1, cy}, {cx - 2, cy}}
	s.dir = DirRight
	s.pending = DirRight
	s.obstacles = make(map[Cell]bool, MaxObstacles)
	for _, c := range startObstacles() {
		s.obstacles[c] = true
	}
	s.poison = nil
	s.food = Cell{-1, -1}
	s.food = s.randomEmptyCell()
	s.Score = 0
	s.TickInterval = TickStart
	s.TimeLeft = TimeLimit
	s.ticks = 0
	s.tickAcc = 0
	s.secondAcc = 0
	s.EndReason = EndNone
	s.Phase = PhaseRunning
}

// Steer buffers the desired direction. It is consumed at the next tick and
// ignored there if it would reverse the snake onto itself.
func (s *Sim) Steer(d Dir) {
	s.pending = d
}

// Advance is called once per rendered frame with the wall-clock delta. It
// throttles Tick to the current interval (many frames may pass between
// ticks) and runs the once-per-second countdown independently of ticks.
func (s *Sim) Advance(dt float64) {
	if s.Phase != PhaseRunning {
		return
	}

	s.tickAcc += dt
	for s.Phase == PhaseRunning && s.tickAcc >= s.TickInterval.Seconds() {
		s.tickAcc -= s.TickInterval.Seconds()
		s.Tick()
	}
	if s.Phase != PhaseRunning {
		return
	}

	s.secondAcc += dt
	for s.secondAcc >= 1 {
		s.secondAcc--
		s.TimeLeft--
		if s.TimeLeft <= 0 {
			s.TimeLeft = 0
			s.gameOver(EndTimeout)
			return
		}
		if s.TimeLeft <= 5 {
			s.events.Emit(Event{Type: EventCountdown, Data: s.TimeLeft})
		}
	}
}

// Tick advances the simulation by one step.
func (s *Sim) Tick() {
	if s.Phase != PhaseRunning {
		return
	}

	if s.pending != s.dir.Opposite() {
		s.dir = s.pending
	}

	dx, dy := s.dir.Vector()
	head := Cell{s.body[0].X + dx, s.body[0].Y + dy}

	// Failure precedence: bounds, obstacle, body. All terminal; the previous
	// body is left untouched.
	if head.X < 0 || head.X >= GridW || head.Y < 0 || head.Y >= GridH {
		s.gameOver(EndHit)
		return
	}
	if s.obstacles[head] {
		s.gameOver(EndHit)
		return
	}
	for _, c := range s.body {
		if c == head {
			s.gameOver(EndHit)
			return
		}
	}

	s.body = append([]Cell{head}, s.body...)

	grew := false
	switch {
	case head == s.food:
		s.Score += FoodScore
		grew = true
		s.food = s.randomEmptyCell()
		s.speedUp(FoodSpeedup)
		s.events.Emit(Event{Type: EventFood, Data: s.Score})
	case s.poison != nil && head == *s.poison:
		s.Score -= PoisonPenalty
		s.poison = nil
		s.speedUp(PoisonSpeedup)
		s.events.Emit(Event{Type: EventPoison, Data: s.Score})
	}

	if !grew {
		s.body = s.body[:len(s.body)-1]
	}

	s.ticks++
	if s.ticks%ObstacleEvery == 0 && len(s.obstacles) < MaxObstacles {
		s.obstacles[s.randomEmptyCell()] = true
	}
	if s.ticks%PoisonEvery == 0 {
		if s.rng.Float64() < PoisonChance {
			c := s.randomEmptyCell()
			s.poison = &c
		} else {
			s.poison = nil
		}
	}
}

func (s *Sim) speedUp(step time.Duration) {
	s.TickInterval -= step
	if s.TickInterval < TickMin {
		s.TickInterval = TickMin
	}
}

func (s *Sim) gameOver(reason EndReason) {
	s.Phase = PhaseOver
	s.EndReason = reason
	s.events.Emit(Event{Type: EventGameOver, Data: s.Score})
}

func (s *Sim) occupied(c Cell) bool {
	if s.obstacles[c] || s.food == c {
		return true
	}
	if s.poison != nil && *s.poison == c {
		return true
	}
	for _, b := range s.body {
		if b == c {
			return true
		}
	}
	return false
}

// randomEmptyCell rejection-samples uniform cells until a free one comes up.
// No fallback: the obstacle cap keeps occupancy far below the grid size.
func (s *Sim) randomEmptyCell() Cell {
	for {
		c := Cell{s.rng.Intn(GridW), s.rng.Intn(GridH)}
		if !s.occupied(c) {
			return c
		}
	}
}

// UnlockCode returns the reveal string for the current score.
func (s *Sim) UnlockCode() string {
	if s.Score >= CodeThreshold {
		return SnakeCode
	}
	return CodePlaceholder
}

// TicksPerSecond is the speed readout shown on the HUD.
func (s *Sim) TicksPerSecond() float64 {
	return 1.0 / s.TickInterval.Seconds()
}

func (s *Sim) Head() Cell     { return s.body[0] }
func (s *Sim) Body() []Cell   { return s.body }
func (s *Sim) Food() Cell     { return s.food }
func (s *Sim) Length() int    { return len(s.body) }
func (s *Sim) Ticks() int     { return s.ticks }
func (s *Sim) Direction() Dir { return s.dir }

func (s *Sim) Poison() (Cell, bool) {
	if s.poison == nil {
		return Cell{}, false
	}
	return *s.poison, true
}

func (s *Sim) Obstacles() map[Cell]bool { return s.obstacles }
