package game

import (
	"fmt"
	"os"
)

type GameState int

const (
	StateMenu         GameState = iota
	StateLock                   // slider lock puzzle
	StateSnakeIdle              // snake attract screen
	StateSnakeRunning           // simulation advancing
	StateSnakeOver              // frozen board, code shown
)

// GameSession ties the two mini-games to the menu, the best-score store and
// the event bus. It owns no platform resources; RunDesktop subscribes audio
// on top of it.
type GameSession struct {
	State  GameState
	Sim    *Sim
	Lock   *LockPuzzle
	Events *EventBus

	BestScore int
	store     ScoreStore

	// Lock screen cursor.
	ActiveRow int
	repeatAcc float64
}

func NewGameSession(seed uint64, store ScoreStore) *GameSession {
	events := NewEventBus()
	gs := &GameSession{
		State:  StateMenu,
		Sim:    NewSim(seed, events),
		Lock:   NewLockPuzzle(seed^0x10C4, events),
		Events: events,
		store:  store,
	}
	gs.BestScore = store.LoadBest()

	events.Subscribe(EventGameOver, func(e Event) {
		gs.State = StateSnakeOver
		if e.Data > gs.BestScore {
			gs.BestScore = e.Data
			if err := store.SaveBest(gs.BestScore); err != nil {
				fmt.Fprintf(os.Stderr, "save best score: %v\n", err)
			}
			events.Emit(Event{Type: EventNewBest, Data: gs.BestScore})
		}
	})
	return gs
}

// OpenLock enters the lock puzzle with a fresh board.
func (gs *GameSession) OpenLock() {
	gs.Lock.Reset()
	gs.ActiveRow = 0
	gs.repeatAcc = 0
	gs.State = StateLock
	gs.Events.Emit(Event{Type: EventMenuSelect})
}

// OpenSnake enters the snake attract screen without starting the clock.
func (gs *GameSession) OpenSnake() {
	gs.State = StateSnakeIdle
	gs.Events.Emit(Event{Type: EventMenuSelect})
}

// StartSnake (re)starts the simulation; valid from idle and game over.
func (gs *GameSession) StartSnake() {
	gs.Sim.Start()
	gs.State = StateSnakeRunning
	gs.Events.Emit(Event{Type: EventMenuSelect})
}

// BackToMenu leaves either mini-game. A running snake game is abandoned
// without touching the best score.
func (gs *GameSession) BackToMenu() {
	if gs.State == StateSnakeRunning {
		gs.Sim.Phase = PhaseIdle
	}
	gs.State = StateMenu
}

// NudgeLock applies held-key slider movement with a fixed repeat rate so the
// travel speed is frame-rate independent.
func (gs *GameSession) NudgeLock(dirSign int, dt float64) {
	gs.repeatAcc += dt * SliderRepeat
	steps := int(gs.repeatAcc)
	if steps <= 0 { // still inside the post-tap delay
		return
	}
	gs.repeatAcc -= float64(steps)
	gs.Lock.Nudge(gs.ActiveRow, dirSign*steps)
}

// TapLock is the initial key press: one immediate step, then a short delay
// before hold-repeat takes over.
func (gs *GameSession) TapLock(dirSign int) {
	gs.Lock.Nudge(gs.ActiveRow, dirSign)
	gs.repeatAcc = -2
}

// SelectRow moves the lock cursor, clamped to the board.
func (gs *GameSession) SelectRow(delta int) {
	gs.ActiveRow = clamp(gs.ActiveRow+delta, 0, LockSliders-1)
}
