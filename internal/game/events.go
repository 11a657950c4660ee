package game

type EventType int

const (
	EventFood EventType = iota
	EventPoison
	EventGameOver
	EventUnlock
	EventMenuSelect
	EventNewBest
	EventCountdown
)

type Event struct {
	Type EventType
	Data int // Generic payload (score, seconds left, ...).
}

type EventHandler func(Event)

// EventBus decouples the simulation cores from audio and persistence:
// sim.go and lock.go emit, the session wires the listeners.
type EventBus struct {
	handlers map[EventType][]EventHandler
}

func NewEventBus() *EventBus {
	return &EventBus{
		handlers: make(map[EventType][]EventHandler),
	}
}

func (eb *EventBus) Subscribe(t EventType, fn EventHandler) {
	eb.handlers[t] = append(eb.handlers[t], fn)
}

func (eb *EventBus) Emit(e Event) {
	if eb == nil {
		return
	}
	for _, fn := range eb.handlers[e.Type] {
		fn(e)
	}
}
