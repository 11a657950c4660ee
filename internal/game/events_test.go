package game

import "testing"

func TestEventBusFanOut(t *testing.T) {
	eb := NewEventBus()
	var a, b, other int
	eb.Subscribe(EventFood, func(e Event) { a = e.Data })
	eb.Subscribe(EventFood, func(e Event) { b = e.Data })
	eb.Subscribe(EventPoison, func(Event) { other++ })

	eb.Emit(Event{Type: EventFood, Data: 15})

	if a != 15 || b != 15 {
		t.Fatalf("handlers got %d/%d, want 15/15", a, b)
	}
	if other != 0 {
		t.Fatal("unrelated handler fired")
	}
}

func TestNilBusEmitIsSafe(t *testing.T) {
	var eb *EventBus
	eb.Emit(Event{Type: EventGameOver}) // must not panic
}
