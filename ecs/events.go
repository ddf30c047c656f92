package ecs

// EventKind identifies what happened to an entity.
type EventKind string

const (
	EventPlaced    EventKind = "placed"
	EventSelected  EventKind = "selected"
	EventDestroyed EventKind = "destroyed"
	EventPlanesOff EventKind = "planes_disabled"
)

// Event is a world event payload.
type Event struct {
	Kind   EventKind
	Entity Entity
	Data   string
}

// EventQueue is a simple FIFO queue.
type EventQueue struct {
	items []Event
}

// Push adds an event.
func (q *EventQueue) Push(evt Event) {
	if q == nil {
		return
	}
	q.items = append(q.items, evt)
}

// Drain returns all events and clears the queue.
func (q *EventQueue) Drain() []Event {
	if q == nil || len(q.items) == 0 {
		return nil
	}
	out := q.items
	q.items = nil
	return out
}

// Len returns the number of queued events.
func (q *EventQueue) Len() int {
	if q == nil {
		return 0
	}
	return len(q.items)
}
