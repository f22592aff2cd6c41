package ecs

// Event is a generic ECS event payload.
type Event struct {
	Type string
	Data any
}

const (
	EventCollisionBegin = "collision_begin"
	EventSensorBegin    = "sensor_begin"
)

// CollisionEvent is emitted by the physics step when two shapes start
// touching. A and B are the collider entities, not their body owners.
type CollisionEvent struct {
	A Entity
	B Entity
}

// EventQueue is a simple FIFO queue. Systems drain the events they care
// about; the scheduler flushes whatever is left at the end of a tick.
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

// Take removes and returns the events of the given type, keeping the rest in
// order.
func (q *EventQueue) Take(eventType string) []Event {
	if q == nil || len(q.items) == 0 {
		return nil
	}
	var out []Event
	kept := q.items[:0]
	for _, evt := range q.items {
		if evt.Type == eventType {
			out = append(out, evt)
			continue
		}
		kept = append(kept, evt)
	}
	q.items = kept
	return out
}

// Len returns the number of pending events.
func (q *EventQueue) Len() int {
	if q == nil {
		return 0
	}
	return len(q.items)
}

func (q *EventQueue) flush() {
	if q == nil {
		return
	}
	q.items = nil
}
