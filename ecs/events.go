package ecs

// Event is a generic ECS event payload. Events live for one tick: the
// scheduler clears the queue before running the next tick's systems, so hosts
// can inspect what happened after Tick returns.
type Event struct {
	Type string
	Data any
}

const (
	EventContact    = "contact"
	EventPossession = "possession"
	EventShot       = "shot"
	EventGoal       = "goal"
	EventMatchOver  = "match_over"
)

// ContactKind identifies contact event types reported by the physics layer.
type ContactKind string

const (
	// ContactOverlap is an actor possession sensor touching the ball.
	ContactOverlap ContactKind = "overlap"
	// ContactGoal is the ball touching a goal zone.
	ContactGoal ContactKind = "goal"
)

// ContactEvent is published every tick for every pair still in contact.
// Subject is the actor or goal zone, Ball the ball entity.
type ContactEvent struct {
	Kind    ContactKind
	Subject Entity
	Ball    Entity
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

// Items returns the queued events without clearing them.
func (q *EventQueue) Items() []Event {
	if q == nil {
		return nil
	}
	return q.items
}

// Contacts returns the queued contact events of the given kind.
func (q *EventQueue) Contacts(kind ContactKind) []ContactEvent {
	if q == nil {
		return nil
	}
	var out []ContactEvent
	for _, evt := range q.items {
		if evt.Type != EventContact {
			continue
		}
		c, ok := evt.Data.(ContactEvent)
		if !ok || c.Kind != kind {
			continue
		}
		out = append(out, c)
	}
	return out
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

func (q *EventQueue) flush() {
	if q == nil {
		return
	}
	q.items = nil
}
