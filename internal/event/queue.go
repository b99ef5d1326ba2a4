package event

// Queue is an append-only list of events for the current frame.
type Queue struct {
	events []Event
}

// NewQueue creates an empty queue.
func NewQueue() *Queue {
	return &Queue{events: make([]Event, 0, 32)}
}

// Push appends an event.
func (q *Queue) Push(e Event) {
	q.events = append(q.events, e)
}

// Len returns the number of queued events.
func (q *Queue) Len() int {
	return len(q.events)
}

// Events returns the queued events. The slice is only valid until the next
// Push or Clear.
func (q *Queue) Events() []Event {
	return q.events
}

// Drain delivers every event in insertion order, including events pushed by
// handle while draining, then clears the queue.
func (q *Queue) Drain(handle func(Event)) {
	for i := 0; i < len(q.events); i++ {
		handle(q.events[i])
	}
	q.Clear()
}

// Clear drops all events.
func (q *Queue) Clear() {
	for i := range q.events {
		q.events[i] = nil
	}
	q.events = q.events[:0]
}
