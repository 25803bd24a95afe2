package canvas

import "sync"

// PointerEvent is a pointer event in canvas coordinates, as queued for
// delivery on the thread that owns the Canvas.
type PointerEvent struct {
	Type      EventType
	PointerID int
	X, Y      float64
}

// EventQueue is a FIFO of pointer events. Post may be called from any
// goroutine; Drain must be called from the goroutine that owns the Canvas.
type EventQueue struct {
	mu      sync.Mutex
	pending []PointerEvent
	spare   []PointerEvent // drained batch buffer, reused between Drains
}

// NewEventQueue creates an empty queue.
func NewEventQueue() *EventQueue {
	return &EventQueue{}
}

// Post appends an event.
func (q *EventQueue) Post(ev PointerEvent) {
	q.mu.Lock()
	q.pending = append(q.pending, ev)
	q.mu.Unlock()
}

// PostPress queues a press at (x, y).
func (q *EventQueue) PostPress(id int, x, y float64) {
	q.Post(PointerEvent{Type: EventPointerPress, PointerID: id, X: x, Y: y})
}

// PostMove queues a move to (x, y).
func (q *EventQueue) PostMove(id int, x, y float64) {
	q.Post(PointerEvent{Type: EventPointerMove, PointerID: id, X: x, Y: y})
}

// PostRelease queues a release at (x, y).
func (q *EventQueue) PostRelease(id int, x, y float64) {
	q.Post(PointerEvent{Type: EventPointerRelease, PointerID: id, X: x, Y: y})
}

// PostCancel queues a cancel at (x, y).
func (q *EventQueue) PostCancel(id int, x, y float64) {
	q.Post(PointerEvent{Type: EventPointerCancel, PointerID: id, X: x, Y: y})
}

// Len returns the number of queued events.
func (q *EventQueue) Len() int {
	q.mu.Lock()
	defer q.mu.Unlock()
	return len(q.pending)
}

// Drain delivers every event queued so far to c in FIFO order and returns
// how many were delivered. Events posted while draining (for example by an
// element hook) are left for the next Drain.
func (q *EventQueue) Drain(c *Canvas) int {
	q.mu.Lock()
	batch := q.pending
	q.pending = q.spare[:0]
	q.mu.Unlock()

	for i := range batch {
		c.Dispatch(batch[i])
	}
	q.spare = batch[:0]
	return len(batch)
}
