package core

import "sync"

// EventKind enumerates the platform inputs a mode can react to.
type EventKind uint8

const (
	EventKeyDown EventKind = iota
	EventKeyUp
	EventPointerMove
	EventSelectTarget
)

// Key identifies one of the four movement directions.
type Key uint8

const (
	KeyForward Key = iota
	KeyBackward
	KeyLeft
	KeyRight
)

// Event is a single input delivered through the queue. X and Y carry
// normalized device coordinates for pointer moves; Index carries the target
// for selections.
type Event struct {
	Kind  EventKind
	Key   Key
	X, Y  float32
	Index int
}

// DefaultQueueCapacity bounds the number of events buffered between frames.
const DefaultQueueCapacity = 256

// InputQueue is a bounded FIFO fed by asynchronous platform callbacks and
// drained once per frame by the host. When full, the oldest event is dropped.
type InputQueue struct {
	mu      sync.Mutex
	buf     []Event
	head    int
	size    int
	dropped uint64

	nextID      int
	subscribers []subscriber
	onDrop      func()
}

type subscriber struct {
	id int
	fn func(Event)
}

// NewInputQueue allocates a queue holding at most capacity events.
func NewInputQueue(capacity int) *InputQueue {
	if capacity <= 0 {
		capacity = DefaultQueueCapacity
	}
	return &InputQueue{buf: make([]Event, capacity)}
}

// OnDrop registers a callback invoked whenever an event is discarded.
func (q *InputQueue) OnDrop(fn func()) {
	q.mu.Lock()
	q.onDrop = fn
	q.mu.Unlock()
}

// Push enqueues an event. It is safe to call from any goroutine.
func (q *InputQueue) Push(ev Event) {
	q.mu.Lock()
	var dropped func()
	if q.size == len(q.buf) {
		q.head = (q.head + 1) % len(q.buf)
		q.size--
		q.dropped++
		dropped = q.onDrop
	}
	q.buf[(q.head+q.size)%len(q.buf)] = ev
	q.size++
	q.mu.Unlock()
	if dropped != nil {
		dropped()
	}
}

// Len reports the number of pending events.
func (q *InputQueue) Len() int {
	q.mu.Lock()
	defer q.mu.Unlock()
	return q.size
}

// Dropped reports how many events were discarded because the queue was full.
func (q *InputQueue) Dropped() uint64 {
	q.mu.Lock()
	defer q.mu.Unlock()
	return q.dropped
}

// Subscribe registers fn to receive drained events. The returned function
// detaches the subscriber and is safe to call more than once.
func (q *InputQueue) Subscribe(fn func(Event)) func() {
	q.mu.Lock()
	q.nextID++
	id := q.nextID
	q.subscribers = append(q.subscribers, subscriber{id: id, fn: fn})
	q.mu.Unlock()

	return func() {
		q.mu.Lock()
		defer q.mu.Unlock()
		for i, s := range q.subscribers {
			if s.id == id {
				q.subscribers = append(q.subscribers[:i], q.subscribers[i+1:]...)
				return
			}
		}
	}
}

// Drain removes all pending events and delivers them, in arrival order, to
// every subscriber. It returns the number of events drained.
func (q *InputQueue) Drain() int {
	q.mu.Lock()
	events := make([]Event, q.size)
	for i := 0; i < q.size; i++ {
		events[i] = q.buf[(q.head+i)%len(q.buf)]
	}
	q.head = 0
	q.size = 0
	subs := append([]subscriber(nil), q.subscribers...)
	q.mu.Unlock()

	for _, ev := range events {
		for _, s := range subs {
			s.fn(ev)
		}
	}
	return len(events)
}
