package machine

// TraceQueue is a bounded FIFO of diagnostic lines. Once full the oldest
// line is dropped for every new one.
type TraceQueue struct {
	items   []string
	size    int // current number of elements in the queue
	maxSize int
}

// NewTraceQueue creates a new empty queue holding at most maxSize lines
func NewTraceQueue(maxSize int) *TraceQueue {
	if maxSize < 1 {
		maxSize = 1
	}
	return &TraceQueue{maxSize: maxSize}
}

// Enqueue adds an item to the rear of the queue.
func (q *TraceQueue) Enqueue(item string) {
	if q.size == q.maxSize {
		q.Dequeue()
	}
	q.items = append(q.items, item)
	q.size++
}

// Dequeue removes and returns the item from the front of the queue.
func (q *TraceQueue) Dequeue() (string, bool) {
	if q.size == 0 {
		return "", false
	}
	front := q.items[0]
	q.items = q.items[1:]
	q.size--
	return front, true
}

// IsEmpty checks if the queue is empty.
func (q *TraceQueue) IsEmpty() bool {
	return q.size == 0
}

// Items returns a copy of the queued lines, oldest first
func (q *TraceQueue) Items() []string {
	out := make([]string, len(q.items))
	copy(out, q.items)
	return out
}
