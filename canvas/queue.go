package canvas

import (
	"sync"
)

// queue is an unbounded FIFO message queue. Producers never block on
// consumer progress: push only takes the mutex long enough to append.
// The consumer blocks in pop when empty and drains with tryPop.
type queue struct {
	mu    sync.Mutex
	cond  *sync.Cond
	items []message
}

func newQueue() *queue {
	q := &queue{items: make([]message, 0, 64)}
	q.cond = sync.NewCond(&q.mu)
	return q
}

// push appends a message and wakes the consumer.
func (q *queue) push(m message) {
	q.mu.Lock()
	q.items = append(q.items, m)
	q.mu.Unlock()
	q.cond.Signal()
}

// pop removes and returns the oldest message, blocking while the
// queue is empty.
func (q *queue) pop() message {
	q.mu.Lock()
	defer q.mu.Unlock()

	for len(q.items) == 0 {
		q.cond.Wait()
	}
	return q.shift()
}

// tryPop removes and returns the oldest message without blocking.
func (q *queue) tryPop() (message, bool) {
	q.mu.Lock()
	defer q.mu.Unlock()

	if len(q.items) == 0 {
		return message{}, false
	}
	return q.shift(), true
}

// shift removes the head item. Caller holds the lock.
func (q *queue) shift() message {
	m := q.items[0]
	q.items = q.items[1:]
	if len(q.items) == 0 {
		// Reset so the backing array does not pin old messages.
		q.items = q.items[:0:cap(q.items)]
	}
	return m
}

// len returns the number of queued messages.
func (q *queue) len() int {
	q.mu.Lock()
	defer q.mu.Unlock()
	return len(q.items)
}
