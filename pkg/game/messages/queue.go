// Package messages implements the bounded, self-expiring notice queue the
// snake talks through.
package messages

import "time"

// Message is a timed notice
type Message struct {
	Text      string
	Duration  time.Duration
	CreatedAt time.Time
}

// Expired reports whether the message has lived at least its duration at now
func (m Message) Expired(now time.Time) bool {
	return now.Sub(m.CreatedAt) >= m.Duration
}

// Queue is a capped FIFO of messages. Pushing past the cap evicts the oldest.
type Queue struct {
	items    []Message
	capacity int
}

// NewQueue creates a queue holding at most capacity messages
func NewQueue(capacity int) *Queue {
	if capacity < 1 {
		capacity = 1
	}
	return &Queue{
		items:    make([]Message, 0, capacity),
		capacity: capacity,
	}
}

// Push appends a message, evicting the oldest if full. Empty text is dropped.
func (q *Queue) Push(m Message) {
	if m.Text == "" {
		return
	}
	if len(q.items) >= q.capacity {
		copy(q.items, q.items[1:])
		q.items[len(q.items)-1] = m
		return
	}
	q.items = append(q.items, m)
}

// PushIfRoom appends m only when the queue is not full
func (q *Queue) PushIfRoom(m Message) bool {
	if !q.HasRoom() || m.Text == "" {
		return false
	}
	q.Push(m)
	return true
}

// Replace discards every queued message and leaves only m
func (q *Queue) Replace(m Message) {
	q.Clear()
	q.Push(m)
}

// Sweep drops every message expired at now, keeping the order of survivors.
// It returns the number removed.
func (q *Queue) Sweep(now time.Time) int {
	kept := q.items[:0]
	for _, m := range q.items {
		if !m.Expired(now) {
			kept = append(kept, m)
		}
	}
	removed := len(q.items) - len(kept)
	clear(q.items[len(kept):])
	q.items = kept
	return removed
}

// Clear empties the queue
func (q *Queue) Clear() {
	q.items = q.items[:0]
}

// HasRoom reports whether one more message fits without eviction
func (q *Queue) HasRoom() bool {
	return len(q.items) < q.capacity
}

// Len returns the number of queued messages
func (q *Queue) Len() int {
	return len(q.items)
}

// Cap returns the capacity
func (q *Queue) Cap() int {
	return q.capacity
}

// Items returns a copy of the queued messages, oldest first
func (q *Queue) Items() []Message {
	out := make([]Message, len(q.items))
	copy(out, q.items)
	return out
}

// Texts returns the queued message texts, oldest first
func (q *Queue) Texts() []string {
	out := make([]string, len(q.items))
	for i, m := range q.items {
		out[i] = m.Text
	}
	return out
}
