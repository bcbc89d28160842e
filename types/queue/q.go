// Package queue provides a generic FIFO queue.
package queue

// Q is a generic FIFO queue. Enqueue is O(1) amortized, Dequeue is O(1).
type Q[T any] struct {
	items []T
	head  int
}

// New creates a new Q
func New[T any]() *Q[T] {
	return &Q[T]{}
}

// Enqueue adds items to the end of the queue
func (q *Q[T]) Enqueue(items ...T) {
	q.items = append(q.items, items...)
}

// Dequeue removes and returns the first item from the queue
func (q *Q[T]) Dequeue() (T, bool) {
	if q.head >= len(q.items) {
		var zero T
		return zero, false
	}
	item := q.items[q.head]
	var zero T
	q.items[q.head] = zero
	q.head++
	if q.head == len(q.items) {
		q.items = q.items[:0]
		q.head = 0
	}

	return item, true
}

// Front returns the first item without removing it
func (q *Q[T]) Front() (T, bool) {
	if q.head >= len(q.items) {
		var zero T
		return zero, false
	}

	return q.items[q.head], true
}

// Len returns the number of queued items
func (q *Q[T]) Len() int {
	return len(q.items) - q.head
}

// At returns the item at index, counted from the front of the queue
func (q *Q[T]) At(index int) (T, bool) {
	if index < 0 || index >= q.Len() {
		var zero T
		return zero, false
	}

	return q.items[q.head+index], true
}

// Slice returns a copy of the queued items, front first
func (q *Q[T]) Slice() []T {
	out := make([]T, q.Len())
	copy(out, q.items[q.head:])

	return out
}

// Clear removes all items
func (q *Q[T]) Clear() {
	q.items = q.items[:0]
	q.head = 0
}
