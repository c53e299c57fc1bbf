package queue

import (
	"slices"
)

// Queue is a generic FIFO container.
type Queue[T any] struct {
	items []T
}

func New[T any]() *Queue[T] {
	return &Queue[T]{}
}

// NewWithCapacity reduces allocations when approximate queue size is known.
func NewWithCapacity[T any](capacity int) *Queue[T] {
	return &Queue[T]{
		items: make([]T, 0, capacity),
	}
}

// Enqueue adds elements in order with the last element at the back.
func (q *Queue[T]) Enqueue(items ...T) {
	q.items = append(q.items, items...)
}

func (q *Queue[T]) Dequeue() (T, bool) {
	if len(q.items) == 0 {
		var zero T
		return zero, false
	}

	item := q.items[0]
	q.items = q.items[1:]
	return item, true
}

func (q *Queue[T]) Peek() (T, bool) {
	if len(q.items) == 0 {
		var zero T
		return zero, false
	}

	return q.items[0], true
}

func (q *Queue[T]) IsEmpty() bool {
	return len(q.items) == 0
}

func (q *Queue[T]) Len() int {
	return len(q.items)
}

// ToSlice orders from front to back of the queue.
func (q *Queue[T]) ToSlice() []T {
	return slices.Clone(q.items)
}
