// Package pqueue implements a double-ended priority queue over a sorted
// linked list.
//
// Elements are kept ordered by priority from First (highest) to Last
// (lowest), so both ends are O(1) accessible and Push is O(n). Among equal
// priorities insertion order is preserved (FIFO). This shape suits small
// frontiers and in-order collection; it is not a heap and does not pretend
// to scale to large element counts.
//
// A Queue is not safe for concurrent use.
package pqueue

import (
	"golang.org/x/exp/constraints"

	"github.com/joshuapare/memkit/container/list"
	"github.com/joshuapare/memkit/internal/assert"
)

// pair carries an element with its priority.
type pair[T any, P any] struct {
	data     T
	priority P
}

// Queue is a priority queue of T ordered by P. Construct with New or
// NewFunc.
type Queue[T any, P any] struct {
	elems  *list.List[pair[T, P]]
	higher func(P, P) bool
	del    func(*T)
}

// New returns a queue using the natural descending order of P: the highest
// priority is First. deleter, when non-nil, runs on an element as it is
// popped or cleared.
func New[T any, P constraints.Ordered](deleter func(*T)) *Queue[T, P] {
	return NewFunc[T](func(x, y P) bool { return x > y }, deleter)
}

// NewFunc returns a queue ordered by higher, which reports whether priority
// x outranks priority y. Elements whose priorities tie keep FIFO order.
func NewFunc[T any, P any](higher func(P, P) bool, deleter func(*T)) *Queue[T, P] {
	assert.That(higher != nil, "pqueue: nil priority comparer")
	return &Queue[T, P]{
		elems:  list.New[pair[T, P]](nil),
		higher: higher,
		del:    deleter,
	}
}

// Copy returns a shallow copy of the queue.
func (q *Queue[T, P]) Copy() *Queue[T, P] {
	return &Queue[T, P]{
		elems:  q.elems.Copy(),
		higher: q.higher,
		del:    q.del,
	}
}

// Count returns the number of queued elements.
func (q *Queue[T, P]) Count() int {
	return q.elems.Count()
}

// Empty reports whether the queue has no elements.
func (q *Queue[T, P]) Empty() bool {
	return q.elems.Empty()
}

// First returns a pointer to the highest-priority element. The queue must
// not be empty.
func (q *Queue[T, P]) First() *T {
	assert.That(q.elems.Count() > 0, "pqueue: first of empty queue")
	return &q.elems.Head().Data.data
}

// Last returns a pointer to the lowest-priority element. The queue must not
// be empty.
func (q *Queue[T, P]) Last() *T {
	assert.That(q.elems.Count() > 0, "pqueue: last of empty queue")
	return &q.elems.Tail().Data.data
}

// Push queues data at the position its priority dictates: before the first
// element it outranks, after every element that ties with it.
func (q *Queue[T, P]) Push(data T, priority P) {
	entry := pair[T, P]{data: data, priority: priority}
	if q.elems.Empty() {
		q.elems.PushBack(entry)
		return
	}
	for cur := q.elems.Head(); cur != nil; cur = cur.Next() {
		if q.higher(priority, cur.Data.priority) {
			q.elems.InsertBefore(cur, entry)
			return
		}
	}
	q.elems.PushBack(entry)
}

// PopFirst removes the highest-priority element, running the deleter on it.
func (q *Queue[T, P]) PopFirst() {
	assert.That(q.elems.Count() > 0, "pqueue: pop from empty queue")
	q.delete(&q.elems.Head().Data.data)
	q.elems.PopFront()
}

// PopLast removes the lowest-priority element, running the deleter on it.
func (q *Queue[T, P]) PopLast() {
	assert.That(q.elems.Count() > 0, "pqueue: pop from empty queue")
	q.delete(&q.elems.Tail().Data.data)
	q.elems.PopBack()
}

// Clear removes every element, running the deleter on each.
func (q *Queue[T, P]) Clear() {
	if !q.elems.Empty() {
		for cur := q.elems.Head(); cur != nil; cur = cur.Next() {
			q.delete(&cur.Data.data)
		}
	}
	q.elems.Clear()
}

// Foreach calls action on each element from highest to lowest priority.
func (q *Queue[T, P]) Foreach(action func(T)) {
	assert.That(action != nil, "pqueue: nil action")
	q.elems.Foreach(func(p pair[T, P]) {
		action(p.data)
	})
}

func (q *Queue[T, P]) delete(elem *T) {
	if q.del != nil {
		q.del(elem)
	}
}
