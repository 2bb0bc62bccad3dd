// Package list implements a doubly linked list with exposed nodes.
//
// Nodes are stable: a *Node stays valid until it is erased, regardless of
// other insertions and removals, which makes the list the backing store for
// container/pqueue. For index-addressed storage prefer container/vec; the
// list trades O(1) random access for O(1) splicing at known nodes.
//
// A List is not safe for concurrent use.
package list

import "github.com/joshuapare/memkit/internal/assert"

// Node is one element of a list. Data is exported for in-place mutation.
type Node[T any] struct {
	Data T
	prev *Node[T]
	next *Node[T]
}

// Next returns the following node, or nil at the tail.
func (n *Node[T]) Next() *Node[T] {
	return n.next
}

// Prev returns the preceding node, or nil at the head.
func (n *Node[T]) Prev() *Node[T] {
	return n.prev
}

// List is a doubly linked list of T. The zero value is an empty list ready
// to use. deleter, when set via New, runs on each element as it is removed.
type List[T any] struct {
	count int
	head  *Node[T]
	tail  *Node[T]
	del   func(*T)
}

// New returns an empty list with an optional per-element deleter.
func New[T any](deleter func(*T)) *List[T] {
	return &List[T]{del: deleter}
}

// Copy returns a deep copy of the list structure (element values are
// copied shallowly). The copy carries no deleter: the original keeps
// ownership of any resources its elements hold.
func (l *List[T]) Copy() *List[T] {
	out := &List[T]{}
	for cur := l.head; cur != nil; cur = cur.next {
		out.PushBack(cur.Data)
	}
	return out
}

// Count returns the number of elements.
func (l *List[T]) Count() int {
	return l.count
}

// Empty reports whether the list has no elements.
func (l *List[T]) Empty() bool {
	assert.That((l.count == 0) == (l.head == nil && l.tail == nil), "list: count and links out of sync")
	return l.count == 0
}

// Head returns the first node. The list must not be empty.
func (l *List[T]) Head() *Node[T] {
	assert.That(l.count > 0, "list: head of empty list")
	return l.head
}

// Tail returns the last node. The list must not be empty.
func (l *List[T]) Tail() *Node[T] {
	assert.That(l.count > 0, "list: tail of empty list")
	return l.tail
}

// Get walks to the node at index from whichever end is closer.
func (l *List[T]) Get(index int) *Node[T] {
	assert.That(index >= 0 && index < l.count, "list: index out of range")
	if index <= l.count/2 {
		cur := l.head
		for ; index > 0; index-- {
			cur = cur.next
		}
		return cur
	}
	cur := l.tail
	for index = l.count - 1 - index; index > 0; index-- {
		cur = cur.prev
	}
	return cur
}

// PushFront prepends data and returns its node.
func (l *List[T]) PushFront(data T) *Node[T] {
	node := &Node[T]{Data: data, next: l.head}
	if l.head != nil {
		l.head.prev = node
	} else {
		l.tail = node
	}
	l.head = node
	l.count++
	return node
}

// PushBack appends data and returns its node.
func (l *List[T]) PushBack(data T) *Node[T] {
	node := &Node[T]{Data: data, prev: l.tail}
	if l.tail != nil {
		l.tail.next = node
	} else {
		l.head = node
	}
	l.tail = node
	l.count++
	return node
}

// InsertBefore places data immediately before at, which must belong to this
// list, and returns the new node.
func (l *List[T]) InsertBefore(at *Node[T], data T) *Node[T] {
	assert.That(at != nil, "list: insert before nil node")
	if at.prev == nil {
		return l.PushFront(data)
	}
	node := &Node[T]{Data: data, prev: at.prev, next: at}
	at.prev.next = node
	at.prev = node
	l.count++
	return node
}

// InsertAfter places data immediately after at, which must belong to this
// list, and returns the new node.
func (l *List[T]) InsertAfter(at *Node[T], data T) *Node[T] {
	assert.That(at != nil, "list: insert after nil node")
	if at.next == nil {
		return l.PushBack(data)
	}
	node := &Node[T]{Data: data, prev: at, next: at.next}
	at.next.prev = node
	at.next = node
	l.count++
	return node
}

// Erase unlinks node from the list, running the deleter on its element.
func (l *List[T]) Erase(node *Node[T]) {
	assert.That(node != nil, "list: erase of nil node")
	assert.That(l.count > 0, "list: erase from empty list")
	l.delete(&node.Data)
	l.unlink(node)
}

// PopFront removes the first element.
func (l *List[T]) PopFront() {
	assert.That(l.count > 0, "list: pop from empty list")
	l.delete(&l.head.Data)
	l.unlink(l.head)
}

// PopBack removes the last element.
func (l *List[T]) PopBack() {
	assert.That(l.count > 0, "list: pop from empty list")
	l.delete(&l.tail.Data)
	l.unlink(l.tail)
}

// Clear removes every element, running the deleter on each.
func (l *List[T]) Clear() {
	for cur := l.head; cur != nil; {
		next := cur.next
		l.delete(&cur.Data)
		cur.prev, cur.next = nil, nil
		cur = next
	}
	l.count = 0
	l.head, l.tail = nil, nil
}

// Foreach calls action on each element, head to tail.
func (l *List[T]) Foreach(action func(T)) {
	assert.That(action != nil, "list: nil action")
	for cur := l.head; cur != nil; cur = cur.next {
		action(cur.Data)
	}
}

func (l *List[T]) unlink(node *Node[T]) {
	if node.prev != nil {
		node.prev.next = node.next
	} else {
		l.head = node.next
	}
	if node.next != nil {
		node.next.prev = node.prev
	} else {
		l.tail = node.prev
	}
	node.prev, node.next = nil, nil
	l.count--
}

func (l *List[T]) delete(elem *T) {
	if l.del != nil {
		l.del(elem)
	}
}
