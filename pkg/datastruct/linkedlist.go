package datastruct

import (
	"iter"
	"slices"

	"go.llib.dev/iterview/port/view"
)

// LinkedList is a doubly linked list.
//
// It is the non-contiguous proof case for the view capabilities:
// its elements live in separate nodes, there is no slice to hand out,
// yet Values exposes them the same way a slice-backed container would.
// The zero value is an empty list ready for use.
type LinkedList[T any] struct {
	head   *llNode[T]
	tail   *llNode[T]
	length int
}

type llNode[T any] struct {
	data T
	prev *llNode[T]
	next *llNode[T]
}

var _ view.Values[any] = (*LinkedList[any])(nil)
var _ view.Len = (*LinkedList[any])(nil)

func (ll *LinkedList[T]) Values() iter.Seq[T] {
	return func(yield func(T) bool) {
		if ll == nil {
			return
		}
		for current := ll.head; current != nil; current = current.next {
			if !yield(current.data) {
				return
			}
		}
	}
}

// Backward returns a view that enumerates the elements from tail to head.
func (ll *LinkedList[T]) Backward() iter.Seq[T] {
	return func(yield func(T) bool) {
		if ll == nil {
			return
		}
		for current := ll.tail; current != nil; current = current.prev {
			if !yield(current.data) {
				return
			}
		}
	}
}

func (ll *LinkedList[T]) Len() int { return ll.length }

func (ll *LinkedList[T]) ToSlice() []T {
	var vs []T
	for v := range ll.Values() {
		vs = append(vs, v)
	}
	return vs
}

func (ll *LinkedList[T]) Append(vs ...T) {
	for _, v := range vs {
		ll.append(v)
	}
}

func (ll *LinkedList[T]) append(v T) {
	node := &llNode[T]{data: v}
	if ll.tail == nil {
		ll.head = node
		ll.tail = node
	} else {
		node.prev = ll.tail
		ll.tail.next = node
		ll.tail = node
	}
	ll.length++
}

// Prepend adds elements to the beginning of the list,
// keeping their relative order.
func (ll *LinkedList[T]) Prepend(vs ...T) {
	for _, v := range slices.Backward(vs) {
		ll.prepend(v)
	}
}

func (ll *LinkedList[T]) prepend(v T) {
	node := &llNode[T]{data: v, next: ll.head}
	if ll.head != nil {
		ll.head.prev = node
	}
	ll.head = node
	if ll.tail == nil {
		ll.tail = node
	}
	ll.length++
}

// Shift removes and returns the first element of the list.
func (ll *LinkedList[T]) Shift() (T, bool) {
	if ll.head == nil {
		var zero T
		return zero, false
	}
	first := ll.head
	ll.head = first.next
	if ll.head != nil {
		ll.head.prev = nil
	} else {
		ll.tail = nil
	}
	ll.length--
	return first.data, true
}

// Pop removes and returns the last element of the list.
func (ll *LinkedList[T]) Pop() (T, bool) {
	last := ll.tail
	if last == nil {
		var zero T
		return zero, false
	}
	ll.tail = last.prev
	if ll.tail != nil {
		ll.tail.next = nil
	} else {
		ll.head = nil
	}
	ll.length--
	return last.data, true
}

func (ll *LinkedList[T]) Lookup(index int) (T, bool) {
	if index < 0 || ll.length <= index {
		var zero T
		return zero, false
	}
	var i int
	for v := range ll.Values() {
		if i == index {
			return v, true
		}
		i++
	}
	var zero T
	return zero, false
}
