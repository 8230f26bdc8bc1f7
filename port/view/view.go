// Package view contains the role interfaces for enumerating a container's
// elements without consuming the container.
//
// The standard pattern for iteration in Go is a method that returns an
// iter.Seq, but there is no shared interface name for "has such a method".
// Generic code that only needs to walk a container read-only ends up being
// written once per container type, or against []T, which excludes maps,
// linked structures and every other non-contiguous container.
// The view capabilities close that gap: a consumer bounded by view.Values
// or view.All accepts any container that can hand out a read-only sequence,
// regardless of its memory layout.
package view

import "iter"

// Values is the capability of producing a read-only iteration sequence over
// the elements of a container.
//
// Calling Values must not mutate the container and must not consume it;
// the container remains fully usable afterwards, including for further
// Values calls. Each call returns a fresh sequence that enumerates the
// container's logical contents as of the time of the call, in the
// container's natural enumeration order.
//
// The returned sequence is a view, not a copy. It remains valid only as
// long as the container itself, and it carries no synchronisation of its
// own: mutating the container while a sequence from it is being consumed
// is governed by Go's ordinary data-race rules, nothing more.
type Values[T any] interface {
	Values() iter.Seq[T]
}

// All is the view capability of associative containers,
// where an element is a key-value pair.
//
// The same rules apply as for Values: calling All is read-only,
// non-consuming, and yields a fresh sequence per call.
type All[K, V any] interface {
	All() iter.Seq2[K, V]
}

// Keys is an optional narrowing of All for when only the keys are needed.
type Keys[K any] interface {
	Keys() iter.Seq[K]
}

// Len is the optional capability of reporting the number of elements
// without enumerating them.
type Len interface {
	Len() int
}

// Containable is the optional capability of membership testing.
type Containable[T any] interface {
	Contains(element T) bool
}

// Func adapts a sequence constructor function into the Values capability,
// so ad-hoc sequences can be passed to consumers bounded by Values
// without defining a container type.
type Func[T any] func() iter.Seq[T]

func (fn Func[T]) Values() iter.Seq[T] { return fn() }

// Func2 adapts a key-value sequence constructor function into the All capability.
type Func2[K, V any] func() iter.Seq2[K, V]

func (fn Func2[K, V]) All() iter.Seq2[K, V] { return fn() }

var _ Values[any] = (Func[any])(nil)
var _ All[any, any] = (Func2[any, any])(nil)
