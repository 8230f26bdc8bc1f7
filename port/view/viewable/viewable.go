// Package viewable provides view capability conformances for the builtin
// container kinds.
//
// Each type here is a thin named wrapper over the builtin it adapts.
// The wrappers add no iteration logic of their own; they delegate to the
// enumeration the builtin already has and only line its shape up with the
// capabilities of the view package.
package viewable

import (
	"iter"
	"maps"
	"slices"

	"go.llib.dev/iterview/port/view"
)

// Slice is the view conformance of growable contiguous sequences.
//
// Fixed-length arrays conform through it as well: viewable.Slice[T](arr[:])
// delegates to the same slice enumeration, mirroring how arrays borrow
// their iteration from slices in the first place.
type Slice[T any] []T

var _ view.Values[int] = (Slice[int])(nil)
var _ view.Len = (Slice[int])(nil)

func (s Slice[T]) Values() iter.Seq[T] {
	return slices.Values(s)
}

// Backward returns a view that enumerates the elements in reverse order.
func (s Slice[T]) Backward() iter.Seq[T] {
	return func(yield func(T) bool) {
		for _, v := range slices.Backward(s) {
			if !yield(v) {
				return
			}
		}
	}
}

func (s Slice[T]) Len() int { return len(s) }

func (s Slice[T]) Lookup(index int) (T, bool) {
	if index < 0 || len(s) <= index {
		var zero T
		return zero, false
	}
	return s[index], true
}

func (s *Slice[T]) Append(vs ...T) { *s = append(*s, vs...) }

func (s Slice[T]) ToSlice() []T { return s }

// Map is the view conformance of the builtin hash map.
//
// Enumeration order is unspecified, as it is for ranging over the map
// itself; a call enumerates each present pair exactly once.
type Map[K comparable, V any] map[K]V

var _ view.All[string, int] = (Map[string, int])(nil)
var _ view.Keys[string] = (Map[string, int])(nil)
var _ view.Values[int] = (Map[string, int])(nil)
var _ view.Len = (Map[string, int])(nil)

func (m Map[K, V]) All() iter.Seq2[K, V] { return maps.All(m) }

func (m Map[K, V]) Keys() iter.Seq[K] { return maps.Keys(m) }

func (m Map[K, V]) Values() iter.Seq[V] { return maps.Values(m) }

func (m Map[K, V]) Len() int { return len(m) }

func (m Map[K, V]) Lookup(key K) (V, bool) {
	val, ok := m[key]
	return val, ok
}

func (m Map[K, V]) Get(key K) V { return m[key] }

func (m *Map[K, V]) Set(key K, val V) {
	if *m == nil {
		*m = make(Map[K, V])
	}
	(*m)[key] = val
}

func (m Map[K, V]) Delete(key K) { delete(m, key) }

func (m Map[K, V]) ToMap() map[K]V { return m }

// Ptr is the view conformance of an optional value held behind a pointer.
// A nil Ref is an empty view, a non-nil Ref is a one element view.
type Ptr[T any] struct{ Ref *T }

var _ view.Values[int] = Ptr[int]{}
var _ view.Len = Ptr[int]{}

func (p Ptr[T]) Values() iter.Seq[T] {
	return func(yield func(T) bool) {
		if p.Ref == nil {
			return
		}
		yield(*p.Ref)
	}
}

func (p Ptr[T]) Len() int {
	if p.Ref == nil {
		return 0
	}
	return 1
}
