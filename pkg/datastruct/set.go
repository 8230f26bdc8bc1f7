package datastruct

import (
	"iter"
	"maps"

	"go.llib.dev/iterview/port/view"
)

// Set is a hash based set of unique elements.
// Its view enumerates in unspecified order.
// The zero value is an empty set ready for use.
type Set[T comparable] struct {
	vs map[T]struct{}
}

var _ view.Values[any] = (*Set[any])(nil)
var _ view.Containable[any] = (*Set[any])(nil)
var _ view.Len = (*Set[any])(nil)

func (s *Set[T]) Append(vs ...T) {
	for _, v := range vs {
		s.add(v)
	}
}

func (s *Set[T]) add(v T) {
	if s.vs == nil {
		s.vs = make(map[T]struct{})
	}
	s.vs[v] = struct{}{}
}

func (s Set[T]) FromSlice(vs []T) Set[T] {
	s.Append(vs...)
	return s
}

func (s *Set[T]) Delete(v T) {
	delete(s.vs, v)
}

func (s *Set[T]) Contains(v T) bool {
	if s == nil {
		return false
	}
	_, ok := s.vs[v]
	return ok
}

func (s *Set[T]) Len() int {
	if s == nil {
		return 0
	}
	return len(s.vs)
}

func (s *Set[T]) Values() iter.Seq[T] {
	return func(yield func(T) bool) {
		if s == nil {
			return
		}
		for v := range maps.Keys(s.vs) {
			if !yield(v) {
				return
			}
		}
	}
}

func (s *Set[T]) ToSlice() []T {
	var out []T
	for v := range s.Values() {
		out = append(out, v)
	}
	return out
}

// OrderedSet is a set of unique elements
// whose view enumerates in insertion order.
// The zero value is an empty set ready for use.
type OrderedSet[T comparable] struct {
	index map[T]int
	order []T
}

var _ view.Values[any] = (*OrderedSet[any])(nil)
var _ view.Containable[any] = (*OrderedSet[any])(nil)
var _ view.Len = (*OrderedSet[any])(nil)

func (s *OrderedSet[T]) Append(vs ...T) {
	for _, v := range vs {
		s.add(v)
	}
}

func (s *OrderedSet[T]) add(v T) {
	if s.index == nil {
		s.index = make(map[T]int)
	}
	if _, ok := s.index[v]; ok {
		return
	}
	s.index[v] = len(s.order)
	s.order = append(s.order, v)
}

func (s OrderedSet[T]) FromSlice(vs []T) OrderedSet[T] {
	s.Append(vs...)
	return s
}

func (s *OrderedSet[T]) Contains(v T) bool {
	if s == nil {
		return false
	}
	_, ok := s.index[v]
	return ok
}

func (s *OrderedSet[T]) Len() int {
	if s == nil {
		return 0
	}
	return len(s.order)
}

func (s *OrderedSet[T]) Values() iter.Seq[T] {
	return func(yield func(T) bool) {
		if s == nil {
			return
		}
		for _, v := range s.order {
			if !yield(v) {
				return
			}
		}
	}
}

func (s *OrderedSet[T]) ToSlice() []T {
	var out []T
	for v := range s.Values() {
		out = append(out, v)
	}
	return out
}
