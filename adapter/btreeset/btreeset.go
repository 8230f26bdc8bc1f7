// Package btreeset adapts github.com/google/btree onto the view capabilities,
// giving consumers a set whose view enumerates in ascending element order.
package btreeset

import (
	"cmp"
	"iter"

	"github.com/google/btree"

	"go.llib.dev/iterview/port/view"
)

const degree = 32

// New creates a Set ordered by the natural ordering of T.
func New[T cmp.Ordered]() *Set[T] {
	return NewFunc(func(a, b T) bool { return a < b })
}

// NewFunc creates a Set ordered by the given less function.
// The less function must define a strict ordering over the elements.
func NewFunc[T any](less func(a, b T) bool) *Set[T] {
	return &Set[T]{tree: btree.NewG(degree, btree.LessFunc[T](less))}
}

// Set is a sorted set of unique elements backed by a B-tree.
// Two elements are considered the same when neither orders before the other.
type Set[T any] struct {
	tree *btree.BTreeG[T]
}

var _ view.Values[int] = (*Set[int])(nil)
var _ view.Containable[int] = (*Set[int])(nil)
var _ view.Len = (*Set[int])(nil)

func (s *Set[T]) Add(vs ...T) {
	for _, v := range vs {
		s.tree.ReplaceOrInsert(v)
	}
}

// Delete removes the element from the set,
// and reports whether it was present.
func (s *Set[T]) Delete(v T) bool {
	_, ok := s.tree.Delete(v)
	return ok
}

func (s *Set[T]) Contains(v T) bool {
	if s == nil || s.tree == nil {
		return false
	}
	return s.tree.Has(v)
}

func (s *Set[T]) Len() int {
	if s == nil || s.tree == nil {
		return 0
	}
	return s.tree.Len()
}

func (s *Set[T]) Values() iter.Seq[T] {
	return func(yield func(T) bool) {
		if s == nil || s.tree == nil {
			return
		}
		s.tree.Ascend(func(item T) bool {
			return yield(item)
		})
	}
}

// Backward returns a view that enumerates the elements in descending order.
func (s *Set[T]) Backward() iter.Seq[T] {
	return func(yield func(T) bool) {
		if s == nil || s.tree == nil {
			return
		}
		s.tree.Descend(func(item T) bool {
			return yield(item)
		})
	}
}

func (s *Set[T]) ToSlice() []T {
	var out []T
	for v := range s.Values() {
		out = append(out, v)
	}
	return out
}
