package datastruct

import (
	"iter"
	"slices"

	"go.llib.dev/iterview/port/view"
)

// Stack is a LIFO container.
// Its view enumerates from the bottom of the stack towards the top,
// which is the order the elements were pushed in.
type Stack[T any] []T

var _ view.Values[any] = (Stack[any])(nil)
var _ view.Len = (Stack[any])(nil)

func (s *Stack[T]) Push(vs ...T) {
	*s = append(*s, vs...)
}

// Pop removes and returns the top element of the stack.
func (s *Stack[T]) Pop() (T, bool) {
	if s.IsEmpty() {
		var zero T
		return zero, false
	}
	index := len(*s) - 1
	element := (*s)[index]
	*s = (*s)[:index]
	return element, true
}

// Last returns the top element of the stack without removing it.
func (s Stack[T]) Last() (T, bool) {
	if s.IsEmpty() {
		var zero T
		return zero, false
	}
	return s[len(s)-1], true
}

func (s Stack[T]) IsEmpty() bool { return len(s) == 0 }

func (s Stack[T]) Len() int { return len(s) }

func (s Stack[T]) Values() iter.Seq[T] {
	return slices.Values(s)
}
