// Package viewkit provides generic algorithms over the view capabilities.
//
// Every function here is written once against "anything offering a view"
// and works unchanged for slices, maps, linked structures, sets, and any
// other type conforming to the view package, which is the point of having
// the capability in the first place.
package viewkit

import (
	"fmt"
	"io"
	"iter"

	"go.llib.dev/iterview/port/view"
)

// ForEach calls fn for every element of the container's view.
func ForEach[T any](v view.Values[T], fn func(T)) {
	for elem := range v.Values() {
		fn(elem)
	}
}

// ForEach2 calls fn for every key-value pair of the container's view.
func ForEach2[K, V any](a view.All[K, V], fn func(K, V)) {
	for k, val := range a.All() {
		fn(k, val)
	}
}

// Inspect writes every element of the container's view to w, one per line.
// It is the canonical "look at each element read-only" consumer:
// the container is left untouched and can be inspected again.
func Inspect[T any](w io.Writer, v view.Values[T]) error {
	for elem := range v.Values() {
		if _, err := fmt.Fprintf(w, "%v\n", elem); err != nil {
			return err
		}
	}
	return nil
}

// Collect copies the elements of the container's view into a new slice.
func Collect[T any](v view.Values[T]) []T {
	var vs []T
	for elem := range v.Values() {
		vs = append(vs, elem)
	}
	return vs
}

// CollectMap copies the pairs of an associative container's view into a new map.
func CollectMap[K comparable, V any](a view.All[K, V]) map[K]V {
	var out = make(map[K]V)
	for k, v := range a.All() {
		out[k] = v
	}
	return out
}

// KV represents an iterable key-value pair.
type KV[K, V any] struct {
	Key   K
	Value V
}

// CollectKV copies the pairs of an associative container's view into a new
// slice, preserving the view's enumeration order.
func CollectKV[K, V any](a view.All[K, V]) []KV[K, V] {
	var kvs []KV[K, V]
	for k, v := range a.All() {
		kvs = append(kvs, KV[K, V]{Key: k, Value: v})
	}
	return kvs
}

// Count returns the number of elements in the container's view.
// When the container also reports its size, the size is used
// instead of enumerating.
func Count[T any](v view.Values[T]) int {
	if sizer, ok := v.(view.Len); ok {
		return sizer.Len()
	}
	var n int
	for range v.Values() {
		n++
	}
	return n
}

// Count2 returns the number of pairs in an associative container's view.
func Count2[K, V any](a view.All[K, V]) int {
	if sizer, ok := a.(view.Len); ok {
		return sizer.Len()
	}
	var n int
	for range a.All() {
		n++
	}
	return n
}

// Reduce folds the elements of the container's view into a single value.
func Reduce[R, T any](v view.Values[T], initial R, fn func(R, T) R) R {
	var acc = initial
	for elem := range v.Values() {
		acc = fn(acc, elem)
	}
	return acc
}

// Contains reports whether the container's view yields the given element.
// When the container has its own membership capability, that is used
// instead of enumerating.
func Contains[T comparable](v view.Values[T], element T) bool {
	if c, ok := v.(view.Containable[T]); ok {
		return c.Contains(element)
	}
	for elem := range v.Values() {
		if elem == element {
			return true
		}
	}
	return false
}

// First returns the first element of the container's view.
func First[T any](v view.Values[T]) (T, bool) {
	for elem := range v.Values() {
		return elem, true
	}
	var zero T
	return zero, false
}

// Keys returns a view over the keys of an associative container.
// When the container has its own key capability, that is used,
// otherwise the keys are derived from the pairs.
func Keys[K, V any](a view.All[K, V]) iter.Seq[K] {
	if keyer, ok := a.(view.Keys[K]); ok {
		return keyer.Keys()
	}
	return func(yield func(K) bool) {
		for k := range a.All() {
			if !yield(k) {
				return
			}
		}
	}
}
