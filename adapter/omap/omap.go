// Package omap adapts github.com/wk8/go-ordered-map onto the view capabilities,
// giving consumers an associative container whose view enumerates
// in insertion order.
package omap

import (
	"iter"

	orderedmap "github.com/wk8/go-ordered-map/v2"

	"go.llib.dev/iterview/port/view"
)

func New[K comparable, V any]() *Map[K, V] {
	return &Map[K, V]{om: orderedmap.New[K, V]()}
}

// Map is an insertion ordered key-value container.
// Setting an existing key updates its value but keeps its position.
type Map[K comparable, V any] struct {
	om *orderedmap.OrderedMap[K, V]
}

var _ view.All[string, int] = (*Map[string, int])(nil)
var _ view.Keys[string] = (*Map[string, int])(nil)
var _ view.Values[int] = (*Map[string, int])(nil)
var _ view.Len = (*Map[string, int])(nil)

func (m *Map[K, V]) init() {
	if m.om == nil {
		m.om = orderedmap.New[K, V]()
	}
}

func (m *Map[K, V]) Set(key K, val V) {
	m.init()
	m.om.Set(key, val)
}

func (m *Map[K, V]) Lookup(key K) (V, bool) {
	if m == nil || m.om == nil {
		var zero V
		return zero, false
	}
	return m.om.Get(key)
}

func (m *Map[K, V]) Get(key K) V {
	val, _ := m.Lookup(key)
	return val
}

func (m *Map[K, V]) Delete(key K) {
	if m == nil || m.om == nil {
		return
	}
	m.om.Delete(key)
}

func (m *Map[K, V]) Len() int {
	if m == nil || m.om == nil {
		return 0
	}
	return m.om.Len()
}

func (m *Map[K, V]) All() iter.Seq2[K, V] {
	return func(yield func(K, V) bool) {
		if m == nil || m.om == nil {
			return
		}
		for pair := m.om.Oldest(); pair != nil; pair = pair.Next() {
			if !yield(pair.Key, pair.Value) {
				return
			}
		}
	}
}

func (m *Map[K, V]) Keys() iter.Seq[K] {
	return func(yield func(K) bool) {
		for k := range m.All() {
			if !yield(k) {
				return
			}
		}
	}
}

func (m *Map[K, V]) Values() iter.Seq[V] {
	return func(yield func(V) bool) {
		for _, v := range m.All() {
			if !yield(v) {
				return
			}
		}
	}
}

func (m *Map[K, V]) ToMap() map[K]V {
	var out = make(map[K]V, m.Len())
	for k, v := range m.All() {
		out[k] = v
	}
	return out
}
