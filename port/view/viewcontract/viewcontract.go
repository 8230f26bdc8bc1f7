// Package viewcontract contains the behavioural contracts of the view capabilities.
//
// Since the view roles are read-only, the contracts cannot populate the
// subject themselves; the maker function returns a populated subject
// together with the elements it is expected to enumerate.
package viewcontract

import (
	"fmt"
	"iter"
	"reflect"
	"slices"
	"testing"

	"go.llib.dev/testcase"
	"go.llib.dev/testcase/assert"

	"go.llib.dev/iterview/pkg/viewkit"
	"go.llib.dev/iterview/port/contract"
	"go.llib.dev/iterview/port/view"
)

// Values specifies what every conformance of the view.Values role must guarantee,
// regardless of the subject's enumeration order.
func Values[T any](mk func(tb testing.TB) (view.Values[T], []T)) contract.Contract {
	s := testcase.NewSpec(nil)

	s.Test("the view enumerates exactly the container's elements", func(t *testcase.T) {
		subject, exp := mk(t)
		assert.ContainExactly(t, exp, viewkit.Collect(subject))
	})

	s.Test("viewing does not consume the container", func(t *testcase.T) {
		subject, exp := mk(t)
		assert.ContainExactly(t, exp, viewkit.Collect(subject))
		assert.ContainExactly(t, exp, viewkit.Collect(subject))
	})

	s.Test("sequences from separate calls are independently consumable", func(t *testcase.T) {
		subject, exp := mk(t)

		next1, stop1 := iter.Pull(subject.Values())
		defer stop1()
		next2, stop2 := iter.Pull(subject.Values())
		defer stop2()

		var got1, got2 []T
		for {
			v1, ok1 := next1()
			v2, ok2 := next2()
			assert.Equal(t, ok1, ok2)
			if !ok1 {
				break
			}
			got1 = append(got1, v1)
			got2 = append(got2, v2)
		}

		assert.ContainExactly(t, exp, got1)
		assert.ContainExactly(t, exp, got2)
	})

	s.Test("stopping enumeration early leaves the container usable", func(t *testcase.T) {
		subject, exp := mk(t)
		for range subject.Values() {
			break
		}
		assert.ContainExactly(t, exp, viewkit.Collect(subject))
	})

	s.Test("reported size agrees with the view", func(t *testcase.T) {
		subject, exp := mk(t)
		sizer, ok := subject.(view.Len)
		if !ok {
			return
		}
		assert.Equal(t, len(exp), sizer.Len())
	})

	s.Test("membership agrees with the view", func(t *testcase.T) {
		subject, exp := mk(t)
		c, ok := subject.(view.Containable[T])
		if !ok {
			return
		}
		for _, v := range exp {
			assert.True(t, c.Contains(v))
		}
	})

	return s.AsSuite(fmt.Sprintf("view.Values[%s]", reflect.TypeFor[T]().String()))
}

// OrderedValues is the Values contract extended with the guarantees of
// order preserving containers.
func OrderedValues[T any](mk func(tb testing.TB) (view.Values[T], []T)) contract.Contract {
	s := testcase.NewSpec(nil)

	Values(mk).Spec(s)

	s.Test("enumeration order is stable across calls", func(t *testcase.T) {
		subject, exp := mk(t)
		assert.Equal(t, exp, viewkit.Collect(subject))
		assert.Equal(t, exp, viewkit.Collect(subject))
	})

	return s.AsSuite(fmt.Sprintf("ordered view.Values[%s]", reflect.TypeFor[T]().String()))
}

// All specifies what every conformance of the view.All role must guarantee,
// regardless of the subject's enumeration order.
func All[K comparable, V any](mk func(tb testing.TB) (view.All[K, V], map[K]V)) contract.Contract {
	s := testcase.NewSpec(nil)

	s.Test("the view enumerates exactly the container's pairs", func(t *testcase.T) {
		subject, exp := mk(t)
		assert.Equal(t, exp, viewkit.CollectMap(subject))
	})

	s.Test("viewing does not consume the container", func(t *testcase.T) {
		subject, exp := mk(t)
		assert.Equal(t, exp, viewkit.CollectMap(subject))
		assert.Equal(t, exp, viewkit.CollectMap(subject))
	})

	s.Test("each pair is enumerated exactly once", func(t *testcase.T) {
		subject, exp := mk(t)
		assert.Equal(t, len(exp), viewkit.Count2(subject))
	})

	s.Test("stopping enumeration early leaves the container usable", func(t *testcase.T) {
		subject, exp := mk(t)
		for range subject.All() {
			break
		}
		assert.Equal(t, exp, viewkit.CollectMap(subject))
	})

	s.Test("the key view agrees with the pair view", func(t *testcase.T) {
		subject, exp := mk(t)
		keyer, ok := subject.(view.Keys[K])
		if !ok {
			return
		}
		var expKeys []K
		for k := range exp {
			expKeys = append(expKeys, k)
		}
		assert.ContainExactly(t, expKeys, slices.Collect(keyer.Keys()))
	})

	s.Test("reported size agrees with the view", func(t *testcase.T) {
		subject, exp := mk(t)
		sizer, ok := subject.(view.Len)
		if !ok {
			return
		}
		assert.Equal(t, len(exp), sizer.Len())
	})

	return s.AsSuite(fmt.Sprintf("view.All[%s, %s]",
		reflect.TypeFor[K]().String(), reflect.TypeFor[V]().String()))
}

// OrderedAll is the contract of order preserving associative containers.
// The maker returns the expected pairs in the expected enumeration order.
func OrderedAll[K comparable, V any](mk func(tb testing.TB) (view.All[K, V], []viewkit.KV[K, V])) contract.Contract {
	s := testcase.NewSpec(nil)

	s.Test("the view enumerates exactly the expected pairs, in order", func(t *testcase.T) {
		subject, exp := mk(t)
		assert.Equal(t, exp, viewkit.CollectKV(subject))
	})

	s.Test("enumeration order is stable across calls", func(t *testcase.T) {
		subject, exp := mk(t)
		assert.Equal(t, exp, viewkit.CollectKV(subject))
		assert.Equal(t, exp, viewkit.CollectKV(subject))
	})

	s.Context("behaves as an associative view", All(func(tb testing.TB) (view.All[K, V], map[K]V) {
		subject, exp := mk(tb)
		var m = make(map[K]V, len(exp))
		for _, kv := range exp {
			m[kv.Key] = kv.Value
		}
		return subject, m
	}).Spec)

	return s.AsSuite(fmt.Sprintf("ordered view.All[%s, %s]",
		reflect.TypeFor[K]().String(), reflect.TypeFor[V]().String()))
}
