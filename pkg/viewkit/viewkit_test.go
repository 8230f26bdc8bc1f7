package viewkit_test

import (
	"bytes"
	"fmt"
	"iter"
	"slices"
	"strings"
	"testing"

	"go.llib.dev/testcase"
	"go.llib.dev/testcase/assert"
	"go.llib.dev/testcase/random"

	"go.llib.dev/iterview/pkg/datastruct"
	"go.llib.dev/iterview/pkg/viewkit"
	"go.llib.dev/iterview/port/view"
	"go.llib.dev/iterview/port/view/viewable"
)

func ExampleForEach() {
	vs := viewable.Slice[int]{1, 2, 3}

	var total int
	viewkit.ForEach(vs, func(v int) {
		total += v
	})

	_ = total // 6
}

func TestForEach(t *testing.T) {
	s := testcase.NewSpec(t)

	s.Test("every element is visited in view order", func(t *testcase.T) {
		vs := random.Slice(t.Random.IntBetween(3, 7), t.Random.Int)
		var got []int
		viewkit.ForEach(viewable.Slice[int](vs), func(v int) {
			got = append(got, v)
		})
		assert.Equal(t, vs, got)
	})

	s.Test("the container is usable after the walk", func(t *testcase.T) {
		vs := random.Slice(t.Random.IntBetween(3, 7), t.Random.Int)
		subject := viewable.Slice[int](vs)
		viewkit.ForEach(subject, func(int) {})
		assert.Equal(t, vs, viewkit.Collect(subject))
	})
}

func TestForEach2(t *testing.T) {
	s := testcase.NewSpec(t)

	s.Test("every pair is visited", func(t *testcase.T) {
		var exp = viewable.Map[string, int]{}
		t.Random.Repeat(3, 7, func() {
			exp[t.Random.String()] = t.Random.Int()
		})
		var got = map[string]int{}
		viewkit.ForEach2(exp, func(k string, v int) {
			got[k] = v
		})
		assert.Equal(t, map[string]int(exp), got)
	})
}

func ExampleInspect() {
	var out strings.Builder
	_ = viewkit.Inspect(&out, viewable.Slice[int]{1, 2, 3})

	fmt.Print(out.String())
	// Output:
	// 1
	// 2
	// 3
}

func TestInspect(t *testing.T) {
	s := testcase.NewSpec(t)

	s.Test("elements are written one per line, in view order", func(t *testcase.T) {
		var buf bytes.Buffer
		assert.NoError(t, viewkit.Inspect(&buf, viewable.Slice[int]{1, 2, 3}))
		assert.Equal(t, "1\n2\n3\n", buf.String())
	})

	s.Test("an empty view writes nothing", func(t *testcase.T) {
		var buf bytes.Buffer
		assert.NoError(t, viewkit.Inspect(&buf, viewable.Slice[int]{}))
		assert.Equal(t, "", buf.String())
	})

	s.Test("write failures are propagated", func(t *testcase.T) {
		assert.Error(t, viewkit.Inspect(failingWriter{}, viewable.Slice[int]{1}))
	})
}

type failingWriter struct{}

func (failingWriter) Write([]byte) (int, error) { return 0, fmt.Errorf("boom") }

// TestInspect_containerKinds proves the consumer side of the capability:
// one generic function handles every supported container family unchanged.
func TestInspect_containerKinds(t *testing.T) {
	s := testcase.NewSpec(t)

	s.Test("growable sequence", func(t *testcase.T) {
		var buf bytes.Buffer
		assert.NoError(t, viewkit.Inspect(&buf, viewable.Slice[int]{1, 2, 3}))
		assert.Equal(t, "1\n2\n3\n", buf.String())
	})

	s.Test("fixed-length sequence", func(t *testcase.T) {
		arr := [2]string{"a", "b"}
		var buf bytes.Buffer
		assert.NoError(t, viewkit.Inspect(&buf, viewable.Slice[string](arr[:])))
		assert.Equal(t, "a\nb\n", buf.String())
	})

	s.Test("associative container", func(t *testcase.T) {
		m := viewable.Map[string, int]{"x": 1, "y": 2}
		var got = map[string]int{}
		viewkit.ForEach2(m, func(k string, v int) {
			got[k] = v
		})
		assert.Equal(t, map[string]int{"x": 1, "y": 2}, got)
	})

	s.Test("linked sequence", func(t *testcase.T) {
		var ll datastruct.LinkedList[int]
		ll.Append(10, 20)
		var buf bytes.Buffer
		assert.NoError(t, viewkit.Inspect(&buf, &ll))
		assert.Equal(t, "10\n20\n", buf.String())
	})
}

func TestCollect(t *testing.T) {
	s := testcase.NewSpec(t)

	s.Test("elements are copied in view order", func(t *testcase.T) {
		vs := random.Slice(t.Random.IntBetween(3, 7), t.Random.Int)
		assert.Equal(t, vs, viewkit.Collect(viewable.Slice[int](vs)))
	})

	s.Test("collecting twice works since viewing is non-consuming", func(t *testcase.T) {
		vs := random.Slice(t.Random.IntBetween(3, 7), t.Random.Int)
		subject := viewable.Slice[int](vs)
		assert.Equal(t, vs, viewkit.Collect(subject))
		assert.Equal(t, vs, viewkit.Collect(subject))
	})
}

func TestCollectMap(t *testing.T) {
	s := testcase.NewSpec(t)

	s.Test("pairs are copied into a new map", func(t *testcase.T) {
		var exp = viewable.Map[string, int]{}
		t.Random.Repeat(3, 7, func() {
			exp[t.Random.String()] = t.Random.Int()
		})
		got := viewkit.CollectMap[string, int](exp)
		assert.Equal(t, map[string]int(exp), got)

		// the copy is independent of the source
		for k := range got {
			got[k]++
			break
		}
		assert.NotEqual(t, map[string]int(exp), got)
	})
}

func TestCollectKV(t *testing.T) {
	s := testcase.NewSpec(t)

	s.Test("pairs keep the view's enumeration order", func(t *testcase.T) {
		pairs := view.Func2[string, int](func() iter.Seq2[string, int] {
			return func(yield func(string, int) bool) {
				if !yield("x", 1) {
					return
				}
				yield("y", 2)
			}
		})
		exp := []viewkit.KV[string, int]{{Key: "x", Value: 1}, {Key: "y", Value: 2}}
		assert.Equal(t, exp, viewkit.CollectKV[string, int](pairs))
	})
}

func TestCount(t *testing.T) {
	s := testcase.NewSpec(t)

	s.Test("sized containers report without enumeration", func(t *testcase.T) {
		vs := random.Slice(t.Random.IntBetween(3, 7), t.Random.Int)
		assert.Equal(t, len(vs), viewkit.Count[int](viewable.Slice[int](vs)))
	})

	s.Test("unsized views are counted by enumerating", func(t *testcase.T) {
		vs := random.Slice(t.Random.IntBetween(3, 7), t.Random.Int)
		subject := view.Func[int](func() iter.Seq[int] {
			return slices.Values(vs)
		})
		assert.Equal(t, len(vs), viewkit.Count[int](subject))
	})
}

func TestReduce(t *testing.T) {
	s := testcase.NewSpec(t)

	s.Test("elements are folded in view order", func(t *testcase.T) {
		got := viewkit.Reduce(viewable.Slice[string]{"a", "b", "c"}, "", func(acc, v string) string {
			return acc + v
		})
		assert.Equal(t, "abc", got)
	})

	s.Test("an empty view folds to the initial value", func(t *testcase.T) {
		initial := t.Random.Int()
		got := viewkit.Reduce(viewable.Slice[int]{}, initial, func(acc, v int) int {
			return acc + v
		})
		assert.Equal(t, initial, got)
	})
}

func TestContains(t *testing.T) {
	s := testcase.NewSpec(t)

	s.Test("enumerating containers are searched", func(t *testcase.T) {
		vs := random.Slice(t.Random.IntBetween(3, 7), t.Random.Int, random.UniqueValues)
		subject := viewable.Slice[int](vs)
		assert.True(t, viewkit.Contains(subject, vs[t.Random.IntN(len(vs))]))
		assert.False(t, viewkit.Contains(subject, random.Unique(t.Random.Int, vs...)))
	})

	s.Test("containers with their own membership capability are not enumerated", func(t *testcase.T) {
		var set datastruct.Set[string]
		v := t.Random.String()
		set.Append(v)
		assert.True(t, viewkit.Contains[string](&set, v))
		assert.False(t, viewkit.Contains[string](&set, random.Unique(t.Random.String, v)))
	})
}

func TestFirst(t *testing.T) {
	s := testcase.NewSpec(t)

	s.Test("the first element of the view is returned", func(t *testcase.T) {
		vs := random.Slice(t.Random.IntBetween(3, 7), t.Random.Int)
		got, ok := viewkit.First(viewable.Slice[int](vs))
		assert.True(t, ok)
		assert.Equal(t, vs[0], got)
	})

	s.Test("an empty view has no first element", func(t *testcase.T) {
		_, ok := viewkit.First(viewable.Slice[int]{})
		assert.False(t, ok)
	})
}

func TestKeys(t *testing.T) {
	s := testcase.NewSpec(t)

	s.Test("the container's own key view is used when present", func(t *testcase.T) {
		var m = viewable.Map[string, int]{}
		var exp []string
		t.Random.Repeat(3, 7, func() {
			k := random.Unique(t.Random.String, exp...)
			m[k] = t.Random.Int()
			exp = append(exp, k)
		})
		assert.ContainExactly(t, exp, slices.Collect(viewkit.Keys[string, int](m)))
	})

	s.Test("keys are derived from the pairs otherwise", func(t *testcase.T) {
		pairs := view.Func2[string, int](func() iter.Seq2[string, int] {
			return func(yield func(string, int) bool) {
				if !yield("x", 1) {
					return
				}
				yield("y", 2)
			}
		})
		assert.Equal(t, []string{"x", "y"}, slices.Collect(viewkit.Keys[string, int](pairs)))
	})
}
