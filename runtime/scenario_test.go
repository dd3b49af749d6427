package runtime

import (
	"errors"
	"sync/atomic"
	"testing"

	"github.com/hipjim/wye/cause"
	"github.com/hipjim/wye/combinator"
	"github.com/stretchr/testify/require"
)

// drainAll pulls rt to completion, collecting every emitted batch.
func drainAll[L, R, O any](t *testing.T, rt *Runtime[L, R, O]) ([]O, cause.Cause) {
	t.Helper()
	var out []O
	for i := 0; i < 100; i++ {
		batch, halted, c := rt.Next()
		out = append(out, batch...)
		if halted {
			return out, c
		}
	}
	t.Fatal("runtime never halted")
	return nil, cause.Cause{}
}

// S1: merge(L=[1,2,3], R=[10,20]) emits the multiset {1,2,3,10,20} and
// ends with End.
func TestScenarioMerge(t *testing.T) {
	rt, err := New[int, int, int](combinator.Merge[int](),
		FromSlice([]int{1, 2, 3}), FromSlice([]int{10, 20}), DefaultOptions)
	require.NoError(t, err)
	require.NoError(t, rt.Start())

	out, c := drainAll(t, rt)
	require.ElementsMatch(t, []int{1, 2, 3, 10, 20}, out)
	require.True(t, c.IsEnd())
}

// S2: boundedQueue(2)(L=[a..e], R=[r1..r5]) passes every right value
// through in order and ends with End once the right side ends.
func TestScenarioBoundedQueue(t *testing.T) {
	left := FromSlice([]string{"a", "b", "c", "d", "e"})
	right := FromSlice([]string{"r1", "r2", "r3", "r4", "r5"})
	rt, err := New[string, string, string](combinator.BoundedQueue[string, string](2), left, right, DefaultOptions)
	require.NoError(t, err)
	require.NoError(t, rt.Start())

	out, c := drainAll(t, rt)
	require.Equal(t, []string{"r1", "r2", "r3", "r4", "r5"}, out)
	require.True(t, c.IsEnd())
}

// countingBlockingProducer never resumes on its own; its Cancel resumes
// with whatever early cause it was given, tallying how many times it
// fired so a test can assert exactly-once cancellation.
func countingBlockingProducer[A any](count *int32) Producer[A] {
	return func(resume func(batch []A, next Producer[A], c cause.Cause)) Cancel {
		return func(ec cause.EarlyCause) {
			atomic.AddInt32(count, 1)
			resume(nil, nil, ec.Cause())
		}
	}
}

// S3: interrupt(L=[false,false,true], R=blocked) halts with End as soon
// as the true arrives, cancelling the live right read exactly once.
func TestScenarioInterrupt(t *testing.T) {
	var rCancels int32
	left := FromSlice([]bool{false, false, true})
	right := countingBlockingProducer[int](&rCancels)

	rt, err := New[bool, int, int](combinator.Interrupt[int](), left, right, DefaultOptions)
	require.NoError(t, err)
	require.NoError(t, rt.Start())

	_, c := drainAll(t, rt)
	require.True(t, c.IsEnd())
	require.EqualValues(t, 1, atomic.LoadInt32(&rCancels))
}

// S4: yipWith(+)(L=[1,2,3], R=[10,20,30,40]) emits [11,22,33], ends with
// End once the left side ends, and discards the unconsumed 40.
func TestScenarioYipWith(t *testing.T) {
	left := FromSlice([]int{1, 2, 3})
	right := FromSlice([]int{10, 20, 30, 40})
	rt, err := New[int, int, int](combinator.YipWith(func(l, r int) int { return l + r }), left, right, DefaultOptions)
	require.NoError(t, err)
	require.NoError(t, rt.Start())

	out, c := drainAll(t, rt)
	require.Equal(t, []int{11, 22, 33}, out)
	require.True(t, c.IsEnd())
}

var errBoom = errors.New("boom")

// sliceThenErrorProducer yields values in order, then terminates with
// cause.Err(err) instead of End.
func sliceThenErrorProducer(values []int, err error) Producer[int] {
	var build func(i int) Producer[int]
	build = func(i int) Producer[int] {
		return func(resume func(batch []int, next Producer[int], c cause.Cause)) Cancel {
			if i >= len(values) {
				resume(nil, nil, cause.Err(err))
			} else {
				resume([]int{values[i]}, build(i+1), cause.Cause{})
			}
			return noopCancel
		}
	}
	return build(0)
}

// S5: either(L=[1] then Error("boom"), R=blocked) surfaces the Left(1)
// value, terminates with the wrapped error, and cancels the live right
// read exactly once.
func TestScenarioEitherWithError(t *testing.T) {
	var rCancels int32
	left := sliceThenErrorProducer([]int{1}, errBoom)
	right := countingBlockingProducer[int](&rCancels)

	rt, err := New[int, int, combinator.Sided[int, int]](combinator.Either[int, int](), left, right, DefaultOptions)
	require.NoError(t, err)
	require.NoError(t, rt.Start())

	out, c := drainAll(t, rt)
	require.True(t, c.IsError())
	require.ErrorIs(t, c.Error(), errBoom)
	require.EqualValues(t, 1, atomic.LoadInt32(&rCancels))

	require.Len(t, out, 1)
	require.True(t, out[0].IsLeft())
	require.Equal(t, 1, out[0].Left())
}

// S6: dynamic1(f) with f(x) = R if x<0 else L, driven left-biased, emits
// values in the order they are demanded: read 1 (stay L), read -1 (go
// R), read 9 (f(9) says L), read 2 (stay L), read 3 (stay L, then halt
// when L ends).
func TestScenarioDynamic1(t *testing.T) {
	f := func(x int) combinator.Mode {
		if x < 0 {
			return combinator.ModeR
		}
		return combinator.ModeL
	}
	left := FromSlice([]int{1, -1, 2, 3})
	right := FromSlice([]int{9, 8, 7})
	rt, err := New[int, int, int](combinator.Dynamic1(f), left, right, DefaultOptions)
	require.NoError(t, err)
	require.NoError(t, rt.Start())

	out, c := drainAll(t, rt)
	require.Equal(t, []int{1, -1, 9, 2, 3}, out)
	require.True(t, c.IsEnd())
}
