package transform

import (
	"testing"

	"github.com/hipjim/wye/cause"
	"github.com/hipjim/wye/wye"
	"github.com/stretchr/testify/require"
	"pgregory.net/rapid"
)

// drainPassL feeds values into a left-only reading program (one that
// never touches the right side, like passL) and collects every value it
// emits before it next awaits input.
func drainPassL(values []int) []int {
	out := make([]int, 0, len(values))
	n := FeedL(values, passL()).Step()
	for n.IsEmit() {
		out = append(out, n.Values()...)
		n = n.Next().Step()
	}
	return out
}

// For any finite left trace, feeding it through a left-only program
// echoes every value back in order, specialized to
// a program with no interleaving choices to make.
func TestPropertyFeedLEchoesEveryValueInOrder(t *testing.T) {
	rapid.Check(t, func(rt *rapid.T) {
		values := rapid.SliceOfN(rapid.IntRange(-100, 100), 0, 20).Draw(rt, "values")
		out := drainPassL(values)
		require.Equal(t, values, out)
	})
}

// Feed associativity: feedL(xs++ys, P) observes
// the same output as feedL(ys, feedL(xs, P)), for a program with no
// opposite-side demand to complicate the split.
func TestPropertyFeedLIsAssociativeAcrossSplits(t *testing.T) {
	rapid.Check(t, func(rt *rapid.T) {
		xs := rapid.SliceOfN(rapid.IntRange(-100, 100), 0, 10).Draw(rt, "xs")
		ys := rapid.SliceOfN(rapid.IntRange(-100, 100), 0, 10).Draw(rt, "ys")

		combined := append(append([]int{}, xs...), ys...)
		whole := drainPassL(combined)

		first := FeedL(xs, passL())
		split := FeedL(ys, first).Step()
		splitOut := make([]int, 0, len(combined))
		for split.IsEmit() {
			splitOut = append(splitOut, split.Values()...)
			split = split.Next().Step()
		}

		require.Equal(t, whole, splitOut)
	})
}

// Flip duality: reading a trace as the left side
// of P produces the same output as reading the same trace as the right
// side of flip(P).
func TestPropertyFlipDualityOnPassThrough(t *testing.T) {
	rapid.Check(t, func(rt *rapid.T) {
		values := rapid.SliceOfN(rapid.IntRange(-100, 100), 0, 20).Draw(rt, "values")

		leftOut := drainPassL(values)

		flipped := Flip(passL())
		n := FeedR(values, flipped).Step()
		rightOut := make([]int, 0, len(values))
		for n.IsEmit() {
			rightOut = append(rightOut, n.Values()...)
			n = n.Next().Step()
		}

		require.Equal(t, leftOut, rightOut)
	})
}

// Disconnect idempotence: applying disconnectL
// twice with the same cause observes the same output as applying it once.
func TestPropertyDisconnectLIsIdempotent(t *testing.T) {
	rapid.Check(t, func(rt *rapid.T) {
		values := rapid.SliceOfN(rapid.IntRange(-100, 100), 0, 20).Draw(rt, "values")
		early := cause.AsEarly(cause.Kill)

		once := DisconnectL[int, int, int](early, mergeLike())
		twice := DisconnectL[int, int, int](early, once)

		onceOut, onceHalt := drainRight(values, once)
		twiceOut, twiceHalt := drainRight(values, twice)

		require.Equal(t, onceOut, twiceOut)
		require.Equal(t, onceHalt, twiceHalt)
	})
}

func drainRight(values []int, p wye.Program[int, int, int]) (out []int, halted bool) {
	n := FeedR(values, p).Step()
	for n.IsEmit() {
		out = append(out, n.Values()...)
		n = n.Next().Step()
	}
	return out, n.IsHalt()
}

// Attach fusion: attaching a stage that doubles
// every value ahead of a program that echoes whatever it reads observes
// the same output as echoing each input value twice directly.
func TestPropertyAttachLFusionMatchesManualExpansion(t *testing.T) {
	rapid.Check(t, func(rt *rapid.T) {
		values := rapid.SliceOfN(rapid.IntRange(-100, 100), 0, 10).Draw(rt, "values")

		var expanded []int
		for _, v := range values {
			expanded = append(expanded, v, v)
		}

		fused := AttachL[int, int, int, int](doubler(), echoL())
		n := FeedL(values, fused).Step()
		var got []int
		for n.IsEmit() {
			got = append(got, n.Values()...)
			n = n.Next().Step()
		}

		require.Equal(t, expanded, got)
	})
}
