package combinator

import (
	"testing"

	"github.com/hipjim/wye/cause"
	"github.com/hipjim/wye/transform"
	"github.com/hipjim/wye/wye"
	"github.com/stretchr/testify/require"
)

func TestUnboundedQueueKillsOnLeftValue(t *testing.T) {
	p := UnboundedQueue[struct{}, int]()
	n := transform.Feed1L(struct{}{}, p).Step()
	require.True(t, n.IsHalt())
	require.True(t, n.HaltCause().IsKill())
}

func TestUnboundedQueueForwardsRightAfterLeftEnds(t *testing.T) {
	p := UnboundedQueue[struct{}, int]()
	narrowed := transform.HaltL[struct{}, int, int](cause.End, p)
	n := narrowed.Step()
	require.True(t, n.IsAwaitR())
	n2 := n.RecvR(wye.Value(7)).Step()
	require.Equal(t, []int{7}, n2.Values())
}

func TestBoundedQueueBlocksLeftAboveN(t *testing.T) {
	p := BoundedQueue[int, int](0)
	n := transform.Feed1L(1, p).Step()
	require.True(t, n.IsAwaitR())

	n2 := n.RecvR(wye.Value(9)).Step()
	require.True(t, n2.IsEmit())
	require.Equal(t, []int{9}, n2.Values())
}

func TestDrainRIsBoundedQueue(t *testing.T) {
	p1 := BoundedQueue[int, int](2)
	p2 := DrainR[int, int](2)

	n1 := transform.Feed1R(4, p1).Step()
	n2 := transform.Feed1R(4, p2).Step()
	require.Equal(t, n1.IsEmit(), n2.IsEmit())
	require.Equal(t, n1.Values(), n2.Values())
}

func TestDrainLIsFlippedBoundedQueue(t *testing.T) {
	p := DrainL[int, int](0)
	n := transform.Feed1R(5, p).Step()
	require.True(t, n.IsAwaitL())
	n2 := n.RecvL(wye.Value(2)).Step()
	require.Equal(t, []int{2}, n2.Values())
}
