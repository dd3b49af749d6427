package combinator

import (
	"testing"
	"time"

	"github.com/hipjim/wye/cause"
	"github.com/hipjim/wye/transform"
	"github.com/hipjim/wye/wye"
	"github.com/stretchr/testify/require"
)

func TestTimedQueueEmitsRightValuesUnderWatermark(t *testing.T) {
	p := TimedQueue[time.Time, int](time.Minute, 3)
	base := time.Now()

	n := transform.Feed1(cause.ReceiveL[time.Time, int](base), p).Step()
	require.True(t, n.IsAwaitBoth())

	n = n.RecvBoth(cause.ReceiveR[time.Time, int](7)).Step()
	require.True(t, n.IsEmit())
	require.Equal(t, []int{7}, n.Values())
}

func TestTimedQueueBlocksRightWhenBufferExceedsMaxSize(t *testing.T) {
	p := TimedQueue[time.Time, int](time.Hour, 1)
	base := time.Now()

	n := transform.Feed1(cause.ReceiveL[time.Time, int](base), p).Step()
	n = n.RecvBoth(cause.ReceiveL[time.Time, int](base.Add(time.Second))).Step()
	require.True(t, n.IsAwaitL())
}

// The span check compares buf[0] (oldest appended, not necessarily the
// oldest timestamp) against the newly appended value, so it only blocks
// when timestamps arrive out of order and regress by more than d - it
// does not catch a forward-moving span that simply grows past d.
func TestTimedQueueBlocksOnlyWhenTimestampsRegressPastDuration(t *testing.T) {
	p := TimedQueue[time.Time, int](time.Second, 10)
	base := time.Now()

	n := transform.Feed1(cause.ReceiveL[time.Time, int](base), p).Step()

	forward := n.RecvBoth(cause.ReceiveL[time.Time, int](base.Add(time.Hour))).Step()
	require.True(t, forward.IsAwaitBoth())

	regressed := n.RecvBoth(cause.ReceiveL[time.Time, int](base.Add(-2 * time.Second))).Step()
	require.True(t, regressed.IsAwaitL())
}

func TestTimedQueuePassesRightThroughAfterLeftEnds(t *testing.T) {
	p := TimedQueue[time.Time, int](time.Minute, 3)
	narrowed := transform.HaltL[time.Time, int, int](cause.End, p)
	n := narrowed.Step()
	require.True(t, n.IsAwaitR())

	n2 := n.RecvR(wye.Value(5)).Step()
	require.Equal(t, []int{5}, n2.Values())
}
