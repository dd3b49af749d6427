package combinator

import (
	"testing"

	"github.com/hipjim/wye/cause"
	"github.com/hipjim/wye/wye"
	"github.com/stretchr/testify/require"
)

// A self-modifying program that starts left-biased, switches to the
// right after every left value, and back to the left after every right
// value - delivering left 1, right 9, left 2 emits them in that order.
func TestDynamicSwitchesSidesPerModeFunctions(t *testing.T) {
	modeOfLeft := func(int) Mode { return ModeR }
	modeOfRight := func(int) Mode { return ModeL }

	p := Dynamic(modeOfLeft, modeOfRight)

	n := p.Step()
	require.True(t, n.IsAwaitL())

	n = n.RecvL(wye.Value(1)).Step()
	require.True(t, n.IsEmit())
	require.Equal(t, 1, n.Values()[0].Left())

	n = n.Next().Step()
	require.True(t, n.IsAwaitR())

	n = n.RecvR(wye.Value(9)).Step()
	require.True(t, n.IsEmit())
	require.Equal(t, 9, n.Values()[0].Right())

	n = n.Next().Step()
	require.True(t, n.IsAwaitL())

	n = n.RecvL(wye.Value(2)).Step()
	require.Equal(t, 2, n.Values()[0].Left())
}

func TestDynamicHaltsOnEarlyCauseFromActiveSide(t *testing.T) {
	p := Dynamic(func(int) Mode { return ModeL }, func(int) Mode { return ModeL })
	n := p.Step()
	require.True(t, n.IsAwaitL())

	n = n.RecvL(wye.Early[int](cause.AsEarly(cause.Kill))).Step()
	require.True(t, n.IsHalt())
	require.True(t, n.HaltCause().IsKill())
}

func TestDynamicModeBothAwaitsBothSides(t *testing.T) {
	p := Dynamic(func(int) Mode { return ModeBoth }, func(int) Mode { return ModeBoth })
	n := p.Step()
	require.True(t, n.IsAwaitL())

	n = n.RecvL(wye.Value(-1)).Step()
	require.True(t, n.IsEmit())
	n = n.Next().Step()
	require.True(t, n.IsAwaitBoth())

	n = n.RecvBoth(cause.ReceiveR[int, int](5)).Step()
	require.True(t, n.IsEmit())
	require.Equal(t, 5, n.Values()[0].Right())
}

func TestDynamic1FlattensToRawValue(t *testing.T) {
	p := Dynamic1(func(int) Mode { return ModeR })
	n := p.Step()
	require.True(t, n.IsAwaitL())

	n = n.RecvL(wye.Value(7)).Step()
	require.True(t, n.IsEmit())
	require.Equal(t, []int{7}, n.Values())

	n = n.Next().Step()
	require.True(t, n.IsAwaitR())
}
