package combinator

import (
	"testing"

	"github.com/hipjim/wye/cause"
	"github.com/hipjim/wye/transform"
	"github.com/stretchr/testify/require"
)

func TestEchoLeftEmitsSeedOnFirstLeftValue(t *testing.T) {
	p := EchoLeft[int, string]()
	n := transform.Feed1L(1, p).Step()
	require.True(t, n.IsEmit())
	require.Equal(t, []int{1}, n.Values())
}

func TestEchoLeftRepeatsLastSeenLeftOnRight(t *testing.T) {
	p := EchoLeft[int, string]()
	n := transform.Feed1L(1, p).Step()
	n = n.Next().Step()
	require.True(t, n.IsAwaitBoth())

	n = n.RecvBoth(cause.ReceiveR[int, string]("x")).Step()
	require.True(t, n.IsEmit())
	require.Equal(t, []int{1}, n.Values())

	n = n.Next().Step()
	n = n.RecvBoth(cause.ReceiveR[int, string]("y")).Step()
	require.Equal(t, []int{1}, n.Values())
}

func TestEchoLeftUpdatesSeedOnNewLeftValue(t *testing.T) {
	p := EchoLeft[int, string]()
	n := transform.Feed1L(1, p).Step()
	n = n.Next().Step()

	n = n.RecvBoth(cause.ReceiveL[int, string](2)).Step()
	require.Equal(t, []int{2}, n.Values())

	n = n.Next().Step()
	n = n.RecvBoth(cause.ReceiveR[int, string]("z")).Step()
	require.Equal(t, []int{2}, n.Values())
}

func TestEchoLeftHaltsImmediatelyOnEitherSideHalting(t *testing.T) {
	p := EchoLeft[int, string]()
	n := transform.Feed1L(1, p).Step()
	n = n.Next().Step()

	n = n.RecvBoth(cause.HaltR[int, string](cause.End)).Step()
	require.True(t, n.IsHalt())
	require.True(t, n.HaltCause().IsEnd())
}
