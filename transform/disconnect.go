package transform

import (
	"github.com/hipjim/wye/cause"
	"github.com/hipjim/wye/wye"
)

// DisconnectL cuts the left side out of p: every AwaitL is answered
// immediately with the early cause c, and an AwaitBoth already in flight
// is rewritten to an AwaitR that keeps delivering right-side events to
// the same receiver. It never itself announces that the left side ended
// to an AwaitBoth receiver; callers that need that do it before calling
// DisconnectL (see HaltL).
func DisconnectL[L, R, O any](c cause.EarlyCause, p wye.Program[L, R, O]) wye.Program[L, R, O] {
	return func() wye.Node[L, R, O] {
		n := p.Step()
		switch {
		case n.IsHalt():
			return n
		case n.IsEmit():
			return wye.Emit(n.Values(), DisconnectL(c, n.Next())).Step()
		case n.IsAwaitL():
			return DisconnectL(c, n.RecvL(wye.Early[L](c))).Step()
		case n.IsAwaitR():
			return wye.AwaitR[L, R, O](func(in wye.Input[R]) wye.Program[L, R, O] {
				return DisconnectL(c, n.RecvR(in))
			}).Step()
		default: // AwaitBoth
			return wye.AwaitR[L, R, O](func(in wye.Input[R]) wye.Program[L, R, O] {
				if in.IsValue() {
					return DisconnectL(c, n.RecvBoth(cause.ReceiveR[L, R](in.Value())))
				}
				return DisconnectL(c, n.RecvBoth(cause.HaltR[L, R](in.EarlyCause().Cause())))
			}).Step()
		}
	}
}

// DisconnectR is the mirror of DisconnectL, defined by flipping so the
// two can never drift apart (resolves the symmetry question between the
// left- and right-sided disconnect in favor of one shared implementation).
func DisconnectR[L, R, O any](c cause.EarlyCause, p wye.Program[L, R, O]) wye.Program[L, R, O] {
	return Flip(DisconnectL(c, Flip(p)))
}
