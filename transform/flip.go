package transform

import (
	"github.com/hipjim/wye/cause"
	"github.com/hipjim/wye/wye"
)

// Flip swaps the left and right roles of p, so whatever was demanded of
// or emitted from the left now belongs to the right and vice versa.
// transform.AttachR and FeedR are both defined in terms of Flip so the
// left- and right-biased halves of the package can never drift apart.
func Flip[L, R, O any](p wye.Program[L, R, O]) wye.Program[R, L, O] {
	return func() wye.Node[R, L, O] {
		n := p.Step()
		switch {
		case n.IsHalt():
			return wye.Halt[R, L, O](n.HaltCause()).Step()
		case n.IsEmit():
			return wye.Emit[R, L, O](n.Values(), Flip(n.Next())).Step()
		case n.IsAwaitL():
			return wye.AwaitR[R, L, O](func(in wye.Input[L]) wye.Program[R, L, O] {
				return Flip(n.RecvL(in))
			}).Step()
		case n.IsAwaitR():
			return wye.AwaitL[R, L, O](func(in wye.Input[R]) wye.Program[R, L, O] {
				return Flip(n.RecvR(in))
			}).Step()
		default: // AwaitBoth
			return wye.AwaitBoth[R, L, O](func(e cause.ReceiveY[R, L]) wye.Program[R, L, O] {
				return Flip(n.RecvBoth(cause.Flip(e)))
			}).Step()
		}
	}
}
