package combinator

import (
	"github.com/hipjim/wye/cause"
	"github.com/hipjim/wye/transform"
	"github.com/hipjim/wye/wye"
)

// UnboundedQueue emits right values only. A left value arriving at all is
// a protocol violation (this combinator is meant to sit behind a left
// producer that only ever signals, never delivers) and kills the merge;
// the left side ending is fine and simply narrows demand to the right.
func UnboundedQueue[L, R any]() wye.Program[L, R, R] {
	return wye.AwaitBoth[L, R, R](func(e cause.ReceiveY[L, R]) wye.Program[L, R, R] {
		switch {
		case e.IsL():
			return wye.Halt[L, R, R](cause.Kill)
		case e.IsR():
			return wye.Emit([]R{e.Right()}, UnboundedQueue[L, R]())
		case e.IsHaltL():
			return PassR[L, R]()
		default:
			return wye.Halt[L, R, R](e.HaltCause())
		}
	})
}

// BoundedQueue emits right values, allowing up to n left values to arrive
// unread before blocking the left producer; after the left side ends, the
// remainder of the right side passes through untouched. Defined exactly
// as spec'd: yipWithL(n)((_, r) => r) ++ passR.
func BoundedQueue[L, R any](n int) wye.Program[L, R, R] {
	return wye.Append(YipWithL(n, func(_ L, r R) R { return r }), PassR[L, R]())
}

// DrainR is BoundedQueue under another name: it echoes the right side
// while buffering up to n values from the left.
func DrainR[L, R any](n int) wye.Program[L, R, R] {
	return BoundedQueue[L, R](n)
}

// DrainL echoes the left side while buffering up to n values from the
// right, the mirror of DrainR obtained by flipping BoundedQueue's roles.
func DrainL[L, R any](n int) wye.Program[L, R, L] {
	return transform.Flip(BoundedQueue[R, L](n))
}
