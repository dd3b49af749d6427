package combinator

import (
	"github.com/hipjim/wye/cause"
	"github.com/hipjim/wye/wye"
)

// YipWithL pairs left and right values one-for-one, combining each pair
// with f, with a left-side buffer of size n: when the buffer is empty
// only the left is read, when it is above n only the right is read (to
// drain a pair), and in between either side may resolve the race. Once
// the left side ends, remaining buffered values are drained against the
// right regardless of n, and the whole halts with the left's cause once
// the buffer empties.
func YipWithL[L, R, O any](n int, f func(L, R) O) wye.Program[L, R, O] {
	return yipLoop[L, R, O](n, f, nil, false, cause.End)
}

// YipWith pairs with no left-side buffer: l and r must arrive in lockstep.
func YipWith[L, R, O any](f func(L, R) O) wye.Program[L, R, O] {
	return YipWithL(0, f)
}

// YipL pairs left and right into a Sided carrying both values (its side
// tag is always SideL), buffering up to n left values.
func YipL[L, R any](n int) wye.Program[L, R, Sided[L, R]] {
	return YipWithL(n, func(l L, r R) Sided[L, R] {
		return Sided[L, R]{side: cause.SideL, left: l, right: r}
	})
}

// Yip pairs left and right one-for-one with no buffering.
func Yip[L, R any]() wye.Program[L, R, Sided[L, R]] {
	return YipL[L, R](0)
}

func yipLoop[L, R, O any](n int, f func(L, R) O, buf []L, leftDone bool, leftCause cause.Cause) wye.Program[L, R, O] {
	if leftDone && len(buf) == 0 {
		return wye.Halt[L, R, O](leftCause)
	}
	switch {
	case leftDone || len(buf) > n:
		return wye.AwaitROr[L, R, O](func(c cause.EarlyCause) wye.Program[L, R, O] {
			return wye.Halt[L, R, O](c.Cause())
		}, func(r R) wye.Program[L, R, O] {
			l := buf[0]
			return wye.Emit([]O{f(l, r)}, yipLoop(n, f, buf[1:], leftDone, leftCause))
		})
	case len(buf) == 0:
		return wye.AwaitLOr[L, R, O](func(c cause.EarlyCause) wye.Program[L, R, O] {
			return yipLoop(n, f, nil, true, c.Cause())
		}, func(l L) wye.Program[L, R, O] {
			return yipLoop(n, f, []L{l}, false, cause.End)
		})
	default:
		return wye.AwaitBoth[L, R, O](func(e cause.ReceiveY[L, R]) wye.Program[L, R, O] {
			switch {
			case e.IsL():
				next := append(append([]L{}, buf...), e.Left())
				return yipLoop(n, f, next, false, cause.End)
			case e.IsR():
				l := buf[0]
				return wye.Emit([]O{f(l, e.Right())}, yipLoop(n, f, buf[1:], leftDone, leftCause))
			case e.IsHaltL():
				return yipLoop(n, f, buf, true, e.HaltCause())
			default:
				return wye.Halt[L, R, O](e.HaltCause())
			}
		})
	}
}
