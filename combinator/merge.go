package combinator

import (
	"github.com/hipjim/wye/cause"
	"github.com/hipjim/wye/transform"
	"github.com/hipjim/wye/wye"
)

// Merge emits each element of either side as soon as it is available.
// When one side ends with End it collapses to reading the other side
// alone; any EarlyCause on either side halts the whole merge with it.
func Merge[A any]() wye.Program[A, A, A] {
	return wye.AwaitBoth[A, A, A](func(e cause.ReceiveY[A, A]) wye.Program[A, A, A] {
		switch {
		case e.IsL():
			return wye.Emit([]A{e.Left()}, Merge[A]())
		case e.IsR():
			return wye.Emit([]A{e.Right()}, Merge[A]())
		case e.IsHaltL():
			if e.HaltCause().IsEnd() {
				return PassR[A, A]()
			}
			return wye.Halt[A, A, A](e.HaltCause())
		default:
			if e.HaltCause().IsEnd() {
				return PassL[A, A]()
			}
			return wye.Halt[A, A, A](e.HaltCause())
		}
	})
}

// MergeHaltL behaves like Merge, but terminates as soon as the left side
// finishes for any reason, including End.
func MergeHaltL[A any]() wye.Program[A, A, A] {
	return wye.AwaitBoth[A, A, A](func(e cause.ReceiveY[A, A]) wye.Program[A, A, A] {
		switch {
		case e.IsL():
			return wye.Emit([]A{e.Left()}, MergeHaltL[A]())
		case e.IsR():
			return wye.Emit([]A{e.Right()}, MergeHaltL[A]())
		case e.IsHaltL():
			return wye.Halt[A, A, A](e.HaltCause())
		default:
			if e.HaltCause().IsEnd() {
				return PassL[A, A]()
			}
			return wye.Halt[A, A, A](e.HaltCause())
		}
	})
}

// MergeHaltR is the mirror of MergeHaltL, derived by flipping so the two
// can never drift apart.
func MergeHaltR[A any]() wye.Program[A, A, A] {
	return transform.Flip(MergeHaltL[A]())
}

// MergeHaltBoth terminates as soon as either side finishes, even with End.
func MergeHaltBoth[A any]() wye.Program[A, A, A] {
	return wye.AwaitBoth[A, A, A](func(e cause.ReceiveY[A, A]) wye.Program[A, A, A] {
		switch {
		case e.IsL():
			return wye.Emit([]A{e.Left()}, MergeHaltBoth[A]())
		case e.IsR():
			return wye.Emit([]A{e.Right()}, MergeHaltBoth[A]())
		default:
			return wye.Halt[A, A, A](e.HaltCause())
		}
	})
}

// Either is like Merge, but tags each value with the side it came from.
func Either[L, R any]() wye.Program[L, R, Sided[L, R]] {
	return wye.AwaitBoth[L, R, Sided[L, R]](func(e cause.ReceiveY[L, R]) wye.Program[L, R, Sided[L, R]] {
		switch {
		case e.IsL():
			return wye.Emit([]Sided[L, R]{Lefted[L, R](e.Left())}, Either[L, R]())
		case e.IsR():
			return wye.Emit([]Sided[L, R]{Righted[L, R](e.Right())}, Either[L, R]())
		case e.IsHaltL():
			if e.HaltCause().IsEnd() {
				return passEitherR[L, R]()
			}
			return wye.Halt[L, R, Sided[L, R]](e.HaltCause())
		default:
			if e.HaltCause().IsEnd() {
				return passEitherL[L, R]()
			}
			return wye.Halt[L, R, Sided[L, R]](e.HaltCause())
		}
	})
}

func passEitherR[L, R any]() wye.Program[L, R, Sided[L, R]] {
	return wye.AwaitROr[L, R, Sided[L, R]](func(c cause.EarlyCause) wye.Program[L, R, Sided[L, R]] {
		return wye.Halt[L, R, Sided[L, R]](c.Cause())
	}, func(r R) wye.Program[L, R, Sided[L, R]] {
		return wye.Emit([]Sided[L, R]{Righted[L, R](r)}, passEitherR[L, R]())
	})
}

func passEitherL[L, R any]() wye.Program[L, R, Sided[L, R]] {
	return wye.AwaitLOr[L, R, Sided[L, R]](func(c cause.EarlyCause) wye.Program[L, R, Sided[L, R]] {
		return wye.Halt[L, R, Sided[L, R]](c.Cause())
	}, func(l L) wye.Program[L, R, Sided[L, R]] {
		return wye.Emit([]Sided[L, R]{Lefted[L, R](l)}, passEitherL[L, R]())
	})
}

// PassR forwards the right side's values untouched until it ends,
// ignoring the left entirely. Used to collapse merge/mergeHalt* once the
// left side has finished.
func PassR[L, R any]() wye.Program[L, R, R] {
	return wye.AwaitROr[L, R, R](func(c cause.EarlyCause) wye.Program[L, R, R] {
		return wye.Halt[L, R, R](c.Cause())
	}, func(r R) wye.Program[L, R, R] {
		return wye.Emit([]R{r}, PassR[L, R]())
	})
}

// PassL is the mirror of PassR.
func PassL[L, R any]() wye.Program[L, R, L] {
	return wye.AwaitLOr[L, R, L](func(c cause.EarlyCause) wye.Program[L, R, L] {
		return wye.Halt[L, R, L](c.Cause())
	}, func(l L) wye.Program[L, R, L] {
		return wye.Emit([]L{l}, PassL[L, R]())
	})
}
