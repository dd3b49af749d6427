// Package transform holds structural rewrites over wye.Program: feeding
// a finite input sequence through a program synchronously, disconnecting
// a side early, and flipping L/R. These are the pieces runtime assembles
// into the live, concurrent driver.
package transform

import (
	"github.com/hipjim/wye/cause"
	"github.com/hipjim/wye/wye"
)

// FeedL drives p synchronously with values, consuming one value per
// AwaitL/AwaitBoth-left-demand. It never touches the right side: if p
// reaches an AwaitR before values is exhausted, feeding suspends there,
// returning a program that resumes feeding the remaining values once the
// right side actually produces (or halts).
func FeedL[L, R, O any](values []L, p wye.Program[L, R, O]) wye.Program[L, R, O] {
	return func() wye.Node[L, R, O] {
		n := p.Step()
		switch {
		case n.IsEmit():
			return wye.Emit(n.Values(), FeedL(values, n.Next())).Step()
		case n.IsHalt():
			return n
		case n.IsAwaitR():
			return wye.AwaitR[L, R, O](func(in wye.Input[R]) wye.Program[L, R, O] {
				return FeedL(values, n.RecvR(in))
			}).Step()
		case n.IsAwaitL():
			if len(values) == 0 {
				return n
			}
			return FeedL(values[1:], n.RecvL(wye.Value(values[0]))).Step()
		default: // AwaitBoth
			if len(values) == 0 {
				return n
			}
			return FeedL(values[1:], n.RecvBoth(cause.ReceiveL[L, R](values[0]))).Step()
		}
	}
}

// FeedR is the mirror of FeedL for the right side, defined as
// flip . feedL . flip so the two feeds can never drift apart.
func FeedR[L, R, O any](values []R, p wye.Program[L, R, O]) wye.Program[L, R, O] {
	return Flip(FeedL(values, Flip(p)))
}

// Feed1L feeds a single left value.
func Feed1L[L, R, O any](v L, p wye.Program[L, R, O]) wye.Program[L, R, O] {
	return FeedL([]L{v}, p)
}

// Feed1R feeds a single right value.
func Feed1R[L, R, O any](v R, p wye.Program[L, R, O]) wye.Program[L, R, O] {
	return FeedR([]R{v}, p)
}

// Feed1 delivers one ReceiveY event to p, dispatching to the matching
// feed or disconnect depending on whether it carries a value or a halt.
func Feed1[L, R, O any](e cause.ReceiveY[L, R], p wye.Program[L, R, O]) wye.Program[L, R, O] {
	switch {
	case e.IsL():
		return Feed1L(e.Left(), p)
	case e.IsR():
		return Feed1R(e.Right(), p)
	case e.IsHaltL():
		return HaltL(e.HaltCause(), p)
	default:
		return HaltR(e.HaltCause(), p)
	}
}
