package transform

import (
	"github.com/hipjim/wye/cause"
	"github.com/hipjim/wye/wye"
)

// HaltL announces that the left side terminated with cause c: an
// AwaitBoth already in flight is told first, then the left side is
// disconnected. c == cause.End is a natural exhaustion (the producer ran
// out of values), not a real kill, so any Halt(Kill) the disconnect
// synthesizes along the way is rewritten back to Halt(End) before it can
// reach a downstream consumer.
func HaltL[L, R, O any](c cause.Cause, p wye.Program[L, R, O]) wye.Program[L, R, O] {
	return func() wye.Node[L, R, O] {
		n := p.Step()
		next := wrapNode(n)
		if n.IsAwaitBoth() {
			next = n.RecvBoth(cause.HaltL[L, R](c))
		}
		early := earlyOrKill(c)
		disc := DisconnectL(early, next)
		if c.IsEnd() {
			disc = suppressKill(disc)
		}
		return disc.Step()
	}
}

// HaltR is the mirror of HaltL.
func HaltR[L, R, O any](c cause.Cause, p wye.Program[L, R, O]) wye.Program[L, R, O] {
	return Flip(HaltL(c, Flip(p)))
}

// Detach1L disconnects the left side because its input has run out
// normally: the downstream-visible behavior is HaltL(End, p).
func Detach1L[L, R, O any](p wye.Program[L, R, O]) wye.Program[L, R, O] {
	return HaltL[L, R, O](cause.End, p)
}

// Detach1R is the right-sided counterpart of Detach1L.
func Detach1R[L, R, O any](p wye.Program[L, R, O]) wye.Program[L, R, O] {
	return HaltR[L, R, O](cause.End, p)
}

func earlyOrKill(c cause.Cause) cause.EarlyCause {
	if c.IsEnd() {
		return cause.AsEarly(cause.Kill)
	}
	return cause.AsEarly(c)
}

func wrapNode[L, R, O any](n wye.Node[L, R, O]) wye.Program[L, R, O] {
	return func() wye.Node[L, R, O] { return n }
}

// SuppressKill rewrites a synthesized Halt(Kill) back to Halt(End). The
// runtime driver uses this at the downstream-unsubscription boundary, so
// a pipeline that cleanly ended because downstream went away reports
// End, never Kill.
func SuppressKill[L, R, O any](p wye.Program[L, R, O]) wye.Program[L, R, O] {
	return suppressKill(p)
}

func suppressKill[L, R, O any](p wye.Program[L, R, O]) wye.Program[L, R, O] {
	return func() wye.Node[L, R, O] {
		n := p.Step()
		switch {
		case n.IsHalt():
			if n.HaltCause().IsKill() {
				return wye.Halt[L, R, O](cause.End).Step()
			}
			return n
		case n.IsEmit():
			return wye.Emit(n.Values(), suppressKill(n.Next())).Step()
		case n.IsAwaitR():
			return wye.AwaitR[L, R, O](func(in wye.Input[R]) wye.Program[L, R, O] {
				return suppressKill(n.RecvR(in))
			}).Step()
		default:
			return n
		}
	}
}
