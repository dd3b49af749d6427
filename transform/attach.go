package transform

import (
	"github.com/hipjim/wye/cause"
	"github.com/hipjim/wye/wye"
)

// AttachL splices stage in front of p's left side: every value p would
// have read from its left producer is instead produced by running the
// producer's raw values through stage first. stage's own termination
// disconnects p's left side (via HaltL), same as the producer itself
// running out. AttachR is the mirror, defined via Flip.
func AttachL[NewL, L, R, O any](stage wye.Stage[NewL, L], p wye.Program[L, R, O]) wye.Program[NewL, R, O] {
	return attachLoop(leftFeed[NewL, L]{stage: stage}, p)
}

// AttachR splices stage in front of p's right side.
func AttachR[NewR, L, R, O any](stage wye.Stage[NewR, R], p wye.Program[L, R, O]) wye.Program[L, NewR, O] {
	return Flip(AttachL(stage, Flip(p)))
}

// leftFeed tracks the state of the stage interposed between the real
// left producer and a program: either values already drained from the
// stage waiting to be handed to the program one at a time, a live stage
// still awaiting more raw input, or a record that the stage has halted.
type leftFeed[NewL, L any] struct {
	pending []L
	stage   wye.Stage[NewL, L]
	done    bool
	cause   cause.Cause
}

// advance drains stage's Emit chain until it either runs out of already
// produced values (stage now awaits more raw input) or halts.
func advanceLeft[NewL, L any](lf leftFeed[NewL, L]) leftFeed[NewL, L] {
	if lf.done || len(lf.pending) > 0 {
		return lf
	}
	s := lf.stage
	var acc []L
	for {
		n := s.Step()
		switch {
		case n.IsEmit():
			acc = append(acc, n.Values()...)
			s = n.Next()
		case n.IsHalt():
			return leftFeed[NewL, L]{pending: acc, done: true, cause: n.HaltCause()}
		default: // await
			return leftFeed[NewL, L]{pending: acc, stage: s}
		}
	}
}

func (lf leftFeed[NewL, L]) take() (L, leftFeed[NewL, L]) {
	v := lf.pending[0]
	lf.pending = lf.pending[1:]
	return v, lf
}

func feedLeftValue[NewL, L any](stage wye.Stage[NewL, L], a NewL) wye.Stage[NewL, L] {
	return stage.Step().Recv(wye.Value(a))
}

func feedLeftEarly[NewL, L any](stage wye.Stage[NewL, L], c cause.EarlyCause) wye.Stage[NewL, L] {
	return stage.Step().Recv(wye.Early[NewL](c))
}

// attachLoop is the core driver: p is the untranslated program, lf is the
// state of the stage feeding its left side.
func attachLoop[NewL, L, R, O any](lf leftFeed[NewL, L], p wye.Program[L, R, O]) wye.Program[NewL, R, O] {
	return func() wye.Node[NewL, R, O] {
		n := p.Step()
		switch {
		case n.IsHalt():
			return wye.Halt[NewL, R, O](n.HaltCause()).Step()
		case n.IsEmit():
			return wye.Emit[NewL, R, O](n.Values(), attachLoop(lf, n.Next())).Step()
		case n.IsAwaitR():
			return wye.AwaitR[NewL, R, O](func(in wye.Input[R]) wye.Program[NewL, R, O] {
				return attachLoop(lf, n.RecvR(in))
			}).Step()
		case n.IsAwaitL():
			return attachDriveLeft(lf, func(v L, lf2 leftFeed[NewL, L]) wye.Program[NewL, R, O] {
				return attachLoop(lf2, n.RecvL(wye.Value(v)))
			}, func(c cause.Cause, lf2 leftFeed[NewL, L]) wye.Program[NewL, R, O] {
				pAtN := wrapNode(n)
				return AttachL[NewL, L, R, O](lf2.stage, HaltL(c, pAtN))
			}, func(lf2 leftFeed[NewL, L]) wye.Program[NewL, R, O] {
				return attachLoop(lf2, wrapNode(n))
			}).Step()
		default: // AwaitBoth
			return wye.AwaitBoth[NewL, R, O](func(e cause.ReceiveY[NewL, R]) wye.Program[NewL, R, O] {
				switch {
				case e.IsR():
					return attachLoop(lf, n.RecvBoth(cause.ReceiveR[L, R](e.Right())))
				case e.IsHaltR():
					return attachLoop(lf, n.RecvBoth(cause.HaltR[L, R](e.HaltCause())))
				case e.IsL():
					fed := leftFeed[NewL, L]{stage: feedLeftValue(lf.stage, e.Left())}
					return attachDriveLeft(advanceLeft(fed), func(v L, lf2 leftFeed[NewL, L]) wye.Program[NewL, R, O] {
						return attachLoop(lf2, n.RecvBoth(cause.ReceiveL[L, R](v)))
					}, func(c cause.Cause, lf2 leftFeed[NewL, L]) wye.Program[NewL, R, O] {
						pAtN := wrapNode(n)
						return AttachL[NewL, L, R, O](lf2.stage, HaltL(c, pAtN))
					}, func(lf2 leftFeed[NewL, L]) wye.Program[NewL, R, O] {
						return attachLoop(lf2, wrapNode(n))
					})
				default: // HaltL: the real NewL producer is gone, tell the stage
					fed := leftFeed[NewL, L]{stage: feedLeftEarly(lf.stage, cause.AsEarly(e.HaltCause()))}
					return attachDriveLeft(advanceLeft(fed), func(v L, lf2 leftFeed[NewL, L]) wye.Program[NewL, R, O] {
						return attachLoop(lf2, n.RecvBoth(cause.ReceiveL[L, R](v)))
					}, func(c cause.Cause, lf2 leftFeed[NewL, L]) wye.Program[NewL, R, O] {
						pAtN := wrapNode(n)
						return AttachL[NewL, L, R, O](lf2.stage, HaltL(c, pAtN))
					}, func(lf2 leftFeed[NewL, L]) wye.Program[NewL, R, O] {
						return attachLoop(lf2, wrapNode(n))
					})
				}
			}).Step()
		}
	}
}

// attachDriveLeft resolves lf (already advanced) into exactly one of:
// a value ready to deliver, the stage having halted (so the program's
// left side must be disconnected with its halt cause), or the need to
// wait for more raw NewL input.
func attachDriveLeft[NewL, L, R, O any](
	lf leftFeed[NewL, L],
	onValue func(L, leftFeed[NewL, L]) wye.Program[NewL, R, O],
	onHalted func(cause.Cause, leftFeed[NewL, L]) wye.Program[NewL, R, O],
	onAwait func(leftFeed[NewL, L]) wye.Program[NewL, R, O],
) wye.Program[NewL, R, O] {
	lf = advanceLeft(lf)
	if len(lf.pending) > 0 {
		v, rest := lf.take()
		return onValue(v, rest)
	}
	if lf.done {
		return onHalted(lf.cause, lf)
	}
	return wye.AwaitL[NewL, R, O](func(in wye.Input[NewL]) wye.Program[NewL, R, O] {
		var next leftFeed[NewL, L]
		if in.IsValue() {
			next = advanceLeft(leftFeed[NewL, L]{stage: feedLeftValue(lf.stage, in.Value())})
		} else {
			next = advanceLeft(leftFeed[NewL, L]{stage: feedLeftEarly(lf.stage, in.EarlyCause())})
		}
		return onAwait(next)
	})
}
