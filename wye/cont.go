package wye

import "github.com/hipjim/wye/cause"

// Append runs p1 to completion, and when it halts with End continues as
// p2; any other halt cause propagates as-is. This is the "++" operator,
// used to define boundedQueue as yipWithL(n)(f) ++ passR.
func Append[L, R, O any](p1, p2 Program[L, R, O]) Program[L, R, O] {
	return func() Node[L, R, O] {
		n := p1.Step()
		switch {
		case n.IsHalt():
			if n.HaltCause().IsEnd() {
				return p2.Step()
			}
			return n
		case n.IsEmit():
			return Emit(n.Values(), Append(n.Next(), p2)).Step()
		case n.IsAwaitL():
			return AwaitL(func(in Input[L]) Program[L, R, O] {
				return Append(n.RecvL(in), p2)
			}).Step()
		case n.IsAwaitR():
			return AwaitR(func(in Input[R]) Program[L, R, O] {
				return Append(n.RecvR(in), p2)
			}).Step()
		default:
			return AwaitBoth(func(e cause.ReceiveY[L, R]) Program[L, R, O] {
				return Append(n.RecvBoth(e), p2)
			}).Step()
		}
	}
}

// Cont is an ordered stack of pending program continuations, run in turn
// as each one halts with End. Append already keeps each transformer call
// stack-bounded (one frame per Step, not per element of the merge's
// lifetime), so Cont here is just Append folded over a slice rather than
// a hand-rolled frame machine.
type Cont[L, R, O any] struct {
	frames []Program[L, R, O]
}

// Push prepends p so it runs before anything already queued in c.
func (c Cont[L, R, O]) Push(p Program[L, R, O]) Cont[L, R, O] {
	frames := make([]Program[L, R, O], 0, len(c.frames)+1)
	frames = append(frames, p)
	frames = append(frames, c.frames...)
	return Cont[L, R, O]{frames: frames}
}

// Continue runs the queued continuations in order, as a single Program.
// An empty Cont continues as Halt(End).
func (c Cont[L, R, O]) Continue() Program[L, R, O] {
	if len(c.frames) == 0 {
		return Halt[L, R, O](cause.End)
	}
	head := c.frames[0]
	rest := Cont[L, R, O]{frames: c.frames[1:]}
	return Append(head, rest.Continue())
}
