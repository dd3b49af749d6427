// Package wye implements the reified two-input merge program algebra:
// a coinductive tree whose leaves are Halt and whose internal nodes ask
// for a value from the left producer, the right producer, whichever
// resolves first, or emit a batch downstream.
package wye

import "github.com/hipjim/wye/cause"

type kind byte

const (
	kindHalt kind = iota
	kindEmit
	kindAwaitL
	kindAwaitR
	kindAwaitBoth
)

// Node is one step of a Program: the shape the runtime or a transformer
// sees when it forces the coinductive tree by one level.
type Node[L, R, O any] struct {
	kind kind

	// kindEmit
	values []O
	next   Program[L, R, O]

	// kindAwaitL / kindAwaitR
	recvL func(Input[L]) Program[L, R, O]
	recvR func(Input[R]) Program[L, R, O]

	// kindAwaitBoth
	recvBoth func(cause.ReceiveY[L, R]) Program[L, R, O]

	// kindHalt
	haltCause cause.Cause
}

// IsHalt, IsEmit, ... are the only way outside the package to tell the
// five shapes apart; the kind tag itself stays unexported.
func (n Node[L, R, O]) IsHalt() bool      { return n.kind == kindHalt }
func (n Node[L, R, O]) IsEmit() bool      { return n.kind == kindEmit }
func (n Node[L, R, O]) IsAwaitL() bool    { return n.kind == kindAwaitL }
func (n Node[L, R, O]) IsAwaitR() bool    { return n.kind == kindAwaitR }
func (n Node[L, R, O]) IsAwaitBoth() bool { return n.kind == kindAwaitBoth }

// Values returns the emitted batch; valid only when IsEmit().
func (n Node[L, R, O]) Values() []O { return n.values }

// Next returns the continuation after an Emit; valid only when IsEmit().
func (n Node[L, R, O]) Next() Program[L, R, O] { return n.next }

// HaltCause returns why the program halted; valid only when IsHalt().
func (n Node[L, R, O]) HaltCause() cause.Cause { return n.haltCause }

// RecvL delivers v (or an early cause) to an AwaitL node's receiver.
func (n Node[L, R, O]) RecvL(v Input[L]) Program[L, R, O] { return n.recvL(v) }

// RecvR delivers v (or an early cause) to an AwaitR node's receiver.
func (n Node[L, R, O]) RecvR(v Input[R]) Program[L, R, O] { return n.recvR(v) }

// RecvBoth delivers a race outcome to an AwaitBoth node's receiver.
func (n Node[L, R, O]) RecvBoth(e cause.ReceiveY[L, R]) Program[L, R, O] { return n.recvBoth(e) }

// Program is a lazily-forced merge program: calling it (or Step) produces
// one Node of the coinductive tree. Representing it as a thunk rather than
// an eagerly-built struct is what makes self-modifying programs (dynamic,
// boundedQueue) possible: each recv closes over whatever state it needs
// and builds its continuation only when asked.
type Program[L, R, O any] func() Node[L, R, O]

// Step forces p by one level. It never recurses into p's continuation,
// so forcing a long chain of programs (as the runtime does, one Step per
// actor event) never grows the call stack proportionally to how long the
// merge has been running.
func (p Program[L, R, O]) Step() Node[L, R, O] { return p() }

// Halt terminates a program with cause c.
func Halt[L, R, O any](c cause.Cause) Program[L, R, O] {
	return func() Node[L, R, O] {
		return Node[L, R, O]{kind: kindHalt, haltCause: c}
	}
}

// Emit produces a finite batch downstream, then continues as next.
func Emit[L, R, O any](values []O, next Program[L, R, O]) Program[L, R, O] {
	return func() Node[L, R, O] {
		return Node[L, R, O]{kind: kindEmit, values: values, next: next}
	}
}

// AwaitL demands one value from the left producer. recv is total: it
// must handle both a delivered value and an early termination cause.
func AwaitL[L, R, O any](recv func(Input[L]) Program[L, R, O]) Program[L, R, O] {
	return func() Node[L, R, O] {
		return Node[L, R, O]{kind: kindAwaitL, recvL: recv}
	}
}

// AwaitR demands one value from the right producer. recv is total.
func AwaitR[L, R, O any](recv func(Input[R]) Program[L, R, O]) Program[L, R, O] {
	return func() Node[L, R, O] {
		return Node[L, R, O]{kind: kindAwaitR, recvR: recv}
	}
}

// AwaitBoth demands whichever of left/right resolves first.
func AwaitBoth[L, R, O any](recv func(cause.ReceiveY[L, R]) Program[L, R, O]) Program[L, R, O] {
	return func() Node[L, R, O] {
		return Node[L, R, O]{kind: kindAwaitBoth, recvBoth: recv}
	}
}

// AwaitLOr is sugar for an AwaitL whose recv routes early causes to
// fallback and values to recv.
func AwaitLOr[L, R, O any](fallback func(cause.EarlyCause) Program[L, R, O], recv func(L) Program[L, R, O]) Program[L, R, O] {
	return AwaitL[L, R, O](func(in Input[L]) Program[L, R, O] {
		if in.IsValue() {
			return recv(in.Value())
		}
		return fallback(in.EarlyCause())
	})
}

// AwaitROr is the right-sided counterpart of AwaitLOr.
func AwaitROr[L, R, O any](fallback func(cause.EarlyCause) Program[L, R, O], recv func(R) Program[L, R, O]) Program[L, R, O] {
	return AwaitR[L, R, O](func(in Input[R]) Program[L, R, O] {
		if in.IsValue() {
			return recv(in.Value())
		}
		return fallback(in.EarlyCause())
	})
}

// Done reports whether p reduces to Halt without any pure rewriting
// remaining, i.e. whether forcing it once yields a halted node.
func Done[L, R, O any](p Program[L, R, O]) bool {
	return p.Step().IsHalt()
}
