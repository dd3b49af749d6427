package wye

import "github.com/hipjim/wye/cause"

// Stage is the single-input transformer contract: identical shape to
// Program minus the two-sided await, used by transform.AttachL/AttachR
// to splice a one-sided pipeline stage in front of a side before it
// reaches the merge program.
type Stage[A, B any] func() StageNode[A, B]

type stageKind byte

const (
	stageEmit stageKind = iota
	stageAwait
	stageHalt
)

// StageNode is one forced step of a Stage.
type StageNode[A, B any] struct {
	kind stageKind

	values []B
	next   Stage[A, B]

	recv func(Input[A]) Stage[A, B]

	haltCause cause.Cause
}

// Step forces s by one level.
func (s Stage[A, B]) Step() StageNode[A, B] { return s() }

// StageEmit produces a batch, then continues as next.
func StageEmit[A, B any](values []B, next Stage[A, B]) Stage[A, B] {
	return func() StageNode[A, B] { return StageNode[A, B]{kind: stageEmit, values: values, next: next} }
}

// StageAwait demands one input value. recv is total.
func StageAwait[A, B any](recv func(Input[A]) Stage[A, B]) Stage[A, B] {
	return func() StageNode[A, B] { return StageNode[A, B]{kind: stageAwait, recv: recv} }
}

// StageHalt terminates the stage with cause c.
func StageHalt[A, B any](c cause.Cause) Stage[A, B] {
	return func() StageNode[A, B] { return StageNode[A, B]{kind: stageHalt, haltCause: c} }
}

func (n StageNode[A, B]) IsEmit() bool  { return n.kind == stageEmit }
func (n StageNode[A, B]) IsAwait() bool { return n.kind == stageAwait }
func (n StageNode[A, B]) IsHalt() bool  { return n.kind == stageHalt }

func (n StageNode[A, B]) Values() []B          { return n.values }
func (n StageNode[A, B]) Next() Stage[A, B]    { return n.next }
func (n StageNode[A, B]) HaltCause() cause.Cause { return n.haltCause }

// Recv delivers v to an awaiting stage node's receiver.
func (n StageNode[A, B]) Recv(v Input[A]) Stage[A, B] { return n.recv(v) }

// IdentityStage passes every input straight through unchanged, the
// neutral element for AttachL/AttachR (attaching it is a no-op).
func IdentityStage[A any]() Stage[A, A] {
	var loop Stage[A, A]
	loop = StageAwait[A, A](func(in Input[A]) Stage[A, A] {
		if in.IsValue() {
			return StageEmit[A, A]([]A{in.Value()}, loop)
		}
		return StageHalt[A, A](in.EarlyCause().Cause())
	})
	return loop
}
