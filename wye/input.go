package wye

import "github.com/hipjim/wye/cause"

// Input is EarlyCause ⊕ A: the total delivery an AwaitL/AwaitR receiver
// must be prepared to handle, either a value or the reason the side
// terminated before producing one. Every recv is total: it must handle
// both cases.
type Input[A any] struct {
	hasValue bool
	value    A
	early    cause.EarlyCause
}

// Value wraps a produced value as a positive Input.
func Value[A any](a A) Input[A] { return Input[A]{hasValue: true, value: a} }

// Early wraps an early termination cause as a negative Input.
func Early[A any](e cause.EarlyCause) Input[A] { return Input[A]{early: e} }

// IsValue reports whether in carries a produced value.
func (in Input[A]) IsValue() bool { return in.hasValue }

// Value returns the produced value; only meaningful when IsValue().
func (in Input[A]) Value() A { return in.value }

// EarlyCause returns why the side terminated; only meaningful when !IsValue().
func (in Input[A]) EarlyCause() cause.EarlyCause { return in.early }
