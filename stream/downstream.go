// Package stream is the consumer-facing half of a wye: wrapping a
// runtime.Runtime's Get loop as a conventional Go sequence rather than
// handing out raw actor internals.
package stream

import (
	"errors"

	"github.com/hipjim/wye/cause"
	"github.com/hipjim/wye/runtime"
)

// Downstream adapts a Runtime's Get loop into repeated Next calls
// returning a batch or a terminal error: End becomes a plain
// (nil, false, nil) exhaustion, anything else is wrapped as an error.
type Downstream[L, R, O any] struct {
	rt *runtime.Runtime[L, R, O]
}

// New wraps rt, starting it if it has not already been started.
func New[L, R, O any](rt *runtime.Runtime[L, R, O]) (*Downstream[L, R, O], error) {
	if err := rt.Start(); err != nil && !errors.Is(err, runtime.ErrStarted) {
		return nil, err
	}
	return &Downstream[L, R, O]{rt: rt}, nil
}

// Next blocks for the next batch. ok is false once the run has
// terminated; err is nil for a normal End, wrapping any other cause.
func (d *Downstream[L, R, O]) Next() (batch []O, ok bool, err error) {
	batch, halted, c := d.rt.Next()
	if halted {
		return nil, false, WrapCause(c)
	}
	return batch, true, nil
}

// Stop abandons the stream, releasing both producers, without waiting
// for further Next calls.
func (d *Downstream[L, R, O]) Stop() error { return d.rt.Stop() }

// Snapshot exposes the underlying Runtime's diagnostic state.
func (d *Downstream[L, R, O]) Snapshot() runtime.Snapshot { return d.rt.Snapshot() }

// causeError wraps a non-End cause.Cause as an error, preserving the
// original wrapped error (if any) via errors.Unwrap.
type causeError struct {
	c cause.Cause
}

func (e *causeError) Error() string { return "wye: " + e.c.String() }
func (e *causeError) Unwrap() error { return e.c.Error() }

// WrapCause converts c into an error for a downstream consumer: nil for
// End, a *causeError otherwise.
func WrapCause(c cause.Cause) error {
	if c.IsEnd() {
		return nil
	}
	return &causeError{c: c}
}

// AsCause recovers the wrapped cause.Cause from an error produced by
// WrapCause, if any.
func AsCause(err error) (cause.Cause, bool) {
	var ce *causeError
	if errors.As(err, &ce) {
		return ce.c, true
	}
	return cause.Cause{}, false
}
