package runtime

import "github.com/hipjim/wye/cause"

// Cancel interrupts an in-flight Producer read. It must be safe to call
// from any goroutine and is invoked at most once by the runtime; a
// Producer whose read is cancelled must still eventually resume with an
// EarlyCause (typically Kill) and release its resources.
type Cancel func(cause.EarlyCause)

// Producer is a cold asynchronous source: calling it starts a read.
// resume is invoked exactly once, either with a non-empty batch and the
// producer to resume with for the next read, or with a terminal cause
// and a nil next.
type Producer[A any] func(resume func(batch []A, next Producer[A], c cause.Cause)) Cancel

func noopCancel(cause.EarlyCause) {}

// sideStatus is one of Done, Reading(cancel), Idle(next).
type sideStatus byte

const (
	sideIdle sideStatus = iota
	sideReading
	sideDone
)

// side tracks one producer's lifecycle inside the actor: its next
// resumption while Idle, its cancel handle while Reading, or nothing once
// Done. Kill handling is exactly-once: after cancel fires, the handle is
// replaced with a no-op so a second kill attempt (e.g. from both a
// program halt and a racing DownDone) can never double-invoke it.
type side[A any] struct {
	status sideStatus
	next   Producer[A]
	cancel Cancel
}

// FromSlice returns a Producer that yields values one batch at a time
// (here, one value per batch) and then ends with End. It ignores
// cancellation cleanly, making it useful for tests and examples driving
// a Runtime from an in-memory sequence.
func FromSlice[A any](values []A) Producer[A] {
	var build func(i int) Producer[A]
	build = func(i int) Producer[A] {
		return func(resume func(batch []A, next Producer[A], c cause.Cause)) Cancel {
			if i >= len(values) {
				resume(nil, nil, cause.End)
			} else {
				resume([]A{values[i]}, build(i+1), cause.Cause{})
			}
			return noopCancel
		}
	}
	return build(0)
}
