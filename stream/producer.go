package stream

import (
	"github.com/hipjim/wye/cause"
	"github.com/hipjim/wye/runtime"
)

// Producer is the external collaborator that feeds one side of a stream:
// re-exported here so callers assembling a stream don't need to import
// runtime just to name the type.
type Producer[A any] = runtime.Producer[A]

// FromChannel adapts a Go channel into a Producer. A closed channel
// resumes with End; a cancelled read resumes with whatever EarlyCause
// the runtime cancelled it with.
func FromChannel[A any](ch <-chan A) Producer[A] {
	var read func(resume func(batch []A, next Producer[A], c cause.Cause)) runtime.Cancel
	read = func(resume func(batch []A, next Producer[A], c cause.Cause)) runtime.Cancel {
		cancelled := make(chan cause.EarlyCause, 1)
		go func() {
			select {
			case v, ok := <-ch:
				if !ok {
					resume(nil, nil, cause.End)
					return
				}
				resume([]A{v}, read, cause.Cause{})
			case c := <-cancelled:
				resume(nil, nil, c.Cause())
			}
		}()
		return func(c cause.EarlyCause) {
			select {
			case cancelled <- c:
			default:
			}
		}
	}
	return read
}
