// Package runtime drives a wye.Program against two asynchronous
// Producers, exposing it downstream as a pull-based sequence of batches.
// It is the live half of the package: cause, wye and transform are pure;
// runtime is where a single-threaded serialized actor actually schedules
// reads, deliveries and cancellation.
package runtime

import (
	"sync"

	"github.com/hipjim/wye/cause"
	"github.com/hipjim/wye/wye"
)

// Runtime drives program p against left and right until it halts or
// downstream gives up.
type Runtime[L, R, O any] struct {
	a *actor[L, R, O]

	mu      sync.Mutex
	started bool
	stopped bool
}

// New builds a Runtime around p, left and right. It does not start the
// actor; call Start.
func New[L, R, O any](p wye.Program[L, R, O], left Producer[L], right Producer[R], opts Options) (*Runtime[L, R, O], error) {
	if opts.Executor == nil {
		return nil, ErrNoExecutor
	}
	return &Runtime[L, R, O]{a: newActor(p, left, right, opts)}, nil
}

// Start launches the actor loop on the configured Executor.
func (rt *Runtime[L, R, O]) Start() error {
	rt.mu.Lock()
	defer rt.mu.Unlock()
	if rt.started {
		return ErrStarted
	}
	rt.started = true
	rt.a.executor.Go(rt.a.run)
	return nil
}

// Next blocks until the next batch is ready, or the run has halted, in
// which case halted is true and cause explains why (End is normal
// completion).
func (rt *Runtime[L, R, O]) Next() (batch []O, halted bool, c cause.Cause) {
	reply := make(chan getResult[O], 1)
	rt.a.mailbox <- mail[L, R, O]{kind: msgGet, getReply: reply}
	res := <-reply
	return res.batch, res.halted, res.cause
}

// Stop announces downstream abandonment and blocks until cleanup
// completes: both producers reach a terminal state and any in-flight
// reads are cancelled.
func (rt *Runtime[L, R, O]) Stop() error {
	rt.mu.Lock()
	if rt.stopped {
		rt.mu.Unlock()
		return ErrStopped
	}
	rt.stopped = true
	rt.mu.Unlock()

	reply := make(chan struct{})
	rt.a.mailbox <- mail[L, R, O]{kind: msgDownDone, doneReply: reply}
	<-reply
	return nil
}

// Snapshot returns a point-in-time view of the runtime's internal state,
// fetched as a round-trip through the actor's own mailbox so it never
// races the actor goroutine.
func (rt *Runtime[L, R, O]) Snapshot() Snapshot {
	reply := make(chan Snapshot, 1)
	rt.a.mailbox <- mail[L, R, O]{kind: msgSnapshot, snapshotReply: reply}
	return <-reply
}

// KV returns the shared key/value store this Runtime was built with, or
// nil if Options.KV was never set. a.kv is set once in newActor and never
// mutated afterward, so reading it here needs no synchronization with the
// actor goroutine.
func (rt *Runtime[L, R, O]) KV() *KV {
	return rt.a.kv
}
