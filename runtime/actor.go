package runtime

import (
	"github.com/hipjim/wye/cause"
	"github.com/hipjim/wye/transform"
	"github.com/hipjim/wye/wye"
	"github.com/rs/zerolog"
)

type msgKind byte

const (
	msgReadyL msgKind = iota
	msgReadyR
	msgGet
	msgDownDone
	msgSnapshot
)

// mail is the single mailbox message shape the actor consumes, tagged by
// kind; only the fields relevant to that kind are populated. A tagged
// struct stands in for a Ready/Get/DownDone sum type, since Go has no
// union types.
type mail[L, R, O any] struct {
	kind msgKind

	lBatch  []L
	lNext   Producer[L]
	lHalted bool
	lCause  cause.Cause

	rBatch  []R
	rNext   Producer[R]
	rHalted bool
	rCause  cause.Cause

	getReply      chan getResult[O]
	doneReply     chan struct{}
	snapshotReply chan Snapshot
}

// Snapshot is a point-in-time view of a Runtime's actor state, for
// diagnostics: nothing in the package reads actor fields from outside
// the mailbox, so Snapshot is itself fetched as a mailbox round-trip.
type Snapshot struct {
	LeftStatus  string
	RightStatus string
	Halted      bool
	HaltCause   string
	HasPending  bool
}

func (s sideStatus) String() string {
	switch s {
	case sideIdle:
		return "idle"
	case sideReading:
		return "reading"
	default:
		return "done"
	}
}

type getResult[O any] struct {
	batch  []O
	halted bool
	cause  cause.Cause
}

// actor owns all of a Runtime's mutable state and processes its mailbox
// one message at a time to completion, keeping every mutation
// single-threaded.
type actor[L, R, O any] struct {
	program wye.Program[L, R, O]

	left  side[L]
	right side[R]

	leftBias bool

	pending chan getResult[O] // the Get callback waiting for the next batch, if any
	waiting chan struct{}     // the DownDone callback waiting for cleanup, if any

	halted    bool
	haltCause cause.Cause

	mailbox  chan mail[L, R, O]
	executor Executor
	logger   *zerolog.Logger
	trace    bool
	kv       *KV
}

func newActor[L, R, O any](p wye.Program[L, R, O], left Producer[L], right Producer[R], opts Options) *actor[L, R, O] {
	logger := opts.logger()
	a := &actor[L, R, O]{
		program:  p,
		left:     side[L]{status: sideIdle, next: left},
		right:    side[R]{status: sideIdle, next: right},
		leftBias: true,
		mailbox:  make(chan mail[L, R, O], 16),
		executor: opts.Executor,
		logger:   logger,
		trace:    opts.Trace,
		kv:       opts.KV,
	}
	return a
}

func (a *actor[L, R, O]) run() {
	a.logger.Info().Msg("runtime start")
	a.runY()
	downDone := false
	for m := range a.mailbox {
		switch m.kind {
		case msgReadyL:
			a.onReadyL(m.lBatch, m.lNext, m.lHalted, m.lCause)
		case msgReadyR:
			a.onReadyR(m.rBatch, m.rNext, m.rHalted, m.rCause)
		case msgGet:
			a.onGet(m.getReply)
		case msgDownDone:
			downDone = true
			a.onDownDone(m.doneReply)
		case msgSnapshot:
			m.snapshotReply <- Snapshot{
				LeftStatus:  a.left.status.String(),
				RightStatus: a.right.status.String(),
				Halted:      a.halted,
				HaltCause:   a.haltCause.String(),
				HasPending:  a.pending != nil,
			}
		}
		// Get and Snapshot are still answered after the program halts; the
		// loop ends only once the DownDone cleanup has been acknowledged.
		if downDone && a.waiting == nil && a.halted && a.left.status == sideDone && a.right.status == sideDone {
			return
		}
	}
}

// logDemand records a per-step await at Debug level, gated on Trace so a
// busy Runtime isn't forced to pay for logging it never asked for.
func (a *actor[L, R, O]) logDemand(side string) {
	if !a.trace {
		return
	}
	a.logger.Debug().Str("side", side).Msg("await")
}

// logEmit records a per-step emit at Debug level, attaching a
// correlation id from the first value in the batch if it implements
// Traceable.
func (a *actor[L, R, O]) logEmit(batch []O) {
	if !a.trace {
		return
	}
	ev := a.logger.Debug().Int("n", len(batch))
	if len(batch) > 0 {
		ev = traceFields(ev, batch[0])
	}
	ev.Msg("emit")
}

// runY forces the program repeatedly, discarding empty emits, and stops
// as soon as it reaches a node that needs something from outside (a
// pending Get, a producer read, or a halt to clean up).
func (a *actor[L, R, O]) runY() {
	for {
		n := a.program.Step()
		if n.IsEmit() && len(n.Values()) == 0 {
			a.program = n.Next()
			continue
		}
		switch {
		case n.IsEmit():
			if a.pending != nil {
				reply := a.pending
				a.pending = nil
				batch := n.Values()
				a.program = n.Next()
				a.logEmit(batch)
				reply <- getResult[O]{batch: batch}
			}
		case n.IsHalt():
			first := !a.halted
			a.halted = true
			a.haltCause = n.HaltCause()
			a.killLeft()
			a.killRight()
			if first {
				a.logger.Info().Str("cause", a.haltCause.String()).Msg("runtime stop")
			}
			a.tryComplete()
		case n.IsAwaitL():
			a.leftBias = false
			a.logDemand("left")
			a.startLeft()
		case n.IsAwaitR():
			a.leftBias = true
			a.logDemand("right")
			a.startRight()
		default: // AwaitBoth
			a.logDemand("both")
			if a.leftBias {
				a.startLeft()
				a.startRight()
			} else {
				a.startRight()
				a.startLeft()
			}
			a.leftBias = !a.leftBias
		}
		return
	}
}

// startLeft invokes the left Producer on the actor goroutine itself. The
// Producer contract returns its Cancel promptly (any actual blocking
// happens on a goroutine the Producer spawns internally), so the cancel
// handle is stored here without ever crossing goroutines: killLeft, the
// only other reader/writer of a.left.cancel, also only ever runs on the
// actor goroutine, so the two can never race.
func (a *actor[L, R, O]) startLeft() {
	if a.left.status != sideIdle {
		return
	}
	next := a.left.next
	a.left.status = sideReading
	mailbox := a.mailbox
	a.left.cancel = next(func(batch []L, n Producer[L], c cause.Cause) {
		mailbox <- mail[L, R, O]{kind: msgReadyL, lBatch: batch, lNext: n, lHalted: n == nil, lCause: c}
	})
}

// startRight mirrors startLeft for the right side.
func (a *actor[L, R, O]) startRight() {
	if a.right.status != sideIdle {
		return
	}
	next := a.right.next
	a.right.status = sideReading
	mailbox := a.mailbox
	a.right.cancel = next(func(batch []R, n Producer[R], c cause.Cause) {
		mailbox <- mail[L, R, O]{kind: msgReadyR, rBatch: batch, rNext: n, rHalted: n == nil, rCause: c}
	})
}

// killLeft cancels an in-flight left read exactly once, or marks an Idle
// left Done directly (it holds no resources to release). A Done left is
// a no-op.
func (a *actor[L, R, O]) killLeft() {
	switch a.left.status {
	case sideReading:
		c := a.left.cancel
		a.left.cancel = noopCancel
		a.left.status = sideDone
		c(cause.AsEarly(cause.Kill))
	case sideIdle:
		a.left.status = sideDone
	}
}

func (a *actor[L, R, O]) killRight() {
	switch a.right.status {
	case sideReading:
		c := a.right.cancel
		a.right.cancel = noopCancel
		a.right.status = sideDone
		c(cause.AsEarly(cause.Kill))
	case sideIdle:
		a.right.status = sideDone
	}
}

func (a *actor[L, R, O]) onReadyL(batch []L, next Producer[L], haltedProducer bool, c cause.Cause) {
	if haltedProducer {
		a.left.status = sideDone
		a.logger.Info().Str("side", "left").Str("cause", c.String()).Msg("side terminated")
		a.program = transform.HaltL(c, a.program)
	} else {
		a.left.status = sideIdle
		a.left.next = next
		a.program = transform.FeedL(batch, a.program)
	}
	a.tryComplete()
	a.runY()
}

func (a *actor[L, R, O]) onReadyR(batch []R, next Producer[R], haltedProducer bool, c cause.Cause) {
	if haltedProducer {
		a.right.status = sideDone
		a.logger.Info().Str("side", "right").Str("cause", c.String()).Msg("side terminated")
		a.program = transform.HaltR(c, a.program)
	} else {
		a.right.status = sideIdle
		a.right.next = next
		a.program = transform.FeedR(batch, a.program)
	}
	a.tryComplete()
	a.runY()
}

func (a *actor[L, R, O]) onGet(reply chan getResult[O]) {
	if a.pending == nil {
		a.pending = reply
	}
	a.runY()
	a.tryComplete()
}

func (a *actor[L, R, O]) onDownDone(reply chan struct{}) {
	a.logger.Info().Msg("downstream disconnected")
	if !a.halted {
		disc := transform.DisconnectL[L, R, O](cause.AsEarly(cause.Kill),
			transform.DisconnectR[L, R, O](cause.AsEarly(cause.Kill), a.program))
		// Downstream-initiated shutdown must surface as End, never Kill.
		p := transform.SuppressKill(disc)
		// Downstream will not ask for more batches, so emits still queued
		// ahead of the halt are dropped.
		for n := p.Step(); n.IsEmit(); n = p.Step() {
			p = n.Next()
		}
		a.program = p
	}
	a.waiting = reply
	a.runY()
	a.tryComplete()
}

// tryComplete fulfils whichever callbacks are now resolvable: a pending
// Get once the program has halted with nothing left to emit, and a
// pending DownDone ack once cleanup has fully finished (the program
// halted and both sides are Done).
func (a *actor[L, R, O]) tryComplete() {
	if !a.halted {
		return
	}
	if a.pending != nil && a.program.Step().IsHalt() {
		reply := a.pending
		a.pending = nil
		reply <- getResult[O]{halted: true, cause: a.haltCause}
	}
	if a.waiting != nil && a.left.status == sideDone && a.right.status == sideDone {
		close(a.waiting)
		a.waiting = nil
	}
}
