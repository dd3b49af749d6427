package runtime

import (
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// Executor runs submitted tasks. It must be stack-safe: a task that
// itself submits another task must not grow the native call stack.
// Go's goroutines already satisfy this (they grow their own segmented
// stack independently of the caller's), so the default Executor is just
// "go f()"; a caller wanting a bounded worker pool can supply one.
type Executor interface {
	Go(func())
}

// GoExecutor runs every task on its own goroutine.
type GoExecutor struct{}

func (GoExecutor) Go(f func()) { go f() }

// DefaultOptions is a ready-to-use configuration pointing at the global
// zerolog logger.
var DefaultOptions = Options{
	Logger:   &log.Logger,
	Executor: GoExecutor{},
}

// Options configures a Runtime.
type Options struct {
	Logger   *zerolog.Logger // if nil, logging is disabled
	Executor Executor        // if nil, New returns ErrNoExecutor

	// Trace enables per-step demand/emit logging at Debug level, on top
	// of the lifecycle logging (start, stop, side termination, downstream
	// disconnect) the actor always emits at Info level.
	Trace bool

	KV *KV // optional shared key/value store, reachable via Runtime.KV
}

// OnLogger sets the logger and returns o for chaining.
func (o *Options) OnLogger(logger *zerolog.Logger) *Options {
	o.Logger = logger
	return o
}

// OnExecutor sets the executor and returns o for chaining.
func (o *Options) OnExecutor(e Executor) *Options {
	o.Executor = e
	return o
}

// OnKV attaches a shared KV store and returns o for chaining.
func (o *Options) OnKV(kv *KV) *Options {
	o.KV = kv
	return o
}

// OnTrace toggles per-step debug logging and returns o for chaining.
func (o *Options) OnTrace(trace bool) *Options {
	o.Trace = trace
	return o
}

func (o Options) logger() *zerolog.Logger {
	if o.Logger != nil {
		return o.Logger
	}
	nop := zerolog.Nop()
	return &nop
}
