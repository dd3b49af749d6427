// Package combinator collects the named merge-program contracts built on
// top of wye.Program: merge, queueing, pairing, echoing, interruption,
// timestamp-windowed buffering, and self-modifying demand. Every
// combinator here is itself a Program, so they compose with
// transform.FeedL/AttachL/etc like any other.
package combinator

import "github.com/hipjim/wye/cause"

// Sided tags a value with which producer it came from, the output shape
// of Either.
type Sided[L, R any] struct {
	side  cause.Side
	left  L
	right R
}

// Lefted wraps a value that arrived on the left.
func Lefted[L, R any](l L) Sided[L, R] { return Sided[L, R]{side: cause.SideL, left: l} }

// Righted wraps a value that arrived on the right.
func Righted[L, R any](r R) Sided[L, R] { return Sided[L, R]{side: cause.SideR, right: r} }

// Side reports which producer s came from.
func (s Sided[L, R]) Side() cause.Side { return s.side }

// IsLeft reports whether s came from the left.
func (s Sided[L, R]) IsLeft() bool { return s.side == cause.SideL }

// Left returns the wrapped value; only meaningful when IsLeft().
func (s Sided[L, R]) Left() L { return s.left }

// Right returns the wrapped value; only meaningful when !IsLeft().
func (s Sided[L, R]) Right() R { return s.right }
