package combinator

import (
	"time"

	"github.com/hipjim/wye/cause"
	"github.com/hipjim/wye/wye"
	"github.com/spf13/cast"
)

// TimedQueue emits each right value as it arrives, using the left side as
// a stream of timestamps (accepted in any form spf13/cast can normalize:
// time.Time, RFC3339 strings, unix seconds, ...). The right side is
// blocked (the program reads only the left) whenever more than maxSize
// timestamps are buffered, or the newest buffered timestamp is more than
// d earlier than the oldest; a newest timestamp that lies more than d
// after the oldest does not block. A buffered timestamp is
// only dropped when the next right value is consumed, even if that makes
// the span condition stale in between right consumptions; this mirrors
// the upstream timestamp queue's own documented behavior.
func TimedQueue[L, R any](d time.Duration, maxSize int) wye.Program[L, R, R] {
	return timedLoop[L, R](d, maxSize, nil)
}

func timedLoop[L, R any](d time.Duration, maxSize int, buf []time.Time) wye.Program[L, R, R] {
	if timedBlocked(d, maxSize, buf) {
		return wye.AwaitLOr[L, R, R](func(c cause.EarlyCause) wye.Program[L, R, R] {
			return wye.Halt[L, R, R](c.Cause())
		}, func(l L) wye.Program[L, R, R] {
			return timedLoop[L, R](d, maxSize, appendTimestamp(buf, l))
		})
	}
	return wye.AwaitBoth[L, R, R](func(e cause.ReceiveY[L, R]) wye.Program[L, R, R] {
		switch {
		case e.IsL():
			return timedLoop[L, R](d, maxSize, appendTimestamp(buf, e.Left()))
		case e.IsR():
			next := buf
			if len(next) > 0 {
				next = next[1:]
			}
			return wye.Emit([]R{e.Right()}, timedLoop[L, R](d, maxSize, next))
		case e.IsHaltL():
			return PassR[L, R]()
		default:
			return wye.Halt[L, R, R](e.HaltCause())
		}
	})
}

func timedBlocked(d time.Duration, maxSize int, buf []time.Time) bool {
	if len(buf) > maxSize {
		return true
	}
	if len(buf) == 0 {
		return false
	}
	oldest, newest := buf[0], buf[len(buf)-1]
	return oldest.Sub(newest) > d
}

func appendTimestamp[L any](buf []time.Time, v L) []time.Time {
	t, err := cast.ToTimeE(v)
	if err != nil {
		return buf
	}
	out := make([]time.Time, 0, len(buf)+1)
	out = append(out, buf...)
	return append(out, t)
}
