package combinator

import (
	"github.com/hipjim/wye/cause"
	"github.com/hipjim/wye/wye"
	"github.com/rs/zerolog"
)

// Log wraps p so every emitted batch and the terminal cause are recorded
// through logger at debug level, tagged with label. It changes nothing
// about p's demand or output, so it composes transparently with every
// other combinator and transformer in the package.
func Log[L, R, O any](logger *zerolog.Logger, label string, p wye.Program[L, R, O]) wye.Program[L, R, O] {
	return func() wye.Node[L, R, O] {
		n := p.Step()
		switch {
		case n.IsEmit():
			logger.Debug().Str("program", label).Int("count", len(n.Values())).Msg("emit")
			return wye.Emit(n.Values(), Log(logger, label, n.Next())).Step()
		case n.IsHalt():
			logger.Debug().Str("program", label).Str("cause", n.HaltCause().String()).Msg("halt")
			return n
		case n.IsAwaitL():
			return wye.AwaitL[L, R, O](func(in wye.Input[L]) wye.Program[L, R, O] {
				return Log(logger, label, n.RecvL(in))
			}).Step()
		case n.IsAwaitR():
			return wye.AwaitR[L, R, O](func(in wye.Input[R]) wye.Program[L, R, O] {
				return Log(logger, label, n.RecvR(in))
			}).Step()
		default:
			return wye.AwaitBoth[L, R, O](func(e cause.ReceiveY[L, R]) wye.Program[L, R, O] {
				return Log(logger, label, n.RecvBoth(e))
			}).Step()
		}
	}
}
