package combinator

import (
	"github.com/hipjim/wye/cause"
	"github.com/hipjim/wye/wye"
)

// EchoLeft reads left once to seed state a, then re-emits the most
// recently seen left value whenever the right side produces, and emits
// (and updates a to) each new left value as it arrives.
func EchoLeft[L, R any]() wye.Program[L, R, L] {
	return wye.AwaitLOr[L, R, L](func(c cause.EarlyCause) wye.Program[L, R, L] {
		return wye.Halt[L, R, L](c.Cause())
	}, func(seed L) wye.Program[L, R, L] {
		return wye.Emit([]L{seed}, echoLeftLoop[L, R](seed))
	})
}

func echoLeftLoop[L, R any](a L) wye.Program[L, R, L] {
	return wye.AwaitBoth[L, R, L](func(e cause.ReceiveY[L, R]) wye.Program[L, R, L] {
		switch {
		case e.IsL():
			return wye.Emit([]L{e.Left()}, echoLeftLoop[L, R](e.Left()))
		case e.IsR():
			return wye.Emit([]L{a}, echoLeftLoop[L, R](a))
		default:
			return wye.Halt[L, R, L](e.HaltCause())
		}
	})
}
