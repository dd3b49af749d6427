package combinator

import (
	"github.com/hipjim/wye/cause"
	"github.com/hipjim/wye/wye"
)

// Mode is the demand a dynamic program will issue next.
type Mode byte

const (
	ModeL Mode = iota
	ModeR
	ModeBoth
)

// Dynamic is a self-modifying program: it starts left-biased, and after
// every delivered value consults f (for a left value) or g (for a right
// value) to decide the next Mode. It emits the raw ReceiveY event for
// every input, so both the value and which side it came from survive
// downstream.
func Dynamic[L, R any](f func(L) Mode, g func(R) Mode) wye.Program[L, R, cause.ReceiveY[L, R]] {
	return dynamicStep[L, R](ModeL, f, g)
}

func dynamicStep[L, R any](mode Mode, f func(L) Mode, g func(R) Mode) wye.Program[L, R, cause.ReceiveY[L, R]] {
	switch mode {
	case ModeL:
		return wye.AwaitLOr[L, R, cause.ReceiveY[L, R]](func(c cause.EarlyCause) wye.Program[L, R, cause.ReceiveY[L, R]] {
			return wye.Halt[L, R, cause.ReceiveY[L, R]](c.Cause())
		}, func(v L) wye.Program[L, R, cause.ReceiveY[L, R]] {
			return wye.Emit([]cause.ReceiveY[L, R]{cause.ReceiveL[L, R](v)}, dynamicStep[L, R](f(v), f, g))
		})
	case ModeR:
		return wye.AwaitROr[L, R, cause.ReceiveY[L, R]](func(c cause.EarlyCause) wye.Program[L, R, cause.ReceiveY[L, R]] {
			return wye.Halt[L, R, cause.ReceiveY[L, R]](c.Cause())
		}, func(v R) wye.Program[L, R, cause.ReceiveY[L, R]] {
			return wye.Emit([]cause.ReceiveY[L, R]{cause.ReceiveR[L, R](v)}, dynamicStep[L, R](g(v), f, g))
		})
	default:
		return wye.AwaitBoth[L, R, cause.ReceiveY[L, R]](func(e cause.ReceiveY[L, R]) wye.Program[L, R, cause.ReceiveY[L, R]] {
			switch {
			case e.IsL():
				return wye.Emit([]cause.ReceiveY[L, R]{e}, dynamicStep[L, R](f(e.Left()), f, g))
			case e.IsR():
				return wye.Emit([]cause.ReceiveY[L, R]{e}, dynamicStep[L, R](g(e.Right()), f, g))
			default:
				return wye.Halt[L, R, cause.ReceiveY[L, R]](e.HaltCause())
			}
		})
	}
}

// Dynamic1 specializes Dynamic to a single type on both sides and
// flattens the emitted ReceiveY down to the raw value.
func Dynamic1[I any](f func(I) Mode) wye.Program[I, I, I] {
	return dynamic1Step[I](ModeL, f)
}

func dynamic1Step[I any](mode Mode, f func(I) Mode) wye.Program[I, I, I] {
	haltFallback := func(c cause.EarlyCause) wye.Program[I, I, I] {
		return wye.Halt[I, I, I](c.Cause())
	}
	switch mode {
	case ModeL:
		return wye.AwaitLOr[I, I, I](haltFallback, func(v I) wye.Program[I, I, I] {
			return wye.Emit([]I{v}, dynamic1Step[I](f(v), f))
		})
	case ModeR:
		return wye.AwaitROr[I, I, I](haltFallback, func(v I) wye.Program[I, I, I] {
			return wye.Emit([]I{v}, dynamic1Step[I](f(v), f))
		})
	default:
		return wye.AwaitBoth[I, I, I](func(e cause.ReceiveY[I, I]) wye.Program[I, I, I] {
			switch {
			case e.IsL():
				v := e.Left()
				return wye.Emit([]I{v}, dynamic1Step[I](f(v), f))
			case e.IsR():
				v := e.Right()
				return wye.Emit([]I{v}, dynamic1Step[I](f(v), f))
			default:
				return wye.Halt[I, I, I](e.HaltCause())
			}
		})
	}
}
