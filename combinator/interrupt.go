package combinator

import (
	"github.com/hipjim/wye/cause"
	"github.com/hipjim/wye/wye"
)

// Interrupt forwards right values downstream; the left side carries
// booleans, where true halts the merge with End and false is ignored.
func Interrupt[R any]() wye.Program[bool, R, R] {
	return wye.AwaitBoth[bool, R, R](func(e cause.ReceiveY[bool, R]) wye.Program[bool, R, R] {
		switch {
		case e.IsL():
			if e.Left() {
				return wye.Halt[bool, R, R](cause.End)
			}
			return Interrupt[R]()
		case e.IsR():
			return wye.Emit([]R{e.Right()}, Interrupt[R]())
		case e.IsHaltL():
			return PassR[bool, R]()
		default:
			return wye.Halt[bool, R, R](e.HaltCause())
		}
	})
}
