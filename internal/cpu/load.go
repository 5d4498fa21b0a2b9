package cpu

import "github.com/thelolagemann/gbcore/internal/types"

// load stores the resolved operand in its destination.
//
//	LD r, n
//	LD (rr), r
//	LD (a16), SP
//	LD HL, SP+r8
//	LD SP, HL
//	LDH (a8), A
//	LDH A, (a8)
func (c *CPU) load() {
	i := c.current
	switch {
	case c.isMemDest:
		if i.Reg2.is16Bit() {
			c.bus.ClockedWrite(c.memDest, uint8(c.fetched))
			c.bus.ClockedWrite(c.memDest+1, uint8(c.fetched>>8))
			return
		}
		c.bus.ClockedWrite(c.memDest, c.operand8())
	case i.Mode == ModeHLSPR:
		c.Write16(RegHL, c.addSP(c.operand8()))
		c.bus.Tick()
	case i.Reg1 == RegSP && i.Reg2 == RegHL:
		c.SP = c.fetched
		c.bus.Tick()
	default:
		c.Set(i.Reg1, c.fetched)
	}
}

// pushInstr pushes a register pair onto the stack.
//
//	PUSH nn
//	nn = AF, BC, DE, HL
func (c *CPU) pushInstr() {
	c.bus.Tick()
	c.push(c.fetched)
}

// popInstr pops a register pair off the stack. POP AF keeps
// the low nibble of F clear.
//
//	POP nn
//	nn = AF, BC, DE, HL
func (c *CPU) popInstr() {
	c.Write16(c.current.Reg1, c.pop())
}

func (c *CPU) nop() {}

// halt suspends execution until an interrupt is pending.
func (c *CPU) halt() {
	c.halted = true
}

// stop resets the divider and suspends execution like HALT.
// Its second byte has already been consumed.
func (c *CPU) stop() {
	c.bus.Write(types.DIV, 0)
	c.halted = true
}

// di disables interrupts immediately, cancelling a pending EI.
func (c *CPU) di() {
	c.IME = false
	c.enablingIME = false
}

// ei enables interrupts after the next instruction.
func (c *CPU) ei() {
	c.enablingIME = true
}
