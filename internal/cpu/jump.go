package cpu

// push pushes a 16 bit value onto the stack, high byte first.
func (c *CPU) push(v uint16) {
	c.SP--
	c.bus.ClockedWrite(c.SP, uint8(v>>8))
	c.SP--
	c.bus.ClockedWrite(c.SP, uint8(v))
}

// pop pops a 16 bit value off the stack.
func (c *CPU) pop() uint16 {
	lo := c.bus.ClockedRead(c.SP)
	c.SP++
	hi := c.bus.ClockedRead(c.SP)
	c.SP++
	return uint16(hi)<<8 | uint16(lo)
}

// jumpAbsolute jumps to the resolved address if the
// condition holds.
//
//	JP cc, nn
//	cc = NZ, Z, NC, C
//	nn = 16-bit immediate value
func (c *CPU) jumpAbsolute() {
	if c.condition(c.current.Cond) {
		c.PC = c.fetched
		c.bus.Tick()
	}
}

// jumpHL jumps to the address held in HL.
//
//	JP (HL)
func (c *CPU) jumpHL() {
	c.PC = c.Read16(RegHL)
}

// jumpRelative adds the signed offset to PC if the
// condition holds.
//
//	JR cc, e
//	cc = NZ, Z, NC, C
//	e = 8-bit signed immediate value
func (c *CPU) jumpRelative() {
	if c.condition(c.current.Cond) {
		c.PC += uint16(int8(c.operand8()))
		c.bus.Tick()
	}
}

// call pushes the address of the next instruction onto the
// stack and jumps to the resolved address if the condition holds.
//
//	CALL cc, nn
//	cc = NZ, Z, NC, C
//	nn = 16-bit immediate value
func (c *CPU) call() {
	if c.condition(c.current.Cond) {
		c.bus.Tick()
		c.push(c.PC)
		c.PC = c.fetched
	}
}

// ret pops the return address off the stack if the
// condition holds. Evaluating a condition takes a machine cycle.
//
//	RET cc
//	cc = NZ, Z, NC, C
func (c *CPU) ret() {
	if c.current.Cond != CondNone {
		c.bus.Tick()
	}
	if c.condition(c.current.Cond) {
		c.PC = c.pop()
		c.bus.Tick()
	}
}

// reti returns and enables interrupts immediately.
func (c *CPU) reti() {
	c.IME = true
	c.ret()
}

// rst calls the fixed vector held in the instruction.
//
//	RST n
//	n = 0x00, 0x08, 0x10, 0x18, 0x20, 0x28, 0x30, 0x38
func (c *CPU) rst() {
	c.bus.Tick()
	c.push(c.PC)
	c.PC = uint16(c.current.Param)
}
