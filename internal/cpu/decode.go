package cpu

// rotateKinds is the order of the CB rotate/shift block 0x00 - 0x3F.
var rotateKinds = [8]Kind{KindRLC, KindRRC, KindRL, KindRR, KindSLA, KindSRA, KindSWAP, KindSRL}

// DecodeCB decodes a CB prefixed sub-opcode.
//
//	bits 0-2: register (B, C, D, E, H, L, (HL), A)
//	bits 3-5: bit index, or rotate/shift variant
//	bits 6-7: class (rotate/shift, BIT, RES, SET)
func DecodeCB(op uint8) Instruction {
	i := Instruction{Mode: ModeR, Reg1: operandRegs[op&7]}
	if op&7 == hlIndirect {
		i.Mode = ModeMR
	}

	index := (op >> 3) & 7
	switch op >> 6 {
	case 0:
		i.Kind = rotateKinds[index]
	case 1:
		i.Kind, i.Param = KindBIT, index
	case 2:
		i.Kind, i.Param = KindRES, index
	case 3:
		i.Kind, i.Param = KindSET, index
	}
	return i
}

// readOperand reads the byte at PC in one machine cycle.
func (c *CPU) readOperand() uint8 {
	v := c.bus.ClockedRead(c.PC)
	c.PC++
	return v
}

// readOperand16 reads the little endian word at PC in two
// machine cycles.
func (c *CPU) readOperand16() uint16 {
	lo := c.readOperand()
	hi := c.readOperand()
	return uint16(hi)<<8 | uint16(lo)
}

// highPage maps an 8-bit offset to the I/O page.
func highPage(v uint16) uint16 {
	return 0xFF00 | v&0xFF
}

// resolve fetches the operand of the current instruction
// according to its addressing mode, setting c.fetched, and
// c.memDest if the result goes to memory.
func (c *CPU) resolve(i Instruction) {
	c.fetched, c.memDest, c.isMemDest = 0, 0, false

	switch i.Mode {
	case ModeIMP:
	case ModeR:
		c.fetched = c.Get(i.Reg1)
	case ModeRR:
		c.fetched = c.Get(i.Reg2)
	case ModeRD8, ModeD8, ModeHLSPR:
		c.fetched = uint16(c.readOperand())
	case ModeRD16, ModeD16:
		c.fetched = c.readOperand16()
	case ModeMRR:
		c.fetched = c.Get(i.Reg2)
		c.memDest, c.isMemDest = c.Get(i.Reg1), true
		if i.Reg1 == RegC {
			c.memDest = highPage(c.memDest)
		}
	case ModeRMR:
		addr := c.Get(i.Reg2)
		if i.Reg2 == RegC {
			addr = highPage(addr)
		}
		c.fetched = uint16(c.bus.ClockedRead(addr))
	case ModeRHLI:
		c.fetched = uint16(c.bus.ClockedRead(c.Read16(RegHL)))
		c.Write16(RegHL, c.Read16(RegHL)+1)
	case ModeRHLD:
		c.fetched = uint16(c.bus.ClockedRead(c.Read16(RegHL)))
		c.Write16(RegHL, c.Read16(RegHL)-1)
	case ModeHLIR:
		c.fetched = c.Get(i.Reg2)
		c.memDest, c.isMemDest = c.Read16(RegHL), true
		c.Write16(RegHL, c.memDest+1)
	case ModeHLDR:
		c.fetched = c.Get(i.Reg2)
		c.memDest, c.isMemDest = c.Read16(RegHL), true
		c.Write16(RegHL, c.memDest-1)
	case ModeRA8:
		c.fetched = uint16(c.bus.ClockedRead(highPage(uint16(c.readOperand()))))
	case ModeA8R:
		c.memDest, c.isMemDest = highPage(uint16(c.readOperand())), true
		c.fetched = c.Get(i.Reg2)
	case ModeMRD8:
		c.fetched = uint16(c.readOperand())
		c.memDest, c.isMemDest = c.Get(i.Reg1), true
	case ModeMR:
		c.memDest, c.isMemDest = c.Get(i.Reg1), true
		c.fetched = uint16(c.bus.ClockedRead(c.memDest))
	case ModeA16R:
		c.memDest, c.isMemDest = c.readOperand16(), true
		c.fetched = c.Get(i.Reg2)
	case ModeRA16:
		c.fetched = uint16(c.bus.ClockedRead(c.readOperand16()))
	}
}
