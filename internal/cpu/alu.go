package cpu

import "github.com/thelolagemann/gbcore/pkg/bits"

// operand8 returns the resolved operand as a byte.
func (c *CPU) operand8() uint8 {
	return uint8(c.fetched)
}

func (c *CPU) carry() uint8 {
	if c.Flag(FlagCarry) {
		return 1
	}
	return 0
}

// add adds n, and the carry flag if withCarry, to the A register.
//
//	ADD A, n
//	ADC A, n
//	n = d8, B, C, D, E, H, L, (HL), A
//
// Flags affected:
//
//	Z - Set if result is zero.
//	N - Reset.
//	H - Set if carry from bit 3.
//	C - Set if carry from bit 7.
func (c *CPU) add(n uint8, withCarry bool) {
	var cy uint8
	if withCarry {
		cy = c.carry()
	}
	sum := uint16(c.A) + uint16(n) + uint16(cy)
	halfCarry := bits.HalfCarry(c.A, n, cy)
	c.A = uint8(sum)
	c.setFlags(Computed(c.A == 0), Clear, Computed(halfCarry), Computed(sum > 0xFF))
}

// sub subtracts n, and the carry flag if withCarry, from the
// A register. The result is discarded for CP.
//
//	SUB n
//	SBC A, n
//	CP n
//	n = d8, B, C, D, E, H, L, (HL), A
//
// Flags affected:
//
//	Z - Set if result is zero.
//	N - Set.
//	H - Set if borrow from bit 4.
//	C - Set if borrow.
func (c *CPU) sub(n uint8, withCarry, store bool) {
	var cy uint8
	if withCarry {
		cy = c.carry()
	}
	diff := int(c.A) - int(n) - int(cy)
	halfBorrow := bits.HalfBorrow(c.A, n, cy)
	result := uint8(diff)
	if store {
		c.A = result
	}
	c.setFlags(Computed(result == 0), Set, Computed(halfBorrow), Computed(diff < 0))
}

// addHL adds n to the HL register pair. It takes one extra
// machine cycle.
//
//	ADD HL, n
//	n = BC, DE, HL, SP
//
// Flags affected:
//
//	Z - Not affected.
//	N - Reset.
//	H - Set if carry from bit 11.
//	C - Set if carry from bit 15.
func (c *CPU) addHL(n uint16) {
	hl := c.Read16(RegHL)
	sum := uint32(hl) + uint32(n)
	c.Write16(RegHL, uint16(sum))
	c.setFlags(Unaffected, Clear, Computed(hl&0xFFF+n&0xFFF > 0xFFF), Computed(sum > 0xFFFF))
	c.bus.Tick()
}

// addSP returns SP plus the signed offset e. Carries are
// computed on the low byte, as for an unsigned 8-bit add.
//
//	ADD SP, r8
//	LD HL, SP+r8
//
// Flags affected:
//
//	Z - Reset.
//	N - Reset.
//	H - Set if carry from bit 3.
//	C - Set if carry from bit 7.
func (c *CPU) addSP(e uint8) uint16 {
	result := c.SP + uint16(int8(e))
	c.setFlags(Clear, Clear,
		Computed(c.SP&0x0F+uint16(e&0x0F) > 0x0F),
		Computed(c.SP&0xFF+uint16(e) > 0xFF))
	return result
}

// increment n by 1 and set the flags accordingly.
//
//	INC n
//	n = A, B, C, D, E, H, L, (HL)
//
// Flags affected:
//
//	Z - Set if result is zero.
//	N - Reset.
//	H - Set if carry from bit 3.
//	C - Not affected.
func (c *CPU) increment(n uint8) uint8 {
	result := n + 1
	c.setFlags(Computed(result == 0), Clear, Computed(n&0x0F == 0x0F), Unaffected)
	return result
}

// decrement n by 1 and set the flags accordingly.
//
//	DEC n
//	n = A, B, C, D, E, H, L, (HL)
//
// Flags affected:
//
//	Z - Set if result is zero.
//	N - Set.
//	H - Set if borrow from bit 4.
//	C - Not affected.
func (c *CPU) decrement(n uint8) uint8 {
	result := n - 1
	c.setFlags(Computed(result == 0), Set, Computed(n&0x0F == 0), Unaffected)
	return result
}

// incDec steps the operand of INC or DEC by delta.
// Register pairs take one extra machine cycle and leave the
// flags alone.
func (c *CPU) incDec(delta int) {
	i := c.current
	if i.Mode == ModeR && i.Reg1.is16Bit() {
		c.Write16(i.Reg1, c.fetched+uint16(delta))
		c.bus.Tick()
		return
	}

	var result uint8
	if delta > 0 {
		result = c.increment(c.operand8())
	} else {
		result = c.decrement(c.operand8())
	}

	if c.isMemDest {
		c.bus.ClockedWrite(c.memDest, result)
		return
	}
	c.Write8(i.Reg1, result)
}

func (c *CPU) inc() { c.incDec(1) }
func (c *CPU) dec() { c.incDec(-1) }

func (c *CPU) addInstr() {
	switch c.current.Reg1 {
	case RegHL:
		c.addHL(c.fetched)
	case RegSP:
		c.SP = c.addSP(c.operand8())
		c.bus.Tick()
		c.bus.Tick()
	default:
		c.add(c.operand8(), false)
	}
}

func (c *CPU) adc() { c.add(c.operand8(), true) }
func (c *CPU) subInstr() { c.sub(c.operand8(), false, true) }
func (c *CPU) sbc() { c.sub(c.operand8(), true, true) }
func (c *CPU) cp() { c.sub(c.operand8(), false, false) }

// and performs a bitwise AND operation on n and the A Register.
//
//	AND n
//	n = d8, B, C, D, E, H, L, (HL), A
//
// Flags affected:
//
//	Z - Set if result is zero.
//	N - Reset.
//	H - Set.
//	C - Reset.
func (c *CPU) and() {
	c.A &= c.operand8()
	c.setFlags(Computed(c.A == 0), Clear, Set, Clear)
}

// or performs a bitwise OR operation on n and the A Register.
//
// Flags affected:
//
//	Z - Set if result is zero.
//	N - Reset.
//	H - Reset.
//	C - Reset.
func (c *CPU) or() {
	c.A |= c.operand8()
	c.setFlags(Computed(c.A == 0), Clear, Clear, Clear)
}

// xor performs a bitwise XOR operation on n and the A Register.
func (c *CPU) xor() {
	c.A ^= c.operand8()
	c.setFlags(Computed(c.A == 0), Clear, Clear, Clear)
}

// daa adjusts the A register to a binary coded decimal
// after an addition or subtraction.
//
//	DAA
//
// Flags affected:
//
//	Z - Set if result is zero.
//	N - Not affected.
//	H - Reset.
//	C - Set or reset according to operation.
func (c *CPU) daa() {
	var correction uint8
	carry := c.Flag(FlagCarry)
	subtract := c.Flag(FlagSubtract)

	if c.Flag(FlagHalfCarry) || !subtract && c.A&0x0F > 0x09 {
		correction |= 0x06
	}
	if carry || !subtract && c.A > 0x99 {
		correction |= 0x60
		carry = true
	}

	if subtract {
		c.A -= correction
	} else {
		c.A += correction
	}
	c.setFlags(Computed(c.A == 0), Unaffected, Clear, Computed(carry))
}

// cpl complements the A register.
//
// Flags affected:
//
//	Z - Not affected.
//	N - Set.
//	H - Set.
//	C - Not affected.
func (c *CPU) cpl() {
	c.A = ^c.A
	c.setFlags(Unaffected, Set, Set, Unaffected)
}

// scf sets the carry flag.
func (c *CPU) scf() {
	c.setFlags(Unaffected, Clear, Clear, Set)
}

// ccf complements the carry flag.
func (c *CPU) ccf() {
	c.setFlags(Unaffected, Clear, Clear, Unaffected)
	c.ToggleFlags(false, false, false, true)
}
