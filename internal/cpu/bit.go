package cpu

import "github.com/thelolagemann/gbcore/pkg/bits"

// shift performs a rotate or shift of the given kind on v.
//
//	RLC, RRC, RL, RR, SLA, SRA, SWAP, SRL n
//	n = A, B, C, D, E, H, L, (HL)
//
// Flags affected:
//
//	Z - Set if result is zero.
//	N - Reset.
//	H - Reset.
//	C - Contains the bit shifted out (reset for SWAP).
func (c *CPU) shift(kind Kind, v uint8) uint8 {
	var result uint8
	var out bool
	switch kind {
	case KindRLC:
		result, out = v<<1|v>>7, bits.Test(v, 7)
	case KindRRC:
		result, out = v>>1|v<<7, bits.Test(v, 0)
	case KindRL:
		result, out = v<<1|c.carry(), bits.Test(v, 7)
	case KindRR:
		result, out = v>>1|c.carry()<<7, bits.Test(v, 0)
	case KindSLA:
		result, out = v<<1, bits.Test(v, 7)
	case KindSRA:
		result, out = v>>1|v&0x80, bits.Test(v, 0)
	case KindSWAP:
		result = v<<4 | v>>4
	case KindSRL:
		result, out = v>>1, bits.Test(v, 0)
	}
	c.setFlags(Computed(result == 0), Clear, Clear, Computed(out))
	return result
}

// rotateAccumulator rotates the A register. Unlike the CB
// prefixed rotates, the zero flag is always reset.
//
//	RLCA, RRCA, RLA, RRA
func (c *CPU) rotateAccumulator(kind Kind) {
	c.A = c.shift(kind, c.A)
	c.setFlags(Clear, Unaffected, Unaffected, Unaffected)
}

func (c *CPU) rlca() { c.rotateAccumulator(KindRLC) }
func (c *CPU) rrca() { c.rotateAccumulator(KindRRC) }
func (c *CPU) rla()  { c.rotateAccumulator(KindRL) }
func (c *CPU) rra()  { c.rotateAccumulator(KindRR) }

// testBit tests the bit at the given position.
//
//	BIT n, r
//	n = 0-7
//	r = A, B, C, D, E, H, L, (HL)
//
// Flags affected:
//
//	Z - Set if bit n of Register r is 0.
//	N - Reset.
//	H - Set.
//	C - Not affected.
func (c *CPU) testBit(v, n uint8) {
	c.setFlags(Computed(!bits.Test(v, n)), Clear, Set, Unaffected)
}

// prefixed executes the CB sub-opcode held in c.fetched.
// (HL) operands are read, and written back, through the bus.
func (c *CPU) prefixed() {
	i := DecodeCB(c.operand8())

	var v uint8
	if i.Mode == ModeMR {
		v = c.bus.ClockedRead(c.Read16(RegHL))
	} else {
		v = c.Read8(i.Reg1)
	}

	switch i.Kind {
	case KindBIT:
		c.testBit(v, i.Param)
		return
	case KindRES:
		v = bits.Reset(v, i.Param)
	case KindSET:
		v = bits.Set(v, i.Param)
	default:
		v = c.shift(i.Kind, v)
	}

	if i.Mode == ModeMR {
		c.bus.ClockedWrite(c.Read16(RegHL), v)
		return
	}
	c.Write8(i.Reg1, v)
}
