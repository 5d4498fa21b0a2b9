package cpu

import "fmt"

// Reg identifies a register, or a pair of registers
// accessed as a 16-bit value.
type Reg uint8

const (
	RegNone Reg = iota
	RegA
	RegF
	RegB
	RegC
	RegD
	RegE
	RegH
	RegL
	RegAF
	RegBC
	RegDE
	RegHL
	RegSP
	RegPC
)

var regNames = [...]string{
	RegNone: "",
	RegA:    "A",
	RegF:    "F",
	RegB:    "B",
	RegC:    "C",
	RegD:    "D",
	RegE:    "E",
	RegH:    "H",
	RegL:    "L",
	RegAF:   "AF",
	RegBC:   "BC",
	RegDE:   "DE",
	RegHL:   "HL",
	RegSP:   "SP",
	RegPC:   "PC",
}

func (r Reg) String() string {
	if int(r) < len(regNames) {
		return regNames[r]
	}
	return fmt.Sprintf("Reg(%d)", uint8(r))
}

// is16Bit reports whether r is a register pair, SP or PC.
func (r Reg) is16Bit() bool {
	return r >= RegAF
}

// flagMask keeps the only bits of F that exist in hardware.
const flagMask = 0xF0

// Registers holds the 8-bit registers, and the 16-bit
// stack pointer and program counter. Pairs are not stored
// separately: AF, BC, DE and HL are views over two 8-bit
// registers each.
type Registers struct {
	A, F uint8
	B, C uint8
	D, E uint8
	H, L uint8

	// SP is the stack pointer, it points to the top of the stack.
	SP uint16
	// PC is the program counter, it points to the next byte to be fetched.
	PC uint16
}

// Read8 returns the value of an 8-bit register.
func (r *Registers) Read8(reg Reg) uint8 {
	switch reg {
	case RegA:
		return r.A
	case RegF:
		return r.F
	case RegB:
		return r.B
	case RegC:
		return r.C
	case RegD:
		return r.D
	case RegE:
		return r.E
	case RegH:
		return r.H
	case RegL:
		return r.L
	}
	panic(fmt.Sprintf("cpu: invalid 8-bit register %s", reg))
}

// Write8 sets an 8-bit register. The low nibble of F is
// always zero.
func (r *Registers) Write8(reg Reg, value uint8) {
	switch reg {
	case RegA:
		r.A = value
	case RegF:
		r.F = value & flagMask
	case RegB:
		r.B = value
	case RegC:
		r.C = value
	case RegD:
		r.D = value
	case RegE:
		r.E = value
	case RegH:
		r.H = value
	case RegL:
		r.L = value
	default:
		panic(fmt.Sprintf("cpu: invalid 8-bit register %s", reg))
	}
}

// Read16 returns the value of a register pair as high<<8 | low,
// or the value of SP or PC.
func (r *Registers) Read16(reg Reg) uint16 {
	switch reg {
	case RegAF:
		return uint16(r.A)<<8 | uint16(r.F)
	case RegBC:
		return uint16(r.B)<<8 | uint16(r.C)
	case RegDE:
		return uint16(r.D)<<8 | uint16(r.E)
	case RegHL:
		return uint16(r.H)<<8 | uint16(r.L)
	case RegSP:
		return r.SP
	case RegPC:
		return r.PC
	}
	panic(fmt.Sprintf("cpu: invalid 16-bit register %s", reg))
}

// Write16 sets both halves of a register pair, or SP or PC.
func (r *Registers) Write16(reg Reg, value uint16) {
	hi, lo := uint8(value>>8), uint8(value)
	switch reg {
	case RegAF:
		r.A, r.F = hi, lo&flagMask
	case RegBC:
		r.B, r.C = hi, lo
	case RegDE:
		r.D, r.E = hi, lo
	case RegHL:
		r.H, r.L = hi, lo
	case RegSP:
		r.SP = value
	case RegPC:
		r.PC = value
	default:
		panic(fmt.Sprintf("cpu: invalid 16-bit register %s", reg))
	}
}

// Get reads reg at its natural width.
func (r *Registers) Get(reg Reg) uint16 {
	if reg.is16Bit() {
		return r.Read16(reg)
	}
	return uint16(r.Read8(reg))
}

// Set writes reg at its natural width, truncating value
// for 8-bit registers.
func (r *Registers) Set(reg Reg, value uint16) {
	if reg.is16Bit() {
		r.Write16(reg, value)
		return
	}
	r.Write8(reg, uint8(value))
}
