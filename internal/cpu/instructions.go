package cpu

import (
	"fmt"

	"github.com/hashicorp/go-multierror"
)

// IllegalOpcodes lists the opcodes that have no instruction
// on the SM83. Fetching one of them faults the CPU.
var IllegalOpcodes = []uint8{
	0xD3, 0xDB, 0xDD, 0xE3, 0xE4, 0xEB, 0xEC, 0xED, 0xF4, 0xFC, 0xFD,
}

// operandRegs maps the 3-bit register field of an opcode to
// its register. Index 6 is (HL).
var operandRegs = [8]Reg{RegB, RegC, RegD, RegE, RegH, RegL, RegHL, RegA}

const hlIndirect = 6

// InstructionSet holds the 256 primary instructions. Unmapped
// opcodes have KindNONE.
var InstructionSet = [256]Instruction{
	0x00: {Kind: KindNOP},
	0x01: {Kind: KindLD, Mode: ModeRD16, Reg1: RegBC},
	0x02: {Kind: KindLD, Mode: ModeMRR, Reg1: RegBC, Reg2: RegA},
	0x03: {Kind: KindINC, Mode: ModeR, Reg1: RegBC},
	0x04: {Kind: KindINC, Mode: ModeR, Reg1: RegB},
	0x05: {Kind: KindDEC, Mode: ModeR, Reg1: RegB},
	0x06: {Kind: KindLD, Mode: ModeRD8, Reg1: RegB},
	0x07: {Kind: KindRLCA},
	0x08: {Kind: KindLD, Mode: ModeA16R, Reg2: RegSP},
	0x09: {Kind: KindADD, Mode: ModeRR, Reg1: RegHL, Reg2: RegBC},
	0x0A: {Kind: KindLD, Mode: ModeRMR, Reg1: RegA, Reg2: RegBC},
	0x0B: {Kind: KindDEC, Mode: ModeR, Reg1: RegBC},
	0x0C: {Kind: KindINC, Mode: ModeR, Reg1: RegC},
	0x0D: {Kind: KindDEC, Mode: ModeR, Reg1: RegC},
	0x0E: {Kind: KindLD, Mode: ModeRD8, Reg1: RegC},
	0x0F: {Kind: KindRRCA},

	0x10: {Kind: KindSTOP, Mode: ModeD8},
	0x11: {Kind: KindLD, Mode: ModeRD16, Reg1: RegDE},
	0x12: {Kind: KindLD, Mode: ModeMRR, Reg1: RegDE, Reg2: RegA},
	0x13: {Kind: KindINC, Mode: ModeR, Reg1: RegDE},
	0x14: {Kind: KindINC, Mode: ModeR, Reg1: RegD},
	0x15: {Kind: KindDEC, Mode: ModeR, Reg1: RegD},
	0x16: {Kind: KindLD, Mode: ModeRD8, Reg1: RegD},
	0x17: {Kind: KindRLA},
	0x18: {Kind: KindJR, Mode: ModeD8},
	0x19: {Kind: KindADD, Mode: ModeRR, Reg1: RegHL, Reg2: RegDE},
	0x1A: {Kind: KindLD, Mode: ModeRMR, Reg1: RegA, Reg2: RegDE},
	0x1B: {Kind: KindDEC, Mode: ModeR, Reg1: RegDE},
	0x1C: {Kind: KindINC, Mode: ModeR, Reg1: RegE},
	0x1D: {Kind: KindDEC, Mode: ModeR, Reg1: RegE},
	0x1E: {Kind: KindLD, Mode: ModeRD8, Reg1: RegE},
	0x1F: {Kind: KindRRA},

	0x20: {Kind: KindJR, Mode: ModeD8, Cond: CondNZ},
	0x21: {Kind: KindLD, Mode: ModeRD16, Reg1: RegHL},
	0x22: {Kind: KindLD, Mode: ModeHLIR, Reg1: RegHL, Reg2: RegA},
	0x23: {Kind: KindINC, Mode: ModeR, Reg1: RegHL},
	0x24: {Kind: KindINC, Mode: ModeR, Reg1: RegH},
	0x25: {Kind: KindDEC, Mode: ModeR, Reg1: RegH},
	0x26: {Kind: KindLD, Mode: ModeRD8, Reg1: RegH},
	0x27: {Kind: KindDAA},
	0x28: {Kind: KindJR, Mode: ModeD8, Cond: CondZ},
	0x29: {Kind: KindADD, Mode: ModeRR, Reg1: RegHL, Reg2: RegHL},
	0x2A: {Kind: KindLD, Mode: ModeRHLI, Reg1: RegA, Reg2: RegHL},
	0x2B: {Kind: KindDEC, Mode: ModeR, Reg1: RegHL},
	0x2C: {Kind: KindINC, Mode: ModeR, Reg1: RegL},
	0x2D: {Kind: KindDEC, Mode: ModeR, Reg1: RegL},
	0x2E: {Kind: KindLD, Mode: ModeRD8, Reg1: RegL},
	0x2F: {Kind: KindCPL},

	0x30: {Kind: KindJR, Mode: ModeD8, Cond: CondNC},
	0x31: {Kind: KindLD, Mode: ModeRD16, Reg1: RegSP},
	0x32: {Kind: KindLD, Mode: ModeHLDR, Reg1: RegHL, Reg2: RegA},
	0x33: {Kind: KindINC, Mode: ModeR, Reg1: RegSP},
	0x34: {Kind: KindINC, Mode: ModeMR, Reg1: RegHL},
	0x35: {Kind: KindDEC, Mode: ModeMR, Reg1: RegHL},
	0x36: {Kind: KindLD, Mode: ModeMRD8, Reg1: RegHL},
	0x37: {Kind: KindSCF},
	0x38: {Kind: KindJR, Mode: ModeD8, Cond: CondC},
	0x39: {Kind: KindADD, Mode: ModeRR, Reg1: RegHL, Reg2: RegSP},
	0x3A: {Kind: KindLD, Mode: ModeRHLD, Reg1: RegA, Reg2: RegHL},
	0x3B: {Kind: KindDEC, Mode: ModeR, Reg1: RegSP},
	0x3C: {Kind: KindINC, Mode: ModeR, Reg1: RegA},
	0x3D: {Kind: KindDEC, Mode: ModeR, Reg1: RegA},
	0x3E: {Kind: KindLD, Mode: ModeRD8, Reg1: RegA},
	0x3F: {Kind: KindCCF},

	// 0x40 - 0xBF are filled in by init

	0xC0: {Kind: KindRET, Cond: CondNZ},
	0xC1: {Kind: KindPOP, Mode: ModeR, Reg1: RegBC},
	0xC2: {Kind: KindJP, Mode: ModeD16, Cond: CondNZ},
	0xC3: {Kind: KindJP, Mode: ModeD16},
	0xC4: {Kind: KindCALL, Mode: ModeD16, Cond: CondNZ},
	0xC5: {Kind: KindPUSH, Mode: ModeR, Reg1: RegBC},
	0xC6: {Kind: KindADD, Mode: ModeRD8, Reg1: RegA},
	0xC7: {Kind: KindRST, Param: 0x00},
	0xC8: {Kind: KindRET, Cond: CondZ},
	0xC9: {Kind: KindRET},
	0xCA: {Kind: KindJP, Mode: ModeD16, Cond: CondZ},
	0xCB: {Kind: KindCB, Mode: ModeD8},
	0xCC: {Kind: KindCALL, Mode: ModeD16, Cond: CondZ},
	0xCD: {Kind: KindCALL, Mode: ModeD16},
	0xCE: {Kind: KindADC, Mode: ModeRD8, Reg1: RegA},
	0xCF: {Kind: KindRST, Param: 0x08},

	0xD0: {Kind: KindRET, Cond: CondNC},
	0xD1: {Kind: KindPOP, Mode: ModeR, Reg1: RegDE},
	0xD2: {Kind: KindJP, Mode: ModeD16, Cond: CondNC},
	0xD4: {Kind: KindCALL, Mode: ModeD16, Cond: CondNC},
	0xD5: {Kind: KindPUSH, Mode: ModeR, Reg1: RegDE},
	0xD6: {Kind: KindSUB, Mode: ModeRD8, Reg1: RegA},
	0xD7: {Kind: KindRST, Param: 0x10},
	0xD8: {Kind: KindRET, Cond: CondC},
	0xD9: {Kind: KindRETI},
	0xDA: {Kind: KindJP, Mode: ModeD16, Cond: CondC},
	0xDC: {Kind: KindCALL, Mode: ModeD16, Cond: CondC},
	0xDE: {Kind: KindSBC, Mode: ModeRD8, Reg1: RegA},
	0xDF: {Kind: KindRST, Param: 0x18},

	0xE0: {Kind: KindLDH, Mode: ModeA8R, Reg2: RegA},
	0xE1: {Kind: KindPOP, Mode: ModeR, Reg1: RegHL},
	0xE2: {Kind: KindLD, Mode: ModeMRR, Reg1: RegC, Reg2: RegA},
	0xE5: {Kind: KindPUSH, Mode: ModeR, Reg1: RegHL},
	0xE6: {Kind: KindAND, Mode: ModeRD8, Reg1: RegA},
	0xE7: {Kind: KindRST, Param: 0x20},
	0xE8: {Kind: KindADD, Mode: ModeRD8, Reg1: RegSP},
	0xE9: {Kind: KindJPHL},
	0xEA: {Kind: KindLD, Mode: ModeA16R, Reg2: RegA},
	0xEE: {Kind: KindXOR, Mode: ModeRD8, Reg1: RegA},
	0xEF: {Kind: KindRST, Param: 0x28},

	0xF0: {Kind: KindLDH, Mode: ModeRA8, Reg1: RegA},
	0xF1: {Kind: KindPOP, Mode: ModeR, Reg1: RegAF},
	0xF2: {Kind: KindLD, Mode: ModeRMR, Reg1: RegA, Reg2: RegC},
	0xF3: {Kind: KindDI},
	0xF5: {Kind: KindPUSH, Mode: ModeR, Reg1: RegAF},
	0xF6: {Kind: KindOR, Mode: ModeRD8, Reg1: RegA},
	0xF7: {Kind: KindRST, Param: 0x30},
	0xF8: {Kind: KindLD, Mode: ModeHLSPR, Reg1: RegHL, Reg2: RegSP},
	0xF9: {Kind: KindLD, Mode: ModeRR, Reg1: RegSP, Reg2: RegHL},
	0xFA: {Kind: KindLD, Mode: ModeRA16, Reg1: RegA},
	0xFB: {Kind: KindEI},
	0xFE: {Kind: KindCP, Mode: ModeRD8, Reg1: RegA},
	0xFF: {Kind: KindRST, Param: 0x38},
}

// aluKinds is the order of the 8-bit arithmetic block 0x80 - 0xBF.
var aluKinds = [8]Kind{KindADD, KindADC, KindSUB, KindSBC, KindAND, KindXOR, KindOR, KindCP}

func init() {
	// 0x40 - 0x7F: LD r, r'
	for op := 0x40; op < 0x80; op++ {
		dst, src := (op>>3)&7, op&7
		switch {
		case op == 0x76:
			defineInstruction(uint8(op), Instruction{Kind: KindHALT})
		case dst == hlIndirect:
			defineInstruction(uint8(op), Instruction{Kind: KindLD, Mode: ModeMRR, Reg1: RegHL, Reg2: operandRegs[src]})
		case src == hlIndirect:
			defineInstruction(uint8(op), Instruction{Kind: KindLD, Mode: ModeRMR, Reg1: operandRegs[dst], Reg2: RegHL})
		default:
			defineInstruction(uint8(op), Instruction{Kind: KindLD, Mode: ModeRR, Reg1: operandRegs[dst], Reg2: operandRegs[src]})
		}
	}

	// 0x80 - 0xBF: ALU A, r
	for op := 0x80; op < 0xC0; op++ {
		kind, src := aluKinds[(op>>3)&7], op&7
		if src == hlIndirect {
			defineInstruction(uint8(op), Instruction{Kind: kind, Mode: ModeRMR, Reg1: RegA, Reg2: RegHL})
		} else {
			defineInstruction(uint8(op), Instruction{Kind: kind, Mode: ModeRR, Reg1: RegA, Reg2: operandRegs[src]})
		}
	}

	if err := Validate(); err != nil {
		panic(err)
	}
}

// defineInstruction defines the instruction in the
// InstructionSet, with the provided opcode.
func defineInstruction(opcode uint8, instruction Instruction) {
	InstructionSet[opcode] = instruction
}

// Lookup returns the instruction for opcode. ok is false
// if the opcode is unmapped.
func Lookup(opcode uint8) (Instruction, bool) {
	i := InstructionSet[opcode]
	return i, i.Kind != KindNONE
}

func isIllegal(opcode uint8) bool {
	for _, op := range IllegalOpcodes {
		if op == opcode {
			return true
		}
	}
	return false
}

// Validate checks that every legal opcode is mapped, that
// every illegal opcode is not, and that every CB sub-opcode
// decodes to a CB operation. All problems are reported.
func Validate() error {
	var result *multierror.Error
	for op := 0; op < 256; op++ {
		_, mapped := Lookup(uint8(op))
		switch illegal := isIllegal(uint8(op)); {
		case illegal && mapped:
			result = multierror.Append(result, fmt.Errorf("illegal opcode %02X is mapped", op))
		case !illegal && !mapped:
			result = multierror.Append(result, fmt.Errorf("opcode %02X is not mapped", op))
		}

		if k := DecodeCB(uint8(op)).Kind; k < KindRLC || k > KindSET {
			result = multierror.Append(result, fmt.Errorf("CB opcode %02X decodes to %s", op, k))
		}
	}
	return result.ErrorOrNil()
}
