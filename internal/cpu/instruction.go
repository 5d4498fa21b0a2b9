package cpu

import (
	"fmt"
	"strings"
)

// Kind is the operation an instruction performs.
type Kind uint8

const (
	KindNONE Kind = iota
	KindNOP
	KindLD
	KindINC
	KindDEC
	KindRLCA
	KindADD
	KindRRCA
	KindSTOP
	KindRLA
	KindJR
	KindRRA
	KindDAA
	KindCPL
	KindSCF
	KindCCF
	KindHALT
	KindADC
	KindSUB
	KindSBC
	KindAND
	KindXOR
	KindOR
	KindCP
	KindPOP
	KindJP
	KindPUSH
	KindRET
	KindCB
	KindCALL
	KindRETI
	KindLDH
	KindJPHL
	KindDI
	KindEI
	KindRST

	// reached through the CB prefix only
	KindRLC
	KindRRC
	KindRL
	KindRR
	KindSLA
	KindSRA
	KindSWAP
	KindSRL
	KindBIT
	KindRES
	KindSET

	kindCount
)

var kindNames = [kindCount]string{
	"<NONE>", "NOP", "LD", "INC", "DEC", "RLCA", "ADD", "RRCA", "STOP", "RLA",
	"JR", "RRA", "DAA", "CPL", "SCF", "CCF", "HALT", "ADC", "SUB", "SBC",
	"AND", "XOR", "OR", "CP", "POP", "JP", "PUSH", "RET", "CB", "CALL",
	"RETI", "LDH", "JP", "DI", "EI", "RST",
	"RLC", "RRC", "RL", "RR", "SLA", "SRA", "SWAP", "SRL", "BIT", "RES", "SET",
}

func (k Kind) String() string {
	if k < kindCount {
		return kindNames[k]
	}
	return fmt.Sprintf("Kind(%d)", uint8(k))
}

// Mode is the addressing mode of an instruction, which
// determines how its operand is fetched and where its
// result goes.
type Mode uint8

const (
	ModeIMP    Mode = iota // implied
	ModeR                  // reg1
	ModeRR                 // reg1, reg2
	ModeRD8                // reg1, d8
	ModeRD16               // reg1, d16
	ModeMRR                // (reg1), reg2
	ModeRMR                // reg1, (reg2)
	ModeRHLI               // reg1, (HL+)
	ModeRHLD               // reg1, (HL-)
	ModeHLIR               // (HL+), reg2
	ModeHLDR               // (HL-), reg2
	ModeRA8                // reg1, (0xFF00+a8)
	ModeA8R                // (0xFF00+a8), reg2
	ModeHLSPR              // HL, SP+r8
	ModeD8                 // d8
	ModeD16                // d16
	ModeMRD8               // (reg1), d8
	ModeMR                 // (reg1)
	ModeA16R               // (a16), reg2
	ModeRA16               // reg1, (a16)
)

// Condition is the flag test of a conditional jump, call or return.
type Condition uint8

const (
	CondNone Condition = iota
	CondNZ
	CondZ
	CondNC
	CondC
)

func (c Condition) String() string {
	switch c {
	case CondNZ:
		return "NZ"
	case CondZ:
		return "Z"
	case CondNC:
		return "NC"
	case CondC:
		return "C"
	}
	return ""
}

// Instruction describes an opcode. Descriptors are built
// once and never modified.
type Instruction struct {
	Kind Kind
	Mode Mode
	Reg1 Reg
	Reg2 Reg
	Cond Condition
	// Param is the vector of RST, or the bit index of BIT, RES and SET.
	Param uint8
}

// String returns the mnemonic of the instruction, e.g. "LD A,(HL+)".
func (i Instruction) String() string {
	switch i.Kind {
	case KindRST:
		return fmt.Sprintf("RST %02XH", i.Param)
	case KindJPHL:
		return "JP (HL)"
	case KindCB:
		return "PREFIX CB"
	case KindBIT, KindRES, KindSET:
		return fmt.Sprintf("%s %d,%s", i.Kind, i.Param, strings.Join(i.operands(), ","))
	}

	ops := i.operands()
	if i.Cond != CondNone {
		ops = append([]string{i.Cond.String()}, ops...)
	}
	if len(ops) == 0 {
		return i.Kind.String()
	}
	return i.Kind.String() + " " + strings.Join(ops, ",")
}

func (i Instruction) operands() []string {
	d8 := "d8"
	if i.Kind == KindJR || i.Reg1 == RegSP && i.Kind == KindADD {
		d8 = "r8"
	}
	switch i.Mode {
	case ModeR:
		return []string{i.Reg1.String()}
	case ModeRR:
		return []string{i.Reg1.String(), i.Reg2.String()}
	case ModeRD8:
		return []string{i.Reg1.String(), d8}
	case ModeRD16:
		return []string{i.Reg1.String(), "d16"}
	case ModeMRR:
		return []string{"(" + i.Reg1.String() + ")", i.Reg2.String()}
	case ModeRMR:
		return []string{i.Reg1.String(), "(" + i.Reg2.String() + ")"}
	case ModeRHLI:
		return []string{i.Reg1.String(), "(HL+)"}
	case ModeRHLD:
		return []string{i.Reg1.String(), "(HL-)"}
	case ModeHLIR:
		return []string{"(HL+)", i.Reg2.String()}
	case ModeHLDR:
		return []string{"(HL-)", i.Reg2.String()}
	case ModeRA8:
		return []string{i.Reg1.String(), "(a8)"}
	case ModeA8R:
		return []string{"(a8)", i.Reg2.String()}
	case ModeHLSPR:
		return []string{"HL", "SP+r8"}
	case ModeD8:
		if i.Kind == KindSTOP {
			return nil
		}
		return []string{d8}
	case ModeD16:
		return []string{"a16"}
	case ModeMRD8:
		return []string{"(" + i.Reg1.String() + ")", "d8"}
	case ModeMR:
		return []string{"(" + i.Reg1.String() + ")"}
	case ModeA16R:
		return []string{"(a16)", i.Reg2.String()}
	case ModeRA16:
		return []string{i.Reg1.String(), "(a16)"}
	}
	return nil
}
