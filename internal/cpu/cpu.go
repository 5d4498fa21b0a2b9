// Package cpu provides an implementation of the SM83 CPU of
// the Game Boy: the register file, the instruction table and
// a fetch, decode, execute and interrupt dispatch loop in
// which every memory access consumes one machine cycle.
package cpu

import (
	"github.com/thelolagemann/gbcore/internal/interrupts"
	"github.com/thelolagemann/gbcore/internal/trace"
	"github.com/thelolagemann/gbcore/pkg/log"
)

const (
	// ClockSpeed is the clock speed of the CPU.
	ClockSpeed = 4194304
)

// Bus is the view of the memory bus the CPU needs. Clocked
// accesses and Tick each consume one machine cycle.
type Bus interface {
	Read(addr uint16) uint8
	Write(addr uint16, value uint8)
	ClockedRead(addr uint16) uint8
	ClockedWrite(addr uint16, value uint8)
	Tick()
	Cycles() uint64
}

// CPU represents the Gameboy CPU. It is responsible for executing instructions.
type CPU struct {
	Registers

	// IME is the interrupt master enable.
	IME bool
	// enablingIME is set by EI, IME follows after the next instruction.
	enablingIME bool
	halted      bool

	bus      Bus
	irq      *interrupts.Service
	observer trace.Observer
	log      log.Logger

	// state of the instruction being executed
	opcode    uint8
	pc        uint16
	current   Instruction
	fetched   uint16
	memDest   uint16
	isMemDest bool

	err error
}

// Opt configures a CPU.
type Opt func(c *CPU)

// WithLogger sets the logger of the CPU.
func WithLogger(l log.Logger) Opt {
	return func(c *CPU) {
		c.log = l
	}
}

// WithObserver sets the observer notified after each fetch
// and each executed instruction.
func WithObserver(o trace.Observer) Opt {
	return func(c *CPU) {
		c.observer = o
	}
}

// New returns a CPU with every register cleared, reading and
// writing through b and dispatching the interrupts of irq.
func New(b Bus, irq *interrupts.Service, opts ...Opt) *CPU {
	c := &CPU{
		bus:      b,
		irq:      irq,
		observer: trace.Nop{},
		log:      log.NewNullLogger(),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Halted reports whether the CPU is waiting for an interrupt.
func (c *CPU) Halted() bool {
	return c.halted
}

// Err returns the fault that stopped the CPU, if any.
func (c *CPU) Err() error {
	return c.err
}

// Step executes one instruction, or idles for one machine
// cycle while halted, then dispatches at most one interrupt.
// It returns false once the CPU has faulted.
func (c *CPU) Step() bool {
	if c.err != nil {
		return false
	}

	if c.halted {
		c.bus.Tick()
		// any pending interrupt wakes the CPU, regardless of IME
		if c.irq.HasInterrupts() {
			c.halted = false
		}
	} else if err := c.runInstruction(); err != nil {
		c.err = err
		c.log.Errorf("%v", err)
		return false
	}

	c.handleInterrupts()
	return true
}

// runInstruction fetches, decodes and executes the
// instruction at PC.
func (c *CPU) runInstruction() error {
	c.pc = c.PC
	c.opcode = c.readOperand()
	c.observer.Fetched(c.pc, c.opcode)

	instruction, ok := Lookup(c.opcode)
	if !ok {
		return &Fault{Err: ErrUnmappedOpcode, Opcode: c.opcode, PC: c.pc}
	}
	c.current = instruction
	c.resolve(instruction)

	if err := c.execute(instruction); err != nil {
		return err
	}
	c.observer.Executed(c.state())
	return nil
}

// execute runs the handler of the instruction, once its
// operand has been resolved.
func (c *CPU) execute(i Instruction) error {
	var fn func(*CPU)
	if i.Kind < kindCount {
		fn = handlers[i.Kind]
	}
	if fn == nil {
		return &Fault{Err: ErrNoHandler, Opcode: c.opcode, PC: c.pc, Kind: i.Kind}
	}
	fn(c)
	return nil
}

// state returns a snapshot of the CPU after the current
// instruction.
func (c *CPU) state() trace.State {
	name := c.current.String()
	if c.current.Kind == KindCB {
		name = DecodeCB(uint8(c.fetched)).String()
	}
	return trace.State{
		PC:     c.pc,
		Opcode: c.opcode,
		Name:   name,
		A:      c.A,
		F:      c.F,
		B:      c.B,
		C:      c.C,
		D:      c.D,
		E:      c.E,
		H:      c.H,
		L:      c.L,
		SP:     c.SP,
		NextPC: c.PC,
		Cycles: c.bus.Cycles(),
	}
}

// condition evaluates the condition of the current instruction.
func (c *CPU) condition(cond Condition) bool {
	switch cond {
	case CondNZ:
		return !c.Flag(FlagZero)
	case CondZ:
		return c.Flag(FlagZero)
	case CondNC:
		return !c.Flag(FlagCarry)
	case CondC:
		return c.Flag(FlagCarry)
	}
	return true
}

// handlers executes each instruction kind. The CB operations
// are reached through KindCB only.
var handlers = [kindCount]func(*CPU){
	KindNOP:  (*CPU).nop,
	KindLD:   (*CPU).load,
	KindINC:  (*CPU).inc,
	KindDEC:  (*CPU).dec,
	KindRLCA: (*CPU).rlca,
	KindADD:  (*CPU).addInstr,
	KindRRCA: (*CPU).rrca,
	KindSTOP: (*CPU).stop,
	KindRLA:  (*CPU).rla,
	KindJR:   (*CPU).jumpRelative,
	KindRRA:  (*CPU).rra,
	KindDAA:  (*CPU).daa,
	KindCPL:  (*CPU).cpl,
	KindSCF:  (*CPU).scf,
	KindCCF:  (*CPU).ccf,
	KindHALT: (*CPU).halt,
	KindADC:  (*CPU).adc,
	KindSUB:  (*CPU).subInstr,
	KindSBC:  (*CPU).sbc,
	KindAND:  (*CPU).and,
	KindXOR:  (*CPU).xor,
	KindOR:   (*CPU).or,
	KindCP:   (*CPU).cp,
	KindPOP:  (*CPU).popInstr,
	KindJP:   (*CPU).jumpAbsolute,
	KindPUSH: (*CPU).pushInstr,
	KindRET:  (*CPU).ret,
	KindCB:   (*CPU).prefixed,
	KindCALL: (*CPU).call,
	KindRETI: (*CPU).reti,
	KindLDH:  (*CPU).load,
	KindJPHL: (*CPU).jumpHL,
	KindDI:   (*CPU).di,
	KindEI:   (*CPU).ei,
	KindRST:  (*CPU).rst,
}
