package cpu

import (
	"github.com/thelolagemann/gbcore/internal/bus"
	"github.com/thelolagemann/gbcore/internal/interrupts"
	"github.com/thelolagemann/gbcore/internal/serial"
	"github.com/thelolagemann/gbcore/internal/timer"
	"github.com/thelolagemann/gbcore/internal/trace"
)

// machine wires a CPU to a real bus, timer and interrupt
// service, with a program loaded at 0x0100.
type machine struct {
	*CPU
	mem   *bus.Bus
	ints  *interrupts.Service
	timer *timer.Controller
}

func newMachine(program []uint8, opts ...Opt) *machine {
	rom := make([]uint8, 0x8000)
	copy(rom[0x0100:], program)

	ints := interrupts.NewService()
	tm := timer.NewController(ints)
	b := bus.New(rom, tm, ints, serial.NewController(nil))

	c := New(b, ints, opts...)
	c.PC = 0x0100
	c.SP = 0xFFFE

	return &machine{CPU: c, mem: b, ints: ints, timer: tm}
}

// load writes bytes at addr, without consuming cycles.
func (m *machine) load(addr uint16, bytes ...uint8) {
	for i, b := range bytes {
		m.mem.Write(addr+uint16(i), b)
	}
}

// steps runs n steps, returning the machine cycles they took.
func (m *machine) steps(n int) uint64 {
	before := m.mem.Cycles()
	for i := 0; i < n; i++ {
		m.Step()
	}
	return m.mem.Cycles() - before
}

type recorder struct {
	trace.Nop
	fetched []uint16
	states  []trace.State
}

func (r *recorder) Fetched(pc uint16, _ uint8) {
	r.fetched = append(r.fetched, pc)
}

func (r *recorder) Executed(s trace.State) {
	r.states = append(r.states, s)
}
