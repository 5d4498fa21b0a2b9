// Package gameboy wires the processing core of a Game Boy
// together: the CPU, the memory bus, the timer, the serial
// port and the interrupt service, loaded with a cartridge.
package gameboy

import (
	"context"

	"github.com/thelolagemann/gbcore/internal/bus"
	"github.com/thelolagemann/gbcore/internal/cartridge"
	"github.com/thelolagemann/gbcore/internal/cpu"
	"github.com/thelolagemann/gbcore/internal/interrupts"
	"github.com/thelolagemann/gbcore/internal/serial"
	"github.com/thelolagemann/gbcore/internal/timer"
	"github.com/thelolagemann/gbcore/internal/trace"
	"github.com/thelolagemann/gbcore/pkg/log"
)

const (
	// ClockSpeed is the clock speed of the Game Boy.
	ClockSpeed = cpu.ClockSpeed
	// MCyclesPerSecond is the number of machine cycles per second.
	MCyclesPerSecond = ClockSpeed / timer.TicksPerMCycle

	// steps between two checks of the context in Run
	contextInterval = 1 << 12
)

// GameBoy represents a Game Boy. It contains all the components of the Game Boy.
// It is the main entry point for the emulator.
type GameBoy struct {
	CPU        *cpu.CPU
	Bus        *bus.Bus
	Interrupts *interrupts.Service
	Timer      *timer.Controller
	Serial     *serial.Controller
	Cartridge  *cartridge.Cartridge

	// SerialOutput collects every byte sent over the serial port.
	SerialOutput *trace.SerialBuffer

	log.Logger

	observers trace.Multi
	noBoot    bool
	stopped   bool
}

// New returns a GameBoy running rom. The CPU starts at 0x0100
// with every other register cleared, unless NoBoot is given.
func New(rom []byte, opts ...Opt) (*GameBoy, error) {
	g := &GameBoy{
		Logger:       log.NewNullLogger(),
		SerialOutput: &trace.SerialBuffer{},
	}
	g.observers = trace.Multi{g.SerialOutput}
	for _, opt := range opts {
		opt(g)
	}

	cart, err := cartridge.New(rom, g.Logger)
	if err != nil {
		return nil, err
	}

	g.Cartridge = cart
	g.Interrupts = interrupts.NewService()
	g.Timer = timer.NewController(g.Interrupts)
	g.Serial = serial.NewController(&g.observers)
	g.Bus = bus.New(cart.Memory(), g.Timer, g.Interrupts, g.Serial, bus.WithLogger(g.Logger))
	g.CPU = cpu.New(g.Bus, g.Interrupts, cpu.WithLogger(g.Logger), cpu.WithObserver(&g.observers))
	g.CPU.PC = 0x0100

	if g.noBoot {
		g.skipBoot()
	}

	g.Infof("gameboy: loaded %q (%016X)", cart.Title(), cart.ID())
	return g, nil
}

// skipBoot loads the state the DMG boot ROM leaves behind.
func (g *GameBoy) skipBoot() {
	c := g.CPU
	c.Write16(cpu.RegAF, 0x01B0)
	c.Write16(cpu.RegBC, 0x0013)
	c.Write16(cpu.RegDE, 0x00D8)
	c.Write16(cpu.RegHL, 0x014D)
	c.SP = 0xFFFE
	c.PC = 0x0100
	g.Timer.SetDiv(0xABCC)
}

// Step executes one CPU step. It returns false once the CPU
// has faulted or the Game Boy has been stopped.
func (g *GameBoy) Step() bool {
	if g.stopped {
		return false
	}
	return g.CPU.Step() && !g.stopped
}

// Stop stops the Game Boy before its next step.
func (g *GameBoy) Stop() {
	g.stopped = true
}

// Stopped reports whether Stop has been called.
func (g *GameBoy) Stopped() bool {
	return g.stopped
}

// Err returns the fault that stopped the CPU, if any.
func (g *GameBoy) Err() error {
	return g.CPU.Err()
}

// Run steps the Game Boy until it faults, is stopped, or ctx
// is done. A stopped Game Boy returns nil.
func (g *GameBoy) Run(ctx context.Context) error {
	for i := 0; ; i++ {
		if i%contextInterval == 0 {
			if err := ctx.Err(); err != nil {
				return err
			}
		}
		if !g.Step() {
			return g.Err()
		}
	}
}

// RunCycles steps the Game Boy for at least n machine cycles,
// or until it faults or is stopped.
func (g *GameBoy) RunCycles(n uint64) error {
	end := g.Bus.Cycles() + n
	for g.Bus.Cycles() < end {
		if !g.Step() {
			break
		}
	}
	return g.Err()
}

// MooneyePassed reports whether the registers hold the
// Fibonacci sequence 3/5/8/13/21/34 in B/C/D/E/H/L, which
// the mooneye test ROMs load on success.
func (g *GameBoy) MooneyePassed() bool {
	c := g.CPU
	return c.B == 3 && c.C == 5 && c.D == 8 && c.E == 13 && c.H == 21 && c.L == 34
}
