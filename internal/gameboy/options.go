package gameboy

import (
	"github.com/thelolagemann/gbcore/internal/trace"
	"github.com/thelolagemann/gbcore/pkg/log"
)

// ldBB is the opcode of LD B,B, used by test ROMs as a
// software breakpoint.
const ldBB = 0x40

// Opt is a function that modifies a GameBoy
// instance.
type Opt func(gb *GameBoy)

func WithLogger(log log.Logger) Opt {
	return func(gb *GameBoy) {
		gb.Logger = log
	}
}

// WithObserver adds an observer of fetches, executed
// instructions and serial bytes.
func WithObserver(o trace.Observer) Opt {
	return func(gb *GameBoy) {
		gb.observers = append(gb.observers, o)
	}
}

// NoBoot starts from the state the DMG boot ROM hands over
// to the cartridge.
func NoBoot() Opt {
	return func(gb *GameBoy) {
		gb.noBoot = true
	}
}

// SerialDebugger appends every serial byte to output.
func SerialDebugger(output *string) Opt {
	return WithObserver(&serialString{output: output})
}

// StopOnSerial stops the Game Boy once any of words has been
// sent over the serial port, e.g. "Passed" or "Failed".
func StopOnSerial(words ...string) Opt {
	return func(gb *GameBoy) {
		gb.observers = append(gb.observers, &serialStop{gb: gb, words: words})
	}
}

// StopOnBreakpoint stops the Game Boy after it executes LD B,B.
func StopOnBreakpoint() Opt {
	return func(gb *GameBoy) {
		gb.observers = append(gb.observers, &breakpoint{gb: gb})
	}
}

type serialString struct {
	trace.Nop
	output *string
}

func (s *serialString) SerialByte(b uint8) {
	*s.output += string(rune(b))
}

type serialStop struct {
	trace.Nop
	gb    *GameBoy
	words []string
}

func (s *serialStop) SerialByte(uint8) {
	if s.gb.SerialOutput.Contains(s.words...) {
		s.gb.Stop()
	}
}

type breakpoint struct {
	trace.Nop
	gb *GameBoy
}

func (b *breakpoint) Executed(s trace.State) {
	if s.Opcode == ldBB {
		b.gb.Stop()
	}
}
