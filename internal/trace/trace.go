// Package trace defines the observer hooks the emulation core
// invokes after fetching an opcode, after executing an
// instruction, and when a byte is sent over the serial port.
// The core holds no process-wide debug state; everything it
// reports goes through an Observer.
package trace

import (
	"fmt"
	"strings"
	"sync"

	"github.com/thelolagemann/gbcore/pkg/log"
)

// State is a snapshot of the CPU taken after an instruction
// has been executed.
type State struct {
	PC     uint16 // address of the executed opcode
	Opcode uint8
	Name   string // mnemonic, e.g. "LD A,(HL+)"

	A, F, B, C, D, E, H, L uint8
	SP                     uint16
	NextPC                 uint16

	Cycles uint64 // machine cycles elapsed since power on
}

// String renders the state in a single line.
func (s State) String() string {
	return fmt.Sprintf("%04X: %02X %-14s A:%02X F:%s BC:%02X%02X DE:%02X%02X HL:%02X%02X SP:%04X PC:%04X (%d)",
		s.PC, s.Opcode, s.Name, s.A, Flags(s.F), s.B, s.C, s.D, s.E, s.H, s.L, s.SP, s.NextPC, s.Cycles)
}

// Flags renders the flag register as "ZNHC", with a dash in
// place of each clear flag.
func Flags(f uint8) string {
	b := []byte("----")
	for i, c := range []byte("ZNHC") {
		if f&(0x80>>i) != 0 {
			b[i] = c
		}
	}
	return string(b)
}

// Observer receives events from the emulation core.
type Observer interface {
	// Fetched is called after the opcode at pc has been read.
	Fetched(pc uint16, opcode uint8)
	// Executed is called after an instruction completes.
	Executed(s State)
	// SerialByte is called when a serial transfer of b is requested.
	SerialByte(b uint8)
}

// Nop is an Observer that ignores every event. It can be
// embedded to implement only some of the hooks.
type Nop struct{}

func (Nop) Fetched(uint16, uint8) {}
func (Nop) Executed(State)        {}
func (Nop) SerialByte(uint8)      {}

// Multi fans events out to several observers, in order.
type Multi []Observer

func (m Multi) Fetched(pc uint16, opcode uint8) {
	for _, o := range m {
		o.Fetched(pc, opcode)
	}
}

func (m Multi) Executed(s State) {
	for _, o := range m {
		o.Executed(s)
	}
}

func (m Multi) SerialByte(b uint8) {
	for _, o := range m {
		o.SerialByte(b)
	}
}

// Logger logs every executed instruction at debug level.
type Logger struct {
	Nop
	log log.Logger
}

// NewLogger returns an Observer logging to l.
func NewLogger(l log.Logger) *Logger {
	return &Logger{log: l}
}

func (l *Logger) Executed(s State) {
	l.log.Debugf("%s", s)
}

func (l *Logger) SerialByte(b uint8) {
	l.log.Debugf("serial: %02X", b)
}

// SerialBuffer collects the bytes sent over the serial port.
// Test ROMs print their results this way.
type SerialBuffer struct {
	Nop

	mu  sync.Mutex
	buf strings.Builder
}

func (s *SerialBuffer) SerialByte(b uint8) {
	s.mu.Lock()
	s.buf.WriteByte(b)
	s.mu.Unlock()
}

// String returns everything received so far.
func (s *SerialBuffer) String() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.buf.String()
}

// Contains reports whether any of words has been received.
func (s *SerialBuffer) Contains(words ...string) bool {
	out := s.String()
	for _, w := range words {
		if strings.Contains(out, w) {
			return true
		}
	}
	return false
}
