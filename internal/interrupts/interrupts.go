// Package interrupts holds the interrupt request (IF) and
// interrupt enable (IE) registers. The CPU owns a Service and
// hands narrow views of it to the peripherals: the timer only
// sees Requester, the bus only sees the register handlers.
package interrupts

import (
	"fmt"

	"github.com/thelolagemann/gbcore/internal/types"
)

const (
	// VBlankFlag is the VBlank interrupt flag (bit 0).
	VBlankFlag = types.Bit0
	// LCDFlag is the LCD STAT interrupt flag (bit 1).
	LCDFlag = types.Bit1
	// TimerFlag is the Timer interrupt flag (bit 2),
	// which is requested when TIMA overflows.
	TimerFlag = types.Bit2
	// SerialFlag is the Serial interrupt flag (bit 3).
	SerialFlag = types.Bit3
	// JoypadFlag is the Joypad interrupt Flag (bit 4).
	JoypadFlag = types.Bit4

	// Sources is the number of interrupt sources.
	Sources = 5

	mask = 0x1F
)

// Vectors holds the jump vector of each source, in priority order.
var Vectors = [Sources]uint16{0x40, 0x48, 0x50, 0x58, 0x60}

// Requester is implemented by anything that can raise
// an interrupt request.
type Requester interface {
	Request(flag uint8)
}

// Service is the interrupt service, used to request
// interrupts and to select the next interrupt to dispatch.
//
// When an interrupt is requested, the corresponding bit
// in the Flag register is set. When an interrupt is
// enabled, the corresponding bit in the Enable register
// is set. The master enable (IME) lives on the CPU, which
// calls Next when IME is set.
type Service struct {
	Flag   uint8 // interrupt Flag (types.IF)
	Enable uint8 // interrupt Enable (types.IE)
}

// NewService returns a new Service.
func NewService() *Service {
	return &Service{}
}

// HasInterrupts returns true if there are any interrupts
// that are requested and enabled.
func (s *Service) HasInterrupts() bool {
	return s.Enable&s.Flag&mask != 0
}

// Request requests the specified interrupt, by setting
// the corresponding bit in the Flag register.
func (s *Service) Request(flag uint8) {
	s.Flag |= flag & mask
}

// Next returns the vector of the highest priority interrupt
// that is both requested and enabled, clearing its request
// bit. ok is false if there is nothing to dispatch.
func (s *Service) Next() (vector uint16, ok bool) {
	pending := s.Enable & s.Flag & mask
	if pending == 0 {
		return 0, false
	}
	for i := uint8(0); i < Sources; i++ {
		flag := uint8(1 << i)
		if pending&flag != 0 {
			s.Flag &^= flag
			return Vectors[i], true
		}
	}

	return 0, false
}

// Read implements the register read for types.IF and types.IE.
func (s *Service) Read(addr uint16) uint8 {
	switch addr {
	case types.IF:
		return s.Flag | 0xE0 // the upper 3 bits are always set
	case types.IE:
		return s.Enable
	}
	panic(fmt.Sprintf("interrupts: illegal read from %04X", addr))
}

// Write implements the register write for types.IF and types.IE.
func (s *Service) Write(addr uint16, value uint8) {
	switch addr {
	case types.IF:
		s.Flag = value & mask // only the first 5 bits are used
	case types.IE:
		s.Enable = value
	default:
		panic(fmt.Sprintf("interrupts: illegal write to %04X", addr))
	}
}
