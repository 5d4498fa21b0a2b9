// Package timer provides an implementation of the Game Boy
// timer. A free-running 16-bit system counter (DIV) drives
// TIMA, which is incremented on every falling edge of the
// counter bit selected by TAC, and raises the timer interrupt
// when it overflows.
package timer

import (
	"fmt"

	"github.com/thelolagemann/gbcore/internal/interrupts"
	"github.com/thelolagemann/gbcore/internal/types"
	"github.com/thelolagemann/gbcore/pkg/bits"
)

const (
	// TicksPerMCycle is the number of system counter increments
	// in one machine cycle.
	TicksPerMCycle = 4

	enableBit = 2
	tacMask   = 0b111
)

// selectBits maps the TAC clock select to the counter bit
// whose falling edge increments TIMA.
//
//	00 = bit 9 (4096 Hz)
//	01 = bit 3 (262144 Hz)
//	10 = bit 5 (65536 Hz)
//	11 = bit 7 (16384 Hz)
var selectBits = [4]uint8{9, 3, 5, 7}

// Controller is a timer controller. The frequency of TIMA is
// configured using the types.TAC register.
type Controller struct {
	div  uint16
	tima uint8
	tma  uint8
	tac  uint8

	irq interrupts.Requester
}

// NewController returns a new timer controller, with every
// register cleared, that raises its interrupt through irq.
func NewController(irq interrupts.Requester) *Controller {
	return &Controller{irq: irq}
}

// Div returns the full 16-bit system counter.
func (c *Controller) Div() uint16 {
	return c.div
}

// SetDiv sets the system counter, without edge detection.
// It is used to load the post-boot state.
func (c *Controller) SetDiv(v uint16) {
	c.div = v
}

// Enabled reports whether TAC enables TIMA.
func (c *Controller) Enabled() bool {
	return bits.Test(c.tac, enableBit)
}

// Tick advances the system counter by one.
func (c *Controller) Tick() {
	prev := c.div
	c.div++
	c.detectEdge(prev, c.div)
}

// TickM advances the timer by one machine cycle.
func (c *Controller) TickM() {
	c.Advance(TicksPerMCycle)
}

// Advance ticks the timer n times.
func (c *Controller) Advance(n int) {
	for i := 0; i < n; i++ {
		c.Tick()
	}
}

// detectEdge increments TIMA if the selected counter bit fell
// between prev and next while the timer is enabled.
func (c *Controller) detectEdge(prev, next uint16) {
	if !c.Enabled() {
		return
	}
	if bits.FallingEdge(prev, next, selectBits[c.tac&0b11]) {
		c.incrementTIMA()
	}
}

// incrementTIMA increments TIMA, reloading it from TMA and
// requesting the timer interrupt when it overflows.
func (c *Controller) incrementTIMA() {
	if c.tima == 0xFF {
		c.tima = c.tma
		c.irq.Request(interrupts.TimerFlag)
		return
	}
	c.tima++
}

// Read returns the value of the timer register at addr.
func (c *Controller) Read(addr uint16) uint8 {
	switch addr {
	case types.DIV:
		return uint8(c.div >> 8)
	case types.TIMA:
		return c.tima
	case types.TMA:
		return c.tma
	case types.TAC:
		return c.tac
	}
	panic(fmt.Sprintf("timer: illegal read from %04X", addr))
}

// Write writes value to the timer register at addr.
func (c *Controller) Write(addr uint16, value uint8) {
	switch addr {
	case types.DIV:
		// resetting the counter may itself drop the selected bit
		prev := c.div
		c.div = 0
		c.detectEdge(prev, c.div)
	case types.TIMA:
		c.tima = value
	case types.TMA:
		c.tma = value
	case types.TAC:
		c.tac = value & tacMask
	default:
		panic(fmt.Sprintf("timer: illegal write to %04X", addr))
	}
}
