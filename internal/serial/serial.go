// Package serial provides the serial port registers. No
// transfer is ever clocked out: SB and SC are stored, and a
// requested transfer is only reported to the Listener.
package serial

import (
	"fmt"

	"github.com/thelolagemann/gbcore/internal/types"
)

const transferStart = types.Bit7

// Listener is notified whenever a transfer is requested.
type Listener interface {
	SerialByte(b uint8)
}

// Controller holds the serial data (types.SB) and control
// (types.SC) registers.
type Controller struct {
	data    uint8
	control uint8

	out Listener
}

// NewController returns a new Controller reporting to out,
// which may be nil.
func NewController(out Listener) *Controller {
	return &Controller{out: out}
}

// Attach replaces the listener.
func (c *Controller) Attach(out Listener) {
	c.out = out
}

// Read returns the value of the serial register at addr.
func (c *Controller) Read(addr uint16) uint8 {
	switch addr {
	case types.SB:
		return c.data
	case types.SC:
		return c.control
	}
	panic(fmt.Sprintf("serial: illegal read from %04X", addr))
}

// Write writes the serial register at addr. Setting the transfer
// start bit of SC reports SB to the listener.
func (c *Controller) Write(addr uint16, value uint8) {
	switch addr {
	case types.SB:
		c.data = value
	case types.SC:
		c.control = value
		if value&transferStart != 0 && c.out != nil {
			c.out.SerialByte(c.data)
		}
	default:
		panic(fmt.Sprintf("serial: illegal write to %04X", addr))
	}
}
