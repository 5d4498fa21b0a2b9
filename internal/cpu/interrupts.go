package cpu

// handleInterrupts dispatches at most one interrupt, then
// applies a pending EI.
func (c *CPU) handleInterrupts() {
	if c.IME {
		c.serviceInterrupt()
		c.enablingIME = false
	}
	if c.enablingIME {
		c.IME = true
		c.enablingIME = false
	}
}

// serviceInterrupt pushes PC and jumps to the vector of the
// highest priority pending interrupt, clearing its request
// and IME. It takes five machine cycles.
func (c *CPU) serviceInterrupt() {
	vector, ok := c.irq.Next()
	if !ok {
		return
	}
	c.IME = false
	c.halted = false

	c.bus.Tick()
	c.bus.Tick()
	c.push(c.PC)
	c.bus.Tick()
	c.PC = vector
}
