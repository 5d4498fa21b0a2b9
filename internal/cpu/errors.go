package cpu

import (
	"errors"
	"fmt"
)

var (
	// ErrUnmappedOpcode is returned when an opcode with no
	// instruction is fetched.
	ErrUnmappedOpcode = errors.New("unmapped opcode")
	// ErrNoHandler is returned when an instruction kind has
	// nothing to execute it.
	ErrNoHandler = errors.New("no handler for instruction")
)

// Fault stops the CPU. It records the opcode and the address
// it was fetched from.
type Fault struct {
	Err    error
	Opcode uint8
	PC     uint16
	Kind   Kind
}

func (f *Fault) Error() string {
	return fmt.Sprintf("cpu: %v: opcode %02X (%s) at %04X", f.Err, f.Opcode, f.Kind, f.PC)
}

func (f *Fault) Unwrap() error {
	return f.Err
}
