// Package ram provides a fixed-size block of RAM, addressed
// by offset from the start of the block.
package ram

import "fmt"

// RAM represents a block of RAM.
type RAM struct {
	data []uint8
}

// NewRAM returns a new RAM of the given size, cleared to 0.
func NewRAM(size uint32) *RAM {
	return &RAM{
		data: make([]uint8, size),
	}
}

// Size returns the number of bytes in the block.
func (r *RAM) Size() int {
	return len(r.data)
}

// Read returns the value at the given offset. An offset outside
// of the block is a mapping bug and panics.
func (r *RAM) Read(offset uint16) uint8 {
	r.check(offset)
	return r.data[offset]
}

// Write writes the value to the given offset.
func (r *RAM) Write(offset uint16, value uint8) {
	r.check(offset)
	r.data[offset] = value
}

// Bytes returns the underlying memory.
func (r *RAM) Bytes() []uint8 {
	return r.data
}

func (r *RAM) check(offset uint16) {
	if int(offset) >= len(r.data) {
		panic(fmt.Sprintf("ram: offset %04X out of range (size %04X)", offset, len(r.data)))
	}
}
