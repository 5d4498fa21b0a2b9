// Package bits provides small helpers for testing and
// manipulating individual bits of the 8-bit registers
// and the 16-bit system counter.
package bits

import "golang.org/x/exp/constraints"

// Val returns the value of the bit at the given index.
func Val[T constraints.Unsigned](b T, i uint8) T {
	return (b >> i) & 1
}

// Reset resets the bit at the given index.
func Reset[T constraints.Unsigned](b T, i uint8) T {
	return b &^ (1 << i)
}

// Set sets the bit at the given index.
func Set[T constraints.Unsigned](b T, i uint8) T {
	return b | (1 << i)
}

// Test tests the bit at the given index.
func Test[T constraints.Unsigned](b T, i uint8) bool {
	return (b>>i)&1 != 0
}

// FallingEdge reports whether the bit at the given index
// went from 1 in prev to 0 in next.
func FallingEdge[T constraints.Unsigned](prev, next T, i uint8) bool {
	return Test(prev, i) && !Test(next, i)
}

// HalfCarry reports whether adding a, b and carry
// produces a carry out of the low nibble.
func HalfCarry(a, b, carry uint8) bool {
	return (a&0xF)+(b&0xF)+carry > 0xF
}

// HalfBorrow reports whether subtracting b and carry from
// a borrows from bit 4.
func HalfBorrow(a, b, carry uint8) bool {
	return int(a&0xF)-int(b&0xF)-int(carry) < 0
}
