package cpu

import "github.com/thelolagemann/gbcore/pkg/bits"

// Flag is the bit position of a flag in the F register.
type Flag = uint8

const (
	FlagZero      Flag = 7
	FlagSubtract  Flag = 6
	FlagHalfCarry Flag = 5
	FlagCarry     Flag = 4
)

// Flag returns true if the given flag is set.
func (r *Registers) Flag(f Flag) bool {
	return bits.Test(r.F, f)
}

// SetFlags sets every flag whose argument is true.
func (r *Registers) SetFlags(z, n, h, c bool) {
	r.F |= flagBits(z, n, h, c)
}

// ClearFlags clears every flag whose argument is true.
func (r *Registers) ClearFlags(z, n, h, c bool) {
	r.F &^= flagBits(z, n, h, c)
}

// ToggleFlags inverts every flag whose argument is true.
func (r *Registers) ToggleFlags(z, n, h, c bool) {
	r.F ^= flagBits(z, n, h, c)
}

func flagBits(z, n, h, c bool) uint8 {
	var f uint8
	for i, set := range [4]bool{c, h, n, z} {
		if set {
			f = bits.Set(f, FlagCarry+uint8(i))
		}
	}
	return f
}

// FlagEffect describes what an operation does to a single flag.
type FlagEffect uint8

const (
	Unaffected FlagEffect = iota
	Clear
	Set
)

// Computed returns Set if v is true, Clear otherwise.
func Computed(v bool) FlagEffect {
	if v {
		return Set
	}
	return Clear
}

// setFlags applies an effect to each of the four flags.
func (r *Registers) setFlags(z, n, h, c FlagEffect) {
	for i, e := range [4]FlagEffect{c, h, n, z} {
		switch e {
		case Set:
			r.F = bits.Set(r.F, FlagCarry+uint8(i))
		case Clear:
			r.F = bits.Reset(r.F, FlagCarry+uint8(i))
		}
	}
}
