package cpu

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRotateAccumulator(t *testing.T) {
	runALUTests(t, []aluTest{
		{name: "RLCA", program: []uint8{0x07}, a: 0x85, wantA: 0x0B, wantF: 0x10},
		{name: "RLCA zero result", program: []uint8{0x07}, a: 0x00, f: 0x80, wantA: 0x00, wantF: 0x00},
		{name: "RLA", program: []uint8{0x17}, a: 0x95, wantA: 0x2A, wantF: 0x10},
		{name: "RLA carry in", program: []uint8{0x17}, a: 0x15, f: 0x10, wantA: 0x2B, wantF: 0x00},
		{name: "RRCA", program: []uint8{0x0F}, a: 0x3B, wantA: 0x9D, wantF: 0x10},
		{name: "RRA", program: []uint8{0x1F}, a: 0x81, wantA: 0x40, wantF: 0x10},
		{name: "RRA carry in", program: []uint8{0x1F}, a: 0x80, f: 0x10, wantA: 0xC0, wantF: 0x00},
	})
}

func TestPrefixed(t *testing.T) {
	tests := []struct {
		name  string
		op    uint8
		a, f  uint8
		wantA uint8
		wantF uint8
	}{
		{"RLC A", 0x07, 0x85, 0x00, 0x0B, 0x10},
		{"RLC A zero", 0x07, 0x00, 0x00, 0x00, 0x80},
		{"RRC A", 0x0F, 0x01, 0x00, 0x80, 0x10},
		{"RL A", 0x17, 0x80, 0x00, 0x00, 0x90},
		{"RR A", 0x1F, 0x01, 0x10, 0x80, 0x10},
		{"SLA A", 0x27, 0xFF, 0x00, 0xFE, 0x10},
		{"SRA A", 0x2F, 0x8A, 0x00, 0xC5, 0x00},
		{"SWAP A", 0x37, 0xF0, 0x10, 0x0F, 0x00},
		{"SWAP A zero", 0x37, 0x00, 0x00, 0x00, 0x80},
		{"SRL A", 0x3F, 0x01, 0x00, 0x00, 0x90},
		{"BIT 7,A set", 0x7F, 0x80, 0x10, 0x80, 0x30},
		{"BIT 0,A clear", 0x47, 0xFE, 0x00, 0xFE, 0xA0},
		{"RES 7,A", 0xBF, 0xFF, 0x00, 0x7F, 0x00},
		{"SET 3,A", 0xDF, 0x00, 0x00, 0x08, 0x00},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := newMachine([]uint8{0xCB, tt.op})
			m.A, m.F = tt.a, tt.f
			m.Step()
			assert.Equal(t, tt.wantA, m.A, "A")
			assert.Equal(t, tt.wantF, m.F, "F")
			assert.Equal(t, uint16(0x0102), m.PC)
		})
	}

	t.Run("register operands", func(t *testing.T) {
		// SET 0 on B, C, D, E, H, L
		for i, reg := range []Reg{RegB, RegC, RegD, RegE, RegH, RegL} {
			m := newMachine([]uint8{0xCB, 0xC0 | uint8(i)})
			m.Step()
			assert.Equal(t, uint8(0x01), m.Read8(reg), reg.String())
		}
	})

	t.Run("(HL)", func(t *testing.T) {
		m := newMachine([]uint8{
			0xCB, 0x86, // RES 0,(HL)
			0xCB, 0x36, // SWAP (HL)
			0xCB, 0x7E, // BIT 7,(HL)
		})
		m.Write16(RegHL, 0xC000)
		m.load(0xC000, 0xFF)

		m.Step()
		assert.Equal(t, uint8(0xFE), m.mem.Read(0xC000))
		m.Step()
		assert.Equal(t, uint8(0xEF), m.mem.Read(0xC000))
		m.Step()
		assert.Equal(t, uint8(0xEF), m.mem.Read(0xC000))
		assert.Equal(t, uint8(0x20), m.F)
	})
}
