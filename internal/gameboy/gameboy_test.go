package gameboy

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/thelolagemann/gbcore/internal/cartridge"
	"github.com/thelolagemann/gbcore/internal/cpu"
	"github.com/thelolagemann/gbcore/internal/types"
)

// newROM returns a ROM that jumps from the entry point to
// program at 0x0150, with handler at the timer vector.
func newROM(program []uint8, handler ...uint8) []uint8 {
	rom := make([]uint8, 0x8000)
	copy(rom[0x0100:], []uint8{0x00, 0xC3, 0x50, 0x01}) // NOP; JP 0x0150
	copy(rom[0x0134:], "GBCORE")
	copy(rom[0x0150:], program)
	copy(rom[0x0050:], handler)
	return rom
}

// sendSerial returns the instructions sending s over the serial port.
func sendSerial(s string) []uint8 {
	var p []uint8
	for _, c := range []byte(s) {
		p = append(p,
			0x3E, c, // LD A,c
			0xE0, 0x01, // LDH (SB),A
			0x3E, 0x81, // LD A,0x81
			0xE0, 0x02, // LDH (SC),A
		)
	}
	return p
}

var loop = []uint8{0x18, 0xFE} // JR -2

func TestNew(t *testing.T) {
	t.Run("too small", func(t *testing.T) {
		_, err := New(make([]uint8, 0x100))
		assert.ErrorIs(t, err, cartridge.ErrNoHeader)
	})
	t.Run("cold start", func(t *testing.T) {
		g, err := New(newROM(nil))
		require.NoError(t, err)
		assert.Equal(t, uint16(0x0100), g.CPU.PC)
		assert.Equal(t, uint16(0x0000), g.CPU.Read16(cpu.RegAF))
		assert.Equal(t, "GBCORE", g.Cartridge.Title())
	})
	t.Run("no boot", func(t *testing.T) {
		g, err := New(newROM(nil), NoBoot())
		require.NoError(t, err)
		c := g.CPU
		assert.Equal(t, uint16(0x01B0), c.Read16(cpu.RegAF))
		assert.Equal(t, uint16(0x0013), c.Read16(cpu.RegBC))
		assert.Equal(t, uint16(0x00D8), c.Read16(cpu.RegDE))
		assert.Equal(t, uint16(0x014D), c.Read16(cpu.RegHL))
		assert.Equal(t, uint16(0xFFFE), c.SP)
		assert.Equal(t, uint16(0x0100), c.PC)
		assert.Equal(t, uint8(0xAB), g.Bus.Read(types.DIV))
	})
	t.Run("logs the cartridge", func(t *testing.T) {
		l, hook := test.NewNullLogger()
		_, err := New(newROM(nil), WithLogger(l))
		require.NoError(t, err)
		assert.Contains(t, hook.LastEntry().Message, `"GBCORE"`)
	})
}

func TestGameBoy_Serial(t *testing.T) {
	var out string
	program := append(sendSerial("Passed"), loop...)
	g, err := New(newROM(program), NoBoot(), SerialDebugger(&out), StopOnSerial("Passed", "Failed"))
	require.NoError(t, err)

	require.NoError(t, g.Run(context.Background()))
	assert.True(t, g.Stopped())
	assert.Equal(t, "Passed", out)
	assert.Equal(t, "Passed", g.SerialOutput.String())
	assert.False(t, g.Step(), "stays stopped")
}

func TestGameBoy_TimerInterrupt(t *testing.T) {
	program := []uint8{
		0x31, 0xFE, 0xFF, // LD SP,0xFFFE
		0x3E, 0x04, // LD A,0x04
		0xE0, 0xFF, // LDH (IE),A
		0x3E, 0x05, // LD A,0x05
		0xE0, 0x07, // LDH (TAC),A
		0xFB, // EI
	}
	program = append(program, loop...)
	handler := append(sendSerial("T"), 0xD9) // RETI

	g, err := New(newROM(program, handler...), StopOnSerial("TT"))
	require.NoError(t, err)

	require.NoError(t, g.RunCycles(10000))
	assert.True(t, g.Stopped())
	assert.Equal(t, "TT", g.SerialOutput.String())
}

func TestGameBoy_Breakpoint(t *testing.T) {
	program := []uint8{
		0x06, 3, // LD B,3
		0x0E, 5, // LD C,5
		0x16, 8, // LD D,8
		0x1E, 13, // LD E,13
		0x26, 21, // LD H,21
		0x2E, 34, // LD L,34
		0x40, // LD B,B
	}
	g, err := New(newROM(append(program, loop...)), StopOnBreakpoint())
	require.NoError(t, err)

	require.NoError(t, g.Run(context.Background()))
	assert.True(t, g.MooneyePassed())
	assert.Equal(t, uint16(0x015D), g.CPU.PC)
}

func TestGameBoy_RunCycles(t *testing.T) {
	g, err := New(newROM(loop))
	require.NoError(t, err)

	require.NoError(t, g.RunCycles(1000))
	assert.GreaterOrEqual(t, g.Bus.Cycles(), uint64(1000))
	assert.Less(t, g.Bus.Cycles(), uint64(1003))
	assert.False(t, g.Stopped())
}

func TestGameBoy_Fault(t *testing.T) {
	l, hook := test.NewNullLogger()
	g, err := New(newROM([]uint8{0xD3}), WithLogger(l))
	require.NoError(t, err)

	err = g.Run(context.Background())
	require.Error(t, err)
	assert.True(t, errors.Is(err, cpu.ErrUnmappedOpcode))

	var fault *cpu.Fault
	require.True(t, errors.As(err, &fault))
	assert.Equal(t, uint16(0x0150), fault.PC)
	assert.Equal(t, err, g.Err())
	assert.Contains(t, hook.LastEntry().Message, "unmapped opcode")
}

func TestGameBoy_Context(t *testing.T) {
	g, err := New(newROM(loop))
	require.NoError(t, err)

	ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
	defer cancel()
	assert.ErrorIs(t, g.Run(ctx), context.DeadlineExceeded)
	assert.Nil(t, g.Err())
}
