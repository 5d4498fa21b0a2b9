package bus

import (
	"testing"

	"github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/thelolagemann/gbcore/internal/interrupts"
	"github.com/thelolagemann/gbcore/internal/serial"
	"github.com/thelolagemann/gbcore/internal/timer"
	"github.com/thelolagemann/gbcore/internal/trace"
	"github.com/thelolagemann/gbcore/internal/types"
)

type fixture struct {
	bus    *Bus
	timer  *timer.Controller
	irq    *interrupts.Service
	serial *serial.Controller
	out    *trace.SerialBuffer
}

func newFixture(rom []uint8, opts ...Opt) *fixture {
	f := &fixture{irq: interrupts.NewService(), out: &trace.SerialBuffer{}}
	f.timer = timer.NewController(f.irq)
	f.serial = serial.NewController(f.out)
	f.bus = New(rom, f.timer, f.irq, f.serial, opts...)
	return f
}

func TestBus_BackingStore(t *testing.T) {
	rom := make([]uint8, 0x8000)
	rom[0x0100] = 0x12
	rom[0x7FFF] = 0x34
	b := newFixture(rom).bus

	assert.Equal(t, uint8(0x12), b.Read(0x0100))
	assert.Equal(t, uint8(0x34), b.Read(0x7FFF))
	assert.Equal(t, uint8(0x00), b.Read(0xA000), "external RAM is zero padded")

	b.Write(0x2000, 0x01) // no bank switching, the byte is simply stored
	assert.Equal(t, uint8(0x01), b.Read(0x2000))

	b.Write(0xA000, 0x56)
	b.Write(0xBFFF, 0x78)
	assert.Equal(t, uint8(0x56), b.Read(0xA000))
	assert.Equal(t, uint8(0x78), b.Read(0xBFFF))
}

func TestBus_Oversized(t *testing.T) {
	l, hook := test.NewNullLogger()
	rom := make([]uint8, types.AddressSpace+0x4000)
	rom[0x0150] = 0xAA
	b := newFixture(rom, WithLogger(l)).bus

	assert.Equal(t, uint8(0xAA), b.Read(0x0150))
	require.NotNil(t, hook.LastEntry())
	assert.Contains(t, hook.LastEntry().Message, "backing store")
}

func TestBus_WorkRAM(t *testing.T) {
	b := newFixture(nil).bus

	b.Write(0xC000, 0x11)
	b.Write(0xDFFF, 0x22)
	assert.Equal(t, uint8(0x11), b.Read(0xC000))
	assert.Equal(t, uint8(0x22), b.Read(0xDFFF))

	t.Run("echo", func(t *testing.T) {
		assert.Equal(t, uint8(0x11), b.Read(0xE000))
		b.Write(0xFDFF, 0x33)
		assert.Equal(t, uint8(0x33), b.Read(0xDDFF))
		b.Write(0xE123, 0x44)
		assert.Equal(t, uint8(0x44), b.Read(0xC123))
	})
}

func TestBus_Filler(t *testing.T) {
	b := newFixture(nil).bus

	for _, addr := range []uint16{0x8000, 0x9FFF, 0xFE00, 0xFE9F, 0xFEA0, 0xFEFF} {
		b.Write(addr, 0x00)
		assert.Equal(t, Filler, b.Read(addr), "address %04X", addr)
	}
}

func TestBus_HighRAM(t *testing.T) {
	b := newFixture(nil).bus

	b.Write(0xFF80, 0x01)
	b.Write(0xFFFE, 0x02)
	assert.Equal(t, uint8(0x01), b.Read(0xFF80))
	assert.Equal(t, uint8(0x02), b.Read(0xFFFE))
}

func TestBus_IO(t *testing.T) {
	t.Run("unimplemented registers", func(t *testing.T) {
		b := newFixture(nil).bus
		for _, addr := range []uint16{0xFF00, 0xFF03, 0xFF10, 0xFF40, 0xFF7F} {
			b.Write(addr, 0xFF)
			assert.Equal(t, uint8(0), b.Read(addr), "address %04X", addr)
		}
	})
	t.Run("interrupts", func(t *testing.T) {
		f := newFixture(nil)
		f.bus.Write(types.IE, 0x1F)
		f.bus.Write(types.IF, 0x05)
		assert.Equal(t, uint8(0x1F), f.irq.Enable)
		assert.Equal(t, uint8(0x05), f.irq.Flag)
		assert.Equal(t, uint8(0x1F), f.bus.Read(types.IE))
		assert.Equal(t, uint8(0xE5), f.bus.Read(types.IF))
	})
	t.Run("timer", func(t *testing.T) {
		f := newFixture(nil)
		f.bus.Write(types.TAC, 0xFF)
		f.bus.Write(types.TMA, 0x42)
		assert.Equal(t, uint8(0x07), f.bus.Read(types.TAC))
		assert.Equal(t, uint8(0x42), f.timer.Read(types.TMA))

		f.timer.SetDiv(0x1234)
		assert.Equal(t, uint8(0x12), f.bus.Read(types.DIV))
		f.bus.Write(types.DIV, 0x55)
		assert.Equal(t, uint16(0), f.timer.Div())
	})
	t.Run("serial", func(t *testing.T) {
		f := newFixture(nil)
		f.bus.Write(types.SB, 'P')
		f.bus.Write(types.SC, 0x81)
		assert.Equal(t, uint8('P'), f.bus.Read(types.SB))
		assert.Equal(t, "P", f.out.String())
	})
}

func TestBus_Clocked(t *testing.T) {
	t.Run("read", func(t *testing.T) {
		f := newFixture([]uint8{0xAB})
		assert.Equal(t, uint8(0xAB), f.bus.ClockedRead(0x0000))
		assert.Equal(t, uint64(1), f.bus.Cycles())
		assert.Equal(t, uint16(timer.TicksPerMCycle), f.timer.Div())
	})
	t.Run("write", func(t *testing.T) {
		f := newFixture(nil)
		f.bus.ClockedWrite(0xC000, 0xCD)
		assert.Equal(t, uint8(0xCD), f.bus.Read(0xC000))
		assert.Equal(t, uint64(1), f.bus.Cycles())
	})
	t.Run("16-bit", func(t *testing.T) {
		f := newFixture(nil)
		f.bus.ClockedWrite16(0xC010, 0xBEEF)
		assert.Equal(t, uint8(0xEF), f.bus.Read(0xC010))
		assert.Equal(t, uint8(0xBE), f.bus.Read(0xC011))
		assert.Equal(t, uint16(0xBEEF), f.bus.ClockedRead16(0xC010))
		assert.Equal(t, uint64(4), f.bus.Cycles())
		assert.Equal(t, uint16(16), f.timer.Div())
	})
	t.Run("timer interrupt is raised by the access", func(t *testing.T) {
		f := newFixture(nil)
		f.timer.Write(types.TAC, 0b101)
		f.timer.Write(types.TIMA, 0xFF)
		for i := 0; i < 4; i++ {
			f.bus.Tick()
		}
		assert.Equal(t, uint8(interrupts.TimerFlag), f.irq.Flag)
	})
}

func TestBus_Checksum(t *testing.T) {
	a := newFixture([]uint8{1, 2, 3}).bus
	b := newFixture([]uint8{1, 2, 3}).bus
	assert.Equal(t, a.Checksum(), b.Checksum())

	b.Write(0xC000, 1)
	assert.NotEqual(t, a.Checksum(), b.Checksum())
	a.Write(0xE000, 1) // echo of 0xC000
	assert.Equal(t, a.Checksum(), b.Checksum())
}
