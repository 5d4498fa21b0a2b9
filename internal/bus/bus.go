// Package bus provides the memory map of the Game Boy. The Bus
// dispatches every read and write to the backing store (ROM and
// external RAM), the work and high RAM, or the I/O register
// handlers, and drives the timer for every machine cycle that
// a clocked access consumes.
package bus

import (
	"github.com/cespare/xxhash"
	"github.com/thelolagemann/gbcore/internal/ram"
	"github.com/thelolagemann/gbcore/internal/types"
	"github.com/thelolagemann/gbcore/pkg/log"
)

// Filler is returned when reading from video memory, OAM and the
// unusable region, which belong to hardware outside the core.
const Filler uint8 = 0xFF

// IORegisters is a peripheral exposing memory mapped registers.
type IORegisters interface {
	Read(addr uint16) uint8
	Write(addr uint16, value uint8)
}

// Timer is the view of the timer the bus needs: its registers,
// and a way to advance it by one machine cycle.
type Timer interface {
	IORegisters
	TickM()
}

// Bus is the memory bus of the Game Boy.
type Bus struct {
	// 0x0000 - 0x7FFF - ROM (32kB)
	// 0xA000 - 0xBFFF - External RAM (8kB)
	mem []uint8

	// 0xC000 - 0xDFFF - Work RAM (8kB)
	// 0xE000 - 0xFDFF - Echo RAM (7.5kB)
	wRAM *ram.RAM

	// 0xFF80 - 0xFFFE - High RAM (127B)
	hRAM *ram.RAM

	// 0xFF04 - 0xFF07
	timer Timer
	// 0xFF0F & 0xFFFF
	interrupts IORegisters
	// 0xFF01 - 0xFF02
	serial IORegisters

	cycles uint64

	log log.Logger
}

// Opt configures a Bus.
type Opt func(b *Bus)

// WithLogger sets the logger of the bus.
func WithLogger(l log.Logger) Opt {
	return func(b *Bus) {
		b.log = l
	}
}

// New returns a Bus backed by a copy of mem, zero padded to the
// full address space. Bytes beyond the address space are dropped,
// as there is no bank switching.
func New(mem []uint8, timer Timer, interrupts, serial IORegisters, opts ...Opt) *Bus {
	b := &Bus{
		mem:        make([]uint8, types.AddressSpace),
		wRAM:       ram.NewRAM(types.WRAMSize),
		hRAM:       ram.NewRAM(types.HRAMSize),
		timer:      timer,
		interrupts: interrupts,
		serial:     serial,
		log:        log.NewNullLogger(),
	}
	for _, opt := range opts {
		opt(b)
	}

	if len(mem) > types.AddressSpace {
		b.log.Warnf("bus: backing store is %d bytes, only the first %d are mapped", len(mem), types.AddressSpace)
	}
	copy(b.mem, mem)

	return b
}

// Read returns the value at the given address, without consuming
// a machine cycle.
func (b *Bus) Read(addr uint16) uint8 {
	switch {
	case addr < types.VRAMStart:
		return b.mem[addr]
	case addr < types.ExtRAMStart:
		return Filler
	case addr < types.WRAMStart:
		return b.mem[addr]
	case addr < types.EchoStart:
		return b.wRAM.Read(addr - types.WRAMStart)
	case addr < types.OAMStart:
		return b.wRAM.Read(addr - types.EchoOffset - types.WRAMStart)
	case addr < types.IOStart:
		return Filler
	case addr < types.HRAMStart:
		return b.readIO(addr)
	case addr < types.IE:
		return b.hRAM.Read(addr - types.HRAMStart)
	default:
		return b.interrupts.Read(addr)
	}
}

// Write writes the value to the given address, without consuming
// a machine cycle.
func (b *Bus) Write(addr uint16, value uint8) {
	switch {
	case addr < types.VRAMStart:
		b.mem[addr] = value
	case addr < types.ExtRAMStart:
		// video memory, dropped
	case addr < types.WRAMStart:
		b.mem[addr] = value
	case addr < types.EchoStart:
		b.wRAM.Write(addr-types.WRAMStart, value)
	case addr < types.OAMStart:
		b.wRAM.Write(addr-types.EchoOffset-types.WRAMStart, value)
	case addr < types.IOStart:
		// OAM and unusable, dropped
	case addr < types.HRAMStart:
		b.writeIO(addr, value)
	case addr < types.IE:
		b.hRAM.Write(addr-types.HRAMStart, value)
	default:
		b.interrupts.Write(addr, value)
	}
}

func (b *Bus) readIO(addr uint16) uint8 {
	switch addr {
	case types.SB, types.SC:
		return b.serial.Read(addr)
	case types.DIV, types.TIMA, types.TMA, types.TAC:
		return b.timer.Read(addr)
	case types.IF:
		return b.interrupts.Read(addr)
	}
	return 0
}

func (b *Bus) writeIO(addr uint16, value uint8) {
	switch addr {
	case types.SB, types.SC:
		b.serial.Write(addr, value)
	case types.DIV, types.TIMA, types.TMA, types.TAC:
		b.timer.Write(addr, value)
	case types.IF:
		b.interrupts.Write(addr, value)
	}
}

// Tick consumes one machine cycle without accessing memory.
func (b *Bus) Tick() {
	b.timer.TickM()
	b.cycles++
}

// ClockedRead consumes a machine cycle, then reads the value at
// the given address.
func (b *Bus) ClockedRead(addr uint16) uint8 {
	b.Tick()
	return b.Read(addr)
}

// ClockedWrite consumes a machine cycle, then writes the value to
// the given address.
func (b *Bus) ClockedWrite(addr uint16, value uint8) {
	b.Tick()
	b.Write(addr, value)
}

// ClockedRead16 reads a little endian word in two machine cycles.
func (b *Bus) ClockedRead16(addr uint16) uint16 {
	lo := b.ClockedRead(addr)
	hi := b.ClockedRead(addr + 1)
	return uint16(hi)<<8 | uint16(lo)
}

// ClockedWrite16 writes a little endian word in two machine cycles.
func (b *Bus) ClockedWrite16(addr uint16, value uint16) {
	b.ClockedWrite(addr, uint8(value))
	b.ClockedWrite(addr+1, uint8(value>>8))
}

// Cycles returns the number of machine cycles consumed so far.
func (b *Bus) Cycles() uint64 {
	return b.cycles
}

// Checksum returns a digest of the backing store, work RAM and
// high RAM, used to compare runs.
func (b *Bus) Checksum() uint64 {
	d := xxhash.New()
	_, _ = d.Write(b.mem)
	_, _ = d.Write(b.wRAM.Bytes())
	_, _ = d.Write(b.hRAM.Bytes())
	return d.Sum64()
}
