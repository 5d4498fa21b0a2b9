// Package types holds the memory map and hardware register
// addresses shared by the bus and its peripherals.
package types

// HardwareAddress represents the address of a hardware
// register of the Game Boy. The hardware IO are mapped
// to memory addresses 0xFF00 - 0xFF7F & 0xFFFF.
type HardwareAddress = uint16

const (
	// SB is the address of the SB hardware register. The SB
	// hardware register holds the byte to be transferred
	// over the serial port.
	SB HardwareAddress = 0xFF01
	// SC is the address of the SC hardware register. The SC
	// hardware register is used to control the serial port.
	// Writing bit 7 requests a transfer of SB.
	SC HardwareAddress = 0xFF02
	// DIV is the address of the DIV hardware register. Internally
	// the divider is a 16-bit counter, but only the upper 8 bits
	// may be read. Any write resets the whole counter to 0.
	DIV HardwareAddress = 0xFF04
	// TIMA is the address of the TIMA hardware register. TIMA is
	// incremented on each falling edge of the divider bit selected
	// by TAC. When it overflows, it is reloaded from TMA and a
	// timer interrupt is requested.
	TIMA HardwareAddress = 0xFF05
	// TMA is the address of the TMA hardware register. The TMA
	// hardware register is loaded into TIMA when it overflows.
	TMA HardwareAddress = 0xFF06
	// TAC is the address of the TAC hardware register. The TAC
	// hardware register is used to control the timer.
	//
	//  Bit 2:   Timer Enable
	//  Bit 1-0: Clock Select (00: bit 9, 01: bit 3, 10: bit 5, 11: bit 7)
	TAC HardwareAddress = 0xFF07
	// IF is the address of the IF hardware register. The IF
	// hardware register is used to request interrupts.
	//
	//  Bit 0: V-Blank Interrupt Request (INT 40h)  (1=Request)
	//  Bit 1: LCD STAT Interrupt Request (INT 48h) (1=Request)
	//  Bit 2: Timer Interrupt Request (INT 50h)    (1=Request)
	//  Bit 3: Serial Interrupt Request (INT 58h)   (1=Request)
	//  Bit 4: Joypad Interrupt Request (INT 60h)   (1=Request)
	IF HardwareAddress = 0xFF0F
	// IE is the address of the IE hardware register. Bits 0-4
	// enable the interrupts in the same layout as IF.
	IE HardwareAddress = 0xFFFF
)

// Memory map boundaries, inclusive at the start of each region.
const (
	ROMStart      uint16 = 0x0000
	VRAMStart     uint16 = 0x8000
	ExtRAMStart   uint16 = 0xA000
	WRAMStart     uint16 = 0xC000
	EchoStart     uint16 = 0xE000
	OAMStart      uint16 = 0xFE00
	UnusableStart uint16 = 0xFEA0
	IOStart       uint16 = 0xFF00
	HRAMStart     uint16 = 0xFF80

	// EchoOffset is subtracted from an echo address to find
	// the mirrored work RAM address.
	EchoOffset uint16 = 0x2000

	// WRAMSize is the size of the work RAM (8kB).
	WRAMSize = 0x2000
	// HRAMSize is the size of the high RAM array. Only the
	// first 127 bytes are addressable, 0xFFFF being IE.
	HRAMSize = 0x80
	// AddressSpace is the size of the full 16-bit address space.
	AddressSpace = 0x10000
)

const (
	Bit0 = 1 << iota // 0b0000_0001
	Bit1             // 0b0000_0010
	Bit2             // 0b0000_0100
	Bit3             // 0b0000_1000
	Bit4             // 0b0001_0000
	Bit5             // 0b0010_0000
	Bit6             // 0b0100_0000
	Bit7             // 0b1000_0000
)
