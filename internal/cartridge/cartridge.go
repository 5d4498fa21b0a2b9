// Package cartridge loads game ROMs. The cartridge is mapped
// flat into the address space: there is no bank switching,
// only the first 32kB of ROM and 8kB of external RAM are
// visible to the CPU.
package cartridge

import (
	"errors"
	"fmt"

	"github.com/cespare/xxhash"
	"github.com/thelolagemann/gbcore/internal/types"
	"github.com/thelolagemann/gbcore/pkg/log"
)

// ErrNoHeader is returned for ROMs too small to hold a header.
var ErrNoHeader = errors.New("cartridge: ROM is smaller than its header")

// Cartridge represents a basic game cartridge.
type Cartridge struct {
	rom    []byte
	header Header
}

// New parses the header of rom. Banked cartridge types and
// bad header checksums are logged, but not rejected.
func New(rom []byte, l log.Logger) (*Cartridge, error) {
	if len(rom) < HeaderEnd {
		return nil, fmt.Errorf("%w (%d bytes)", ErrNoHeader, len(rom))
	}

	c := &Cartridge{
		rom:    rom,
		header: parseHeader(rom[HeaderStart:HeaderEnd]),
	}

	l.Infof("cartridge: %s", c.header.String())
	if c.header.CartridgeType.Banked() {
		l.Warnf("cartridge: %s is not supported, only the first %d bytes are mapped", c.header.CartridgeType, types.VRAMStart)
	}
	if !c.header.Valid() {
		l.Warnf("cartridge: header checksum %02X does not match %02X", c.header.HeaderChecksum, c.header.computedChecksum)
	}
	return c, nil
}

func (c *Cartridge) Header() Header {
	return c.header
}

// Title returns the title from the header.
func (c *Cartridge) Title() string {
	return c.header.Title
}

// ID returns a fingerprint of the whole ROM.
func (c *Cartridge) ID() uint64 {
	return xxhash.Sum64(c.rom)
}

// Memory returns the ROM as a backing store for the bus: the
// ROM region, zero padded to the whole address space.
func (c *Cartridge) Memory() []byte {
	mem := make([]byte, types.AddressSpace)
	copy(mem[:types.VRAMStart], c.rom)
	return mem
}
