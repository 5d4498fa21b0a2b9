package cartridge

import (
	"archive/zip"
	"compress/gzip"
	"os"
	"path/filepath"
	"testing"

	"github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// newROM returns a 32kB ROM with a valid header.
func newROM(title string, typ Type) []byte {
	rom := make([]byte, 0x8000)
	copy(rom[0x134:], title)
	rom[0x147] = byte(typ)
	rom[0x148] = 0x00
	rom[0x149] = 0x02

	var x uint8
	for _, b := range rom[0x134:0x14D] {
		x = x - b - 1
	}
	rom[0x14D] = x
	rom[0x14E], rom[0x14F] = 0x12, 0x34
	return rom
}

func TestNew(t *testing.T) {
	t.Run("header", func(t *testing.T) {
		l, hook := test.NewNullLogger()
		c, err := New(newROM("TETRIS", ROM), l)
		require.NoError(t, err)

		h := c.Header()
		assert.Equal(t, "TETRIS", c.Title())
		assert.Equal(t, ROM, h.CartridgeType)
		assert.Equal(t, uint(32*1024), h.ROMSize)
		assert.Equal(t, uint(8*1024), h.RAMSize)
		assert.Equal(t, uint16(0x1234), h.GlobalChecksum)
		assert.True(t, h.Valid())
		assert.Equal(t, "DMG", h.Hardware())

		require.Len(t, hook.Entries, 1, "only the info line")
		assert.Contains(t, hook.LastEntry().Message, "TETRIS")
	})
	t.Run("banked", func(t *testing.T) {
		l, hook := test.NewNullLogger()
		_, err := New(newROM("ZELDA", MBC1), l)
		require.NoError(t, err)
		assert.Contains(t, hook.LastEntry().Message, "MBC1 is not supported")
	})
	t.Run("bad checksum", func(t *testing.T) {
		l, hook := test.NewNullLogger()
		rom := newROM("BROKEN", ROM)
		rom[0x14D]++
		c, err := New(rom, l)
		require.NoError(t, err)
		h := c.Header()
		assert.False(t, h.Valid())
		assert.Contains(t, hook.LastEntry().Message, "checksum")
	})
	t.Run("too small", func(t *testing.T) {
		l, _ := test.NewNullLogger()
		_, err := New(make([]byte, 0x14F), l)
		assert.ErrorIs(t, err, ErrNoHeader)
	})
}

func TestCartridge_Memory(t *testing.T) {
	l, _ := test.NewNullLogger()
	rom := make([]byte, 0x10000+0x4000)
	copy(rom, newROM("BIG", MBC1))
	rom[0x7FFF] = 0xAA
	rom[0x8000] = 0xBB
	rom[0xA000] = 0xCC

	c, err := New(rom, l)
	require.NoError(t, err)

	mem := c.Memory()
	assert.Len(t, mem, 0x10000)
	assert.Equal(t, byte(0xAA), mem[0x7FFF])
	assert.Equal(t, byte(0x00), mem[0x8000], "bank 2 is not mapped")
	assert.Equal(t, byte(0x00), mem[0xA000], "external RAM starts empty")
}

func TestCartridge_ID(t *testing.T) {
	l, _ := test.NewNullLogger()
	a, _ := New(newROM("A", ROM), l)
	b, _ := New(newROM("A", ROM), l)
	c, _ := New(newROM("B", ROM), l)
	assert.Equal(t, a.ID(), b.ID())
	assert.NotEqual(t, a.ID(), c.ID())
}

func TestLoadFile(t *testing.T) {
	dir := t.TempDir()
	rom := newROM("LOAD", ROM)

	t.Run("raw", func(t *testing.T) {
		path := filepath.Join(dir, "game.gb")
		require.NoError(t, os.WriteFile(path, rom, 0o644))
		data, err := LoadFile(path)
		require.NoError(t, err)
		assert.Equal(t, rom, data)
	})
	t.Run("gzip", func(t *testing.T) {
		path := filepath.Join(dir, "game.gb.gz")
		f, err := os.Create(path)
		require.NoError(t, err)
		w := gzip.NewWriter(f)
		_, err = w.Write(rom)
		require.NoError(t, err)
		require.NoError(t, w.Close())
		require.NoError(t, f.Close())

		data, err := LoadFile(path)
		require.NoError(t, err)
		assert.Equal(t, rom, data)
	})
	t.Run("zip", func(t *testing.T) {
		path := filepath.Join(dir, "game.zip")
		f, err := os.Create(path)
		require.NoError(t, err)
		w := zip.NewWriter(f)
		fw, err := w.Create("game.gb")
		require.NoError(t, err)
		_, err = fw.Write(rom)
		require.NoError(t, err)
		require.NoError(t, w.Close())
		require.NoError(t, f.Close())

		data, err := LoadFile(path)
		require.NoError(t, err)
		assert.Equal(t, rom, data)
	})
	t.Run("empty zip", func(t *testing.T) {
		path := filepath.Join(dir, "empty.zip")
		f, err := os.Create(path)
		require.NoError(t, err)
		require.NoError(t, zip.NewWriter(f).Close())
		require.NoError(t, f.Close())

		_, err = LoadFile(path)
		assert.ErrorIs(t, err, ErrEmptyArchive)
	})
	t.Run("corrupt 7z", func(t *testing.T) {
		path := filepath.Join(dir, "game.7z")
		require.NoError(t, os.WriteFile(path, []byte("not an archive"), 0o644))
		_, err := LoadFile(path)
		assert.Error(t, err)
	})
	t.Run("missing", func(t *testing.T) {
		_, err := LoadFile(filepath.Join(dir, "missing.gb"))
		assert.ErrorIs(t, err, os.ErrNotExist)
	})
}
