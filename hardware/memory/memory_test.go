// This file is part of Gopher6502.
//
// Gopher6502 is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// Gopher6502 is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with Gopher6502.  If not, see <https://www.gnu.org/licenses/>.

package memory_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jetsetilly/gopher6502/hardware/memory"
)

func TestRAM(t *testing.T) {
	assert := assert.New(t)

	ram := memory.NewRAM(0x100)
	assert.Equal(0x100, ram.Len())

	ram.Write(0x10, 0xab)
	assert.Equal(uint8(0xab), ram.Read(0x10))

	v, ok := ram.Peek(0x10)
	assert.True(ok)
	assert.Equal(uint8(0xab), v)

	ram.Poke(0xff, 0x01)
	assert.Equal(uint8(0x01), ram.Read(0xff))

	// beyond the end of the RAM
	v, ok = ram.Peek(0x100)
	assert.False(ok)
	assert.Equal(uint8(0), v)
	ram.Write(0x100, 0x55)
	assert.Equal(uint8(0), ram.Read(0x100))
}

func TestRAMFromSlice(t *testing.T) {
	assert := assert.New(t)

	buf := make([]uint8, 4)
	ram := memory.RAMFromSlice(buf)
	ram.Write(2, 0x42)
	assert.Equal(uint8(0x42), buf[2])

	buf[3] = 0x99
	assert.Equal(uint8(0x99), ram.Read(3))

	_, ok := ram.Peek(0xffff)
	assert.False(ok)
}

func TestFullRAM(t *testing.T) {
	ram := memory.NewRAM(0x20000)
	require.Equal(t, 0x10000, ram.Len())

	ram.Write(0xffff, 0x12)
	v, ok := ram.Peek(0xffff)
	assert.True(t, ok)
	assert.Equal(t, uint8(0x12), v)
}

func TestROM(t *testing.T) {
	assert := assert.New(t)

	image := []uint8{0x01, 0x02, 0x03}
	rom := memory.NewROM(image)

	// the ROM is a copy of the image
	image[0] = 0xff
	assert.Equal(uint8(0x01), rom.Read(0))

	rom.Write(1, 0xaa)
	assert.Equal(uint8(0x02), rom.Read(1))

	rom.Poke(2, 0xaa)
	v, ok := rom.Peek(2)
	assert.True(ok)
	assert.Equal(uint8(0x03), v)

	require.NoError(t, memory.WriteSlice(rom, 0, []uint8{9, 9, 9}))
	require.NoError(t, memory.PokeSlice(rom, 0, []uint8{9, 9, 9}))
	data := make([]uint8, 3)
	require.NoError(t, memory.ReadSlice(rom, 0, data))
	assert.Equal([]uint8{0x01, 0x02, 0x03}, data)

	_, ok = rom.Peek(3)
	assert.False(ok)
	assert.Equal(uint8(0), rom.Read(3))
}

// a store that only implements the debugger bus
type sparse map[uint16]uint8

func (s sparse) Peek(address uint16) (uint8, bool) {
	v, ok := s[address]
	return v, ok
}

func (s sparse) Poke(address uint16, value uint8) {
	s[address] = value
}

func TestPassive(t *testing.T) {
	assert := assert.New(t)

	s := sparse{0x1234: 0x56}
	mem := memory.Passive(s)

	assert.Equal(uint8(0x56), mem.Read(0x1234))

	// absent addresses read as zero
	assert.Equal(uint8(0), mem.Read(0x0000))

	mem.Write(0x0000, 0x77)
	assert.Equal(uint8(0x77), s[0x0000])
}

func TestSlices(t *testing.T) {
	assert := assert.New(t)

	ram := memory.NewRAM(0x10000)

	require.NoError(t, memory.WriteSlice(ram, 0x1000, []uint8{1, 2, 3, 4}))
	data := make([]uint8, 4)
	require.NoError(t, memory.ReadSlice(ram, 0x1000, data))
	assert.Equal([]uint8{1, 2, 3, 4}, data)

	require.NoError(t, memory.PokeSlice(ram, 0x2000, []uint8{5, 6}))
	cells := make([]memory.Cell, 2)
	require.NoError(t, memory.PeekSlice(ram, 0x2000, cells))
	assert.Equal([]memory.Cell{{Value: 5, Mapped: true}, {Value: 6, Mapped: true}}, cells)

	// the final byte of the address space is reachable
	require.NoError(t, memory.WriteSlice(ram, 0xfffe, []uint8{7, 8}))
	assert.Equal(uint8(8), ram.Read(0xffff))

	// zero length slices are fine anywhere
	require.NoError(t, memory.WriteSlice(ram, 0xffff, nil))
}

func TestSliceRange(t *testing.T) {
	ram := memory.NewRAM(0x10000)

	err := memory.WriteSlice(ram, 0xffff, []uint8{1, 2})
	assert.ErrorIs(t, err, memory.ErrAddressRange)

	// no element is written when the range is rejected
	assert.Equal(t, uint8(0), ram.Read(0xffff))

	err = memory.ReadSlice(ram, 0xfff0, make([]uint8, 0x11))
	assert.ErrorIs(t, err, memory.ErrAddressRange)

	err = memory.PokeSlice(ram, 0x8000, make([]uint8, 0x8001))
	assert.ErrorIs(t, err, memory.ErrAddressRange)

	err = memory.PeekSlice(ram, 0x0001, make([]memory.Cell, 0x10000))
	assert.ErrorIs(t, err, memory.ErrAddressRange)
}

func TestPeekSliceMapped(t *testing.T) {
	ram := memory.NewRAM(2)
	cells := make([]memory.Cell, 4)
	require.NoError(t, memory.PeekSlice(ram, 0, cells))
	assert.True(t, cells[1].Mapped)
	assert.False(t, cells[2].Mapped)
	assert.False(t, cells[3].Mapped)
}
