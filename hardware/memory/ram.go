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

package memory

import "fmt"

// RAM is read/write memory backed by a byte slice. Addresses beyond the end of
// the slice are not backed.
type RAM struct {
	data []uint8
}

// NewRAM is the preferred method of initialisation for the RAM type. The
// size will be capped at 64k.
func NewRAM(size int) *RAM {
	if size > 0x10000 {
		size = 0x10000
	}
	return &RAM{data: make([]uint8, size)}
}

// RAMFromSlice uses the slice as the backing store. Changes made through the RAM
// are visible in the slice and vice versa.
func RAMFromSlice(data []uint8) *RAM {
	return &RAM{data: data}
}

func (ram *RAM) String() string {
	return fmt.Sprintf("RAM (%d bytes)", len(ram.data))
}

// Bytes returns the backing store.
func (ram *RAM) Bytes() []uint8 {
	return ram.data
}

// Len implements the Area interface.
func (ram *RAM) Len() int {
	return len(ram.data)
}

// Peek implements the DebuggerBus interface.
func (ram *RAM) Peek(address uint16) (uint8, bool) {
	if int(address) >= len(ram.data) {
		return 0, false
	}
	return ram.data[address], true
}

// Poke implements the DebuggerBus interface.
func (ram *RAM) Poke(address uint16, value uint8) {
	if int(address) < len(ram.data) {
		ram.data[address] = value
	}
}

// Read implements the CPUBus interface.
func (ram *RAM) Read(address uint16) uint8 {
	v, _ := ram.Peek(address)
	return v
}

// Write implements the CPUBus interface.
func (ram *RAM) Write(address uint16, value uint8) {
	ram.Poke(address, value)
}
