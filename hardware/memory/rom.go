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

// ROM is read-only memory. Writes and pokes are ignored.
type ROM struct {
	data []uint8
}

// NewROM creates a new ROM from a copy of the image. An image larger than 64k
// is truncated.
func NewROM(image []uint8) *ROM {
	if len(image) > 0x10000 {
		image = image[:0x10000]
	}
	rom := &ROM{data: make([]uint8, len(image))}
	copy(rom.data, image)
	return rom
}

func (rom *ROM) String() string {
	return fmt.Sprintf("ROM (%d bytes)", len(rom.data))
}

// Len implements the Area interface.
func (rom *ROM) Len() int {
	return len(rom.data)
}

// Peek implements the DebuggerBus interface.
func (rom *ROM) Peek(address uint16) (uint8, bool) {
	if int(address) >= len(rom.data) {
		return 0, false
	}
	return rom.data[address], true
}

// Poke implements the DebuggerBus interface. It does nothing.
func (rom *ROM) Poke(_ uint16, _ uint8) {
}

// Read implements the CPUBus interface.
func (rom *ROM) Read(address uint16) uint8 {
	v, _ := rom.Peek(address)
	return v
}

// Write implements the CPUBus interface. It does nothing.
func (rom *ROM) Write(_ uint16, _ uint8) {
}
