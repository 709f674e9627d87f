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

import (
	"errors"
	"fmt"
)

// ErrAddressRange is returned by the slice functions when the range of
// addresses does not fit in the address space.
var ErrAddressRange = errors.New("memory: address range exceeds address space")

// Cell is the result of peeking a single address.
type Cell struct {
	Value  uint8
	Mapped bool
}

func checkRange(address uint16, n int) error {
	if int(address)+n > 0x10000 {
		return fmt.Errorf("%w (%#04x + %d)", ErrAddressRange, address, n)
	}
	return nil
}

// PeekSlice peeks len(cells) addresses starting at address.
func PeekSlice(bus DebuggerBus, address uint16, cells []Cell) error {
	if err := checkRange(address, len(cells)); err != nil {
		return err
	}
	for i := range cells {
		cells[i].Value, cells[i].Mapped = bus.Peek(address + uint16(i))
	}
	return nil
}

// PokeSlice pokes data into consecutive addresses starting at address.
func PokeSlice(bus DebuggerBus, address uint16, data []uint8) error {
	if err := checkRange(address, len(data)); err != nil {
		return err
	}
	for i, v := range data {
		bus.Poke(address+uint16(i), v)
	}
	return nil
}

// ReadSlice fills data by reading consecutive addresses starting at address.
// Side effects of the reads happen in address order.
func ReadSlice(bus CPUBus, address uint16, data []uint8) error {
	if err := checkRange(address, len(data)); err != nil {
		return err
	}
	for i := range data {
		data[i] = bus.Read(address + uint16(i))
	}
	return nil
}

// WriteSlice writes data to consecutive addresses starting at address.
func WriteSlice(bus CPUBus, address uint16, data []uint8) error {
	if err := checkRange(address, len(data)); err != nil {
		return err
	}
	for i, v := range data {
		bus.Write(address+uint16(i), v)
	}
	return nil
}
