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

// DebuggerBus defines the meta-operations for all memory areas. Think of these
// functions as "debugging" functions, that is operations outside of the normal
// operation of the machine.
type DebuggerBus interface {
	// Peek returns the value at the address and whether the address is backed
	// by the implementation. The value is zero if the address is not backed.
	Peek(address uint16) (uint8, bool)

	// Poke sets the value at the address. Addresses that are not backed, or
	// that are read-only, are ignored.
	Poke(address uint16, value uint8)
}

// CPUBus defines the operations for the memory system when accessed from the
// CPU. Every bus cycle of the CPU, including the dummy accesses, results in a
// single call to one of these functions.
type CPUBus interface {
	Read(address uint16) uint8
	Write(address uint16, value uint8)
}

// Memory is implemented by all memory areas.
type Memory interface {
	DebuggerBus
	CPUBus
}

// Area is a memory implementation with a fixed size. The addresses of an Area
// start at zero.
type Area interface {
	Memory
	Len() int
}

// passive adds the CPU bus to a DebuggerBus implementation.
type passive struct {
	DebuggerBus
}

// Passive returns a Memory implementation for a memory that has no side
// effects. Read() returns the peeked value, or zero for addresses that are not
// backed, and Write() is the same as Poke().
func Passive(bus DebuggerBus) Memory {
	return passive{DebuggerBus: bus}
}

func (p passive) Read(address uint16) uint8 {
	v, _ := p.Peek(address)
	return v
}

func (p passive) Write(address uint16, value uint8) {
	p.Poke(address, value)
}
