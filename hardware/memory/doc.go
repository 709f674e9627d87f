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

// Package memory defines the addressable memory that the CPU reads and writes.
//
// There are two buses. The CPUBus is the bus as seen by the CPU during
// execution: Read() and Write() may have side effects in a memory-mapped
// device and a Read() always returns a value, even for an address that is not
// backed by anything. The DebuggerBus is the view of memory from outside the
// emulation: Peek() reports whether the address is backed and Poke() alters
// memory without triggering side effects.
//
// The Memory interface combines both buses. RAM, ROM and Map all implement
// Memory. A store that only has a sensible implementation of the debugger bus
// can be turned into a Memory with Passive().
//
// The slice functions apply the scalar operations over a contiguous range of
// addresses. They fail with ErrAddressRange if the range does not fit in the
// 16bit address space. No element is touched in that case.
//
// A Map composes memory areas into a single address space. For example:
//
//	m := memory.NewMap()
//	m.Attach("RAM", 0x0000, memory.NewRAM(0x8000))
//	m.Attach("ROM", 0xc000, memory.NewROM(image))
//
// Addresses in the Map that are not attached to any area behave as an open
// bus when read by the CPU: the value returned is the last value seen on the
// data bus.
package memory
