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

// Package cpubus contains the addresses that have a fixed meaning to the CPU.
package cpubus

// The interrupt vectors. Each vector is the address of the low byte of a
// 16bit little-endian address.
const (
	NMI   = uint16(0xfffa)
	Reset = uint16(0xfffc)
	IRQ   = uint16(0xfffe)

	// BRK shares the vector with IRQ
	BRK = IRQ
)

// StackPage is the origin of the hardware stack. The stack pointer is an
// offset into this page.
const StackPage = uint16(0x0100)

// Memtop is the highest address on the 16bit address bus.
const Memtop = uint16(0xffff)
