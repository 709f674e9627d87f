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

package execution

// Bug is a known quirk of the 6502 that has been triggered by an instruction.
// The emulation reproduces the quirk. The Bug value is a note for debuggers.
type Bug string

// List of known bugs.
const (
	NoBug Bug = ""

	// JMP (xxFF) reads the high byte of the address from xx00
	JmpIndirectAddressingBug Bug = "indirect addressing bug"

	// the pointer of (zp,X) addressing wraps in page zero
	IndexedIndirectAddressingBug Bug = "indexed indirect addressing bug"

	// the pointer of (zp),Y addressing wraps in page zero
	IndirectIndexedAddressingBug Bug = "indirect indexed addressing bug"

	// zp,X and zp,Y addressing wraps in page zero
	ZeroPageIndexBug Bug = "zero page index bug"
)
