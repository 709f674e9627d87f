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

// Package instructions defines the documented instruction set of the 6502.
// Each opcode is described by a Definition: the operator, the addressing mode,
// the number of bytes and the base number of cycles.
//
// The base number of cycles does not include the additional cycle incurred by
// a page crossing (only for definitions that are PageSensitive) or the
// additional cycles of a successful branch.
//
// Opcodes that are not in the table are illegal. Lookup() returns an error for
// those opcodes which can be tested with errors.Is(err, ErrIllegalOpcode).
package instructions
