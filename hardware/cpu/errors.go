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

package cpu

import "errors"

// sentinel errors returned by the CPU. an illegal opcode is reported with an
// error wrapping instructions.ErrIllegalOpcode
var (
	// an operation that is only valid between instructions has been attempted
	// while an instruction is in progress
	ErrMidInstruction = errors.New("cpu: invalid mid-instruction")

	// Step() has been called on an instruction that has already completed
	ErrInstructionComplete = errors.New("cpu: instruction has already completed")
)
