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

// Package cpu emulates the NMOS 6502 microprocessor. Like all 8-bit
// processors of the era, the 6502 executes instructions according to the
// single byte value read from an address pointed to by the program counter.
// This single byte is the opcode and is looked up in the instruction table.
// The instruction definition for that opcode is then used to move execution
// of the program forward.
//
// Execution is cycle-stepped. Decode() returns an Instruction, which is a
// sequence of cycle functions chosen by the addressing mode and effect of the
// instruction. Every call to Instruction.Step() performs exactly one cycle
// and so exactly one access of the memory bus, including the dummy reads and
// writes of the real processor.
//
// The CPU type wraps the State and the Instruction in flight and is the usual
// way of driving the emulation. The CPU type requires an implementation of the
// memory.Memory interface as the sole argument.
//
// Let's assume mem is an instance of memory.Memory loaded with 6502
// instructions.
//
//	mc := cpu.NewCPU(mem)
//	mc.LoadPCIndirect(cpubus.Reset)
//
//	numCycles := 0
//	numInstructions := 0
//
//	for {
//		mc.ExecuteInstruction(func() error {
//			numCycles++
//			return nil
//		})
//		numInstructions++
//	}
//
// The callback to ExecuteInstruction() is called at every cycle boundary and
// is the place to advance any other hardware that runs from the same clock.
// Alternatively, StepCycle() performs one cycle at a time.
//
// The LastResult field can be probed for information about the last
// instruction executed, or about the current instruction being executed if
// accessed from ExecuteInstruction()'s callback function. See the execution
// package for more information.
//
// Both State and Instruction are plain values. A copy of the CPU made with
// Snapshot() can be resumed at any cycle boundary.
package cpu
