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

import (
	"fmt"

	"github.com/jetsetilly/gopher6502/hardware/cpu/execution"
	"github.com/jetsetilly/gopher6502/hardware/cpu/instructions"
	"github.com/jetsetilly/gopher6502/hardware/memory"
	"github.com/jetsetilly/gopher6502/hardware/memory/cpubus"
)

// Instruction is an instruction in flight. It is created by Decode() once the
// opcode has been fetched (cycle 1) and is advanced one cycle at a time by
// Step().
//
// Instruction is a plain value. A copy of an Instruction, along with a copy of
// the State, can be used to resume execution from the same cycle.
type Instruction struct {
	// the definition of the instruction. nil if the instruction is an IRQ or
	// NMI sequence
	Defn *instructions.Definition

	// the hardware interrupt being serviced
	Interrupt execution.Interrupt

	// the number of the next cycle to be performed. cycle 1 is the opcode
	// fetch and so a new instruction begins at cycle 2
	Cycle int

	// the number of program bytes read so far, including the opcode
	ByteCount int

	// the operand as read from the program so far
	Operand uint16

	// whether an extra cycle was required because the indexed address
	// crossed a page. only set for page sensitive instructions
	PageFault bool

	// whether a branch instruction branched
	BranchSuccess bool

	// a known quirk of the 6502 triggered by the instruction
	Bug execution.Bug

	seq  sequence
	next int
	done bool

	// effective address and the address before the high byte was fixed after
	// indexing. crossed is true if the two differ
	address uint16
	unfixed uint16
	crossed bool

	// zero page pointer for the indirect addressing modes
	pointer uint8

	// data value for read-modify-write instructions and branch offsets
	value uint8

	// vector used by BRK, IRQ and NMI
	vector uint16
}

// Decode returns the Instruction for the opcode. The opcode is assumed to have
// been fetched from the address pointed to by the PC and for the PC to have
// been incremented.
//
// An error wrapping instructions.ErrIllegalOpcode is returned for opcodes that
// are not part of the documented instruction set.
func Decode(opcode uint8) (Instruction, error) {
	defn, err := instructions.Lookup(opcode)
	if err != nil {
		return Instruction{}, err
	}

	seq, err := sequenceFor(defn)
	if err != nil {
		return Instruction{}, err
	}

	return Instruction{
		Defn:      defn,
		Cycle:     2,
		ByteCount: 1,
		seq:       seq,
		vector:    cpubus.BRK,
	}, nil
}

// NewInterrupt returns the Instruction that services a hardware interrupt. The
// first cycle of the sequence, which reads the next opcode and discards it, is
// assumed to have been performed without incrementing the PC.
func NewInterrupt(kind execution.Interrupt) Instruction {
	vector := cpubus.IRQ
	if kind == execution.NMI {
		vector = cpubus.NMI
	}

	return Instruction{
		Interrupt: kind,
		Cycle:     2,
		seq:       interruptSequence,
		vector:    vector,
	}
}

func (ins Instruction) String() string {
	if ins.Interrupt != execution.NoInterrupt {
		return fmt.Sprintf("%s (cycle %d)", ins.Interrupt, ins.Cycle)
	}
	if ins.Defn == nil {
		return "undecoded instruction"
	}
	return fmt.Sprintf("%s (cycle %d)", ins.Defn.Operator, ins.Cycle)
}

// Done returns true if the instruction has completed.
func (ins Instruction) Done() bool {
	return ins.done
}

// Cycles returns the number of cycles performed so far, including the opcode
// fetch.
func (ins Instruction) Cycles() int {
	return ins.Cycle - 1
}

// Step performs one cycle of the instruction. Every cycle makes exactly one
// access to memory. Returns true if the instruction has completed.
func (ins *Instruction) Step(st *State, mem memory.CPUBus) (bool, error) {
	if ins.done {
		return true, ErrInstructionComplete
	}
	if ins.next >= len(ins.seq) {
		return false, fmt.Errorf("cpu: instruction has not been decoded")
	}

	c := ins.seq[ins.next]
	ins.next++

	early := c(ins, st, mem)
	ins.Cycle++

	ins.done = early || ins.next >= len(ins.seq)

	return ins.done, nil
}
