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

import (
	"fmt"
	"strings"

	"github.com/jetsetilly/gopher6502/hardware/cpu/instructions"
)

// Interrupt is the hardware interrupt being serviced, if any.
type Interrupt int

// List of hardware interrupts. BRK is a software interrupt and is an
// instruction with a definition.
const (
	NoInterrupt Interrupt = iota
	IRQ
	NMI
)

func (i Interrupt) String() string {
	switch i {
	case IRQ:
		return "IRQ"
	case NMI:
		return "NMI"
	}
	return ""
}

// Result records the state/result of the current or last instruction
// executed by the CPU.
type Result struct {
	// the address at which the instruction began
	Address uint16

	// the definition of the instruction. nil for a hardware interrupt sequence
	// and for an illegal opcode
	Defn *instructions.Definition

	// the hardware interrupt being serviced
	Interrupt Interrupt

	// the number of bytes read by the instruction from the program
	ByteCount int

	// instruction data is the actual instruction data. so, for example, in the
	// case of a branch instruction, it is the offset value.
	InstructionData uint16

	// the actual number of cycles taken by the instruction - usually the same
	// as Defn.Cycles but in the case of PageFaults and branches, this value
	// may be different
	Cycles int

	// whether an extra cycle was required because of 8 bit adder overflow
	PageFault bool

	// whether a branch instruction branched
	BranchSuccess bool

	// whether a known buggy code path (in the emulated CPU) was triggered
	CPUBug Bug

	// whether this data has been finalised. the value of some fields will be
	// incomplete unless Final is true
	Final bool
}

// Reset nullifies all members of the Result instance.
func (r *Result) Reset() {
	*r = Result{}
}

func (r Result) String() string {
	s := strings.Builder{}

	s.WriteString(fmt.Sprintf("%04x ", r.Address))

	if r.Interrupt != NoInterrupt {
		s.WriteString(r.Interrupt.String())
	} else if r.Defn == nil {
		s.WriteString("???")
	} else {
		s.WriteString(r.Defn.Operator.String())
		if operand := r.operand(); operand != "" {
			s.WriteString(" ")
			s.WriteString(operand)
		}
	}

	if r.Final {
		s.WriteString(fmt.Sprintf(" [%d]", r.Cycles))
	} else {
		s.WriteString(fmt.Sprintf(" [%d+]", r.Cycles))
	}

	if r.PageFault {
		s.WriteString(" page-fault")
	}
	if r.CPUBug != NoBug {
		s.WriteString(fmt.Sprintf(" * %s *", r.CPUBug))
	}

	return s.String()
}

// the operand of the instruction decorated according to the addressing mode.
// bytes not yet read are shown with question marks
func (r Result) operand() string {
	var operand string

	switch r.Defn.Bytes {
	case 2:
		if r.ByteCount < 2 {
			operand = "$??"
		} else {
			operand = fmt.Sprintf("$%02x", r.InstructionData)
		}
	case 3:
		if r.ByteCount < 3 {
			operand = "$????"
		} else {
			operand = fmt.Sprintf("$%04x", r.InstructionData)
		}
	}

	switch r.Defn.AddressingMode {
	case instructions.Implied:
		// BRK has a second byte but it isn't an operand
		return ""
	case instructions.Accumulator:
		return "A"
	case instructions.Immediate:
		return "#" + operand
	case instructions.Indirect:
		return fmt.Sprintf("(%s)", operand)
	case instructions.IndexedIndirect:
		return fmt.Sprintf("(%s,X)", operand)
	case instructions.IndirectIndexed:
		return fmt.Sprintf("(%s),Y", operand)
	case instructions.AbsoluteIndexedX, instructions.ZeroPageIndexedX:
		return operand + ",X"
	case instructions.AbsoluteIndexedY, instructions.ZeroPageIndexedY:
		return operand + ",Y"
	}

	return operand
}
