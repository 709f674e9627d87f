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
)

// cycle performs a single cycle of an instruction. each cycle makes exactly
// one call to either mem.Read() or mem.Write(). returns true if the
// instruction has completed before the end of its sequence: a branch that is
// not taken or an indexed read that does not cross a page
type cycle func(ins *Instruction, st *State, mem memory.CPUBus) bool

// sequence is the list of cycles for an instruction, starting with cycle 2
type sequence []cycle

// the cycle sequences are taken from "6502 timing of instructions" in the
// 64doc document by John West and Marko Mäkelä

type sequenceKey struct {
	mode   instructions.AddressingMode
	effect instructions.EffectCategory
}

var sequences = map[sequenceKey]sequence{
	{instructions.Implied, instructions.Read}: {impliedOp},
	{instructions.Accumulator, instructions.RMW}: {accumulatorOp},
	{instructions.Immediate, instructions.Read}: {immediateOp},
	{instructions.Relative, instructions.Flow}: {branchFetch, branchTake, branchFix},

	{instructions.ZeroPage, instructions.Read}:  {fetchLo, readOperate},
	{instructions.ZeroPage, instructions.Write}: {fetchLo, writeStore},
	{instructions.ZeroPage, instructions.RMW}:   {fetchLo, rmwRead, rmwDummyWrite, rmwWrite},

	{instructions.ZeroPageIndexedX, instructions.Read}:  {fetchLo, zeroPageIndexX, readOperate},
	{instructions.ZeroPageIndexedX, instructions.Write}: {fetchLo, zeroPageIndexX, writeStore},
	{instructions.ZeroPageIndexedX, instructions.RMW}:   {fetchLo, zeroPageIndexX, rmwRead, rmwDummyWrite, rmwWrite},
	{instructions.ZeroPageIndexedY, instructions.Read}:  {fetchLo, zeroPageIndexY, readOperate},
	{instructions.ZeroPageIndexedY, instructions.Write}: {fetchLo, zeroPageIndexY, writeStore},

	{instructions.Absolute, instructions.Read}:  {fetchLo, fetchHi, readOperate},
	{instructions.Absolute, instructions.Write}: {fetchLo, fetchHi, writeStore},
	{instructions.Absolute, instructions.RMW}:   {fetchLo, fetchHi, rmwRead, rmwDummyWrite, rmwWrite},

	{instructions.AbsoluteIndexedX, instructions.Read}:  {fetchLo, fetchHiIndexX, readUnfixed, readOperate},
	{instructions.AbsoluteIndexedX, instructions.Write}: {fetchLo, fetchHiIndexX, dummyReadUnfixed, writeStore},
	{instructions.AbsoluteIndexedX, instructions.RMW}:   {fetchLo, fetchHiIndexX, dummyReadUnfixed, rmwRead, rmwDummyWrite, rmwWrite},
	{instructions.AbsoluteIndexedY, instructions.Read}:  {fetchLo, fetchHiIndexY, readUnfixed, readOperate},
	{instructions.AbsoluteIndexedY, instructions.Write}: {fetchLo, fetchHiIndexY, dummyReadUnfixed, writeStore},

	{instructions.IndexedIndirect, instructions.Read}:  {fetchPointer, dummyReadPointerIndexX, fetchLoPointer, fetchHiPointer, readOperate},
	{instructions.IndexedIndirect, instructions.Write}: {fetchPointer, dummyReadPointerIndexX, fetchLoPointer, fetchHiPointer, writeStore},

	{instructions.IndirectIndexed, instructions.Read}:  {fetchPointer, fetchLoPointer, fetchHiPointerIndexY, readUnfixed, readOperate},
	{instructions.IndirectIndexed, instructions.Write}: {fetchPointer, fetchLoPointer, fetchHiPointerIndexY, dummyReadUnfixed, writeStore},
}

// instructions with a sequence of their own
var (
	jmpAbsoluteSequence = sequence{fetchLo, jmpAbsolute}
	jmpIndirectSequence = sequence{fetchLo, fetchHi, jmpIndirectLo, jmpIndirectHi}
	jsrSequence         = sequence{fetchLo, dummyReadStack, pushPCH, pushPCL, jsrHi}
	rtsSequence         = sequence{dummyReadPC, dummyReadStack, pullPCL, pullPCH, rtsIncrement}
	rtiSequence         = sequence{dummyReadPC, dummyReadStack, pullStatus, pullPCL, pullPCH}
	phaSequence         = sequence{dummyReadPC, pushA}
	phpSequence         = sequence{dummyReadPC, pushStatusBRK}
	plaSequence         = sequence{dummyReadPC, dummyReadStack, pullA}
	plpSequence         = sequence{dummyReadPC, dummyReadStack, pullStatus}
	brkSequence         = sequence{brkPadding, pushPCH, pushPCL, pushStatusBRK, vectorLo, vectorHi}
	interruptSequence   = sequence{dummyReadPC, pushPCH, pushPCL, pushStatusInterrupt, vectorLo, vectorHi}
)

func sequenceFor(defn *instructions.Definition) (sequence, error) {
	switch defn.Operator {
	case instructions.Brk:
		return brkSequence, nil
	case instructions.Jmp:
		if defn.AddressingMode == instructions.Indirect {
			return jmpIndirectSequence, nil
		}
		return jmpAbsoluteSequence, nil
	case instructions.Jsr:
		return jsrSequence, nil
	case instructions.Rts:
		return rtsSequence, nil
	case instructions.Rti:
		return rtiSequence, nil
	case instructions.Pha:
		return phaSequence, nil
	case instructions.Php:
		return phpSequence, nil
	case instructions.Pla:
		return plaSequence, nil
	case instructions.Plp:
		return plpSequence, nil
	}

	seq, ok := sequences[sequenceKey{mode: defn.AddressingMode, effect: defn.Effect}]
	if !ok {
		return nil, fmt.Errorf("cpu: no cycle sequence for %s", defn)
	}
	return seq, nil
}

// index the address and note the address before the high byte is fixed.
func (ins *Instruction) index(base uint16, idx uint8) {
	ins.address = base + uint16(idx)
	ins.unfixed = base&0xff00 | ins.address&0x00ff
	ins.crossed = ins.unfixed != ins.address
}

// fetchPC reads the next program byte and increments the PC.
func (ins *Instruction) fetchPC(st *State, mem memory.CPUBus) uint8 {
	v := mem.Read(st.PC.Address())
	st.PC.Add(1)
	ins.ByteCount++
	return v
}

// single cycle instructions

func impliedOp(ins *Instruction, st *State, mem memory.CPUBus) bool {
	mem.Read(st.PC.Address())
	implied(ins.Defn.Operator, st)
	return false
}

func accumulatorOp(ins *Instruction, st *State, mem memory.CPUBus) bool {
	mem.Read(st.PC.Address())
	st.A.Load(modify(ins.Defn.Operator, st, st.A.Value()))
	return false
}

func immediateOp(ins *Instruction, st *State, mem memory.CPUBus) bool {
	v := ins.fetchPC(st, mem)
	ins.Operand = uint16(v)
	operate(ins.Defn.Operator, st, v)
	return false
}

// operand fetching

func fetchLo(ins *Instruction, st *State, mem memory.CPUBus) bool {
	ins.address = uint16(ins.fetchPC(st, mem))
	ins.Operand = ins.address
	return false
}

func fetchHi(ins *Instruction, st *State, mem memory.CPUBus) bool {
	ins.address |= uint16(ins.fetchPC(st, mem)) << 8
	ins.Operand = ins.address
	return false
}

func fetchHiIndexX(ins *Instruction, st *State, mem memory.CPUBus) bool {
	fetchHi(ins, st, mem)
	ins.index(ins.address, st.X.Value())
	return false
}

func fetchHiIndexY(ins *Instruction, st *State, mem memory.CPUBus) bool {
	fetchHi(ins, st, mem)
	ins.index(ins.address, st.Y.Value())
	return false
}

func zeroPageIndex(ins *Instruction, mem memory.CPUBus, idx uint8) {
	// the base address is read while the index is added
	mem.Read(ins.address)
	base := uint8(ins.address)
	a := base + idx
	if a < base {
		ins.Bug = execution.ZeroPageIndexBug
	}
	ins.address = uint16(a)
}

func zeroPageIndexX(ins *Instruction, st *State, mem memory.CPUBus) bool {
	zeroPageIndex(ins, mem, st.X.Value())
	return false
}

func zeroPageIndexY(ins *Instruction, st *State, mem memory.CPUBus) bool {
	zeroPageIndex(ins, mem, st.Y.Value())
	return false
}

func fetchPointer(ins *Instruction, st *State, mem memory.CPUBus) bool {
	ins.pointer = ins.fetchPC(st, mem)
	ins.Operand = uint16(ins.pointer)
	return false
}

func dummyReadPointerIndexX(ins *Instruction, st *State, mem memory.CPUBus) bool {
	mem.Read(uint16(ins.pointer))
	ins.pointer += st.X.Value()
	return false
}

func fetchLoPointer(ins *Instruction, st *State, mem memory.CPUBus) bool {
	ins.address = uint16(mem.Read(uint16(ins.pointer)))
	return false
}

func fetchHiPointer(ins *Instruction, st *State, mem memory.CPUBus) bool {
	// the pointer wraps around page zero
	if ins.pointer == 0xff {
		ins.Bug = execution.IndexedIndirectAddressingBug
	}
	ins.address |= uint16(mem.Read(uint16(ins.pointer+1))) << 8
	return false
}

func fetchHiPointerIndexY(ins *Instruction, st *State, mem memory.CPUBus) bool {
	if ins.pointer == 0xff {
		ins.Bug = execution.IndirectIndexedAddressingBug
	}
	ins.address |= uint16(mem.Read(uint16(ins.pointer+1))) << 8
	ins.index(ins.address, st.Y.Value())
	return false
}

// the unfixed address is read while the high byte of the address is fixed.
// for a read instruction this is the real read if no page was crossed
func readUnfixed(ins *Instruction, st *State, mem memory.CPUBus) bool {
	v := mem.Read(ins.unfixed)
	if !ins.crossed {
		operate(ins.Defn.Operator, st, v)
		return true
	}
	ins.PageFault = true
	return false
}

func dummyReadUnfixed(ins *Instruction, st *State, mem memory.CPUBus) bool {
	mem.Read(ins.unfixed)
	return false
}

// data access

func readOperate(ins *Instruction, st *State, mem memory.CPUBus) bool {
	operate(ins.Defn.Operator, st, mem.Read(ins.address))
	return false
}

func writeStore(ins *Instruction, st *State, mem memory.CPUBus) bool {
	mem.Write(ins.address, store(ins.Defn.Operator, st))
	return false
}

func rmwRead(ins *Instruction, st *State, mem memory.CPUBus) bool {
	ins.value = mem.Read(ins.address)
	return false
}

// the unmodified value is written back while the operation is performed
func rmwDummyWrite(ins *Instruction, st *State, mem memory.CPUBus) bool {
	mem.Write(ins.address, ins.value)
	ins.value = modify(ins.Defn.Operator, st, ins.value)
	return false
}

func rmwWrite(ins *Instruction, st *State, mem memory.CPUBus) bool {
	mem.Write(ins.address, ins.value)
	return false
}

// branching

func branchFetch(ins *Instruction, st *State, mem memory.CPUBus) bool {
	ins.value = ins.fetchPC(st, mem)
	ins.Operand = uint16(ins.value)
	if !branch(ins.Defn.Operator, st) {
		return true
	}
	ins.BranchSuccess = true
	return false
}

// the offset is added to the low byte of the PC while the next opcode is
// read. if the page has changed the high byte is fixed in the next cycle
func branchTake(ins *Instruction, st *State, mem memory.CPUBus) bool {
	mem.Read(st.PC.Address())

	// the offset is a signed value. converting to int8 first sign extends the
	// value when it is converted to uint16
	ins.address = st.PC.Address() + uint16(int8(ins.value))
	st.PC.LoadLo(uint8(ins.address))

	if st.PC.Address() == ins.address {
		return true
	}
	ins.PageFault = true
	return false
}

func branchFix(ins *Instruction, st *State, mem memory.CPUBus) bool {
	mem.Read(st.PC.Address())
	st.PC.Load(ins.address)
	return false
}

// jumps and subroutines

func jmpAbsolute(ins *Instruction, st *State, mem memory.CPUBus) bool {
	fetchHi(ins, st, mem)
	st.PC.Load(ins.address)
	return false
}

func jmpIndirectLo(ins *Instruction, st *State, mem memory.CPUBus) bool {
	ins.value = mem.Read(ins.address)
	return false
}

// the high byte of the indirect address is read from the same page as the
// low byte
func jmpIndirectHi(ins *Instruction, st *State, mem memory.CPUBus) bool {
	if ins.address&0x00ff == 0x00ff {
		ins.Bug = execution.JmpIndirectAddressingBug
	}
	hi := mem.Read(ins.address&0xff00 | uint16(uint8(ins.address)+1))
	st.PC.Load(uint16(hi)<<8 | uint16(ins.value))
	return false
}

// the PC is pointing to the high byte of the JSR operand when it is pushed.
// the high byte is read after the push
func jsrHi(ins *Instruction, st *State, mem memory.CPUBus) bool {
	fetchHi(ins, st, mem)
	st.PC.Load(ins.address)
	return false
}

func rtsIncrement(ins *Instruction, st *State, mem memory.CPUBus) bool {
	mem.Read(st.PC.Address())
	st.PC.Add(1)
	return false
}

// stack

func dummyReadPC(ins *Instruction, st *State, mem memory.CPUBus) bool {
	mem.Read(st.PC.Address())
	return false
}

func dummyReadStack(ins *Instruction, st *State, mem memory.CPUBus) bool {
	mem.Read(st.SP.Address())
	return false
}

func pushPCH(ins *Instruction, st *State, mem memory.CPUBus) bool {
	mem.Write(st.SP.Push(), st.PC.Hi())
	return false
}

func pushPCL(ins *Instruction, st *State, mem memory.CPUBus) bool {
	mem.Write(st.SP.Push(), st.PC.Lo())
	return false
}

func pushA(ins *Instruction, st *State, mem memory.CPUBus) bool {
	mem.Write(st.SP.Push(), st.A.Value())
	return false
}

// used by PHP and BRK. the break bit is set in the pushed value. for BRK the
// interrupt disable flag is set after the push
func pushStatusBRK(ins *Instruction, st *State, mem memory.CPUBus) bool {
	mem.Write(st.SP.Push(), st.Status.Push(true))
	if ins.Defn.Operator == instructions.Brk {
		st.Status.SetInterruptDisable(true)
	}
	return false
}

func pushStatusInterrupt(ins *Instruction, st *State, mem memory.CPUBus) bool {
	mem.Write(st.SP.Push(), st.Status.Push(false))
	st.Status.SetInterruptDisable(true)
	return false
}

func pullA(ins *Instruction, st *State, mem memory.CPUBus) bool {
	st.A.Load(mem.Read(st.SP.Pull()))
	st.setZN(st.A.Value())
	return false
}

func pullStatus(ins *Instruction, st *State, mem memory.CPUBus) bool {
	st.Status.Pull(mem.Read(st.SP.Pull()))
	return false
}

func pullPCL(ins *Instruction, st *State, mem memory.CPUBus) bool {
	ins.address = uint16(mem.Read(st.SP.Pull()))
	return false
}

func pullPCH(ins *Instruction, st *State, mem memory.CPUBus) bool {
	ins.address |= uint16(mem.Read(st.SP.Pull())) << 8
	st.PC.Load(ins.address)
	return false
}

// interrupts

// the byte following BRK is read and skipped
func brkPadding(ins *Instruction, st *State, mem memory.CPUBus) bool {
	ins.fetchPC(st, mem)
	return false
}

func vectorLo(ins *Instruction, st *State, mem memory.CPUBus) bool {
	ins.address = uint16(mem.Read(ins.vector))
	return false
}

func vectorHi(ins *Instruction, st *State, mem memory.CPUBus) bool {
	ins.address |= uint16(mem.Read(ins.vector+1)) << 8
	st.PC.Load(ins.address)
	return false
}
