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
	"github.com/jetsetilly/gopher6502/hardware/cpu/registers"
	"github.com/jetsetilly/gopher6502/hardware/memory"
	"github.com/jetsetilly/gopher6502/hardware/memory/cpubus"
	"github.com/jetsetilly/gopher6502/logger"
	"github.com/jetsetilly/gopher6502/random"
)

// CPU implements the NMOS 6502. The registers are in the embedded State and
// the instruction currently being executed is advanced one cycle at a time by
// StepCycle().
type CPU struct {
	State

	mem memory.Memory

	// the instruction in flight. only valid if inFlight is true
	ins      Instruction
	inFlight bool

	// the result of the most recent instruction or interrupt sequence. the
	// result is updated every cycle
	LastResult execution.Result

	// irq is a level and is held until ClearIRQ() is called. nmi is latched
	// and is cleared when the interrupt sequence begins
	irq bool
	nmi bool

	// total number of cycles since the last reset. zero until the first
	// cycle after a reset (see HasReset() function)
	cycles uint64
}

// NewCPU is the preferred method of initialisation for the CPU structure. All
// registers are zero.
func NewCPU(mem memory.Memory) *CPU {
	return &CPU{
		State: NewState(),
		mem:   mem,
	}
}

// Snapshot creates a copy of the CPU in its current state. The copy shares
// the memory of the original.
func (mc *CPU) Snapshot() *CPU {
	n := *mc
	return &n
}

// Plumb a new Memory into the CPU.
func (mc *CPU) Plumb(mem memory.Memory) {
	mc.mem = mem
}

func (mc *CPU) String() string {
	return mc.State.String()
}

// Reset reinitialises all registers to zero and discards any instruction in
// flight and any pending interrupt. Does not load PC with RESET vector. Use
// cpu.LoadPCIndirect(cpubus.Reset) when appropriate.
func (mc *CPU) Reset() {
	mc.State = NewState()
	mc.LastResult.Reset()
	mc.ins = Instruction{}
	mc.inFlight = false
	mc.irq = false
	mc.nmi = false
	mc.cycles = 0
}

// RandomiseState resets the CPU and loads the registers with random values.
// The registers of a real 6502 are in an undefined state at power on. Like
// Reset(), it does not load PC with RESET vector and it discards any
// instruction in flight.
//
// The random values are drawn before the reset so a Random clocked by this
// CPU is seeded with the cycle count reached before the call.
func (mc *CPU) RandomiseState(rnd *random.Random) {
	var b [7]uint8
	rnd.Bytes(b[:])

	mc.Reset()

	mc.PC.Load(uint16(b[0]) | uint16(b[1])<<8)
	mc.A.Load(b[2])
	mc.X.Load(b[3])
	mc.Y.Load(b[4])
	mc.SP.Load(b[5])
	mc.Status.Load(b[6] &^ registers.FlagBreak)
}

// Cycles returns the number of cycles performed since the last reset.
func (mc *CPU) Cycles() uint64 {
	return mc.cycles
}

// HasReset checks whether the CPU has been reset and has not performed a
// cycle since.
func (mc *CPU) HasReset() bool {
	return mc.cycles == 0
}

// LoadPCIndirect loads the contents of indirectAddress into the PC.
func (mc *CPU) LoadPCIndirect(indirectAddress uint16) error {
	if mc.inFlight {
		return fmt.Errorf("%w: load PC indirect", ErrMidInstruction)
	}

	lo := mc.mem.Read(indirectAddress)
	hi := mc.mem.Read(indirectAddress + 1)
	mc.PC.Load((uint16(hi) << 8) | uint16(lo))

	return nil
}

// LoadPC loads the contents of directAddress into the PC.
func (mc *CPU) LoadPC(directAddress uint16) error {
	if mc.inFlight {
		return fmt.Errorf("%w: load PC", ErrMidInstruction)
	}

	mc.PC.Load(directAddress)

	return nil
}

// IRQ asserts the interrupt request line. The line stays asserted until
// ClearIRQ() is called and the interrupt is taken at an instruction boundary
// whenever the interrupt disable flag is clear.
func (mc *CPU) IRQ() {
	mc.irq = true
}

// ClearIRQ deasserts the interrupt request line.
func (mc *CPU) ClearIRQ() {
	mc.irq = false
}

// NMI signals a non-maskable interrupt. The interrupt is taken at the next
// instruction boundary.
func (mc *CPU) NMI() {
	mc.nmi = true
}

// InFlight returns the instruction currently being executed. The boolean is
// false if the CPU is between instructions.
func (mc *CPU) InFlight() (Instruction, bool) {
	return mc.ins, mc.inFlight
}

// StepCycle performs a single cycle of the CPU. If the CPU is between
// instructions the cycle is the opcode fetch of the next instruction or the
// first cycle of a pending interrupt. Returns true if the instruction has
// completed.
//
// An error wrapping instructions.ErrIllegalOpcode is returned if the fetched
// opcode is not part of the documented instruction set. The PC will have been
// advanced past the opcode.
func (mc *CPU) StepCycle() (bool, error) {
	mc.cycles++

	if mc.inFlight {
		return mc.step()
	}

	mc.LastResult.Reset()
	mc.LastResult.Address = mc.PC.Address()

	var kind execution.Interrupt
	if mc.nmi {
		kind = execution.NMI
		mc.nmi = false
	} else if mc.irq && !mc.Status.InterruptDisable() {
		kind = execution.IRQ
	}

	if kind != execution.NoInterrupt {
		// the next opcode is read but the PC is not incremented
		mc.mem.Read(mc.PC.Address())
		mc.ins = NewInterrupt(kind)
		mc.inFlight = true
		mc.LastResult.Interrupt = kind
		mc.LastResult.Cycles = 1
		logger.Logf(logger.Allow, "CPU", "%s at (%#04x)", kind, mc.LastResult.Address)
		return false, nil
	}

	opcode := mc.mem.Read(mc.PC.Address())
	mc.PC.Add(1)

	ins, err := Decode(opcode)
	if err != nil {
		mc.LastResult.ByteCount = 1
		mc.LastResult.Cycles = 1
		mc.LastResult.InstructionData = uint16(opcode)
		mc.LastResult.Final = true
		logger.Logf(logger.Allow, "CPU", "%v at (%#04x)", err, mc.LastResult.Address)
		return true, fmt.Errorf("cpu: %w at (%#04x)", err, mc.LastResult.Address)
	}

	mc.ins = ins
	mc.inFlight = true
	mc.LastResult.Defn = ins.Defn
	mc.LastResult.ByteCount = 1
	mc.LastResult.Cycles = 1

	return false, nil
}

func (mc *CPU) step() (bool, error) {
	done, err := mc.ins.Step(&mc.State, mc.mem)
	if err != nil {
		mc.inFlight = false
		return true, err
	}

	mc.LastResult.ByteCount = mc.ins.ByteCount
	mc.LastResult.InstructionData = mc.ins.Operand
	mc.LastResult.PageFault = mc.ins.PageFault
	mc.LastResult.BranchSuccess = mc.ins.BranchSuccess
	mc.LastResult.CPUBug = mc.ins.Bug
	mc.LastResult.Cycles = mc.ins.Cycles()

	if done {
		mc.inFlight = false
		mc.LastResult.Final = true
	}

	return done, nil
}

// NilCycleCallback can be used as an argument to ExecuteInstruction(). It's a
// convenient do-nothing function.
func NilCycleCallback() error {
	return nil
}

// ExecuteInstruction steps the CPU until the next instruction, or interrupt
// sequence, has completed. The cycleCallback is called after every cycle,
// including the opcode fetch. An error from the callback stops execution
// and leaves the instruction in flight.
//
// Returns ErrMidInstruction if the CPU is not at an instruction boundary.
func (mc *CPU) ExecuteInstruction(cycleCallback func() error) error {
	if mc.inFlight {
		return fmt.Errorf("%w: execute instruction", ErrMidInstruction)
	}

	for {
		done, err := mc.StepCycle()
		if err != nil {
			return err
		}

		err = cycleCallback()
		if err != nil {
			return err
		}

		if done {
			return nil
		}
	}
}

// ContinueInstruction steps the CPU until the instruction in flight has
// completed. Used after a cycleCallback has stopped ExecuteInstruction() early
// or to complete an instruction that has been started with StepCycle(). Does
// nothing if the CPU is at an instruction boundary.
func (mc *CPU) ContinueInstruction(cycleCallback func() error) error {
	for mc.inFlight {
		_, err := mc.StepCycle()
		if err != nil {
			return err
		}

		err = cycleCallback()
		if err != nil {
			return err
		}
	}
	return nil
}

// PredictRTS returns the PC address that would result if RTS was run at the
// current moment. Memory is accessed with Peek() and so has no side effects.
func (mc *CPU) PredictRTS() (uint16, bool) {
	sp := mc.SP.Value()

	lo, ok := mc.mem.Peek(cpubus.StackPage | uint16(sp+1))
	if !ok {
		return 0, false
	}

	hi, ok := mc.mem.Peek(cpubus.StackPage | uint16(sp+2))
	if !ok {
		return 0, false
	}

	return ((uint16(hi) << 8) | uint16(lo)) + 1, true
}
