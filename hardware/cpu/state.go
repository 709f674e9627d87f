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

	"github.com/jetsetilly/gopher6502/hardware/cpu/registers"
)

// State is the programmer visible state of the 6502. It is a plain value and
// a copy of State is a complete snapshot of the registers.
type State struct {
	PC     registers.ProgramCounter
	A      registers.Register
	X      registers.Register
	Y      registers.Register
	SP     registers.StackPointer
	Status registers.StatusRegister
}

// NewState is the preferred method of initialisation for the State type. All
// registers are zero.
func NewState() State {
	return State{
		PC:     registers.NewProgramCounter(0),
		A:      registers.NewRegister(0, "A"),
		X:      registers.NewRegister(0, "X"),
		Y:      registers.NewRegister(0, "Y"),
		SP:     registers.NewStackPointer(0),
		Status: registers.NewStatusRegister(),
	}
}

// Snapshot returns a copy of the State.
func (st State) Snapshot() State {
	return st
}

func (st State) String() string {
	return fmt.Sprintf("%s=%s %s=%s %s=%s %s=%s %s=%s %s=%s",
		st.PC.Label(), st.PC, st.A.Label(), st.A,
		st.X.Label(), st.X, st.Y.Label(), st.Y,
		st.SP.Label(), st.SP, st.Status.Label(), st.Status)
}

// setZN sets the zero and negative flags according to the value.
func (st *State) setZN(v uint8) {
	st.Status.SetZero(v == 0)
	st.Status.SetNegative(v&0x80 == 0x80)
}
