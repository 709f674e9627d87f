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

package instructions

import (
	"errors"
	"fmt"
)

// Definition defines each instruction in the instruction set; one per instruction.
type Definition struct {
	OpCode         uint8
	Operator       Operator
	Bytes          int
	Cycles         int
	AddressingMode AddressingMode
	PageSensitive  bool
	Effect         EffectCategory
}

// String returns a single instruction definition as a string.
func (defn Definition) String() string {
	return fmt.Sprintf("%02x %s +%dbytes (%d cycles) [mode=%s pagesens=%t effect=%s]",
		defn.OpCode, defn.Operator, defn.Bytes, defn.Cycles, defn.AddressingMode, defn.PageSensitive, defn.Effect)
}

// IsBranch returns true if instruction is a branch instruction.
func (defn Definition) IsBranch() bool {
	return defn.AddressingMode == Relative && defn.Effect == Flow
}

// ErrIllegalOpcode is the error wrapped by all errors returned for an opcode
// that is not part of the documented instruction set.
var ErrIllegalOpcode = errors.New("instructions: illegal opcode")

// IllegalOpcodeError is returned by Lookup() for an opcode that is not part of
// the documented instruction set.
type IllegalOpcodeError struct {
	OpCode uint8
}

func (e *IllegalOpcodeError) Error() string {
	return fmt.Sprintf("%v (%#02x)", ErrIllegalOpcode, e.OpCode)
}

func (e *IllegalOpcodeError) Unwrap() error {
	return ErrIllegalOpcode
}

// Lookup returns the definition for an opcode.
func Lookup(opcode uint8) (*Definition, error) {
	defn := definitions[opcode]
	if defn == nil {
		return nil, &IllegalOpcodeError{OpCode: opcode}
	}
	return defn, nil
}

// Definitions returns the table of definitions indexed by opcode. Illegal
// opcodes have a nil entry.
func Definitions() []*Definition {
	d := make([]*Definition, len(definitions))
	copy(d, definitions[:])
	return d
}
