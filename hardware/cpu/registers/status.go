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

package registers

import (
	"strings"
)

// Bit masks of the flags in the status register. The bit layout is:
//
//	N V - B D I Z C
const (
	FlagNegative         = uint8(0x80)
	FlagOverflow         = uint8(0x40)
	FlagUnused           = uint8(0x20)
	FlagBreak            = uint8(0x10)
	FlagDecimal          = uint8(0x08)
	FlagInterruptDisable = uint8(0x04)
	FlagZero             = uint8(0x02)
	FlagCarry            = uint8(0x01)
)

// StatusRegister is the special purpose register that stores the flags of the
// CPU. The flags are packed into a single byte.
//
// The break flag does not exist as state in the processor. It only exists in
// the copy of the status register that is pushed onto the stack.
type StatusRegister struct {
	value uint8
}

// NewStatusRegister is the preferred method of initialisation for the status
// register.
func NewStatusRegister() StatusRegister {
	return StatusRegister{}
}

// Label returns the canonical name for the status register.
func (sr StatusRegister) Label() string {
	return "SR"
}

func (sr StatusRegister) String() string {
	s := strings.Builder{}
	for i, c := range "nv-bdizc" {
		if c != '-' && sr.value&(0x80>>i) != 0 {
			s.WriteString(strings.ToUpper(string(c)))
		} else {
			s.WriteRune(c)
		}
	}
	return s.String()
}

// Value returns the packed status byte.
func (sr StatusRegister) Value() uint8 {
	return sr.value
}

// Load a packed value into the status register. No bits are masked.
func (sr *StatusRegister) Load(v uint8) {
	sr.value = v
}

// Reset all flags to zero.
func (sr *StatusRegister) Reset() {
	sr.value = 0
}

// Push returns the value to be pushed onto the stack. The unused bit is always
// set in the pushed value and the break bit is set according to the brk
// argument. BRK and PHP push with the break bit set; IRQ and NMI push with it
// clear.
func (sr StatusRegister) Push(brk bool) uint8 {
	v := sr.value&^FlagBreak | FlagUnused
	if brk {
		v |= FlagBreak
	}
	return v
}

// Pull loads a value that has been pulled from the stack. The break bit is
// discarded and the unused bit is set.
func (sr *StatusRegister) Pull(v uint8) {
	sr.value = v&^FlagBreak | FlagUnused
}

func (sr StatusRegister) flag(mask uint8) bool {
	return sr.value&mask == mask
}

func (sr *StatusRegister) setFlag(mask uint8, v bool) {
	if v {
		sr.value |= mask
	} else {
		sr.value &^= mask
	}
}

// Negative returns the state of the N flag.
func (sr StatusRegister) Negative() bool {
	return sr.flag(FlagNegative)
}

// SetNegative sets the N flag.
func (sr *StatusRegister) SetNegative(v bool) {
	sr.setFlag(FlagNegative, v)
}

// Overflow returns the state of the V flag.
func (sr StatusRegister) Overflow() bool {
	return sr.flag(FlagOverflow)
}

// SetOverflow sets the V flag.
func (sr *StatusRegister) SetOverflow(v bool) {
	sr.setFlag(FlagOverflow, v)
}

// DecimalMode returns the state of the D flag.
func (sr StatusRegister) DecimalMode() bool {
	return sr.flag(FlagDecimal)
}

// SetDecimalMode sets the D flag.
func (sr *StatusRegister) SetDecimalMode(v bool) {
	sr.setFlag(FlagDecimal, v)
}

// InterruptDisable returns the state of the I flag.
func (sr StatusRegister) InterruptDisable() bool {
	return sr.flag(FlagInterruptDisable)
}

// SetInterruptDisable sets the I flag.
func (sr *StatusRegister) SetInterruptDisable(v bool) {
	sr.setFlag(FlagInterruptDisable, v)
}

// Zero returns the state of the Z flag.
func (sr StatusRegister) Zero() bool {
	return sr.flag(FlagZero)
}

// SetZero sets the Z flag.
func (sr *StatusRegister) SetZero(v bool) {
	sr.setFlag(FlagZero, v)
}

// Carry returns the state of the C flag.
func (sr StatusRegister) Carry() bool {
	return sr.flag(FlagCarry)
}

// SetCarry sets the C flag.
func (sr *StatusRegister) SetCarry(v bool) {
	sr.setFlag(FlagCarry, v)
}
