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
	"github.com/jetsetilly/gopher6502/hardware/cpu/instructions"
	"github.com/jetsetilly/gopher6502/hardware/cpu/registers"
)

// the functions in this file perform the operation of an instruction once the
// addressing mode has provided the data. none of them access memory

// operate performs the operators that consume a value: loads, arithmetic,
// logic, comparisons and BIT.
func operate(op instructions.Operator, st *State, value uint8) {
	switch op {
	case instructions.Lda:
		st.A.Load(value)
		st.setZN(value)

	case instructions.Ldx:
		st.X.Load(value)
		st.setZN(value)

	case instructions.Ldy:
		st.Y.Load(value)
		st.setZN(value)

	case instructions.Adc:
		if st.Status.DecimalMode() {
			carry, zero, overflow, sign := st.A.AddDecimal(value, st.Status.Carry())
			st.Status.SetCarry(carry)
			st.Status.SetZero(zero)
			st.Status.SetOverflow(overflow)
			st.Status.SetNegative(sign)
		} else {
			carry, overflow := st.A.Add(value, st.Status.Carry())
			st.Status.SetCarry(carry)
			st.Status.SetOverflow(overflow)
			st.setZN(st.A.Value())
		}

	case instructions.Sbc:
		if st.Status.DecimalMode() {
			carry, zero, overflow, sign := st.A.SubtractDecimal(value, st.Status.Carry())
			st.Status.SetCarry(carry)
			st.Status.SetZero(zero)
			st.Status.SetOverflow(overflow)
			st.Status.SetNegative(sign)
		} else {
			carry, overflow := st.A.Subtract(value, st.Status.Carry())
			st.Status.SetCarry(carry)
			st.Status.SetOverflow(overflow)
			st.setZN(st.A.Value())
		}

	case instructions.And:
		st.A.AND(value)
		st.setZN(st.A.Value())

	case instructions.Ora:
		st.A.ORA(value)
		st.setZN(st.A.Value())

	case instructions.Eor:
		st.A.EOR(value)
		st.setZN(st.A.Value())

	case instructions.Cmp:
		compare(st, st.A, value)

	case instructions.Cpx:
		compare(st, st.X, value)

	case instructions.Cpy:
		compare(st, st.Y, value)

	case instructions.Bit:
		st.Status.SetZero(st.A.Value()&value == 0)
		st.Status.SetNegative(value&0x80 == 0x80)
		st.Status.SetOverflow(value&0x40 == 0x40)
	}
}

// compare is a subtraction with carry set, performed on a copy of the
// register. decimal mode has no effect
func compare(st *State, r registers.Register, value uint8) {
	carry, _ := r.Subtract(value, true)
	st.Status.SetCarry(carry)
	st.setZN(r.Value())
}

// modify performs the operators of read-modify-write instructions. it returns
// the modified value.
func modify(op instructions.Operator, st *State, value uint8) uint8 {
	r := registers.NewRegister(value, "")

	switch op {
	case instructions.Asl:
		st.Status.SetCarry(r.ASL())
	case instructions.Lsr:
		st.Status.SetCarry(r.LSR())
	case instructions.Rol:
		st.Status.SetCarry(r.ROL(st.Status.Carry()))
	case instructions.Ror:
		st.Status.SetCarry(r.ROR(st.Status.Carry()))
	case instructions.Inc:
		r.Add(1, false)
	case instructions.Dec:
		r.Add(0xff, false)
	}

	st.setZN(r.Value())
	return r.Value()
}

// store returns the value written by a store instruction.
func store(op instructions.Operator, st *State) uint8 {
	switch op {
	case instructions.Stx:
		return st.X.Value()
	case instructions.Sty:
		return st.Y.Value()
	}
	return st.A.Value()
}

// implied performs the single byte instructions that operate only on the
// registers.
func implied(op instructions.Operator, st *State) {
	switch op {
	case instructions.Clc:
		st.Status.SetCarry(false)
	case instructions.Cld:
		st.Status.SetDecimalMode(false)
	case instructions.Cli:
		st.Status.SetInterruptDisable(false)
	case instructions.Clv:
		st.Status.SetOverflow(false)
	case instructions.Sec:
		st.Status.SetCarry(true)
	case instructions.Sed:
		st.Status.SetDecimalMode(true)
	case instructions.Sei:
		st.Status.SetInterruptDisable(true)

	case instructions.Inx:
		st.X.Add(1, false)
		st.setZN(st.X.Value())
	case instructions.Iny:
		st.Y.Add(1, false)
		st.setZN(st.Y.Value())
	case instructions.Dex:
		st.X.Add(0xff, false)
		st.setZN(st.X.Value())
	case instructions.Dey:
		st.Y.Add(0xff, false)
		st.setZN(st.Y.Value())

	case instructions.Tax:
		st.X.Load(st.A.Value())
		st.setZN(st.X.Value())
	case instructions.Tay:
		st.Y.Load(st.A.Value())
		st.setZN(st.Y.Value())
	case instructions.Txa:
		st.A.Load(st.X.Value())
		st.setZN(st.A.Value())
	case instructions.Tya:
		st.A.Load(st.Y.Value())
		st.setZN(st.A.Value())
	case instructions.Tsx:
		st.X.Load(st.SP.Value())
		st.setZN(st.X.Value())

	// TXS is the only transfer that does not affect the flags
	case instructions.Txs:
		st.SP.Load(st.X.Value())

	case instructions.Nop:
	}
}

// branch returns whether the branch instruction will branch given the
// current state of the status register.
func branch(op instructions.Operator, st *State) bool {
	switch op {
	case instructions.Bcc:
		return !st.Status.Carry()
	case instructions.Bcs:
		return st.Status.Carry()
	case instructions.Bne:
		return !st.Status.Zero()
	case instructions.Beq:
		return st.Status.Zero()
	case instructions.Bpl:
		return !st.Status.Negative()
	case instructions.Bmi:
		return st.Status.Negative()
	case instructions.Bvc:
		return !st.Status.Overflow()
	case instructions.Bvs:
		return st.Status.Overflow()
	}
	return false
}
