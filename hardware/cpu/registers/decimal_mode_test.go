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

package registers_test

import (
	"testing"

	"github.com/jetsetilly/gopher6502/hardware/cpu/registers"
	"github.com/jetsetilly/gopher6502/test"
)

func TestDecimalModeCarry(t *testing.T) {
	var rcarry bool

	// initialisation
	r8 := registers.NewRegister(0, "test")

	// addition without carry
	rcarry, _, _, _ = r8.AddDecimal(1, false)
	test.ExpectEquality(t, r8.Value(), 0x01)
	test.ExpectFailure(t, rcarry)

	// addition with carry
	rcarry, _, _, _ = r8.AddDecimal(1, true)
	test.ExpectEquality(t, r8.Value(), 0x03)
	test.ExpectFailure(t, rcarry)

	// subtraction with carry (subtract value)
	r8.Load(9)
	r8.SubtractDecimal(1, true)
	test.ExpectEquality(t, r8.Value(), 0x08)

	// subtraction without carry (subtract value and another 1)
	r8.SubtractDecimal(1, false)
	test.ExpectEquality(t, r8.Value(), 0x06)

	// addition on tens boundary
	r8.Load(9)
	r8.AddDecimal(1, false)
	test.ExpectEquality(t, r8.Value(), 0x10)

	// subtraction on tens boundary
	r8.SubtractDecimal(1, true)
	test.ExpectEquality(t, r8.Value(), 0x09)

	// addition on hundreds boundary
	r8.Load(0x99)
	rcarry, _, _, _ = r8.AddDecimal(1, false)
	test.ExpectEquality(t, r8.Value(), 0x00)
	test.ExpectSuccess(t, rcarry)

	// subtraction on hundreds boundary
	rcarry, _, _, _ = r8.SubtractDecimal(1, true)
	test.ExpectEquality(t, r8.Value(), 0x99)
	test.ExpectFailure(t, rcarry)
}

func TestDecimalModeZero(t *testing.T) {
	var zero bool

	r8 := registers.NewRegister(0, "test")

	// subtract to zero
	r8.Load(0x02)
	_, zero, _, _ = r8.SubtractDecimal(1, true)
	test.ExpectFailure(t, zero)
	_, zero, _, _ = r8.SubtractDecimal(1, true)
	test.ExpectSuccess(t, zero)

	// the zero flag comes from the binary sum and not the decimal result
	r8.Load(0x99)
	_, zero, _, _ = r8.AddDecimal(1, false)
	test.ExpectEquality(t, r8.Value(), 0x00)
	test.ExpectFailure(t, zero)
}

func TestDecimalModeSignOverflow(t *testing.T) {
	var overflow, sign bool

	// 79 + 00 + carry = 80. N and V are set from the intermediate result
	r8 := registers.NewRegister(0x79, "test")
	_, _, overflow, sign = r8.AddDecimal(0x00, true)
	test.ExpectEquality(t, r8.Value(), 0x80)
	test.ExpectSuccess(t, overflow)
	test.ExpectSuccess(t, sign)

	// 24 + 56 = 80
	r8.Load(0x24)
	_, _, overflow, sign = r8.AddDecimal(0x56, false)
	test.ExpectEquality(t, r8.Value(), 0x80)
	test.ExpectSuccess(t, overflow)
	test.ExpectSuccess(t, sign)

	// 93 + 82 = 75 carry. the intermediate result (0x115) has bit 7 clear
	r8.Load(0x93)
	rcarry, _, overflow, sign := r8.AddDecimal(0x82, false)
	test.ExpectEquality(t, r8.Value(), 0x75)
	test.ExpectSuccess(t, rcarry)
	test.ExpectSuccess(t, overflow)
	test.ExpectFailure(t, sign)
}

func TestDecimalModeInvalid(t *testing.T) {
	// invalid BCD digits follow the same sequence as valid digits
	r8 := registers.NewRegister(0x0f, "test")
	rcarry, _, _, _ := r8.AddDecimal(0x01, false)
	test.ExpectEquality(t, r8.Value(), 0x16)
	test.ExpectFailure(t, rcarry)

	r8.Load(0xff)
	rcarry, _, _, _ = r8.AddDecimal(0xff, false)
	test.ExpectEquality(t, r8.Value(), 0x54)
	test.ExpectSuccess(t, rcarry)

	r8.Load(0x10)
	r8.SubtractDecimal(0x0a, true)
	test.ExpectEquality(t, r8.Value(), 0x00)
}

// the flags of a decimal subtraction are the same as a binary subtraction
func TestDecimalSubtractFlags(t *testing.T) {
	for a := range 256 {
		for b := range 256 {
			bin := registers.NewRegister(uint8(a), "bin")
			bcarry, boverflow := bin.Subtract(uint8(b), true)

			dec := registers.NewRegister(uint8(a), "dec")
			dcarry, dzero, doverflow, dsign := dec.SubtractDecimal(uint8(b), true)

			ok := test.ExpectEquality(t, dcarry, bcarry, a, b, "carry")
			ok = test.ExpectEquality(t, dzero, bin.IsZero(), a, b, "zero") && ok
			ok = test.ExpectEquality(t, doverflow, boverflow, a, b, "overflow") && ok
			ok = test.ExpectEquality(t, dsign, bin.IsNegative(), a, b, "sign") && ok
			if !ok {
				return
			}
		}
	}
}
