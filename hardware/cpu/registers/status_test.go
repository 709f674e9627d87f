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
	"math/rand/v2"
	"testing"

	"github.com/jetsetilly/gopher6502/hardware/cpu/registers"
	"github.com/jetsetilly/gopher6502/test"
)

type flagAccessor struct {
	name string
	mask uint8
	get  func(registers.StatusRegister) bool
	set  func(*registers.StatusRegister, bool)
}

var flagAccessors = []flagAccessor{
	{"N", registers.FlagNegative, registers.StatusRegister.Negative, (*registers.StatusRegister).SetNegative},
	{"V", registers.FlagOverflow, registers.StatusRegister.Overflow, (*registers.StatusRegister).SetOverflow},
	{"D", registers.FlagDecimal, registers.StatusRegister.DecimalMode, (*registers.StatusRegister).SetDecimalMode},
	{"I", registers.FlagInterruptDisable, registers.StatusRegister.InterruptDisable, (*registers.StatusRegister).SetInterruptDisable},
	{"Z", registers.FlagZero, registers.StatusRegister.Zero, (*registers.StatusRegister).SetZero},
	{"C", registers.FlagCarry, registers.StatusRegister.Carry, (*registers.StatusRegister).SetCarry},
}

// setting any flag must change exactly one bit of the status register
func TestFlagIsolation(t *testing.T) {
	for range 1000 {
		initial := uint8(rand.IntN(256))

		for _, f := range flagAccessors {
			for _, v := range []bool{false, true} {
				var sr registers.StatusRegister
				sr.Load(initial)

				f.set(&sr, v)
				test.ExpectEquality(t, f.get(sr), v, f.name)

				expected := initial &^ f.mask
				if v {
					expected |= f.mask
				}
				test.ExpectEquality(t, sr.Value(), expected, "flag %s from %02x", f.name, initial)
			}
		}
	}
}

func TestFlagPositions(t *testing.T) {
	var sr registers.StatusRegister
	for _, f := range flagAccessors {
		sr.Reset()
		f.set(&sr, true)
		test.ExpectEquality(t, sr.Value(), f.mask, f.name)
	}
}

func TestStatusPushPull(t *testing.T) {
	var sr registers.StatusRegister

	sr.Load(0xcf)
	test.ExpectEquality(t, sr.Push(true), 0xff)
	test.ExpectEquality(t, sr.Push(false), 0xef)

	// the value held in the register is unchanged by a push
	test.ExpectEquality(t, sr.Value(), 0xcf)

	// B is discarded and the unused bit is set on pull
	sr.Pull(0x10)
	test.ExpectEquality(t, sr.Value(), 0x20)
	sr.Pull(0xdf)
	test.ExpectEquality(t, sr.Value(), 0xef)
	sr.Pull(0x00)
	test.ExpectEquality(t, sr.Value(), 0x20)
}

func TestStatusString(t *testing.T) {
	var sr registers.StatusRegister
	test.ExpectEquality(t, sr.String(), "nv-bdizc")

	sr.SetNegative(true)
	sr.SetZero(true)
	sr.SetCarry(true)
	test.ExpectEquality(t, sr.String(), "Nv-bdiZC")

	sr.Load(0xff)
	test.ExpectEquality(t, sr.String(), "NV-BDIZC")
	test.ExpectEquality(t, sr.Label(), "SR")
}
