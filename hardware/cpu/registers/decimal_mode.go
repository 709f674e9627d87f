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

// the decimal mode functions follow the NMOS sequences described in Bruce
// Clark's "Decimal Mode" tutorial (appendix A). the sequences are defined for
// all 256x256 inputs and not just for valid BCD values, which means that
// invalid BCD digits produce the same results as the real chip

// AddDecimal adds value to register as though both registers are decimal
// representations. Returns new carry state, zero, overflow, sign bit
// information.
func (r *Register) AddDecimal(val uint8, carry bool) (rcarry, zero, overflow, sign bool) {
	a := int(r.value)
	b := int(val)
	c := 0
	if carry {
		c = 1
	}

	// the Z flag is computed from the binary result
	zero = uint8(a+b+c) == 0

	lo := (a & 0x0f) + (b & 0x0f) + c
	if lo >= 0x0a {
		lo = ((lo + 0x06) & 0x0f) + 0x10
	}
	res := (a & 0xf0) + (b & 0xf0) + lo

	// the N and V flags are computed after a decimal adjust of the low
	// nibble, but before adjusting the high nibble
	sign = res&0x80 == 0x80
	overflow = (^(a ^ b) & (a ^ res) & 0x80) != 0

	if res >= 0xa0 {
		res += 0x60
	}
	rcarry = res >= 0x100

	r.value = uint8(res)

	return rcarry, zero, overflow, sign
}

// SubtractDecimal subtracts value from register as though both registers are
// decimal representations. Returns new carry state, zero, overflow, sign bit
// information.
//
// On the NMOS 6502 all flags are the same as for a binary subtraction. Only the
// value in the register differs.
func (r *Register) SubtractDecimal(val uint8, carry bool) (rcarry, zero, overflow, sign bool) {
	bin := *r
	rcarry, overflow = bin.Subtract(val, carry)
	zero = bin.IsZero()
	sign = bin.IsNegative()

	a := int(r.value)
	b := int(val)
	c := 0
	if carry {
		c = 1
	}

	lo := (a & 0x0f) - (b & 0x0f) + c - 1
	if lo < 0 {
		lo = ((lo - 0x06) & 0x0f) - 0x10
	}
	res := (a & 0xf0) - (b & 0xf0) + lo
	if res < 0 {
		res -= 0x60
	}

	r.value = uint8(res)

	return rcarry, zero, overflow, sign
}
