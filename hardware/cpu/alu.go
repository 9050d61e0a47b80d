// This file is part of Gopherboy.
//
// Gopherboy is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// Gopherboy is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with Gopherboy.  If not, see <https://www.gnu.org/licenses/>.

package cpu

import (
	"github.com/jetsetilly/gopherboy/hardware/cpu/registers"
)

func (mc *CPU) setFlags(zero bool, subtract bool, half bool, carry bool) {
	mc.F.Zero = zero
	mc.F.Subtract = subtract
	mc.F.HalfCarry = half
	mc.F.Carry = carry
}

// the eight operations of the ALU, in opcode order: ADD, ADC, SUB, SBC, AND,
// XOR, OR, CP. the result is stored in A except for CP.
func (mc *CPU) alu(op uint8, v uint8) {
	switch op {
	case 0:
		carry, half := mc.A.Add(v, false)
		mc.setFlags(mc.A.IsZero(), false, half, carry)
	case 1:
		carry, half := mc.A.Add(v, mc.F.Carry)
		mc.setFlags(mc.A.IsZero(), false, half, carry)
	case 2:
		borrow, half := mc.A.Subtract(v, false)
		mc.setFlags(mc.A.IsZero(), true, half, borrow)
	case 3:
		borrow, half := mc.A.Subtract(v, mc.F.Carry)
		mc.setFlags(mc.A.IsZero(), true, half, borrow)
	case 4:
		mc.A.AND(v)
		mc.setFlags(mc.A.IsZero(), false, true, false)
	case 5:
		mc.A.XOR(v)
		mc.setFlags(mc.A.IsZero(), false, false, false)
	case 6:
		mc.A.OR(v)
		mc.setFlags(mc.A.IsZero(), false, false, false)
	case 7:
		mc.acc8.Load(mc.A.Value())
		borrow, half := mc.acc8.Subtract(v, false)
		mc.setFlags(mc.acc8.IsZero(), true, half, borrow)
	}
}

// the eight rotate and shift operations, in opcode order: RLC, RRC, RL, RR,
// SLA, SRA, SWAP, SRL. returns the new carry. the flags are not changed.
func (mc *CPU) rotate(op uint8, r *registers.Register) bool {
	switch op {
	case 0:
		return r.RLC()
	case 1:
		return r.RRC()
	case 2:
		return r.RL(mc.F.Carry)
	case 3:
		return r.RR(mc.F.Carry)
	case 4:
		return r.SLA()
	case 5:
		return r.SRA()
	case 6:
		r.Swap()
		return false
	}
	return r.SRL()
}

// increment or decrement the register or memory location. the carry flag is
// not changed.
func (mc *CPU) incdec(i uint8, decrement bool) {
	mc.acc8.Load(mc.readR(i))

	var half bool
	if decrement {
		half = mc.acc8.Decrement()
	} else {
		half = mc.acc8.Increment()
	}

	mc.F.Zero = mc.acc8.IsZero()
	mc.F.Subtract = decrement
	mc.F.HalfCarry = half
	mc.writeR(i, mc.acc8.Value())
}

// add a register pair to HL. the zero flag is not changed.
func (mc *CPU) addHL(v uint16) {
	hl := mc.HL.Value()
	r := uint32(hl) + uint32(v)
	mc.F.Subtract = false
	mc.F.HalfCarry = (hl^v^uint16(r))&0x1000 != 0
	mc.F.Carry = r > 0xffff
	mc.HL.Load(uint16(r))
}

// add the signed offset to SP and return the result. SP is not changed. the
// flags are set according to the unsigned addition of the lower byte.
func (mc *CPU) addSP(e uint8) uint16 {
	sp := mc.SP.Value()
	d := uint16(int16(int8(e)))
	r := sp + d
	x := sp ^ d ^ r
	mc.setFlags(false, false, x&0x10 != 0, x&0x100 != 0)
	return r
}

// decimal adjust A after a BCD addition or subtraction.
func (mc *CPU) daa() {
	a := mc.A.Value()
	carry := mc.F.Carry

	if !mc.F.Subtract {
		if mc.F.Carry || a > 0x99 {
			a += 0x60
			carry = true
		}
		if mc.F.HalfCarry || a&0x0f > 0x09 {
			a += 0x06
		}
	} else {
		if mc.F.Carry {
			a -= 0x60
		}
		if mc.F.HalfCarry {
			a -= 0x06
		}
	}

	mc.A.Load(a)
	mc.F.Zero = a == 0
	mc.F.HalfCarry = false
	mc.F.Carry = carry
}
