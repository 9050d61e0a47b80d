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

package registers

import (
	"fmt"
)

// Register is an eight bit register.
type Register struct {
	label string
	value uint8
}

// NewRegister is the preferred method of initialisation for Register.
func NewRegister(val uint8, label string) Register {
	return Register{
		value: val,
		label: label,
	}
}

func (r Register) String() string {
	return fmt.Sprintf("%s=%#02x", r.label, r.value)
}

// Label returns the canonical name for the register.
func (r Register) Label() string {
	return r.label
}

// Value returns the current value of the register.
func (r Register) Value() uint8 {
	return r.value
}

// Load value into register.
func (r *Register) Load(val uint8) {
	r.value = val
}

// IsZero checks if register is zero.
func (r Register) IsZero() bool {
	return r.value == 0
}

// Add value to register. Returns carry and half-carry states.
func (r *Register) Add(val uint8, carry bool) (rcarry bool, half bool) {
	var c uint16
	if carry {
		c = 1
	}
	v := uint16(r.value) + uint16(val) + c
	half = (r.value&0x0f)+(val&0x0f)+uint8(c) > 0x0f
	r.value = uint8(v)
	return v > 0xff, half
}

// Subtract value from register. Returns borrow and half-borrow states.
func (r *Register) Subtract(val uint8, carry bool) (borrow bool, half bool) {
	var c int
	if carry {
		c = 1
	}
	v := int(r.value) - int(val) - c
	half = int(r.value&0x0f)-int(val&0x0f)-c < 0
	r.value = uint8(v)
	return v < 0, half
}

// Increment register by one. Returns the half-carry state.
func (r *Register) Increment() (half bool) {
	half = r.value&0x0f == 0x0f
	r.value++
	return half
}

// Decrement register by one. Returns the half-borrow state.
func (r *Register) Decrement() (half bool) {
	half = r.value&0x0f == 0x00
	r.value--
	return half
}

// AND value with register.
func (r *Register) AND(val uint8) {
	r.value &= val
}

// XOR value with register.
func (r *Register) XOR(val uint8) {
	r.value ^= val
}

// OR value with register.
func (r *Register) OR(val uint8) {
	r.value |= val
}

// RLC rotates the register left. Bit 7 moves to bit 0 and is returned as the
// new carry.
func (r *Register) RLC() bool {
	carry := r.value&0x80 == 0x80
	r.value = r.value<<1 | r.value>>7
	return carry
}

// RRC rotates the register right. Bit 0 moves to bit 7 and is returned as the
// new carry.
func (r *Register) RRC() bool {
	carry := r.value&0x01 == 0x01
	r.value = r.value>>1 | r.value<<7
	return carry
}

// RL rotates the register left through the carry. Returns new carry status.
func (r *Register) RL(carry bool) bool {
	rcarry := r.value&0x80 == 0x80
	r.value <<= 1
	if carry {
		r.value |= 0x01
	}
	return rcarry
}

// RR rotates the register right through the carry. Returns new carry status.
func (r *Register) RR(carry bool) bool {
	rcarry := r.value&0x01 == 0x01
	r.value >>= 1
	if carry {
		r.value |= 0x80
	}
	return rcarry
}

// SLA shifts the register left. Returns the bit shifted out.
func (r *Register) SLA() bool {
	carry := r.value&0x80 == 0x80
	r.value <<= 1
	return carry
}

// SRA shifts the register right, keeping the sign bit. Returns the bit
// shifted out.
func (r *Register) SRA() bool {
	carry := r.value&0x01 == 0x01
	r.value = r.value>>1 | r.value&0x80
	return carry
}

// SRL shifts the register right. Returns the bit shifted out.
func (r *Register) SRL() bool {
	carry := r.value&0x01 == 0x01
	r.value >>= 1
	return carry
}

// Swap exchanges the upper and lower nibbles of the register.
func (r *Register) Swap() {
	r.value = r.value<<4 | r.value>>4
}

// Bit returns the state of bit n.
func (r Register) Bit(n uint8) bool {
	return r.value&(1<<n) != 0
}

// SetBit sets bit n of the register.
func (r *Register) SetBit(n uint8) {
	r.value |= 1 << n
}

// ResetBit clears bit n of the register.
func (r *Register) ResetBit(n uint8) {
	r.value &^= 1 << n
}
