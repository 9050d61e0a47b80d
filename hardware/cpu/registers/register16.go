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

// Register16 is a sixteen bit register. Used for the PC and SP.
type Register16 struct {
	label string
	value uint16
}

// NewRegister16 is the preferred method of initialisation for Register16.
func NewRegister16(val uint16, label string) Register16 {
	return Register16{
		value: val,
		label: label,
	}
}

func (r Register16) String() string {
	return fmt.Sprintf("%s=%#04x", r.label, r.value)
}

// Label returns the canonical name for the register.
func (r Register16) Label() string {
	return r.label
}

// Value returns the current value of the register.
func (r Register16) Value() uint16 {
	return r.value
}

// Load value into register.
func (r *Register16) Load(val uint16) {
	r.value = val
}

// Add value to the register. The value wraps around.
func (r *Register16) Add(val uint16) {
	r.value += val
}

// Increment the register by one and return the value it had before the
// increment.
func (r *Register16) Increment() uint16 {
	v := r.value
	r.value++
	return v
}

// Decrement the register by one and return the new value.
func (r *Register16) Decrement() uint16 {
	r.value--
	return r.value
}

// ByteRegister is the interface to the two halves of a Pair.
type ByteRegister interface {
	Value() uint8
	Load(uint8)
}

// Pair combines two eight bit registers into a sixteen bit register. Changes
// to the Pair are seen in the eight bit registers and vice-versa.
type Pair struct {
	hi ByteRegister
	lo ByteRegister
}

// NewPair is the preferred method of initialisation for Pair.
func NewPair(hi ByteRegister, lo ByteRegister) Pair {
	return Pair{
		hi: hi,
		lo: lo,
	}
}

func (p Pair) String() string {
	return fmt.Sprintf("%s=%#04x", p.Label(), p.Value())
}

// Label returns the canonical name for the register pair.
func (p Pair) Label() string {
	var h, l string
	if r, ok := p.hi.(interface{ Label() string }); ok {
		h = r.Label()
	}
	if r, ok := p.lo.(interface{ Label() string }); ok {
		l = r.Label()
	}
	return h + l
}

// Value returns the current value of the register pair.
func (p Pair) Value() uint16 {
	return uint16(p.hi.Value())<<8 | uint16(p.lo.Value())
}

// Load value into the register pair.
func (p Pair) Load(val uint16) {
	p.hi.Load(uint8(val >> 8))
	p.lo.Load(uint8(val))
}

// Increment the register pair by one.
func (p Pair) Increment() {
	p.Load(p.Value() + 1)
}

// Decrement the register pair by one.
func (p Pair) Decrement() {
	p.Load(p.Value() - 1)
}
