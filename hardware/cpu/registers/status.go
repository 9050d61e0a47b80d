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
	"strings"
)

// StatusRegister is the special purpose register that stores the flags of the
// CPU. Only the upper nibble of the F register is used. The lower nibble
// always reads as zero.
type StatusRegister struct {
	Zero      bool
	Subtract  bool
	HalfCarry bool
	Carry     bool
}

// NewStatusRegister is the preferred method of initialisation for the status
// register.
func NewStatusRegister() StatusRegister {
	return StatusRegister{}
}

// Label returns the canonical name for the status register.
func (sr StatusRegister) Label() string {
	return "F"
}

func (sr StatusRegister) String() string {
	s := strings.Builder{}

	if sr.Zero {
		s.WriteRune('Z')
	} else {
		s.WriteRune('z')
	}
	if sr.Subtract {
		s.WriteRune('N')
	} else {
		s.WriteRune('n')
	}
	if sr.HalfCarry {
		s.WriteRune('H')
	} else {
		s.WriteRune('h')
	}
	if sr.Carry {
		s.WriteRune('C')
	} else {
		s.WriteRune('c')
	}

	return s.String()
}

// Reset status flags to initial state.
func (sr *StatusRegister) Reset() {
	sr.Load(0x00)
}

// Value converts the StatusRegister to a value suitable for the F register.
func (sr StatusRegister) Value() uint8 {
	var v uint8

	if sr.Zero {
		v |= 0x80
	}
	if sr.Subtract {
		v |= 0x40
	}
	if sr.HalfCarry {
		v |= 0x20
	}
	if sr.Carry {
		v |= 0x10
	}

	return v
}

// Load sets the flags from the value. The lower nibble is ignored.
func (sr *StatusRegister) Load(v uint8) {
	sr.Zero = v&0x80 == 0x80
	sr.Subtract = v&0x40 == 0x40
	sr.HalfCarry = v&0x20 == 0x20
	sr.Carry = v&0x10 == 0x10
}
