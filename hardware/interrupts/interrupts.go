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

// Package interrupts holds the interrupt request (IF) and interrupt enable (IE)
// registers. Peripherals raise requests with the Request() function. Servicing
// of interrupts by the CPU is not emulated, the CPU only uses the Pending()
// function to decide when to leave the halted state.
package interrupts

import (
	"fmt"
	"strings"
)

// Interrupt identifies one of the five interrupt sources. The value is the
// bit number in the IF and IE registers.
type Interrupt int

// List of valid Interrupt values.
const (
	VBlank Interrupt = iota
	LCDStat
	Timer
	Serial
	Joypad
)

func (i Interrupt) String() string {
	switch i {
	case VBlank:
		return "vblank"
	case LCDStat:
		return "lcdstat"
	case Timer:
		return "timer"
	case Serial:
		return "serial"
	case Joypad:
		return "joypad"
	}
	panic(fmt.Sprintf("unknown interrupt (%d)", int(i)))
}

// only the lower five bits of IF and IE are meaningful
const mask = 0x1f

// Flags is the combination of the IF and IE registers.
type Flags struct {
	requested uint8
	enabled   uint8
}

// NewFlags is the preferred method of initialisation for the Flags type.
func NewFlags() *Flags {
	f := &Flags{}
	f.Reset()
	return f
}

// Reset the registers to the values found after the boot ROM has finished.
func (f *Flags) Reset() {
	f.requested = 0x01
	f.enabled = 0x00
}

func (f *Flags) String() string {
	s := strings.Builder{}
	s.WriteString("IF=")
	for i := Joypad; i >= VBlank; i-- {
		if f.requested&(1<<i) != 0 {
			s.WriteString("1")
		} else {
			s.WriteString("0")
		}
	}
	s.WriteString(" IE=")
	for i := Joypad; i >= VBlank; i-- {
		if f.enabled&(1<<i) != 0 {
			s.WriteString("1")
		} else {
			s.WriteString("0")
		}
	}
	return s.String()
}

// Request sets the IF bit for the interrupt.
func (f *Flags) Request(i Interrupt) {
	f.requested |= 1 << i
}

// Requested returns true if the IF bit for the interrupt is set.
func (f *Flags) Requested(i Interrupt) bool {
	return f.requested&(1<<i) != 0
}

// Pending returns true if any interrupt is both requested and enabled.
func (f *Flags) Pending() bool {
	return f.requested&f.enabled&mask != 0
}

// ReadIF returns the IF register. Unused bits read as one.
func (f *Flags) ReadIF() uint8 {
	return 0xe0 | f.requested
}

// WriteIF sets the IF register.
func (f *Flags) WriteIF(data uint8) {
	f.requested = data & mask
}

// ReadIE returns the IE register. All eight bits are read/write.
func (f *Flags) ReadIE() uint8 {
	return f.enabled
}

// WriteIE sets the IE register.
func (f *Flags) WriteIE(data uint8) {
	f.enabled = data
}
