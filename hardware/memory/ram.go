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

package memory

import (
	"fmt"
	"strings"
)

// RAM represents an area of read/write memory in the Game Boy. It is used for
// the video RAM, work RAM, object attribute memory and high RAM areas.
type RAM struct {
	label  string
	origin uint16
	memtop uint16
	memory []uint8
}

// newRAM is the preferred method of initialisation for the RAM type.
func newRAM(label string, origin uint16, memtop uint16) *RAM {
	ram := &RAM{
		label:  label,
		origin: origin,
		memtop: memtop,
	}

	// allocate the mininmal amount of memory
	ram.memory = make([]uint8, memtop-origin+1)

	return ram
}

// String returns the contents of the RAM as a hex dump with sixteen bytes on
// each line.
func (ram *RAM) String() string {
	s := strings.Builder{}
	s.WriteString(fmt.Sprintf("%s\n", ram.label))
	s.WriteString("       -0 -1 -2 -3 -4 -5 -6 -7 -8 -9 -A -B -C -D -E -F\n")
	s.WriteString("     ---- -- -- -- -- -- -- -- -- -- -- -- -- -- -- --\n")

	// the first row starts at the nearest sixteen byte boundary
	row := ram.origin &^ 0x000f
	for a := uint32(row); a <= uint32(ram.memtop); a += 16 {
		s.WriteString(fmt.Sprintf("%03X- |", a>>4))
		for x := uint32(0); x < 16; x++ {
			if a+x < uint32(ram.origin) || a+x > uint32(ram.memtop) {
				s.WriteString("   ")
			} else {
				s.WriteString(fmt.Sprintf(" %02x", ram.memory[a+x-uint32(ram.origin)]))
			}
		}
		s.WriteString("\n")
	}
	return strings.TrimRight(s.String(), "\n")
}

// Label returns the name of the RAM area.
func (ram *RAM) Label() string {
	return ram.label
}

// Origin returns the first address of the RAM area.
func (ram *RAM) Origin() uint16 {
	return ram.origin
}

// Memtop returns the last address of the RAM area.
func (ram *RAM) Memtop() uint16 {
	return ram.memtop
}

// Clear sets the contents of RAM to zero.
func (ram *RAM) Clear() {
	clear(ram.memory)
}

// read and write assume that the address is in range.
func (ram *RAM) read(address uint16) uint8 {
	return ram.memory[address-ram.origin]
}

func (ram *RAM) write(address uint16, data uint8) {
	ram.memory[address-ram.origin] = data
}
