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

package test

// BuildROM creates a Game Boy cartridge image with a valid header. The
// program is placed at the entry point (0x0100) and must not be longer than
// 0x34 bytes, which is the space before the header title.
//
// The size argument is the size of the image in bytes. The value of the ROM
// size field in the header is chosen to match.
func BuildROM(cartType uint8, size int, program []uint8) []uint8 {
	const entry = 0x0100
	const title = 0x0134

	if len(program) > title-entry {
		panic("test: program too long for entry point area")
	}
	if size < 0x0150 {
		panic("test: ROM size too small for header")
	}

	data := make([]uint8, size)
	copy(data[entry:], program)
	copy(data[title:], "GOPHERBOY")
	data[0x0147] = cartType

	var code uint8
	for 32768<<code < size {
		code++
	}
	data[0x0148] = code

	// 8KB of RAM for the types that have RAM
	switch cartType {
	case 0x02, 0x03, 0x08, 0x09:
		data[0x0149] = 0x02
	}

	var x uint8
	for i := 0x0134; i <= 0x014c; i++ {
		x = x - data[i] - 1
	}
	data[0x014d] = x

	return data
}
