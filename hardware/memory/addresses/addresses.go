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

package addresses

// EntryPoint is the address at which execution begins once the boot ROM has
// finished.
const EntryPoint = uint16(0x0100)

// Addresses of the I/O registers that are handled by the emulation. Registers
// for the LCD and audio hardware are only stored and are not listed here.
const (
	P1   = uint16(0xff00)
	SB   = uint16(0xff01)
	SC   = uint16(0xff02)
	DIV  = uint16(0xff04)
	TIMA = uint16(0xff05)
	TMA  = uint16(0xff06)
	TAC  = uint16(0xff07)
	IF   = uint16(0xff0f)
	LY   = uint16(0xff44)
	BOOT = uint16(0xff50)
	IE   = uint16(0xffff)
)

// CanonicalSymbols lists the I/O addresses along with the canonical names for
// those addresses.
var CanonicalSymbols = map[uint16]string{
	// joypad
	0xff00: "P1",

	// serial
	0xff01: "SB",
	0xff02: "SC",

	// timer
	0xff04: "DIV",
	0xff05: "TIMA",
	0xff06: "TMA",
	0xff07: "TAC",

	// interrupt request
	0xff0f: "IF",

	// audio
	0xff10: "NR10",
	0xff11: "NR11",
	0xff12: "NR12",
	0xff13: "NR13",
	0xff14: "NR14",
	0xff16: "NR21",
	0xff17: "NR22",
	0xff18: "NR23",
	0xff19: "NR24",
	0xff1a: "NR30",
	0xff1b: "NR31",
	0xff1c: "NR32",
	0xff1d: "NR33",
	0xff1e: "NR34",
	0xff20: "NR41",
	0xff21: "NR42",
	0xff22: "NR43",
	0xff23: "NR44",
	0xff24: "NR50",
	0xff25: "NR51",
	0xff26: "NR52",

	// lcd
	0xff40: "LCDC",
	0xff41: "STAT",
	0xff42: "SCY",
	0xff43: "SCX",
	0xff44: "LY",
	0xff45: "LYC",
	0xff46: "DMA",
	0xff47: "BGP",
	0xff48: "OBP0",
	0xff49: "OBP1",
	0xff4a: "WY",
	0xff4b: "WX",

	// boot rom
	0xff50: "BOOT",

	// interrupt enable
	0xffff: "IE",
}

// symbols for the 0xff00 page. built from CanonicalSymbols
var symbols [256]string

func init() {
	for a, s := range CanonicalSymbols {
		if a&0xff00 == 0xff00 {
			symbols[a&0x00ff] = s
		}
	}
}

// Symbol returns the canonical symbol for an address. The boolean return value
// is false if the address has no symbol.
func Symbol(address uint16) (string, bool) {
	if address&0xff00 != 0xff00 {
		return "", false
	}
	s := symbols[address&0x00ff]
	return s, s != ""
}
