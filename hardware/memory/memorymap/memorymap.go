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

package memorymap

// Area represents the different areas of memory
type Area int

func (a Area) String() string {
	switch a {
	case ROM0:
		return "ROM0"
	case ROMX:
		return "ROMX"
	case VRAM:
		return "VRAM"
	case CartRAM:
		return "CartRAM"
	case WRAM:
		return "WRAM"
	case Echo:
		return "Echo"
	case OAM:
		return "OAM"
	case Unusable:
		return "Unusable"
	case IO:
		return "IO"
	case HRAM:
		return "HRAM"
	case IE:
		return "IE"
	}

	return "undefined"
}

// The different memory areas in the Game Boy. Every address belongs to exactly
// one area.
const (
	ROM0 Area = iota
	ROMX
	VRAM
	CartRAM
	WRAM
	Echo
	OAM
	Unusable
	IO
	HRAM
	IE
)

// The origin and memory top for each area of memory.
//
// Implementations of the different memory areas will need to drag the address
// down into the the range of an array. For areas that are aligned on a power
// of two this can be done with (address^origin) rather than subtraction.
const (
	OriginROM0     = uint16(0x0000)
	MemtopROM0     = uint16(0x3fff)
	OriginROMX     = uint16(0x4000)
	MemtopROMX     = uint16(0x7fff)
	OriginVRAM     = uint16(0x8000)
	MemtopVRAM     = uint16(0x9fff)
	OriginCartRAM  = uint16(0xa000)
	MemtopCartRAM  = uint16(0xbfff)
	OriginWRAM     = uint16(0xc000)
	MemtopWRAM     = uint16(0xdfff)
	OriginEcho     = uint16(0xe000)
	MemtopEcho     = uint16(0xfdff)
	OriginOAM      = uint16(0xfe00)
	MemtopOAM      = uint16(0xfe9f)
	OriginUnusable = uint16(0xfea0)
	MemtopUnusable = uint16(0xfeff)
	OriginIO       = uint16(0xff00)
	MemtopIO       = uint16(0xff7f)
	OriginHRAM     = uint16(0xff80)
	MemtopHRAM     = uint16(0xfffe)
	OriginIE       = uint16(0xffff)
	MemtopIE       = uint16(0xffff)
)

// Memtop is the top most address of memory in the Game Boy.
const Memtop = uint16(0xffff)

// EchoOffset is the distance between an address in the echo area and the
// WRAM address that it mirrors.
const EchoOffset = OriginEcho - OriginWRAM

// Region is a single entry in the region table.
type Region struct {
	Area   Area
	Origin uint16
	Memtop uint16
}

// Regions is the fixed list of regions in the address space, in address
// order.
var Regions = [...]Region{
	{Area: ROM0, Origin: OriginROM0, Memtop: MemtopROM0},
	{Area: ROMX, Origin: OriginROMX, Memtop: MemtopROMX},
	{Area: VRAM, Origin: OriginVRAM, Memtop: MemtopVRAM},
	{Area: CartRAM, Origin: OriginCartRAM, Memtop: MemtopCartRAM},
	{Area: WRAM, Origin: OriginWRAM, Memtop: MemtopWRAM},
	{Area: Echo, Origin: OriginEcho, Memtop: MemtopEcho},
	{Area: OAM, Origin: OriginOAM, Memtop: MemtopOAM},
	{Area: Unusable, Origin: OriginUnusable, Memtop: MemtopUnusable},
	{Area: IO, Origin: OriginIO, Memtop: MemtopIO},
	{Area: HRAM, Origin: OriginHRAM, Memtop: MemtopHRAM},
	{Area: IE, Origin: OriginIE, Memtop: MemtopIE},
}

// the area for each 256 byte page. pages 0xfe and 0xff are split between
// more than one area and are marked as mixed
var pages [256]Area

const mixed = Area(-1)

func init() {
	for p := range pages {
		pages[p] = mixed
		lo := uint16(p) << 8
		hi := lo | 0xff
		for _, r := range Regions {
			if lo >= r.Origin && hi <= r.Memtop {
				pages[p] = r.Area
				break
			}
		}
	}
}

// AreaOf returns the area the address belongs to. Unlike MapAddress() the
// Echo area is reported as Echo.
func AreaOf(address uint16) Area {
	if a := pages[address>>8]; a != mixed {
		return a
	}

	// only the top two pages are mixed
	for _, r := range Regions[OAM:] {
		if address >= r.Origin && address <= r.Memtop {
			return r.Area
		}
	}

	panic("memorymap: address not covered by any region")
}

// MapAddress translates the address argument from mirror space to primary
// space and returns the area of the primary address. An address in the Echo
// area is returned as the WRAM address it mirrors.
func MapAddress(address uint16) (uint16, Area) {
	area := AreaOf(address)
	if area == Echo {
		return address - EchoOffset, WRAM
	}
	return address, area
}

// IsArea returns true if the address is in the specified area. Mirrors are
// not resolved.
func IsArea(address uint16, area Area) bool {
	return AreaOf(address) == area
}
