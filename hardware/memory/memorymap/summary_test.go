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

package memorymap_test

import (
	"testing"

	"github.com/jetsetilly/gopherboy/hardware/memory/memorymap"
	"github.com/jetsetilly/gopherboy/test"
)

const validMemMap = `0000 -> 3fff	ROM0
4000 -> 7fff	ROMX
8000 -> 9fff	VRAM
a000 -> bfff	CartRAM
c000 -> dfff	WRAM
e000 -> fdff	Echo
fe00 -> fe9f	OAM
fea0 -> feff	Unusable
ff00 -> ff7f	IO
ff80 -> fffe	HRAM
ffff -> ffff	IE
`

func TestSummary(t *testing.T) {
	test.ExpectEquality(t, memorymap.Summary(), validMemMap)
}

func TestRegionsAreContiguous(t *testing.T) {
	// every address is in exactly one region and the regions are in address
	// order with no gaps
	next := 0
	for _, r := range memorymap.Regions {
		test.ExpectEquality(t, int(r.Origin), next, r.Area)
		test.ExpectSuccess(t, r.Memtop >= r.Origin, r.Area)
		next = int(r.Memtop) + 1
	}
	test.ExpectEquality(t, next, 0x10000)

	for a := 0; a <= int(memorymap.Memtop); a++ {
		var count int
		for _, r := range memorymap.Regions {
			if uint16(a) >= r.Origin && uint16(a) <= r.Memtop {
				count++
				test.ExpectEquality(t, memorymap.AreaOf(uint16(a)), r.Area)
			}
		}
		test.ExpectEquality(t, count, 1, a)
	}
}

func TestMapAddress(t *testing.T) {
	a, area := memorymap.MapAddress(0xe123)
	test.ExpectEquality(t, a, uint16(0xc123))
	test.ExpectEquality(t, area, memorymap.WRAM)

	a, area = memorymap.MapAddress(0xfdff)
	test.ExpectEquality(t, a, uint16(0xddff))
	test.ExpectEquality(t, area, memorymap.WRAM)

	a, area = memorymap.MapAddress(0xff44)
	test.ExpectEquality(t, a, uint16(0xff44))
	test.ExpectEquality(t, area, memorymap.IO)

	test.ExpectSuccess(t, memorymap.IsArea(0xfea0, memorymap.Unusable))
	test.ExpectSuccess(t, memorymap.IsArea(0xffff, memorymap.IE))
	test.ExpectSuccess(t, memorymap.IsArea(0xe000, memorymap.Echo))
}
