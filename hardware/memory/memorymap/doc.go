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

// Package memorymap describes how the 64k address space of the Game Boy is
// divided into areas. It contains the origin and memtop of each area and the
// MapAddress() function which resolves the echo mirror of WRAM.
//
// The Regions array is the region table used by the memory package when
// dispatching bus accesses. A 256 entry page table is built from the Regions
// array at init time so that the area of most addresses can be found with a
// single array lookup. Only the top two pages of memory are split between
// areas.
//
// The Summary() function gives a useful reference of the memory map:
//
//	0000 -> 3fff	ROM0
//	4000 -> 7fff	ROMX
//	8000 -> 9fff	VRAM
//	a000 -> bfff	CartRAM
//	c000 -> dfff	WRAM
//	e000 -> fdff	Echo
//	fe00 -> fe9f	OAM
//	fea0 -> feff	Unusable
//	ff00 -> ff7f	IO
//	ff80 -> fffe	HRAM
//	ffff -> ffff	IE
package memorymap
