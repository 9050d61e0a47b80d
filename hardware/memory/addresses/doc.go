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

// Package addresses contains information about Game Boy addresses and
// registers, including the canonical symbols for the I/O registers. The
// symbols are used by the disassembly package and in log messages.
//
// In addition to the canonical symbol map, there is a sparse array created
// from the map at run time and used by the Symbol() function. Accessing a map
// although very convenient, is noticeably slower than accessing an array.
package addresses
