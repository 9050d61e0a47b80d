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

// Package instructions defines the instruction set of the Game Boy CPU (the
// SM83). There are two tables of definitions, each with 256 entries. The
// Unprefixed table is for single byte opcodes and the Prefixed table is for
// the opcodes following the 0xcb prefix byte.
//
// Every definition belongs to a Family. Instructions in the same family differ
// only in the registers or conditions they operate on, which are encoded in
// the bits of the opcode. The cpu package uses the family to decide how to
// execute an instruction and the disassembly package uses the mnemonic and
// operands to present it.
//
// Operands use the following placeholders for values that follow the opcode
// in memory:
//
//	n8	immediate 8 bit value
//	n16	immediate 16 bit value
//	a8	8 bit address in the 0xff00 page
//	a16	16 bit address
//	e8	signed 8 bit offset
//
// Cycles are counted in M-cycles, one for each memory access or internal
// delay.
package instructions
