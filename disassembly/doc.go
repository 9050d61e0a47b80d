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

// Package disassembly formats instructions for presentation to the user. It
// is used by the TRACE and STEP modes of the command line and by the script
// package.
//
// An Entry can be created from the result of an executed instruction with
// FormatResult() or it can be decoded from memory without executing it with
// Decode(). Decoding uses the Peek() function of the debugger bus and so has no
// side effects and takes no time in the emulation.
//
//	dsm := disassembly.NewDisassembly(gb.Mem, gb.Mem.Cart)
//	_ = dsm.Write(os.Stdout, 0x0100, 10, disassembly.WriteAttr{ByteCode: true})
//
// Disassembly is linear. Data bytes are disassembled as though they were
// instructions.
package disassembly
