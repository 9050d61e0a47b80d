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

// Package debugger implements a simple interactive stepper for the emulation.
// Each command is a single key press. The input is expected to be a terminal
// in cbreak mode (see the easyterm package) but can be any io.Reader.
//
// The commands are:
//
//	s, space, enter, cursor down	step one instruction
//	f				run one frame
//	l				list instructions at the program counter
//	i				show the state of the hardware
//	r				reset the CPU
//	R				hard reset
//	h, ?				help
//	q, ctrl-c			quit
//
// The effect of every step is printed as a disassembly entry followed by the
// CPU registers.
package debugger
