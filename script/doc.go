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

// Package script runs Lua scripts against the emulation. It is intended for
// automated runs of test ROMs, which typically report their result through
// the serial port.
//
// Scripts have access to the gb table:
//
//	gb.step([n])		execute n instructions (default 1). returns the PC
//	gb.run(cycles)		run for the number of T-cycles. returns the number run
//	gb.frames(n)		run for n frames. returns the number of T-cycles run
//	gb.peek(address)	read memory without side effects
//	gb.poke(address, value)	write memory without side effects
//	gb.reg(name)		value of a register. eg. "A", "HL", "PC"
//	gb.serial()		everything sent through the serial port
//	gb.now()		value of the clock in T-cycles
//	gb.reset()		reset the CPU
//	gb.hardreset()		reset all hardware
//
// The print function writes to the output given to NewScript().
package script
