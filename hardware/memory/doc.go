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

// Package memory implements the Game Boy memory bus. The Memory type is the
// only route between the CPU and the rest of the hardware.
//
// Different parts of the emulation see the memory through different
// interfaces, defined in the bus package:
//
//	                         DEBUGGER
//
//	                             |
//	                             |
//
//	                       debugger bus
//
//	                             |
//	                             |
//	                             \/
//
//	    CPU ---- cpu bus ---- MEMORY ---- register bus ---- TIMER
//	                                                  \
//	                             |                     \
//	                             |                      \---- SERIAL
//	                             \/
//
//	                         SCHEDULER
//
// Each access through the cpu bus (a read, a write or an idle cycle) takes one
// M-cycle and advances the scheduler by that amount after the access has been
// made. This is the only place where time moves forward in the emulation.
// Accesses through the debugger bus take no time and have no side effects.
//
// The address is first mapped to the primary address with the MapAddress()
// function in the memorymap package. The area of the address decides what
// happens next:
//
//	ROM0, ROMX, CartRAM	passed to the cartridge
//	VRAM, WRAM, OAM, HRAM	RAM
//	IO			IF, joypad, peripherals or stubbed storage
//	IE			interrupt enable register
//	Unusable		unmapped
//
// Reading an unmapped address returns 0xff and writing to one does nothing.
// Both are logged as warnings but are never errors. This is also true of
// addresses in the IO area that have no register.
//
// The registers of the LCD and the audio hardware are not emulated. They are
// stored so that they read back the value written. The exception is LY, which
// reads as 0x90 when the StubLCD preference is set.
package memory
