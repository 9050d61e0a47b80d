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

// Package cartridge fully implements loading of the different cartridge
// formats and the bank switching of those formats.
//
// The Cartridge type presents the cartridge to the memory package through the
// Read() and Write() functions, which accept addresses in the ROM0, ROMX and
// CartRAM areas. The Peek() and Poke() functions are for the debugger.
//
// When a cartridge is attached the header is validated. The discriminated
// results of the attachment are the error patterns BadSize, InvalidChecksum and
// UnsupportedMapper. Use the curated package to test for them or the
// Classify() function to turn an error into a Result.
//
// Currently supported cartridge types (the byte at 0x0147 of the header):
//
//	0x00		ROM only
//	0x01 - 0x03	MBC1, with optional RAM and battery
//	0x08 - 0x09	ROM and RAM, with optional battery
//
// Battery backed RAM is not saved to disk.
package cartridge
