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

// Package registers implements the registers of the Game Boy CPU. The eight
// bit registers are implemented by the Register type and the flags register
// by the StatusRegister type. The Pair type combines two eight bit registers
// into a sixteen bit register. The PC and SP are implemented by Register16.
//
// Register operations return the carry and half-carry information that the
// CPU needs to set the flags, rather than changing the status register
// directly. For instance, in the CPU we might have this sequence of function
// calls:
//
//	carry, half := a.Add(1, false)
//	f.Zero = a.IsZero()
//	f.Subtract = false
//	f.HalfCarry = half
//	f.Carry = carry
package registers
