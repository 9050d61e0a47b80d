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

// Package hardware is the base package for the DMG Game Boy emulation. It and
// its sub-packages contain everything required for a headless emulation.
//
// The GameBoy type is the root of the emulation and contains external
// references to all the sub-systems. From here, the emulation can either be
// started to run continuously with the Run() function, or it can be stepped
// one instruction at a time with the Step() function.
//
// Time in the emulation is measured in T-cycles. The scheduler clock is the
// only clock and it is advanced by the memory bus, one M-cycle (four T-cycles)
// for every access made by the CPU. Peripherals such as the timer and the
// serial port schedule events against this clock.
//
// Multiple instances of GameBoy can exist at the same time. Each should be
// given its own instance.Instance.
package hardware
