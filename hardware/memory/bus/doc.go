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

// Package bus is used to define access patterns for different areas of the
// emulation to Game Boy memory. The CPU accesses memory through the CPUBus
// interface. Every access takes one M-cycle and so every call to Read(),
// Write() or Idle() moves the emulation clock forward.
//
// The DebuggerBus is for the exclusive use of debuggers, disassemblers and
// scripts. Access through the DebuggerBus never moves the clock and never
// has any side effect on the emulated hardware.
//
// The RegisterBus is implemented by the hardware that lives in the I/O area
// of memory. The memory package dispatches I/O accesses to the RegisterBus of
// the correct peripheral.
package bus
