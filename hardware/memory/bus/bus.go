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

package bus

// CPUBus defines the operations for the memory system when accessed from the
// CPU. Addresses are not mapped before being passed to the bus, the bus
// implementation is responsible for resolving mirrors.
type CPUBus interface {
	Read(address uint16) uint8
	Write(address uint16, data uint8)

	// Idle is an M-cycle in which the CPU does not access memory but which
	// still takes time
	Idle()
}

// DebuggerBus defines the side effect free operations for memory. Peek()
// should return the same value a Read() would return at the same instant.
type DebuggerBus interface {
	Peek(address uint16) uint8
	Poke(address uint16, data uint8) error
}

// RegisterBus is implemented by the peripherals mapped into the I/O area. The
// boolean return value indicates whether the peripheral owns the address.
//
// ReadRegister() must not have side effects. It is used by both the CPUBus
// and the DebuggerBus.
type RegisterBus interface {
	ReadRegister(address uint16) (uint8, bool)
	WriteRegister(address uint16, data uint8) bool
}
