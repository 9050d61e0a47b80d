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

// Package cpu emulates the Sharp LR35902 found in the DMG Game Boy. Like all
// 8-bit processors of the era, the CPU executes instructions according to the
// single byte value read from an address pointed to by the program counter.
// This single byte is the opcode and is looked up in the instruction table.
// Opcode 0xcb is a prefix and the byte following it is looked up in a second
// table.
//
// The instruction tables are built from the definitions in the instructions
// package. Each family of instructions has a single handler and the operands
// encoded in the opcode (the register, the register pair, the condition, the
// ALU operation) are bound to the handler when the table is built.
//
// The instance of the CPU type requires an instance of a bus.CPUBus
// implementation. Every Read(), Write() and Idle() call to the bus is one
// M-cycle (four T-cycles) and it is the bus that advances the clock. The CPU
// itself has no notion of time beyond counting the number of M-cycles in the
// LastResult field.
//
//	mc := cpu.NewCPU(ins, mem, irq)
//
//	for {
//		mc.ExecuteInstruction()
//		fmt.Println(mc.LastResult)
//	}
//
// Interrupts are not dispatched. The interrupt flags are consulted only to
// decide when to leave the halted state. The IME flag is maintained by the DI,
// EI and RETI instructions.
//
// Opcodes that have no instruction on the DMG (0xd3, 0xdb, 0xdd, 0xe3, 0xe4,
// 0xeb, 0xec, 0xed, 0xf4, 0xfc and 0xfd) are logged as an error and otherwise
// treated as a single cycle NOP.
package cpu
