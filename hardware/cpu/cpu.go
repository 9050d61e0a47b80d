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

package cpu

import (
	"fmt"

	"github.com/jetsetilly/gopherboy/hardware/cpu/execution"
	"github.com/jetsetilly/gopherboy/hardware/cpu/instructions"
	"github.com/jetsetilly/gopherboy/hardware/cpu/registers"
	"github.com/jetsetilly/gopherboy/hardware/instance"
	"github.com/jetsetilly/gopherboy/hardware/memory/bus"
)

// Interrupts is the view the CPU has of the interrupt flags. Interrupts are
// not dispatched, the CPU only needs to know when to leave the halted state.
type Interrupts interface {
	Pending() bool
}

// CPU implements the Sharp LR35902 found in the DMG Game Boy. Register logic
// is implemented by the Register type in the registers sub-package.
type CPU struct {
	ins *instance.Instance
	mem bus.CPUBus
	irq Interrupts

	A  registers.Register
	F  registers.StatusRegister
	B  registers.Register
	C  registers.Register
	D  registers.Register
	E  registers.Register
	H  registers.Register
	L  registers.Register
	SP registers.Register16
	PC registers.Register16

	// register pairs are views of the eight bit registers
	AF registers.Pair
	BC registers.Pair
	DE registers.Pair
	HL registers.Pair

	// some operations only need an accumulator
	acc8 registers.Register

	// interrupt master enable
	IME bool

	// the number of instructions remaining before IME is set. EI sets this to
	// two so that IME is set at the end of the following instruction
	imeDelay int

	// the CPU has executed a HALT instruction and is waiting for an interrupt
	// to be pending
	Halted bool

	// HALT was executed with IME off and an interrupt already pending. the PC
	// fails to increment after the next opcode fetch
	haltBug bool

	// last result. the address field is guaranteed to be always valid except
	// when the CPU has just been reset
	LastResult execution.Result
}

// NewCPU is the preferred method of initialisation for the CPU structure. The
// CPU is in the post boot ROM state.
func NewCPU(ins *instance.Instance, mem bus.CPUBus, irq Interrupts) *CPU {
	if mem == nil {
		panic("cpu: nil memory bus")
	}
	if irq == nil {
		panic("cpu: nil interrupts")
	}

	mc := &CPU{
		ins:  ins,
		mem:  mem,
		irq:  irq,
		A:    registers.NewRegister(0, "A"),
		F:    registers.NewStatusRegister(),
		B:    registers.NewRegister(0, "B"),
		C:    registers.NewRegister(0, "C"),
		D:    registers.NewRegister(0, "D"),
		E:    registers.NewRegister(0, "E"),
		H:    registers.NewRegister(0, "H"),
		L:    registers.NewRegister(0, "L"),
		SP:   registers.NewRegister16(0, "SP"),
		PC:   registers.NewRegister16(0, "PC"),
		acc8: registers.NewRegister(0, "accumulator"),
	}

	mc.AF = registers.NewPair(&mc.A, &mc.F)
	mc.BC = registers.NewPair(&mc.B, &mc.C)
	mc.DE = registers.NewPair(&mc.D, &mc.E)
	mc.HL = registers.NewPair(&mc.H, &mc.L)

	mc.Reset()

	return mc
}

func (mc *CPU) String() string {
	s := fmt.Sprintf("%s %s %s %s %s %s [%s]", mc.PC, mc.SP, mc.AF, mc.BC, mc.DE, mc.HL, mc.F)
	if mc.IME {
		s = fmt.Sprintf("%s ime", s)
	}
	if mc.Halted {
		s = fmt.Sprintf("%s halted", s)
	}
	return s
}

// Reset reinitialises all registers to the values they have when the boot ROM
// hands over control to the cartridge.
func (mc *CPU) Reset() {
	mc.LastResult.Reset()
	mc.AF.Load(0x01b0)
	mc.BC.Load(0x0013)
	mc.DE.Load(0x00d8)
	mc.HL.Load(0x014d)
	mc.SP.Load(0xfffe)
	mc.PC.Load(0x0100)
	mc.IME = false
	mc.imeDelay = 0
	mc.Halted = false
	mc.haltBug = false
}

// read a byte from the bus. takes one M-cycle.
func (mc *CPU) read8(address uint16) uint8 {
	mc.LastResult.Cycles++
	return mc.mem.Read(address)
}

// write a byte to the bus. takes one M-cycle.
func (mc *CPU) write8(address uint16, data uint8) {
	mc.LastResult.Cycles++
	mc.mem.Write(address, data)
}

// an internal cycle. takes one M-cycle.
func (mc *CPU) idle() {
	mc.LastResult.Cycles++
	mc.mem.Idle()
}

func (mc *CPU) fetchOpcode() uint8 {
	v := mc.read8(mc.PC.Increment())
	mc.LastResult.ByteCount++
	return v
}

// fetch an eight bit operand.
func (mc *CPU) fetch8() uint8 {
	v := mc.read8(mc.PC.Increment())
	mc.LastResult.ByteCount++
	mc.LastResult.InstructionData = uint16(v)
	return v
}

// fetch a sixteen bit operand, low byte first.
func (mc *CPU) fetch16() uint16 {
	lo := mc.fetch8()
	hi := mc.fetch8()
	v := uint16(hi)<<8 | uint16(lo)
	mc.LastResult.InstructionData = v
	return v
}

func (mc *CPU) push16(v uint16) {
	mc.write8(mc.SP.Decrement(), uint8(v>>8))
	mc.write8(mc.SP.Decrement(), uint8(v))
}

func (mc *CPU) pop16() uint16 {
	lo := mc.read8(mc.SP.Increment())
	hi := mc.read8(mc.SP.Increment())
	return uint16(hi)<<8 | uint16(lo)
}

// the register identified by the three bit index used in opcodes. the index
// for the memory location pointed to by HL returns nil.
func (mc *CPU) reg(i uint8) *registers.Register {
	switch i {
	case 0:
		return &mc.B
	case 1:
		return &mc.C
	case 2:
		return &mc.D
	case 3:
		return &mc.E
	case 4:
		return &mc.H
	case 5:
		return &mc.L
	case 7:
		return &mc.A
	}
	return nil
}

func (mc *CPU) readR(i uint8) uint8 {
	if i == instructions.HLIndirect {
		return mc.read8(mc.HL.Value())
	}
	return mc.reg(i).Value()
}

func (mc *CPU) writeR(i uint8, data uint8) {
	if i == instructions.HLIndirect {
		mc.write8(mc.HL.Value(), data)
		return
	}
	mc.reg(i).Load(data)
}

// the register pair identified by the two bit index used in opcodes. index 3
// is SP.
func (mc *CPU) readRP(p uint8) uint16 {
	switch p {
	case 0:
		return mc.BC.Value()
	case 1:
		return mc.DE.Value()
	case 2:
		return mc.HL.Value()
	}
	return mc.SP.Value()
}

func (mc *CPU) writeRP(p uint8, data uint16) {
	switch p {
	case 0:
		mc.BC.Load(data)
	case 1:
		mc.DE.Load(data)
	case 2:
		mc.HL.Load(data)
	default:
		mc.SP.Load(data)
	}
}

// as readRP() but index 3 is AF. used by PUSH and POP.
func (mc *CPU) readRP2(p uint8) uint16 {
	if p == 3 {
		return mc.AF.Value()
	}
	return mc.readRP(p)
}

func (mc *CPU) writeRP2(p uint8, data uint16) {
	if p == 3 {
		mc.AF.Load(data)
		return
	}
	mc.writeRP(p, data)
}

// the condition identified by the two bit index used in opcodes.
func (mc *CPU) condition(cc uint8) bool {
	switch cc {
	case 0:
		return !mc.F.Zero
	case 1:
		return mc.F.Zero
	case 2:
		return !mc.F.Carry
	}
	return mc.F.Carry
}

// ExecuteInstruction steps the CPU forward one instruction. If the CPU is
// halted and no interrupt is pending then the CPU idles for one M-cycle.
//
// The LastResult field contains the result of the instruction.
func (mc *CPU) ExecuteInstruction() {
	mc.LastResult.Reset()
	mc.LastResult.Address = mc.PC.Value()

	defer mc.enableInterrupts()

	if mc.Halted {
		if !mc.irq.Pending() {
			mc.idle()
			mc.LastResult.Halted = true
			mc.LastResult.Final = true
			return
		}
		mc.Halted = false
	}

	// the halt bug means the opcode is read but the PC is not incremented
	var opcode uint8
	if mc.haltBug {
		mc.haltBug = false
		opcode = mc.read8(mc.PC.Value())
		mc.LastResult.ByteCount++
	} else {
		opcode = mc.fetchOpcode()
	}

	defn := instructions.Unprefixed[opcode]
	mc.LastResult.Defn = defn
	unprefixed[opcode](mc, defn)

	mc.LastResult.Final = true
}

// EI takes effect after the instruction that follows it.
func (mc *CPU) enableInterrupts() {
	if mc.imeDelay > 0 {
		mc.imeDelay--
		if mc.imeDelay == 0 {
			mc.IME = true
		}
	}
}

// execute the instruction following the 0xcb prefix.
func (mc *CPU) executePrefixed() {
	opcode := mc.fetchOpcode()
	defn := instructions.Prefixed[opcode]
	mc.LastResult.Defn = defn
	prefixed[opcode](mc, defn)
}

func (mc *CPU) halt() {
	if !mc.IME && mc.irq.Pending() {
		mc.haltBug = true
		return
	}
	mc.Halted = true
}

func (mc *CPU) unimplemented(defn *instructions.Definition) {
	mc.LastResult.Unimplemented = true
	if mc.ins != nil {
		mc.ins.Log.Errorf(mc.ins, "cpu", "unimplemented opcode %#02x at %#04x", defn.OpCode, mc.LastResult.Address)
	}
}
