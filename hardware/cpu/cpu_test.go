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

package cpu_test

import (
	"strings"
	"testing"

	"github.com/jetsetilly/gopherboy/hardware/cpu"
	"github.com/jetsetilly/gopherboy/hardware/cpu/instructions"
	"github.com/jetsetilly/gopherboy/hardware/instance"
	"github.com/jetsetilly/gopherboy/test"
)

// mockMem is a flat 64KB memory that counts the number of bus cycles.
type mockMem struct {
	data   [0x10000]uint8
	cycles int
}

func (mem *mockMem) Read(address uint16) uint8 {
	mem.cycles++
	return mem.data[address]
}

func (mem *mockMem) Write(address uint16, data uint8) {
	mem.cycles++
	mem.data[address] = data
}

func (mem *mockMem) Idle() {
	mem.cycles++
}

// load program into memory at the address the CPU starts at after a reset.
func (mem *mockMem) load(program ...uint8) {
	copy(mem.data[0x0100:], program)
}

type mockIRQ struct {
	pending bool
}

func (irq *mockIRQ) Pending() bool {
	return irq.pending
}

type harness struct {
	ins *instance.Instance
	mem *mockMem
	irq *mockIRQ
	mc  *cpu.CPU
}

func newHarness(t *testing.T, program ...uint8) *harness {
	t.Helper()
	ins, err := instance.NewInstance(instance.Test, nil)
	test.DemandSuccess(t, err)
	h := &harness{
		ins: ins,
		mem: &mockMem{},
		irq: &mockIRQ{},
	}
	h.mc = cpu.NewCPU(ins, h.mem, h.irq)
	h.mem.load(program...)
	return h
}

// execute n instructions. the result of every instruction must be valid.
func (h *harness) step(t *testing.T, n int) {
	t.Helper()
	for range n {
		h.mem.cycles = 0
		h.mc.ExecuteInstruction()
		test.DemandSuccess(t, h.mc.LastResult.IsValid(), h.mc.LastResult.String())
		test.DemandEquality(t, h.mem.cycles, h.mc.LastResult.Cycles, h.mc.LastResult.String())
	}
}

func TestReset(t *testing.T) {
	h := newHarness(t)
	test.ExpectEquality(t, h.mc.String(), "PC=0x0100 SP=0xfffe AF=0x01b0 BC=0x0013 DE=0x00d8 HL=0x014d [ZnHC]")
	test.ExpectEquality(t, h.mc.IME, false)
	test.ExpectEquality(t, h.mc.Halted, false)
}

func TestNOP(t *testing.T) {
	h := newHarness(t, 0x00)
	before := h.mc.String()
	h.step(t, 1)
	test.ExpectEquality(t, h.mc.PC.Value(), uint16(0x0101))
	test.ExpectEquality(t, h.mc.LastResult.Cycles, 1)

	// nothing except the PC has changed
	h.mc.PC.Load(0x0100)
	test.ExpectEquality(t, h.mc.String(), before)
}

func TestLoad16Immediate(t *testing.T) {
	h := newHarness(t, 0x01, 0x34, 0x12)
	h.step(t, 1)
	test.ExpectEquality(t, h.mc.BC.Value(), uint16(0x1234))
	test.ExpectEquality(t, h.mc.PC.Value(), uint16(0x0103))
	test.ExpectEquality(t, h.mc.LastResult.Cycles, 3)
	test.ExpectEquality(t, h.mc.LastResult.InstructionData, uint16(0x1234))
}

func TestIncDecRoundTrip(t *testing.T) {
	// INC B; DEC B
	h := newHarness(t, 0x04, 0x05)

	for v := range 256 {
		carry := v%2 == 0

		h.mc.PC.Load(0x0100)
		h.mc.B.Load(uint8(v))
		h.mc.F.Carry = carry

		h.step(t, 2)
		test.ExpectEquality(t, h.mc.B.Value(), uint8(v))
		test.ExpectEquality(t, h.mc.F.Carry, carry)
		test.ExpectEquality(t, h.mc.F.Subtract, true)
		test.ExpectEquality(t, h.mc.F.Zero, v == 0)
	}
}

func TestIncDecMemory(t *testing.T) {
	// LD HL,$c000; INC [HL]; DEC [HL]; DEC [HL]
	h := newHarness(t, 0x21, 0x00, 0xc0, 0x34, 0x35, 0x35)
	h.step(t, 2)
	test.ExpectEquality(t, h.mem.data[0xc000], uint8(0x01))
	test.ExpectEquality(t, h.mc.LastResult.Cycles, 3)
	h.step(t, 1)
	test.ExpectEquality(t, h.mc.F.Zero, true)
	h.step(t, 1)
	test.ExpectEquality(t, h.mem.data[0xc000], uint8(0xff))
	test.ExpectEquality(t, h.mc.F.HalfCarry, true)
	test.ExpectEquality(t, h.mc.F.Zero, false)
}

func TestAddOverflow(t *testing.T) {
	// LD A,$ff; ADD A,$01
	h := newHarness(t, 0x3e, 0xff, 0xc6, 0x01)
	h.mc.F.Load(0x00)
	h.step(t, 2)
	test.ExpectEquality(t, h.mc.A.Value(), uint8(0x00))
	test.ExpectEquality(t, h.mc.F.Zero, true)
	test.ExpectEquality(t, h.mc.F.Subtract, false)
	test.ExpectEquality(t, h.mc.F.HalfCarry, true)
	test.ExpectEquality(t, h.mc.F.Carry, true)
}

func TestSubUnderflow(t *testing.T) {
	// LD A,$00; SUB A,$01
	h := newHarness(t, 0x3e, 0x00, 0xd6, 0x01)
	h.mc.F.Load(0x00)
	h.step(t, 2)
	test.ExpectEquality(t, h.mc.A.Value(), uint8(0xff))
	test.ExpectEquality(t, h.mc.F.Zero, false)
	test.ExpectEquality(t, h.mc.F.Subtract, true)
	test.ExpectEquality(t, h.mc.F.HalfCarry, true)
	test.ExpectEquality(t, h.mc.F.Carry, true)
}

func TestALU(t *testing.T) {
	// LD A,$f0; LD B,$0f; AND A,B; OR A,B; XOR A,A; CP A,$01; ADC A,$00
	h := newHarness(t, 0x3e, 0xf0, 0x06, 0x0f, 0xa0, 0xb0, 0xaf, 0xfe, 0x01, 0xce, 0x00)
	h.step(t, 3)
	test.ExpectEquality(t, h.mc.A.Value(), uint8(0x00))
	test.ExpectEquality(t, h.mc.F.String(), "ZnHc")
	h.step(t, 1)
	test.ExpectEquality(t, h.mc.A.Value(), uint8(0x0f))
	test.ExpectEquality(t, h.mc.F.String(), "znhc")
	h.step(t, 1)
	test.ExpectEquality(t, h.mc.A.Value(), uint8(0x00))
	test.ExpectEquality(t, h.mc.F.String(), "Znhc")

	// CP does not change A
	h.step(t, 1)
	test.ExpectEquality(t, h.mc.A.Value(), uint8(0x00))
	test.ExpectEquality(t, h.mc.F.String(), "zNHC")

	// ADC uses the carry from CP
	h.step(t, 1)
	test.ExpectEquality(t, h.mc.A.Value(), uint8(0x01))
	test.ExpectEquality(t, h.mc.F.String(), "znhc")
}

func TestPushPopRoundTrip(t *testing.T) {
	// PUSH BC; POP DE
	h := newHarness(t, 0xc5, 0xd1)

	for v := range 0x10000 {
		h.mc.PC.Load(0x0100)
		h.mc.BC.Load(uint16(v))
		h.mc.DE.Load(^uint16(v))

		h.step(t, 2)
		test.DemandEquality(t, h.mc.DE.Value(), uint16(v))
		test.DemandEquality(t, h.mc.SP.Value(), uint16(0xfffe))
	}

	// high byte is pushed first
	test.ExpectEquality(t, h.mem.data[0xfffd], uint8(0xff))
	test.ExpectEquality(t, h.mem.data[0xfffc], uint8(0xff))
}

func TestPopAF(t *testing.T) {
	// LD BC,$12ff; PUSH BC; POP AF
	h := newHarness(t, 0x01, 0xff, 0x12, 0xc5, 0xf1)
	h.step(t, 3)
	test.ExpectEquality(t, h.mc.AF.Value(), uint16(0x12f0))
	test.ExpectEquality(t, h.mc.F.Value()&0x0f, uint8(0x00))
}

func TestDAA(t *testing.T) {
	type daa struct {
		a     uint8
		op    uint8
		v     uint8
		r     uint8
		carry bool
	}

	tests := []daa{
		// ADD A,n8
		{a: 0x09, op: 0xc6, v: 0x01, r: 0x10},
		{a: 0x45, op: 0xc6, v: 0x38, r: 0x83},
		{a: 0x99, op: 0xc6, v: 0x01, r: 0x00, carry: true},
		{a: 0x50, op: 0xc6, v: 0x50, r: 0x00, carry: true},

		// SUB A,n8
		{a: 0x10, op: 0xd6, v: 0x01, r: 0x09},
		{a: 0x00, op: 0xd6, v: 0x01, r: 0x99, carry: true},
		{a: 0x42, op: 0xd6, v: 0x12, r: 0x30},
	}

	for _, d := range tests {
		// LD A,a; op v; DAA
		h := newHarness(t, 0x3e, d.a, d.op, d.v, 0x27)
		h.step(t, 3)
		test.ExpectEquality(t, h.mc.A.Value(), d.r, d)
		test.ExpectEquality(t, h.mc.F.Carry, d.carry, d)
		test.ExpectEquality(t, h.mc.F.Zero, d.r == 0, d)
		test.ExpectEquality(t, h.mc.F.HalfCarry, false, d)
	}
}

func TestRotateA(t *testing.T) {
	// LD A,$80; RLCA; RRA; RRA
	h := newHarness(t, 0x3e, 0x80, 0x07, 0x1f, 0x1f)
	h.step(t, 2)
	test.ExpectEquality(t, h.mc.A.Value(), uint8(0x01))
	test.ExpectEquality(t, h.mc.F.String(), "znhC")
	h.step(t, 1)
	test.ExpectEquality(t, h.mc.A.Value(), uint8(0x80))
	test.ExpectEquality(t, h.mc.F.String(), "znhC")

	// zero flag is always cleared
	h.mc.A.Load(0x01)
	h.mc.F.Carry = false
	h.step(t, 1)
	test.ExpectEquality(t, h.mc.A.Value(), uint8(0x00))
	test.ExpectEquality(t, h.mc.F.String(), "znhC")
}

func TestPrefixed(t *testing.T) {
	// SWAP A; BIT 7,H; SET 7,H; RES 0,L; SRL [HL]
	h := newHarness(t, 0xcb, 0x37, 0xcb, 0x7c, 0xcb, 0xfc, 0xcb, 0x85, 0xcb, 0x3e)

	h.step(t, 1)
	test.ExpectEquality(t, h.mc.A.Value(), uint8(0x10))
	test.ExpectEquality(t, h.mc.F.String(), "znhc")
	test.ExpectEquality(t, h.mc.LastResult.Defn.Prefixed, true)
	test.ExpectEquality(t, h.mc.LastResult.Defn.Syntax(), "SWAP A")

	h.step(t, 1)
	test.ExpectEquality(t, h.mc.F.String(), "ZnHc")

	h.step(t, 2)
	test.ExpectEquality(t, h.mc.HL.Value(), uint16(0x814c))

	h.mem.data[0x814c] = 0x03
	h.step(t, 1)
	test.ExpectEquality(t, h.mem.data[0x814c], uint8(0x01))
	test.ExpectEquality(t, h.mc.F.String(), "znhC")
	test.ExpectEquality(t, h.mc.LastResult.Cycles, 4)
}

func TestIndirectLoads(t *testing.T) {
	// LD HL,$c000; LD [HL+],A; LD [HL-],A; LD A,[HL-]
	h := newHarness(t, 0x21, 0x00, 0xc0, 0x22, 0x32, 0x3a)
	h.mem.data[0xc001] = 0x55
	h.step(t, 2)
	test.ExpectEquality(t, h.mem.data[0xc000], uint8(0x01))
	test.ExpectEquality(t, h.mc.HL.Value(), uint16(0xc001))
	h.step(t, 1)
	test.ExpectEquality(t, h.mem.data[0xc001], uint8(0x01))
	test.ExpectEquality(t, h.mc.HL.Value(), uint16(0xc000))
	h.mem.data[0xc000] = 0x55
	h.step(t, 1)
	test.ExpectEquality(t, h.mc.A.Value(), uint8(0x55))
	test.ExpectEquality(t, h.mc.HL.Value(), uint16(0xbfff))
}

func TestHighLoads(t *testing.T) {
	// LDH [$80],A; LD C,$81; LDH [C],A; LDH A,[$82]
	h := newHarness(t, 0xe0, 0x80, 0x0e, 0x81, 0xe2, 0xf0, 0x82)
	h.mem.data[0xff82] = 0x99
	h.step(t, 4)
	test.ExpectEquality(t, h.mem.data[0xff80], uint8(0x01))
	test.ExpectEquality(t, h.mem.data[0xff81], uint8(0x01))
	test.ExpectEquality(t, h.mc.A.Value(), uint8(0x99))
}

func TestStackPointer(t *testing.T) {
	// LD SP,$fff8; ADD SP,$08; LD HL,SP+$ff; LD [$c000],SP; LD SP,HL
	h := newHarness(t, 0x31, 0xf8, 0xff, 0xe8, 0x08, 0xf8, 0xff, 0x08, 0x00, 0xc0, 0xf9)
	h.step(t, 2)
	test.ExpectEquality(t, h.mc.SP.Value(), uint16(0x0000))
	test.ExpectEquality(t, h.mc.F.String(), "znHC")

	h.step(t, 1)
	test.ExpectEquality(t, h.mc.HL.Value(), uint16(0xffff))
	test.ExpectEquality(t, h.mc.F.String(), "znhc")

	h.step(t, 1)
	test.ExpectEquality(t, h.mem.data[0xc000], uint8(0x00))
	test.ExpectEquality(t, h.mem.data[0xc001], uint8(0x00))

	h.step(t, 1)
	test.ExpectEquality(t, h.mc.SP.Value(), uint16(0xffff))
}

func TestAddHL(t *testing.T) {
	// LD HL,$0fff; LD BC,$0001; ADD HL,BC; ADD HL,HL
	h := newHarness(t, 0x21, 0xff, 0x0f, 0x01, 0x01, 0x00, 0x09, 0x29)
	h.mc.F.Zero = true
	h.step(t, 3)
	test.ExpectEquality(t, h.mc.HL.Value(), uint16(0x1000))
	test.ExpectEquality(t, h.mc.F.String(), "ZnHc")
	h.mc.HL.Load(0x8000)
	h.step(t, 1)
	test.ExpectEquality(t, h.mc.HL.Value(), uint16(0x0000))
	test.ExpectEquality(t, h.mc.F.String(), "ZnhC")
}

func TestJumpRelative(t *testing.T) {
	// JR NZ,+2; NOP; NOP; JR -2
	h := newHarness(t, 0x20, 0x02, 0x00, 0x00, 0x18, 0xfe)

	// Z flag is set after reset so the branch is not taken
	h.step(t, 1)
	test.ExpectEquality(t, h.mc.PC.Value(), uint16(0x0102))
	test.ExpectEquality(t, h.mc.LastResult.Cycles, 2)
	test.ExpectEquality(t, h.mc.LastResult.BranchSuccess, false)

	h.mc.PC.Load(0x0100)
	h.mc.F.Zero = false
	h.step(t, 1)
	test.ExpectEquality(t, h.mc.PC.Value(), uint16(0x0104))
	test.ExpectEquality(t, h.mc.LastResult.Cycles, 3)
	test.ExpectEquality(t, h.mc.LastResult.BranchSuccess, true)

	// jump to self
	h.step(t, 1)
	test.ExpectEquality(t, h.mc.PC.Value(), uint16(0x0104))
}

func TestCallReturn(t *testing.T) {
	// CALL $0200
	h := newHarness(t, 0xcd, 0x00, 0x02)

	// RET Z; RET
	h.mem.data[0x0200] = 0xc8
	h.mem.data[0x0201] = 0xc9

	h.step(t, 1)
	test.ExpectEquality(t, h.mc.PC.Value(), uint16(0x0200))
	test.ExpectEquality(t, h.mc.SP.Value(), uint16(0xfffc))
	test.ExpectEquality(t, h.mem.data[0xfffd], uint8(0x01))
	test.ExpectEquality(t, h.mem.data[0xfffc], uint8(0x03))
	test.ExpectEquality(t, h.mc.LastResult.Cycles, 6)

	h.mc.F.Zero = false
	h.step(t, 1)
	test.ExpectEquality(t, h.mc.PC.Value(), uint16(0x0201))
	test.ExpectEquality(t, h.mc.LastResult.Cycles, 2)

	h.step(t, 1)
	test.ExpectEquality(t, h.mc.PC.Value(), uint16(0x0103))
	test.ExpectEquality(t, h.mc.SP.Value(), uint16(0xfffe))
	test.ExpectEquality(t, h.mc.LastResult.Cycles, 4)
}

func TestRestart(t *testing.T) {
	// RST $38
	h := newHarness(t, 0xff)
	h.step(t, 1)
	test.ExpectEquality(t, h.mc.PC.Value(), uint16(0x0038))
	test.ExpectEquality(t, h.mc.SP.Value(), uint16(0xfffc))
	test.ExpectEquality(t, h.mem.data[0xfffc], uint8(0x01))
}

func TestInterruptMasterEnable(t *testing.T) {
	// EI; NOP; DI; EI; DI; NOP; RETI
	h := newHarness(t, 0xfb, 0x00, 0xf3, 0xfb, 0xf3, 0x00, 0xd9)

	h.step(t, 1)
	test.ExpectEquality(t, h.mc.IME, false)
	h.step(t, 1)
	test.ExpectEquality(t, h.mc.IME, true)
	h.step(t, 1)
	test.ExpectEquality(t, h.mc.IME, false)

	// DI cancels a pending EI
	h.step(t, 3)
	test.ExpectEquality(t, h.mc.IME, false)

	// RETI enables interrupts immediately
	h.step(t, 1)
	test.ExpectEquality(t, h.mc.IME, true)
}

func TestHalt(t *testing.T) {
	// HALT; INC A
	h := newHarness(t, 0x76, 0x3c)

	h.step(t, 1)
	test.ExpectEquality(t, h.mc.Halted, true)
	test.ExpectEquality(t, h.mc.PC.Value(), uint16(0x0101))

	// halted for as long as no interrupt is pending
	for range 10 {
		h.step(t, 1)
		test.ExpectEquality(t, h.mc.LastResult.Halted, true)
		test.ExpectEquality(t, h.mc.LastResult.Cycles, 1)
		test.ExpectEquality(t, h.mc.PC.Value(), uint16(0x0101))
	}

	h.irq.pending = true
	h.step(t, 1)
	test.ExpectEquality(t, h.mc.Halted, false)
	test.ExpectEquality(t, h.mc.A.Value(), uint8(0x02))
	test.ExpectEquality(t, h.mc.PC.Value(), uint16(0x0102))
}

func TestHaltBug(t *testing.T) {
	// HALT; INC A
	h := newHarness(t, 0x76, 0x3c)
	h.irq.pending = true

	h.step(t, 1)
	test.ExpectEquality(t, h.mc.Halted, false)

	// INC A is executed twice because the PC is not incremented the first time
	h.step(t, 1)
	test.ExpectEquality(t, h.mc.A.Value(), uint8(0x02))
	test.ExpectEquality(t, h.mc.PC.Value(), uint16(0x0101))
	h.step(t, 1)
	test.ExpectEquality(t, h.mc.A.Value(), uint8(0x03))
	test.ExpectEquality(t, h.mc.PC.Value(), uint16(0x0102))
}

func TestStop(t *testing.T) {
	h := newHarness(t, 0x10, 0x00)
	h.step(t, 1)
	test.ExpectEquality(t, h.mc.PC.Value(), uint16(0x0102))
	test.ExpectEquality(t, h.mc.LastResult.Cycles, 1)
}

func TestUnimplemented(t *testing.T) {
	for _, op := range []uint8{0xd3, 0xdb, 0xdd, 0xe3, 0xe4, 0xeb, 0xec, 0xed, 0xf4, 0xfc, 0xfd} {
		h := newHarness(t, op, 0x00)
		before := h.mc.String()

		h.step(t, 1)
		test.ExpectEquality(t, h.mc.LastResult.Unimplemented, true)
		test.ExpectEquality(t, h.mc.LastResult.Cycles, 1)
		test.ExpectEquality(t, h.mc.PC.Value(), uint16(0x0101))

		h.mc.PC.Load(0x0100)
		test.ExpectEquality(t, h.mc.String(), before)

		w := &strings.Builder{}
		h.ins.Log.Write(w)
		test.ExpectEquality(t, strings.Contains(w.String(), "cpu: unimplemented opcode"), true)
	}
}

// every instruction must take the number of cycles and bytes given in the
// definition. conditional instructions are tested with the condition both
// met and not met.
func TestCycleCounts(t *testing.T) {
	h := newHarness(t)

	run := func(program []uint8, flags uint8) {
		t.Helper()
		h.mem.data = [0x10000]uint8{}
		h.mem.load(program...)
		h.mc.Reset()
		h.mc.F.Load(flags)
		h.step(t, 1)
	}

	for _, flags := range []uint8{0x00, 0xf0} {
		for _, defn := range instructions.Unprefixed {
			if defn.Family == instructions.Prefix {
				continue
			}
			run([]uint8{defn.OpCode, 0x00, 0x00}, flags)
		}
		for _, defn := range instructions.Prefixed {
			run([]uint8{0xcb, defn.OpCode}, flags)
		}
	}
}
