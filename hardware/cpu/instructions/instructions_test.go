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

package instructions_test

import (
	"testing"

	"github.com/jetsetilly/gopherboy/hardware/cpu/instructions"
	"github.com/jetsetilly/gopherboy/test"
)

func TestInvalid(t *testing.T) {
	invalid := map[uint8]bool{
		0xd3: true, 0xdb: true, 0xdd: true, 0xe3: true, 0xe4: true, 0xeb: true,
		0xec: true, 0xed: true, 0xf4: true, 0xfc: true, 0xfd: true,
	}

	for i, defn := range instructions.Unprefixed {
		test.ExpectEquality(t, defn.OpCode, uint8(i))
		test.ExpectEquality(t, defn.Family == instructions.Invalid, invalid[uint8(i)], defn)
	}

	for _, defn := range instructions.Prefixed {
		test.ExpectInequality(t, defn.Family, instructions.Invalid, defn)
		test.ExpectEquality(t, defn.Bytes, 2, defn)
		test.ExpectEquality(t, defn.Prefixed, true, defn)
	}
}

func TestSyntax(t *testing.T) {
	test.ExpectEquality(t, instructions.Unprefixed[0x00].Syntax(), "NOP")
	test.ExpectEquality(t, instructions.Unprefixed[0x01].Syntax(), "LD BC,n16")
	test.ExpectEquality(t, instructions.Unprefixed[0x22].Syntax(), "LD [HL+],A")
	test.ExpectEquality(t, instructions.Unprefixed[0x36].Syntax(), "LD [HL],n8")
	test.ExpectEquality(t, instructions.Unprefixed[0x76].Syntax(), "HALT")
	test.ExpectEquality(t, instructions.Unprefixed[0x78].Syntax(), "LD A,B")
	test.ExpectEquality(t, instructions.Unprefixed[0x9e].Syntax(), "SBC A,[HL]")
	test.ExpectEquality(t, instructions.Unprefixed[0xc2].Syntax(), "JP NZ,a16")
	test.ExpectEquality(t, instructions.Unprefixed[0xf1].Syntax(), "POP AF")
	test.ExpectEquality(t, instructions.Unprefixed[0xf8].Syntax(), "LD HL,SP+e8")
	test.ExpectEquality(t, instructions.Unprefixed[0xef].Syntax(), "RST $28")
	test.ExpectEquality(t, instructions.Prefixed[0x37].Syntax(), "SWAP A")
	test.ExpectEquality(t, instructions.Prefixed[0x7e].Syntax(), "BIT 7,[HL]")
	test.ExpectEquality(t, instructions.Prefixed[0xc0].Syntax(), "SET 0,B")

	test.ExpectEquality(t, instructions.Unprefixed[0x20].String(), "20 JR NZ,e8 +2bytes (2/3 cycles) [flow]")
	test.ExpectEquality(t, instructions.Prefixed[0x46].String(), "cb 46 BIT 0,[HL] +2bytes (3 cycles) [bits]")
	test.ExpectEquality(t, instructions.Unprefixed[0xd3].String(), "d3 invalid")
}

func TestCycles(t *testing.T) {
	type cycles struct {
		opcode   uint8
		prefixed bool
		cycles   int
		branch   int
	}

	tests := []cycles{
		{opcode: 0x00, cycles: 1},
		{opcode: 0x08, cycles: 5},
		{opcode: 0x18, cycles: 3},
		{opcode: 0x38, cycles: 2, branch: 3},
		{opcode: 0x34, cycles: 3},
		{opcode: 0x46, cycles: 2},
		{opcode: 0x70, cycles: 2},
		{opcode: 0xc0, cycles: 2, branch: 5},
		{opcode: 0xc1, cycles: 3},
		{opcode: 0xc3, cycles: 4},
		{opcode: 0xc4, cycles: 3, branch: 6},
		{opcode: 0xc5, cycles: 4},
		{opcode: 0xc9, cycles: 4},
		{opcode: 0xca, cycles: 3, branch: 4},
		{opcode: 0xcd, cycles: 6},
		{opcode: 0xe8, cycles: 4},
		{opcode: 0xe9, cycles: 1},
		{opcode: 0xea, cycles: 4},
		{opcode: 0xf8, cycles: 3},
		{opcode: 0xf9, cycles: 2},
		{opcode: 0x06, prefixed: true, cycles: 4},
		{opcode: 0x11, prefixed: true, cycles: 2},
		{opcode: 0x56, prefixed: true, cycles: 3},
		{opcode: 0x96, prefixed: true, cycles: 4},
	}

	for _, c := range tests {
		defn := instructions.Lookup(c.opcode, c.prefixed)
		test.ExpectEquality(t, defn.Cycles, c.cycles, defn)
		test.ExpectEquality(t, defn.CyclesBranch, c.branch, defn)
		test.ExpectEquality(t, defn.IsConditional(), c.branch > 0, defn)
	}
}

func TestFind(t *testing.T) {
	test.ExpectEquality(t, len(instructions.Find("push")), 4)
	test.ExpectEquality(t, len(instructions.Find("BIT")), 64)
	test.ExpectEquality(t, len(instructions.Find("RST")), 8)
	test.ExpectEquality(t, len(instructions.Find("nonsense")), 0)
}

func TestFamily(t *testing.T) {
	test.ExpectEquality(t, instructions.Unprefixed[0xcd].Family.IsFlow(), true)
	test.ExpectEquality(t, instructions.Unprefixed[0xc5].Family.IsFlow(), false)
	test.ExpectEquality(t, instructions.Unprefixed[0xc5].Family.String(), "load16")
	test.ExpectEquality(t, instructions.Unprefixed[0x27].Family.String(), "alu")
}
