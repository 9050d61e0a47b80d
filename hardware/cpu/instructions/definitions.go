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

package instructions

import (
	"fmt"
	"strings"
)

// Definition defines each instruction in the instruction set; one per opcode.
type Definition struct {
	OpCode   uint8
	Prefixed bool
	Mnemonic string
	Operands string
	Family   Family

	// the number of bytes including the opcode. for prefixed instructions
	// this includes the prefix byte
	Bytes int

	// number of M-cycles. for conditional instructions Cycles is the number
	// of cycles when the condition fails and CyclesBranch is the number when
	// it succeeds. CyclesBranch is zero for unconditional instructions
	Cycles       int
	CyclesBranch int
}

// String returns a single instruction definition as a string.
func (defn Definition) String() string {
	if defn.Family == Invalid {
		return fmt.Sprintf("%02x invalid", defn.OpCode)
	}
	op := fmt.Sprintf("%02x", defn.OpCode)
	if defn.Prefixed {
		op = fmt.Sprintf("cb %s", op)
	}
	if defn.CyclesBranch > 0 {
		return fmt.Sprintf("%s %s +%dbytes (%d/%d cycles) [%s]", op, defn.Syntax(), defn.Bytes, defn.Cycles, defn.CyclesBranch, defn.Family)
	}
	return fmt.Sprintf("%s %s +%dbytes (%d cycles) [%s]", op, defn.Syntax(), defn.Bytes, defn.Cycles, defn.Family)
}

// Syntax returns the mnemonic and operands as they would appear in assembly
// language source.
func (defn Definition) Syntax() string {
	if defn.Operands == "" {
		return defn.Mnemonic
	}
	return fmt.Sprintf("%s %s", defn.Mnemonic, defn.Operands)
}

// IsConditional returns true if the instruction only takes effect when a
// condition is met.
func (defn Definition) IsConditional() bool {
	return defn.CyclesBranch > 0
}

// Unprefixed is the table of single byte opcodes.
var Unprefixed [256]*Definition

// Prefixed is the table of opcodes that follow the 0xcb prefix.
var Prefixed [256]*Definition

func init() {
	for i := range 256 {
		Unprefixed[i] = decode(uint8(i))
		Prefixed[i] = decodePrefixed(uint8(i))
	}
}

// Names of the operands encoded in the bits of an opcode. Index 6 of R8 is the
// memory location pointed to by HL.
var (
	R8  = [8]string{"B", "C", "D", "E", "H", "L", "[HL]", "A"}
	R16 = [4]string{"BC", "DE", "HL", "SP"}

	// register pairs used by PUSH and POP
	R16Stack = [4]string{"BC", "DE", "HL", "AF"}

	// register pairs used by the indirect loads of A
	R16Memory = [4]string{"BC", "DE", "HL+", "HL-"}

	Conditions = [4]string{"NZ", "Z", "NC", "C"}

	ALUOps     = [8]string{"ADD", "ADC", "SUB", "SBC", "AND", "XOR", "OR", "CP"}
	RotateOps  = [8]string{"RLC", "RRC", "RL", "RR", "SLA", "SRA", "SWAP", "SRL"}
	RotateAOps = [4]string{"RLCA", "RRCA", "RLA", "RRA"}
)

// HLIndirect is the index in R8 of the memory location pointed to by HL.
const HLIndirect = 6

// Fields returns the bit fields of an opcode. The x field is the top two bits,
// y the middle three bits and z the lowest three bits. The y field is further
// split into p (the top two bits of y) and q (the lowest bit of y).
func Fields(opcode uint8) (x, y, z, p, q uint8) {
	x = opcode >> 6
	y = (opcode >> 3) & 0x07
	z = opcode & 0x07
	p = y >> 1
	q = y & 0x01
	return x, y, z, p, q
}

func defn(opcode uint8, family Family, mnemonic string, operands string, bytes int, cycles int) *Definition {
	return &Definition{
		OpCode:   opcode,
		Mnemonic: mnemonic,
		Operands: operands,
		Family:   family,
		Bytes:    bytes,
		Cycles:   cycles,
	}
}

func conditional(d *Definition, branch int) *Definition {
	d.CyclesBranch = branch
	return d
}

// extra cycles for an instruction that reads or writes the memory pointed to
// by HL instead of a register
func hl(r uint8, cycles int) int {
	if r == HLIndirect {
		return cycles
	}
	return 0
}

func decode(op uint8) *Definition {
	x, y, z, p, q := Fields(op)

	switch x {
	case 0:
		switch z {
		case 0:
			switch y {
			case 0:
				return defn(op, Nop, "NOP", "", 1, 1)
			case 1:
				return defn(op, StoreSP, "LD", "[a16],SP", 3, 5)
			case 2:
				return defn(op, Stop, "STOP", "", 2, 1)
			case 3:
				return defn(op, JumpRelative, "JR", "e8", 2, 3)
			}
			return conditional(defn(op, JumpRelative, "JR", Conditions[y-4]+",e8", 2, 2), 3)
		case 1:
			if q == 0 {
				return defn(op, Load16Immediate, "LD", R16[p]+",n16", 3, 3)
			}
			return defn(op, AddHL, "ADD", "HL,"+R16[p], 1, 2)
		case 2:
			if q == 0 {
				return defn(op, StoreIndirectA, "LD", "["+R16Memory[p]+"],A", 1, 2)
			}
			return defn(op, LoadIndirectA, "LD", "A,["+R16Memory[p]+"]", 1, 2)
		case 3:
			if q == 0 {
				return defn(op, Inc16, "INC", R16[p], 1, 2)
			}
			return defn(op, Dec16, "DEC", R16[p], 1, 2)
		case 4:
			return defn(op, Inc8, "INC", R8[y], 1, 1+hl(y, 2))
		case 5:
			return defn(op, Dec8, "DEC", R8[y], 1, 1+hl(y, 2))
		case 6:
			return defn(op, Load8Immediate, "LD", R8[y]+",n8", 2, 2+hl(y, 1))
		}

		switch y {
		case 4:
			return defn(op, DecimalAdjust, "DAA", "", 1, 1)
		case 5:
			return defn(op, Complement, "CPL", "", 1, 1)
		case 6:
			return defn(op, SetCarry, "SCF", "", 1, 1)
		case 7:
			return defn(op, ComplementCarry, "CCF", "", 1, 1)
		}
		return defn(op, RotateA, RotateAOps[y], "", 1, 1)

	case 1:
		if y == HLIndirect && z == HLIndirect {
			return defn(op, Halt, "HALT", "", 1, 1)
		}
		return defn(op, Load8, "LD", R8[y]+","+R8[z], 1, 1+hl(y, 1)+hl(z, 1))

	case 2:
		return defn(op, ALU, ALUOps[y], "A,"+R8[z], 1, 1+hl(z, 1))
	}

	switch z {
	case 0:
		switch y {
		case 4:
			return defn(op, StoreHighA, "LDH", "[a8],A", 2, 3)
		case 5:
			return defn(op, AddSP, "ADD", "SP,e8", 2, 4)
		case 6:
			return defn(op, LoadHighA, "LDH", "A,[a8]", 2, 3)
		case 7:
			return defn(op, LoadHLSP, "LD", "HL,SP+e8", 2, 3)
		}
		return conditional(defn(op, Return, "RET", Conditions[y], 1, 2), 5)
	case 1:
		if q == 0 {
			return defn(op, Pop, "POP", R16Stack[p], 1, 3)
		}
		switch p {
		case 0:
			return defn(op, Return, "RET", "", 1, 4)
		case 1:
			return defn(op, ReturnInterrupt, "RETI", "", 1, 4)
		case 2:
			return defn(op, JumpHL, "JP", "HL", 1, 1)
		}
		return defn(op, LoadSPHL, "LD", "SP,HL", 1, 2)
	case 2:
		switch y {
		case 4:
			return defn(op, StoreHighCA, "LDH", "[C],A", 1, 2)
		case 5:
			return defn(op, StoreAbsoluteA, "LD", "[a16],A", 3, 4)
		case 6:
			return defn(op, LoadHighCA, "LDH", "A,[C]", 1, 2)
		case 7:
			return defn(op, LoadAbsoluteA, "LD", "A,[a16]", 3, 4)
		}
		return conditional(defn(op, Jump, "JP", Conditions[y]+",a16", 3, 3), 4)
	case 3:
		switch y {
		case 0:
			return defn(op, Jump, "JP", "a16", 3, 4)
		case 1:
			return defn(op, Prefix, "PREFIX", "", 1, 1)
		case 6:
			return defn(op, DisableInterrupts, "DI", "", 1, 1)
		case 7:
			return defn(op, EnableInterrupts, "EI", "", 1, 1)
		}
	case 4:
		if y < 4 {
			return conditional(defn(op, Call, "CALL", Conditions[y]+",a16", 3, 3), 6)
		}
	case 5:
		if q == 0 {
			return defn(op, Push, "PUSH", R16Stack[p], 1, 4)
		}
		if p == 0 {
			return defn(op, Call, "CALL", "a16", 3, 6)
		}
	case 6:
		return defn(op, ALUImmediate, ALUOps[y], "A,n8", 2, 2)
	case 7:
		return defn(op, Restart, "RST", fmt.Sprintf("$%02X", y*8), 1, 4)
	}

	return defn(op, Invalid, "??", fmt.Sprintf("$%02X", op), 1, 1)
}

func decodePrefixed(op uint8) *Definition {
	x, y, z, _, _ := Fields(op)

	var d *Definition

	switch x {
	case 0:
		d = defn(op, Rotate, RotateOps[y], R8[z], 2, 2+hl(z, 2))
	case 1:
		d = defn(op, Bit, "BIT", fmt.Sprintf("%d,%s", y, R8[z]), 2, 2+hl(z, 1))
	case 2:
		d = defn(op, ResetBit, "RES", fmt.Sprintf("%d,%s", y, R8[z]), 2, 2+hl(z, 2))
	default:
		d = defn(op, SetBit, "SET", fmt.Sprintf("%d,%s", y, R8[z]), 2, 2+hl(z, 2))
	}

	d.Prefixed = true
	return d
}

// Lookup returns the definition for the opcode. If the prefixed argument is
// true the Prefixed table is used.
func Lookup(opcode uint8, prefixed bool) *Definition {
	if prefixed {
		return Prefixed[opcode]
	}
	return Unprefixed[opcode]
}

// Find returns the definitions with the mnemonic. The search is case
// insensitive.
func Find(mnemonic string) []*Definition {
	var found []*Definition
	mnemonic = strings.ToUpper(mnemonic)
	for _, d := range Unprefixed {
		if d.Mnemonic == mnemonic {
			found = append(found, d)
		}
	}
	for _, d := range Prefixed {
		if d.Mnemonic == mnemonic {
			found = append(found, d)
		}
	}
	return found
}
