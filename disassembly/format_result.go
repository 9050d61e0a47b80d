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

package disassembly

import (
	"fmt"
	"strings"

	"github.com/jetsetilly/gopherboy/hardware/cpu/execution"
	"github.com/jetsetilly/gopherboy/hardware/cpu/instructions"
)

// formatResult creates an Entry for the supplied result. It will be assigned
// the specified EntryLevel.
func (dsm *Disassembly) formatResult(result execution.Result, level EntryLevel) *Entry {
	e := &Entry{
		Result: result,
		Level:  level,
		Bank:   dsm.bank(result.Address),
	}

	// address of instruction
	e.Address = fmt.Sprintf("$%04x", result.Address)

	if result.Halted {
		e.Operator = "(halted)"
		return e
	}

	// if definition is nil then set the operator field to ??? and return with
	// no further formatting
	if result.Defn == nil {
		e.Operator = "???"
		return e
	}

	e.Operator = result.Defn.Mnemonic
	e.Bytecode = bytecode(result)
	e.Operand = operand(result)

	return e
}

// the bytes of the instruction. bytes that have not yet been read are shown as
// question marks.
func bytecode(result execution.Result) string {
	defn := result.Defn

	if defn.Prefixed {
		return fmt.Sprintf("cb %02x", defn.OpCode)
	}

	data := result.InstructionData

	switch defn.Bytes {
	case 3:
		switch result.ByteCount {
		case 3:
			return fmt.Sprintf("%02x %02x %02x", defn.OpCode, data&0x00ff, data>>8)
		case 2:
			return fmt.Sprintf("%02x %02x ??", defn.OpCode, data&0x00ff)
		}
		return fmt.Sprintf("%02x ?? ??", defn.OpCode)
	case 2:
		if result.ByteCount >= 2 {
			return fmt.Sprintf("%02x %02x", defn.OpCode, data&0x00ff)
		}
		return fmt.Sprintf("%02x ??", defn.OpCode)
	}

	return fmt.Sprintf("%02x", defn.OpCode)
}

// the operand of the instruction with the placeholder replaced by the value
// read from memory. the operand of a relative jump is shown as the address of
// the jump destination.
func operand(result execution.Result) string {
	defn := result.Defn
	s := defn.Operands
	complete := result.ByteCount >= defn.Bytes
	data := result.InstructionData

	switch {
	case strings.Contains(s, "n16"), strings.Contains(s, "a16"):
		v := "$????"
		if complete {
			v = fmt.Sprintf("$%04x", data)
		}
		return strings.NewReplacer("n16", v, "a16", v).Replace(s)

	case strings.Contains(s, "n8"):
		v := "$??"
		if complete {
			v = fmt.Sprintf("$%02x", data)
		}
		return strings.Replace(s, "n8", v, 1)

	case strings.Contains(s, "a8"):
		v := "$ff??"
		if complete {
			v = fmt.Sprintf("$ff%02x", data)
		}
		return strings.Replace(s, "a8", v, 1)

	case strings.Contains(s, "e8"):
		if !complete {
			return strings.Replace(s, "e8", "??", 1)
		}

		e := int8(data)

		if defn.Family == instructions.JumpRelative {
			target := result.Address + uint16(defn.Bytes) + uint16(int16(e))
			return strings.Replace(s, "e8", fmt.Sprintf("$%04x", target), 1)
		}

		// SP+e8 is shown as SP-n for negative offsets
		if strings.Contains(s, "+e8") && e < 0 {
			return strings.Replace(s, "+e8", fmt.Sprintf("-%d", -int(e)), 1)
		}
		return strings.Replace(s, "e8", fmt.Sprintf("%d", e), 1)
	}

	return s
}
