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
)

// EntryLevel describes the level of the Entry.
type EntryLevel int

// List of valid EntryLevel in increasing reliability.
//
// Decoded entries have been decoded from memory as though the address is the
// start of a valid instruction. Executed entries have been created from the
// result of an instruction that has been executed by the CPU.
const (
	EntryLevelDecoded EntryLevel = iota
	EntryLevelExecuted
)

// Entry is a disassembled instruction. The fields are string representations
// of the information in execution.Result.
type Entry struct {
	Level  EntryLevel
	Result execution.Result

	// the cartridge bank of the instruction. empty if the instruction is not
	// in a cartridge area
	Bank string

	Bytecode string
	Address  string
	Operator string
	Operand  string
}

func (e *Entry) String() string {
	s := fmt.Sprintf("%s  %-8s  %s", e.Address, e.Bytecode, e.Operator)
	if e.Operand != "" {
		s = fmt.Sprintf("%s %s", s, e.Operand)
	}
	return s
}

// Cycles returns the number of cycles. For decoded entries this is the number
// of cycles in the definition, for conditional instructions showing both the
// not-taken and taken values.
func (e *Entry) Cycles() string {
	if e.Result.Halted {
		return fmt.Sprintf("%d", e.Result.Cycles)
	}

	// the Defn field may be unassigned
	if e.Result.Defn == nil {
		return "?"
	}

	if e.Level < EntryLevelExecuted {
		if e.Result.Defn.IsConditional() {
			return fmt.Sprintf("%d/%d", e.Result.Defn.Cycles, e.Result.Defn.CyclesBranch)
		}
		return fmt.Sprintf("%d", e.Result.Defn.Cycles)
	}

	if e.Result.Final {
		return fmt.Sprintf("%d", e.Result.Cycles)
	}

	return fmt.Sprintf("%d of %d", e.Result.Cycles, e.Result.Defn.Cycles)
}

// Notes returns a string with notes about the most recent execution. The
// information is made up of the BranchSuccess, Halted and Unimplemented
// fields.
func (e *Entry) Notes() string {
	if e.Level < EntryLevelExecuted {
		return ""
	}

	if !e.Result.Final {
		return ""
	}

	s := strings.Builder{}

	if e.Result.Halted {
		s.WriteString("halted ")
	}

	if e.Result.Unimplemented {
		s.WriteString("unimplemented opcode ")
	}

	if e.Result.Defn != nil && e.Result.Defn.IsConditional() {
		if e.Result.BranchSuccess {
			s.WriteString("branch succeeded ")
		} else {
			s.WriteString("branch failed ")
		}
	}

	return strings.TrimSpace(s.String())
}
