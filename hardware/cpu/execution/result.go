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

package execution

import (
	"fmt"

	"github.com/jetsetilly/gopherboy/hardware/cpu/instructions"
)

// Result records the state/result of the most recent CPU instruction.
type Result struct {
	// the address at which the instruction began
	Address uint16

	// a reference to the instruction definition
	Defn *instructions.Definition

	// the number of bytes read during instruction decode. if this value is
	// less than Defn.Bytes then the instruction has not yet been fully
	// decoded
	ByteCount int

	// instruction data is the operand of the instruction. an eight bit
	// operand is stored as a uint16
	InstructionData uint16

	// the number of M-cycles the instruction took to execute
	Cycles int

	// whether the condition of a conditional instruction was met
	BranchSuccess bool

	// whether this data has been finalised. the values of the other fields
	// in this struct may be undefined unless Final is true
	Final bool

	// the CPU is in the halted state. the result is of an idle cycle and
	// not of an instruction
	Halted bool

	// the opcode is not a valid instruction
	Unimplemented bool
}

// Reset nullifies all members of the Result instance.
func (r *Result) Reset() {
	*r = Result{}
}

func (r Result) String() string {
	if r.Halted {
		return fmt.Sprintf("%#04x halted [%d]", r.Address, r.Cycles)
	}
	if r.Defn == nil {
		return fmt.Sprintf("%#04x ???", r.Address)
	}
	return fmt.Sprintf("%#04x %s [%d]", r.Address, r.Defn.Syntax(), r.Cycles)
}
