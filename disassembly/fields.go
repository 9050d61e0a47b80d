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
)

// Field identifies a column in the disassembly output.
type Field int

// List of valid Field values.
const (
	FldBank Field = iota
	FldBytecode
	FldAddress
	FldOperator
	FldOperand
	FldCycles
	FldNotes
	numFields
)

// the width of each column.
type fields struct {
	widths [numFields]int
}

func (e *Entry) field(fld Field) string {
	switch fld {
	case FldBank:
		return e.Bank
	case FldBytecode:
		return e.Bytecode
	case FldAddress:
		return e.Address
	case FldOperator:
		return e.Operator
	case FldOperand:
		return e.Operand
	case FldCycles:
		return e.Cycles()
	case FldNotes:
		return e.Notes()
	}
	return ""
}

// update width information for entry fields.
func (f *fields) update(e *Entry) {
	for fld := range numFields {
		if n := len(e.field(fld)); n > f.widths[fld] {
			f.widths[fld] = n
		}
	}
}

func (f *fields) reset() {
	f.widths = [numFields]int{}
}

// GetField returns the formatted field from the specified Entry. The field is
// padded to the width of the widest entry written so far.
func (dsm *Disassembly) GetField(fld Field, e *Entry) string {
	return fmt.Sprintf("%-*s", dsm.fields.widths[fld], e.field(fld))
}
