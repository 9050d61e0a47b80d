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
	"io"
	"strings"
)

// WriteAttr controls what is printed by the Write*() functions.
type WriteAttr struct {
	ByteCode bool
	Bank     bool
	Cycles   bool
}

// Write count instructions, starting at the address, to io.Writer.
func (dsm *Disassembly) Write(output io.Writer, address uint16, count int, attr WriteAttr) error {
	entries := dsm.Range(address, count)

	dsm.fields.reset()
	for _, e := range entries {
		dsm.fields.update(e)
	}

	for _, e := range entries {
		if err := dsm.WriteEntry(output, attr, e); err != nil {
			return err
		}
	}

	return nil
}

// WriteEntry writes a single Entry to io.Writer.
func (dsm *Disassembly) WriteEntry(output io.Writer, attr WriteAttr, e *Entry) error {
	if e == nil {
		return nil
	}

	s := strings.Builder{}

	if attr.Bank {
		s.WriteString(dsm.GetField(FldBank, e))
		s.WriteString(" ")
	}

	s.WriteString(dsm.GetField(FldAddress, e))
	s.WriteString(" ")

	if attr.ByteCode {
		s.WriteString(dsm.GetField(FldBytecode, e))
		s.WriteString(" ")
	}

	s.WriteString(dsm.GetField(FldOperator, e))
	s.WriteString(" ")
	s.WriteString(dsm.GetField(FldOperand, e))

	if attr.Cycles {
		s.WriteString(" ")
		s.WriteString(dsm.GetField(FldCycles, e))
		if notes := e.Notes(); notes != "" {
			s.WriteString(" ")
			s.WriteString(notes)
		}
	}

	_, err := io.WriteString(output, strings.TrimRight(s.String(), " ")+"\n")
	return err
}
