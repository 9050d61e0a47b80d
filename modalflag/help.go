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

package modalflag

import (
	"fmt"
	"io"
	"strings"
)

// help writes the usage message for the current mode.
func (md *Modes) help() {
	if md.output == nil {
		return
	}

	defaults := &strings.Builder{}
	md.flags.SetOutput(defaults)
	md.flags.PrintDefaults()
	md.flags.SetOutput(io.Discard)

	s := &strings.Builder{}

	if defaults.Len() == 0 && len(md.subModes) == 0 {
		s.WriteString("No help available")
		if len(md.path) > 0 {
			fmt.Fprintf(s, " for %s mode", md.Path())
		}
		s.WriteString("\n")
		_, _ = md.output.Write([]byte(s.String()))
		return
	}

	s.WriteString("Usage")
	if len(md.path) > 0 {
		fmt.Fprintf(s, " for %s mode", md.Path())
	}
	s.WriteString(":\n")
	s.WriteString(defaults.String())

	if len(md.subModes) > 0 {
		if defaults.Len() > 0 {
			s.WriteString("\n")
		}
		fmt.Fprintf(s, "  available sub-modes: %s\n", strings.Join(md.subModes, ", "))
		fmt.Fprintf(s, "    default: %s\n", md.subModes[0])
	}

	if md.additionalHelp != "" {
		fmt.Fprintf(s, "\n%s\n", md.additionalHelp)
	}

	_, _ = md.output.Write([]byte(s.String()))
}
