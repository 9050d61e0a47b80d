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

package test

import (
	"fmt"
	"strings"
)

// CompareWriter captures output so that it can be compared with the expected
// output. Unlike a strings.Builder it can describe where the output first
// differs from the expectation.
type CompareWriter struct {
	buffer []byte
}

// Write implements the io.Writer interface.
func (cw *CompareWriter) Write(p []byte) (n int, err error) {
	cw.buffer = append(cw.buffer, p...)
	return len(p), nil
}

// Reset empties the buffer.
func (cw *CompareWriter) Reset() {
	cw.buffer = cw.buffer[:0]
}

func (cw *CompareWriter) String() string {
	return string(cw.buffer)
}

// Contains returns true if the captured output contains s.
func (cw *CompareWriter) Contains(s string) bool {
	return strings.Contains(string(cw.buffer), s)
}

// Compare the captured output with the expected lines. Each line is expected
// to be terminated by a newline. Returns nil if the output is the same or an
// error describing the first line that differs.
func (cw *CompareWriter) Compare(lines ...string) error {
	got := strings.Split(string(cw.buffer), "\n")

	// the final element is what follows the last newline. it should be empty
	// if the output ends with a newline
	tail := got[len(got)-1]
	got = got[:len(got)-1]

	for i, l := range lines {
		if i >= len(got) {
			return fmt.Errorf("line %d: missing (expected %q)", i+1, l)
		}
		if got[i] != l {
			return fmt.Errorf("line %d: %q does not equal %q", i+1, got[i], l)
		}
	}

	if len(got) > len(lines) {
		return fmt.Errorf("line %d: unexpected %q", len(lines)+1, got[len(lines)])
	}

	if tail != "" {
		return fmt.Errorf("line %d: unterminated %q", len(lines)+1, tail)
	}

	return nil
}
