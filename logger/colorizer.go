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

package logger

import (
	"io"
)

const (
	normalPen = "\033[0m"
	dimPen    = "\033[2m"
	yellowPen = "\033[33m"
	redPen    = "\033[31m"
)

// Colorizer applies basic coloring rules to logging output. It should only be
// used when the output is a terminal.
type Colorizer struct {
	out io.Writer
}

// NewColorizer is the preferred method if initialisation for the Colorizer type.
func NewColorizer(out io.Writer) Colorizer {
	return Colorizer{out: out}
}

// Write implements the io.Writer interface.
func (c Colorizer) Write(p []byte) (n int, err error) {
	return c.out.Write(p)
}

// WriteLevel implements the LevelWriter interface.
func (c Colorizer) WriteLevel(level Level, p []byte) (n int, err error) {
	var pen string
	switch level {
	case Debug:
		pen = dimPen
	case Warning:
		pen = yellowPen
	case Error:
		pen = redPen
	default:
		return c.out.Write(p)
	}

	if _, err := io.WriteString(c.out, pen); err != nil {
		return 0, err
	}

	defer func() {
		_, _ = io.WriteString(c.out, normalPen)
	}()

	return c.out.Write(p)
}
