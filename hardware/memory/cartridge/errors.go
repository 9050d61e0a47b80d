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

package cartridge

import (
	"github.com/jetsetilly/gopherboy/curated"
)

// Sentinal error patterns.
const (
	BadSize           = "cartridge: image too small (%d bytes)"
	InvalidChecksum   = "cartridge: invalid header checksum (header %#02x, calculated %#02x)"
	UnsupportedMapper = "cartridge: unsupported cartridge type (%#02x)"
)

// Result is the discriminated result of attaching a cartridge.
type Result int

// List of valid Result values.
const (
	ResultOK Result = iota
	ResultBadSize
	ResultInvalidChecksum
	ResultUnsupportedMapper

	// the error did not come from validation of the cartridge. for example,
	// the file could not be loaded
	ResultError
)

func (r Result) String() string {
	switch r {
	case ResultOK:
		return "ok"
	case ResultBadSize:
		return "bad size"
	case ResultInvalidChecksum:
		return "invalid checksum"
	case ResultUnsupportedMapper:
		return "unsupported mapper"
	}
	return "error"
}

// Classify turns the error returned by Attach() into a Result. The error can
// be wrapped by other curated errors.
func Classify(err error) Result {
	switch {
	case err == nil:
		return ResultOK
	case curated.Has(err, BadSize):
		return ResultBadSize
	case curated.Has(err, InvalidChecksum):
		return ResultInvalidChecksum
	case curated.Has(err, UnsupportedMapper):
		return ResultUnsupportedMapper
	}
	return ResultError
}
