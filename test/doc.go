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

// Package test contains helper functions to remove common boilerplate to make
// testing easier.
//
// The Expect*() functions report a test error on failure and allow the test
// to continue. The Demand*() functions report a fatal error and stop the
// test. Demand functions are useful when the value being tested is used in
// further tests and so must be correct.
//
// It is worth describing how ExpectSuccess() and ExpectFailure() handle the
// nil type because it is not obvious. The nil type is considered a success.
// This is because of how errors usually work (nil to indicate no error).
//
// All functions accept an optional list of tags. The tags are printed as part
// of the failure message, which is useful for tests inside loops.
//
// RingWriter and CompareWriter implement the io.Writer interface and should be
// used to capture output. The RingWriter keeps only the end of long output,
// such as a log echo or an instruction trace. The CompareWriter keeps
// everything and can report the first line that differs from the expected
// output.
//
// BuildROM creates a valid cartridge image around a short program.
package test
