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

// Package clocks defines the constant values that define the speed of the main
// clock in the DMG Game Boy.
//
// The emulation has no notion of real time. The values are used to convert
// between cycles and a duration of emulated time. For example, the command
// line budget can be given in frames or in seconds.
package clocks

import (
	"fmt"
	"strconv"
	"strings"
)

// DMG is the speed of the main clock in MHz. One T-cycle is one tick of this
// clock.
const DMG = 4.194304

// the number of T-cycles in one second of emulated time.
const CyclesPerSecond = 4194304

// CyclesPerFrame is the number of T-cycles in one frame of the LCD, including
// the vertical blank.
const CyclesPerFrame = 70224

// Seconds returns the duration of emulated time in seconds for the number of
// T-cycles.
func Seconds(cycles uint64) float64 {
	return float64(cycles) / CyclesPerSecond
}

// Frames returns the number of T-cycles for the number of frames.
func Frames(n int) uint64 {
	return uint64(n) * CyclesPerFrame
}

// ParseBudget converts a string to a number of T-cycles. A plain number is a
// number of T-cycles. A number with the suffix "f" is a number of frames and a
// number with the suffix "s" is a number of seconds. Seconds can be
// fractional.
//
//	"70224", "1f", "0.5s"
func ParseBudget(s string) (uint64, error) {
	s = strings.ToLower(strings.TrimSpace(s))

	switch {
	case strings.HasSuffix(s, "f"):
		n, err := strconv.ParseUint(strings.TrimSuffix(s, "f"), 10, 32)
		if err != nil {
			return 0, fmt.Errorf("clocks: invalid number of frames (%s)", s)
		}
		return Frames(int(n)), nil

	case strings.HasSuffix(s, "s"):
		n, err := strconv.ParseFloat(strings.TrimSuffix(s, "s"), 64)
		if err != nil || n < 0 {
			return 0, fmt.Errorf("clocks: invalid number of seconds (%s)", s)
		}
		return uint64(n * CyclesPerSecond), nil
	}

	n, err := strconv.ParseUint(s, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("clocks: invalid number of cycles (%s)", s)
	}
	return n, nil
}
