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

package clocks_test

import (
	"testing"

	"github.com/jetsetilly/gopherboy/hardware/clocks"
	"github.com/jetsetilly/gopherboy/test"
)

func TestConversion(t *testing.T) {
	test.ExpectEquality(t, clocks.Frames(60), uint64(4213440))
	test.ExpectApproximate(t, clocks.Seconds(clocks.CyclesPerSecond), 1.0, 0.0001)
	test.ExpectApproximate(t, clocks.Seconds(clocks.Frames(1))*1000, 16.74, 0.01)
	test.ExpectApproximate(t, clocks.DMG*1000000, float64(clocks.CyclesPerSecond), 1.0)
}

func TestParseBudget(t *testing.T) {
	n, err := clocks.ParseBudget("1000")
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, n, uint64(1000))

	n, err = clocks.ParseBudget("2F")
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, n, uint64(140448))

	n, err = clocks.ParseBudget(" 0.5s ")
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, n, uint64(2097152))

	_, err = clocks.ParseBudget("ten")
	test.ExpectFailure(t, err)

	_, err = clocks.ParseBudget("-1s")
	test.ExpectFailure(t, err)

	_, err = clocks.ParseBudget("f")
	test.ExpectFailure(t, err)
}
