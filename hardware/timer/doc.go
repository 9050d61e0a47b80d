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

// Package timer implements the DIV, TIMA, TMA and TAC registers of the Game
// Boy.
//
// The timer does not count cycles itself. Instead, each increment of TIMA is
// an event in the scheduler, as is the overflow sequence. The overflow
// sequence is made up of two events, four cycles apart. The first sets TIMA to
// zero and the second reloads TIMA from TMA and requests the timer interrupt.
// This reproduces the single M-cycle in which TIMA reads as zero after an
// overflow.
//
// Writing to TIMA or TAC while the timer is running cancels the pending events
// and schedules them again from the new state. Changing the clock select
// while the timer is running restarts the count from the moment of the write.
//
// DIV is not an event. It is derived from the scheduler clock whenever it is
// read.
package timer
