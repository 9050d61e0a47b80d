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

// Package scheduler conceptualises time inside the Game Boy. Time is measured
// in T-cycles (the 4MHz master clock) and only ever moves forward when the CPU
// accesses the bus, or when the CPU spends a cycle doing internal work. Either
// way time moves forward by one Quantum, which is the length of an M-cycle.
//
// Hardware that does something at a time other than immediately in response
// to a CPU access schedules an event. For example, when a program enables the
// timer the timer does not increment straight away. Instead an event is
// scheduled that will increment the timer in the future.
//
// Events are scheduled with the Schedule() function. The function takes a
// delay (measured from the current clock), a label (useful for identifying the
// event in debuggers) a callback and an optional payload that will be passed
// to the callback. The returned Handle can be used to Cancel() the event.
// Handles remain safe to use after the event has fired or been cancelled:
// cancelling a stale handle does nothing.
//
// The Advance() function moves the clock on and runs the callback of every
// event whose time has come. The event is removed from the scheduler before
// the callback is run so a callback can safely reschedule itself.
//
// Events that fall due on the same cycle run in the order dictated by the
// heap. This is not necessarily the order in which they were scheduled.
//
// The number of pending events is limited to MaxEvents. There is no good
// reason for the emulation to ever have more events than that pending and so
// exceeding the limit causes a panic.
package scheduler
