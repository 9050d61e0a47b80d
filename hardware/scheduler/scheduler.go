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

package scheduler

import (
	"cmp"
	"fmt"
	"slices"
	"strings"
)

// MaxEvents is the maximum number of events that can be pending at any one
// time.
const MaxEvents = 16

// Quantum is the number of T-cycles in one M-cycle. Every bus access advances
// the clock by this amount.
const Quantum = 4

// Scheduler is a min-heap of events ordered by timestamp. Events live in a
// fixed pool of slots and the heap holds slot numbers. Each slot records its
// own position in the heap so that an event can be found and removed from the
// heap without searching.
type Scheduler struct {
	clock uint64

	slots [MaxEvents]event

	// the heap. only the first n entries are valid
	heap [MaxEvents]int
	n    int

	// stack of unused slots
	free  [MaxEvents]int
	nfree int
}

// NewScheduler is the preferred method of initialisation for the Scheduler type.
func NewScheduler() *Scheduler {
	sch := &Scheduler{}
	sch.Reset()
	return sch
}

func (sch *Scheduler) String() string {
	evs := make([]event, 0, sch.n)
	for i := 0; i < sch.n; i++ {
		evs = append(evs, sch.slots[sch.heap[i]])
	}
	slices.SortStableFunc(evs, func(a, b event) int {
		return cmp.Compare(a.timestamp, b.timestamp)
	})

	s := strings.Builder{}
	for _, ev := range evs {
		ev.timestamp -= sch.clock
		s.WriteString(ev.String())
		s.WriteString("\n")
	}
	return s.String()
}

// Reset removes all pending events and sets the clock back to zero.
func (sch *Scheduler) Reset() {
	sch.Flush()
	sch.clock = 0
}

// Flush removes all pending events without running them. The clock is not
// changed.
func (sch *Scheduler) Flush() {
	sch.n = 0
	sch.nfree = 0
	for i := MaxEvents - 1; i >= 0; i-- {
		sch.slots[i].heapIdx = -1
		sch.slots[i].callback = nil
		sch.slots[i].payload = nil
		sch.free[sch.nfree] = i
		sch.nfree++
	}
}

// Now returns the current value of the clock.
func (sch *Scheduler) Now() uint64 {
	return sch.clock
}

// Pending returns the number of events waiting to fire.
func (sch *Scheduler) Pending() int {
	return sch.n
}

// Schedule a callback to be run delay cycles from now. The payload is passed
// to the callback when it is run.
//
// Panics if there are already MaxEvents pending.
func (sch *Scheduler) Schedule(delay uint64, label string, callback Callback, payload any) Handle {
	if callback == nil {
		panic(fmt.Sprintf("scheduler: nil callback for event (%s)", label))
	}
	if sch.n >= MaxEvents {
		panic(fmt.Sprintf("scheduler: too many events (%d) when scheduling %s", sch.n, label))
	}

	sch.nfree--
	slot := sch.free[sch.nfree]

	ev := &sch.slots[slot]
	ev.gen++
	ev.label = label
	ev.timestamp = sch.clock + delay
	ev.callback = callback
	ev.payload = payload

	sch.heap[sch.n] = slot
	ev.heapIdx = sch.n
	sch.n++
	sch.up(ev.heapIdx)

	return Handle{slot: slot, gen: ev.gen}
}

// Active returns true if the handle refers to an event that has not yet fired
// or been cancelled.
func (sch *Scheduler) Active(h Handle) bool {
	if h.gen == 0 || h.slot < 0 || h.slot >= MaxEvents {
		return false
	}
	ev := &sch.slots[h.slot]
	return ev.gen == h.gen && ev.heapIdx >= 0
}

// Remaining returns the number of cycles before the event fires. The boolean
// return value is false if the event is not active.
func (sch *Scheduler) Remaining(h Handle) (uint64, bool) {
	if !sch.Active(h) {
		return 0, false
	}
	ts := sch.slots[h.slot].timestamp
	if ts <= sch.clock {
		return 0, true
	}
	return ts - sch.clock, true
}

// Cancel removes the event from the scheduler without running the callback.
// Cancelling an event that has already fired or been cancelled does nothing.
func (sch *Scheduler) Cancel(h Handle) {
	if !sch.Active(h) {
		return
	}

	// force the event to the root of the heap regardless of its timestamp and
	// then remove the root
	i := sch.slots[h.slot].heapIdx
	for i > 0 {
		p := (i - 1) / 2
		sch.swap(i, p)
		i = p
	}
	sch.pop()
}

// Advance moves the clock on by the number of cycles and runs every event
// that has fallen due. Events are removed before their callback is run.
func (sch *Scheduler) Advance(cycles uint64) {
	sch.clock += cycles

	for sch.n > 0 {
		ev := &sch.slots[sch.heap[0]]
		if ev.timestamp > sch.clock {
			return
		}
		callback := ev.callback
		payload := ev.payload
		sch.pop()
		callback(payload)
	}
}

// pop removes the root of the heap and releases its slot.
func (sch *Scheduler) pop() {
	slot := sch.heap[0]

	sch.n--
	if sch.n > 0 {
		sch.swap(0, sch.n)
		sch.down(0)
	}

	ev := &sch.slots[slot]
	ev.heapIdx = -1
	ev.callback = nil
	ev.payload = nil
	sch.free[sch.nfree] = slot
	sch.nfree++
}

func (sch *Scheduler) less(i, j int) bool {
	return sch.slots[sch.heap[i]].timestamp < sch.slots[sch.heap[j]].timestamp
}

func (sch *Scheduler) swap(i, j int) {
	sch.heap[i], sch.heap[j] = sch.heap[j], sch.heap[i]
	sch.slots[sch.heap[i]].heapIdx = i
	sch.slots[sch.heap[j]].heapIdx = j
}

func (sch *Scheduler) up(i int) {
	for i > 0 {
		p := (i - 1) / 2
		if !sch.less(i, p) {
			return
		}
		sch.swap(i, p)
		i = p
	}
}

func (sch *Scheduler) down(i int) {
	for {
		l := 2*i + 1
		if l >= sch.n {
			return
		}
		m := l
		if r := l + 1; r < sch.n && sch.less(r, l) {
			m = r
		}
		if !sch.less(m, i) {
			return
		}
		sch.swap(i, m)
		i = m
	}
}
