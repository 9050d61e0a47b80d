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
	"fmt"
	"strings"
)

// Callback is the function run when an event falls due. The payload is the
// value given to Schedule(). The scheduler never looks at the payload.
type Callback func(payload any)

// Handle identifies a scheduled event. The zero value is a valid Handle that
// never refers to a pending event.
type Handle struct {
	slot int
	gen  uint32
}

// event is a single entry in the event pool.
type event struct {
	label     string
	timestamp uint64
	callback  Callback
	payload   any

	// generation is incremented every time the slot is reused
	gen uint32

	// position in the heap. -1 if the slot is not in use
	heapIdx int
}

func (ev event) String() string {
	label := strings.TrimSpace(ev.label)
	if label == "" {
		label = "[unlabelled event]"
	}
	return fmt.Sprintf("%s -> %d", label, ev.timestamp)
}
