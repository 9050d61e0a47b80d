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

package timer

import (
	"fmt"

	"github.com/jetsetilly/gopherboy/hardware/instance"
	"github.com/jetsetilly/gopherboy/hardware/interrupts"
	"github.com/jetsetilly/gopherboy/hardware/memory/addresses"
	"github.com/jetsetilly/gopherboy/hardware/scheduler"
)

// ClockSelect is the value of the lower two bits of TAC.
type ClockSelect uint8

// List of valid ClockSelect values.
const (
	CPU4096   ClockSelect = 0b00
	CPU262144 ClockSelect = 0b01
	CPU65536  ClockSelect = 0b10
	CPU16384  ClockSelect = 0b11
)

// Delay returns the number of T-cycles between each increment of TIMA.
func (cs ClockSelect) Delay() uint64 {
	switch cs & 0b11 {
	case CPU4096:
		return 1024
	case CPU262144:
		return 16
	case CPU65536:
		return 64
	}
	return 256
}

func (cs ClockSelect) String() string {
	return fmt.Sprintf("%dHz", 4194304/cs.Delay())
}

// the number of T-cycles between the two stages of the overflow sequence
const reloadDelay = scheduler.Quantum

// the value of DIV when the boot ROM hands over to the cartridge
const divAfterBoot = 0xab

const (
	tacEnable = 0b100
	tacMask   = 0b111
)

// Timer implements the Game Boy timer.
type Timer struct {
	ins *instance.Instance
	sch *scheduler.Scheduler
	irq *interrupts.Flags

	tima uint8
	tma  uint8
	tac  uint8

	// the clock value from which DIV is counted
	divBase uint64

	// the pending increment event and the absolute time at which it will
	// fire. there is no increment event when TIMA has reached 0xff
	increment    scheduler.Handle
	incrementsAt uint64

	// the overflow sequence. both stages are scheduled at the same time
	overflow   scheduler.Handle
	reload     scheduler.Handle
	overflowAt uint64
}

// NewTimer is the preferred method of initialisation for the Timer type.
func NewTimer(ins *instance.Instance, sch *scheduler.Scheduler, irq *interrupts.Flags) *Timer {
	if sch == nil || irq == nil {
		panic("timer: scheduler and interrupts are required")
	}
	tmr := &Timer{
		ins: ins,
		sch: sch,
		irq: irq,
	}
	tmr.Reset()
	return tmr
}

// Reset stops the timer and sets the registers to the values found after the
// boot ROM has finished.
func (tmr *Timer) Reset() {
	tmr.stop()
	tmr.tima = 0
	tmr.tma = 0
	tmr.tac = 0
	tmr.divBase = tmr.sch.Now() - divAfterBoot<<8
}

func (tmr *Timer) String() string {
	s := fmt.Sprintf("DIV=%#02x TIMA=%#02x TMA=%#02x TAC=%#02x",
		tmr.ReadDIV(), tmr.tima, tmr.tma, tmr.ReadTAC())
	if tmr.Enabled() {
		s = fmt.Sprintf("%s [%s]", s, tmr.clockSelect())
		if r, ok := tmr.sch.Remaining(tmr.overflow); ok {
			s = fmt.Sprintf("%s overflow in %d", s, r)
		}
	}
	return s
}

// Enabled returns true if the timer is running.
func (tmr *Timer) Enabled() bool {
	return tmr.tac&tacEnable == tacEnable
}

func (tmr *Timer) clockSelect() ClockSelect {
	return ClockSelect(tmr.tac & 0b11)
}

// ReadRegister implements the bus.RegisterBus interface.
func (tmr *Timer) ReadRegister(address uint16) (uint8, bool) {
	switch address {
	case addresses.DIV:
		return tmr.ReadDIV(), true
	case addresses.TIMA:
		return tmr.tima, true
	case addresses.TMA:
		return tmr.tma, true
	case addresses.TAC:
		return tmr.ReadTAC(), true
	}
	return 0, false
}

// WriteRegister implements the bus.RegisterBus interface.
func (tmr *Timer) WriteRegister(address uint16, data uint8) bool {
	switch address {
	case addresses.DIV:
		tmr.WriteDIV()
	case addresses.TIMA:
		tmr.WriteTIMA(data)
	case addresses.TMA:
		tmr.WriteTMA(data)
	case addresses.TAC:
		tmr.WriteTAC(data)
	default:
		return false
	}
	return true
}

// ReadDIV returns the current value of the DIV register, which increments
// every 256 T-cycles.
func (tmr *Timer) ReadDIV() uint8 {
	return uint8((tmr.sch.Now() - tmr.divBase) >> 8)
}

// WriteDIV resets DIV to zero. The value written is ignored.
func (tmr *Timer) WriteDIV() {
	tmr.divBase = tmr.sch.Now()
}

// ReadTAC returns the TAC register. The unused bits read as one.
func (tmr *Timer) ReadTAC() uint8 {
	return 0xf8 | tmr.tac
}

// WriteTIMA sets the counter. If the timer is running the count continues
// from the new value.
func (tmr *Timer) WriteTIMA(data uint8) {
	tmr.tima = data
	if tmr.Enabled() {
		tmr.stop()
		tmr.start(tmr.sch.Now())
	}
}

// WriteTMA sets the value loaded into TIMA after an overflow.
func (tmr *Timer) WriteTMA(data uint8) {
	tmr.tma = data
}

// WriteTAC sets the enable bit and the clock select.
func (tmr *Timer) WriteTAC(data uint8) {
	data &= tacMask

	wasEnabled := tmr.Enabled()
	oldSelect := tmr.clockSelect()
	tmr.tac = data

	switch {
	case !wasEnabled && tmr.Enabled():
		tmr.ins.Log.Debugf(tmr.ins, "timer", "started at %s", tmr.clockSelect())
		tmr.start(tmr.sch.Now())
	case wasEnabled && !tmr.Enabled():
		tmr.ins.Log.Debugf(tmr.ins, "timer", "stopped")
		tmr.stop()
	case wasEnabled && oldSelect != tmr.clockSelect():
		tmr.ins.Log.Debugf(tmr.ins, "timer", "clock changed from %s to %s", oldSelect, tmr.clockSelect())
		tmr.stop()
		tmr.start(tmr.sch.Now())
	}
}

// cycles from now until the absolute time
func (tmr *Timer) until(at uint64) uint64 {
	if now := tmr.sch.Now(); at > now {
		return at - now
	}
	return 0
}

// start schedules the increment chain and the overflow sequence, measuring
// from the time given. TIMA reaches 0xff after (255 - TIMA) increments and
// overflows one increment later.
func (tmr *Timer) start(from uint64) {
	delay := tmr.clockSelect().Delay()

	if tmr.tima < 0xff {
		tmr.incrementsAt = from + delay
		tmr.increment = tmr.sch.Schedule(tmr.until(tmr.incrementsAt), "timer increment", tmr.onIncrement, nil)
	}

	tmr.overflowAt = from + (256-uint64(tmr.tima))*delay
	tmr.overflow = tmr.sch.Schedule(tmr.until(tmr.overflowAt), "timer overflow", tmr.onOverflow, nil)
	tmr.reload = tmr.sch.Schedule(tmr.until(tmr.overflowAt+reloadDelay), "timer reload", tmr.onReload, nil)
}

// stop cancels all pending events.
func (tmr *Timer) stop() {
	tmr.sch.Cancel(tmr.increment)
	tmr.sch.Cancel(tmr.overflow)
	tmr.sch.Cancel(tmr.reload)
}

func (tmr *Timer) onIncrement(_ any) {
	tmr.tima++
	if tmr.tima < 0xff {
		tmr.incrementsAt += tmr.clockSelect().Delay()
		tmr.increment = tmr.sch.Schedule(tmr.until(tmr.incrementsAt), "timer increment", tmr.onIncrement, nil)
	}
}

func (tmr *Timer) onOverflow(_ any) {
	tmr.tima = 0
}

func (tmr *Timer) onReload(_ any) {
	tmr.tima = tmr.tma
	tmr.irq.Request(interrupts.Timer)
	tmr.ins.Log.Debugf(tmr.ins, "timer", "overflow: reloaded with %#02x", tmr.tma)
	tmr.start(tmr.overflowAt)
}
