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

package timer_test

import (
	"testing"

	"github.com/jetsetilly/gopherboy/hardware/instance"
	"github.com/jetsetilly/gopherboy/hardware/interrupts"
	"github.com/jetsetilly/gopherboy/hardware/memory/addresses"
	"github.com/jetsetilly/gopherboy/hardware/scheduler"
	"github.com/jetsetilly/gopherboy/hardware/timer"
	"github.com/jetsetilly/gopherboy/test"
)

type harness struct {
	sch *scheduler.Scheduler
	irq *interrupts.Flags
	tmr *timer.Timer
}

func newHarness(t *testing.T) *harness {
	t.Helper()
	ins, err := instance.NewInstance(instance.Test, nil)
	test.DemandSuccess(t, err)
	h := &harness{
		sch: scheduler.NewScheduler(),
		irq: interrupts.NewFlags(),
	}
	h.tmr = timer.NewTimer(ins, h.sch, h.irq)
	h.irq.WriteIF(0)
	return h
}

// advance the clock one quantum at a time in the same way as the bus
func (h *harness) advance(cycles int) {
	for i := 0; i < cycles; i += scheduler.Quantum {
		h.sch.Advance(scheduler.Quantum)
	}
}

func (h *harness) tima() uint8 {
	v, ok := h.tmr.ReadRegister(addresses.TIMA)
	if !ok {
		panic("TIMA not owned by timer")
	}
	return v
}

func TestDelays(t *testing.T) {
	test.ExpectEquality(t, timer.CPU4096.Delay(), uint64(1024))
	test.ExpectEquality(t, timer.CPU262144.Delay(), uint64(16))
	test.ExpectEquality(t, timer.CPU65536.Delay(), uint64(64))
	test.ExpectEquality(t, timer.CPU16384.Delay(), uint64(256))
	test.ExpectEquality(t, timer.CPU262144.String(), "262144Hz")
}

func TestSingleIncrement(t *testing.T) {
	h := newHarness(t)
	h.tmr.WriteRegister(addresses.TAC, 0x05)

	// the bus advances in quanta so 15 cycles is three quanta
	h.sch.Advance(12)
	h.sch.Advance(3)
	test.ExpectEquality(t, h.tima(), uint8(0))
	h.sch.Advance(1)
	test.ExpectEquality(t, h.tima(), uint8(1))
}

func TestSlowestClock(t *testing.T) {
	h := newHarness(t)
	h.tmr.WriteRegister(addresses.TAC, 0x04)
	h.advance(1020)
	test.ExpectEquality(t, h.tima(), uint8(0))
	h.advance(4)
	test.ExpectEquality(t, h.tima(), uint8(1))
	h.advance(1024 * 10)
	test.ExpectEquality(t, h.tima(), uint8(11))
}

func TestDisabled(t *testing.T) {
	h := newHarness(t)
	h.tmr.WriteRegister(addresses.TAC, 0x01)
	h.advance(1024)
	test.ExpectEquality(t, h.tima(), uint8(0))
	test.ExpectEquality(t, h.sch.Pending(), 0)

	v, _ := h.tmr.ReadRegister(addresses.TAC)
	test.ExpectEquality(t, v, uint8(0xf9))
}

func TestOverflow(t *testing.T) {
	h := newHarness(t)
	h.tmr.WriteRegister(addresses.TMA, 0x42)
	h.tmr.WriteRegister(addresses.TIMA, 0xfe)
	h.tmr.WriteRegister(addresses.TAC, 0x05)

	h.advance(16)
	test.ExpectEquality(t, h.tima(), uint8(0xff))
	test.ExpectEquality(t, h.irq.Requested(interrupts.Timer), false)

	// TIMA reads as zero for one M-cycle
	h.advance(16)
	test.ExpectEquality(t, h.tima(), uint8(0x00))
	test.ExpectEquality(t, h.irq.Requested(interrupts.Timer), false)

	h.advance(4)
	test.ExpectEquality(t, h.tima(), uint8(0x42))
	test.ExpectEquality(t, h.irq.Requested(interrupts.Timer), true)

	// counting continues from the moment of overflow, not the moment of reload
	h.advance(8)
	test.ExpectEquality(t, h.tima(), uint8(0x42))
	h.advance(4)
	test.ExpectEquality(t, h.tima(), uint8(0x43))
}

func TestRepeatedOverflow(t *testing.T) {
	h := newHarness(t)
	h.tmr.WriteRegister(addresses.TMA, 0xf0)
	h.tmr.WriteRegister(addresses.TAC, 0x05)

	// first overflow after 256 increments and then after every 16
	h.advance(256*16 + 4)
	test.ExpectEquality(t, h.tima(), uint8(0xf0))
	h.irq.WriteIF(0)

	h.advance(16 * 16)
	test.ExpectEquality(t, h.tima(), uint8(0xf0))
	test.ExpectEquality(t, h.irq.Requested(interrupts.Timer), true)

	// events in the scheduler never accumulate
	test.ExpectEquality(t, h.sch.Pending(), 3)
}

func TestWriteTIMA(t *testing.T) {
	h := newHarness(t)
	h.tmr.WriteRegister(addresses.TAC, 0x05)
	h.advance(8)

	// writing TIMA restarts the count from the moment of the write
	h.tmr.WriteRegister(addresses.TIMA, 0xff)
	test.ExpectEquality(t, h.sch.Pending(), 2)
	h.advance(12)
	test.ExpectEquality(t, h.tima(), uint8(0xff))
	h.advance(4)
	test.ExpectEquality(t, h.tima(), uint8(0x00))
	h.advance(4)
	test.ExpectEquality(t, h.tima(), uint8(0x00))
	test.ExpectEquality(t, h.irq.Requested(interrupts.Timer), true)
}

func TestWriteTIMADuringReload(t *testing.T) {
	h := newHarness(t)
	h.tmr.WriteRegister(addresses.TMA, 0x80)
	h.tmr.WriteRegister(addresses.TIMA, 0xff)
	h.tmr.WriteRegister(addresses.TAC, 0x05)
	h.advance(16)
	test.ExpectEquality(t, h.tima(), uint8(0x00))

	// a write in the cycle between overflow and reload cancels the reload
	h.tmr.WriteRegister(addresses.TIMA, 0x10)
	h.advance(4)
	test.ExpectEquality(t, h.tima(), uint8(0x10))
	test.ExpectEquality(t, h.irq.Requested(interrupts.Timer), false)
}

func TestTACTransitions(t *testing.T) {
	h := newHarness(t)

	h.tmr.WriteRegister(addresses.TAC, 0x05)
	test.ExpectEquality(t, h.sch.Pending(), 3)

	// enabling while enabled with the same clock is a no-op
	h.advance(8)
	h.tmr.WriteRegister(addresses.TAC, 0x05)
	test.ExpectEquality(t, h.sch.Pending(), 3)
	h.advance(8)
	test.ExpectEquality(t, h.tima(), uint8(1))

	// changing the clock select restarts the count
	h.advance(8)
	h.tmr.WriteRegister(addresses.TAC, 0x06)
	test.ExpectEquality(t, h.sch.Pending(), 3)
	h.advance(60)
	test.ExpectEquality(t, h.tima(), uint8(1))
	h.advance(4)
	test.ExpectEquality(t, h.tima(), uint8(2))

	// disabling removes all events
	h.tmr.WriteRegister(addresses.TAC, 0x02)
	test.ExpectEquality(t, h.sch.Pending(), 0)
	h.advance(1024)
	test.ExpectEquality(t, h.tima(), uint8(2))
}

func TestDIV(t *testing.T) {
	h := newHarness(t)
	v, _ := h.tmr.ReadRegister(addresses.DIV)
	test.ExpectEquality(t, v, uint8(0xab))

	h.advance(256)
	v, _ = h.tmr.ReadRegister(addresses.DIV)
	test.ExpectEquality(t, v, uint8(0xac))

	h.tmr.WriteRegister(addresses.DIV, 0x99)
	v, _ = h.tmr.ReadRegister(addresses.DIV)
	test.ExpectEquality(t, v, uint8(0x00))
	h.advance(252)
	v, _ = h.tmr.ReadRegister(addresses.DIV)
	test.ExpectEquality(t, v, uint8(0x00))
	h.advance(4)
	v, _ = h.tmr.ReadRegister(addresses.DIV)
	test.ExpectEquality(t, v, uint8(0x01))
}

func TestNotOwned(t *testing.T) {
	h := newHarness(t)
	_, ok := h.tmr.ReadRegister(addresses.SB)
	test.ExpectEquality(t, ok, false)
	test.ExpectEquality(t, h.tmr.WriteRegister(addresses.IF, 0x00), false)
}

func TestReset(t *testing.T) {
	h := newHarness(t)
	h.tmr.WriteRegister(addresses.TIMA, 0x20)
	h.tmr.WriteRegister(addresses.TAC, 0x07)
	h.tmr.Reset()
	test.ExpectEquality(t, h.sch.Pending(), 0)
	test.ExpectEquality(t, h.tima(), uint8(0))
	test.ExpectEquality(t, h.tmr.String(), "DIV=0xab TIMA=0x00 TMA=0x00 TAC=0xf8")
}
