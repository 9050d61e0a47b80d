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

package serial

import (
	"fmt"
	"strings"

	"github.com/jetsetilly/gopherboy/hardware/instance"
	"github.com/jetsetilly/gopherboy/hardware/interrupts"
	"github.com/jetsetilly/gopherboy/hardware/memory/addresses"
	"github.com/jetsetilly/gopherboy/hardware/scheduler"
)

// TransferCycles is the number of T-cycles taken to transfer one byte using
// the internal clock of 8192Hz.
const TransferCycles = 4096

// lines longer than this are flushed to the log even though there is no
// newline
const maxLineLength = 128

// bits in the SC register
const (
	scStart    = 0x80
	scInternal = 0x01
)

// Serial implements the SB and SC registers.
type Serial struct {
	ins *instance.Instance
	sch *scheduler.Scheduler
	irq *interrupts.Flags

	sb uint8
	sc uint8

	transfer scheduler.Handle

	line   strings.Builder
	output strings.Builder
}

// NewSerial is the preferred method of initialisation for the Serial type.
func NewSerial(ins *instance.Instance, sch *scheduler.Scheduler, irq *interrupts.Flags) *Serial {
	if sch == nil || irq == nil {
		panic("serial: scheduler and interrupts are required")
	}
	ser := &Serial{
		ins: ins,
		sch: sch,
		irq: irq,
	}
	ser.Reset()
	return ser
}

// Reset the serial port. Any transfer in progress is abandoned and the
// collected output is forgotten.
func (ser *Serial) Reset() {
	ser.sch.Cancel(ser.transfer)
	ser.sb = 0x00
	ser.sc = 0x00
	ser.line.Reset()
	ser.output.Reset()
}

func (ser *Serial) String() string {
	s := fmt.Sprintf("SB=%#02x SC=%#02x", ser.sb, ser.ReadSC())
	if r, ok := ser.sch.Remaining(ser.transfer); ok {
		s = fmt.Sprintf("%s transfer in %d", s, r)
	}
	return s
}

// ReadSC returns the SC register. Unused bits read as one.
func (ser *Serial) ReadSC() uint8 {
	return 0x7e | ser.sc
}

// ReadRegister implements the bus.RegisterBus interface.
func (ser *Serial) ReadRegister(address uint16) (uint8, bool) {
	switch address {
	case addresses.SB:
		return ser.sb, true
	case addresses.SC:
		return ser.ReadSC(), true
	}
	return 0, false
}

// WriteRegister implements the bus.RegisterBus interface.
func (ser *Serial) WriteRegister(address uint16, data uint8) bool {
	switch address {
	case addresses.SB:
		ser.sb = data
	case addresses.SC:
		ser.writeSC(data)
	default:
		return false
	}
	return true
}

func (ser *Serial) writeSC(data uint8) {
	ser.sc = data & (scStart | scInternal)

	// without a link cable a transfer using the external clock never
	// completes
	if ser.sc != scStart|scInternal {
		ser.sch.Cancel(ser.transfer)
		return
	}

	// restarting a transfer that is already in progress
	ser.sch.Cancel(ser.transfer)

	ser.push(ser.sb)
	ser.transfer = ser.sch.Schedule(TransferCycles, "serial transfer", ser.onTransferComplete, nil)
}

func (ser *Serial) onTransferComplete(_ any) {
	ser.sb = 0xff
	ser.sc &^= scStart
	ser.irq.Request(interrupts.Serial)
}

// push adds the byte to the output and flushes the current line if necessary.
func (ser *Serial) push(b uint8) {
	ser.output.WriteByte(b)
	if b == '\n' {
		ser.flush()
		return
	}
	ser.line.WriteByte(b)
	if ser.line.Len() >= maxLineLength {
		ser.flush()
	}
}

func (ser *Serial) flush() {
	s := ser.line.String()
	ser.line.Reset()
	if ser.ins.Prefs.SerialEcho.Get() {
		ser.ins.Log.Log(ser.ins, "serial", s)
	} else {
		ser.ins.Log.Debugf(ser.ins, "serial", "%s", s)
	}
}

// Flush writes any incomplete line to the log.
func (ser *Serial) Flush() {
	if ser.line.Len() > 0 {
		ser.flush()
	}
}

// Output returns everything that has been transferred since the last reset.
func (ser *Serial) Output() string {
	return ser.output.String()
}
