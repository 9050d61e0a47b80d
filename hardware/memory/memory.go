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

package memory

import (
	"fmt"

	"github.com/jetsetilly/gopherboy/curated"
	"github.com/jetsetilly/gopherboy/hardware/instance"
	"github.com/jetsetilly/gopherboy/hardware/interrupts"
	"github.com/jetsetilly/gopherboy/hardware/memory/addresses"
	"github.com/jetsetilly/gopherboy/hardware/memory/bus"
	"github.com/jetsetilly/gopherboy/hardware/memory/cartridge"
	"github.com/jetsetilly/gopherboy/hardware/memory/memorymap"
	"github.com/jetsetilly/gopherboy/hardware/scheduler"
)

// Sentinal error patterns.
const (
	PokeRegister = "memory: cannot poke peripheral register (%#04x)"
)

// the value returned by a read of an unmapped address
const unmapped = 0xff

// the value of LY when the LCD is stubbed. the first line of the vertical
// blank
const stubbedLY = 0x90

// I/O registers that have no emulation but which are stored so that they read
// back the value written to them
var stubbed [memorymap.MemtopIO - memorymap.OriginIO + 1]bool

func init() {
	// audio registers and wave RAM
	for a := 0xff10; a <= 0xff3f; a++ {
		stubbed[a&0x7f] = true
	}

	// lcd registers
	for a := 0xff40; a <= 0xff4b; a++ {
		stubbed[a&0x7f] = true
	}

	stubbed[addresses.P1&0x7f] = true
	stubbed[addresses.BOOT&0x7f] = true
}

// Memory is the bus between the CPU and the rest of the Game Boy. Every access
// through the CPUBus interface advances the scheduler by one quantum.
type Memory struct {
	ins *instance.Instance
	sch *scheduler.Scheduler
	irq *interrupts.Flags

	Cart *cartridge.Cartridge
	VRAM *RAM
	WRAM *RAM
	OAM  *RAM
	HRAM *RAM

	// storage for the stubbed I/O registers
	io [memorymap.MemtopIO - memorymap.OriginIO + 1]uint8

	// the peripherals that own I/O registers
	peripherals []bus.RegisterBus
}

// NewMemory is the preferred method of initialisation for the Memory type.
// Peripherals are consulted in order when an I/O register is accessed.
func NewMemory(ins *instance.Instance, sch *scheduler.Scheduler, irq *interrupts.Flags,
	cart *cartridge.Cartridge, peripherals ...bus.RegisterBus) *Memory {

	if sch == nil || irq == nil || cart == nil {
		panic("memory: scheduler, interrupts and cartridge are required")
	}

	mem := &Memory{
		ins:         ins,
		sch:         sch,
		irq:         irq,
		Cart:        cart,
		VRAM:        newRAM("VRAM", memorymap.OriginVRAM, memorymap.MemtopVRAM),
		WRAM:        newRAM("WRAM", memorymap.OriginWRAM, memorymap.MemtopWRAM),
		OAM:         newRAM("OAM", memorymap.OriginOAM, memorymap.MemtopOAM),
		HRAM:        newRAM("HRAM", memorymap.OriginHRAM, memorymap.MemtopHRAM),
		peripherals: peripherals,
	}
	mem.Reset()

	return mem
}

func (mem *Memory) String() string {
	return fmt.Sprintf("cart=%s clock=%d", mem.Cart.ID(), mem.sch.Now())
}

// Reset clears the RAM areas and the stubbed I/O registers. The cartridge and
// the peripherals are not reset.
func (mem *Memory) Reset() {
	mem.VRAM.Clear()
	mem.WRAM.Clear()
	mem.OAM.Clear()
	mem.HRAM.Clear()
	clear(mem.io[:])

	// joypad with no buttons selected
	mem.io[addresses.P1&0x7f] = 0x30

	// values after the boot ROM has finished. the lcd is on and the boot ROM
	// is no longer mapped
	mem.io[0xff40&0x7f] = 0x91
	mem.io[0xff47&0x7f] = 0xfc
	mem.io[addresses.BOOT&0x7f] = 0x01
}

// Read implements the bus.CPUBus interface.
func (mem *Memory) Read(address uint16) uint8 {
	data := mem.read(address, false)
	mem.sch.Advance(scheduler.Quantum)
	return data
}

// Write implements the bus.CPUBus interface.
func (mem *Memory) Write(address uint16, data uint8) {
	mem.write(address, data, false)
	mem.sch.Advance(scheduler.Quantum)
}

// Idle implements the bus.CPUBus interface.
func (mem *Memory) Idle() {
	mem.sch.Advance(scheduler.Quantum)
}

// Peek implements the bus.DebuggerBus interface.
func (mem *Memory) Peek(address uint16) uint8 {
	return mem.read(address, true)
}

// Poke implements the bus.DebuggerBus interface. Registers owned by a
// peripheral cannot be poked.
func (mem *Memory) Poke(address uint16, data uint8) error {
	address, area := memorymap.MapAddress(address)

	switch area {
	case memorymap.ROM0, memorymap.ROMX, memorymap.CartRAM:
		return mem.Cart.Poke(address, data)
	case memorymap.IO:
		for _, p := range mem.peripherals {
			if _, ok := p.ReadRegister(address); ok {
				return curated.Errorf(PokeRegister, address)
			}
		}
	}

	mem.write(address, data, true)
	return nil
}

func (mem *Memory) warn(format string, address uint16) {
	if mem.ins.Prefs.UnmappedWarnings.Get() {
		mem.ins.Log.Warnf(mem.ins, "memory", format, address)
	}
}

func (mem *Memory) read(address uint16, peek bool) uint8 {
	address, area := memorymap.MapAddress(address)

	switch area {
	case memorymap.ROM0, memorymap.ROMX, memorymap.CartRAM:
		if peek {
			return mem.Cart.Peek(address)
		}
		return mem.Cart.Read(address)
	case memorymap.VRAM:
		return mem.VRAM.read(address)
	case memorymap.WRAM:
		return mem.WRAM.read(address)
	case memorymap.OAM:
		return mem.OAM.read(address)
	case memorymap.HRAM:
		return mem.HRAM.read(address)
	case memorymap.IE:
		return mem.irq.ReadIE()
	case memorymap.IO:
		return mem.readIO(address, peek)
	}

	if !peek {
		mem.warn("unmapped read at %#04x", address)
	}
	return unmapped
}

func (mem *Memory) readIO(address uint16, peek bool) uint8 {
	switch address {
	case addresses.IF:
		return mem.irq.ReadIF()
	case addresses.P1:
		// no buttons are ever pressed
		return 0xc0 | mem.io[address&0x7f] | 0x0f
	case addresses.LY:
		if mem.ins.Prefs.StubLCD.Get() {
			return stubbedLY
		}
	}

	for _, p := range mem.peripherals {
		if data, ok := p.ReadRegister(address); ok {
			return data
		}
	}

	if stubbed[address&0x7f] {
		return mem.io[address&0x7f]
	}

	if !peek {
		mem.warn("unmapped register read at %#04x", address)
	}
	return unmapped
}

func (mem *Memory) write(address uint16, data uint8, poke bool) {
	address, area := memorymap.MapAddress(address)

	switch area {
	case memorymap.ROM0, memorymap.ROMX, memorymap.CartRAM:
		mem.Cart.Write(address, data)
	case memorymap.VRAM:
		mem.VRAM.write(address, data)
	case memorymap.WRAM:
		mem.WRAM.write(address, data)
	case memorymap.OAM:
		mem.OAM.write(address, data)
	case memorymap.HRAM:
		mem.HRAM.write(address, data)
	case memorymap.IE:
		mem.irq.WriteIE(data)
	case memorymap.IO:
		mem.writeIO(address, data, poke)
	default:
		if !poke {
			mem.warn("unmapped write at %#04x", address)
		}
	}
}

func (mem *Memory) writeIO(address uint16, data uint8, poke bool) {
	switch address {
	case addresses.IF:
		mem.irq.WriteIF(data)
		return
	case addresses.P1:
		// only the select bits can be written
		mem.io[address&0x7f] = data & 0x30
		return
	}

	for _, p := range mem.peripherals {
		if p.WriteRegister(address, data) {
			return
		}
	}

	if stubbed[address&0x7f] {
		mem.io[address&0x7f] = data
		return
	}

	if !poke {
		mem.warn("unmapped register write at %#04x", address)
	}
}
