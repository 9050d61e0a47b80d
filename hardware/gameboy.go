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

package hardware

import (
	"fmt"

	"github.com/jetsetilly/gopherboy/cartridgeloader"
	"github.com/jetsetilly/gopherboy/curated"
	"github.com/jetsetilly/gopherboy/hardware/cpu"
	"github.com/jetsetilly/gopherboy/hardware/instance"
	"github.com/jetsetilly/gopherboy/hardware/interrupts"
	"github.com/jetsetilly/gopherboy/hardware/memory"
	"github.com/jetsetilly/gopherboy/hardware/memory/cartridge"
	"github.com/jetsetilly/gopherboy/hardware/scheduler"
	"github.com/jetsetilly/gopherboy/hardware/serial"
	"github.com/jetsetilly/gopherboy/hardware/timer"
	"github.com/jetsetilly/gopherboy/logger"
)

// GameBoy struct is the main container for the emulated components of the
// Game Boy.
type GameBoy struct {
	Instance *instance.Instance

	Scheduler  *scheduler.Scheduler
	Interrupts *interrupts.Flags
	CPU        *cpu.CPU
	Mem        *memory.Memory
	Timer      *timer.Timer
	Serial     *serial.Serial
}

// NewGameBoy creates a new GameBoy and everything associated with the
// hardware. If the instance argument is nil then a new instance is created
// with default preferences that are not saved to disk.
func NewGameBoy(ins *instance.Instance) (*GameBoy, error) {
	if ins == nil {
		var err error
		ins, err = instance.NewInstance(instance.Main, nil)
		if err != nil {
			return nil, curated.Errorf("gameboy: %v", err)
		}
	}

	gb := &GameBoy{
		Instance:   ins,
		Scheduler:  scheduler.NewScheduler(),
		Interrupts: interrupts.NewFlags(),
	}

	gb.Timer = timer.NewTimer(ins, gb.Scheduler, gb.Interrupts)
	gb.Serial = serial.NewSerial(ins, gb.Scheduler, gb.Interrupts)
	gb.Mem = memory.NewMemory(ins, gb.Scheduler, gb.Interrupts, cartridge.NewCartridge(), gb.Timer, gb.Serial)
	gb.CPU = cpu.NewCPU(ins, gb.Mem, gb.Interrupts)

	return gb, nil
}

func (gb *GameBoy) String() string {
	return fmt.Sprintf("%s\n%s\n%s\n%s", gb.CPU, gb.Timer, gb.Interrupts, gb.Mem)
}

// AttachCartridge loads the cartridge described by the loader and performs a
// hard reset. Use cartridge.Classify() to discriminate the returned error.
//
// If the cartridge can not be attached then the cartridge slot is left empty
// and the emulation is not reset.
func (gb *GameBoy) AttachCartridge(cartload cartridgeloader.Loader) error {
	err := gb.Mem.Cart.Attach(cartload)
	if err != nil {
		return err
	}
	gb.Instance.Log.Logf(gb.Instance, "gameboy", "attached %s", gb.Mem.Cart.Header)
	gb.HardReset()
	return nil
}

// Reset the CPU to the state it has when the boot ROM hands over control to
// the cartridge. Memory, peripherals and pending events are not changed.
func (gb *GameBoy) Reset() {
	gb.CPU.Reset()
}

// HardReset is the equivalent of switching the Game Boy off and on again. All
// pending events are removed and the clock restarts from zero.
func (gb *GameBoy) HardReset() {
	gb.Serial.Flush()
	gb.Scheduler.Reset()
	gb.Interrupts.Reset()
	gb.Timer.Reset()
	gb.Serial.Reset()
	gb.Mem.Reset()
	gb.Mem.Cart.Reset()
	gb.CPU.Reset()
}

// Now returns the current value of the scheduler clock in T-cycles.
func (gb *GameBoy) Now() uint64 {
	return gb.Scheduler.Now()
}

// Peek returns the value at the address without side effects and without
// advancing the clock.
func (gb *GameBoy) Peek(address uint16) uint8 {
	return gb.Mem.Peek(address)
}

// Poke changes the value at the address without side effects and without
// advancing the clock.
func (gb *GameBoy) Poke(address uint16, data uint8) error {
	return gb.Mem.Poke(address, data)
}

// SetLogCallback sets the function that receives every log entry made by the
// emulation. A nil callback removes a previously set callback.
func (gb *GameBoy) SetLogCallback(callback logger.Callback) {
	gb.Instance.Log.SetCallback(callback)
}
