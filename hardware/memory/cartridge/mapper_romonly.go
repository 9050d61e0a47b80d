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

package cartridge

import (
	"fmt"

	"github.com/jetsetilly/gopherboy/hardware/memory/memorymap"
)

// romOnly implements the cartMapper interface for cartridges with no bank
// switching. The cartridge can have up to 8KB of RAM.
type romOnly struct {
	id  string
	rom []uint8
	ram []uint8
}

func newROMOnly(id string, data []uint8, ramSize int) *romOnly {
	cart := &romOnly{
		id:  id,
		rom: splitBanks(data, 2*romBankSize, 1)[0],
	}
	if ramSize > ramBankSize {
		ramSize = ramBankSize
	}
	if ramSize > 0 {
		cart.ram = make([]uint8, ramSize)
	}
	return cart
}

// ID implements the cartMapper interface.
func (cart *romOnly) ID() string {
	return cart.id
}

// MappedBanks implements the cartMapper interface.
func (cart *romOnly) MappedBanks() string {
	if len(cart.ram) > 0 {
		return fmt.Sprintf("ROM0=0 ROMX=1 RAM=%dKB", len(cart.ram)/1024)
	}
	return "ROM0=0 ROMX=1"
}

// Reset implements the cartMapper interface.
func (cart *romOnly) Reset() {
}

// Access implements the cartMapper interface.
func (cart *romOnly) Access(addr uint16) uint8 {
	if addr <= memorymap.MemtopROMX {
		return cart.rom[addr]
	}
	if len(cart.ram) == 0 {
		return 0xff
	}
	return cart.ram[int(addr-memorymap.OriginCartRAM)%len(cart.ram)]
}

// AccessVolatile implements the cartMapper interface.
func (cart *romOnly) AccessVolatile(addr uint16, data uint8) {
	if addr <= memorymap.MemtopROMX || len(cart.ram) == 0 {
		return
	}
	cart.ram[int(addr-memorymap.OriginCartRAM)%len(cart.ram)] = data
}

// NumBanks implements the cartMapper interface.
func (cart *romOnly) NumBanks() int {
	return 2
}

// GetBank implements the cartMapper interface.
func (cart *romOnly) GetBank(addr uint16) BankInfo {
	switch memorymap.AreaOf(addr) {
	case memorymap.ROMX:
		return BankInfo{Number: 1}
	case memorymap.CartRAM:
		return BankInfo{IsRAM: true}
	}
	return BankInfo{}
}

// Poke implements the cartMapper interface.
func (cart *romOnly) Poke(addr uint16, data uint8) error {
	if addr <= memorymap.MemtopROMX {
		cart.rom[addr] = data
		return nil
	}
	cart.AccessVolatile(addr, data)
	return nil
}
