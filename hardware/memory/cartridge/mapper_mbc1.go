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

// mbc1 implements the cartMapper interface for the MBC1 controller. Up to
// 2MB of ROM and 32KB of RAM.
//
// Bank switching registers, selected by writing to the ROM areas:
//
//	0x0000 - 0x1fff	RAM enable (0x0a in the lower nibble)
//	0x2000 - 0x3fff	lower five bits of the ROM bank (zero is treated as one)
//	0x4000 - 0x5fff	two bits used as the RAM bank or the upper bits of the ROM bank
//	0x6000 - 0x7fff	banking mode
//
// In mode one the upper bits also apply to the ROM0 area and to the RAM.
type mbc1 struct {
	id    string
	banks [][]uint8
	ram   []uint8

	ramEnabled bool
	lower      uint8
	upper      uint8
	mode       uint8
}

func newMBC1(id string, data []uint8, ramSize int) *mbc1 {
	cart := &mbc1{
		id:    id,
		banks: splitBanks(data, romBankSize, 2),
	}
	if ramSize > 4*ramBankSize {
		ramSize = 4 * ramBankSize
	}
	if ramSize > 0 {
		cart.ram = make([]uint8, ramSize)
	}
	cart.Reset()
	return cart
}

// ID implements the cartMapper interface.
func (cart *mbc1) ID() string {
	return cart.id
}

// MappedBanks implements the cartMapper interface.
func (cart *mbc1) MappedBanks() string {
	s := fmt.Sprintf("ROM0=%d ROMX=%d", cart.bank0(), cart.bankX())
	if len(cart.ram) > 0 {
		if cart.ramEnabled {
			s = fmt.Sprintf("%s RAM=%d", s, cart.ramBank())
		} else {
			s = fmt.Sprintf("%s RAM=off", s)
		}
	}
	return s
}

// Reset implements the cartMapper interface.
func (cart *mbc1) Reset() {
	cart.ramEnabled = false
	cart.lower = 1
	cart.upper = 0
	cart.mode = 0
}

func (cart *mbc1) bank0() int {
	if cart.mode == 1 {
		return int(cart.upper<<5) % len(cart.banks)
	}
	return 0
}

func (cart *mbc1) bankX() int {
	return int(cart.upper<<5|cart.lower) % len(cart.banks)
}

func (cart *mbc1) ramBank() int {
	if cart.mode == 1 {
		return int(cart.upper)
	}
	return 0
}

func (cart *mbc1) ramIdx(addr uint16) int {
	return (cart.ramBank()*ramBankSize + int(addr-memorymap.OriginCartRAM)) % len(cart.ram)
}

// Access implements the cartMapper interface.
func (cart *mbc1) Access(addr uint16) uint8 {
	switch {
	case addr <= memorymap.MemtopROM0:
		return cart.banks[cart.bank0()][addr]
	case addr <= memorymap.MemtopROMX:
		return cart.banks[cart.bankX()][addr-memorymap.OriginROMX]
	}
	if !cart.ramEnabled || len(cart.ram) == 0 {
		return 0xff
	}
	return cart.ram[cart.ramIdx(addr)]
}

// AccessVolatile implements the cartMapper interface.
func (cart *mbc1) AccessVolatile(addr uint16, data uint8) {
	switch {
	case addr <= 0x1fff:
		cart.ramEnabled = data&0x0f == 0x0a
	case addr <= 0x3fff:
		cart.lower = data & 0x1f
		if cart.lower == 0 {
			cart.lower = 1
		}
	case addr <= 0x5fff:
		cart.upper = data & 0x03
	case addr <= 0x7fff:
		cart.mode = data & 0x01
	default:
		if cart.ramEnabled && len(cart.ram) > 0 {
			cart.ram[cart.ramIdx(addr)] = data
		}
	}
}

// NumBanks implements the cartMapper interface.
func (cart *mbc1) NumBanks() int {
	return len(cart.banks)
}

// GetBank implements the cartMapper interface.
func (cart *mbc1) GetBank(addr uint16) BankInfo {
	switch memorymap.AreaOf(addr) {
	case memorymap.ROM0:
		return BankInfo{Number: cart.bank0()}
	case memorymap.ROMX:
		return BankInfo{Number: cart.bankX()}
	}
	return BankInfo{Number: cart.ramBank(), IsRAM: true}
}

// Poke implements the cartMapper interface.
func (cart *mbc1) Poke(addr uint16, data uint8) error {
	switch {
	case addr <= memorymap.MemtopROM0:
		cart.banks[cart.bank0()][addr] = data
	case addr <= memorymap.MemtopROMX:
		cart.banks[cart.bankX()][addr-memorymap.OriginROMX] = data
	case len(cart.ram) > 0:
		cart.ram[cart.ramIdx(addr)] = data
	}
	return nil
}
