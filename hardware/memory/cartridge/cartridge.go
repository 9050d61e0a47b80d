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

	"github.com/jetsetilly/gopherboy/cartridgeloader"
	"github.com/jetsetilly/gopherboy/curated"
)

// Cartridge defines the information and operations for a Game Boy cartridge.
type Cartridge struct {
	Filename string
	Hash     string
	Header   Header

	// the specific cartridge data, mapped appropriately to the memory
	// interfaces
	mapper cartMapper
}

// NewCartridge is the preferred method of initialisation for the Cartridge
// type. The new cartridge is in the ejected state.
func NewCartridge() *Cartridge {
	cart := &Cartridge{}
	cart.Eject()
	return cart
}

func (cart *Cartridge) String() string {
	if cart.IsEjected() {
		return "ejected"
	}
	return fmt.Sprintf("%s\n%s [%s]", cart.Filename, cart.Header, cart.mapper.MappedBanks())
}

// ID returns the cartridge mapper ID.
func (cart *Cartridge) ID() string {
	return cart.mapper.ID()
}

// MappedBanks returns a string summary of the currently mapped banks.
func (cart *Cartridge) MappedBanks() string {
	return cart.mapper.MappedBanks()
}

// Eject removes the cartridge. Reading from an ejected cartridge returns 0xff.
func (cart *Cartridge) Eject() {
	cart.Filename = "ejected"
	cart.Hash = ""
	cart.Header = Header{}
	cart.mapper = newEjected()
}

// IsEjected returns true if no cartridge is attached.
func (cart *Cartridge) IsEjected() bool {
	_, ok := cart.mapper.(*ejected)
	return ok
}

// Attach the cartridge data described by the loader. The data will be loaded
// if it has not been already.
//
// The returned error can be classified with the Classify() function. If the
// error is not nil then the cartridge is left in the ejected state.
func (cart *Cartridge) Attach(cartload cartridgeloader.Loader) error {
	cart.Eject()

	err := cartload.Load()
	if err != nil {
		return err
	}

	h, err := parseHeader(cartload.Data)
	if err != nil {
		return err
	}

	var mapper cartMapper

	switch h.Type {
	case 0x00:
		mapper = newROMOnly("ROM", cartload.Data, 0)
	case 0x08, 0x09:
		ramSize := h.RAMSize
		if ramSize == 0 {
			ramSize = ramBankSize
		}
		mapper = newROMOnly("ROM+RAM", cartload.Data, ramSize)
	case 0x01:
		mapper = newMBC1("MBC1", cartload.Data, 0)
	case 0x02, 0x03:
		mapper = newMBC1("MBC1", cartload.Data, h.RAMSize)
	default:
		return curated.Errorf(UnsupportedMapper, h.Type)
	}

	cart.Filename = cartload.Filename
	cart.Hash = cartload.Hash
	cart.Header = h
	cart.mapper = mapper

	return nil
}

// Reset the bank switching registers of the cartridge.
func (cart *Cartridge) Reset() {
	cart.mapper.Reset()
}

// Read the cartridge at the address. The address must be in the ROM0, ROMX or
// CartRAM areas.
func (cart *Cartridge) Read(address uint16) uint8 {
	return cart.mapper.Access(address)
}

// Write to the cartridge at the address. The address must be in the ROM0, ROMX
// or CartRAM areas.
func (cart *Cartridge) Write(address uint16, data uint8) {
	cart.mapper.AccessVolatile(address, data)
}

// Peek implements the bus.DebuggerBus interface.
func (cart *Cartridge) Peek(address uint16) uint8 {
	return cart.mapper.Access(address)
}

// Poke implements the bus.DebuggerBus interface. Unlike Write() this changes
// the contents of ROM in the currently mapped bank.
func (cart *Cartridge) Poke(address uint16, data uint8) error {
	return cart.mapper.Poke(address, data)
}

// NumBanks returns the number of ROM banks in the cartridge.
func (cart *Cartridge) NumBanks() int {
	return cart.mapper.NumBanks()
}

// GetBank returns the bank currently mapped to the address.
func (cart *Cartridge) GetBank(address uint16) BankInfo {
	return cart.mapper.GetBank(address)
}
