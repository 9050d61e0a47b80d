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

import "github.com/jetsetilly/gopherboy/curated"

// Ejected is the error returned when trying to change an ejected cartridge.
const Ejected = "cartridge: ejected"

// ejected implements the cartMapper interface.
type ejected struct{}

func newEjected() *ejected {
	return &ejected{}
}

// ID implements the cartMapper interface.
func (cart *ejected) ID() string {
	return "-"
}

// MappedBanks implements the cartMapper interface.
func (cart *ejected) MappedBanks() string {
	return "ejected"
}

// Reset implements the cartMapper interface.
func (cart *ejected) Reset() {
}

// Access implements the cartMapper interface.
func (cart *ejected) Access(_ uint16) uint8 {
	// nothing is driving the data bus
	return 0xff
}

// AccessVolatile implements the cartMapper interface.
func (cart *ejected) AccessVolatile(_ uint16, _ uint8) {
}

// NumBanks implements the cartMapper interface.
func (cart *ejected) NumBanks() int {
	return 0
}

// GetBank implements the cartMapper interface.
func (cart *ejected) GetBank(_ uint16) BankInfo {
	return BankInfo{}
}

// Poke implements the cartMapper interface.
func (cart *ejected) Poke(_ uint16, _ uint8) error {
	return curated.Errorf(Ejected)
}
