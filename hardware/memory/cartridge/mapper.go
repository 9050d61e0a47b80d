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

import "fmt"

// the size of a ROM bank and of a RAM bank.
const (
	romBankSize = 0x4000
	ramBankSize = 0x2000
)

// cartMapper implementations hold the actual data from the loaded ROM and keep
// track of which banks are mapped to individual addresses. addresses are not
// normalised and will be in the ROM0, ROMX or CartRAM areas.
type cartMapper interface {
	ID() string
	MappedBanks() string

	// reset the banking registers to their power on state. RAM contents
	// are not changed
	Reset()

	// read the cartridge at the address. reading does not change the state
	// of the cartridge
	Access(addr uint16) uint8

	// write to the cartridge at the address. for ROM addresses this will
	// usually be a bank switching register
	AccessVolatile(addr uint16, data uint8)

	NumBanks() int
	GetBank(addr uint16) BankInfo

	// change the value of the underlying ROM or RAM at the address, as it is
	// currently mapped
	Poke(addr uint16, data uint8) error
}

// BankInfo identifies the bank mapped to an address.
type BankInfo struct {
	Number int
	IsRAM  bool
}

func (b BankInfo) String() string {
	if b.IsRAM {
		return fmt.Sprintf("%dR", b.Number)
	}
	return fmt.Sprintf("%d", b.Number)
}

// split data into banks of the specified size. the last bank is padded with
// 0xff if necessary and there are always at least min banks.
func splitBanks(data []uint8, size int, min int) [][]uint8 {
	n := (len(data) + size - 1) / size
	if n < min {
		n = min
	}
	banks := make([][]uint8, n)
	for i := range banks {
		banks[i] = make([]uint8, size)
		for j := range banks[i] {
			banks[i][j] = 0xff
		}
		if o := i * size; o < len(data) {
			copy(banks[i], data[o:])
		}
	}
	return banks
}
