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
	"strings"

	"github.com/jetsetilly/gopherboy/curated"
)

// locations in the cartridge header.
const (
	headerTitle         = 0x0134
	headerTitleEnd      = 0x0143
	headerType          = 0x0147
	headerROMSize       = 0x0148
	headerRAMSize       = 0x0149
	headerChecksum      = 0x014d
	headerChecksumStart = 0x0134
	headerChecksumEnd   = 0x014c
)

// MinimumSize is the size of the smallest possible cartridge image. Anything
// smaller than this does not contain the entire header.
const MinimumSize = 0x0150

// Header is the information found in the cartridge header.
type Header struct {
	Title    string
	Type     uint8
	ROMSize  int
	RAMSize  int
	Checksum uint8
}

func (h Header) String() string {
	s := fmt.Sprintf("%s [%s] %dKB ROM", h.Title, typeName(h.Type), h.ROMSize/1024)
	if h.RAMSize > 0 {
		s = fmt.Sprintf("%s %dKB RAM", s, h.RAMSize/1024)
	}
	return s
}

// HeaderChecksum calculates the checksum of the header in the same way as the
// boot ROM. The data must be at least MinimumSize bytes long.
func HeaderChecksum(data []uint8) uint8 {
	var x uint8
	for i := headerChecksumStart; i <= headerChecksumEnd; i++ {
		x = x - data[i] - 1
	}
	return x
}

// sizes of cartridge RAM indexed by the value in the header.
var ramSizes = [...]int{0, 2048, 8192, 32768, 131072, 65536}

// parseHeader reads and validates the header. the cartridge type is not
// validated here.
func parseHeader(data []uint8) (Header, error) {
	if len(data) < MinimumSize {
		return Header{}, curated.Errorf(BadSize, len(data))
	}

	h := Header{
		Type:     data[headerType],
		ROMSize:  32768 << (data[headerROMSize] & 0x0f),
		Checksum: data[headerChecksum],
	}

	if c := HeaderChecksum(data); c != h.Checksum {
		return Header{}, curated.Errorf(InvalidChecksum, h.Checksum, c)
	}

	if r := int(data[headerRAMSize]); r < len(ramSizes) {
		h.RAMSize = ramSizes[r]
	}

	// the title is padded with zeroes. later cartridges use the end of the
	// title area for other information
	title := string(data[headerTitle : headerTitleEnd+1])
	if i := strings.IndexByte(title, 0); i >= 0 {
		title = title[:i]
	}
	h.Title = strings.TrimSpace(strings.Map(func(r rune) rune {
		if r < 0x20 || r > 0x7e {
			return -1
		}
		return r
	}, title))

	return h, nil
}

func typeName(t uint8) string {
	switch t {
	case 0x00:
		return "ROM ONLY"
	case 0x01:
		return "MBC1"
	case 0x02:
		return "MBC1+RAM"
	case 0x03:
		return "MBC1+RAM+BATTERY"
	case 0x08:
		return "ROM+RAM"
	case 0x09:
		return "ROM+RAM+BATTERY"
	}
	return fmt.Sprintf("%#02x", t)
}
