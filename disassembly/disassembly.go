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

package disassembly

import (
	"github.com/jetsetilly/gopherboy/hardware/cpu/execution"
	"github.com/jetsetilly/gopherboy/hardware/cpu/instructions"
	"github.com/jetsetilly/gopherboy/hardware/memory/bus"
	"github.com/jetsetilly/gopherboy/hardware/memory/cartridge"
	"github.com/jetsetilly/gopherboy/hardware/memory/memorymap"
)

// Banks is implemented by the cartridge. It is used to annotate entries in the
// cartridge areas with the bank number.
type Banks interface {
	GetBank(address uint16) cartridge.BankInfo
}

// Disassembly decodes and formats instructions.
type Disassembly struct {
	mem   bus.DebuggerBus
	banks Banks

	// column widths for the Write() function
	fields fields
}

// NewDisassembly is the preferred method of initialisation for the Disassembly
// type. The banks argument can be nil.
func NewDisassembly(mem bus.DebuggerBus, banks Banks) *Disassembly {
	if mem == nil {
		panic("disassembly: nil memory")
	}
	return &Disassembly{
		mem:   mem,
		banks: banks,
	}
}

// Decode the instruction at the address without executing it. The returned
// entry has level EntryLevelDecoded.
func (dsm *Disassembly) Decode(address uint16) *Entry {
	return dsm.formatResult(dsm.decode(address), EntryLevelDecoded)
}

// FormatResult creates an Entry for the result of an executed instruction.
// The returned entry has level EntryLevelExecuted.
func (dsm *Disassembly) FormatResult(result execution.Result) *Entry {
	return dsm.formatResult(result, EntryLevelExecuted)
}

// Range decodes count instructions starting at the address. Each instruction
// follows on from the previous one.
func (dsm *Disassembly) Range(address uint16, count int) []*Entry {
	entries := make([]*Entry, 0, count)
	for range count {
		e := dsm.Decode(address)
		entries = append(entries, e)
		address += uint16(e.Result.Defn.Bytes)
	}
	return entries
}

func (dsm *Disassembly) decode(address uint16) execution.Result {
	opcode := dsm.mem.Peek(address)
	defn := instructions.Unprefixed[opcode]

	if defn.Family == instructions.Prefix {
		defn = instructions.Prefixed[dsm.mem.Peek(address+1)]
	}

	result := execution.Result{
		Address:   address,
		Defn:      defn,
		ByteCount: defn.Bytes,
		Cycles:    defn.Cycles,
		Final:     true,
	}

	if !defn.Prefixed {
		switch defn.Bytes {
		case 2:
			result.InstructionData = uint16(dsm.mem.Peek(address + 1))
		case 3:
			result.InstructionData = uint16(dsm.mem.Peek(address+1)) | uint16(dsm.mem.Peek(address+2))<<8
		}
	}

	return result
}

// the bank of the address if it is in one of the cartridge areas.
func (dsm *Disassembly) bank(address uint16) string {
	if dsm.banks == nil {
		return ""
	}
	switch memorymap.AreaOf(address) {
	case memorymap.ROM0, memorymap.ROMX, memorymap.CartRAM:
		return dsm.banks.GetBank(address).String()
	}
	return ""
}
