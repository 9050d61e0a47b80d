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

package instructions

// Family groups instructions that are executed in the same way.
type Family int

// List of valid Family values.
const (
	Invalid Family = iota

	// control
	Nop
	Stop
	Halt
	Prefix
	DisableInterrupts
	EnableInterrupts

	// 8 bit loads
	Load8
	Load8Immediate
	StoreIndirectA
	LoadIndirectA
	StoreAbsoluteA
	LoadAbsoluteA
	StoreHighA
	LoadHighA
	StoreHighCA
	LoadHighCA

	// 16 bit loads
	Load16Immediate
	StoreSP
	LoadSPHL
	LoadHLSP
	Push
	Pop

	// arithmetic and logic
	ALU
	ALUImmediate
	Inc8
	Dec8
	Inc16
	Dec16
	AddHL
	AddSP
	RotateA
	DecimalAdjust
	Complement
	SetCarry
	ComplementCarry

	// flow
	JumpRelative
	Jump
	JumpHL
	Call
	Return
	ReturnInterrupt
	Restart

	// prefixed
	Rotate
	Bit
	ResetBit
	SetBit
)

func (f Family) String() string {
	switch f {
	case Invalid:
		return "invalid"
	case Nop, Stop, Halt, Prefix, DisableInterrupts, EnableInterrupts:
		return "control"
	case Load8, Load8Immediate, StoreIndirectA, LoadIndirectA, StoreAbsoluteA,
		LoadAbsoluteA, StoreHighA, LoadHighA, StoreHighCA, LoadHighCA:
		return "load8"
	case Load16Immediate, StoreSP, LoadSPHL, LoadHLSP, Push, Pop:
		return "load16"
	case JumpRelative, Jump, JumpHL, Call, Return, ReturnInterrupt, Restart:
		return "flow"
	case Rotate, Bit, ResetBit, SetBit:
		return "bits"
	}
	return "alu"
}

// IsFlow returns true if the family can change the program counter other than
// by moving to the next instruction.
func (f Family) IsFlow() bool {
	switch f {
	case JumpRelative, Jump, JumpHL, Call, Return, ReturnInterrupt, Restart:
		return true
	}
	return false
}
