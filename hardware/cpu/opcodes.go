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

package cpu

import (
	"github.com/jetsetilly/gopherboy/hardware/cpu/instructions"
)

// handler executes the body of an instruction. the opcode (and the prefix if
// there is one) has already been fetched.
type handler func(mc *CPU, defn *instructions.Definition)

// dispatch tables built from the instruction definitions.
var (
	unprefixed [256]handler
	prefixed   [256]handler
)

func init() {
	for i := range 256 {
		unprefixed[i] = newHandler(instructions.Unprefixed[i])
		prefixed[i] = newPrefixedHandler(instructions.Prefixed[i])
	}
}

// newHandler returns the handler for the instruction family with the operands
// encoded in the opcode bound to it.
func newHandler(defn *instructions.Definition) handler {
	_, y, z, p, _ := instructions.Fields(defn.OpCode)

	switch defn.Family {
	case instructions.Nop:
		return func(mc *CPU, _ *instructions.Definition) {}

	case instructions.Stop:
		// the second byte of STOP is skipped without being read
		return func(mc *CPU, _ *instructions.Definition) {
			mc.PC.Increment()
			mc.LastResult.ByteCount++
		}

	case instructions.Halt:
		return func(mc *CPU, _ *instructions.Definition) {
			mc.halt()
		}

	case instructions.Prefix:
		return func(mc *CPU, _ *instructions.Definition) {
			mc.executePrefixed()
		}

	case instructions.DisableInterrupts:
		return func(mc *CPU, _ *instructions.Definition) {
			mc.IME = false
			mc.imeDelay = 0
		}

	case instructions.EnableInterrupts:
		return func(mc *CPU, _ *instructions.Definition) {
			mc.imeDelay = 2
		}

	case instructions.Load8:
		return func(mc *CPU, _ *instructions.Definition) {
			mc.writeR(y, mc.readR(z))
		}

	case instructions.Load8Immediate:
		return func(mc *CPU, _ *instructions.Definition) {
			mc.writeR(y, mc.fetch8())
		}

	case instructions.StoreIndirectA:
		return func(mc *CPU, _ *instructions.Definition) {
			mc.write8(mc.indirect(p), mc.A.Value())
		}

	case instructions.LoadIndirectA:
		return func(mc *CPU, _ *instructions.Definition) {
			mc.A.Load(mc.read8(mc.indirect(p)))
		}

	case instructions.StoreAbsoluteA:
		return func(mc *CPU, _ *instructions.Definition) {
			mc.write8(mc.fetch16(), mc.A.Value())
		}

	case instructions.LoadAbsoluteA:
		return func(mc *CPU, _ *instructions.Definition) {
			mc.A.Load(mc.read8(mc.fetch16()))
		}

	case instructions.StoreHighA:
		return func(mc *CPU, _ *instructions.Definition) {
			mc.write8(0xff00|uint16(mc.fetch8()), mc.A.Value())
		}

	case instructions.LoadHighA:
		return func(mc *CPU, _ *instructions.Definition) {
			mc.A.Load(mc.read8(0xff00 | uint16(mc.fetch8())))
		}

	case instructions.StoreHighCA:
		return func(mc *CPU, _ *instructions.Definition) {
			mc.write8(0xff00|uint16(mc.C.Value()), mc.A.Value())
		}

	case instructions.LoadHighCA:
		return func(mc *CPU, _ *instructions.Definition) {
			mc.A.Load(mc.read8(0xff00 | uint16(mc.C.Value())))
		}

	case instructions.Load16Immediate:
		return func(mc *CPU, _ *instructions.Definition) {
			mc.writeRP(p, mc.fetch16())
		}

	case instructions.StoreSP:
		return func(mc *CPU, _ *instructions.Definition) {
			address := mc.fetch16()
			sp := mc.SP.Value()
			mc.write8(address, uint8(sp))
			mc.write8(address+1, uint8(sp>>8))
		}

	case instructions.LoadSPHL:
		return func(mc *CPU, _ *instructions.Definition) {
			mc.SP.Load(mc.HL.Value())
			mc.idle()
		}

	case instructions.LoadHLSP:
		return func(mc *CPU, _ *instructions.Definition) {
			mc.HL.Load(mc.addSP(mc.fetch8()))
			mc.idle()
		}

	case instructions.Push:
		return func(mc *CPU, _ *instructions.Definition) {
			mc.idle()
			mc.push16(mc.readRP2(p))
		}

	case instructions.Pop:
		return func(mc *CPU, _ *instructions.Definition) {
			mc.writeRP2(p, mc.pop16())
		}

	case instructions.ALU:
		return func(mc *CPU, _ *instructions.Definition) {
			mc.alu(y, mc.readR(z))
		}

	case instructions.ALUImmediate:
		return func(mc *CPU, _ *instructions.Definition) {
			mc.alu(y, mc.fetch8())
		}

	case instructions.Inc8:
		return func(mc *CPU, _ *instructions.Definition) {
			mc.incdec(y, false)
		}

	case instructions.Dec8:
		return func(mc *CPU, _ *instructions.Definition) {
			mc.incdec(y, true)
		}

	case instructions.Inc16:
		return func(mc *CPU, _ *instructions.Definition) {
			mc.writeRP(p, mc.readRP(p)+1)
			mc.idle()
		}

	case instructions.Dec16:
		return func(mc *CPU, _ *instructions.Definition) {
			mc.writeRP(p, mc.readRP(p)-1)
			mc.idle()
		}

	case instructions.AddHL:
		return func(mc *CPU, _ *instructions.Definition) {
			mc.addHL(mc.readRP(p))
			mc.idle()
		}

	case instructions.AddSP:
		return func(mc *CPU, _ *instructions.Definition) {
			mc.SP.Load(mc.addSP(mc.fetch8()))
			mc.idle()
			mc.idle()
		}

	case instructions.RotateA:
		return func(mc *CPU, _ *instructions.Definition) {
			carry := mc.rotate(y, &mc.A)
			mc.setFlags(false, false, false, carry)
		}

	case instructions.DecimalAdjust:
		return func(mc *CPU, _ *instructions.Definition) {
			mc.daa()
		}

	case instructions.Complement:
		return func(mc *CPU, _ *instructions.Definition) {
			mc.A.XOR(0xff)
			mc.F.Subtract = true
			mc.F.HalfCarry = true
		}

	case instructions.SetCarry:
		return func(mc *CPU, _ *instructions.Definition) {
			mc.F.Subtract = false
			mc.F.HalfCarry = false
			mc.F.Carry = true
		}

	case instructions.ComplementCarry:
		return func(mc *CPU, _ *instructions.Definition) {
			mc.F.Subtract = false
			mc.F.HalfCarry = false
			mc.F.Carry = !mc.F.Carry
		}

	case instructions.JumpRelative:
		// the conditional forms of JR are y=4 to y=7
		cc := y - 4
		return func(mc *CPU, defn *instructions.Definition) {
			e := mc.fetch8()
			if !mc.branch(defn, cc) {
				return
			}
			mc.idle()
			mc.PC.Add(uint16(int16(int8(e))))
		}

	case instructions.Jump:
		return func(mc *CPU, defn *instructions.Definition) {
			address := mc.fetch16()
			if !mc.branch(defn, y) {
				return
			}
			mc.idle()
			mc.PC.Load(address)
		}

	case instructions.JumpHL:
		return func(mc *CPU, _ *instructions.Definition) {
			mc.PC.Load(mc.HL.Value())
		}

	case instructions.Call:
		return func(mc *CPU, defn *instructions.Definition) {
			address := mc.fetch16()
			if !mc.branch(defn, y) {
				return
			}
			mc.idle()
			mc.push16(mc.PC.Value())
			mc.PC.Load(address)
		}

	case instructions.Return:
		return func(mc *CPU, defn *instructions.Definition) {
			// conditional RET takes an additional cycle to check the
			// condition
			if defn.IsConditional() {
				mc.idle()
			}
			if !mc.branch(defn, y) {
				return
			}
			address := mc.pop16()
			mc.idle()
			mc.PC.Load(address)
		}

	case instructions.ReturnInterrupt:
		return func(mc *CPU, _ *instructions.Definition) {
			address := mc.pop16()
			mc.idle()
			mc.PC.Load(address)
			mc.IME = true
			mc.imeDelay = 0
		}

	case instructions.Restart:
		vector := uint16(y) * 8
		return func(mc *CPU, _ *instructions.Definition) {
			mc.idle()
			mc.push16(mc.PC.Value())
			mc.PC.Load(vector)
		}
	}

	return func(mc *CPU, defn *instructions.Definition) {
		mc.unimplemented(defn)
	}
}

func newPrefixedHandler(defn *instructions.Definition) handler {
	_, y, z, _, _ := instructions.Fields(defn.OpCode)

	switch defn.Family {
	case instructions.Rotate:
		return func(mc *CPU, _ *instructions.Definition) {
			mc.acc8.Load(mc.readR(z))
			carry := mc.rotate(y, &mc.acc8)
			mc.setFlags(mc.acc8.IsZero(), false, false, carry)
			mc.writeR(z, mc.acc8.Value())
		}

	case instructions.Bit:
		return func(mc *CPU, _ *instructions.Definition) {
			mc.acc8.Load(mc.readR(z))
			mc.F.Zero = !mc.acc8.Bit(y)
			mc.F.Subtract = false
			mc.F.HalfCarry = true
		}

	case instructions.ResetBit:
		return func(mc *CPU, _ *instructions.Definition) {
			mc.acc8.Load(mc.readR(z))
			mc.acc8.ResetBit(y)
			mc.writeR(z, mc.acc8.Value())
		}

	case instructions.SetBit:
		return func(mc *CPU, _ *instructions.Definition) {
			mc.acc8.Load(mc.readR(z))
			mc.acc8.SetBit(y)
			mc.writeR(z, mc.acc8.Value())
		}
	}

	return func(mc *CPU, defn *instructions.Definition) {
		mc.unimplemented(defn)
	}
}

// the address used by the indirect loads of A. the HL+ and HL- forms change HL
// after the address has been taken.
func (mc *CPU) indirect(p uint8) uint16 {
	switch p {
	case 0:
		return mc.BC.Value()
	case 1:
		return mc.DE.Value()
	case 2:
		address := mc.HL.Value()
		mc.HL.Increment()
		return address
	}
	address := mc.HL.Value()
	mc.HL.Decrement()
	return address
}

// branch returns true if the instruction should take effect. unconditional
// instructions always take effect. the BranchSuccess field of LastResult is
// only set for conditional instructions.
func (mc *CPU) branch(defn *instructions.Definition, cc uint8) bool {
	if !defn.IsConditional() {
		return true
	}
	if !mc.condition(cc) {
		return false
	}
	mc.LastResult.BranchSuccess = true
	return true
}
