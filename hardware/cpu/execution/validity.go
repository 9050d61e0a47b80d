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

package execution

import (
	"github.com/jetsetilly/gopherboy/curated"
)

// IsValid checks whether the instance of Result contains information
// consistent with the instruction definition.
func (r Result) IsValid() error {
	if !r.Final {
		return curated.Errorf("cpu: execution not finalised")
	}

	if r.Halted {
		if r.Cycles != 1 {
			return curated.Errorf("cpu: halted for %d cycles instead of 1", r.Cycles)
		}
		return nil
	}

	if r.Defn == nil {
		return curated.Errorf("cpu: no instruction definition")
	}

	// byte count
	if r.ByteCount != r.Defn.Bytes {
		return curated.Errorf("cpu: unexpected number of bytes read during decode (%d instead of %d)", r.ByteCount, r.Defn.Bytes)
	}

	if r.Defn.IsConditional() {
		if r.BranchSuccess {
			if r.Cycles != r.Defn.CyclesBranch {
				return curated.Errorf("cpu: number of cycles wrong for opcode %#02x [%s] (%d instead of %d)",
					r.Defn.OpCode,
					r.Defn.Mnemonic,
					r.Cycles,
					r.Defn.CyclesBranch)
			}
			return nil
		}
	} else if r.BranchSuccess {
		return curated.Errorf("cpu: unexpected branch for opcode %#02x [%s]", r.Defn.OpCode, r.Defn.Mnemonic)
	}

	if r.Cycles != r.Defn.Cycles {
		return curated.Errorf("cpu: number of cycles wrong for opcode %#02x [%s] (%d instead of %d)",
			r.Defn.OpCode,
			r.Defn.Mnemonic,
			r.Cycles,
			r.Defn.Cycles)
	}

	return nil
}
