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

package hardware

import (
	"context"

	"github.com/jetsetilly/gopherboy/curated"
	"github.com/jetsetilly/gopherboy/debugger/govern"
	"github.com/jetsetilly/gopherboy/hardware/cpu/execution"
)

// It can be expensive to do a full continue check after every instruction.
//
// The PerformanceBrake is a standard value that can be used to filter out
// expensive code paths within a continueCheck() implementation. For example:
//
//	performanceFilter++
//	if performanceFilter >= hardware.PerformanceBrake {
//		performanceFilter = 0
//		if end_condition == true {
//			return govern.Ending, nil
//		}
//	}
//	return govern.Running, nil
const PerformanceBrake = 100

// Step the emulation one CPU instruction. If the CPU is halted then the step
// is a single idle M-cycle. Returns the result of the instruction.
func (gb *GameBoy) Step() execution.Result {
	gb.CPU.ExecuteInstruction()
	return gb.CPU.LastResult
}

// Run executes instructions until the clock has advanced by at least budget
// T-cycles. The number of T-cycles actually run is returned. This can be more
// than the budget because an instruction is never interrupted.
func (gb *GameBoy) Run(budget uint64) uint64 {
	start := gb.Scheduler.Now()
	for gb.Scheduler.Now()-start < budget {
		gb.CPU.ExecuteInstruction()
	}
	return gb.Scheduler.Now() - start
}

// RunUntil sets the emulation running as quickly as possible. The
// continueCheck function is called after every instruction and the emulation
// stops when it returns the Ending state or an error.
func (gb *GameBoy) RunUntil(continueCheck func() (govern.State, error)) error {
	if continueCheck == nil {
		continueCheck = func() (govern.State, error) { return govern.Running, nil }
	}

	var err error

	state := govern.Running

	for state.Continues() {
		switch state {
		case govern.Running, govern.Stepping:
			gb.CPU.ExecuteInstruction()
		case govern.Paused:
		default:
			return curated.Errorf("gameboy: unsupported emulation state (%s) in RunUntil() function", state)
		}

		state, err = continueCheck()
		if err != nil {
			return err
		}
	}

	return nil
}

// RunContext is like Run() but stops early if the context is cancelled, in
// which case the context's error is returned along with the number of
// T-cycles that were run. The onStep function is called after every
// instruction and can be nil.
func (gb *GameBoy) RunContext(ctx context.Context, budget uint64, onStep func()) (uint64, error) {
	start := gb.Scheduler.Now()
	if budget == 0 {
		return 0, ctx.Err()
	}

	var performanceFilter int

	err := gb.RunUntil(func() (govern.State, error) {
		if onStep != nil {
			onStep()
		}

		performanceFilter++
		if performanceFilter >= PerformanceBrake {
			performanceFilter = 0
			if err := ctx.Err(); err != nil {
				return govern.Ending, err
			}
		}

		if gb.Scheduler.Now()-start >= budget {
			return govern.Ending, nil
		}
		return govern.Running, nil
	})

	return gb.Scheduler.Now() - start, err
}
