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

package script

import (
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/jetsetilly/gopherboy/curated"
	"github.com/jetsetilly/gopherboy/hardware"
	"github.com/jetsetilly/gopherboy/hardware/clocks"
	lua "github.com/yuin/gopher-lua"
)

// Sentinal error patterns.
const (
	ScriptError = "script: %v"
)

// Script is a Lua interpreter with access to a GameBoy.
type Script struct {
	gb     *hardware.GameBoy
	state  *lua.LState
	output io.Writer
}

// NewScript is the preferred method of initialisation for the Script type.
// The Close() function should be called when the script is no longer
// required.
func NewScript(gb *hardware.GameBoy, output io.Writer) *Script {
	scr := &Script{
		gb:     gb,
		state:  lua.NewState(),
		output: output,
	}

	tbl := scr.state.NewTable()
	scr.state.SetFuncs(tbl, map[string]lua.LGFunction{
		"step":      scr.step,
		"run":       scr.run,
		"frames":    scr.frames,
		"peek":      scr.peek,
		"poke":      scr.poke,
		"reg":       scr.reg,
		"serial":    scr.serial,
		"now":       scr.now,
		"reset":     scr.reset,
		"hardreset": scr.hardreset,
	})
	scr.state.SetGlobal("gb", tbl)
	scr.state.SetGlobal("print", scr.state.NewFunction(scr.print))

	return scr
}

// Close the Lua interpreter.
func (scr *Script) Close() {
	scr.state.Close()
}

// RunFile runs the Lua script in the named file. The script is stopped if
// the context is cancelled.
func (scr *Script) RunFile(ctx context.Context, filename string) error {
	scr.state.SetContext(ctx)
	if err := scr.state.DoFile(filename); err != nil {
		return curated.Errorf(ScriptError, err)
	}
	return nil
}

// RunString runs the Lua source code. The script is stopped if the context is
// cancelled.
func (scr *Script) RunString(ctx context.Context, source string) error {
	scr.state.SetContext(ctx)
	if err := scr.state.DoString(source); err != nil {
		return curated.Errorf(ScriptError, err)
	}
	return nil
}

func (scr *Script) print(L *lua.LState) int {
	n := L.GetTop()
	s := make([]string, 0, n)
	for i := 1; i <= n; i++ {
		s = append(s, L.ToStringMeta(L.Get(i)).String())
	}
	fmt.Fprintln(scr.output, strings.Join(s, "\t"))
	return 0
}

// the context of the running script. the Lua interpreter only checks the
// context between Lua instructions so long running functions must check it too
func scriptContext(L *lua.LState) context.Context {
	if ctx := L.Context(); ctx != nil {
		return ctx
	}
	return context.Background()
}

func (scr *Script) step(L *lua.LState) int {
	ctx := scriptContext(L)
	n := L.OptInt(1, 1)
	for i := range n {
		if i%hardware.PerformanceBrake == 0 && ctx.Err() != nil {
			L.RaiseError("%v", ctx.Err())
		}
		scr.gb.Step()
	}
	L.Push(lua.LNumber(scr.gb.CPU.PC.Value()))
	return 1
}

func (scr *Script) runFor(L *lua.LState, budget uint64) int {
	cycles, err := scr.gb.RunContext(scriptContext(L), budget, nil)
	if err != nil {
		L.RaiseError("%v", err)
	}
	L.Push(lua.LNumber(cycles))
	return 1
}

func (scr *Script) run(L *lua.LState) int {
	cycles := L.CheckInt64(1)
	if cycles < 0 {
		L.ArgError(1, "cycles must not be negative")
	}
	return scr.runFor(L, uint64(cycles))
}

func (scr *Script) frames(L *lua.LState) int {
	n := L.CheckInt(1)
	if n < 0 {
		L.ArgError(1, "frames must not be negative")
	}
	return scr.runFor(L, clocks.Frames(n))
}

func address(L *lua.LState, n int) uint16 {
	a := L.CheckInt(n)
	if a < 0 || a > 0xffff {
		L.ArgError(n, "address out of range")
	}
	return uint16(a)
}

func (scr *Script) peek(L *lua.LState) int {
	L.Push(lua.LNumber(scr.gb.Peek(address(L, 1))))
	return 1
}

func (scr *Script) poke(L *lua.LState) int {
	a := address(L, 1)
	v := L.CheckInt(2)
	if v < 0 || v > 0xff {
		L.ArgError(2, "value out of range")
	}
	if err := scr.gb.Poke(a, uint8(v)); err != nil {
		L.RaiseError("%v", err)
	}
	return 0
}

func (scr *Script) reg(L *lua.LState) int {
	mc := scr.gb.CPU

	var v uint16

	switch strings.ToUpper(L.CheckString(1)) {
	case "A":
		v = uint16(mc.A.Value())
	case "F":
		v = uint16(mc.F.Value())
	case "B":
		v = uint16(mc.B.Value())
	case "C":
		v = uint16(mc.C.Value())
	case "D":
		v = uint16(mc.D.Value())
	case "E":
		v = uint16(mc.E.Value())
	case "H":
		v = uint16(mc.H.Value())
	case "L":
		v = uint16(mc.L.Value())
	case "AF":
		v = mc.AF.Value()
	case "BC":
		v = mc.BC.Value()
	case "DE":
		v = mc.DE.Value()
	case "HL":
		v = mc.HL.Value()
	case "SP":
		v = mc.SP.Value()
	case "PC":
		v = mc.PC.Value()
	default:
		L.ArgError(1, "unknown register")
	}

	L.Push(lua.LNumber(v))
	return 1
}

func (scr *Script) serial(L *lua.LState) int {
	L.Push(lua.LString(scr.gb.Serial.Output()))
	return 1
}

func (scr *Script) now(L *lua.LState) int {
	L.Push(lua.LNumber(scr.gb.Now()))
	return 1
}

func (scr *Script) reset(L *lua.LState) int {
	scr.gb.Reset()
	return 0
}

func (scr *Script) hardreset(L *lua.LState) int {
	scr.gb.HardReset()
	return 0
}
