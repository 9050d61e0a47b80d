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

package debugger_test

import (
	"strings"
	"testing"

	"github.com/jetsetilly/gopherboy/cartridgeloader"
	"github.com/jetsetilly/gopherboy/debugger"
	"github.com/jetsetilly/gopherboy/debugger/govern"
	"github.com/jetsetilly/gopherboy/hardware"
	"github.com/jetsetilly/gopherboy/hardware/instance"
	"github.com/jetsetilly/gopherboy/test"
)

type mockTerm struct {
	modes []string
}

func (term *mockTerm) CBreakMode() error {
	term.modes = append(term.modes, "cbreak")
	return nil
}

func (term *mockTerm) CanonicalMode() error {
	term.modes = append(term.modes, "canonical")
	return nil
}

func newGameBoy(t *testing.T) *hardware.GameBoy {
	t.Helper()
	ins, err := instance.NewInstance(instance.Test, nil)
	test.DemandSuccess(t, err)
	gb, err := hardware.NewGameBoy(ins)
	test.DemandSuccess(t, err)

	// NOP; LD BC,$1234; JR -2
	rom := test.BuildROM(0x00, 0x8000, []uint8{0x00, 0x01, 0x34, 0x12, 0x18, 0xfe})
	err = gb.AttachCartridge(cartridgeloader.NewLoaderFromData("test", rom))
	test.DemandSuccess(t, err)
	return gb
}

func TestStep(t *testing.T) {
	gb := newGameBoy(t)
	term := &mockTerm{}
	output := &test.CompareWriter{}

	dbg := debugger.NewDebugger(gb, term, strings.NewReader("s \x1b[B"), output)
	test.ExpectEquality(t, dbg.State(), govern.EmulatorStart)

	err := dbg.Start()
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, dbg.State(), govern.Ending)
	test.ExpectEquality(t, strings.Join(term.modes, " "), "cbreak canonical")

	test.ExpectEquality(t, output.Contains("$0100  00        NOP  (1 cycles)\n"), true)
	test.ExpectEquality(t, output.Contains("$0101  01 34 12  LD BC,$1234  (3 cycles)\n"), true)
	test.ExpectEquality(t, output.Contains("$0104  18 fe     JR $0104  (3 cycles)\n"), true)
	test.ExpectEquality(t, output.Contains("BC=0x1234"), true)
	test.ExpectEquality(t, output.Contains("[Paused] $0104  18 fe     JR $0104 > "), true)
	test.ExpectEquality(t, gb.CPU.PC.Value(), uint16(0x0104))
}

func TestQuit(t *testing.T) {
	gb := newGameBoy(t)
	output := &test.CompareWriter{}

	// steps after the quit key are never reached
	dbg := debugger.NewDebugger(gb, nil, strings.NewReader("qss"), output)
	err := dbg.Start()
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, dbg.State(), govern.Ending)
	test.ExpectEquality(t, gb.CPU.PC.Value(), uint16(0x0100))
}

func TestList(t *testing.T) {
	gb := newGameBoy(t)
	output := &test.CompareWriter{}

	dbg := debugger.NewDebugger(gb, nil, strings.NewReader("l"), output)
	err := dbg.Start()
	test.ExpectSuccess(t, err)

	test.ExpectEquality(t, output.Contains("0 $0100 00       NOP"), true)
	test.ExpectEquality(t, output.Contains("0 $0101 01 34 12 LD  BC,$1234 3"), true)
	test.ExpectEquality(t, output.Contains("0 $0104 18 fe    JR  $0104"), true)
}

func TestFrameAndReset(t *testing.T) {
	gb := newGameBoy(t)
	output := &test.CompareWriter{}

	dbg := debugger.NewDebugger(gb, nil, strings.NewReader("fR"), output)
	err := dbg.Start()
	test.ExpectSuccess(t, err)

	test.ExpectEquality(t, output.Contains("ran 702"), true)
	test.ExpectEquality(t, gb.Now(), uint64(0))
	test.ExpectEquality(t, gb.CPU.PC.Value(), uint16(0x0100))
}

func TestUnrecognisedKey(t *testing.T) {
	gb := newGameBoy(t)
	output := &test.CompareWriter{}

	dbg := debugger.NewDebugger(gb, nil, strings.NewReader("x"), output)
	err := dbg.Start()
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, output.Contains("unrecognised key ('x')"), true)
}

func TestLogEcho(t *testing.T) {
	ins, err := instance.NewInstance(instance.Test, nil)
	test.DemandSuccess(t, err)
	gb, err := hardware.NewGameBoy(ins)
	test.DemandSuccess(t, err)

	// LD A,c; LDH [$01],A; LD A,$81; LDH [$02],A for each character. then JR -2
	program := []uint8{}
	for _, c := range []byte("Hi\n") {
		program = append(program, 0x3e, c, 0xe0, 0x01, 0x3e, 0x81, 0xe0, 0x02)
	}
	program = append(program, 0x18, 0xfe)

	rom := test.BuildROM(0x00, 0x8000, program)
	err = gb.AttachCartridge(cartridgeloader.NewLoaderFromData("test", rom))
	test.DemandSuccess(t, err)

	// log entries are echoed while the debugger is running a frame. only the
	// most recent entries are of interest
	echo, err := test.NewRingWriter(32)
	test.DemandSuccess(t, err)
	ins.Log.SetEcho(echo)

	dbg := debugger.NewDebugger(gb, nil, strings.NewReader("f"), &test.CompareWriter{})
	test.ExpectSuccess(t, dbg.Start())
	test.ExpectEquality(t, strings.HasSuffix(echo.String(), "serial: Hi\n"), true)
}
