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

package debugger

import (
	"bufio"
	"errors"
	"fmt"
	"io"

	"github.com/jetsetilly/gopherboy/debugger/easyterm"
	"github.com/jetsetilly/gopherboy/debugger/govern"
	"github.com/jetsetilly/gopherboy/disassembly"
	"github.com/jetsetilly/gopherboy/hardware"
	"github.com/jetsetilly/gopherboy/hardware/clocks"
)

// the number of instructions shown by the list command.
const listLength = 8

// Terminal is implemented by easyterm.Terminal. A nil Terminal can be passed
// to NewDebugger() if the input is not a terminal.
type Terminal interface {
	CBreakMode() error
	CanonicalMode() error
}

// Debugger is the interactive stepper.
type Debugger struct {
	gb  *hardware.GameBoy
	dsm *disassembly.Disassembly

	term   Terminal
	input  *bufio.Reader
	output io.Writer

	state govern.State
}

// NewDebugger is the preferred method of initialisation for the Debugger type.
func NewDebugger(gb *hardware.GameBoy, term Terminal, input io.Reader, output io.Writer) *Debugger {
	return &Debugger{
		gb:     gb,
		dsm:    disassembly.NewDisassembly(gb.Mem, gb.Mem.Cart),
		term:   term,
		input:  bufio.NewReader(input),
		output: output,
		state:  govern.EmulatorStart,
	}
}

// State returns the current state of the debugger.
func (dbg *Debugger) State() govern.State {
	return dbg.state
}

// Start the input loop. Returns when the quit key is pressed or when the input
// is exhausted.
func (dbg *Debugger) Start() error {
	if dbg.term != nil {
		if err := dbg.term.CBreakMode(); err != nil {
			return fmt.Errorf("debugger: %w", err)
		}
		defer dbg.term.CanonicalMode()
	}

	dbg.state = govern.Paused
	dbg.printf("%s\n", dbg.gb.CPU)

	for dbg.state.Continues() {
		dbg.prompt()

		key, err := dbg.input.ReadByte()
		if err != nil {
			if errors.Is(err, io.EOF) {
				dbg.state = govern.Ending
				break // for loop
			}
			return fmt.Errorf("debugger: %w", err)
		}

		if err := dbg.command(key); err != nil {
			return err
		}
	}

	return nil
}

func (dbg *Debugger) prompt() {
	dbg.printf("[%s] %s > ", dbg.state, dbg.dsm.Decode(dbg.gb.CPU.PC.Value()))
}

func (dbg *Debugger) printf(format string, a ...any) {
	fmt.Fprintf(dbg.output, format, a...)
}

func (dbg *Debugger) command(key uint8) error {
	// keys are not echoed in cbreak mode so the prompt is ended here
	dbg.printf("\n")

	switch key {
	case 's', ' ', easyterm.KeyLineFeed, easyterm.KeyCarriageReturn:
		dbg.step()

	case easyterm.KeyEsc:
		// cursor keys. the only one recognised is cursor down
		b, err := dbg.input.ReadByte()
		if err != nil || b != easyterm.EscCursor {
			return nil
		}
		b, err = dbg.input.ReadByte()
		if err != nil {
			return nil
		}
		if b == easyterm.CursorDown {
			dbg.step()
		}

	case 'f':
		dbg.state = govern.Running
		n := dbg.gb.Run(clocks.CyclesPerFrame)
		dbg.state = govern.Paused
		dbg.printf("ran %d cycles (%.4fs)\n", n, clocks.Seconds(n))
		dbg.printf("%s\n", dbg.gb.CPU)

	case 'l':
		return dbg.dsm.Write(dbg.output, dbg.gb.CPU.PC.Value(), listLength, disassembly.WriteAttr{
			ByteCode: true,
			Bank:     true,
			Cycles:   true,
		})

	case 'i':
		dbg.printf("%s\n", dbg.gb)

	case 'r':
		dbg.gb.Reset()
		dbg.printf("%s\n", dbg.gb.CPU)

	case 'R':
		dbg.gb.HardReset()
		dbg.printf("%s\n", dbg.gb.CPU)

	case 'h', '?':
		dbg.printf("%s", help)

	case 'q', easyterm.KeyInterrupt:
		dbg.state = govern.Ending

	case easyterm.KeySuspend:
		if dbg.term != nil {
			_ = dbg.term.CanonicalMode()
			easyterm.SuspendProcess()
			_ = dbg.term.CBreakMode()
		}

	default:
		dbg.printf("unrecognised key (%q). press h for help\n", key)
	}

	return nil
}

func (dbg *Debugger) step() {
	dbg.state = govern.Stepping
	result := dbg.gb.Step()
	dbg.state = govern.Paused

	e := dbg.dsm.FormatResult(result)
	dbg.printf("%s  (%s cycles)", e, e.Cycles())
	if notes := e.Notes(); notes != "" {
		dbg.printf(" %s", notes)
	}
	dbg.printf("\n%s\n", dbg.gb.CPU)
}

const help = `s  step
f  run one frame
l  list instructions
i  hardware state
r  reset CPU
R  hard reset
q  quit
`
