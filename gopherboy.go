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

package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"strconv"

	"github.com/bradleyjkemp/memviz"
	"github.com/jetsetilly/gopherboy/cartridgeloader"
	"github.com/jetsetilly/gopherboy/debugger"
	"github.com/jetsetilly/gopherboy/debugger/easyterm"
	"github.com/jetsetilly/gopherboy/disassembly"
	"github.com/jetsetilly/gopherboy/hardware"
	"github.com/jetsetilly/gopherboy/hardware/clocks"
	"github.com/jetsetilly/gopherboy/hardware/instance"
	"github.com/jetsetilly/gopherboy/hardware/preferences"
	"github.com/jetsetilly/gopherboy/logger"
	"github.com/jetsetilly/gopherboy/modalflag"
	"github.com/jetsetilly/gopherboy/paths"
	"github.com/jetsetilly/gopherboy/prefs"
	"github.com/jetsetilly/gopherboy/script"
	"github.com/jetsetilly/gopherboy/statsview"
	"golang.org/x/term"
)

const preferencesFile = "preferences"

// the default budget for the RUN, TRACE and MEMVIZ modes.
const defaultBudget = 10 * clocks.CyclesPerSecond

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	exitVal := launch(ctx, os.Args[1:], os.Stdout)
	stop()
	os.Exit(exitVal)
}

// options common to all modes.
type options struct {
	level  logger.Level
	echo   bool
	output io.Writer
}

// launch the program with the arguments. returns the value to be used with
// os.Exit().
func launch(ctx context.Context, args []string, output io.Writer) int {
	md := modalflag.NewModes(output, args)
	md.AddSubModes("RUN", "TRACE", "STEP", "SCRIPT", "DISASM", "MEMVIZ")

	opts := options{output: output}

	level := md.AddLevel("log", logger.Info, "minimum `level` of log entries: debug, info, warning, error")
	echo := md.AddBool("echo", true, "echo log entries as they are made")
	stats := md.AddBool("statsview", false, "run the runtime statistics server")
	prefsOverride := md.AddString("prefs", "", "preference overrides for this run only. eg. \"hardware.stublcd::false\"")

	p, err := md.Parse()
	switch p {
	case modalflag.ParseHelp:
		return 0
	case modalflag.ParseError:
		fmt.Fprintf(output, "* error: %v\n", err)
		return 10
	}

	opts.level = *level
	opts.echo = *echo

	if *stats {
		if err := statsview.Launch(output); err != nil {
			fmt.Fprintf(output, "! %v\n", err)
		}
	}

	if *prefsOverride != "" {
		prefs.PushCommandLineStack(*prefsOverride)
		defer prefs.PopCommandLineStack()
	}

	switch md.Mode() {
	case "RUN":
		err = run(ctx, md, opts)
	case "TRACE":
		err = trace(ctx, md, opts)
	case "STEP":
		err = step(md, opts)
	case "SCRIPT":
		err = runScript(ctx, md, opts)
	case "DISASM":
		err = disasm(md, opts)
	case "MEMVIZ":
		err = viz(ctx, md, opts)
	}

	if err != nil {
		fmt.Fprintf(output, "* error in %s mode: %s\n", md, err)
		return 20
	}

	return 0
}

// create a GameBoy with preferences loaded from disk and the cartridge
// attached.
func newGameBoy(opts options, filename string) (*hardware.GameBoy, error) {
	pth, err := paths.ResourcePath("", preferencesFile)
	if err != nil {
		return nil, err
	}

	p, err := preferences.NewPreferences(pth)
	if err != nil {
		return nil, err
	}

	ins, err := instance.NewInstance(instance.Main, p)
	if err != nil {
		return nil, err
	}

	ins.Log.SetLevel(opts.level)
	if opts.echo {
		ins.Log.SetEcho(echoWriter(opts.output))
	}

	gb, err := hardware.NewGameBoy(ins)
	if err != nil {
		return nil, err
	}

	err = gb.AttachCartridge(cartridgeloader.NewLoader(filename))
	if err != nil {
		return nil, err
	}

	return gb, nil
}

// log entries are coloured if the output is a terminal.
func echoWriter(output io.Writer) io.Writer {
	if f, ok := output.(*os.File); ok && term.IsTerminal(int(f.Fd())) {
		return logger.NewColorizer(output)
	}
	return output
}

// the cartridge argument for modes that take exactly one argument.
func cartridgeArg(md *modalflag.Modes) (string, error) {
	switch len(md.Args()) {
	case 0:
		return "", fmt.Errorf("cartridge required for %s mode", md)
	case 1:
		return md.Arg(0), nil
	}
	return "", fmt.Errorf("too many arguments for %s mode", md)
}

func run(ctx context.Context, md *modalflag.Modes, opts options) error {
	md.NewMode()

	budget := md.AddBudget("budget", defaultBudget, "how long to run for. T-cycles, frames (eg. 60f) or seconds (eg. 2.5s)")

	p, err := md.Parse()
	if err != nil || p != modalflag.ParseContinue {
		return err
	}

	filename, err := cartridgeArg(md)
	if err != nil {
		return err
	}

	gb, err := newGameBoy(opts, filename)
	if err != nil {
		return err
	}

	_, err = gb.RunContext(ctx, *budget, nil)
	gb.Serial.Flush()
	if err != nil {
		return err
	}

	fmt.Fprintf(opts.output, "ran %d cycles (%.3fs)\n", gb.Now(), clocks.Seconds(gb.Now()))

	return nil
}

func trace(ctx context.Context, md *modalflag.Modes, opts options) error {
	md.NewMode()

	budget := md.AddBudget("budget", clocks.CyclesPerFrame, "how long to run for. T-cycles, frames (eg. 60f) or seconds (eg. 2.5s)")
	registers := md.AddBool("registers", true, "include CPU registers in the trace")

	p, err := md.Parse()
	if err != nil || p != modalflag.ParseContinue {
		return err
	}

	filename, err := cartridgeArg(md)
	if err != nil {
		return err
	}

	gb, err := newGameBoy(opts, filename)
	if err != nil {
		return err
	}

	dsm := disassembly.NewDisassembly(gb.Mem, gb.Mem.Cart)

	_, err = gb.RunContext(ctx, *budget, func() {
		e := dsm.FormatResult(gb.CPU.LastResult)
		s := fmt.Sprintf("%s  (%s)", e, e.Cycles())
		if *registers {
			fmt.Fprintf(opts.output, "%-40s %s\n", s, gb.CPU)
		} else {
			fmt.Fprintln(opts.output, s)
		}
	})
	gb.Serial.Flush()

	return err
}

func step(md *modalflag.Modes, opts options) error {
	md.NewMode()

	p, err := md.Parse()
	if err != nil || p != modalflag.ParseContinue {
		return err
	}

	filename, err := cartridgeArg(md)
	if err != nil {
		return err
	}

	gb, err := newGameBoy(opts, filename)
	if err != nil {
		return err
	}

	// single key input is only possible if stdin is a terminal
	var t debugger.Terminal
	if term.IsTerminal(int(os.Stdin.Fd())) {
		et, err := easyterm.NewTerminal(os.Stdin, os.Stdout)
		if err != nil {
			return err
		}
		defer et.CleanUp()
		t = et
	}

	dbg := debugger.NewDebugger(gb, t, os.Stdin, opts.output)
	return dbg.Start()
}

func runScript(ctx context.Context, md *modalflag.Modes, opts options) error {
	md.NewMode()

	p, err := md.Parse()
	if err != nil || p != modalflag.ParseContinue {
		return err
	}

	if len(md.Args()) != 2 {
		return fmt.Errorf("cartridge and script required for %s mode", md)
	}

	gb, err := newGameBoy(opts, md.Arg(0))
	if err != nil {
		return err
	}

	scr := script.NewScript(gb, opts.output)
	defer scr.Close()

	err = scr.RunFile(ctx, md.Arg(1))
	gb.Serial.Flush()

	return err
}

func disasm(md *modalflag.Modes, opts options) error {
	md.NewMode()

	address := md.AddString("address", "0x0100", "address of first instruction")
	count := md.AddInt("count", 32, "number of instructions")
	bytecode := md.AddBool("bytecode", true, "include bytecode in disassembly")

	p, err := md.Parse()
	if err != nil || p != modalflag.ParseContinue {
		return err
	}

	filename, err := cartridgeArg(md)
	if err != nil {
		return err
	}

	origin, err := strconv.ParseUint(*address, 0, 16)
	if err != nil {
		return fmt.Errorf("invalid address (%s)", *address)
	}

	// the attachment message is not interesting in this mode
	opts.echo = false

	gb, err := newGameBoy(opts, filename)
	if err != nil {
		return err
	}

	dsm := disassembly.NewDisassembly(gb.Mem, gb.Mem.Cart)

	return dsm.Write(opts.output, uint16(origin), *count, disassembly.WriteAttr{
		ByteCode: *bytecode,
		Bank:     true,
		Cycles:   true,
	})
}

func viz(ctx context.Context, md *modalflag.Modes, opts options) error {
	md.NewMode()

	budget := md.AddBudget("budget", 0, "how long to run for before creating the graph")
	out := md.AddString("o", "", "output file for the DOT graph. use - for standard output. the default is a unique file in the current directory")

	p, err := md.Parse()
	if err != nil || p != modalflag.ParseContinue {
		return err
	}

	filename, err := cartridgeArg(md)
	if err != nil {
		return err
	}

	opts.echo = false

	gb, err := newGameBoy(opts, filename)
	if err != nil {
		return err
	}

	if _, err := gb.RunContext(ctx, *budget, nil); err != nil {
		return err
	}

	if *out == "-" {
		memviz.Map(opts.output, gb.Scheduler, gb.Interrupts, &gb.CPU.LastResult)
		return nil
	}

	if *out == "" {
		*out = fmt.Sprintf("%s.dot", paths.UniqueFilename("memviz", gb.Mem.Cart.Header.Title))
	}

	f, err := os.Create(*out)
	if err != nil {
		return err
	}
	defer f.Close()

	memviz.Map(f, gb.Scheduler, gb.Interrupts, &gb.CPU.LastResult)
	fmt.Fprintf(opts.output, "graph written to %s\n", *out)

	return nil
}
