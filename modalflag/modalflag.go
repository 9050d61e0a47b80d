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

package modalflag

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"strings"

	"github.com/jetsetilly/gopherboy/hardware/clocks"
	"github.com/jetsetilly/gopherboy/logger"
)

const modeSeparator = "/"

// Modes handles command line arguments that select a mode of operation.
type Modes struct {
	// where to print help messages
	output io.Writer

	// a new flagset is created on every call to NewMode()
	flags *flag.FlagSet

	args    []string
	argsIdx int

	// sub-modes for the next call to Parse(). the first entry is the default
	subModes []string

	// the sub-modes selected by previous calls to Parse()
	path []string

	additionalHelp string
}

// NewModes is the preferred method of initialisation for the Modes type. Help
// messages are written to output.
func NewModes(output io.Writer, args []string) *Modes {
	md := &Modes{
		output: output,
		args:   args,
	}
	md.NewMode()
	return md
}

func (md *Modes) String() string {
	return md.Path()
}

// Mode returns the most recently selected mode.
func (md *Modes) Mode() string {
	if len(md.path) == 0 {
		return ""
	}
	return md.path[len(md.path)-1]
}

// Path returns all the modes selected so far, separated by a forward slash.
func (md *Modes) Path() string {
	return strings.Join(md.path, modeSeparator)
}

// NewMode indicates that the remaining arguments should be considered part of
// a new mode. Flags and sub-modes from the previous mode are forgotten.
func (md *Modes) NewMode() {
	md.subModes = md.subModes[:0]
	md.flags = flag.NewFlagSet("", flag.ContinueOnError)
	md.flags.SetOutput(io.Discard)
	md.additionalHelp = ""
}

// AdditionalHelp adds text to be displayed after the help for the flags and
// sub-modes.
func (md *Modes) AdditionalHelp(help string) {
	md.additionalHelp = help
}

// ParseResult is returned from the Parse() function.
type ParseResult int

// List of valid ParseResult values.
const (
	// continue with command line processing
	ParseContinue ParseResult = iota

	// help was requested and has been printed
	ParseHelp

	// an error has occurred and is returned as the second return value
	ParseError
)

// Parse the arguments for the current mode. If help is requested with -help
// or -h then the help message is written to the output and ParseHelp is
// returned.
func (md *Modes) Parse() (ParseResult, error) {
	err := md.flags.Parse(md.args[md.argsIdx:])
	if err != nil {
		if errors.Is(err, flag.ErrHelp) {
			md.help()
			return ParseHelp, nil
		}
		return ParseError, fmt.Errorf("modalflag: %w", err)
	}

	// the flag package has consumed the flags. the index is moved on so that
	// arguments for the next mode are the ones that follow
	md.argsIdx = len(md.args) - md.flags.NArg()

	if len(md.subModes) > 0 {
		mode := md.subModes[0]
		arg := strings.ToUpper(md.flags.Arg(0))
		for _, m := range md.subModes {
			if m == arg {
				mode = m
				md.argsIdx++
				break // for loop
			}
		}
		md.path = append(md.path, mode)
	}

	return ParseContinue, nil
}

// Args returns the arguments that aren't flags or the selected sub-mode.
func (md *Modes) Args() []string {
	return md.args[md.argsIdx:]
}

// Arg returns the numbered argument from the Args() list. Returns the empty
// string if there is no such argument.
func (md *Modes) Arg(i int) string {
	args := md.Args()
	if i < 0 || i >= len(args) {
		return ""
	}
	return args[i]
}

// AddSubModes to the list of sub-modes for the next call to Parse(). The first
// sub-mode added is the default.
func (md *Modes) AddSubModes(subModes ...string) {
	for _, m := range subModes {
		md.subModes = append(md.subModes, strings.ToUpper(m))
	}
}

// AddBool flag for next call to Parse().
func (md *Modes) AddBool(name string, value bool, usage string) *bool {
	return md.flags.Bool(name, value, usage)
}

// AddInt flag for next call to Parse().
func (md *Modes) AddInt(name string, value int, usage string) *int {
	return md.flags.Int(name, value, usage)
}

// AddString flag for next call to Parse().
func (md *Modes) AddString(name string, value string, usage string) *string {
	return md.flags.String(name, value, usage)
}

// AddLevel adds a flag for a logger.Level.
func (md *Modes) AddLevel(name string, value logger.Level, usage string) *logger.Level {
	v := &value
	md.flags.Var(levelValue{lvl: v}, name, usage)
	return v
}

// AddBudget adds a flag for a number of T-cycles. The argument can be given in
// any form accepted by clocks.ParseBudget().
func (md *Modes) AddBudget(name string, value uint64, usage string) *uint64 {
	v := &value
	md.flags.Var(budgetValue{cycles: v}, name, usage)
	return v
}

type levelValue struct {
	lvl *logger.Level
}

func (v levelValue) String() string {
	if v.lvl == nil {
		return ""
	}
	return v.lvl.String()
}

func (v levelValue) Set(s string) error {
	lvl, err := logger.ParseLevel(s)
	if err != nil {
		return err
	}
	*v.lvl = lvl
	return nil
}

type budgetValue struct {
	cycles *uint64
}

func (v budgetValue) String() string {
	if v.cycles == nil {
		return ""
	}
	return fmt.Sprintf("%d", *v.cycles)
}

func (v budgetValue) Set(s string) error {
	n, err := clocks.ParseBudget(s)
	if err != nil {
		return err
	}
	*v.cycles = n
	return nil
}
