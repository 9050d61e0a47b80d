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

// Package modalflag is a wrapper for the flag package in the Go standard
// library. It provides a convenient method of handling program modes and
// allows different flags for each mode.
//
// A Modes instance is created with the arguments to be parsed. Flags and
// sub-modes are added before calling Parse():
//
//	md := modalflag.NewModes(os.Stdout, os.Args[1:])
//	md.AddSubModes("RUN", "TRACE", "STEP")
//	logLevel := md.AddLevel("log", logger.Info, "minimum `level` of log entries")
//
//	switch p, err := md.Parse(); p {
//	case modalflag.ParseHelp:
//		return nil
//	case modalflag.ParseError:
//		return err
//	}
//
// After parsing, the Mode() function returns the selected sub-mode. The first
// sub-mode is the default and is selected if the first argument after the
// flags is not a sub-mode. Sub-mode comparisons are case insensitive and
// sub-modes are always reported in upper case.
//
// Calling NewMode() starts a new set of flags and sub-modes for the remaining
// arguments. The Path() function returns the route taken through the modes,
// for example "RUN/TRACE".
//
// The AddLevel() and AddBudget() functions add flags that are parsed with
// logger.ParseLevel() and clocks.ParseBudget() respectively.
package modalflag
