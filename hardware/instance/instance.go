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

// Package instance defines those parts of the emulation that might change from
// instance to instance of the GameBoy type, but is not actually the GameBoy
// itself.
//
// Particularly useful when running more than one instance of the emulation in
// parallel. Each instance has its own logger and so log entries from one
// instance never appear in the log of another.
package instance

import (
	"sync/atomic"

	"github.com/jetsetilly/gopherboy/hardware/preferences"
	"github.com/jetsetilly/gopherboy/logger"
)

// Label indicates the context of the instance.
type Label string

// List of value Label values.
const (
	Main   Label = ""
	Script Label = "script"
	Test   Label = "test"
)

// Instance defines those parts of the emulation that might change between
// different instantiations of the GameBoy type, but is not actually the
// GameBoy itself.
type Instance struct {
	Label Label

	// the prefrences of the running instance. this instance can be shared
	// with other running instances of the emulation.
	Prefs *preferences.Preferences

	// the log for this instance
	Log *logger.Logger

	// logging can be turned off without disturbing the logger itself
	quiet atomic.Bool
}

// NewInstance is the preferred method of initialisation for the Instance type.
//
// The prefs argument can be nil, in which case preferences with default
// values and no disk backing are created. Providing a non-nil value allows
// the preferences of more than one instance to be synchronised.
func NewInstance(label Label, prefs *preferences.Preferences) (*Instance, error) {
	ins := &Instance{
		Label: label,
	}

	var err error

	if prefs == nil {
		prefs, err = preferences.NewPreferences("")
		if err != nil {
			return nil, err
		}
	}

	ins.Prefs = prefs
	ins.Log = logger.NewLogger(prefs.LogSize.Get())

	return ins, nil
}

// AllowLogging implements the logger.Permission interface.
func (ins *Instance) AllowLogging() bool {
	return !ins.quiet.Load()
}

// SetQuiet stops (or restarts) the instance from making log entries.
func (ins *Instance) SetQuiet(quiet bool) {
	ins.quiet.Store(quiet)
}

// Normalise ensures the instance is in an known default state. Useful for
// testing where the initial state must be the same for every run of the
// test.
func (ins *Instance) Normalise() {
	ins.Prefs.SetDefaults()
	ins.SetQuiet(false)
}
