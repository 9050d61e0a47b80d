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

// Package preferences contains the preference values for the emulated
// hardware.
package preferences

import (
	"github.com/jetsetilly/gopherboy/curated"
	"github.com/jetsetilly/gopherboy/prefs"
)

// Preferences defines and collates all the preference values used by the
// hardware.
type Preferences struct {
	dsk *prefs.Disk

	// lines written to the serial port are logged at the info level. if
	// SerialEcho is false then the lines are logged at the debug level
	SerialEcho prefs.Bool

	// LY reads as 0x90 (the first line of the vblank period) rather than as
	// the stored value. many test programs wait for vblank before doing
	// anything and there is no video emulation to make LY move
	StubLCD prefs.Bool

	// log a warning for accesses to unmapped addresses
	UnmappedWarnings prefs.Bool

	// maximum number of entries kept by the logger
	LogSize prefs.Int
}

func (p *Preferences) String() string {
	if p.dsk == nil {
		return ""
	}
	return p.dsk.String()
}

// NewPreferences is the preferred method of initialisation for the Preferences
// type. The path argument is the preferences file. An empty path means that
// the preferences are not backed by a file, which is useful for testing.
func NewPreferences(path string) (*Preferences, error) {
	p := &Preferences{}
	p.SetDefaults()

	if path == "" {
		return p, nil
	}

	var err error

	p.dsk, err = prefs.NewDisk(path)
	if err != nil {
		return nil, err
	}
	err = p.dsk.Add("hardware.serialecho", &p.SerialEcho)
	if err != nil {
		return nil, err
	}
	err = p.dsk.Add("hardware.stublcd", &p.StubLCD)
	if err != nil {
		return nil, err
	}
	err = p.dsk.Add("hardware.unmappedwarnings", &p.UnmappedWarnings)
	if err != nil {
		return nil, err
	}
	err = p.dsk.Add("hardware.logsize", &p.LogSize)
	if err != nil {
		return nil, err
	}
	err = p.dsk.Load()
	if err != nil {
		// ignore missing prefs file errors
		if !curated.Is(err, prefs.NoPrefsFile) {
			return nil, err
		}
	}

	return p, nil
}

// SetDefaults reverts all hardware preferences to the default values.
func (p *Preferences) SetDefaults() {
	_ = p.SerialEcho.Set(true)
	_ = p.StubLCD.Set(true)
	_ = p.UnmappedWarnings.Set(true)
	_ = p.LogSize.Set(256)
}

// Load current hardware preferences from disk.
func (p *Preferences) Load() error {
	if p.dsk == nil {
		return nil
	}
	return p.dsk.Load()
}

// Save current hardware preferences to disk.
func (p *Preferences) Save() error {
	if p.dsk == nil {
		return nil
	}
	return p.dsk.Save()
}
