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

// Package prefs facilitates the storage of preference values on disk. The
// Disk type associates a key with a preference value. Preference values are
// one of the types Bool, Int or String. Each type is safe to read from a
// different goroutine than the one that sets it.
//
// A preferences file looks like this:
//
//	*** do not edit this file by hand. it is managed by gopherboy ***
//	hardware.logsize :: 256
//	hardware.stublcd :: true
//
// Values can be overridden for a single run of the program with the command
// line stack. See PushCommandLineStack() for the format of the string.
package prefs
