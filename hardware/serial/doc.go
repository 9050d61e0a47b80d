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

// Package serial implements the serial port of the Game Boy. There is no
// link cable and so every transfer receives 0xff.
//
// Test programs write their results to the serial port, one character at a
// time. Transferred bytes are collected into lines and each completed line is
// written to the log with the tag "serial". The complete output is also
// available with the Output() function.
package serial
