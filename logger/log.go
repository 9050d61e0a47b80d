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

package logger

import (
	"fmt"
	"io"
	"strings"
	"sync"
	"time"
)

// Entry represents a single line/entry in the log
type Entry struct {
	Timestamp time.Time
	Level     Level
	tag       string
	detail    string
	repeated  int
}

func (e *Entry) String() string {
	s := strings.Builder{}
	s.WriteString(fmt.Sprintf("%s: %s", e.tag, e.detail))
	if e.repeated > 0 {
		s.WriteString(fmt.Sprintf(" (repeat x%d)", e.repeated+1))
	}
	s.WriteString("\n")
	return s.String()
}

// Tag returns the tag of the entry. The tag usually names the hardware
// component that made the entry.
func (e *Entry) Tag() string {
	return e.tag
}

// Detail returns the detail of the entry.
func (e *Entry) Detail() string {
	return e.detail
}

// Callback is the signature of the host logging sink. The message does not
// include a trailing newline. The callback is fire-and-forget: nothing it does
// is reported back to the emulation.
type Callback func(level Level, message []byte)

// LevelWriter is implemented by echo writers that want to know the level of
// the entry being written. See the Colorizer type.
type LevelWriter interface {
	io.Writer
	WriteLevel(level Level, p []byte) (int, error)
}

// Logger is a bounded list of log entries. Consecutive identical entries are
// collapsed into a single entry with a repeat count.
//
// Every emulation instance owns its own Logger. There is no central log.
type Logger struct {
	crit sync.Mutex

	maxEntries int
	entries    []Entry

	level    Level
	echo     io.Writer
	callback Callback
}

// NewLogger is the preferred method of initialisation for the Logger type. A
// maxEntries value of zero means that no entries are retained. Echoing and
// the callback will still work in that case.
func NewLogger(maxEntries int) *Logger {
	return &Logger{
		maxEntries: maxEntries,
		entries:    make([]Entry, 0, min(maxEntries, 256)),
		level:      Info,
	}
}

// SetLevel sets the minimum level for an entry to be accepted.
func (l *Logger) SetLevel(level Level) {
	l.crit.Lock()
	defer l.crit.Unlock()
	l.level = level
}

// SetEcho prints new log entries to io.Writer as they are made. A nil value
// stops echoing.
func (l *Logger) SetEcho(output io.Writer) {
	l.crit.Lock()
	defer l.crit.Unlock()
	l.echo = output
}

// SetCallback sets the host sink for log entries. A nil value removes the
// callback.
func (l *Logger) SetCallback(callback Callback) {
	l.crit.Lock()
	defer l.crit.Unlock()
	l.callback = callback
}

// Log adds an entry at the Info level. The detail argument is converted to a
// string according to its type: error types use the Error() function,
// fmt.Stringer types the String() function and every other type is formatted
// with the %v verb.
func (l *Logger) Log(perm Permission, tag string, detail any) {
	l.add(perm, Info, tag, detail)
}

// Logf adds a formatted entry at the Info level.
func (l *Logger) Logf(perm Permission, tag string, detail string, args ...any) {
	l.add(perm, Info, tag, fmt.Sprintf(detail, args...))
}

// Warn adds an entry at the Warning level.
func (l *Logger) Warn(perm Permission, tag string, detail any) {
	l.add(perm, Warning, tag, detail)
}

// Warnf adds a formatted entry at the Warning level.
func (l *Logger) Warnf(perm Permission, tag string, detail string, args ...any) {
	l.add(perm, Warning, tag, fmt.Sprintf(detail, args...))
}

// Error adds an entry at the Error level.
func (l *Logger) Error(perm Permission, tag string, detail any) {
	l.add(perm, Error, tag, detail)
}

// Errorf adds a formatted entry at the Error level.
func (l *Logger) Errorf(perm Permission, tag string, detail string, args ...any) {
	l.add(perm, Error, tag, fmt.Sprintf(detail, args...))
}

// Debugf adds a formatted entry at the Debug level.
func (l *Logger) Debugf(perm Permission, tag string, detail string, args ...any) {
	// test level before formatting. debug entries are made in the inner loop
	// of the emulation
	l.crit.Lock()
	skip := l.level > Debug
	l.crit.Unlock()
	if skip {
		return
	}
	l.add(perm, Debug, tag, fmt.Sprintf(detail, args...))
}

func (l *Logger) add(perm Permission, level Level, tag string, detail any) {
	if perm != Allow && !perm.AllowLogging() {
		return
	}

	var s string
	switch d := detail.(type) {
	case string:
		s = d
	case error:
		s = d.Error()
	case fmt.Stringer:
		s = d.String()
	default:
		s = fmt.Sprintf("%v", d)
	}

	// remove all newline characters from tag and detail string
	tag = strings.ReplaceAll(tag, "\n", "")
	s = strings.ReplaceAll(s, "\n", "")

	l.crit.Lock()

	if level < l.level {
		l.crit.Unlock()
		return
	}

	e := Entry{Timestamp: time.Now(), Level: level, tag: tag, detail: s}

	if l.maxEntries > 0 {
		var last *Entry
		if len(l.entries) > 0 {
			last = &l.entries[len(l.entries)-1]
		}

		if last != nil && last.tag == tag && last.detail == s && last.Level == level {
			last.repeated++
			last.Timestamp = e.Timestamp
			e = *last
		} else {
			l.entries = append(l.entries, e)
		}

		// maintain maximum length
		if len(l.entries) > l.maxEntries {
			l.entries = l.entries[len(l.entries)-l.maxEntries:]
		}
	}

	echo := l.echo
	callback := l.callback

	l.crit.Unlock()

	if echo != nil {
		if lw, ok := echo.(LevelWriter); ok {
			_, _ = lw.WriteLevel(level, []byte(e.String()))
		} else {
			_, _ = io.WriteString(echo, e.String())
		}
	}

	if callback != nil {
		callback(level, []byte(fmt.Sprintf("%s: %s", tag, s)))
	}
}

// Clear all entries from the log.
func (l *Logger) Clear() {
	l.crit.Lock()
	defer l.crit.Unlock()
	l.entries = l.entries[:0]
}

// Write contents of log to io.Writer.
func (l *Logger) Write(output io.Writer) {
	l.crit.Lock()
	defer l.crit.Unlock()
	for _, e := range l.entries {
		_, _ = io.WriteString(output, e.String())
	}
}

// Tail writes the last N entries to io.Writer.
func (l *Logger) Tail(output io.Writer, number int) {
	l.crit.Lock()
	defer l.crit.Unlock()

	// cap number to the number of entries
	number = max(0, min(number, len(l.entries)))

	for _, e := range l.entries[len(l.entries)-number:] {
		_, _ = io.WriteString(output, e.String())
	}
}

// BorrowLog gives the provided function the critial section and access to the
// list of log entries.
func (l *Logger) BorrowLog(f func([]Entry)) {
	l.crit.Lock()
	defer l.crit.Unlock()
	f(l.entries)
}
