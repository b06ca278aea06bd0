package source

import (
	"math"

	"fortio.org/safecast"
)

// Tracker records where the most recent lexical match happened and keeps
// the physical line it sits on, so diagnostics can be rendered later.
type Tracker struct {
	file    *File
	last    Location
	current string // text of last.Line
}

// NewTracker creates a tracker over file.
func NewTracker(file *File) *Tracker {
	return &Tracker{file: file}
}

// File returns the tracked file.
func (t *Tracker) File() *File { return t.file }

// Match records a match of length bytes starting at byte offset off and
// returns its Location.
func (t *Tracker) Match(off, length uint32) Location {
	line, start := lineOf(t.file.LineIdx, off)
	width, err := safecast.Conv[uint16](length)
	if err != nil {
		// токен длиннее 64К (гигантский строковый литерал) — подчёркиваем сколько влезет
		width = math.MaxUint16
	}
	loc := Location{Line: line, Column: off - start + 1, Length: width}
	if loc.Line != t.last.Line || t.current == "" {
		t.current = t.file.Line(line)
	}
	t.last = loc
	return loc
}

// Last returns the location of the most recent match.
func (t *Tracker) Last() Location { return t.last }

// CurrentLine returns the physical line of the most recent match.
func (t *Tracker) CurrentLine() string { return t.current }

// Line returns any physical line of the tracked file (1-based).
func (t *Tracker) Line(n uint32) string {
	if n == t.last.Line && t.current != "" {
		return t.current
	}
	return t.file.Line(n)
}
