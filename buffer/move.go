package buffer

import (
	"strings"

	"github.com/athread/lichen/internal/grapheme"
	"github.com/athread/lichen/markup"
)

// MoveUnit is the granularity of a cursor move.
type MoveUnit int

const (
	MoveGrapheme MoveUnit = iota
	MoveWord
	MoveLine
	MoveDoc
)

type MoveDir int

const (
	DirLeft MoveDir = iota
	DirRight
	DirUp
	DirDown
	DirHome
	DirEnd
)

// Move describes one cursor motion. Extend grows the selection from its
// anchor (or from the cursor) instead of clearing it.
type Move struct {
	Unit   MoveUnit
	Dir    MoveDir
	Extend bool
}

// Move moves the cursor.
//
// MoveLine with DirHome is markup aware: on a list item or heading it first
// stops after the marker, and a second press goes to column 0.
func (b *Buffer) Move(m Move) {
	from := b.cursor
	to := b.clampPos(b.target(from, m))

	var sel selectionState
	if m.Extend {
		anchor := from
		if b.sel.active && b.sel.anchor != b.sel.end {
			anchor = b.sel.anchor
		}
		if anchor != to {
			sel = selectionState{active: true, anchor: anchor, end: to}
		}
	}

	if from == to && selectionStateEqual(b.sel, sel) {
		return
	}
	b.cursor, b.sel = to, sel
	b.version++
}

// SelectAll selects the whole document with the cursor at the end.
func (b *Buffer) SelectAll() {
	b.SetSelection(Range{End: b.docEnd()})
}

func selectionStateEqual(a, b selectionState) bool {
	if !a.active || !b.active {
		return a.active == b.active
	}
	return a.anchor == b.anchor && a.end == b.end
}

func (b *Buffer) docEnd() Pos {
	last := len(b.lines) - 1
	return Pos{Row: last, GraphemeCol: len(b.lines[last])}
}

func (b *Buffer) target(p Pos, m Move) Pos {
	if m.Unit == MoveDoc {
		switch m.Dir {
		case DirHome, DirUp:
			return Pos{}
		case DirEnd, DirDown:
			return b.docEnd()
		}
		return p
	}

	line := b.lines[p.Row]
	switch m.Dir {
	case DirHome:
		if m.Unit == MoveLine {
			if c := contentStart(line); p.GraphemeCol != c {
				return Pos{Row: p.Row, GraphemeCol: c}
			}
		}
		return Pos{Row: p.Row}
	case DirEnd:
		return Pos{Row: p.Row, GraphemeCol: len(line)}
	case DirUp:
		if p.Row == 0 {
			return Pos{}
		}
		return Pos{Row: p.Row - 1, GraphemeCol: min(p.GraphemeCol, len(b.lines[p.Row-1]))}
	case DirDown:
		if p.Row == len(b.lines)-1 {
			return b.docEnd()
		}
		return Pos{Row: p.Row + 1, GraphemeCol: min(p.GraphemeCol, len(b.lines[p.Row+1]))}
	}

	left := m.Dir == DirLeft
	if m.Unit == MoveWord {
		// Word moves stay on the line unless already at its edge.
		switch {
		case left && p.GraphemeCol > 0:
			return Pos{Row: p.Row, GraphemeCol: prevWordBoundary(line, p.GraphemeCol)}
		case !left && p.GraphemeCol < len(line):
			return Pos{Row: p.Row, GraphemeCol: nextWordBoundary(line, p.GraphemeCol)}
		}
	}
	return b.step(p, left)
}

// step moves one cluster, wrapping across line breaks.
func (b *Buffer) step(p Pos, left bool) Pos {
	switch {
	case left && p.GraphemeCol > 0:
		p.GraphemeCol--
	case left && p.Row > 0:
		p = Pos{Row: p.Row - 1, GraphemeCol: len(b.lines[p.Row-1])}
	case !left && p.GraphemeCol < len(b.lines[p.Row]):
		p.GraphemeCol++
	case !left && p.Row < len(b.lines)-1:
		p = Pos{Row: p.Row + 1}
	}
	return p
}

// contentStart returns the column after a line's indentation and its list
// or heading marker.
func contentStart(line []string) int {
	s := grapheme.Join(line)
	rest := strings.TrimLeft(s, " \t")
	prefix := len(s) - len(rest)
	switch {
	case strings.HasPrefix(rest, markup.CheckedMarker):
		prefix += len(markup.CheckedMarker)
	case strings.HasPrefix(rest, markup.ChecklistMarker):
		prefix += len(markup.ChecklistMarker)
	case strings.HasPrefix(rest, markup.BulletMarker):
		prefix += len(markup.BulletMarker)
	case prefix == 0:
		prefix = len(markup.Detect(s, 0).TextStyle.Prefix())
	}

	col, n := 0, 0
	for col < len(line) && n+len(line[col]) <= prefix {
		n += len(line[col])
		col++
	}
	return col
}

// Word boundaries skip whitespace, then non-whitespace, and never cross a
// line break.
func prevWordBoundary(line []string, col int) int {
	i := clampInt(col, 0, len(line))
	for i > 0 && grapheme.IsSpace(line[i-1]) {
		i--
	}
	for i > 0 && !grapheme.IsSpace(line[i-1]) {
		i--
	}
	return i
}

func nextWordBoundary(line []string, col int) int {
	i := clampInt(col, 0, len(line))
	for i < len(line) && grapheme.IsSpace(line[i]) {
		i++
	}
	for i < len(line) && !grapheme.IsSpace(line[i]) {
		i++
	}
	return i
}
