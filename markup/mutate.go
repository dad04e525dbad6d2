package markup

import "strings"

// ApplyBlockStyle sets the heading style of the line containing cursor. Any
// existing heading prefix is replaced. The cursor shifts by the change in
// prefix length, never moving before the start of the line.
func ApplyBlockStyle(text string, cursor int, style BlockTextStyle) State {
	cursor = ClampOffset(text, cursor)
	start, end := lineBounds(text, cursor)
	line := text[start:end]

	removed := len(lineStyle(line).Prefix())
	prefix := style.Prefix()

	next := text[:start] + prefix + line[removed:] + text[end:]
	off := maxInt(start, cursor+len(prefix)-removed)
	return NewState(next, off)
}

// ToggleWrap adds or removes marker around the selection.
//
// BoldMarker, ItalicMarker and CodeMarker wrap: when not active, a non-empty
// selection is wrapped and shifted past the opening marker, and a collapsed
// selection is left alone. When active, the pair enclosing the cursor is
// removed.
//
// BulletMarker and ChecklistMarker are line prefixes and apply to every line
// the selection touches.
func ToggleWrap(s State, marker string, active bool) State {
	s = s.Clamp()
	switch marker {
	case "":
		return s
	case BulletMarker, ChecklistMarker:
		return toggleLinePrefix(s, marker, active)
	}

	if !active {
		if s.Selection.Collapsed() {
			return s
		}
		start, end := s.Selection.Start(), s.Selection.End()
		text := s.Text
		return State{
			Text:      text[:start] + marker + text[start:end] + marker + text[end:],
			Selection: s.Selection.shift(len(marker)),
		}
	}

	cursor := s.Selection.Start()
	open, closeAt, ok := enclosingPair(s.Text, cursor, marker)
	if !ok {
		return s
	}
	n := len(marker)
	text := s.Text
	next := text[:open] + text[open+n:closeAt] + text[closeAt+n:]
	return NewState(next, maxInt(open, cursor-n))
}

// lineEdit replaces removed bytes at offset at with insert.
type lineEdit struct {
	at      int
	removed int
	insert  string
}

func toggleLinePrefix(s State, marker string, active bool) State {
	text := s.Text
	first := lineStart(text, s.Selection.Start())
	last := lineEnd(text, s.Selection.End())
	multi := first != lineStart(text, s.Selection.End())

	var edits []lineEdit
	for at := first; at <= last; {
		end := lineEnd(text, at)
		line := text[at:end]
		if multi && line == "" {
			at = end + 1
			continue
		}
		if e, ok := prefixEdit(line, marker, active); ok {
			e.at = at
			edits = append(edits, e)
		}
		at = end + 1
	}
	if len(edits) == 0 {
		return s
	}

	var sb strings.Builder
	prev := 0
	for _, e := range edits {
		sb.WriteString(text[prev:e.at])
		sb.WriteString(e.insert)
		prev = e.at + e.removed
	}
	sb.WriteString(text[prev:])

	return State{
		Text: sb.String(),
		Selection: Selection{
			Anchor: mapOffset(edits, s.Selection.Anchor),
			Head:   mapOffset(edits, s.Selection.Head),
		},
	}.Clamp()
}

// prefixEdit computes the edit that toggles marker on one line. Turning a
// prefix on replaces a competing list prefix; a line that already carries
// the marker is left alone.
func prefixEdit(line, marker string, active bool) (lineEdit, bool) {
	current := listPrefix(line)
	if active {
		if current == "" || (marker == BulletMarker) != (current == BulletMarker) {
			return lineEdit{}, false
		}
		return lineEdit{removed: len(current)}, true
	}

	switch {
	case current == marker:
		return lineEdit{}, false
	case marker == ChecklistMarker && current == CheckedMarker:
		return lineEdit{}, false
	}
	return lineEdit{removed: len(current), insert: marker}, true
}

// listPrefix returns the list marker line starts with, or "".
func listPrefix(line string) string {
	switch {
	case hasPrefix(line, ChecklistMarker):
		return ChecklistMarker
	case hasPrefix(line, CheckedMarker):
		return CheckedMarker
	case hasPrefix(line, BulletMarker):
		return BulletMarker
	default:
		return ""
	}
}

// mapOffset maps an offset through edits sorted by position. Offsets inside
// a replaced prefix land just after the new prefix.
func mapOffset(edits []lineEdit, off int) int {
	delta := 0
	for _, e := range edits {
		switch {
		case off >= e.at+e.removed:
			delta += len(e.insert) - e.removed
		case off >= e.at:
			return e.at + delta + len(e.insert)
		default:
			return off + delta
		}
	}
	return off + delta
}
