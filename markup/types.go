package markup

import "unicode/utf8"

// Selection is an (Anchor, Head) pair of byte offsets into a document.
// Anchor == Head denotes a collapsed cursor.
type Selection struct {
	Anchor int
	Head   int
}

// Cursor returns a collapsed selection at off.
func Cursor(off int) Selection {
	return Selection{Anchor: off, Head: off}
}

func (s Selection) Collapsed() bool { return s.Anchor == s.Head }

// Start returns the lower bound of the selection.
func (s Selection) Start() int { return minInt(s.Anchor, s.Head) }

// End returns the upper bound of the selection.
func (s Selection) End() int { return maxInt(s.Anchor, s.Head) }

// shift moves both ends by delta, preserving direction.
func (s Selection) shift(delta int) Selection {
	return Selection{Anchor: s.Anchor + delta, Head: s.Head + delta}
}

// State is an immutable (text, selection) pair. Transforms always return a
// fresh State and never mutate their inputs.
type State struct {
	Text      string
	Selection Selection
}

// NewState returns a State with a collapsed cursor at off.
func NewState(text string, off int) State {
	return State{Text: text, Selection: Cursor(off)}.Clamp()
}

// Clamp returns s with both selection ends clamped into the text.
func (s State) Clamp() State {
	s.Selection = ClampSelection(s.Text, s.Selection)
	return s
}

// ClampOffset clamps off into [0, len(text)] and moves it back to the start
// of the rune it points into.
func ClampOffset(text string, off int) int {
	off = clampInt(off, 0, len(text))
	for off > 0 && off < len(text) && !utf8.RuneStart(text[off]) {
		off--
	}
	return off
}

func ClampSelection(text string, s Selection) Selection {
	return Selection{
		Anchor: ClampOffset(text, s.Anchor),
		Head:   ClampOffset(text, s.Head),
	}
}

// lineBounds returns [start, end) of the line containing off, excluding the
// surrounding line breaks.
func lineBounds(text string, off int) (start, end int) {
	start = lineStart(text, off)
	end = lineEnd(text, start)
	return start, end
}

func lineStart(text string, off int) int {
	for i := off - 1; i >= 0; i-- {
		if text[i] == '\n' {
			return i + 1
		}
	}
	return 0
}

func lineEnd(text string, off int) int {
	for i := off; i < len(text); i++ {
		if text[i] == '\n' {
			return i
		}
	}
	return len(text)
}

func clampInt(v, min, max int) int {
	if max < min {
		return min
	}
	if v < min {
		return min
	}
	if v > max {
		return max
	}
	return v
}

func minInt(a, b int) int {
	if a < b {
		return a
	}
	return b
}

func maxInt(a, b int) int {
	if a > b {
		return a
	}
	return b
}
