package buffer

import "cmp"

// Pos is a cursor location: a row and a column counted in grapheme
// clusters, so "é" and "👍🏽" each occupy one column.
type Pos struct {
	Row         int
	GraphemeCol int
}

// Range spans [Start, End). Editing methods normalize it so that Start
// comes first; SelectionRaw keeps the direction.
type Range struct {
	Start Pos
	End   Pos
}

// TextEdit is one replacement for Apply. Text may span lines.
type TextEdit struct {
	Range Range
	Text  string
}

// ComparePos orders positions row first, then column.
func ComparePos(a, b Pos) int {
	if c := cmp.Compare(a.Row, b.Row); c != 0 {
		return c
	}
	return cmp.Compare(a.GraphemeCol, b.GraphemeCol)
}

func NormalizeRange(r Range) Range {
	if ComparePos(r.End, r.Start) < 0 {
		r.Start, r.End = r.End, r.Start
	}
	return r
}

func (r Range) IsEmpty() bool { return r.Start == r.End }

// Contains reports whether p lies in the normalized range.
func (r Range) Contains(p Pos) bool {
	r = NormalizeRange(r)
	return ComparePos(p, r.Start) >= 0 && ComparePos(p, r.End) < 0
}

func clampInt(v, lo, hi int) int {
	if hi < lo {
		return lo
	}
	return min(max(v, lo), hi)
}

// ClampPos moves p into a document of rowCount lines (at least one) whose
// lengths in clusters lineLen reports. A nil lineLen means empty lines.
func ClampPos(p Pos, rowCount int, lineLen func(row int) int) Pos {
	row := clampInt(p.Row, 0, max(rowCount, 1)-1)
	width := 0
	if lineLen != nil {
		width = max(lineLen(row), 0)
	}
	return Pos{Row: row, GraphemeCol: clampInt(p.GraphemeCol, 0, width)}
}

// ClampRange clamps both ends of r without reordering them.
func ClampRange(r Range, rowCount int, lineLen func(row int) int) Range {
	return Range{
		Start: ClampPos(r.Start, rowCount, lineLen),
		End:   ClampPos(r.End, rowCount, lineLen),
	}
}
