package buffer

import "strings"

// ChangeSource identifies where a change originated.
type ChangeSource uint8

const (
	// ChangeSourceLocal is an edit made through the editing methods.
	ChangeSourceLocal ChangeSource = iota
	// ChangeSourceState is a wholesale replacement through SetState or
	// SetText.
	ChangeSourceState
)

func (s ChangeSource) String() string {
	switch s {
	case ChangeSourceLocal:
		return "local"
	case ChangeSourceState:
		return "state"
	default:
		return "unknown"
	}
}

// SelectionState is a normalized selection snapshot.
type SelectionState struct {
	Active bool
	Range  Range
}

// AppliedEdit is one text replacement, in coordinates before and after it.
type AppliedEdit struct {
	RangeBefore Range
	RangeAfter  Range
	InsertText  string
	DeletedText string
}

// Change records the most recent effective mutation.
//
// Rewritten is set when Options.Rewrite replaced the raw edit; the rewrite
// is then the last of AppliedEdits. Rewrites and SetState record the
// smallest replacement that turns the old text into the new one.
type Change struct {
	Source          ChangeSource
	VersionBefore   uint64
	VersionAfter    uint64
	CursorBefore    Pos
	CursorAfter     Pos
	SelectionBefore SelectionState
	SelectionAfter  SelectionState
	AppliedEdits    []AppliedEdit
	Rewritten       bool
}

// pendingChange is a Change whose "after" half is not filled in yet.
type pendingChange struct {
	Change
}

// LastChange returns a copy of the most recent effective change.
func (b *Buffer) LastChange() (Change, bool) {
	if !b.hasLastChange {
		return Change{}, false
	}
	ch := b.lastChange
	ch.AppliedEdits = append([]AppliedEdit(nil), ch.AppliedEdits...)
	return ch, true
}

func snapshotSelection(sel selectionState) SelectionState {
	if !sel.active {
		return SelectionState{}
	}
	r := NormalizeRange(Range{Start: sel.anchor, End: sel.end})
	if r.IsEmpty() {
		return SelectionState{}
	}
	return SelectionState{Active: true, Range: r}
}

func (b *Buffer) beginChange(source ChangeSource) pendingChange {
	return pendingChange{Change{
		Source:          source,
		VersionBefore:   b.version,
		CursorBefore:    b.cursor,
		SelectionBefore: snapshotSelection(b.sel),
	}}
}

func (pc *pendingChange) addAppliedEdit(e AppliedEdit) {
	e.RangeBefore = NormalizeRange(e.RangeBefore)
	e.RangeAfter = NormalizeRange(e.RangeAfter)
	pc.AppliedEdits = append(pc.AppliedEdits, e)
}

// commitChange publishes pc if the buffer version moved.
func (b *Buffer) commitChange(pc pendingChange) {
	if b.version == pc.VersionBefore {
		return
	}
	ch := pc.Change
	ch.VersionAfter = b.version
	ch.CursorAfter = b.cursor
	ch.SelectionAfter = snapshotSelection(b.sel)
	b.lastChange = ch
	b.hasLastChange = true
}

// diffLines returns the minimal replacement between two documents,
// comparing grapheme clusters with line breaks as separate tokens.
func diffLines(before, after [][]string) (AppliedEdit, bool) {
	a, b := tokens(before), tokens(after)

	lead := 0
	for lead < len(a) && lead < len(b) && a[lead] == b[lead] {
		lead++
	}
	if lead == len(a) && lead == len(b) {
		return AppliedEdit{}, false
	}
	trail := 0
	for trail < len(a)-lead && trail < len(b)-lead && a[len(a)-1-trail] == b[len(b)-1-trail] {
		trail++
	}

	return AppliedEdit{
		RangeBefore: Range{Start: posAtToken(before, lead), End: posAtToken(before, len(a)-trail)},
		RangeAfter:  Range{Start: posAtToken(after, lead), End: posAtToken(after, len(b)-trail)},
		DeletedText: strings.Join(a[lead:len(a)-trail], ""),
		InsertText:  strings.Join(b[lead:len(b)-trail], ""),
	}, true
}

func tokens(lines [][]string) []string {
	var out []string
	for row, line := range lines {
		if row > 0 {
			out = append(out, "\n")
		}
		out = append(out, line...)
	}
	return out
}

// posAtToken maps an index into tokens(lines) to a position.
func posAtToken(lines [][]string, i int) Pos {
	for row, line := range lines {
		if i <= len(line) {
			return Pos{Row: row, GraphemeCol: i}
		}
		i -= len(line) + 1
	}
	last := len(lines) - 1
	return Pos{Row: last, GraphemeCol: len(lines[last])}
}
