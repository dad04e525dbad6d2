package buffer

import "github.com/athread/lichen/markup"

// State returns the buffer as a markup state. The selection anchor is the
// selection start point (or the cursor when nothing is selected) and the head
// is the cursor.
func (b *Buffer) State() markup.State {
	head := b.posToByteOffset(b.cursor)
	anchor := head
	if raw, ok := b.SelectionRaw(); ok {
		anchor = b.posToByteOffset(raw.Start)
	}
	return markup.State{
		Text:      b.Text(),
		Selection: markup.Selection{Anchor: anchor, Head: head},
	}
}

// SetState replaces the text and selection with s. Options.Rewrite is not
// applied.
func (b *Buffer) SetState(s markup.State) {
	change := b.beginChange(ChangeSourceState)
	applied, textChanged, changed := b.replaceState(s)
	if !changed {
		return
	}
	b.version++
	if textChanged {
		b.textVersion++
		change.addAppliedEdit(applied)
	}
	b.commitChange(change)
}

// SetText replaces the whole document and puts the cursor at the start.
func (b *Buffer) SetText(text string) {
	b.SetState(markup.NewState(text, 0))
}

// replaceState installs s without touching versions. applied is the
// minimal replacement when textChanged is set.
func (b *Buffer) replaceState(s markup.State) (applied AppliedEdit, textChanged, changed bool) {
	s = s.Clamp()
	prevLines, prevCursor, prevSel := b.lines, b.cursor, b.sel
	if s.Text != b.Text() {
		b.lines = splitLines(s.Text)
		applied, textChanged = diffLines(prevLines, b.lines)
	}

	anchor, _ := b.byteOffsetToPos(s.Selection.Anchor, true)
	head, _ := b.byteOffsetToPos(s.Selection.Head, true)
	b.cursor = head
	b.sel = selectionState{}
	if anchor != head {
		b.sel = selectionState{active: true, anchor: anchor, end: head}
	}

	changed = textChanged || b.cursor != prevCursor || !selectionStateEqual(prevSel, b.sel)
	return applied, textChanged, changed
}
