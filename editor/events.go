package editor

import (
	"github.com/athread/lichen/buffer"
	"github.com/athread/lichen/markup"
)

type ChangeEvent struct {
	Version     uint64
	TextVersion uint64
	Cursor      buffer.Pos
	Selection   struct {
		Range  buffer.Range
		Active bool
	}

	// Formatting is the formatting active at the selection start.
	Formatting markup.Formatting
	// Rewritten reports that a live transform rewrote the last edit.
	Rewritten bool

	Text string
}

func buildChangeEvent(b *buffer.Buffer) ChangeEvent {
	ev := ChangeEvent{
		Version:     b.Version(),
		TextVersion: b.TextVersion(),
		Cursor:      b.Cursor(),
		Text:        b.Text(),
		Formatting:  formattingAt(b),
	}
	if r, ok := b.Selection(); ok {
		ev.Selection.Active = true
		ev.Selection.Range = r
	}
	if ch, ok := b.LastChange(); ok && ch.VersionAfter == b.Version() {
		ev.Rewritten = ch.Rewritten
	}
	return ev
}

func formattingAt(b *buffer.Buffer) markup.Formatting {
	s := b.State()
	return markup.Detect(s.Text, s.Selection.Start())
}
