package buffer

import "testing"

func TestBuffer_LastChange_InitialAndNoOp(t *testing.T) {
	b := New("a", Options{})

	if _, ok := b.LastChange(); ok {
		t.Fatalf("expected no initial change")
	}

	b.DeleteBackward() // no-op at document start
	if _, ok := b.LastChange(); ok {
		t.Fatalf("expected no change after no-op mutation")
	}
}

func TestBuffer_Change_InsertTextShape(t *testing.T) {
	b := New("ab", Options{})
	b.SetCursor(Pos{Row: 0, GraphemeCol: 1})
	v := b.Version()

	b.InsertText("X")

	ch, ok := b.LastChange()
	if !ok {
		t.Fatalf("expected last change")
	}
	if got, want := ch.Source, ChangeSourceLocal; got != want {
		t.Fatalf("source=%v, want %v", got, want)
	}
	if got, want := ch.VersionBefore, v; got != want {
		t.Fatalf("version before=%d, want %d", got, want)
	}
	if got, want := ch.VersionAfter, v+1; got != want {
		t.Fatalf("version after=%d, want %d", got, want)
	}
	if got, want := ch.CursorBefore, (Pos{Row: 0, GraphemeCol: 1}); got != want {
		t.Fatalf("cursor before=%v, want %v", got, want)
	}
	if got, want := ch.CursorAfter, (Pos{Row: 0, GraphemeCol: 2}); got != want {
		t.Fatalf("cursor after=%v, want %v", got, want)
	}
	if ch.Rewritten {
		t.Fatalf("expected no rewrite")
	}
	if got, want := len(ch.AppliedEdits), 1; got != want {
		t.Fatalf("applied edits=%d, want %d", got, want)
	}
	edit := ch.AppliedEdits[0]
	if edit.InsertText != "X" || edit.DeletedText != "" {
		t.Fatalf("edit=%+v, want insert of X", edit)
	}
	if want := (Range{Start: Pos{Row: 0, GraphemeCol: 1}, End: Pos{Row: 0, GraphemeCol: 2}}); edit.RangeAfter != want {
		t.Fatalf("range after=%v, want %v", edit.RangeAfter, want)
	}
}

func TestBuffer_Change_DeleteSelectionRecordsSelection(t *testing.T) {
	b := New("abcd", Options{})
	b.SetSelection(Range{Start: Pos{Row: 0, GraphemeCol: 1}, End: Pos{Row: 0, GraphemeCol: 3}})

	b.DeleteSelection()

	ch, ok := b.LastChange()
	if !ok {
		t.Fatalf("expected last change")
	}
	if !ch.SelectionBefore.Active {
		t.Fatalf("expected active selection before")
	}
	if ch.SelectionAfter.Active {
		t.Fatalf("expected inactive selection after")
	}
	if got, want := ch.AppliedEdits[0].DeletedText, "bc"; got != want {
		t.Fatalf("deleted=%q, want %q", got, want)
	}
}

func TestBuffer_LastChange_IsACopy(t *testing.T) {
	b := New("a", Options{})
	b.InsertText("b")

	ch, _ := b.LastChange()
	ch.AppliedEdits[0].InsertText = "mutated"

	again, _ := b.LastChange()
	if got := again.AppliedEdits[0].InsertText; got != "b" {
		t.Fatalf("insert text=%q, want %q", got, "b")
	}
}

func TestChangeSource_String(t *testing.T) {
	if got, want := ChangeSourceState.String(), "state"; got != want {
		t.Fatalf("String()=%q, want %q", got, want)
	}
}

func TestBuffer_Change_SetStateRecordsMinimalEdit(t *testing.T) {
	b := New("- [ ] milk\n- [ ] eggs", Options{})

	b.SetText("- [x] milk\n- [ ] eggs")

	ch, ok := b.LastChange()
	if !ok || ch.Source != ChangeSourceState {
		t.Fatalf("change=(%+v,%v), want state change", ch, ok)
	}
	if len(ch.AppliedEdits) != 1 {
		t.Fatalf("applied edits=%d, want 1", len(ch.AppliedEdits))
	}
	edit := ch.AppliedEdits[0]
	if edit.DeletedText != " " || edit.InsertText != "x" {
		t.Fatalf("edit=%+v, want ' ' -> 'x'", edit)
	}
	want := Range{Start: Pos{Row: 0, GraphemeCol: 3}, End: Pos{Row: 0, GraphemeCol: 4}}
	if edit.RangeBefore != want || edit.RangeAfter != want {
		t.Fatalf("ranges=%v/%v, want %v", edit.RangeBefore, edit.RangeAfter, want)
	}
}

func TestDiffLines(t *testing.T) {
	tests := []struct {
		name          string
		before, after string
		deleted, ins  string
		start, endB   Pos
	}{
		{"append line", "a", "a\nb", "", "\nb", Pos{0, 1}, Pos{0, 1}},
		{"join lines", "a\nb", "ab", "\n", "", Pos{0, 1}, Pos{1, 0}},
		{"cluster kept whole", "\u00e9", "\u00e8", "\u00e9", "\u00e8", Pos{0, 0}, Pos{0, 1}},
		{"repeated run", "aaa", "aa", "a", "", Pos{0, 2}, Pos{0, 3}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := diffLines(splitLines(tt.before), splitLines(tt.after))
			if !ok {
				t.Fatal("diffLines reported no change")
			}
			if got.DeletedText != tt.deleted || got.InsertText != tt.ins {
				t.Fatalf("edit=%q->%q, want %q->%q", got.DeletedText, got.InsertText, tt.deleted, tt.ins)
			}
			if got.RangeBefore.Start != tt.start || got.RangeBefore.End != tt.endB {
				t.Fatalf("range before=%v, want [%v,%v)", got.RangeBefore, tt.start, tt.endB)
			}
		})
	}

	if _, ok := diffLines(splitLines("same"), splitLines("same")); ok {
		t.Fatal("diffLines on equal docs reported a change")
	}
}
