package buffer

import (
	"testing"

	"github.com/athread/lichen/markup"
)

func TestBuffer_State_ByteSelection(t *testing.T) {
	b := New("h\u00e9llo", Options{})
	b.SetSelection(Range{Start: Pos{Row: 0, GraphemeCol: 3}, End: Pos{Row: 0, GraphemeCol: 1}})

	got := b.State()
	if got.Text != "h\u00e9llo" {
		t.Fatalf("text=%q", got.Text)
	}
	if want := (markup.Selection{Anchor: 4, Head: 1}); got.Selection != want {
		t.Fatalf("selection=%v, want %v", got.Selection, want)
	}

	b.SetCursor(Pos{Row: 0, GraphemeCol: 2})
	if want := markup.Cursor(3); b.State().Selection != want {
		t.Fatalf("selection=%v, want %v", b.State().Selection, want)
	}
}

func TestBuffer_SetState(t *testing.T) {
	b := New("", Options{})

	b.SetState(markup.State{Text: "ab\ncd", Selection: markup.Selection{Anchor: 1, Head: 4}})

	if got, want := b.Text(), "ab\ncd"; got != want {
		t.Fatalf("text=%q, want %q", got, want)
	}
	if got, want := b.Cursor(), (Pos{Row: 1, GraphemeCol: 1}); got != want {
		t.Fatalf("cursor=%v, want %v", got, want)
	}
	raw, ok := b.SelectionRaw()
	if !ok || raw != (Range{Start: Pos{Row: 0, GraphemeCol: 1}, End: Pos{Row: 1, GraphemeCol: 1}}) {
		t.Fatalf("selection=(%v,%v)", raw, ok)
	}
	if got, want := b.TextVersion(), uint64(1); got != want {
		t.Fatalf("text version=%d, want %d", got, want)
	}
	ch, ok := b.LastChange()
	if !ok || ch.Source != ChangeSourceState {
		t.Fatalf("last change=(%+v,%v), want state change", ch, ok)
	}

	v := b.Version()
	b.SetState(b.State())
	if b.Version() != v {
		t.Fatalf("identical state bumped version")
	}
}

func TestBuffer_SetText_ResetsCursor(t *testing.T) {
	b := New("old", Options{})
	b.SetCursor(Pos{Row: 0, GraphemeCol: 3})

	b.SetText("new\ntext")

	if got, want := b.Text(), "new\ntext"; got != want {
		t.Fatalf("text=%q, want %q", got, want)
	}
	if got := b.Cursor(); got != (Pos{}) {
		t.Fatalf("cursor=%v, want (0,0)", got)
	}
}

func TestBuffer_Rewrite_ContinuesList(t *testing.T) {
	b := New("- [x] milk", Options{Rewrite: markup.Transform})
	b.SetCursor(Pos{Row: 0, GraphemeCol: 10})
	v := b.Version()

	b.InsertNewline()

	if got, want := b.Text(), "- [x] milk\n- [ ] "; got != want {
		t.Fatalf("text=%q, want %q", got, want)
	}
	if got, want := b.Cursor(), (Pos{Row: 1, GraphemeCol: 6}); got != want {
		t.Fatalf("cursor=%v, want %v", got, want)
	}
	if got := b.Version(); got != v+1 {
		t.Fatalf("version=%d, want %d", got, v+1)
	}

	ch, ok := b.LastChange()
	if !ok || !ch.Rewritten {
		t.Fatalf("expected rewritten change, got (%+v,%v)", ch, ok)
	}
	if got, want := len(ch.AppliedEdits), 2; got != want {
		t.Fatalf("applied edits=%d, want %d", got, want)
	}
	if got, want := ch.CursorAfter, (Pos{Row: 1, GraphemeCol: 6}); got != want {
		t.Fatalf("cursor after=%v, want %v", got, want)
	}
}

func TestBuffer_Rewrite_EnterOnEmptyItemExits(t *testing.T) {
	b := New("- a\n- ", Options{Rewrite: markup.Transform})
	b.SetCursor(Pos{Row: 1, GraphemeCol: 2})

	b.InsertNewline()

	if got, want := b.Text(), "- a\n- \n"; got != want {
		t.Fatalf("text=%q, want %q", got, want)
	}
	if ch, _ := b.LastChange(); ch.Rewritten {
		t.Fatalf("expected plain edit")
	}
}

func TestBuffer_Rewrite_BackspaceCollapsesBullet(t *testing.T) {
	b := New("x\n- ", Options{Rewrite: markup.Transform})
	b.SetCursor(Pos{Row: 1, GraphemeCol: 2})

	b.DeleteBackward()

	if got, want := b.Text(), "x\n"; got != want {
		t.Fatalf("text=%q, want %q", got, want)
	}
	if got, want := b.Cursor(), (Pos{Row: 1, GraphemeCol: 0}); got != want {
		t.Fatalf("cursor=%v, want %v", got, want)
	}
}

func TestBuffer_Rewrite_SkippedBySetState(t *testing.T) {
	calls := 0
	b := New("", Options{Rewrite: func(before, after markup.State) markup.State {
		calls++
		return markup.Transform(before, after)
	}})

	b.SetState(markup.NewState("- a\n", 4))
	if calls != 0 {
		t.Fatalf("rewrite called %d times by SetState", calls)
	}

	b.InsertText("b")
	if calls != 1 {
		t.Fatalf("rewrite called %d times, want 1", calls)
	}
	if got, want := b.Text(), "- a\nb"; got != want {
		t.Fatalf("text=%q, want %q", got, want)
	}
}
