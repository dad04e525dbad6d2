package editor

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/athread/lichen/buffer"
	"github.com/athread/lichen/markup"
)

func TestFormat_BoldWrapsAndUnwraps(t *testing.T) {
	m := New(Config{Text: "hello world"})
	m.buf.SetSelection(buffer.Range{Start: buffer.Pos{}, End: buffer.Pos{Row: 0, GraphemeCol: 5}})

	m, _ = m.Update(alt("b"))
	if got, want := m.buf.Text(), "**hello** world"; got != want {
		t.Fatalf("text after bold: got %q, want %q", got, want)
	}
	if got, want := m.buf.State().Selection, (markup.Selection{Anchor: 2, Head: 7}); got != want {
		t.Fatalf("selection after bold: got %v, want %v", got, want)
	}
	if !m.Formatting().Bold {
		t.Fatalf("expected bold to be active")
	}

	m, _ = m.Update(alt("b"))
	if got, want := m.buf.Text(), "hello world"; got != want {
		t.Fatalf("text after unbold: got %q, want %q", got, want)
	}
}

func TestFormat_CollapsedWrapIsNoOp(t *testing.T) {
	m := New(Config{Text: "hello"})
	v := m.buf.Version()
	m = m.Format(FormatItalic)
	if got := m.buf.Text(); got != "hello" {
		t.Fatalf("text: got %q, want %q", got, "hello")
	}
	if m.buf.Version() != v {
		t.Fatalf("version changed on no-op format")
	}
}

func TestFormat_HeadingToggles(t *testing.T) {
	m := New(Config{Text: "title"})

	m, _ = m.Update(alt("2"))
	if got, want := m.buf.Text(), "## title"; got != want {
		t.Fatalf("text after h2: got %q, want %q", got, want)
	}
	if got, want := m.buf.Cursor(), (buffer.Pos{Row: 0, GraphemeCol: 3}); got != want {
		t.Fatalf("cursor after h2: got %v, want %v", got, want)
	}

	m, _ = m.Update(alt("1"))
	if got, want := m.buf.Text(), "# title"; got != want {
		t.Fatalf("text after h1: got %q, want %q", got, want)
	}

	m, _ = m.Update(alt("1"))
	if got, want := m.buf.Text(), "title"; got != want {
		t.Fatalf("text after second h1: got %q, want %q", got, want)
	}
}

func TestFormat_HeadingUsesSelectionStartLine(t *testing.T) {
	m := New(Config{Text: "# a\nb"})
	m.buf.SetState(markup.State{Text: "# a\nb", Selection: markup.Selection{Anchor: 2, Head: 5}})

	m, _ = m.Update(alt("1"))
	if got, want := m.buf.Text(), "a\nb"; got != want {
		t.Fatalf("text after h1 over two lines: got %q, want %q", got, want)
	}
}

func TestFormat_ListPrefixes(t *testing.T) {
	m := New(Config{Text: "a\nb"})
	m.buf.SelectAll()

	m, _ = m.Update(alt("l"))
	if got, want := m.buf.Text(), "- a\n- b"; got != want {
		t.Fatalf("text after bullet: got %q, want %q", got, want)
	}

	m, _ = m.Update(alt("x"))
	if got, want := m.buf.Text(), "- [ ] a\n- [ ] b"; got != want {
		t.Fatalf("text after checklist: got %q, want %q", got, want)
	}
}

func TestFormat_ToggleCheckAtCursor(t *testing.T) {
	m := New(Config{Text: "x\n- [ ] milk"})
	m.buf.SetCursor(buffer.Pos{Row: 1, GraphemeCol: 8})

	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyEnter, Alt: true})
	if got, want := m.buf.Text(), "x\n- [x] milk"; got != want {
		t.Fatalf("text: got %q, want %q", got, want)
	}
	if got, want := m.buf.Cursor(), (buffer.Pos{Row: 1, GraphemeCol: 8}); got != want {
		t.Fatalf("cursor: got %v, want %v", got, want)
	}
}

func TestFormatAction_String(t *testing.T) {
	if got := FormatH2.String(); got != "h2" {
		t.Fatalf("got %q, want %q", got, "h2")
	}
	if got := FormatAction(99).String(); got != "unknown" {
		t.Fatalf("got %q, want %q", got, "unknown")
	}
}
