package buffer

import "testing"

func TestBuffer_MoveGrapheme_BoundsAndLineCrossing(t *testing.T) {
	b := New("ab\nu\u0308d", Options{})

	b.Move(Move{Unit: MoveGrapheme, Dir: DirLeft})
	if got := b.Cursor(); got != (Pos{Row: 0, GraphemeCol: 0}) {
		t.Fatalf("cursor=%v, want (0,0)", got)
	}

	b.SetCursor(Pos{Row: 0, GraphemeCol: 2})
	b.Move(Move{Unit: MoveGrapheme, Dir: DirRight})
	if got := b.Cursor(); got != (Pos{Row: 1, GraphemeCol: 0}) {
		t.Fatalf("cursor=%v, want (1,0)", got)
	}

	b.Move(Move{Unit: MoveGrapheme, Dir: DirRight})
	if got := b.Cursor(); got != (Pos{Row: 1, GraphemeCol: 1}) {
		t.Fatalf("cursor=%v, want (1,1)", got)
	}

	b.Move(Move{Unit: MoveGrapheme, Dir: DirLeft})
	b.Move(Move{Unit: MoveGrapheme, Dir: DirLeft})
	if got := b.Cursor(); got != (Pos{Row: 0, GraphemeCol: 2}) {
		t.Fatalf("cursor=%v, want (0,2)", got)
	}
}

func TestBuffer_MoveLine_VerticalClamp(t *testing.T) {
	b := New("hello\nw\nworld", Options{})

	b.SetCursor(Pos{Row: 2, GraphemeCol: 5})
	b.Move(Move{Unit: MoveLine, Dir: DirUp})
	if got := b.Cursor(); got != (Pos{Row: 1, GraphemeCol: 1}) {
		t.Fatalf("cursor=%v, want (1,1)", got)
	}

	b.SetCursor(Pos{Row: 0, GraphemeCol: 3})
	b.Move(Move{Unit: MoveLine, Dir: DirUp})
	if got := b.Cursor(); got != (Pos{Row: 0, GraphemeCol: 0}) {
		t.Fatalf("up on first line: cursor=%v, want (0,0)", got)
	}

	b.SetCursor(Pos{Row: 2, GraphemeCol: 1})
	b.Move(Move{Unit: MoveLine, Dir: DirDown})
	if got := b.Cursor(); got != (Pos{Row: 2, GraphemeCol: 5}) {
		t.Fatalf("down on last line: cursor=%v, want (2,5)", got)
	}

	b.Move(Move{Unit: MoveLine, Dir: DirHome})
	if got := b.Cursor(); got != (Pos{Row: 2, GraphemeCol: 0}) {
		t.Fatalf("home: cursor=%v, want (2,0)", got)
	}
}

func TestBuffer_MoveWord(t *testing.T) {
	b := New("alpha  beta\ngamma", Options{})

	b.Move(Move{Unit: MoveWord, Dir: DirRight})
	if got := b.Cursor(); got != (Pos{Row: 0, GraphemeCol: 5}) {
		t.Fatalf("cursor=%v, want (0,5)", got)
	}
	b.Move(Move{Unit: MoveWord, Dir: DirRight})
	if got := b.Cursor(); got != (Pos{Row: 0, GraphemeCol: 11}) {
		t.Fatalf("cursor=%v, want (0,11)", got)
	}
	b.Move(Move{Unit: MoveWord, Dir: DirRight})
	if got := b.Cursor(); got != (Pos{Row: 1, GraphemeCol: 0}) {
		t.Fatalf("cursor=%v, want (1,0)", got)
	}
	b.Move(Move{Unit: MoveWord, Dir: DirLeft})
	if got := b.Cursor(); got != (Pos{Row: 0, GraphemeCol: 11}) {
		t.Fatalf("cursor=%v, want (0,11)", got)
	}
	b.Move(Move{Unit: MoveWord, Dir: DirLeft})
	if got := b.Cursor(); got != (Pos{Row: 0, GraphemeCol: 7}) {
		t.Fatalf("cursor=%v, want (0,7)", got)
	}
}

func TestBuffer_MoveDoc_StartEnd(t *testing.T) {
	b := New("a\nbc", Options{})

	b.Move(Move{Unit: MoveDoc, Dir: DirEnd})
	if got := b.Cursor(); got != (Pos{Row: 1, GraphemeCol: 2}) {
		t.Fatalf("cursor=%v, want (1,2)", got)
	}
	b.Move(Move{Unit: MoveDoc, Dir: DirHome})
	if got := b.Cursor(); got != (Pos{Row: 0, GraphemeCol: 0}) {
		t.Fatalf("cursor=%v, want (0,0)", got)
	}
}

func TestBuffer_MoveExtend_SelectsAndCollapses(t *testing.T) {
	b := New("abc", Options{})

	b.Move(Move{Unit: MoveGrapheme, Dir: DirRight, Extend: true})
	b.Move(Move{Unit: MoveGrapheme, Dir: DirRight, Extend: true})
	r, ok := b.Selection()
	if !ok || r != (Range{Start: Pos{}, End: Pos{Row: 0, GraphemeCol: 2}}) {
		t.Fatalf("selection=(%v,%v), want [0,2)", r, ok)
	}

	b.Move(Move{Unit: MoveGrapheme, Dir: DirLeft, Extend: true})
	b.Move(Move{Unit: MoveGrapheme, Dir: DirLeft, Extend: true})
	if _, ok := b.Selection(); ok {
		t.Fatalf("expected selection collapsed back to anchor")
	}

	b.Move(Move{Unit: MoveGrapheme, Dir: DirRight, Extend: true})
	b.Move(Move{Unit: MoveGrapheme, Dir: DirRight})
	if _, ok := b.Selection(); ok {
		t.Fatalf("expected plain move to clear selection")
	}
}

func TestBuffer_MoveLineHome_SkipsMarkup(t *testing.T) {
	tests := []struct {
		name  string
		line  string
		first int
	}{
		{"checklist", "- [ ] milk", 6},
		{"checked nested", "  - [x] eggs", 8},
		{"bullet", "- item", 2},
		{"heading", "## Title", 3},
		{"plain", "plain", 0},
		{"hash without space", "#tag", 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b := New(tt.line, Options{})
			b.Move(Move{Unit: MoveLine, Dir: DirEnd})

			b.Move(Move{Unit: MoveLine, Dir: DirHome})
			if got := b.Cursor().GraphemeCol; got != tt.first {
				t.Fatalf("first home: col=%d, want %d", got, tt.first)
			}
			b.Move(Move{Unit: MoveLine, Dir: DirHome})
			want := tt.first
			if tt.first != 0 {
				want = 0
			}
			if got := b.Cursor().GraphemeCol; got != want {
				t.Fatalf("second home: col=%d, want %d", got, want)
			}
		})
	}
}

func TestBuffer_MoveExtendHome_SelectsContent(t *testing.T) {
	b := New("- [ ] milk", Options{})
	b.Move(Move{Unit: MoveLine, Dir: DirEnd})
	b.Move(Move{Unit: MoveLine, Dir: DirHome, Extend: true})
	if got, _ := b.SelectedText(); got != "milk" {
		t.Fatalf("selected=%q, want %q", got, "milk")
	}
}
