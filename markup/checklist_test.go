package markup

import "testing"

func TestToggleChecklistItem(t *testing.T) {
	text := "todo\n- [ ] a\n  - [x] b\n- plain"

	got, ok := ToggleChecklistItem(text, 1)
	if !ok {
		t.Fatalf("toggle line 1: ok=false")
	}
	if want := "todo\n- [x] a\n  - [x] b\n- plain"; got != want {
		t.Fatalf("text=%q, want %q", got, want)
	}

	got, ok = ToggleChecklistItem(got, 2)
	if !ok {
		t.Fatalf("toggle line 2: ok=false")
	}
	if want := "todo\n- [x] a\n  - [ ] b\n- plain"; got != want {
		t.Fatalf("text=%q, want %q", got, want)
	}
}

func TestToggleChecklistItem_RejectsOtherLines(t *testing.T) {
	text := "todo\n- [ ] a\n- plain"
	for _, line := range []int{-1, 0, 2, 3, 99} {
		got, ok := ToggleChecklistItem(text, line)
		if ok || got != text {
			t.Fatalf("line %d: got (%q,%v), want unchanged and false", line, got, ok)
		}
	}
}

func TestToggleChecklistItem_FromParsedLineIndex(t *testing.T) {
	text := "# List\n\n- [ ] one\n- [ ] two"
	list := Parse(text)[1].(ChecklistBlock)

	next, ok := ToggleChecklistItem(text, list.Items[1].LineIndex)
	if !ok {
		t.Fatalf("ok=false")
	}

	reparsed := Parse(next)[1].(ChecklistBlock)
	if reparsed.Items[0].Checked || !reparsed.Items[1].Checked {
		t.Fatalf("items=%+v, want only the second checked", reparsed.Items)
	}
}

func TestIndentLevel(t *testing.T) {
	cases := map[string]int{
		"a":       0,
		" a":      0,
		"  a":     1,
		"    a":   2,
		"     a":  2,
		"      a": 3,
	}
	for item, want := range cases {
		if got := IndentLevel(item); got != want {
			t.Fatalf("IndentLevel(%q)=%d, want %d", item, got, want)
		}
	}
}

func TestStripBulletPrefix(t *testing.T) {
	cases := map[string]string{
		"  - nested": "nested",
		"- top":      "top",
		"plain":      "plain",
		"    b":      "b",
	}
	for item, want := range cases {
		if got := StripBulletPrefix(item); got != want {
			t.Fatalf("StripBulletPrefix(%q)=%q, want %q", item, got, want)
		}
	}
}
