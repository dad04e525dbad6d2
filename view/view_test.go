package view

import (
	"io"
	"strings"
	"testing"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"

	"github.com/athread/lichen/markup"
)

func asciiStyle() Style {
	r := lipgloss.NewRenderer(io.Discard)
	r.SetColorProfile(termenv.Ascii)
	return Style{
		Text:     r.NewStyle(),
		Headings: [3]lipgloss.Style{r.NewStyle(), r.NewStyle(), r.NewStyle()},
		Bullet:   r.NewStyle(),
		Checkbox: r.NewStyle(),
		Checked:  r.NewStyle(),
		Divider:  r.NewStyle(),
		Bold:     r.NewStyle(),
		Italic:   r.NewStyle(),
		Code:     r.NewStyle(),
	}
}

func TestRender_Blocks(t *testing.T) {
	r := New(Options{Style: asciiStyle(), Width: 5})

	in := "# Title\nsome **bold** text\n- [x] done\n- [ ] todo\n- one\n  - two\n---"
	got := strings.Split(r.Render(in), "\n")
	for i := range got {
		got[i] = strings.TrimRight(got[i], " ")
	}

	want := []string{
		"Title",
		"",
		"some",
		"bold",
		"text",
		"",
		"[x] done",
		"[ ] todo",
		"",
		"• one",
		"  • two",
		"",
		"─────",
	}
	if strings.Join(got, "\n") != strings.Join(want, "\n") {
		t.Fatalf("render:\n got: %q\nwant: %q", got, want)
	}
}

func TestRender_NoWidthKeepsLines(t *testing.T) {
	r := New(Options{Style: asciiStyle()})

	got := r.Render("a *b* `c`\nd")
	if want := "a b c\nd"; got != want {
		t.Fatalf("render: got %q, want %q", got, want)
	}
	if got := r.Render("---"); got != strings.Repeat("─", defaultRuleW) {
		t.Fatalf("divider: got %q", got)
	}
}

func TestRender_Empty(t *testing.T) {
	r := New(Options{Style: asciiStyle()})
	if got := r.Render(""); got != "" {
		t.Fatalf("render: got %q, want empty", got)
	}
}

func TestRender_InlineStylesInheritBase(t *testing.T) {
	lr := lipgloss.NewRenderer(io.Discard)
	lr.SetColorProfile(termenv.TrueColor)
	st := asciiStyle()
	st.Checked = lr.NewStyle().Strikethrough(true)
	st.Bold = lr.NewStyle().Bold(true)

	r := New(Options{Style: st})
	got := r.Render("- [x] **a**")
	want := st.Checkbox.Render("[x]") + " " + st.Bold.Inherit(st.Checked).Render("a")
	if got != want {
		t.Fatalf("render: got %q, want %q", got, want)
	}
}

func TestRenderer_UsesSharedCache(t *testing.T) {
	c := markup.NewCache(4)
	r := New(Options{Style: asciiStyle(), Cache: c})

	_ = r.Render("x")
	_ = r.Render("x")
	if _, ok := r.Blocks("x")[0].(markup.TextBlock); !ok {
		t.Fatalf("expected a text block")
	}
	hits, misses := c.Stats()
	if hits != 2 || misses != 1 {
		t.Fatalf("stats: hits=%d misses=%d, want 2/1", hits, misses)
	}
}
