// Package view renders parsed note blocks for reading.
package view

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/athread/lichen/markup"
)

// Style controls block rendering.
type Style struct {
	Text     lipgloss.Style
	Headings [3]lipgloss.Style

	Bullet   lipgloss.Style
	Checkbox lipgloss.Style
	Checked  lipgloss.Style
	Divider  lipgloss.Style
	Bold     lipgloss.Style
	Italic   lipgloss.Style
	Code     lipgloss.Style
}

func DefaultStyle() Style {
	return Style{
		Text: lipgloss.NewStyle(),
		Headings: [3]lipgloss.Style{
			lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("212")),
			lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("177")),
			lipgloss.NewStyle().Bold(true),
		},
		Bullet:   lipgloss.NewStyle().Foreground(lipgloss.Color("39")),
		Checkbox: lipgloss.NewStyle().Foreground(lipgloss.Color("39")),
		Checked:  lipgloss.NewStyle().Foreground(lipgloss.Color("245")).Strikethrough(true),
		Divider:  lipgloss.NewStyle().Foreground(lipgloss.Color("240")),
		Bold:     lipgloss.NewStyle().Bold(true),
		Italic:   lipgloss.NewStyle().Italic(true),
		Code:     lipgloss.NewStyle().Foreground(lipgloss.Color("214")),
	}
}

const (
	bulletGlyph   = "•"
	checkedBox    = "[x]"
	uncheckedBox  = "[ ]"
	indentUnit    = "  "
	dividerGlyph  = "─"
	defaultRuleW  = 40
	blockBoundary = "\n\n"
)

type Options struct {
	// Width wraps paragraphs and sizes the divider rule. Zero disables
	// wrapping.
	Width int
	Style Style
	// Cache memoizes parses; nil uses a private cache.
	Cache *markup.Cache
}

// Renderer turns note text into styled terminal output.
type Renderer struct {
	opt   Options
	cache *markup.Cache
}

func New(opt Options) *Renderer {
	c := opt.Cache
	if c == nil {
		c = markup.NewCache(markup.DefaultCacheEntries)
	}
	return &Renderer{opt: opt, cache: c}
}

// Render parses text and renders its blocks.
func (r *Renderer) Render(text string) string {
	return r.RenderBlocks(r.cache.Parse(text))
}

// Blocks returns the parse of text, served from the cache.
func (r *Renderer) Blocks(text string) []markup.Block {
	return r.cache.Parse(text)
}

// RenderBlocks renders blocks separated by blank lines.
func (r *Renderer) RenderBlocks(blocks []markup.Block) string {
	out := make([]string, 0, len(blocks))
	for _, b := range blocks {
		out = append(out, r.renderBlock(b))
	}
	return strings.Join(out, blockBoundary)
}

func (r *Renderer) renderBlock(b markup.Block) string {
	st := r.opt.Style
	switch b := b.(type) {
	case markup.TextBlock:
		return r.wrap(r.inline(b.Text, st.Text))
	case markup.HeadingBlock:
		hs := st.Headings[clampLevel(b.Level)-1]
		return r.wrap(r.inline(b.Text, hs))
	case markup.BulletListBlock:
		lines := make([]string, 0, len(b.Items))
		for _, item := range b.Items {
			lines = append(lines, r.item(item, st.Bullet.Render(bulletGlyph), st.Text))
		}
		return strings.Join(lines, "\n")
	case markup.ChecklistBlock:
		lines := make([]string, 0, len(b.Items))
		for _, item := range b.Items {
			box, base := st.Checkbox.Render(uncheckedBox), st.Text
			if item.Checked {
				box, base = st.Checkbox.Render(checkedBox), st.Checked
			}
			lines = append(lines, r.item(item.Text, box, base))
		}
		return strings.Join(lines, "\n")
	case markup.DividerBlock:
		w := r.opt.Width
		if w <= 0 {
			w = defaultRuleW
		}
		return st.Divider.Render(strings.Repeat(dividerGlyph, w))
	default:
		return ""
	}
}

// item renders one list line: nesting indent, glyph, then content.
func (r *Renderer) item(raw, glyph string, base lipgloss.Style) string {
	level := markup.IndentLevel(raw)
	content := strings.TrimLeft(raw, " ")
	return strings.Repeat(indentUnit, level) + glyph + " " + r.inline(content, base)
}

// inline renders the inline spans of one block of text. Markers are
// dropped; styled spans inherit base.
func (r *Renderer) inline(text string, base lipgloss.Style) string {
	st := r.opt.Style
	var sb strings.Builder
	for _, sp := range markup.ParseInline(text) {
		s := base
		switch sp.Kind {
		case markup.SpanBold:
			s = st.Bold.Inherit(base)
		case markup.SpanItalic:
			s = st.Italic.Inherit(base)
		case markup.SpanCode:
			s = st.Code.Inherit(base)
		}
		sb.WriteString(renderLines(s, sp.Text))
	}
	return sb.String()
}

// renderLines styles each line separately so multi-line spans keep their
// line breaks unpadded.
func renderLines(s lipgloss.Style, text string) string {
	if !strings.Contains(text, "\n") {
		return s.Render(text)
	}
	parts := strings.Split(text, "\n")
	for i, p := range parts {
		parts[i] = s.Render(p)
	}
	return strings.Join(parts, "\n")
}

func (r *Renderer) wrap(s string) string {
	if r.opt.Width <= 0 {
		return s
	}
	return lipgloss.NewStyle().Width(r.opt.Width).Render(s)
}

func clampLevel(level int) int {
	if level < 1 {
		return 1
	}
	if level > len(Style{}.Headings) {
		return len(Style{}.Headings)
	}
	return level
}
