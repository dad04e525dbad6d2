package editor

import (
	"sort"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/athread/lichen/internal/grapheme"
	"github.com/athread/lichen/markup"
)

type HighlightSpan struct {
	// StartGraphemeCol and EndGraphemeCol are grapheme indices in the line,
	// half-open [StartGraphemeCol, EndGraphemeCol).
	StartGraphemeCol int
	EndGraphemeCol   int
	Style            lipgloss.Style
}

type LineContext struct {
	Row  int
	Text string

	// CursorGraphemeCol is the cursor column if the cursor is on this row;
	// otherwise -1.
	CursorGraphemeCol int
	HasCursor         bool
}

type Highlighter interface {
	HighlightLine(ctx LineContext) ([]HighlightSpan, error)
}

// HighlighterFunc adapts a function to Highlighter.
type HighlighterFunc func(ctx LineContext) ([]HighlightSpan, error)

func (f HighlighterFunc) HighlightLine(ctx LineContext) ([]HighlightSpan, error) { return f(ctx) }

// MarkupHighlighter styles note markup: heading, list and divider prefixes
// and inline bold, italic, and code spans. Markers keep their text and get
// the Marker style.
type MarkupHighlighter struct {
	st Style
}

func NewMarkupHighlighter(st Style) *MarkupHighlighter {
	return &MarkupHighlighter{st: st}
}

func (h *MarkupHighlighter) HighlightLine(ctx LineContext) ([]HighlightSpan, error) {
	line := ctx.Text
	if line == "" {
		return nil, nil
	}
	cols := newColIndex(line)

	if strings.TrimSpace(line) == markup.DividerMarker {
		return []HighlightSpan{cols.span(0, len(line), h.st.Marker)}, nil
	}

	var spans []HighlightSpan
	base := h.st.Text
	hasBase := false
	contentAt := 0

	if style := markup.Detect(line, 0).TextStyle; style != markup.StyleNormal {
		contentAt = len(style.Prefix())
		spans = append(spans, cols.span(0, contentAt, h.st.Marker))
		base, hasBase = h.st.Heading, true
	} else {
		indent := len(line) - len(strings.TrimLeft(line, " \t"))
		rest := line[indent:]
		switch {
		case strings.HasPrefix(rest, markup.CheckedMarker):
			contentAt = indent + len(markup.CheckedMarker)
			base, hasBase = h.st.Checked, true
		case strings.HasPrefix(rest, markup.ChecklistMarker):
			contentAt = indent + len(markup.ChecklistMarker)
		case strings.HasPrefix(rest, markup.BulletMarker):
			contentAt = indent + len(markup.BulletMarker)
		}
		if contentAt > 0 {
			spans = append(spans, cols.span(indent, contentAt, h.st.ListMarker))
		}
	}

	for _, sp := range markup.ParseInline(line[contentAt:]) {
		start, end := contentAt+sp.Start, contentAt+sp.End
		if sp.Kind == markup.SpanPlain {
			if hasBase {
				spans = append(spans, cols.span(start, end, base))
			}
			continue
		}
		n := (end - start - len(sp.Text)) / 2
		spans = append(spans,
			cols.span(start, start+n, h.st.Marker),
			cols.span(start+n, end-n, h.inlineStyle(sp.Kind).Inherit(base)),
			cols.span(end-n, end, h.st.Marker),
		)
	}
	return spans, nil
}

func (h *MarkupHighlighter) inlineStyle(k markup.SpanKind) lipgloss.Style {
	switch k {
	case markup.SpanBold:
		return h.st.Bold
	case markup.SpanItalic:
		return h.st.Italic
	case markup.SpanCode:
		return h.st.Code
	default:
		return h.st.Text
	}
}

// colIndex maps byte offsets of a line to grapheme columns.
type colIndex struct {
	starts []int
}

func newColIndex(line string) colIndex {
	clusters := grapheme.Split(line)
	starts := make([]int, 0, len(clusters)+1)
	off := 0
	for _, c := range clusters {
		starts = append(starts, off)
		off += len(c)
	}
	starts = append(starts, off)
	return colIndex{starts: starts}
}

// col returns the column of the first cluster starting at or after off.
func (ci colIndex) col(off int) int {
	return sort.SearchInts(ci.starts, off)
}

func (ci colIndex) span(start, end int, st lipgloss.Style) HighlightSpan {
	return HighlightSpan{StartGraphemeCol: ci.col(start), EndGraphemeCol: ci.col(end), Style: st}
}

func normalizeHighlightSpans(spans []HighlightSpan, lineLen int) []HighlightSpan {
	if len(spans) == 0 {
		return nil
	}
	lineLen = maxInt(lineLen, 0)

	out := make([]HighlightSpan, 0, len(spans))
	for _, sp := range spans {
		start := clampInt(sp.StartGraphemeCol, 0, lineLen)
		end := clampInt(sp.EndGraphemeCol, 0, lineLen)
		if end < start {
			start, end = end, start
		}
		if start == end {
			continue
		}
		out = append(out, HighlightSpan{StartGraphemeCol: start, EndGraphemeCol: end, Style: sp.Style})
	}

	sort.SliceStable(out, func(i, j int) bool {
		if out[i].StartGraphemeCol != out[j].StartGraphemeCol {
			return out[i].StartGraphemeCol < out[j].StartGraphemeCol
		}
		return out[i].EndGraphemeCol < out[j].EndGraphemeCol
	})

	// Overlaps are resolved by dropping the later span.
	merged := make([]HighlightSpan, 0, len(out))
	for _, sp := range out {
		if len(merged) > 0 && sp.StartGraphemeCol < merged[len(merged)-1].EndGraphemeCol {
			continue
		}
		merged = append(merged, sp)
	}
	return merged
}

func clampInt(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

func maxInt(a, b int) int {
	if a > b {
		return a
	}
	return b
}
