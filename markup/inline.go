package markup

import "strings"

// SpanKind identifies the inline style of a Span.
type SpanKind uint8

const (
	SpanPlain SpanKind = iota
	SpanBold
	SpanItalic
	SpanCode
)

func (k SpanKind) String() string {
	switch k {
	case SpanPlain:
		return "plain"
	case SpanBold:
		return "bold"
	case SpanItalic:
		return "italic"
	case SpanCode:
		return "code"
	default:
		return "unknown"
	}
}

// Span is a run of inline text.
//
// Start and End are byte offsets into the source, half-open, and include the
// markers. Text is the content with markers removed.
type Span struct {
	Kind  SpanKind
	Text  string
	Start int
	End   int
}

var inlineMarkers = []struct {
	marker string
	kind   SpanKind
}{
	{BoldMarker, SpanBold},
	{ItalicMarker, SpanItalic},
	{CodeMarker, SpanCode},
}

// ParseInline splits text into plain and styled spans. Markers are tried in
// the order bold, italic, code at each position; a marker without a closing
// partner, or enclosing nothing, is plain text.
func ParseInline(text string) []Span {
	var spans []Span
	plainStart := 0

	flush := func(end int) {
		if end > plainStart {
			spans = append(spans, Span{Kind: SpanPlain, Text: text[plainStart:end], Start: plainStart, End: end})
		}
	}

	i := 0
	for i < len(text) {
		matched := false
		for _, m := range inlineMarkers {
			if !strings.HasPrefix(text[i:], m.marker) {
				continue
			}
			open := i + len(m.marker)
			rel := strings.Index(text[open:], m.marker)
			if rel <= 0 {
				continue
			}
			closeAt := open + rel
			flush(i)
			end := closeAt + len(m.marker)
			spans = append(spans, Span{Kind: m.kind, Text: text[open:closeAt], Start: i, End: end})
			i = end
			plainStart = i
			matched = true
			break
		}
		if !matched {
			i++
		}
	}
	flush(len(text))

	return spans
}

// PlainText returns text with all recognized inline markers removed.
func PlainText(text string) string {
	var sb strings.Builder
	for _, sp := range ParseInline(text) {
		sb.WriteString(sp.Text)
	}
	return sb.String()
}
