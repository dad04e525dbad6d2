package editor

import (
	"regexp"
	"testing"
)

var ansiRE = regexp.MustCompile(`\x1b\[[0-9;?]*[A-Za-z]`)

func stripANSI(s string) string { return ansiRE.ReplaceAllString(s, "") }

type memClipboard struct {
	t *testing.T
	s string
}

func (c *memClipboard) ReadText() (string, error) { return c.s, nil }
func (c *memClipboard) WriteText(s string) error  { c.s = s; return nil }

type stubHighlighter struct {
	fn func(ctx LineContext) ([]HighlightSpan, error)
}

func (h *stubHighlighter) HighlightLine(ctx LineContext) ([]HighlightSpan, error) {
	return h.fn(ctx)
}
