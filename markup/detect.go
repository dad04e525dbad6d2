package markup

import "strings"

// BlockTextStyle is the block-level style of a line.
type BlockTextStyle uint8

const (
	StyleNormal BlockTextStyle = iota
	StyleH1
	StyleH2
	StyleH3
)

func (s BlockTextStyle) String() string {
	switch s {
	case StyleNormal:
		return "normal"
	case StyleH1:
		return "h1"
	case StyleH2:
		return "h2"
	case StyleH3:
		return "h3"
	default:
		return "unknown"
	}
}

// Prefix returns the line prefix for the style; "" for StyleNormal.
func (s BlockTextStyle) Prefix() string {
	switch s {
	case StyleH1, StyleH2, StyleH3:
		return HeadingPrefix(int(s))
	default:
		return ""
	}
}

// Formatting is the set of styles active at a cursor.
type Formatting struct {
	Bold      bool
	Italic    bool
	Code      bool
	TextStyle BlockTextStyle
	Bullet    bool
	Checklist bool
}

// Detect reports the formatting active at cursor.
func Detect(text string, cursor int) Formatting {
	cursor = ClampOffset(text, cursor)
	start, end := lineBounds(text, cursor)
	line := text[start:end]

	f := Formatting{
		TextStyle: lineStyle(line),
		Checklist: hasChecklistPrefix(line),
	}
	f.Bullet = !f.Checklist && hasPrefix(line, BulletMarker)

	_, _, f.Bold = enclosingPair(text, cursor, BoldMarker)
	_, _, f.Code = enclosingPair(text, cursor, CodeMarker)
	_, _, f.Italic = enclosingPair(text, cursor, ItalicMarker)
	return f
}

// lineStyle matches the longest heading prefix first.
func lineStyle(line string) BlockTextStyle {
	switch {
	case hasPrefix(line, "### "):
		return StyleH3
	case hasPrefix(line, "## "):
		return StyleH2
	case hasPrefix(line, "# "):
		return StyleH1
	default:
		return StyleNormal
	}
}

// enclosingPair finds the marker pair around cursor. open is the offset of
// the opening marker and closeAt the offset of the closing one.
//
// The opening marker is the nearest occurrence ending at or before the
// cursor; the closing marker is the next occurrence after it. The cursor is
// inside when it lies within [open+len(marker), closeAt+len(marker)].
func enclosingPair(text string, cursor int, marker string) (open, closeAt int, ok bool) {
	if marker == ItalicMarker {
		return enclosingStar(text, cursor)
	}

	open = strings.LastIndex(text[:cursor], marker)
	if open < 0 {
		return 0, 0, false
	}
	rel := strings.Index(text[open+len(marker):], marker)
	if rel < 0 {
		return 0, 0, false
	}
	closeAt = open + len(marker) + rel
	if cursor < open+len(marker) || cursor > closeAt+len(marker) {
		return 0, 0, false
	}
	return open, closeAt, true
}

// enclosingStar is enclosingPair for the single '*' italic marker. It only
// looks at the nearest '*' on each side of the cursor: when either belongs to
// a "**" run the cursor is not in italic text.
func enclosingStar(text string, cursor int) (open, closeAt int, ok bool) {
	open = strings.LastIndexByte(text[:cursor], '*')
	if open < 0 || (open > 0 && text[open-1] == '*') {
		return 0, 0, false
	}
	rel := strings.IndexByte(text[cursor:], '*')
	if rel < 0 {
		return 0, 0, false
	}
	closeAt = cursor + rel
	if closeAt+1 < len(text) && text[closeAt+1] == '*' {
		return 0, 0, false
	}
	return open, closeAt, true
}
