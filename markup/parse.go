package markup

import (
	"strings"
	"unicode"
)

// Markers of the dialect.
const (
	BoldMarker      = "**"
	ItalicMarker    = "*"
	CodeMarker      = "`"
	BulletMarker    = "- "
	ChecklistMarker = "- [ ] "
	CheckedMarker   = "- [x] "
	DividerMarker   = "---"
)

const (
	headingRune     = '#'
	checklistLead   = "- ["
	checkedLead     = "- [x]"
	uncheckedLead   = "- [ ]"
	maxHeadingLevel = 3
	tabWidth        = 4
)

// Parse splits text into blocks. It never fails: any input yields a block
// sequence in increasing line order.
func Parse(text string) []Block {
	lines := strings.Split(text, "\n")
	var blocks []Block

	i := 0
	for i < len(lines) {
		line := lines[i]
		trimmed := trimLeft(line)

		switch {
		case isDivider(line):
			blocks = append(blocks, DividerBlock{LineSpan: LineSpan{StartLine: i, EndLine: i}})
			i++

		case strings.HasPrefix(trimmed, "#"):
			level, rest := splitHeading(trimmed)
			blocks = append(blocks, HeadingBlock{
				Level:    minInt(level, maxHeadingLevel),
				Text:     rest,
				LineSpan: LineSpan{StartLine: i, EndLine: i},
			})
			i++

		case strings.HasPrefix(trimmed, checklistLead):
			var b ChecklistBlock
			b, i = parseChecklist(lines, i)
			blocks = append(blocks, b)

		case strings.HasPrefix(trimmed, BulletMarker):
			var b BulletListBlock
			b, i = parseBulletList(lines, i)
			blocks = append(blocks, b)

		default:
			start := i
			for i < len(lines) && !isBlank(lines[i]) && !isSpecial(lines[i]) {
				i++
			}
			body := strings.TrimRightFunc(strings.Join(lines[start:i], "\n"), unicode.IsSpace)
			if isBlank(body) {
				// The line that stopped the scan was blank.
				i++
				continue
			}
			blocks = append(blocks, TextBlock{
				Text:     body,
				LineSpan: LineSpan{StartLine: start, EndLine: i - 1},
			})
		}
	}

	return blocks
}

func parseChecklist(lines []string, i int) (ChecklistBlock, int) {
	b := ChecklistBlock{LineSpan: LineSpan{StartLine: i}}
	for i < len(lines) {
		raw := lines[i]
		trimmed := trimLeft(raw)
		if !strings.HasPrefix(trimmed, checklistLead) {
			break
		}

		content := trimmed
		if rest, ok := strings.CutPrefix(content, CheckedMarker); ok {
			content = rest
		} else if rest, ok := strings.CutPrefix(content, ChecklistMarker); ok {
			content = rest
		}

		b.Items = append(b.Items, ChecklistItem{
			Text:      strings.Repeat(" ", indentWidth(raw)) + content,
			Checked:   strings.HasPrefix(trimmed, checkedLead),
			LineIndex: i,
		})
		i++
	}
	b.EndLine = i - 1
	return b, i
}

// parseBulletList consumes bullet lines until a non-bullet line or a line
// indented less than the first one.
func parseBulletList(lines []string, i int) (BulletListBlock, int) {
	b := BulletListBlock{LineSpan: LineSpan{StartLine: i}}
	base := indentWidth(lines[i])
	for i < len(lines) {
		raw := lines[i]
		trimmed := trimLeft(raw)
		if !strings.HasPrefix(trimmed, BulletMarker) {
			break
		}
		indent := indentWidth(raw)
		if indent < base {
			break
		}
		b.Items = append(b.Items, strings.Repeat(" ", indent)+strings.TrimPrefix(trimmed, BulletMarker))
		i++
	}
	b.EndLine = i - 1
	return b, i
}

// splitHeading counts the leading '#' runes of an already left-trimmed line
// and returns the remaining text without leading whitespace.
func splitHeading(trimmed string) (level int, text string) {
	for level < len(trimmed) && trimmed[level] == headingRune {
		level++
	}
	return level, trimLeft(trimmed[level:])
}

// isSpecial reports whether line opens a divider, heading, checklist, or
// bullet block.
func isSpecial(line string) bool {
	if isDivider(line) {
		return true
	}
	trimmed := trimLeft(line)
	return strings.HasPrefix(trimmed, "#") ||
		strings.HasPrefix(trimmed, checklistLead) ||
		strings.HasPrefix(trimmed, BulletMarker)
}

func isDivider(line string) bool {
	return strings.TrimSpace(line) == DividerMarker
}

func isBlank(s string) bool {
	return strings.TrimSpace(s) == ""
}

func trimLeft(s string) string {
	return strings.TrimLeftFunc(s, unicode.IsSpace)
}

// indentWidth returns the width of the leading space/tab run of line, with
// each tab counted as tabWidth spaces.
func indentWidth(line string) int {
	w := 0
	for i := 0; i < len(line); i++ {
		switch line[i] {
		case ' ':
			w++
		case '\t':
			w += tabWidth
		default:
			return w
		}
	}
	return w
}
