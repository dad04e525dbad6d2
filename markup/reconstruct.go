package markup

import "strings"

// Format rebuilds canonical text from blocks. Each block is written at its
// StartLine, with blank lines filling the gaps, so line numbers of a re-parse
// match the original parse.
func Format(blocks []Block) string {
	var lines []string
	pad := func(line int) {
		for len(lines) < line {
			lines = append(lines, "")
		}
	}

	for _, b := range blocks {
		pad(b.Lines().StartLine)
		switch b := b.(type) {
		case TextBlock:
			lines = append(lines, strings.Split(b.Text, "\n")...)
		case HeadingBlock:
			lines = append(lines, HeadingPrefix(b.Level)+b.Text)
		case BulletListBlock:
			for _, item := range b.Items {
				indent, content := splitIndent(item)
				lines = append(lines, indent+BulletMarker+content)
			}
		case ChecklistBlock:
			for _, item := range b.Items {
				indent, content := splitIndent(item.Text)
				marker := ChecklistMarker
				if item.Checked {
					marker = CheckedMarker
				}
				lines = append(lines, indent+marker+content)
			}
		case DividerBlock:
			lines = append(lines, DividerMarker)
		}
	}

	return strings.Join(lines, "\n")
}

// HeadingPrefix returns the line prefix for a heading level, or "" for
// levels below 1. Levels above 3 are capped.
func HeadingPrefix(level int) string {
	if level < 1 {
		return ""
	}
	return strings.Repeat("#", minInt(level, maxHeadingLevel)) + " "
}

func splitIndent(item string) (indent, content string) {
	n := 0
	for n < len(item) && item[n] == ' ' {
		n++
	}
	return item[:n], item[n:]
}
