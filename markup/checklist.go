package markup

import "strings"

// ToggleChecklistItem flips the checked state of the checklist item on line
// lineIndex. It reports false, returning text unchanged, when the line does
// not exist or is not a checklist item.
//
// lineIndex comes from a ChecklistItem of a parse of this exact text.
func ToggleChecklistItem(text string, lineIndex int) (string, bool) {
	lines := strings.Split(text, "\n")
	if lineIndex < 0 || lineIndex >= len(lines) {
		return text, false
	}

	line := lines[lineIndex]
	indent := len(line) - len(trimLeft(line))
	rest := line[indent:]

	switch {
	case strings.HasPrefix(rest, checkedLead):
		rest = uncheckedLead + rest[len(checkedLead):]
	case strings.HasPrefix(rest, uncheckedLead):
		rest = checkedLead + rest[len(uncheckedLead):]
	default:
		return text, false
	}

	lines[lineIndex] = line[:indent] + rest
	return strings.Join(lines, "\n"), true
}

// IndentLevel returns the nesting depth of a bullet or checklist item as
// parsed: every two leading spaces are one level.
func IndentLevel(item string) int {
	n := 0
	for n < len(item) && item[n] == ' ' {
		n++
	}
	return n / 2
}

// StripBulletPrefix returns the content of a raw item line without its
// indentation and "- " marker.
func StripBulletPrefix(item string) string {
	s := trimLeft(item)
	s = strings.TrimPrefix(s, BulletMarker)
	return trimLeft(s)
}
