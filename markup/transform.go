package markup

// Transform post-processes a single edit. before is the state prior to the
// edit and after is what the input surface produced; the result is either
// after (clamped) or a rewrite of it.
//
// Rewrites:
//   - Enter at the end of a bullet or checklist item continues the list.
//     Checklist continuations are always unchecked.
//   - Enter on an empty item inserts nothing, so the list is exited.
//   - Backspace through a "- " marker removes the whole marker.
func Transform(before, after State) State {
	before = before.Clamp()
	after = after.Clamp()

	if next, ok := continueList(before, after); ok {
		return next
	}
	if next, ok := collapseBullet(before, after); ok {
		return next
	}
	return after
}

func continueList(before, after State) (State, bool) {
	text := after.Text
	cursor := after.Selection.Start()
	if len(text) <= len(before.Text) || cursor == 0 || text[cursor-1] != '\n' {
		return State{}, false
	}

	prev := text[lineStart(text, cursor-1) : cursor-1]
	switch prev {
	case ChecklistMarker, CheckedMarker, BulletMarker:
		return State{}, false
	}

	var marker string
	switch {
	case hasChecklistPrefix(prev):
		marker = ChecklistMarker
	case len(prev) >= len(BulletMarker) && prev[:len(BulletMarker)] == BulletMarker:
		marker = BulletMarker
	default:
		return State{}, false
	}

	return State{
		Text:      text[:cursor] + marker + text[cursor:],
		Selection: Cursor(cursor + len(marker)),
	}, true
}

func collapseBullet(before, after State) (State, bool) {
	text := after.Text
	if len(text) >= len(before.Text) {
		return State{}, false
	}

	cursor := after.Selection.Start()
	start := lineStart(text, cursor)
	if head := text[start:cursor]; head != "" && head != "-" {
		return State{}, false
	}

	old := before.Text
	oldStart := lineStart(old, before.Selection.Start())
	if old[oldStart:minInt(oldStart+len(BulletMarker), len(old))] != BulletMarker {
		return State{}, false
	}

	rest := text[start:]
	if len(rest) > 0 && rest[0] == '-' {
		rest = rest[1:]
	}
	if len(rest) > 0 && rest[0] == ' ' {
		rest = rest[1:]
	}

	return State{
		Text:      text[:start] + rest,
		Selection: Cursor(start),
	}, true
}

func hasChecklistPrefix(line string) bool {
	return hasPrefix(line, ChecklistMarker) || hasPrefix(line, CheckedMarker)
}

func hasPrefix(s, prefix string) bool {
	return len(s) >= len(prefix) && s[:len(prefix)] == prefix
}
