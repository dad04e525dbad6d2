package editor

import "github.com/athread/lichen/markup"

// FormatAction is a formatting command.
type FormatAction uint8

const (
	FormatBold FormatAction = iota
	FormatItalic
	FormatCode
	FormatBullet
	FormatChecklist
	FormatNormal
	FormatH1
	FormatH2
	FormatH3
)

func (a FormatAction) String() string {
	switch a {
	case FormatBold:
		return "bold"
	case FormatItalic:
		return "italic"
	case FormatCode:
		return "code"
	case FormatBullet:
		return "bullet"
	case FormatChecklist:
		return "checklist"
	case FormatNormal:
		return "normal"
	case FormatH1:
		return "h1"
	case FormatH2:
		return "h2"
	case FormatH3:
		return "h3"
	default:
		return "unknown"
	}
}

// Formatting returns the formatting active at the selection start.
func (m Model) Formatting() markup.Formatting {
	if m.buf == nil {
		return markup.Formatting{}
	}
	return formattingAt(m.buf)
}

// Format applies a formatting command to the buffer. Wrap styles and list
// prefixes toggle off when already active at the selection start; choosing
// the current heading level returns the line to normal text.
func (m Model) Format(a FormatAction) Model {
	if m.buf == nil || m.cfg.ReadOnly {
		return m
	}
	prev := m.buf.Version()
	m.applyFormat(a)
	m.afterChange(prev)
	return m
}

func (m *Model) applyFormat(a FormatAction) {
	s := m.buf.State()
	f := markup.Detect(s.Text, s.Selection.Start())

	var next markup.State
	switch a {
	case FormatBold:
		next = markup.ToggleWrap(s, markup.BoldMarker, f.Bold)
	case FormatItalic:
		next = markup.ToggleWrap(s, markup.ItalicMarker, f.Italic)
	case FormatCode:
		next = markup.ToggleWrap(s, markup.CodeMarker, f.Code)
	case FormatBullet:
		next = markup.ToggleWrap(s, markup.BulletMarker, f.Bullet)
	case FormatChecklist:
		next = markup.ToggleWrap(s, markup.ChecklistMarker, f.Checklist)
	case FormatNormal, FormatH1, FormatH2, FormatH3:
		style := markup.BlockTextStyle(a - FormatNormal)
		if style == f.TextStyle {
			style = markup.StyleNormal
		}
		next = markup.ApplyBlockStyle(s.Text, s.Selection.Start(), style)
	default:
		return
	}
	m.buf.SetState(next)
}

// toggleCheckAtCursor flips the checklist item on the cursor line.
func (m *Model) toggleCheckAtCursor() {
	s := m.buf.State()
	text, ok := markup.ToggleChecklistItem(s.Text, m.buf.Cursor().Row)
	if !ok {
		return
	}
	m.buf.SetState(markup.State{Text: text, Selection: s.Selection})
}
