package editor

import "github.com/charmbracelet/lipgloss"

// Style controls the editor's rendering. The zero Style renders plain text.
type Style struct {
	Gutter        lipgloss.Style
	LineNum       lipgloss.Style
	LineNumActive lipgloss.Style

	Text      lipgloss.Style
	Selection lipgloss.Style
	Cursor    lipgloss.Style

	// Markup styles, used by NewMarkupHighlighter.
	Marker     lipgloss.Style
	Heading    lipgloss.Style
	ListMarker lipgloss.Style
	Checked    lipgloss.Style
	Bold       lipgloss.Style
	Italic     lipgloss.Style
	Code       lipgloss.Style

	Toolbar       lipgloss.Style
	ToolbarActive lipgloss.Style
}

func DefaultStyle() Style {
	gutter := lipgloss.NewStyle().Foreground(lipgloss.Color("240"))
	return Style{
		Gutter:        gutter,
		LineNum:       gutter,
		LineNumActive: lipgloss.NewStyle().Foreground(lipgloss.Color("250")).Bold(true),
		Text:          lipgloss.NewStyle(),
		Selection:     lipgloss.NewStyle().Background(lipgloss.Color("237")),
		Cursor:        lipgloss.NewStyle().Reverse(true),

		Marker:     lipgloss.NewStyle().Foreground(lipgloss.Color("241")),
		Heading:    lipgloss.NewStyle().Foreground(lipgloss.Color("212")).Bold(true),
		ListMarker: lipgloss.NewStyle().Foreground(lipgloss.Color("39")),
		Checked:    lipgloss.NewStyle().Foreground(lipgloss.Color("245")).Strikethrough(true),
		Bold:       lipgloss.NewStyle().Bold(true),
		Italic:     lipgloss.NewStyle().Italic(true),
		Code:       lipgloss.NewStyle().Foreground(lipgloss.Color("214")),

		Toolbar:       lipgloss.NewStyle().Foreground(lipgloss.Color("240")),
		ToolbarActive: lipgloss.NewStyle().Foreground(lipgloss.Color("230")).Background(lipgloss.Color("62")),
	}
}
