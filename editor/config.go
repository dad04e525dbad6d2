package editor

// Config configures the editor Model.
type Config struct {
	// Initial text for the internal buffer.
	Text string

	// Rendering options.
	ShowLineNums bool
	ShowToolbar  bool
	Style        Style
	// TabWidth is the number of cells a tab stop spans. Zero means 4.
	TabWidth int

	// NoLiveTransforms disables list continuation and bullet collapse on
	// typing.
	NoLiveTransforms bool
	ReadOnly         bool

	KeyMap    KeyMap
	Clipboard Clipboard

	// Highlighter styles line content. Nil renders plain text; use
	// NewMarkupHighlighter for note markup.
	Highlighter Highlighter

	// OnChange is called after every Update that changed text, cursor, or
	// selection.
	OnChange func(ChangeEvent)
}

const defaultTabWidth = 4

func (c Config) tabWidth() int {
	if c.TabWidth <= 0 {
		return defaultTabWidth
	}
	return c.TabWidth
}
