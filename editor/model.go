package editor

import (
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/athread/lichen/buffer"
	"github.com/athread/lichen/markup"
)

// Model is a Bubble Tea component that renders and edits a note buffer.
type Model struct {
	cfg Config
	buf *buffer.Buffer

	focused bool

	viewport viewport.Model
	xOffset  int

	lastBufVersion uint64
	lastCursor     buffer.Pos
}

func New(cfg Config) Model {
	if cfg.KeyMap.isZero() {
		cfg.KeyMap = DefaultKeyMap()
	}
	opt := buffer.Options{}
	if !cfg.NoLiveTransforms {
		opt.Rewrite = markup.Transform
	}

	m := Model{
		cfg:      cfg,
		buf:      buffer.New(cfg.Text, opt),
		focused:  true,
		viewport: viewport.New(0, 0),
	}
	m.lastBufVersion = m.buf.Version()
	m.lastCursor = m.buf.Cursor()
	m.rebuildContent()
	return m
}

func (m Model) Buffer() *buffer.Buffer { return m.buf }

// Text returns the current buffer text.
func (m Model) Text() string { return m.buf.Text() }

func (m Model) Init() tea.Cmd { return nil }

// SetSize sets the outer size. The toolbar, when shown, takes one row.
func (m Model) SetSize(width, height int) Model {
	if width < 0 {
		width = 0
	}
	if height < 0 {
		height = 0
	}
	m.viewport.Width = width
	m.viewport.Height = height
	if m.cfg.ShowToolbar && height > 0 {
		m.viewport.Height = height - 1
	}

	m.rebuildContent()
	m.followCursor()
	return m
}

func (m Model) Focus() Model {
	if !m.focused {
		m.focused = true
		m.rebuildContent()
		m.followCursor()
	}
	return m
}

func (m Model) Blur() Model {
	if m.focused {
		m.focused = false
		m.rebuildContent()
	}
	return m
}

func (m Model) Focused() bool { return m.focused }

// ReadOnly reports whether edits are ignored.
func (m Model) ReadOnly() bool { return m.cfg.ReadOnly }

func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	prev := m.buf.Version()
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		return m.SetSize(msg.Width, msg.Height), nil
	case tea.KeyMsg:
		m.updateKey(msg)
	case tea.MouseMsg:
		var cmd tea.Cmd
		m.viewport, cmd = m.viewport.Update(msg)
		// Don't follow the cursor here; the wheel scrolls freely.
		m.syncFromBuffer()
		return m, cmd
	}
	m.afterChange(prev)
	return m, nil
}

func (m Model) View() string {
	if !m.cfg.ShowToolbar {
		return m.viewport.View()
	}
	return m.renderToolbar() + "\n" + m.viewport.View()
}

// afterChange refreshes the view and notifies OnChange when the buffer moved
// past version prev. Hosts that mutate the buffer directly are picked up on
// the next Update.
func (m *Model) afterChange(prev uint64) {
	cursorChanged := m.syncFromBuffer()
	if cursorChanged || m.buf.Version() != prev {
		m.followCursor()
	}
	if m.buf.Version() != prev && m.cfg.OnChange != nil {
		m.cfg.OnChange(buildChangeEvent(m.buf))
	}
}

func (m *Model) syncFromBuffer() (cursorChanged bool) {
	ver := m.buf.Version()
	cur := m.buf.Cursor()
	if ver == m.lastBufVersion && cur == m.lastCursor {
		return false
	}
	cursorChanged = cur != m.lastCursor
	m.lastBufVersion = ver
	m.lastCursor = cur
	m.rebuildContent()
	return cursorChanged
}

func (m *Model) rebuildContent() {
	m.viewport.SetContent(m.renderContent())
}

func (m *Model) followCursor() {
	hScrolled := m.followCursorX()
	cur := m.buf.Cursor()
	h := m.viewport.Height - m.viewport.Style.GetVerticalFrameSize()
	if h <= 0 {
		if hScrolled {
			m.rebuildContent()
		}
		return
	}

	y := m.viewport.YOffset
	switch {
	case cur.Row < y:
		m.viewport.SetYOffset(cur.Row)
	case cur.Row >= y+h:
		m.viewport.SetYOffset(cur.Row - h + 1)
	default:
		if hScrolled {
			m.rebuildContent()
		}
		return
	}
	// Highlights cover only the visible rows.
	if hScrolled || m.cfg.Highlighter != nil {
		m.rebuildContent()
	}
}

// followCursorX keeps the cursor cell inside the horizontal window.
func (m *Model) followCursorX() bool {
	w := m.contentWidth(m.buf.LineCount())
	if w <= 0 {
		return false
	}
	x := m.cursorCell()
	next := m.xOffset
	switch {
	case x < next:
		next = x
	case x >= next+w:
		next = x - w + 1
	}
	if next == m.xOffset {
		return false
	}
	m.xOffset = next
	return true
}
