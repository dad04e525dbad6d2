package main

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"github.com/athread/lichen/editor"
	"github.com/athread/lichen/markup"
	"github.com/athread/lichen/notes"
	"github.com/athread/lichen/view"
)

type noteKeys struct {
	Save    key.Binding
	Quit    key.Binding
	Discard key.Binding
	Focus   key.Binding
	Edit    key.Binding
	Next    key.Binding
	Prev    key.Binding
	Toggle  key.Binding
}

func defaultNoteKeys() noteKeys {
	return noteKeys{
		Save:    key.NewBinding(key.WithKeys("ctrl+s"), key.WithHelp("ctrl+s", "save")),
		Quit:    key.NewBinding(key.WithKeys("ctrl+q"), key.WithHelp("ctrl+q", "quit")),
		Discard: key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "discard")),
		Focus:   key.NewBinding(key.WithKeys("shift+tab"), key.WithHelp("shift+tab", "title/body")),
		Edit:    key.NewBinding(key.WithKeys("e"), key.WithHelp("e", "edit")),
		Next:    key.NewBinding(key.WithKeys("j", "down"), key.WithHelp("j", "next item")),
		Prev:    key.NewBinding(key.WithKeys("k", "up"), key.WithHelp("k", "prev item")),
		Toggle:  key.NewBinding(key.WithKeys(" ", "x"), key.WithHelp("space", "check")),
	}
}

var (
	statusStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("214"))
	itemStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("39"))
)

type noteOptions struct {
	Editor   editor.Config
	Renderer *view.Renderer
	Log      *slog.Logger
}

// noteModel hosts one Session: a rendered read view with checklist toggling,
// and an edit view with a title field and the markup editor.
type noteModel struct {
	ctx   context.Context
	sess  *notes.Session
	saver notes.Saver
	opt   noteOptions
	keys  noteKeys

	title  textinput.Model
	editor editor.Model
	read   viewport.Model
	help   help.Model

	titleFocused bool
	checks       []markup.ChecklistItem
	checkSel     int
	status       string
	confirmQuit  bool

	width, height int
}

const chromeRows = 2 // title line and status line

func newNoteModel(ctx context.Context, sess *notes.Session, saver notes.Saver, opt noteOptions) noteModel {
	if opt.Log == nil {
		opt.Log = slog.New(slog.DiscardHandler)
	}
	if opt.Renderer == nil {
		opt.Renderer = view.New(view.Options{Style: view.DefaultStyle()})
	}
	ti := textinput.New()
	ti.Prompt = "# "
	ti.Placeholder = notes.UntitledTitle
	ti.SetValue(sess.Title())

	m := noteModel{
		ctx:   ctx,
		sess:  sess,
		saver: saver,
		opt:   opt,
		keys:  defaultNoteKeys(),
		title: ti,
		read:  viewport.New(0, 0),
		help:  help.New(),
	}
	if sess.Mode() == notes.ModeEdit {
		m.startEdit()
	} else {
		m.refreshRead()
	}
	return m
}

func (m noteModel) Init() tea.Cmd { return nil }

func (m noteModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.resize(msg.Width, msg.Height)
		return m, nil
	case tea.KeyMsg:
		if key.Matches(msg, m.keys.Quit) {
			if m.sess.Dirty() && !m.confirmQuit {
				m.confirmQuit = true
				m.status = "unsaved changes: ctrl+s saves, ctrl+q again quits"
				return m, nil
			}
			return m, tea.Quit
		}
		m.confirmQuit = false
		if m.sess.Mode() == notes.ModeEdit {
			return m.updateEdit(msg)
		}
		return m.updateRead(msg)
	}

	var cmd tea.Cmd
	if m.sess.Mode() == notes.ModeEdit {
		m.editor, cmd = m.editor.Update(msg)
	} else {
		m.read, cmd = m.read.Update(msg)
	}
	return m, cmd
}

func (m noteModel) updateEdit(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Save):
		m.save()
		return m, nil
	case key.Matches(msg, m.keys.Discard):
		if m.sess.Discard() {
			return m, tea.Quit
		}
		m.title.SetValue(m.sess.Title())
		m.status = "changes discarded"
		m.refreshRead()
		return m, nil
	case key.Matches(msg, m.keys.Focus):
		m.setTitleFocus(!m.titleFocused)
		return m, nil
	}

	var cmd tea.Cmd
	if m.titleFocused {
		if msg.Type == tea.KeyEnter {
			m.setTitleFocus(false)
			return m, nil
		}
		m.title, cmd = m.title.Update(msg)
		m.sess.SetTitle(m.title.Value())
		return m, cmd
	}
	m.editor, cmd = m.editor.Update(msg)
	m.sess.SetBody(m.editor.Text())
	return m, cmd
}

func (m noteModel) updateRead(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Discard), msg.String() == "q", msg.Type == tea.KeyCtrlC:
		return m, tea.Quit
	case key.Matches(msg, m.keys.Edit):
		m.sess.EnterEdit()
		m.startEdit()
		return m, nil
	case key.Matches(msg, m.keys.Next):
		if m.checkSel < len(m.checks)-1 {
			m.checkSel++
		}
		return m, nil
	case key.Matches(msg, m.keys.Prev):
		if m.checkSel > 0 {
			m.checkSel--
		}
		return m, nil
	case key.Matches(msg, m.keys.Toggle):
		if len(m.checks) == 0 {
			return m, nil
		}
		if m.sess.ToggleChecklistItem(m.checks[m.checkSel].LineIndex) {
			m.save()
		}
		return m, nil
	}

	var cmd tea.Cmd
	m.read, cmd = m.read.Update(msg)
	return m, cmd
}

// save commits the session and shows the read view.
func (m *noteModel) save() {
	n, err := m.sess.Commit(m.ctx, m.saver)
	if err != nil {
		m.opt.Log.Error("save note", "err", err)
		m.status = "save failed: " + err.Error()
		return
	}
	m.title.SetValue(n.Title)
	m.status = "saved"
	m.refreshRead()
}

func (m *noteModel) startEdit() {
	cfg := m.opt.Editor
	cfg.Text = m.sess.Body()
	m.editor = editor.New(cfg)
	m.setTitleFocus(m.sess.IsNew() && m.sess.Title() == "")
	m.resize(m.width, m.height)
}

func (m *noteModel) setTitleFocus(on bool) {
	m.titleFocused = on
	if on {
		m.title.Focus()
		m.editor = m.editor.Blur()
		return
	}
	m.title.Blur()
	m.editor = m.editor.Focus()
}

func (m *noteModel) refreshRead() {
	m.title.Blur()
	m.read.SetContent(m.opt.Renderer.Render(m.sess.Body()))

	m.checks = nil
	for _, b := range m.opt.Renderer.Blocks(m.sess.Body()) {
		if cl, ok := b.(markup.ChecklistBlock); ok {
			m.checks = append(m.checks, cl.Items...)
		}
	}
	m.checkSel = min(m.checkSel, max(0, len(m.checks)-1))
}

func (m *noteModel) resize(width, height int) {
	m.width, m.height = width, height
	body := max(0, height-chromeRows)
	m.title.Width = max(0, width-len(m.title.Prompt)-1)
	m.read.Width, m.read.Height = width, body
	if m.sess.Mode() == notes.ModeEdit {
		m.editor = m.editor.SetSize(width, body)
	}
}

func (m noteModel) View() string {
	var header, body string
	if m.sess.Mode() == notes.ModeEdit {
		header = m.title.View()
		body = m.editor.View()
	} else {
		header = titleStyle.Render(m.sess.Title())
		body = m.read.View()
	}
	return lipgloss.JoinVertical(lipgloss.Left, header, body, m.footer())
}

func (m noteModel) footer() string {
	if m.status != "" {
		return statusStyle.Render(m.status)
	}
	if m.sess.Mode() == notes.ModeEdit {
		bindings := append([]key.Binding{m.keys.Save, m.keys.Discard, m.keys.Focus}, m.opt.Editor.KeyMap.ShortHelp()...)
		return m.help.ShortHelpView(bindings)
	}
	line := m.help.ShortHelpView([]key.Binding{m.keys.Edit, m.keys.Next, m.keys.Toggle, m.keys.Quit})
	if len(m.checks) > 0 {
		it := m.checks[m.checkSel]
		line = itemStyle.Render(fmt.Sprintf("[%d/%d] %s", m.checkSel+1, len(m.checks), markup.PlainText(it.Text))) + "  " + line
	}
	return line
}

func (a *app) noteOptions() noteOptions {
	st := editor.DefaultStyle()
	return noteOptions{
		Editor: editor.Config{
			ShowLineNums:     a.cfg.Editor.ShowLineNumbers,
			ShowToolbar:      a.cfg.Editor.ShowToolbar,
			TabWidth:         a.cfg.Editor.TabWidth,
			NoLiveTransforms: !a.cfg.Editor.LiveTransforms,
			Style:            st,
			KeyMap:           editor.DefaultKeyMap(),
			Clipboard:        systemClipboard{},
			Highlighter:      editor.NewMarkupHighlighter(st),
			OnChange: func(ev editor.ChangeEvent) {
				a.log.Debug("edit", "version", ev.Version, "rewritten", ev.Rewritten)
			},
		},
		Renderer: a.renderer(nil),
		Log:      a.log,
	}
}

func (a *app) runNote(ctx context.Context, sess *notes.Session) error {
	return a.withStore(func(st *notes.Store) error {
		m := newNoteModel(ctx, sess, st, a.noteOptions())
		p := tea.NewProgram(m, tea.WithAltScreen(), tea.WithContext(ctx))
		_, err := p.Run()
		return err
	})
}

func newNewCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "new [title]",
		Short: "Write a new note",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			sess := notes.NewSession(nil)
			if len(args) == 1 {
				sess.SetTitle(args[0])
			}
			return a.runNote(cmd.Context(), sess)
		},
	}
}

func newEditCmd(a *app) *cobra.Command {
	var readOnly bool
	cmd := &cobra.Command{
		Use:     "edit <id>",
		Aliases: []string{"open"},
		Short:   "Open a note for editing",
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var sess *notes.Session
			err := a.withStore(func(st *notes.Store) error {
				n, err := st.Find(cmd.Context(), args[0])
				if err != nil {
					return err
				}
				sess = notes.NewSession(n)
				return nil
			})
			if err != nil {
				return err
			}
			if !readOnly {
				sess.EnterEdit()
			}
			return a.runNote(cmd.Context(), sess)
		},
	}
	cmd.Flags().BoolVar(&readOnly, "read", false, "open in the read view")
	return cmd
}
