package notes

import (
	"context"
	"fmt"

	"github.com/athread/lichen/markup"
)

// Mode is the editing mode of a Session.
type Mode uint8

const (
	ModeRead Mode = iota
	ModeEdit
)

func (m Mode) String() string {
	switch m {
	case ModeRead:
		return "read"
	case ModeEdit:
		return "edit"
	default:
		return "unknown"
	}
}

// Saver persists notes. *Store implements it.
type Saver interface {
	Save(ctx context.Context, n *Note) error
}

// Session holds the editing state of one note: the working title and body,
// what was last saved, and the mode. New notes start in edit mode.
type Session struct {
	note  Note
	isNew bool
	mode  Mode

	title, body           string
	savedTitle, savedBody string
}

// NewSession starts a session on n, or on a new note when n is nil.
func NewSession(n *Note) *Session {
	if n == nil {
		return &Session{isNew: true, mode: ModeEdit}
	}
	return &Session{
		note:       *n,
		mode:       ModeRead,
		title:      n.Title,
		body:       n.Body,
		savedTitle: n.Title,
		savedBody:  n.Body,
	}
}

func (s *Session) Title() string { return s.title }
func (s *Session) Body() string  { return s.body }
func (s *Session) Mode() Mode    { return s.mode }
func (s *Session) IsNew() bool   { return s.isNew }

// Dirty reports unsaved title or body changes.
func (s *Session) Dirty() bool {
	return s.title != s.savedTitle || s.body != s.savedBody
}

func (s *Session) EnterEdit() { s.mode = ModeEdit }
func (s *Session) ExitEdit()  { s.mode = ModeRead }

func (s *Session) SetTitle(title string) { s.title = title }
func (s *Session) SetBody(body string)   { s.body = body }

// ToggleChecklistItem flips the checklist item on line lineIndex of the
// working body. It reports whether a line was toggled.
func (s *Session) ToggleChecklistItem(lineIndex int) bool {
	body, ok := markup.ToggleChecklistItem(s.body, lineIndex)
	if ok {
		s.body = body
	}
	return ok
}

// Discard drops unsaved changes. It reports whether the caller should leave
// the note: true when nothing was dirty or the note was never saved.
// Otherwise the saved state is restored and the session returns to read
// mode.
func (s *Session) Discard() (leave bool) {
	if !s.Dirty() || s.isNew {
		return true
	}
	s.title, s.body = s.savedTitle, s.savedBody
	s.mode = ModeRead
	return false
}

// Commit saves the working title and body through sv and returns to read
// mode. A blank title is saved as UntitledTitle.
func (s *Session) Commit(ctx context.Context, sv Saver) (*Note, error) {
	n := s.note
	n.Title = s.title
	n.Body = s.body
	if err := sv.Save(ctx, &n); err != nil {
		return nil, fmt.Errorf("commit note: %w", err)
	}

	s.note = n
	s.isNew = false
	s.title = n.Title
	s.savedTitle, s.savedBody = n.Title, n.Body
	s.mode = ModeRead
	return &n, nil
}
