package notes

import (
	"context"
	"errors"
	"testing"
)

type saverFunc func(ctx context.Context, n *Note) error

func (f saverFunc) Save(ctx context.Context, n *Note) error { return f(ctx, n) }

func TestSession_NewNote(t *testing.T) {
	s := NewSession(nil)
	if !s.IsNew() || s.Mode() != ModeEdit {
		t.Fatalf("new session: isNew=%v mode=%v", s.IsNew(), s.Mode())
	}
	if s.Dirty() {
		t.Fatal("empty new session is dirty")
	}

	s.SetBody("x")
	if !s.Dirty() {
		t.Fatal("expected dirty after body change")
	}
	if leave := s.Discard(); !leave {
		t.Fatal("discarding a new note should leave")
	}
}

func TestSession_DiscardRestoresSaved(t *testing.T) {
	s := NewSession(&Note{Title: "t", Body: "b"})
	if s.Mode() != ModeRead {
		t.Fatalf("mode = %v, want read", s.Mode())
	}
	if leave := s.Discard(); !leave {
		t.Fatal("discarding a clean note should leave")
	}

	s.EnterEdit()
	s.SetTitle("t2")
	s.SetBody("b2")
	if leave := s.Discard(); leave {
		t.Fatal("discarding a dirty saved note should stay")
	}
	if s.Title() != "t" || s.Body() != "b" || s.Mode() != ModeRead {
		t.Fatalf("after discard: title=%q body=%q mode=%v", s.Title(), s.Body(), s.Mode())
	}
}

func TestSession_CommitWithStore(t *testing.T) {
	ctx := context.Background()
	store := newTestStore(t)

	s := NewSession(nil)
	s.SetBody("- [ ] a")
	n, err := s.Commit(ctx, store)
	if err != nil {
		t.Fatalf("Commit() error = %v", err)
	}
	if n.Title != UntitledTitle || s.Title() != UntitledTitle {
		t.Fatalf("title = %q / %q, want %q", n.Title, s.Title(), UntitledTitle)
	}
	if s.IsNew() || s.Dirty() || s.Mode() != ModeRead {
		t.Fatalf("after commit: isNew=%v dirty=%v mode=%v", s.IsNew(), s.Dirty(), s.Mode())
	}

	if !s.ToggleChecklistItem(0) {
		t.Fatal("ToggleChecklistItem(0) = false")
	}
	if _, err := s.Commit(ctx, store); err != nil {
		t.Fatalf("Commit() error = %v", err)
	}
	got, err := store.Get(ctx, n.ID)
	if err != nil || got == nil {
		t.Fatalf("Get() = (%v, %v)", got, err)
	}
	if got.Body != "- [x] a" {
		t.Fatalf("body = %q, want %q", got.Body, "- [x] a")
	}
}

func TestSession_CommitErrorKeepsDirty(t *testing.T) {
	boom := errors.New("boom")
	s := NewSession(&Note{Title: "t", Body: "b"})
	s.SetBody("c")

	_, err := s.Commit(context.Background(), saverFunc(func(context.Context, *Note) error { return boom }))
	if !errors.Is(err, boom) {
		t.Fatalf("Commit() error = %v, want %v", err, boom)
	}
	if !s.Dirty() {
		t.Fatal("failed commit cleared dirty state")
	}
}

func TestSession_ToggleChecklistItem(t *testing.T) {
	s := NewSession(&Note{Title: "t", Body: "x\n- [ ] milk"})
	if !s.ToggleChecklistItem(1) {
		t.Fatal("ToggleChecklistItem(1) = false, want true")
	}
	if got, want := s.Body(), "x\n- [x] milk"; got != want {
		t.Fatalf("body = %q, want %q", got, want)
	}
	if !s.Dirty() {
		t.Fatal("toggle did not mark session dirty")
	}
	if s.ToggleChecklistItem(5) {
		t.Fatal("ToggleChecklistItem out of range = true")
	}
}
