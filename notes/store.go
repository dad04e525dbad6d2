package notes

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"
	_ "modernc.org/sqlite"
)

// ErrNotFound is returned by calls that need an existing note.
var ErrNotFound = errors.New("note not found")

const schema = `
CREATE TABLE IF NOT EXISTS notes (
    id TEXT PRIMARY KEY,
    title TEXT NOT NULL,
    body TEXT NOT NULL,
    created_at INTEGER NOT NULL,
    updated_at INTEGER NOT NULL
);
CREATE INDEX IF NOT EXISTS idx_notes_updated ON notes(updated_at DESC);
`

// Store is a SQLite-backed note repository.
type Store struct {
	db  *sql.DB
	log *slog.Logger
	now func() time.Time
}

// NewStore opens or creates the database at path. A nil logger discards
// logs.
func NewStore(path string, logger *slog.Logger) (*Store, error) {
	if path != ":memory:" {
		if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
			return nil, fmt.Errorf("create notes data directory: %w", err)
		}
	}

	dsn := path
	if strings.Contains(dsn, "?") {
		dsn += "&"
	} else {
		dsn += "?"
	}
	dsn += "_pragma=journal_mode(WAL)&_pragma=busy_timeout(5000)"

	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("open notes db: %w", err)
	}
	if _, err := db.Exec(schema); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("initialize notes schema: %w", err)
	}

	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return &Store{db: db, log: logger, now: time.Now}, nil
}

func (s *Store) Close() error {
	if s.db != nil {
		return s.db.Close()
	}
	return nil
}

// Save inserts or replaces n. A zero ID gets a fresh one, a zero CreatedAt
// is stamped, and UpdatedAt is always set to now. A blank title is saved as
// UntitledTitle.
func (s *Store) Save(ctx context.Context, n *Note) error {
	now := s.now().UTC()
	if n.ID == uuid.Nil {
		n.ID = uuid.New()
	}
	if n.CreatedAt.IsZero() {
		n.CreatedAt = now
	}
	n.UpdatedAt = now
	n.Title = n.DisplayTitle()

	_, err := s.db.ExecContext(ctx, `
		INSERT INTO notes (id, title, body, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?)
		ON CONFLICT(id) DO UPDATE SET
			title = excluded.title,
			body = excluded.body,
			updated_at = excluded.updated_at
	`, n.ID.String(), n.Title, n.Body, n.CreatedAt.UnixNano(), n.UpdatedAt.UnixNano())
	if err != nil {
		return fmt.Errorf("save note: %w", err)
	}
	s.log.Debug("note saved", "id", n.ID, "title", n.Title, "bytes", len(n.Body))
	return nil
}

// Get returns the note with id, or nil when there is none.
func (s *Store) Get(ctx context.Context, id uuid.UUID) (*Note, error) {
	row := s.db.QueryRowContext(ctx, `
		SELECT id, title, body, created_at, updated_at
		FROM notes WHERE id = ?
	`, id.String())

	n, err := scanNote(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("query note: %w", err)
	}
	return n, nil
}

// Find resolves a full ID or a unique ID prefix.
func (s *Store) Find(ctx context.Context, ref string) (*Note, error) {
	ref = strings.ToLower(strings.TrimSpace(ref))
	if id, err := uuid.Parse(ref); err == nil {
		n, err := s.Get(ctx, id)
		if err != nil {
			return nil, err
		}
		if n == nil {
			return nil, ErrNotFound
		}
		return n, nil
	}
	if ref == "" {
		return nil, ErrNotFound
	}

	rows, err := s.db.QueryContext(ctx, `
		SELECT id, title, body, created_at, updated_at
		FROM notes WHERE id LIKE ? || '%' LIMIT 2
	`, ref)
	if err != nil {
		return nil, fmt.Errorf("query notes: %w", err)
	}
	matches, err := collectNotes(rows)
	if err != nil {
		return nil, err
	}
	switch len(matches) {
	case 0:
		return nil, ErrNotFound
	case 1:
		return &matches[0], nil
	default:
		return nil, fmt.Errorf("note id prefix %q is ambiguous", ref)
	}
}

// List returns all notes in the given order.
func (s *Store) List(ctx context.Context, order Sort) ([]Note, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT id, title, body, created_at, updated_at
		FROM notes ORDER BY `+order.orderBy())
	if err != nil {
		return nil, fmt.Errorf("query notes: %w", err)
	}
	return collectNotes(rows)
}

// Delete removes the note with id.
func (s *Store) Delete(ctx context.Context, id uuid.UUID) error {
	res, err := s.db.ExecContext(ctx, `DELETE FROM notes WHERE id = ?`, id.String())
	if err != nil {
		return fmt.Errorf("delete note: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("delete note: %w", err)
	}
	if n == 0 {
		return ErrNotFound
	}
	s.log.Debug("note deleted", "id", id)
	return nil
}

type scanner interface {
	Scan(dest ...any) error
}

func scanNote(sc scanner) (*Note, error) {
	var (
		n                Note
		id               string
		created, updated int64
	)
	if err := sc.Scan(&id, &n.Title, &n.Body, &created, &updated); err != nil {
		return nil, err
	}
	parsed, err := uuid.Parse(id)
	if err != nil {
		return nil, fmt.Errorf("parse note id %q: %w", id, err)
	}
	n.ID = parsed
	n.CreatedAt = time.Unix(0, created).UTC()
	n.UpdatedAt = time.Unix(0, updated).UTC()
	return &n, nil
}

func collectNotes(rows *sql.Rows) ([]Note, error) {
	defer rows.Close()

	var notes []Note
	for rows.Next() {
		n, err := scanNote(rows)
		if err != nil {
			return nil, fmt.Errorf("scan note: %w", err)
		}
		notes = append(notes, *n)
	}
	return notes, rows.Err()
}
