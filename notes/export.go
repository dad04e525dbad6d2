package notes

import (
	"bufio"
	"bytes"
	"context"
	"fmt"
	"io"
	"path/filepath"
	"regexp"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"
	"github.com/yuin/goldmark/renderer/html"
	"gopkg.in/yaml.v3"

	"github.com/athread/lichen/markup"
)

const (
	bundleHeader  = "# Lichen Notes Export\n# version: 1\n"
	frontMatter   = "---"
	textExtension = ".txt"
)

var unsafeFileChars = regexp.MustCompile(`[\\/:*?"<>|]`)

// ExportFileName returns the file name a note exports to.
func ExportFileName(n Note) string {
	return unsafeFileChars.ReplaceAllString(n.DisplayTitle(), "_") + textExtension
}

// ExportNote returns the file name and body of the note with id.
func (s *Store) ExportNote(ctx context.Context, id uuid.UUID) (name, body string, err error) {
	n, err := s.Get(ctx, id)
	if err != nil {
		return "", "", err
	}
	if n == nil {
		return "", "", ErrNotFound
	}
	return ExportFileName(*n), n.Body, nil
}

type bundleMeta struct {
	ID        string    `yaml:"id"`
	CreatedAt time.Time `yaml:"createdAt"`
	UpdatedAt time.Time `yaml:"updatedAt"`
}

// WriteBundle writes notes as one text document: a header, then per note a
// YAML front matter block, a "# title" line, and the body.
func WriteBundle(w io.Writer, notes []Note) error {
	bw := bufio.NewWriter(w)
	bw.WriteString(bundleHeader)
	bw.WriteString("\n")

	for _, n := range notes {
		meta, err := yaml.Marshal(bundleMeta{
			ID:        n.ID.String(),
			CreatedAt: n.CreatedAt.UTC(),
			UpdatedAt: n.UpdatedAt.UTC(),
		})
		if err != nil {
			return fmt.Errorf("encode front matter: %w", err)
		}
		fmt.Fprintf(bw, "%s\n%s%s\n\n", frontMatter, meta, frontMatter)
		fmt.Fprintf(bw, "# %s\n%s\n\n", n.DisplayTitle(), n.Body)
	}

	if err := bw.Flush(); err != nil {
		return fmt.Errorf("write bundle: %w", err)
	}
	return nil
}

// ReadBundle parses a document written by WriteBundle. Trailing newlines of
// each body are not preserved.
func ReadBundle(r io.Reader) ([]Note, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("read bundle: %w", err)
	}
	lines := strings.Split(strings.ReplaceAll(string(data), "\r\n", "\n"), "\n")

	var (
		notes []Note
		cur   *Note
		body  []string
	)
	flush := func() {
		if cur == nil {
			return
		}
		cur.Body = strings.TrimRight(strings.Join(body, "\n"), "\n")
		notes = append(notes, *cur)
		cur, body = nil, nil
	}

	for i := 0; i < len(lines); {
		meta, next, ok := parseFrontMatter(lines, i)
		if !ok {
			if cur != nil {
				body = append(body, lines[i])
			}
			i++
			continue
		}
		flush()

		id, err := uuid.Parse(meta.ID)
		if err != nil {
			return nil, fmt.Errorf("parse note id %q: %w", meta.ID, err)
		}
		cur = &Note{ID: id, CreatedAt: meta.CreatedAt, UpdatedAt: meta.UpdatedAt}

		// A blank line, then the title line.
		if next < len(lines) && lines[next] == "" {
			next++
		}
		if next < len(lines) && strings.HasPrefix(lines[next], "# ") {
			cur.Title = strings.TrimPrefix(lines[next], "# ")
			next++
		}
		i = next
	}
	flush()
	return notes, nil
}

// parseFrontMatter decodes a front matter block opening at line i. It
// returns the line after the closing delimiter.
func parseFrontMatter(lines []string, i int) (bundleMeta, int, bool) {
	if lines[i] != frontMatter || i+1 >= len(lines) || !strings.HasPrefix(lines[i+1], "id: ") {
		return bundleMeta{}, 0, false
	}
	for j := i + 1; j < len(lines); j++ {
		if lines[j] != frontMatter {
			continue
		}
		var meta bundleMeta
		if err := yaml.Unmarshal([]byte(strings.Join(lines[i+1:j], "\n")), &meta); err != nil || meta.ID == "" {
			return bundleMeta{}, 0, false
		}
		return meta, j + 1, true
	}
	return bundleMeta{}, 0, false
}

// ImportText creates a note from a text file. The title is the file name
// without directory and ".txt"; the body is trimmed.
func (s *Store) ImportText(ctx context.Context, fileName, content string) (*Note, error) {
	title := strings.TrimSuffix(filepath.Base(fileName), textExtension)
	if title == "." || title == string(filepath.Separator) {
		title = ""
	}
	n := &Note{Title: title, Body: strings.TrimSpace(content)}
	if err := s.Save(ctx, n); err != nil {
		return nil, fmt.Errorf("import %s: %w", fileName, err)
	}
	return n, nil
}

var htmlRenderer = goldmark.New(
	goldmark.WithExtensions(extension.TaskList),
	goldmark.WithRendererOptions(html.WithHardWraps()),
)

// WriteHTML renders a note body as HTML. Blocks are separated by blank
// lines first so a divider never reads as a setext heading underline.
func WriteHTML(w io.Writer, body string) error {
	var src bytes.Buffer
	for i, b := range markup.Parse(body) {
		if i > 0 {
			src.WriteString("\n\n")
		}
		src.WriteString(blockMarkdown(b))
	}
	if err := htmlRenderer.Convert(src.Bytes(), w); err != nil {
		return fmt.Errorf("render html: %w", err)
	}
	return nil
}

// blockMarkdown formats a single block without its leading line padding.
func blockMarkdown(b markup.Block) string {
	return strings.TrimLeft(markup.Format([]markup.Block{b}), "\n")
}

// IsBundle reports whether data starts with the bundle header.
func IsBundle(data []byte) bool {
	return bytes.HasPrefix(data, []byte(bundleHeader))
}
