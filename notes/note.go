// Package notes stores notes and handles their export, import, and editing
// sessions.
package notes

import (
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
)

// UntitledTitle is shown and saved for notes with a blank title.
const UntitledTitle = "Untitled"

// Note is one stored note. Body is markup text.
type Note struct {
	ID        uuid.UUID
	Title     string
	Body      string
	CreatedAt time.Time
	UpdatedAt time.Time
}

// DisplayTitle returns the title, or UntitledTitle when it is blank.
func (n Note) DisplayTitle() string {
	if strings.TrimSpace(n.Title) == "" {
		return UntitledTitle
	}
	return n.Title
}

// Sort orders note listings.
type Sort uint8

const (
	SortNewest Sort = iota
	SortOldest
	SortTitleAsc
	SortTitleDesc
)

func (s Sort) String() string {
	switch s {
	case SortNewest:
		return "newest"
	case SortOldest:
		return "oldest"
	case SortTitleAsc:
		return "title"
	case SortTitleDesc:
		return "title-desc"
	default:
		return "unknown"
	}
}

// ParseSort parses the String form of a Sort.
func ParseSort(s string) (Sort, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "newest":
		return SortNewest, nil
	case "oldest":
		return SortOldest, nil
	case "title", "title-asc":
		return SortTitleAsc, nil
	case "title-desc":
		return SortTitleDesc, nil
	default:
		return 0, fmt.Errorf("unknown sort %q", s)
	}
}

func (s Sort) orderBy() string {
	switch s {
	case SortOldest:
		return "updated_at ASC"
	case SortTitleAsc:
		return "title COLLATE NOCASE ASC, updated_at DESC"
	case SortTitleDesc:
		return "title COLLATE NOCASE DESC, updated_at DESC"
	default:
		return "updated_at DESC"
	}
}
