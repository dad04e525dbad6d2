package markup

// BlockKind identifies the concrete type behind a Block.
type BlockKind uint8

const (
	KindText BlockKind = iota
	KindHeading
	KindBulletList
	KindChecklist
	KindDivider
)

func (k BlockKind) String() string {
	switch k {
	case KindText:
		return "text"
	case KindHeading:
		return "heading"
	case KindBulletList:
		return "bullet-list"
	case KindChecklist:
		return "checklist"
	case KindDivider:
		return "divider"
	default:
		return "unknown"
	}
}

// LineSpan is the inclusive range of document lines a block was parsed from.
type LineSpan struct {
	StartLine int
	EndLine   int
}

// Lines returns the span itself so that embedding types satisfy Block.
func (s LineSpan) Lines() LineSpan { return s }

// Block is one semantic unit of a note body. The concrete types are
// TextBlock, HeadingBlock, BulletListBlock, ChecklistBlock, and DividerBlock.
type Block interface {
	Kind() BlockKind
	Lines() LineSpan
}

// TextBlock is a paragraph: contiguous plain lines joined by '\n'.
type TextBlock struct {
	Text string
	LineSpan
}

func (TextBlock) Kind() BlockKind { return KindText }

// HeadingBlock is a single '#' line. Level is 1..3.
type HeadingBlock struct {
	Level int
	Text  string
	LineSpan
}

func (HeadingBlock) Kind() BlockKind { return KindHeading }

// BulletListBlock holds raw bullet items. Each item keeps its normalized
// indentation as leading spaces, so nesting is positional.
type BulletListBlock struct {
	Items []string
	LineSpan
}

func (BulletListBlock) Kind() BlockKind { return KindBulletList }

// ChecklistBlock holds a run of checklist lines.
type ChecklistBlock struct {
	Items []ChecklistItem
	LineSpan
}

func (ChecklistBlock) Kind() BlockKind { return KindChecklist }

// DividerBlock is a "---" line.
type DividerBlock struct {
	LineSpan
}

func (DividerBlock) Kind() BlockKind { return KindDivider }

// ChecklistItem is one checklist line.
//
// LineIndex is the absolute line of the item in the document that was
// parsed. It goes stale on any edit; hosts must re-parse before using it.
type ChecklistItem struct {
	Text      string
	Checked   bool
	LineIndex int
}
