package editor

import (
	"fmt"
	"strings"

	"github.com/athread/lichen/buffer"
	"github.com/athread/lichen/internal/grapheme"
	"github.com/athread/lichen/markup"
)

func (m *Model) renderContent() string {
	n := m.buf.LineCount()
	cursor := m.buf.Cursor()
	sel, selOK := m.buf.Selection()

	digitCount := 0
	if m.cfg.ShowLineNums {
		digitCount = gutterDigits(n)
	}

	first, last := 0, -1
	if m.cfg.Highlighter != nil {
		if h := m.viewport.Height - m.viewport.Style.GetVerticalFrameSize(); h > 0 {
			first = clampInt(m.viewport.YOffset, 0, n)
			last = minInt(first+h, n) - 1
		}
	}

	left, right := m.visibleCells(n)

	out := make([]string, 0, n)
	for row := 0; row < n; row++ {
		clusters := grapheme.Split(m.buf.Line(row))

		var sb strings.Builder
		if m.cfg.ShowLineNums {
			numStyle := m.cfg.Style.LineNum
			if m.focused && row == cursor.Row {
				numStyle = m.cfg.Style.LineNumActive
			}
			sb.WriteString(numStyle.Render(fmt.Sprintf("%*d", digitCount, row+1)))
			sb.WriteString(m.cfg.Style.Gutter.Render(" "))
		}

		var highlights []HighlightSpan
		if row >= first && row <= last {
			highlights = m.highlightForLine(row, clusters, cursor)
		}

		sb.WriteString(m.renderLine(lineView{
			row:        row,
			clusters:   clusters,
			cursor:     cursor,
			sel:        sel,
			selOK:      selOK,
			highlights: highlights,
			left:       left,
			right:      right,
		}))
		out = append(out, sb.String())
	}
	return strings.Join(out, "\n")
}

func (m *Model) highlightForLine(row int, clusters []string, cursor buffer.Pos) []HighlightSpan {
	hasCursor := cursor.Row == row
	cursorCol := -1
	if hasCursor {
		cursorCol = clampInt(cursor.GraphemeCol, 0, len(clusters))
	}

	spans, err := m.cfg.Highlighter.HighlightLine(LineContext{
		Row:               row,
		Text:              grapheme.Join(clusters),
		CursorGraphemeCol: cursorCol,
		HasCursor:         hasCursor,
	})
	if err != nil {
		return nil
	}
	return normalizeHighlightSpans(spans, len(clusters))
}

type lineView struct {
	row        int
	clusters   []string
	cursor     buffer.Pos
	sel        buffer.Range
	selOK      bool
	highlights []HighlightSpan
	// left and right bound the visible cells, half-open.
	left, right int
}

func (m *Model) renderLine(lv lineView) string {
	st := m.cfg.Style
	tabWidth := m.cfg.tabWidth()
	rawLen := len(lv.clusters)

	cursorCol := -1
	if m.focused && lv.row == lv.cursor.Row {
		cursorCol = clampInt(lv.cursor.GraphemeCol, 0, rawLen)
	}
	selStart, selEnd, hasSel := selectionColsForRow(lv.sel, lv.selOK, lv.row, rawLen)

	var sb strings.Builder
	cell := 0
	hi := 0
	for i, g := range lv.clusters {
		w := grapheme.Width(g, cell, tabWidth)
		start := cell
		cell += w
		if start < lv.left || start+w > lv.right {
			continue
		}

		text := g
		if g == "\t" {
			text = strings.Repeat(" ", w)
		}

		for hi < len(lv.highlights) && lv.highlights[hi].EndGraphemeCol <= i {
			hi++
		}

		switch {
		case i == cursorCol:
			if isTrailingSpace(lv.clusters, i) {
				// Trailing spaces can be elided by terminals; keep the cursor visible.
				text = strings.ReplaceAll(text, " ", "\u00a0")
			}
			sb.WriteString(st.Cursor.Render(text))
		case hasSel && i >= selStart && i < selEnd:
			sb.WriteString(st.Selection.Render(text))
		case hi < len(lv.highlights) && lv.highlights[hi].StartGraphemeCol <= i:
			sb.WriteString(lv.highlights[hi].Style.Inherit(st.Text).Render(text))
		default:
			sb.WriteString(st.Text.Render(text))
		}
	}

	// Cursor at EOL is rendered as a 1-cell placeholder space.
	if cursorCol == rawLen && cell >= lv.left && cell < lv.right {
		sb.WriteString(st.Cursor.Render(" "))
	}
	return sb.String()
}

// visibleCells returns the horizontal cell window of the text area.
func (m *Model) visibleCells(lineCount int) (left, right int) {
	w := m.contentWidth(lineCount)
	if w <= 0 {
		return 0, int(^uint(0) >> 1)
	}
	return m.xOffset, m.xOffset + w
}

func (m *Model) contentWidth(lineCount int) int {
	w := m.viewport.Width - m.viewport.Style.GetHorizontalFrameSize()
	if m.cfg.ShowLineNums {
		w -= gutterDigits(lineCount) + 1
	}
	return w
}

// cursorCell returns the cell offset of the cursor within its line.
func (m *Model) cursorCell() int {
	cur := m.buf.Cursor()
	clusters := grapheme.Split(m.buf.Line(cur.Row))
	col := clampInt(cur.GraphemeCol, 0, len(clusters))
	return grapheme.StringWidth(grapheme.Join(clusters[:col]), m.cfg.tabWidth())
}

func (m Model) renderToolbar() string {
	st := m.cfg.Style
	f := m.Formatting()
	items := []struct {
		label  string
		active bool
	}{
		{"B", f.Bold},
		{"I", f.Italic},
		{"Code", f.Code},
		{"List", f.Bullet},
		{"Check", f.Checklist},
		{"H1", f.TextStyle == markup.StyleH1},
		{"H2", f.TextStyle == markup.StyleH2},
		{"H3", f.TextStyle == markup.StyleH3},
	}

	parts := make([]string, 0, len(items))
	for _, it := range items {
		if it.active {
			parts = append(parts, st.ToolbarActive.Render(it.label))
			continue
		}
		parts = append(parts, st.Toolbar.Render(it.label))
	}
	return strings.Join(parts, st.Toolbar.Render(" "))
}

func selectionColsForRow(sel buffer.Range, ok bool, row, lineLen int) (start, end int, has bool) {
	if !ok || row < sel.Start.Row || row > sel.End.Row {
		return 0, 0, false
	}
	start, end = 0, lineLen
	if row == sel.Start.Row {
		start = clampInt(sel.Start.GraphemeCol, 0, lineLen)
	}
	if row == sel.End.Row {
		end = clampInt(sel.End.GraphemeCol, 0, lineLen)
	}
	return start, end, start < end
}

func isTrailingSpace(clusters []string, from int) bool {
	for _, g := range clusters[from:] {
		if g != " " {
			return false
		}
	}
	return true
}

func gutterDigits(lineCount int) int {
	return maxInt(len(fmt.Sprint(lineCount)), 1)
}

func minInt(a, b int) int {
	if a < b {
		return a
	}
	return b
}
