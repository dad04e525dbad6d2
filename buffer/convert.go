package buffer

// OffsetClampMode selects how PosFromByteOffset and ByteOffsetFromPos treat
// input that does not name an exact cluster boundary.
type OffsetClampMode uint8

const (
	// OffsetError fails on out-of-document input and on byte offsets that
	// fall inside a grapheme cluster.
	OffsetError OffsetClampMode = iota
	// OffsetClamp pulls input into the document and rounds a mid-cluster
	// offset down to the cluster start.
	OffsetClamp
)

// PosFromByteOffset maps a byte offset in Text() to a position. markup
// states carry byte offsets; the buffer stores positions.
func (b *Buffer) PosFromByteOffset(off int, mode OffsetClampMode) (Pos, bool) {
	if n := b.byteLen(); off < 0 || off > n {
		if mode != OffsetClamp {
			return Pos{}, false
		}
		off = clampInt(off, 0, n)
	}
	return b.byteOffsetToPos(off, mode == OffsetClamp)
}

// ByteOffsetFromPos maps a position to a byte offset in Text().
func (b *Buffer) ByteOffsetFromPos(p Pos, mode OffsetClampMode) (int, bool) {
	clamped := b.clampPos(p)
	if clamped != p && mode != OffsetClamp {
		return 0, false
	}
	return b.posToByteOffset(clamped), true
}

func (b *Buffer) lineBytes(row int) int {
	n := 0
	for _, cluster := range b.lines[row] {
		n += len(cluster)
	}
	return n
}

func (b *Buffer) byteLen() int {
	n := len(b.lines) - 1 // newlines
	for row := range b.lines {
		n += b.lineBytes(row)
	}
	return n
}

// byteOffsetToPos resolves off row by row. An offset at a line end stays on
// that line; one past the newline starts the next. A mid-cluster offset
// fails unless snap is set.
func (b *Buffer) byteOffsetToPos(off int, snap bool) (Pos, bool) {
	if off < 0 {
		return Pos{}, false
	}
	row := 0
	for row < len(b.lines)-1 {
		w := b.lineBytes(row)
		if off <= w {
			break
		}
		off -= w + 1
		row++
	}
	if off > b.lineBytes(row) {
		return Pos{}, false
	}

	col := 0
	for _, cluster := range b.lines[row] {
		if off == 0 {
			break
		}
		if off < len(cluster) {
			if !snap {
				return Pos{}, false
			}
			break
		}
		off -= len(cluster)
		col++
	}
	return Pos{Row: row, GraphemeCol: col}, true
}

func (b *Buffer) posToByteOffset(p Pos) int {
	off := 0
	for row := 0; row < p.Row; row++ {
		off += b.lineBytes(row) + 1
	}
	for _, cluster := range b.lines[p.Row][:p.GraphemeCol] {
		off += len(cluster)
	}
	return off
}
