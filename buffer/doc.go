// Package buffer holds the mutable note document behind the editor.
//
// Positions are 0-based (Row, GraphemeCol) pairs; ranges are half-open
// [Start, End). The markup engine works on byte offsets, so every Buffer can
// be viewed as a markup.State and updated from one with SetState.
//
// Every text edit made through the editing methods is passed through
// Options.Rewrite, which is where live list continuation plugs in.
package buffer
