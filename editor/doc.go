// Package editor provides a Bubble Tea note editor component backed by the
// buffer package.
//
// The component handles key input, viewport follow, grapheme-aware
// rendering with markup highlighting, a formatting toolbar, and change
// events carrying the formatting active at the cursor.
package editor
