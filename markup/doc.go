// Package markup implements the note markup dialect: a line-oriented plain
// text format with headings, paragraphs, bullet lists, checklists, dividers,
// and inline bold/italic/code markers.
//
// Every function is a pure point query over a document string. Offsets are
// byte offsets into the UTF-8 text and are clamped into [0, len(text)].
package markup
