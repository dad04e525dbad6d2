package editor

// Clipboard is where copy and cut send selected text and paste reads from.
// A nil Clipboard disables all three. Errors are dropped so that a missing
// system clipboard never interrupts typing.
type Clipboard interface {
	ReadText() (string, error)
	WriteText(s string) error
}
