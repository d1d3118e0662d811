package form

import "strings"

// numeric lists the runes an Editor accepts.
const numeric = "0123456789.-+eE"

// Editor is the text buffer of the field being edited.
type Editor struct {
	buf []rune
}

// Start replaces the buffer with text.
func (e *Editor) Start(text string) {
	e.buf = []rune(text)
}

// Insert appends r when it can appear in a number.
func (e *Editor) Insert(r rune) bool {
	if !strings.ContainsRune(numeric, r) {
		return false
	}
	e.buf = append(e.buf, r)
	return true
}

func (e *Editor) Backspace() {
	if len(e.buf) > 0 {
		e.buf = e.buf[:len(e.buf)-1]
	}
}

func (e *Editor) Clear() { e.buf = e.buf[:0] }

// Commit returns the trimmed buffer and empties it.
func (e *Editor) Commit() string {
	s := strings.TrimSpace(string(e.buf))
	e.buf = nil
	return s
}

func (e Editor) String() string { return string(e.buf) }
