package format

import (
	"strings"
)

// Writer accumulates formatted output and indents every line that starts
// while a scope is open.
type Writer struct {
	opt         Options
	buf         []byte
	indentLevel int
	atLineStart bool
}

// NewWriter creates a new formatting writer.
func NewWriter(opt Options) *Writer {
	return &Writer{
		opt:         opt.withDefaults(),
		atLineStart: true,
	}
}

// Bytes returns the accumulated formatted output.
func (w *Writer) Bytes() []byte {
	return w.buf
}

// Len returns the number of bytes written so far.
func (w *Writer) Len() int {
	return len(w.buf)
}

// AtLineStart reports whether the next byte starts a new line.
func (w *Writer) AtLineStart() bool {
	return w.atLineStart
}

// Depth returns the current indentation level.
func (w *Writer) Depth() int {
	return w.indentLevel
}

func (w *Writer) writeIndent() {
	if !w.atLineStart {
		return
	}
	if w.opt.UseTabs {
		for range w.indentLevel {
			w.buf = append(w.buf, '\t')
		}
	} else {
		spaceCount := w.indentLevel * w.opt.IndentWidth
		for range spaceCount {
			w.buf = append(w.buf, ' ')
		}
	}
	w.atLineStart = false
}

// WriteString writes s line by line. Non-empty lines that begin at the start
// of a line are indented; empty lines stay empty.
func (w *Writer) WriteString(s string) {
	for s != "" {
		line, rest, found := strings.Cut(s, "\n")
		if line != "" {
			w.writeIndent()
			w.buf = append(w.buf, line...)
			w.atLineStart = false
		}
		if !found {
			return
		}
		w.buf = append(w.buf, '\n')
		w.atLineStart = true
		s = rest
	}
}

// WriteVerbatim writes s without indenting any line after the first. It is
// used for token text that may span lines, such as raw string literals.
func (w *Writer) WriteVerbatim(s string) {
	if s == "" {
		return
	}
	w.writeIndent()
	w.buf = append(w.buf, s...)
	w.atLineStart = s[len(s)-1] == '\n'
}

// Space writes a single space if the output doesn't already end with whitespace.
func (w *Writer) Space() {
	if len(w.buf) == 0 {
		return
	}
	last := w.buf[len(w.buf)-1]
	if last == ' ' || last == '\n' || last == '\t' {
		return
	}
	w.buf = append(w.buf, ' ')
	w.atLineStart = false
}

// Newline writes a newline if the output doesn't already end with one.
func (w *Writer) Newline() {
	if len(w.buf) == 0 || w.buf[len(w.buf)-1] != '\n' {
		w.buf = append(w.buf, '\n')
	}
	w.atLineStart = true
}

// IndentPush increases the indentation level.
func (w *Writer) IndentPush() {
	w.indentLevel++
}

// IndentPop decreases the indentation level.
func (w *Writer) IndentPop() {
	if w.indentLevel > 0 {
		w.indentLevel--
	}
}
