package lexer

import (
	"testing"

	"github.com/carllerche/minifmt/internal/source"
)

func createFile(content string) *source.File {
	fs := source.NewFileSet()
	id := fs.AddVirtual("test.rs", []byte(content))
	return fs.Get(id)
}

func TestCursorPeekAndBump(t *testing.T) {
	cursor := NewCursor(createFile("ab\nc"))
	if b0, b1, b2, ok := cursor.Peek3(); !ok || b0 != 'a' || b1 != 'b' || b2 != '\n' {
		t.Fatalf("Peek3 = %q %q %q %v", b0, b1, b2, ok)
	}
	if cursor.PeekAt(3) != 'c' || cursor.PeekAt(4) != 0 {
		t.Fatalf("PeekAt out of expectation")
	}
	m := cursor.Mark()
	cursor.Bump()
	cursor.Bump()
	if sp := cursor.SpanFrom(m); sp.Start != 0 || sp.End != 2 {
		t.Fatalf("SpanFrom = %v", sp)
	}
	cursor.Reset(m)
	if !cursor.Eat('a') || cursor.Eat('x') {
		t.Fatalf("Eat mismatch")
	}
	for !cursor.EOF() {
		cursor.Bump()
	}
	if cursor.Peek() != 0 || cursor.Bump() != 0 {
		t.Fatalf("expected zero bytes at EOF")
	}
	if _, _, ok := cursor.Peek2(); ok {
		t.Fatalf("Peek2 at EOF must fail")
	}
}

func TestCursorLimit(t *testing.T) {
	cursor := NewCursor(createFile("abcdef"))
	cursor.Limit = 2
	cursor.Bump()
	cursor.Bump()
	if !cursor.EOF() {
		t.Fatalf("limit not honoured")
	}
}
