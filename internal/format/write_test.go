package format

import (
	"testing"
)

func TestWriterIndentsLineStarts(t *testing.T) {
	w := NewWriter(Options{})
	w.WriteString("a {\n")
	w.IndentPush()
	w.WriteString("b;\n\nc")
	w.WriteString(";\n")
	w.IndentPop()
	w.WriteString("}")

	want := "a {\n    b;\n\n    c;\n}"
	if got := string(w.Bytes()); got != want {
		t.Fatalf("want %q\ngot  %q", want, got)
	}
}

func TestWriterTabs(t *testing.T) {
	w := NewWriter(Options{UseTabs: true})
	w.IndentPush()
	w.IndentPush()
	w.WriteString("x\n")
	if got := string(w.Bytes()); got != "\t\tx\n" {
		t.Fatalf("got %q", got)
	}
}

func TestWriterIndentWidth(t *testing.T) {
	w := NewWriter(Options{IndentWidth: 2})
	w.IndentPush()
	w.WriteString("x\ny\n")
	if got := string(w.Bytes()); got != "  x\n  y\n" {
		t.Fatalf("got %q", got)
	}
}

func TestWriterSpaceAndNewline(t *testing.T) {
	w := NewWriter(Options{})
	w.Space()
	if w.Len() != 0 {
		t.Fatalf("Space on empty buffer wrote %q", w.Bytes())
	}
	w.WriteString("a")
	w.Space()
	w.Space()
	w.WriteString("b")
	w.Newline()
	w.Newline()
	w.Space()
	if got := string(w.Bytes()); got != "a b\n" {
		t.Fatalf("got %q", got)
	}
	if !w.AtLineStart() {
		t.Fatalf("expected writer at line start")
	}
}

func TestWriterEmptyFragment(t *testing.T) {
	w := NewWriter(Options{})
	w.IndentPush()
	w.WriteString("")
	if w.Len() != 0 || !w.AtLineStart() {
		t.Fatalf("empty fragment changed state: %q", w.Bytes())
	}
}

func TestWriterVerbatim(t *testing.T) {
	w := NewWriter(Options{})
	w.IndentPush()
	w.WriteVerbatim("r\"a\nb\"")
	want := "    r\"a\nb\""
	if got := string(w.Bytes()); got != want {
		t.Fatalf("want %q\ngot  %q", want, got)
	}
}

func TestIndentPopNeverNegative(t *testing.T) {
	w := NewWriter(Options{})
	w.IndentPop()
	if w.Depth() != 0 {
		t.Fatalf("depth = %d", w.Depth())
	}
	w.WriteString("x\n")
	if got := string(w.Bytes()); got != "x\n" {
		t.Fatalf("got %q", got)
	}
}
