package diagfmt

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/carllerche/minifmt/internal/diag"
	"github.com/carllerche/minifmt/internal/source"
)

func TestJSONBasic(t *testing.T) {
	fs, bag := singleDiag(t, "dir/test.rs", "fn main() {\n    let x = \"unterminated\n}",
		diag.SevError, diag.LexUnterminatedString, 24, 37, "unterminated string literal")

	var buf bytes.Buffer
	opts := JSONOpts{
		IncludePositions: true,
		PathMode:         PathModeBasename,
		IncludeNotes:     true,
	}
	if err := JSON(&buf, bag, fs, opts); err != nil {
		t.Fatalf("JSON() error: %v", err)
	}

	var output DiagnosticsOutput
	if err := json.Unmarshal(buf.Bytes(), &output); err != nil {
		t.Fatalf("Invalid JSON output: %v\nOutput: %s", err, buf.String())
	}
	if output.Count != 1 || len(output.Diagnostics) != 1 {
		t.Fatalf("Expected 1 diagnostic, got %+v", output)
	}

	d := output.Diagnostics[0]
	if d.Severity != "ERROR" || d.Code != "LEX1002" {
		t.Errorf("unexpected severity/code: %s %s", d.Severity, d.Code)
	}
	if d.Location.File != "test.rs" {
		t.Errorf("Expected file=test.rs, got %s", d.Location.File)
	}
	if d.Location.StartLine != 2 || d.Location.StartCol != 13 {
		t.Errorf("Expected 2:13, got %d:%d", d.Location.StartLine, d.Location.StartCol)
	}
}

func TestJSONMax(t *testing.T) {
	fs := source.NewFileSet()
	fileID := fs.AddVirtual("m.rs", []byte("x y z\n"))
	bag := diag.NewBag(10)
	for i := range uint32(3) {
		bag.Add(diag.NewError(diag.SynExpectItem, source.Span{File: fileID, Start: i * 2, End: i*2 + 1}, "expected item"))
	}

	out := BuildDiagnosticsOutput(bag, fs, JSONOpts{Max: 2})
	if out.Count != 2 {
		t.Fatalf("Expected count=2, got %d", out.Count)
	}
	if out.Diagnostics[0].Location.StartLine != 0 {
		t.Fatalf("positions must be omitted unless requested")
	}
}
