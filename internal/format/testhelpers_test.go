package format

import (
	"fmt"
	"testing"

	"github.com/carllerche/minifmt/internal/ast"
	"github.com/carllerche/minifmt/internal/parser"
	"github.com/carllerche/minifmt/internal/source"
	"github.com/carllerche/minifmt/internal/testkit"
)

func parseSource(t *testing.T, src string) *ast.File {
	t.Helper()

	res, _ := parser.ParseSource(source.NewFileSet(), "fmt.rs", []byte(src), 128)
	if res.Bag.HasErrors() {
		issues := make([]string, 0, res.Bag.Len())
		for _, d := range res.Bag.Items() {
			issues = append(issues, fmt.Sprintf("%s: %s", d.Code, d.Message))
		}
		t.Fatalf("parse failed: %v", issues)
	}
	return res.File
}

func formatString(t *testing.T, src string) string {
	t.Helper()

	out, err := FormatFile(parseSource(t, src), Options{})
	if err != nil {
		t.Fatalf("format failed: %v", err)
	}
	if err := testkit.CheckOutputInvariants(out, 4); err != nil {
		t.Fatalf("output invariants: %v\n%s", err, out)
	}
	return string(out)
}

// checkFormat formats src and compares the result with want. The output is
// formatted a second time to make sure it is stable.
func checkFormat(t *testing.T, src, want string) {
	t.Helper()

	got := formatString(t, src)
	if got != want {
		t.Fatalf("format mismatch:\nwant %q\ngot  %q", want, got)
	}
	if again := formatString(t, got); again != got {
		t.Fatalf("format is not stable:\nfirst  %q\nsecond %q", got, again)
	}
}

// checkCanonical asserts that src is already in canonical form.
func checkCanonical(t *testing.T, src string) {
	t.Helper()
	checkFormat(t, src, src)
}
