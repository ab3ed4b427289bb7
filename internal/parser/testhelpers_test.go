package parser

import (
	"fmt"
	"strings"
	"testing"

	"github.com/carllerche/minifmt/internal/ast"
	"github.com/carllerche/minifmt/internal/diag"
	"github.com/carllerche/minifmt/internal/lexer"
	"github.com/carllerche/minifmt/internal/source"
)

func diagnosticsSummary(bag *diag.Bag) string {
	if bag == nil {
		return "<nil bag>"
	}
	diags := bag.Items()
	if len(diags) == 0 {
		return "<none>"
	}
	lines := make([]string, len(diags))
	for i, d := range diags {
		lines[i] = fmt.Sprintf("[%s] %s", d.Code.ID(), d.Message)
	}
	return strings.Join(lines, "; ")
}

func parseSource(t *testing.T, input string) (*ast.File, *diag.Bag) {
	t.Helper()

	fs := source.NewFileSet()
	fileID := fs.AddVirtual("test.rs", []byte(input))
	file := fs.Get(fileID)

	bag := diag.NewBag(100)
	reporter := &diag.BagReporter{Bag: bag}
	lx := lexer.New(file, lexer.Options{Reporter: reporter})
	result := ParseFile(lx, Options{MaxErrors: 100, Reporter: reporter})
	return result.File, result.Bag
}

// mustParse fails the test on any diagnostic.
func mustParse(t *testing.T, input string) *ast.File {
	t.Helper()
	file, bag := parseSource(t, input)
	if bag.HasErrors() {
		t.Fatalf("unexpected diagnostics: %s", diagnosticsSummary(bag))
	}
	return file
}

// parseFnBody parses src as the body of a function and returns its
// statements.
func parseFnBody(t *testing.T, body string) []ast.Stmt {
	t.Helper()
	file := mustParse(t, "fn f() {\n"+body+"\n}\n")
	if len(file.Items) != 1 {
		t.Fatalf("expected 1 item, got %d", len(file.Items))
	}
	fn, ok := file.Items[0].(*ast.ItemFn)
	if !ok {
		t.Fatalf("expected *ast.ItemFn, got %T", file.Items[0])
	}
	return fn.Block.Stmts
}

// parseOneExpr parses src as a single expression statement.
func parseOneExpr(t *testing.T, src string) ast.Expr {
	t.Helper()
	stmts := parseFnBody(t, src)
	if len(stmts) != 1 {
		t.Fatalf("expected 1 statement, got %d", len(stmts))
	}
	switch s := stmts[0].(type) {
	case *ast.StmtExpr:
		return s.Expr
	case *ast.StmtSemi:
		return s.Expr
	default:
		t.Fatalf("expected expression statement, got %T", stmts[0])
		return nil
	}
}
