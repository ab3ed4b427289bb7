package parser

import (
	"testing"

	"github.com/carllerche/minifmt/internal/ast"
)

// parseFieldType parses `struct S { f: <ty> }` and returns the field type.
func parseFieldType(t *testing.T, ty string) ast.Type {
	t.Helper()
	file := mustParse(t, "struct S { f: "+ty+" }")
	return file.Items[0].(*ast.ItemStruct).Fields.List.Pairs[0].Value.Ty
}

func TestParseTypes(t *testing.T) {
	tests := []struct {
		input string
		check func(ast.Type) bool
	}{
		{"u8", func(ty ast.Type) bool { p, ok := ty.(*ast.TypePath); return ok && p.Path.IsIdent("u8") }},
		{"&'a mut T", func(ty ast.Type) bool {
			r, ok := ty.(*ast.TypeReference)
			return ok && r.Mut && r.Lifetime != nil && r.Lifetime.Name == "a"
		}},
		{"[u8; 4]", func(ty ast.Type) bool { _, ok := ty.(*ast.TypeArray); return ok }},
		{"[u8]", func(ty ast.Type) bool { _, ok := ty.(*ast.TypeSlice); return ok }},
		{"(A, B)", func(ty ast.Type) bool { tt, ok := ty.(*ast.TypeTuple); return ok && tt.Elems.Len() == 2 }},
		{"(A,)", func(ty ast.Type) bool { tt, ok := ty.(*ast.TypeTuple); return ok && tt.Elems.Trailing() }},
		{"()", func(ty ast.Type) bool { tt, ok := ty.(*ast.TypeTuple); return ok && tt.Elems.Empty() }},
		{"(A)", func(ty ast.Type) bool { _, ok := ty.(*ast.TypeParen); return ok }},
		{"*const u8", func(ty ast.Type) bool { p, ok := ty.(*ast.TypePtr); return ok && !p.Mut }},
		{"!", func(ty ast.Type) bool { _, ok := ty.(*ast.TypeNever); return ok }},
		{"Box<dyn Fn(u8) -> u8 + Send>", func(ty ast.Type) bool {
			p, ok := ty.(*ast.TypePath)
			if !ok {
				return false
			}
			args, ok := p.Path.Segments.Pairs[0].Value.Args.(*ast.AngleBracketedArgs)
			if !ok || args.Args.Len() != 1 {
				return false
			}
			obj, ok := args.Args.Pairs[0].Value.(*ast.ArgType).Ty.(*ast.TypeTraitObject)
			return ok && obj.Dyn && obj.Bounds.Len() == 2
		}},
		{"Vec<Vec<u8>>", func(ty ast.Type) bool {
			p, ok := ty.(*ast.TypePath)
			return ok && p.Path.Segments.Pairs[0].Value.Args != nil
		}},
		{"<T as Trait>::Item", func(ty ast.Type) bool {
			p, ok := ty.(*ast.TypePath)
			return ok && p.QSelf != nil && p.QSelf.Position == 1 && p.Path.Segments.Len() == 2
		}},
		{"::std::vec::Vec<u8>", func(ty ast.Type) bool {
			p, ok := ty.(*ast.TypePath)
			return ok && p.Path.LeadingColon && p.Path.Segments.Len() == 3
		}},
	}
	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			ty := parseFieldType(t, tt.input)
			if !tt.check(ty) {
				t.Errorf("unexpected type %#v", ty)
			}
		})
	}
}

func TestParsePatterns(t *testing.T) {
	tests := []struct {
		input string
		check func(ast.Pat) bool
	}{
		{"ref mut x", func(p ast.Pat) bool { i, ok := p.(*ast.PatIdent); return ok && i.ByRef && i.Mut }},
		{"_", func(p ast.Pat) bool { _, ok := p.(*ast.PatWild); return ok }},
		{"(a, .., z)", func(p ast.Pat) bool { tp, ok := p.(*ast.PatTuple); return ok && tp.Rest && tp.RestIndex == 1 }},
		{"Foo::Bar", func(p ast.Pat) bool { _, ok := p.(*ast.PatPath); return ok }},
		{"Point { x, y: 0, .. }", func(p ast.Pat) bool { s, ok := p.(*ast.PatStruct); return ok && s.Dot2 && s.Fields.Len() == 2 }},
		{"1..=9", func(p ast.Pat) bool { r, ok := p.(*ast.PatRange); return ok && r.Limits == ast.RangeClosed }},
		{"-1", func(p ast.Pat) bool { _, ok := p.(*ast.PatLit); return ok }},
		{"&(a, b)", func(p ast.Pat) bool { _, ok := p.(*ast.PatRef); return ok }},
		{"x @ Some(_)", func(p ast.Pat) bool { i, ok := p.(*ast.PatIdent); return ok && i.Subpat != nil }},
	}
	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			e := parseOneExpr(t, "match v { "+tt.input+" => (), }")
			arm := e.(*ast.ExprMatch).Arms[0]
			if !tt.check(arm.Pats.Pairs[0].Value) {
				t.Errorf("unexpected pattern %#v", arm.Pats.Pairs[0].Value)
			}
		})
	}
}
