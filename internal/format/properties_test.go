package format

import (
	"errors"
	"strings"
	"testing"

	"github.com/carllerche/minifmt/internal/ast"
	"github.com/carllerche/minifmt/internal/source"
)

func TestUnsupportedConstructs(t *testing.T) {
	tests := []struct {
		name string
		src  string
	}{
		{"tuple struct", "struct T(u8);"},
		{"trait impl", "impl Display for S {}"},
		{"default impl", "default impl S {}"},
		{"const item", "const X: u8 = 1;"},
		{"item macro", "macro_rules! m { () => {} }"},
		{"impl const", "impl S { const A: u8 = 1; }"},
		{"const fn", "const fn f() {}"},
		{"extern fn", "extern \"C\" fn f() {}"},
		{"const param", "fn f<const N: usize>() {}"},
		{"cast", "fn f() { x as u8; }"},
		{"index", "fn f() { a[0]; }"},
		{"tuple index", "fn f() { t.0; }"},
		{"try", "fn f() { x?; }"},
		{"loop", "fn f() { loop {} }"},
		{"while", "fn f() { while a {} }"},
		{"labeled for", "fn f() { 'a: for x in y {} }"},
		{"turbofish method", "fn f() { x.m::<u8>(); }"},
		{"float", "fn f() { 1.5; }"},
		{"char", "fn f() { 'c'; }"},
		{"sub-pattern", "fn f() { let x @ Some(_) = y; }"},
		{"rest pattern", "fn f() { let (a, ..) = t; }"},
		{"reference pattern", "fn f() { let &x = y; }"},
		{"raw pointer", "struct S { a: *const u8, }"},
		{"impl trait type", "struct S { a: impl Tr, }"},
		{"bare fn type", "struct S { a: fn(u8), }"},
		{"qualified type", "struct S { a: <T as Tr>::X, }"},
		{"doc inside macro", "fn f() { m!(/// doc\n x); }"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out, err := FormatFile(parseSource(t, tt.src), Options{})
			if !errors.Is(err, ErrFormat) {
				t.Fatalf("want ErrFormat, got %v", err)
			}
			if out != nil {
				t.Fatalf("partial output returned: %q", out)
			}
		})
	}
}

func TestIndentRestoredOnAbort(t *testing.T) {
	p := &printer{w: NewWriter(Options{}), opt: Options{}.withDefaults()}
	func() {
		defer func() { _ = recover() }()
		p.indent(func() {
			p.indent(func() { unsupported("boom") })
		})
	}()
	if d := p.w.Depth(); d != 0 {
		t.Fatalf("depth after abort = %d", d)
	}
}

func TestForeignPanicPropagates(t *testing.T) {
	defer func() {
		if r := recover(); r != "boom" {
			t.Fatalf("want re-raised panic %q, got %v", "boom", r)
		}
	}()
	_, _ = run(Options{}, func(*printer) { panic("boom") })
	t.Fatalf("run returned normally")
}

func TestFormatItemScenarios(t *testing.T) {
	u8 := &ast.TypePath{Path: ast.NewPath("u8")}
	tests := []struct {
		name string
		item ast.Item
		want string
	}{
		{
			"unit struct",
			&ast.ItemStruct{Ident: "Name", Fields: ast.Fields{Kind: ast.FieldsUnit}},
			"struct Name;\n",
		},
		{
			"empty body",
			&ast.ItemStruct{Ident: "Name", Fields: ast.Fields{Kind: ast.FieldsNamed}},
			"struct Name {\n}\n",
		},
		{
			"suffixed literal",
			&ast.ItemStruct{
				Ident: "S",
				Fields: ast.Fields{Kind: ast.FieldsNamed, List: ast.NewPunctuated(ast.PunctComma, true,
					&ast.Field{Ident: "a", Colon: true, Ty: &ast.TypeArray{Elem: u8, Len: &ast.ExprLit{Lit: ast.NewLitInt(42, ast.SuffixU32)}}},
					&ast.Field{Ident: "b", Colon: true, Ty: &ast.TypeArray{Elem: u8, Len: &ast.ExprLit{Lit: ast.NewLitInt(42, ast.SuffixNone)}}},
				)},
			},
			"struct S {\n    a: [u8; 42u32],\n    b: [u8; 42],\n}\n",
		},
		{
			"doc comment",
			&ast.ItemStruct{
				Attrs:  []*ast.Attribute{ast.NewDoc(ast.AttrOuter, " Hello")},
				Ident:  "S",
				Fields: ast.Fields{Kind: ast.FieldsUnit},
			},
			"/// Hello\nstruct S;\n",
		},
		{
			"multi-line doc keeps brackets",
			&ast.ItemStruct{
				Attrs:  []*ast.Attribute{ast.NewDoc(ast.AttrOuter, "a\nb")},
				Ident:  "S",
				Fields: ast.Fields{Kind: ast.FieldsUnit},
			},
			"#[doc = \"a\\nb\"]\nstruct S;\n",
		},
		{
			"mod with use",
			&ast.ItemMod{Ident: "name", Inline: true, Items: []ast.Item{
				&ast.ItemUse{Tree: &ast.UsePath{Ident: "a", Tree: &ast.UseName{Ident: "b"}}},
			}},
			"mod name {\n    use a::b;\n}\n",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out, err := FormatItem(tt.item, Options{})
			if err != nil {
				t.Fatalf("FormatItem: %v", err)
			}
			if got := string(out); got != tt.want {
				t.Fatalf("want %q\ngot  %q", tt.want, got)
			}
		})
	}
}

func TestFormatItemRejectsBadTypeParam(t *testing.T) {
	item := &ast.ItemStruct{
		Ident: "S",
		Generics: ast.Generics{Params: ast.NewPunctuated[ast.GenericParam](ast.PunctComma, false,
			&ast.TypeParam{Ident: "T", Bounds: ast.NewPunctuated[ast.TypeParamBound](ast.PunctPlus, false,
				&ast.TraitBound{Path: ast.NewPath("Clone")})},
		)},
		Fields: ast.Fields{Kind: ast.FieldsUnit},
	}
	if _, err := FormatItem(item, Options{}); !errors.Is(err, ErrFormat) {
		t.Fatalf("want ErrFormat for bounds without a colon, got %v", err)
	}
}

func TestEmptyFile(t *testing.T) {
	out, err := FormatFile(&ast.File{}, Options{})
	if err != nil {
		t.Fatalf("FormatFile: %v", err)
	}
	if len(out) != 0 {
		t.Fatalf("want empty output, got %q", out)
	}
	if _, err := FormatFile(nil, Options{}); !errors.Is(err, ErrFormat) {
		t.Fatalf("want ErrFormat for nil file, got %v", err)
	}
}

func TestFormatTabs(t *testing.T) {
	out, err := FormatFile(parseSource(t, "mod a { struct B; }"), Options{UseTabs: true})
	if err != nil {
		t.Fatalf("FormatFile: %v", err)
	}
	if got, want := string(out), "mod a {\n\tstruct B;\n}\n"; got != want {
		t.Fatalf("want %q\ngot  %q", want, got)
	}
}

func addVirtual(name, src string) *source.File {
	fs := source.NewFileSet()
	return fs.Get(fs.AddVirtual(name, []byte(src)))
}

func TestFormatSourceParseError(t *testing.T) {
	_, err := FormatSource(addVirtual("bad.rs", "struct {"), Options{})
	if !errors.Is(err, ErrFormat) {
		t.Fatalf("want ErrFormat, got %v", err)
	}
	var perr *ParseError
	if !errors.As(err, &perr) {
		t.Fatalf("want *ParseError, got %T", err)
	}
	if perr.Bag.Len() == 0 || perr.Path != "bad.rs" {
		t.Fatalf("unexpected parse error: %+v", perr)
	}
}

func TestCheckRoundTrip(t *testing.T) {
	src := "#[derive(Debug)] pub struct P<T: Clone> { x: T, y: Vec<T> }\n" +
		"impl<T: Clone> P<T> { fn sum(&self) -> T { let a = self.x.clone(); match a { v => v, } } }\n" +
		"mod m { use super::P; fn f() { println!(\"{}\", 1); } }\n"
	ok, msg := CheckRoundTrip(addVirtual("rt.rs", src), Options{}, 64)
	if !ok {
		t.Fatalf("round trip failed: %s", msg)
	}

	ok, msg = CheckRoundTrip(addVirtual("bad.rs", "struct T(u8);"), Options{}, 64)
	if ok || !strings.HasPrefix(msg, "fmt-check: formatter failed") {
		t.Fatalf("want formatter failure, got ok=%v msg=%q", ok, msg)
	}
}
