package format

import (
	"testing"
)

// fnBody wraps stmts, already indented by one level, in a function.
func fnBody(stmts string) string {
	return "fn f() {\n" + stmts + "}\n"
}

func TestFormatStatements(t *testing.T) {
	tests := []struct {
		name string
		src  string
		want string
	}{
		{
			"let forms",
			"fn f() { let x; let (a, mut b): (u8, u8) = (1, 2); let ref y = x; }",
			fnBody("    let x;\n    let (a, mut b): (u8, u8) = (1, 2);\n    let ref y = x;\n"),
		},
		{
			"operators",
			"fn f() { let y = -a * !b + *c; x += (y - 1) / 2; }",
			fnBody("    let y = -a * !b + *c;\n    x += (y - 1) / 2;\n"),
		},
		{
			"calls and fields",
			"fn f() { a.b.c(1, 2,); self.len(); ::std::mem::drop(r); }",
			fnBody("    a.b.c(1, 2, );\n    self.len();\n    ::std::mem::drop(r);\n"),
		},
		{
			"references",
			"fn f() { let r = &mut v; let s = &&w; }",
			fnBody("    let r = &mut v;\n    let s = &&w;\n"),
		},
		{
			"tuples",
			"fn f() { let t = (a,); let u = (); let v = (a, b); }",
			fnBody("    let t = (a, );\n    let u = ();\n    let v = (a, b);\n"),
		},
		{
			"return",
			"fn f() { return; return x + 1; }",
			fnBody("    return;\n    return x + 1;\n"),
		},
		{
			"generic path",
			"fn f() { let v = Vec::<u8>::new(); }",
			fnBody("    let v = Vec::<u8>::new();\n"),
		},
		{
			"block statement",
			"fn f() { { a; } b }",
			fnBody("    {\n        a;\n    }\n    b\n"),
		},
		{
			"semicolon after block-like",
			"fn f() { match x {}; }",
			fnBody("    match x {\n    };\n"),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			checkFormat(t, tt.src, tt.want)
		})
	}
}

func TestFormatIfElse(t *testing.T) {
	src := "fn f() { if a { b(); } else if c { d() } else { e } }"
	want := fnBody("    if a {\n        b();\n    } else if c {\n        d()\n    } else {\n        e\n    }\n")
	checkFormat(t, src, want)
}

func TestFormatMatch(t *testing.T) {
	src := "fn f() { match x { | A | B => 1, C(y) if y => { z } _ => (), } }"
	want := fnBody("    match x {\n" +
		"        | A | B => 1,\n" +
		"        C(y) if y => {\n" +
		"            z\n" +
		"        }\n" +
		"        _ => (),\n" +
		"    }\n")
	checkFormat(t, src, want)
}

func TestFormatForLoop(t *testing.T) {
	src := "fn f() { for (i, x) in xs { total += x; } }"
	want := fnBody("    for (i, x) in xs {\n        total += x;\n    }\n")
	checkFormat(t, src, want)
}

func TestFormatStructLiteral(t *testing.T) {
	src := "fn f() -> P { P { x: 1, y, ..Default::default() } }"
	want := "fn f() -> P {\n" +
		"    P {\n" +
		"        x: 1,\n" +
		"        y,\n" +
		"        ..Default::default()\n" +
		"    }\n" +
		"}\n"
	checkFormat(t, src, want)
}

func TestFormatLiterals(t *testing.T) {
	tests := []struct {
		src  string
		want string
	}{
		{"42u32", "42u32"},
		{"42", "42"},
		{"0x2Au8", "42u8"},
		{"1_000", "1000"},
		{"340282366920938463463374607431768211455u128", "340282366920938463463374607431768211455u128"},
		{"0xffff_ffff_ffff_ffff_ffffi128", "1208925819614629174706175i128"},
		{"true", "true"},
		{"false", "false"},
		{`"plain"`, `"plain"`},
		{`"a\"b\n"`, `"a\"b\n"`},
		{`"tab\there"`, `"tab\there"`},
		{`"\x41\u{7f}"`, `"A\u{7f}"`},
		{`"h\u{e9}llo"`, `"héllo"`},
		{`r#"raw "q""#`, `"raw \"q\""`},
	}

	for _, tt := range tests {
		t.Run(tt.src, func(t *testing.T) {
			checkFormat(t, "fn f() { x = "+tt.src+"; }", fnBody("    x = "+tt.want+";\n"))
		})
	}
}

func TestFormatMacros(t *testing.T) {
	tests := []struct {
		name string
		src  string
		want string
	}{
		{"empty", "panic!()", "panic!()"},
		{"call args", `println!("{}: {}", a, foo(b))`, `println!("{}: {}", a, foo(b))`},
		{"brackets", "vec![1, 2, 3]", "vec![1, 2, 3]"},
		{"unary", "assert!(!done && -x < &y)", "assert!(!done && -x < &y)"},
		{"binary minus", "m!(a - b, *c, a * b)", "m!(a - b, *c, a * b)"},
		{"paths and methods", "m!(std::mem::take(&mut self.v).len()?)", "m!(std::mem::take(&mut self.v).len()?)"},
		{"nested macro", `m!(format!("x"), [1])`, `m!(format!("x"), [1])`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			checkFormat(t, "fn f() { "+tt.src+"; }", fnBody("    "+tt.want+";\n"))
		})
	}
}

func TestFormatBraceMacro(t *testing.T) {
	src := "fn f() { m! { a => b } }"
	want := fnBody("    m! {\n        a => b\n    }\n")
	checkFormat(t, src, want)
}

func TestFormatFreeFunctions(t *testing.T) {
	src := "pub async fn run(a: u8) {} unsafe fn raw() -> *const u8 { p }"
	out, err := FormatFile(parseSource(t, src), Options{})
	if err == nil {
		t.Fatalf("expected pointer return type to be rejected, got %q", out)
	}

	checkFormat(t, "pub async fn run(a: u8) {} unsafe fn raw() -> usize { p }",
		"pub async fn run(a: u8) {\n}\nunsafe fn raw() -> usize {\n    p\n}\n")
}
