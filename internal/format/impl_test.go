package format

import (
	"testing"
)

func TestFormatEmptyImpl(t *testing.T) {
	checkFormat(t, "impl MyStruct { }", "impl MyStruct {\n}\n")
}

func TestFormatImplAttributes(t *testing.T) {
	checkFormat(t, "#[foo] impl MyStruct { #![bar] }", "#[foo]\nimpl MyStruct {\n    #![bar]\n}\n")
}

func TestFormatFnInnerAttributes(t *testing.T) {
	checkFormat(t,
		"#[inline] fn f() { #![allow(unused)] let x = 1; }",
		"#[inline]\nfn f() {\n    #![allow(unused)]\n    let x = 1;\n}\n")
	checkFormat(t,
		"impl S { fn m(&self) { #![allow(x)] } }",
		"impl S {\n    fn m(&self) {\n        #![allow(x)]\n    }\n}\n")
}

func TestFormatInitTupleStruct(t *testing.T) {
	src := `impl Foo { fn new() -> Self { Foo(1, "two", foo(), 2 + 3) } }`
	want := "impl Foo {\n    fn new() -> Self {\n        Foo(1, \"two\", foo(), 2 + 3)\n    }\n}\n"
	checkFormat(t, src, want)
}

func TestFormatImplMethodSpacing(t *testing.T) {
	src := "impl S { fn a(&self) {} fn b(&mut self) -> u32 { 1 } }"
	want := "impl S {\n    fn a(&self) {\n    }\n\n    fn b(&mut self) -> u32 {\n        1\n    }\n}\n"
	checkFormat(t, src, want)
}

func TestFormatImplGenericsAndWhere(t *testing.T) {
	src := "unsafe impl<T> Wrapper<T> where T: Send { pub fn get<'a>(&'a self, mut n: usize) -> &'a T where T: Sync { n } }"
	want := "unsafe impl<T> Wrapper<T>\n" +
		"where\n" +
		"    T: Send\n" +
		"{\n" +
		"    pub fn get<'a>(&'a self, mut n: usize) -> &'a T\n" +
		"    where\n" +
		"        T: Sync\n" +
		"    {\n" +
		"        n\n" +
		"    }\n" +
		"}\n"
	checkFormat(t, src, want)
}

func TestFormatBasicFunctions(t *testing.T) {
	src := `impl MyStruct {
    fn new() -> FormatFile {
        FormatFile {
            out: "".to_string(),
            indent: 0,
        }
    }

    fn visit_attributes(&mut self, i: &[syn::Attribute]) {
        for attr in i {
            self.visit_attribute(attr);
        }
    }

    fn visit_inner_attributes(&mut self, i: &[syn::Attribute]) {
        for attr in i {
            if is_inner_attr(attr) {
                self.visit_attribute(attr);
            }
        }
    }

    fn visit_outer_attributes(&mut self, i: &[syn::Attribute]) {
        for attr in i {
            if !is_inner_attr(attr) {
                self.visit_attribute(attr);
            }
        }
    }

    fn visit_doc_attribute(&mut self, i: &syn::Attribute) {
        use syn::Meta::*;
        use syn::Lit::*;

        let meta = i.parse_meta().unwrap();
        match meta {
            NameValue(name_value) => {
                match name_value.lit {
                    Str(s) => {
                        self.visit_doc_comment(is_inner_attr(i), &s.value());
                    }
                    _ => panic!(),
                }
            }
            _ => panic!(),
        }
    }
}
`
	checkCanonical(t, src)
}

func TestFormatNestedItemSeparation(t *testing.T) {
	src := "fn f() { use a::b; struct L; let x = 1; x }"
	want := "fn f() {\n    use a::b;\n    struct L;\n\n    let x = 1;\n    x\n}\n"
	checkFormat(t, src, want)
}
