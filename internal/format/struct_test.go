package format

import (
	"testing"
)

func TestFormatStructs(t *testing.T) {
	tests := []struct {
		name string
		src  string
		want string
	}{
		{"unit", "struct MyStruct;", "struct MyStruct;\n"},
		{"pub unit", "pub   struct MyStruct ;", "pub struct MyStruct;\n"},
		{"empty body", "pub struct MyStruct { }", "pub struct MyStruct {\n}\n"},
		{
			"fields",
			"struct MyStruct { foo: Bar, baz: usize, wut: (A, u32), arr: [u8; 64], }",
			"struct MyStruct {\n    foo: Bar,\n    baz: usize,\n    wut: (A, u32),\n    arr: [u8; 64],\n}\n",
		},
		{
			"no trailing comma",
			"struct P { x: i32, y: i32 }",
			"struct P {\n    x: i32,\n    y: i32\n}\n",
		},
		{
			"generics",
			"struct MyStruct<T, U: One, V: Two<U>> { _p: (T, U, V), }",
			"struct MyStruct<T, U: One, V: Two<U>> {\n    _p: (T, U, V),\n}\n",
		},
		{
			"derive",
			"#[derive(Foo, Bar, Baz)] struct MyStruct { }",
			"#[derive(Foo, Bar, Baz)]\nstruct MyStruct {\n}\n",
		},
		{
			"field attributes and visibility",
			"pub(crate) struct S { #[serde(rename = \"b\")] pub a: Vec<u8>, pub(in crate::x) c: &'static str, }",
			"pub(crate) struct S {\n    #[serde(rename = \"b\")]\n    pub a: Vec<u8>,\n    pub(in crate::x) c: &'static str,\n}\n",
		},
		{
			"where clause",
			"struct W<T> where T: Clone + ?Sized, { t: T, }",
			"struct W<T>\nwhere\n    T: Clone + ?Sized,\n{\n    t: T,\n}\n",
		},
		{
			"bounds and defaults",
			"struct G<'a, 'b: 'a, T: 'a + Into<U> = u8> { r: &'a mut T, s: &'b [T], }",
			"struct G<'a, 'b: 'a, T: 'a + Into<U> = u8> {\n    r: &'a mut T,\n    s: &'b [T],\n}\n",
		},
		{
			"doc comment",
			"/// Hello\nstruct S;",
			"/// Hello\nstruct S;\n",
		},
		{
			"one element tuple type",
			"struct T { a: (u8,), b: (), }",
			"struct T {\n    a: (u8, ),\n    b: (),\n}\n",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			checkFormat(t, tt.src, tt.want)
		})
	}
}
