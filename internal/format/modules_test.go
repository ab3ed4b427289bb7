package format

import (
	"testing"
)

func TestFormatModules(t *testing.T) {
	tests := []struct {
		name string
		src  string
		want string
	}{
		{"external", "mod my_module;", "mod my_module;\n"},
		{"pub external", "pub mod my_module;", "pub mod my_module;\n"},
		{"empty inline", "pub mod my_module { }", "pub mod my_module {\n}\n"},
		{"use", "mod my_module { use std::io; }", "mod my_module {\n    use std::io;\n}\n"},
		{
			"attributed use",
			"mod my_module { #[foo] #[bar = \"baz\"] use std::io; }",
			"mod my_module {\n    #[foo]\n    #[bar = \"baz\"]\n    use std::io;\n}\n",
		},
		{"pub use", "mod my_module { pub use std::io; }", "mod my_module {\n    pub use std::io;\n}\n"},
		{
			"inner attributes",
			"#[cfg(test)] mod tests { #![allow(dead_code)] //! Tests.\n use super::*; }",
			"#[cfg(test)]\nmod tests {\n    #![allow(dead_code)]\n    //! Tests.\n    use super::*;\n}\n",
		},
		{
			"nested",
			"mod a { mod b { struct C; } }",
			"mod a {\n    mod b {\n        struct C;\n    }\n}\n",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			checkFormat(t, tt.src, tt.want)
		})
	}
}

func TestFormatUseTrees(t *testing.T) {
	tests := []struct {
		src  string
		want string
	}{
		{"use std::io;", "use std::io;\n"},
		{"use ::std::io;", "use ::std::io;\n"},
		{"use std::io::*;", "use std::io::*;\n"},
		{"use a::{b, c::d as e, f::*};", "use a::{b, c::d as e, f::*};\n"},
		{"use a::{b, c,};", "use a::{b, c, };\n"},
		{"use a::b as _;", "use a::b as _;\n"},
		{"pub(crate) use self::x;", "pub(crate) use self::x;\n"},
	}

	for _, tt := range tests {
		t.Run(tt.src, func(t *testing.T) {
			checkFormat(t, tt.src, tt.want)
		})
	}
}

func TestFormatFileAttributes(t *testing.T) {
	checkFormat(t, "#![recursion_limit = \"1024\"]\nuse a;", "#![recursion_limit = \"1024\"]\nuse a;\n")
}
