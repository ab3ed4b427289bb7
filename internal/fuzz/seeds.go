package fuzztests

import (
	"io/fs"
	"os"
	"path/filepath"
	"testing"
)

const maxSeedBytes = 64 << 10

var inlineSeeds = []string{
	"",
	"struct S;",
	"pub struct P<T: Clone> where T: Copy, { pub x: T, }",
	"impl<T> Foo<T> { fn new() -> Self { Foo { x: 0, ..d } } }",
	"mod m { #![allow(x)] use a::{b, c as d, e::*}; }",
	"fn f(&'a self, x: &mut [u8; 4]) -> (u8,) { match x { A | B if c => 1, _ => { 2 } } }",
	"fn g() { for i in xs { if i { m!(i, -1); } else { return; } } }",
	"/// Doc\n#[derive(Debug)]\nstruct D { a: Vec<Option<&'static str>>, }",
	"fn h() { let s = r#\"raw\"#; let t = \"\\u{7f}\\x41\"; let n = 0x2Au8; }",
}

func addCorpusSeeds(f *testing.F) {
	for _, s := range inlineSeeds {
		f.Add([]byte(s))
	}
	addTestdataSeeds(f)
}

func addTestdataSeeds(f *testing.F) {
	root := filepath.Join("..", "..", "testdata")
	if _, err := os.Stat(root); err != nil {
		return
	}
	_ = filepath.WalkDir(root, func(path string, d fs.DirEntry, walkErr error) error {
		if walkErr != nil || d.IsDir() || filepath.Ext(path) != ".rs" {
			return nil
		}
		// #nosec G304 -- path comes from repository testdata walk
		src, err := os.ReadFile(path)
		if err != nil {
			return nil
		}
		f.Add(clampSeed(src))
		return nil
	})
}

func clampSeed(src []byte) []byte {
	if len(src) <= maxSeedBytes {
		return append([]byte(nil), src...)
	}
	return append([]byte(nil), src[:maxSeedBytes]...)
}
