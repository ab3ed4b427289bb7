package source

import "testing"

func TestFileSetAddVirtualNormalizes(t *testing.T) {
	fs := NewFileSet()
	id := fs.AddVirtual("a.rs", []byte("\xEF\xBB\xBFstruct A;\r\nstruct B;\r\n"))
	f := fs.Get(id)
	if got, want := string(f.Content), "struct A;\nstruct B;\n"; got != want {
		t.Fatalf("content: got %q, want %q", got, want)
	}
	if f.Flags&FileVirtual == 0 || f.Flags&FileHadBOM == 0 || f.Flags&FileNormalizedCRLF == 0 {
		t.Fatalf("unexpected flags %b", f.Flags)
	}
	if latest, ok := fs.GetLatest("./a.rs"); !ok || latest != id {
		t.Fatalf("GetLatest: got %d,%v", latest, ok)
	}
}

func TestResolve(t *testing.T) {
	fs := NewFileSet()
	id := fs.AddVirtual("a.rs", []byte("ab\ncd\n\nef"))
	tests := []struct {
		off  uint32
		want LineCol
	}{
		{0, LineCol{Line: 1, Col: 1}},
		{2, LineCol{Line: 1, Col: 3}},
		{3, LineCol{Line: 2, Col: 1}},
		{4, LineCol{Line: 2, Col: 2}},
		{6, LineCol{Line: 3, Col: 1}},
		{8, LineCol{Line: 4, Col: 2}},
	}
	for _, tt := range tests {
		start, _ := fs.Resolve(Span{File: id, Start: tt.off, End: tt.off})
		if start != tt.want {
			t.Errorf("offset %d: got %+v, want %+v", tt.off, start, tt.want)
		}
	}
}

func TestGetLine(t *testing.T) {
	fs := NewFileSet()
	f := fs.Get(fs.AddVirtual("a.rs", []byte("first\nsecond\n")))
	for line, want := range map[uint32]string{0: "", 1: "first", 2: "second", 3: "", 4: ""} {
		if got := f.GetLine(line); got != want {
			t.Errorf("GetLine(%d) = %q, want %q", line, got, want)
		}
	}
}
