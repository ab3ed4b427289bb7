package diag

import (
	"testing"

	"github.com/carllerche/minifmt/internal/source"
)

func TestBagLimit(t *testing.T) {
	b := NewBag(2)
	for i := 0; i < 3; i++ {
		ok := b.Add(NewError(SynUnexpectedToken, source.Span{Start: uint32(i)}, "x"))
		if want := i < 2; ok != want {
			t.Fatalf("Add #%d = %v, want %v", i, ok, want)
		}
	}
	if b.Len() != 2 {
		t.Fatalf("Len = %d", b.Len())
	}
}

func TestBagSortAndDedup(t *testing.T) {
	b := NewBag(10)
	b.Add(New(SevWarning, SynExpectSemicolon, source.Span{Start: 5, End: 6}, "w"))
	b.Add(NewError(SynUnexpectedToken, source.Span{Start: 1, End: 2}, "e"))
	b.Add(NewError(SynUnexpectedToken, source.Span{Start: 1, End: 2}, "e again"))
	b.Sort()
	b.Dedup()
	items := b.Items()
	if len(items) != 2 {
		t.Fatalf("got %d diagnostics, want 2", len(items))
	}
	if items[0].Primary.Start != 1 || items[1].Primary.Start != 5 {
		t.Fatalf("unexpected order: %+v", items)
	}
	if !b.HasErrors() || !b.HasWarnings() {
		t.Fatalf("expected errors and warnings")
	}
}

func TestDedupReporter(t *testing.T) {
	bag := NewBag(10)
	r := NewDedupReporter(BagReporter{Bag: bag})
	sp := source.Span{Start: 3, End: 4}
	ReportError(r, LexUnknownChar, sp, "unknown character").Emit()
	ReportError(r, LexUnknownChar, sp, "unknown character").Emit()
	ReportWarning(r, LexUnknownChar, sp, "unknown character").Emit()
	if bag.Len() != 2 {
		t.Fatalf("Len = %d, want 2", bag.Len())
	}
}

func TestCodeID(t *testing.T) {
	tests := []struct {
		code Code
		want string
	}{
		{LexBadNumber, "LEX1004"},
		{SynUnexpectedToken, "SYN2001"},
		{FmtUnsupported, "FMT3000"},
		{IOLoadFileError, "IO4001"},
		{UnknownCode, "E0000"},
	}
	for _, tt := range tests {
		if got := tt.code.ID(); got != tt.want {
			t.Errorf("%d.ID() = %q, want %q", tt.code, got, tt.want)
		}
	}
}
