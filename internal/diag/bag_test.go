package diag_test

import (
	"strings"
	"testing"

	"sparkfmt/internal/diag"
	"sparkfmt/internal/source"
)

func span(start, end uint32) source.Span {
	return source.Span{File: 0, Start: start, End: end}
}

func TestBag_Limit(t *testing.T) {
	bag := diag.NewBag(2)
	if !bag.Add(diag.NewError(diag.LexUnknownChar, span(0, 1), "a")) {
		t.Fatal("first add refused")
	}
	if !bag.Add(diag.NewError(diag.LexUnknownChar, span(1, 2), "b")) {
		t.Fatal("second add refused")
	}
	if bag.Add(diag.NewError(diag.LexUnknownChar, span(2, 3), "c")) {
		t.Error("add past the limit must be refused")
	}
	if bag.Len() != 2 {
		t.Errorf("len: %d", bag.Len())
	}
	if bag.Cap() != 2 {
		t.Errorf("cap: %d", bag.Cap())
	}
}

func TestBag_Sort(t *testing.T) {
	bag := diag.NewBag(8)
	bag.Add(diag.NewError(diag.SynUnexpectedToken, span(10, 11), "later"))
	bag.Add(diag.NewError(diag.LexUnknownChar, span(2, 3), "earlier"))
	bag.Add(diag.New(diag.SevWarning, diag.LexInfo, span(2, 3), "warn at same spot"))
	bag.Sort()

	items := bag.Items()
	if items[0].Code != diag.LexUnknownChar {
		t.Errorf("first after sort: %s", items[0].Code)
	}
	// same span: the error sorts before the warning
	if items[1].Code != diag.LexInfo {
		t.Errorf("second after sort: %s", items[1].Code)
	}
	if items[2].Code != diag.SynUnexpectedToken {
		t.Errorf("third after sort: %s", items[2].Code)
	}
}

func TestBag_FirstError_SourceOrder(t *testing.T) {
	bag := diag.NewBag(8)
	bag.Add(diag.New(diag.SevWarning, diag.SynInfo, span(0, 1), "warn"))
	bag.Add(diag.NewError(diag.SynUnexpectedToken, span(10, 11), "later"))
	bag.Add(diag.NewError(diag.LexUnknownChar, span(4, 5), "earlier"))

	d, ok := bag.FirstError()
	if !ok {
		t.Fatal("expected an error")
	}
	if d.Code != diag.LexUnknownChar {
		t.Errorf("expected the earliest error, got %s at %d", d.Code, d.Primary.Start)
	}
}

func TestBag_FirstError_TieKeepsInsertionOrder(t *testing.T) {
	bag := diag.NewBag(8)
	bag.Add(diag.NewError(diag.LexUnterminatedString, span(5, 9), "lex"))
	bag.Add(diag.NewError(diag.SynTrailingInput, span(5, 9), "syn"))

	d, _ := bag.FirstError()
	if d.Code != diag.LexUnterminatedString {
		t.Errorf("same offset must keep the first inserted, got %s", d.Code)
	}
}

func TestBag_HasErrors(t *testing.T) {
	bag := diag.NewBag(8)
	bag.Add(diag.New(diag.SevWarning, diag.LexInfo, span(0, 1), "warn"))
	if bag.HasErrors() {
		t.Error("warnings are not errors")
	}
	bag.Add(diag.NewError(diag.SynExpectSelect, span(0, 1), "err"))
	if !bag.HasErrors() {
		t.Error("expected HasErrors after an error")
	}
}

func TestBag_Dedup(t *testing.T) {
	bag := diag.NewBag(8)
	d := diag.NewError(diag.SynUnexpectedToken, span(3, 4), "dup")
	bag.Add(d)
	bag.Add(d)
	bag.Add(diag.NewError(diag.SynUnexpectedToken, span(5, 6), "other"))
	bag.Dedup()
	if bag.Len() != 2 {
		t.Errorf("expected 2 after dedup, got %d", bag.Len())
	}
}

func TestCodeIDs(t *testing.T) {
	tests := []struct {
		code diag.Code
		id   string
	}{
		{diag.LexUnknownChar, "LEX0001"},
		{diag.LexUnterminatedString, "LEX0002"},
		{diag.SynUnclosedParen, "SYN0004"},
		{diag.SynExpectSelect, "SYN0006"},
		{diag.LimitRecursionDepth, "LIM0001"},
		{diag.AttachCommentOrphan, "ATT0001"},
	}
	for _, tt := range tests {
		if got := tt.code.ID(); got != tt.id {
			t.Errorf("%d: want %s, got %s", tt.code, tt.id, got)
		}
	}
	if !diag.LexUnknownChar.IsLex() || diag.LexUnknownChar.IsSyn() {
		t.Error("LexUnknownChar family")
	}
	if !diag.SynExpectSelect.IsSyn() {
		t.Error("SynExpectSelect family")
	}
}

func TestFormatDiagnostics(t *testing.T) {
	fs := source.NewFileSet()
	id := fs.AddVirtual("q.sql", []byte("select a\nfrom"))
	bag := diag.NewBag(8)
	bag.Add(diag.NewError(diag.SynExpectExpression, source.Span{File: id, Start: 9, End: 13}, "expected an expression"))
	bag.Add(diag.NewError(diag.LexUnknownChar, source.Span{File: id, Start: 0, End: 1}, "unknown character"))

	out := diag.FormatDiagnostics(bag.Items(), fs, false)
	lines := strings.Split(strings.TrimRight(out, "\n"), "\n")
	if len(lines) != 2 {
		t.Fatalf("expected 2 lines, got %q", out)
	}
	// sorted by position, not insertion
	if !strings.Contains(lines[0], "LEX0001 q.sql:1:1") {
		t.Errorf("first line: %q", lines[0])
	}
	if !strings.Contains(lines[1], "SYN0002 q.sql:2:1") {
		t.Errorf("second line: %q", lines[1])
	}
}
