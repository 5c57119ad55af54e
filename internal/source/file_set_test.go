package source_test

import (
	"os"
	"path/filepath"
	"testing"

	"sparkfmt/internal/source"
)

func TestLoad_NormalizesCRLFAndBOM(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "q.sql")
	raw := append([]byte{0xEF, 0xBB, 0xBF}, []byte("select a\r\nfrom t\r\n")...)
	if err := os.WriteFile(path, raw, 0o644); err != nil {
		t.Fatal(err)
	}

	fs := source.NewFileSet()
	id, err := fs.Load(path)
	if err != nil {
		t.Fatal(err)
	}
	f := fs.Get(id)
	if string(f.Content) != "select a\nfrom t\n" {
		t.Errorf("content not normalized: %q", f.Content)
	}
	if f.Flags&source.FileHadBOM == 0 || f.Flags&source.FileNormalizedCRLF == 0 {
		t.Errorf("flags: %v", f.Flags)
	}
}

func TestResolve_LineCol(t *testing.T) {
	fs := source.NewFileSet()
	//                               0123456789 111111 111
	//                                          012345 678
	id := fs.AddVirtual("q.sql", []byte("select a\nfrom t\nwx"))
	f := fs.Get(id)

	tests := []struct {
		off  uint32
		line uint32
		col  uint32
	}{
		{0, 1, 1},   // 's'
		{7, 1, 8},   // 'a'
		{9, 2, 1},   // 'f'
		{14, 2, 6},  // 't'
		{16, 3, 1},  // 'w'
		{17, 3, 2},  // 'x'
	}
	for _, tt := range tests {
		start, _ := fs.Resolve(source.Span{File: id, Start: tt.off, End: tt.off + 1})
		if start.Line != tt.line || start.Col != tt.col {
			t.Errorf("offset %d: want %d:%d, got %d:%d", tt.off, tt.line, tt.col, start.Line, start.Col)
		}
		if got := f.LineOf(tt.off); got != tt.line {
			t.Errorf("LineOf(%d): want %d, got %d", tt.off, tt.line, got)
		}
	}
}

func TestResolve_SingleLine(t *testing.T) {
	fs := source.NewFileSet()
	id := fs.AddVirtual("q.sql", []byte("select a"))
	start, _ := fs.Resolve(source.Span{File: id, Start: 7, End: 8})
	if start.Line != 1 || start.Col != 8 {
		t.Errorf("got %d:%d", start.Line, start.Col)
	}
}

func TestGetByPath_Normalized(t *testing.T) {
	fs := source.NewFileSet()
	fs.AddVirtual("a/./b.sql", nil)
	if _, ok := fs.GetByPath("a/b.sql"); !ok {
		t.Error("expected lookup through the cleaned path")
	}
}

func TestHash_TracksContent(t *testing.T) {
	fs := source.NewFileSet()
	a := fs.Get(fs.AddVirtual("a.sql", []byte("select 1")))
	b := fs.Get(fs.AddVirtual("b.sql", []byte("select 2")))
	if a.Hash == b.Hash {
		t.Error("different content must hash differently")
	}
}
