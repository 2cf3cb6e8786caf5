package buffer

import (
	"os"
	"path/filepath"
	"reflect"
	"testing"
)

func TestLoadSplitsOnNewline(t *testing.T) {
	b := New()
	b.Load("a\nb\nc")
	if want := []string{"a", "b", "c"}; !reflect.DeepEqual(b.Lines, want) {
		t.Fatalf("expected %q, got %q", want, b.Lines)
	}
}

func TestLoadKeepsTrailingEmptyLine(t *testing.T) {
	b := New()
	b.Load("a\nb\n")
	if want := []string{"a", "b", ""}; !reflect.DeepEqual(b.Lines, want) {
		t.Fatalf("expected %q, got %q", want, b.Lines)
	}
}

func TestEmptyBufferDistinctFromEmptyLine(t *testing.T) {
	b := New()
	if !b.IsEmpty() || b.LineCount() != 0 {
		t.Fatalf("expected a fresh buffer to hold zero lines, got %d", b.LineCount())
	}
	b.Load("")
	if b.IsEmpty() || b.LineCount() != 1 {
		t.Fatalf("expected one empty line after Load(\"\"), got %d lines", b.LineCount())
	}
	if b.Line(0) != "" {
		t.Fatalf("expected empty line, got %q", b.Line(0))
	}
}

func TestLoadFileMissingLeavesBufferEmpty(t *testing.T) {
	b := New()
	b.Load("stale")
	err := b.LoadFile(filepath.Join(t.TempDir(), "nope.txt"))
	if err == nil {
		t.Fatalf("expected an error for a missing file")
	}
	if !b.IsEmpty() {
		t.Fatalf("expected empty buffer after failed load, got %q", b.Lines)
	}
}

func TestLoadFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "doc.txt")
	if err := os.WriteFile(path, []byte("one\ntwo\n"), 0644); err != nil {
		t.Fatal(err)
	}
	b := New()
	if err := b.LoadFile(path); err != nil {
		t.Fatalf("expected load to succeed, got %v", err)
	}
	if want := []string{"one", "two", ""}; !reflect.DeepEqual(b.Lines, want) {
		t.Fatalf("expected %q, got %q", want, b.Lines)
	}
	if b.Path != path {
		t.Fatalf("expected path %q, got %q", path, b.Path)
	}
}

func TestInsertChar(t *testing.T) {
	b := New()
	b.Load("hello")
	b.InsertChar(0, 5, 'X')
	if got := b.Line(0); got != "helloX" {
		t.Fatalf("expected helloX, got %q", got)
	}
	b.InsertChar(0, 0, '>')
	if got := b.Line(0); got != ">helloX" {
		t.Fatalf("expected >helloX, got %q", got)
	}
	if !b.Dirty {
		t.Fatalf("expected buffer to be dirty after insert")
	}
}

func TestInsertCharRuneOffsets(t *testing.T) {
	b := New()
	b.Load("héllo")
	b.InsertChar(0, 2, 'X')
	if got := b.Line(0); got != "héXllo" {
		t.Fatalf("expected héXllo, got %q", got)
	}
	if got := b.LineLen(0); got != 6 {
		t.Fatalf("expected rune length 6, got %d", got)
	}
}

func TestInsertCharOutOfRangePanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatalf("expected panic for insert into empty buffer")
		}
	}()
	New().InsertChar(0, 0, 'x')
}

func TestDeleteChar(t *testing.T) {
	b := New()
	b.Load("abc")
	b.DeleteChar(0, 1)
	if got := b.Line(0); got != "ac" {
		t.Fatalf("expected ac, got %q", got)
	}
	// Past end of line is a no-op.
	b.DeleteChar(0, 9)
	if got := b.Line(0); got != "ac" {
		t.Fatalf("expected ac, got %q", got)
	}
}

func TestSplitLine(t *testing.T) {
	b := New()
	b.Load("hello world")
	b.SplitLine(0, 5)
	if want := []string{"hello", " world"}; !reflect.DeepEqual(b.Lines, want) {
		t.Fatalf("expected %q, got %q", want, b.Lines)
	}
}

func TestSplitLineOnEmptyBufferCreatesTwoLines(t *testing.T) {
	b := New()
	b.SplitLine(0, 0)
	if want := []string{"", ""}; !reflect.DeepEqual(b.Lines, want) {
		t.Fatalf("expected two empty lines, got %q", b.Lines)
	}
}

func TestMergeWithPrevious(t *testing.T) {
	b := New()
	b.Load("foo\nbar")
	prevLen := b.MergeWithPrevious(1)
	if prevLen != 3 {
		t.Fatalf("expected merge offset 3, got %d", prevLen)
	}
	if want := []string{"foobar"}; !reflect.DeepEqual(b.Lines, want) {
		t.Fatalf("expected %q, got %q", want, b.Lines)
	}
}

func TestSplitMergeRoundTrip(t *testing.T) {
	const line = "round trip"
	for col := 0; col <= len(line); col++ {
		b := New()
		b.Load(line)
		b.SplitLine(0, col)
		if got := b.MergeWithPrevious(1); got != col {
			t.Fatalf("col %d: expected merge offset %d, got %d", col, col, got)
		}
		if b.LineCount() != 1 || b.Line(0) != line {
			t.Fatalf("col %d: expected %q restored, got %q", col, line, b.Lines)
		}
	}
}

func TestInsertAndRemoveLine(t *testing.T) {
	b := New()
	b.Load("a\nc")
	b.InsertLine(1, "b")
	if want := []string{"a", "b", "c"}; !reflect.DeepEqual(b.Lines, want) {
		t.Fatalf("expected %q, got %q", want, b.Lines)
	}
	if got := b.RemoveLine(1); got != "b" {
		t.Fatalf("expected removed line b, got %q", got)
	}
	if want := []string{"a", "c"}; !reflect.DeepEqual(b.Lines, want) {
		t.Fatalf("expected %q, got %q", want, b.Lines)
	}
}
