package buffer

import (
	"fmt"
	"os"
	"strings"
	"unicode/utf8"
)

// Buffer holds the document as an ordered slice of lines. Lines are
// addressed by index only; editing shifts the indices of everything
// below the edit point. All column offsets are rune offsets, not byte
// offsets.
//
// A buffer with zero lines is a valid state and is not the same thing
// as a buffer holding one empty line.
type Buffer struct {
	Lines []string
	Path  string
	Dirty bool
}

func New() *Buffer {
	return &Buffer{}
}

// Load replaces the buffer content with raw split literally on '\n'.
// Text ending in a newline therefore keeps a trailing empty line,
// and Load("") yields a single empty line.
func (b *Buffer) Load(raw string) {
	b.Lines = strings.Split(raw, "\n")
	b.Dirty = false
}

// LoadFile reads path into the buffer. On failure the buffer is left
// empty and the error is returned for the caller to report; the
// editor keeps running with an empty document.
func (b *Buffer) LoadFile(path string) error {
	b.Lines = nil
	b.Path = path
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("open %s: %w", path, err)
	}
	b.Load(string(data))
	return nil
}

func (b *Buffer) LineCount() int {
	return len(b.Lines)
}

func (b *Buffer) IsEmpty() bool {
	return len(b.Lines) == 0
}

func (b *Buffer) Line(row int) string {
	b.checkRow(row)
	return b.Lines[row]
}

// LineLen returns the length of the line at row in runes, or 0 when
// the buffer is empty.
func (b *Buffer) LineLen(row int) int {
	if b.IsEmpty() {
		return 0
	}
	b.checkRow(row)
	return utf8.RuneCountInString(b.Lines[row])
}

// InsertChar inserts ch at rune offset col of the line at row.
// col == LineLen(row) appends. The row must exist: callers own cursor
// validity, so an out-of-range row is a bug, not an I/O condition.
func (b *Buffer) InsertChar(row, col int, ch rune) {
	b.checkRow(row)
	line := []rune(b.Lines[row])
	col = clampCol(col, len(line))
	out := make([]rune, 0, len(line)+1)
	out = append(out, line[:col]...)
	out = append(out, ch)
	out = append(out, line[col:]...)
	b.Lines[row] = string(out)
	b.Dirty = true
}

// DeleteChar removes the rune at offset col of the line at row.
// Deleting at or past the end of the line is a no-op.
func (b *Buffer) DeleteChar(row, col int) {
	b.checkRow(row)
	line := []rune(b.Lines[row])
	if col < 0 || col >= len(line) {
		return
	}
	b.Lines[row] = string(line[:col]) + string(line[col+1:])
	b.Dirty = true
}

// SplitLine splits the line at row into two at rune offset col. The
// left part stays at row, the right part becomes row+1. On an empty
// buffer it establishes content: two empty lines.
func (b *Buffer) SplitLine(row, col int) {
	if b.IsEmpty() {
		b.Lines = []string{"", ""}
		b.Dirty = true
		return
	}
	b.checkRow(row)
	line := []rune(b.Lines[row])
	col = clampCol(col, len(line))
	left, right := string(line[:col]), string(line[col:])
	b.Lines[row] = left
	b.InsertLine(row+1, right)
}

// MergeWithPrevious appends the line at row onto the line above it and
// removes row. It returns the rune length the previous line had before
// the merge, which is where the cursor lands. row must be >= 1.
func (b *Buffer) MergeWithPrevious(row int) int {
	b.checkRow(row)
	if row < 1 {
		panic("buffer: merge with previous at row 0")
	}
	prevLen := utf8.RuneCountInString(b.Lines[row-1])
	b.Lines[row-1] += b.Lines[row]
	b.RemoveLine(row)
	return prevLen
}

// InsertLine inserts text as a new line at row, shifting later lines
// down. row == LineCount appends.
func (b *Buffer) InsertLine(row int, text string) {
	if row < 0 || row > len(b.Lines) {
		panic(fmt.Sprintf("buffer: insert line %d of %d", row, len(b.Lines)))
	}
	b.Lines = append(b.Lines, "")
	copy(b.Lines[row+1:], b.Lines[row:])
	b.Lines[row] = text
	b.Dirty = true
}

// RemoveLine removes and returns the line at row.
func (b *Buffer) RemoveLine(row int) string {
	b.checkRow(row)
	line := b.Lines[row]
	b.Lines = append(b.Lines[:row], b.Lines[row+1:]...)
	b.Dirty = true
	return line
}

func (b *Buffer) checkRow(row int) {
	if row < 0 || row >= len(b.Lines) {
		panic(fmt.Sprintf("buffer: row %d out of range [0,%d)", row, len(b.Lines)))
	}
}

func clampCol(col, max int) int {
	if col < 0 {
		return 0
	}
	if col > max {
		return max
	}
	return col
}
