package editor

import (
	"ked/buffer"
	"ked/config"
)

// View owns the cursor and the visible window over the buffer. The
// window is ScrollX/ScrollY (buffer coordinates of the top-left cell)
// plus Width/Height in cells. After any cursor-moving call the cursor
// is inside the window; scrolling moves only as far as needed to make
// that true, it never re-centers.
type View struct {
	Cursor   buffer.Cursor
	ScrollX  int
	ScrollY  int
	Width    int
	Height   int
	PageJump string
}

func NewView(cfg *config.Config) *View {
	return &View{PageJump: cfg.PageJump}
}

// SetCursor is the single movement primitive; every cursor command
// routes through it. The target is clamped to the buffer, then the
// window is scrolled to keep the cursor visible. Returns false when
// the clamped target is where the cursor already is, which tells the
// caller no redraw is needed.
func (v *View) SetCursor(buf *buffer.Buffer, col, row int) bool {
	maxRow := buf.LineCount() - 1
	if maxRow < 0 {
		maxRow = 0
	}
	row = clamp(row, 0, maxRow)
	col = clamp(col, 0, buf.LineLen(row))

	target := buffer.Cursor{Line: row, Col: col}
	if target.Equal(v.Cursor) {
		return false
	}
	v.Cursor = target
	v.scrollToCursor()
	return true
}

// OffsetCursor moves the cursor by signed deltas through SetCursor.
// Column is clamped to the destination line, so moving through a
// short line loses the original column.
func (v *View) OffsetCursor(buf *buffer.Buffer, dx, dy int) bool {
	return v.SetCursor(buf, v.Cursor.Col+dx, v.Cursor.Line+dy)
}

// PageDelta returns the row delta for one page movement in the given
// direction (+1 down, -1 up) under the configured policy.
func (v *View) PageDelta(dir int) int {
	if dir > 0 {
		return v.Height - 1
	}
	if v.PageJump == config.PageJumpOverlap {
		return -(v.Height - 1)
	}
	// Historical behavior: page-up overshoots by two rows.
	return -v.Height - 2
}

// Resize sets the window size and restores cursor visibility.
func (v *View) Resize(w, h int) {
	if w < 1 {
		w = 1
	}
	if h < 1 {
		h = 1
	}
	v.Width = w
	v.Height = h
	v.scrollToCursor()
}

func (v *View) scrollToCursor() {
	if v.Width == 0 || v.Height == 0 {
		return
	}
	if v.Cursor.Line > v.ScrollY+v.Height-1 {
		v.ScrollY = v.Cursor.Line - v.Height + 1
	} else if v.Cursor.Line < v.ScrollY {
		v.ScrollY = v.Cursor.Line
	}
	if v.Cursor.Col > v.ScrollX+v.Width-1 {
		v.ScrollX = v.Cursor.Col - v.Width + 1
	} else if v.Cursor.Col < v.ScrollX {
		v.ScrollX = v.Cursor.Col
	}
}

func clamp(n, lo, hi int) int {
	if n < lo {
		return lo
	}
	if n > hi {
		return hi
	}
	return n
}
