package editor

import (
	"github.com/gdamore/tcell/v2"
	"github.com/mattn/go-runewidth"
)

// render paints the full frame: the visible slice of the buffer, the
// status bar on the bottom row, and the hardware cursor. All cells go
// through tcell's back buffer so the terminal sees one flush per
// frame.
func (e *Editor) render() {
	theme := e.cfg.GetTheme()
	style := tcell.StyleDefault.Background(theme.Background).Foreground(theme.Foreground)

	for y := 0; y < e.view.Height; y++ {
		row := e.view.ScrollY + y
		var visible []rune
		if row < e.buf.LineCount() {
			visible = e.visibleRunes(e.buf.Line(row))
		}

		x := 0
		for _, ch := range visible {
			if x >= e.view.Width {
				break
			}
			if ch == '\t' {
				e.screen.SetContent(x, y, ' ', nil, style)
				x++
				for x < e.view.Width && x%e.cfg.TabSize != 0 {
					e.screen.SetContent(x, y, ' ', nil, style)
					x++
				}
				continue
			}
			e.screen.SetContent(x, y, ch, nil, style)
			x += runewidth.RuneWidth(ch)
		}
		for ; x < e.view.Width; x++ {
			e.screen.SetContent(x, y, ' ', nil, style)
		}
	}

	e.statusBar.Filename = e.buf.Path
	e.statusBar.Line = e.view.Cursor.Line
	e.statusBar.Col = e.view.Cursor.Col
	e.statusBar.ViewX = e.view.ScrollX
	e.statusBar.ViewY = e.view.ScrollY
	e.statusBar.Width = e.view.Width
	e.statusBar.Height = e.view.Height
	e.statusBar.Dirty = e.buf.Dirty
	e.statusBar.Render(e.screen, 0, e.view.Height, e.view.Width)

	e.screen.ShowCursor(e.cursorCell())
	e.screen.Show()
}

// visibleRunes windows line to the viewport columns by character
// index, matching the character-based scroll model.
func (e *Editor) visibleRunes(line string) []rune {
	runes := []rune(line)
	if e.view.ScrollX >= len(runes) {
		return nil
	}
	runes = runes[e.view.ScrollX:]
	if len(runes) > e.view.Width {
		runes = runes[:e.view.Width]
	}
	return runes
}

// cursorCell converts the buffer cursor to screen cell coordinates.
// The column walks the visible slice with the same advance rules the
// renderer uses, so the hardware cursor stays aligned on lines with
// tabs or wide runes.
func (e *Editor) cursorCell() (int, int) {
	y := e.view.Cursor.Line - e.view.ScrollY

	x := 0
	if !e.buf.IsEmpty() && e.view.Cursor.Line < e.buf.LineCount() {
		visible := e.visibleRunes(e.buf.Line(e.view.Cursor.Line))
		upto := e.view.Cursor.Col - e.view.ScrollX
		for i, ch := range visible {
			if i >= upto {
				break
			}
			if ch == '\t' {
				x++
				for x%e.cfg.TabSize != 0 {
					x++
				}
				continue
			}
			x += runewidth.RuneWidth(ch)
		}
	}
	if x > e.view.Width-1 {
		x = e.view.Width - 1
	}
	return x, y
}
