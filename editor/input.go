package editor

import (
	"strings"

	"github.com/gdamore/tcell/v2"

	"ked/clipboardx"
)

// CommandKind tags the operation a key event decodes to.
type CommandKind int

const (
	CmdNone CommandKind = iota
	CmdQuit
	CmdMove      // relative cursor move, DX/DY set
	CmdLineStart // column 0 on the current row
	CmdLineEnd   // column = current line length
	CmdPageUp
	CmdPageDown
	CmdInsert // Ch set
	CmdSplitLine
	CmdDeleteBack
	CmdDeleteForward
	CmdCutLine
	CmdPaste
)

type Command struct {
	Kind   CommandKind
	DX, DY int
	Ch     rune
}

// MapKey decodes a key event into a Command. It is a pure function of
// the (key, modifiers) pair; applying the command is a separate step.
// Unrecognized combinations decode to CmdNone.
func MapKey(ev *tcell.EventKey) Command {
	mods := ev.Modifiers()

	switch ev.Key() {
	case tcell.KeyCtrlC, tcell.KeyCtrlQ:
		return Command{Kind: CmdQuit}
	case tcell.KeyUp:
		if mods == tcell.ModNone {
			return Command{Kind: CmdMove, DY: -1}
		}
	case tcell.KeyDown:
		if mods == tcell.ModNone {
			return Command{Kind: CmdMove, DY: 1}
		}
	case tcell.KeyLeft:
		if mods == tcell.ModNone {
			return Command{Kind: CmdMove, DX: -1}
		}
	case tcell.KeyRight:
		if mods == tcell.ModNone {
			return Command{Kind: CmdMove, DX: 1}
		}
	case tcell.KeyHome:
		return Command{Kind: CmdLineStart}
	case tcell.KeyEnd:
		return Command{Kind: CmdLineEnd}
	case tcell.KeyPgUp:
		return Command{Kind: CmdPageUp}
	case tcell.KeyPgDn:
		return Command{Kind: CmdPageDown}
	case tcell.KeyEnter:
		return Command{Kind: CmdSplitLine}
	case tcell.KeyBackspace, tcell.KeyBackspace2:
		return Command{Kind: CmdDeleteBack}
	case tcell.KeyDelete:
		return Command{Kind: CmdDeleteForward}
	case tcell.KeyCtrlK:
		return Command{Kind: CmdCutLine}
	case tcell.KeyCtrlV:
		return Command{Kind: CmdPaste}
	case tcell.KeyTab:
		if mods == tcell.ModNone {
			return Command{Kind: CmdInsert, Ch: '\t'}
		}
	case tcell.KeyRune:
		// Shift is already folded into the rune; anything else
		// (Ctrl, Alt) is a chord we don't handle.
		if mods&^tcell.ModShift == 0 {
			return Command{Kind: CmdInsert, Ch: ev.Rune()}
		}
	}
	return Command{Kind: CmdNone}
}

// apply executes cmd against the buffer and view and reports whether
// the screen needs a redraw. Mutations always redraw; pure moves
// redraw only when the cursor actually moved.
func (e *Editor) apply(cmd Command) bool {
	buf, view := e.buf, e.view

	switch cmd.Kind {
	case CmdQuit:
		e.quit = true
		return false

	case CmdMove:
		return view.OffsetCursor(buf, cmd.DX, cmd.DY)

	case CmdLineStart:
		return view.SetCursor(buf, 0, view.Cursor.Line)

	case CmdLineEnd:
		return view.SetCursor(buf, buf.LineLen(view.Cursor.Line), view.Cursor.Line)

	case CmdPageUp:
		return view.OffsetCursor(buf, 0, view.PageDelta(-1))

	case CmdPageDown:
		return view.OffsetCursor(buf, 0, view.PageDelta(1))

	case CmdInsert:
		e.insertRune(cmd.Ch)
		return true

	case CmdSplitLine:
		buf.SplitLine(view.Cursor.Line, view.Cursor.Col)
		view.SetCursor(buf, 0, view.Cursor.Line+1)
		return true

	case CmdDeleteBack:
		switch {
		case view.Cursor.Col > 0:
			buf.DeleteChar(view.Cursor.Line, view.Cursor.Col-1)
			view.SetCursor(buf, view.Cursor.Col-1, view.Cursor.Line)
		case view.Cursor.Line > 0:
			col := buf.MergeWithPrevious(view.Cursor.Line)
			view.SetCursor(buf, col, view.Cursor.Line-1)
		default:
			return false
		}
		return true

	case CmdDeleteForward:
		if buf.IsEmpty() {
			return false
		}
		switch {
		case view.Cursor.Col < buf.LineLen(view.Cursor.Line):
			buf.DeleteChar(view.Cursor.Line, view.Cursor.Col)
		case view.Cursor.Line < buf.LineCount()-1:
			buf.MergeWithPrevious(view.Cursor.Line + 1)
		default:
			return false
		}
		return true

	case CmdCutLine:
		if buf.IsEmpty() {
			return false
		}
		line := buf.RemoveLine(view.Cursor.Line)
		clipboardx.Write(line + "\n")
		// Re-clamp against the shrunk buffer.
		view.SetCursor(buf, view.Cursor.Col, view.Cursor.Line)
		e.setTemporaryMessage("Cut line")
		return true

	case CmdPaste:
		text := clipboardx.Read()
		if text == "" {
			return false
		}
		e.insertText(text)
		return true
	}

	return false
}

// insertRune types one character at the cursor. Typing into a buffer
// with zero lines first materializes an empty line so the insert
// precondition holds.
func (e *Editor) insertRune(ch rune) {
	if e.buf.IsEmpty() {
		e.buf.InsertLine(0, "")
	}
	e.buf.InsertChar(e.view.Cursor.Line, e.view.Cursor.Col, ch)
	e.view.SetCursor(e.buf, e.view.Cursor.Col+1, e.view.Cursor.Line)
}

// insertText replays text at the cursor, routing newlines through the
// line split so pasted blocks keep their structure.
func (e *Editor) insertText(text string) {
	text = strings.ReplaceAll(text, "\r\n", "\n")
	for _, ch := range text {
		if ch == '\n' {
			e.buf.SplitLine(e.view.Cursor.Line, e.view.Cursor.Col)
			e.view.SetCursor(e.buf, 0, e.view.Cursor.Line+1)
			continue
		}
		e.insertRune(ch)
	}
}
