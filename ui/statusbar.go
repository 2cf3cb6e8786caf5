package ui

import (
	"fmt"

	"github.com/gdamore/tcell/v2"
	"github.com/mattn/go-runewidth"

	"ked/config"
)

// StatusBar renders the single-line footer: mode tag, file name (or a
// temporary message in its place), and right-aligned cursor/viewport
// coordinates.
type StatusBar struct {
	Mode     string
	Filename string
	Message  string // temporary status message
	Dirty    bool

	Line, Col     int // cursor, buffer coordinates
	ViewX, ViewY  int // viewport origin
	Width, Height int // viewport size

	Theme *config.ColorScheme
}

func NewStatusBar() *StatusBar {
	return &StatusBar{Mode: "EDIT"}
}

func (s *StatusBar) Render(screen tcell.Screen, x, y, width int) {
	theme := s.Theme
	if theme == nil {
		theme = config.Themes["monokai"]
	}

	style := tcell.StyleDefault.Background(theme.StatusBarBg).Foreground(theme.StatusBarFg)
	modeStyle := tcell.StyleDefault.Background(theme.StatusBarModeBg).Foreground(tcell.ColorWhite).Bold(true)

	// Clear the line
	for cx := x; cx < x+width; cx++ {
		screen.SetContent(cx, y, ' ', nil, style)
	}

	col := x

	mode := " " + s.Mode + " "
	for _, ch := range mode {
		if col < x+width {
			screen.SetContent(col, y, ch, nil, modeStyle)
			col++
		}
	}
	if col < x+width {
		screen.SetContent(col, y, ' ', nil, style)
		col++
	}

	// A temporary message displaces the file name until it expires.
	left := s.Message
	if left == "" {
		left = s.Filename
		if left == "" {
			left = "untitled"
		}
		if s.Dirty {
			left += " *"
		}
	}
	for _, ch := range left {
		w := runewidth.RuneWidth(ch)
		if col+w > x+width {
			break
		}
		screen.SetContent(col, y, ch, nil, style)
		col += w
	}

	right := fmt.Sprintf("Ln %d, Col %d │ View(%d,%d) │ Size(%d,%d) ",
		s.Line+1, s.Col+1, s.ViewX, s.ViewY, s.Width, s.Height)
	rightRunes := []rune(right)
	rightStart := x + width - len(rightRunes)
	if rightStart > col+2 {
		for i, ch := range rightRunes {
			screen.SetContent(rightStart+i, y, ch, nil, style)
		}
	}
}
