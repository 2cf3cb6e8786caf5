package editor

import (
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/gdamore/tcell/v2"

	"ked/buffer"
	"ked/config"
	"ked/ui"
)

// Editor composes the buffer, the cursor/viewport model, and the exit
// flag, and drives the event loop over the terminal screen. Everything
// runs on the one goroutine that calls Run; the watcher goroutine only
// posts events back into the loop.
type Editor struct {
	screen    tcell.Screen
	cfg       *config.Config
	buf       *buffer.Buffer
	view      *View
	statusBar *ui.StatusBar

	quit        bool
	fileWatcher *fsnotify.Watcher

	statusMessageTime time.Time
	statusMessageTTL  time.Duration
}

func New(cfg *config.Config) *Editor {
	return &Editor{
		cfg:              cfg,
		buf:              buffer.New(),
		view:             NewView(cfg),
		statusBar:        ui.NewStatusBar(),
		statusMessageTTL: 4 * time.Second,
	}
}

// Run enters raw mode, drives the event loop until quit, and restores
// the terminal on every exit path, panics included. path may be empty
// for an unnamed document; an unreadable path is reported on the
// status bar and editing starts on an empty buffer.
func (e *Editor) Run(path string) error {
	screen, err := tcell.NewScreen()
	if err != nil {
		return err
	}
	if err := screen.Init(); err != nil {
		return err
	}
	defer func() {
		r := recover()
		screen.Fini()
		if r != nil {
			panic(r)
		}
	}()

	screen.SetStyle(tcell.StyleDefault)
	screen.Clear()
	e.screen = screen
	e.statusBar.Theme = e.cfg.GetTheme()

	if path != "" {
		if err := e.buf.LoadFile(path); err != nil {
			e.setTemporaryMessage(err.Error())
		} else {
			e.watchFile(path)
		}
	}
	defer e.closeWatcher()

	w, h := screen.Size()
	e.resize(w, h)

	events := make(chan tcell.Event, 8)
	loopDone := make(chan struct{})
	defer close(loopDone)
	go screen.ChannelEvents(events, loopDone)

	idle := time.Duration(e.cfg.IdlePollMs) * time.Millisecond
	e.render()

	for !e.quit {
		redraw := false

		select {
		case ev, ok := <-events:
			if !ok {
				return nil
			}
			switch ev := ev.(type) {
			case *tcell.EventResize:
				screen.Sync()
				w, h := ev.Size()
				e.resize(w, h)
				redraw = true
			case *tcell.EventKey:
				redraw = e.apply(MapKey(ev))
			case *FileChangedEvent:
				e.setTemporaryMessage("File changed on disk: " + ev.Path)
				redraw = true
			}
		case <-time.After(idle):
			redraw = e.onIdle()
		}

		if redraw {
			e.render()
		}
	}
	return nil
}

// onIdle runs the periodic housekeeping between input events and
// reports whether the status line changed.
func (e *Editor) onIdle() bool {
	return e.clearExpiredMessage()
}

func (e *Editor) resize(w, h int) {
	// Bottom row belongs to the status bar.
	e.view.Resize(w, h-1)
}

func (e *Editor) setTemporaryMessage(msg string) {
	e.statusBar.Message = msg
	e.statusMessageTime = time.Now()
}

func (e *Editor) clearExpiredMessage() bool {
	if e.statusBar.Message == "" {
		return false
	}
	if time.Since(e.statusMessageTime) < e.statusMessageTTL {
		return false
	}
	e.statusBar.Message = ""
	return true
}
