package editor

import (
	"github.com/fsnotify/fsnotify"
	"github.com/gdamore/tcell/v2"
)

// FileChangedEvent is posted into the main event loop when the open
// file is modified outside the editor.
type FileChangedEvent struct {
	tcell.EventTime
	Path string
	Op   fsnotify.Op
}

// watchFile starts watching the loaded file for external writes. The
// watcher goroutine never touches editor state; it hands events to
// the run loop through the screen's event queue. Failure to set up
// watching is graceful degradation, not an error.
func (e *Editor) watchFile(path string) {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return
	}
	if err := watcher.Add(path); err != nil {
		watcher.Close()
		return
	}
	e.fileWatcher = watcher

	screen := e.screen
	go func() {
		for {
			select {
			case event, ok := <-watcher.Events:
				if !ok {
					return
				}
				if event.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Remove|fsnotify.Rename) == 0 {
					continue
				}
				ev := &FileChangedEvent{Path: event.Name, Op: event.Op}
				ev.SetEventNow()
				screen.PostEvent(ev)
			case _, ok := <-watcher.Errors:
				if !ok {
					return
				}
			}
		}
	}()
}

func (e *Editor) closeWatcher() {
	if e.fileWatcher != nil {
		e.fileWatcher.Close()
		e.fileWatcher = nil
	}
}
