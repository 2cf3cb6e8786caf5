// Package clipboardx wraps system clipboard access. When no native
// clipboard is reachable (headless session, remote shell) writes fall
// back to an OSC52 escape and a process-local store so cut/paste keeps
// working inside the editor.
package clipboardx

import (
	"encoding/base64"
	"fmt"
	"os"

	"github.com/atotto/clipboard"
)

var internalClipboard string

func Write(text string) bool {
	internalClipboard = text
	ok := false

	if err := clipboard.WriteAll(text); err == nil {
		ok = true
	}
	if writeOSC52(text) {
		ok = true
	}

	return ok
}

func Read() string {
	if text, err := clipboard.ReadAll(); err == nil && text != "" {
		return text
	}
	return internalClipboard
}

// writeOSC52 emits the clipboard escape understood by most modern
// terminal emulators. Only attempted when stdout is a terminal.
func writeOSC52(text string) bool {
	if text == "" {
		return false
	}
	if fi, err := os.Stdout.Stat(); err != nil || (fi.Mode()&os.ModeCharDevice) == 0 {
		return false
	}

	encoded := base64.StdEncoding.EncodeToString([]byte(text))
	_, err := fmt.Fprintf(os.Stdout, "\x1b]52;c;%s\x07", encoded)
	return err == nil
}
