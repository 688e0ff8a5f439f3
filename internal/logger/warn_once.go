package logger

import (
	"fmt"
	"io"
	"os"
	"sync"
)

var warned sync.Map

// WarnOnce prints msg to stderr the first time that exact message is seen in
// the process. It bypasses the configured output so the user sees it even
// when logs go to a file.
func WarnOnce(msg string) {
	warnOnceTo(os.Stderr, msg)
}

func warnOnceTo(w io.Writer, msg string) {
	if _, seen := warned.LoadOrStore(msg, struct{}{}); seen {
		return
	}
	fmt.Fprintln(w, "⚠️ "+msg)
}
