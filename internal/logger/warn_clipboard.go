package logger

import (
	"fmt"
	"io"
	"os"
	"sync"
)

var once sync.Once

var noticeOutput io.Writer = os.Stderr

// WarnClipboardOnce tells the user, once per process, that copying failed and
// the value is printed instead.
func WarnClipboardOnce(err error) {
	once.Do(func() {
		fmt.Fprintf(noticeOutput, "⚠️ Unable to access the system clipboard (%v).\n", err)
		fmt.Fprintln(noticeOutput, "📋 The selected value is printed to stdout instead. On Linux install xclip, xsel or wl-clipboard.")
	})
}
