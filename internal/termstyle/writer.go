package termstyle

import (
	"io"
	"os"
	"runtime"
	"sync"

	colorable "github.com/mattn/go-colorable"
	"golang.org/x/term"
)

var (
	outMu sync.Mutex
	out   io.Writer
)

// setup picks the output writer for the process terminal. When stdout
// is not a tty the escape codes are stripped; Windows consoles go
// through the colorable translation layer.
func setup() io.Writer {
	f := os.Stdout
	if !term.IsTerminal(int(f.Fd())) {
		return colorable.NewNonColorable(f)
	}
	if runtime.GOOS == "windows" && os.Getenv("TERM") == "" {
		return colorable.NewColorable(f)
	}
	return f
}

// Output returns the terminal output writer.
func Output() io.Writer {
	outMu.Lock()
	defer outMu.Unlock()
	if out == nil {
		out = setup()
	}
	return out
}

// SetOutput overrides the terminal output writer. Passing nil restores
// the default stdout handling. Intended for tests and for callers that
// redirect display output.
func SetOutput(w io.Writer) {
	outMu.Lock()
	defer outMu.Unlock()
	out = w
}

// WriteString writes s to the terminal writer.
func WriteString(s string) {
	_, _ = io.WriteString(Output(), s)
}
