package trace

import (
	"path/filepath"
	"runtime"
	"strconv"
	"strings"
)

// DefaultFormat is the default location format. The verbs follow the
// original logging format convention:
//
//	%(fileName)s   file base name
//	%(filePath)s   full file path
//	%(funcName)s   function name
//	%(lineno)d     line number
//	%(funcLineno)d function entry line number
//	%(stackDepth)d remaining stack depth at the call site
const DefaultFormat = "%(fileName)s->%(funcName)s(%(lineno)d)"

// locationFormat is the bracketed form used in displayed messages.
const locationFormat = " [%(fileName)s->%(funcName)s(%(lineno)d)]"

// Stack formats the call site skip levels above the caller. skip 0 is
// the caller of Stack itself. Returns "" if the stack cannot be
// resolved.
func Stack(skip int, format string) string {
	pc, file, line, ok := runtime.Caller(skip + 1)
	if !ok {
		return ""
	}

	funcName := "unknown"
	funcLine := 0
	if fn := runtime.FuncForPC(pc); fn != nil {
		funcName = fn.Name()
		if dot := strings.LastIndex(funcName, "."); dot >= 0 {
			funcName = funcName[dot+1:]
		}
		_, funcLine = fn.FileLine(fn.Entry())
	}

	depth := 0
	pcs := make([]uintptr, 64)
	if n := runtime.Callers(skip+2, pcs); n > 0 {
		depth = n
	}

	return strings.NewReplacer(
		"%(fileName)s", filepath.Base(file),
		"%(filePath)s", file,
		"%(funcName)s", funcName,
		"%(lineno)d", strconv.Itoa(line),
		"%(funcLineno)d", strconv.Itoa(funcLine),
		"%(stackDepth)d", strconv.Itoa(depth),
	).Replace(format)
}

// Location formats the call site skip levels above the caller in the
// bracketed " [file->func(line)]" form used by log headings.
func Location(skip int) string {
	return Stack(skip+1, locationFormat)
}
