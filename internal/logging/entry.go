package logging

import (
	"fmt"
	"runtime/debug"
	"strings"

	"github.com/sirupsen/logrus"

	"termglyph/internal/termstyle"
	"termglyph/internal/trace"
)

// frameGap indents boxed traces under their heading.
const frameGap = 2

// Entry is a log statement under construction, carrying per-call
// options.
type Entry struct {
	l     *Logger
	dim   bool
	key   bool
	quiet bool
	noLoc bool
	stack bool
	boxed bool
	depth int
	skip  int
}

// Option configures a single log call.
type Option func(*Entry)

// Dim de-emphasizes a warning heading.
func Dim() Option { return func(e *Entry) { e.dim = true } }

// Key marks an info message as a key node (highlighted heading).
func Key() Option { return func(e *Entry) { e.key = true } }

// Quiet formats without printing; the message is still persisted and
// returned.
func Quiet() Option { return func(e *Entry) { e.quiet = true } }

// NoLocation omits the call-site suffix from the heading.
func NoLocation() Option { return func(e *Entry) { e.noLoc = true } }

// StackInfo attaches the goroutine stack to the persisted record.
func StackInfo() Option { return func(e *Entry) { e.stack = true } }

// Boxed appends a framed deep trace of the passed errors below the
// heading.
func Boxed() Option { return func(e *Entry) { e.boxed = true } }

// Indent nests an info message under depth levels of " |--" prefixes.
// Depth 1 is the top level with no prefix.
func Indent(depth int) Option { return func(e *Entry) { e.depth = depth } }

// Skip attributes the call site further up the stack: 0 is the direct
// caller, 1 its caller, and so on.
func Skip(n int) Option { return func(e *Entry) { e.skip = n } }

// With builds an Entry carrying the given options.
func (l *Logger) With(opts ...Option) *Entry {
	e := &Entry{l: l, depth: 1}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Info logs at info level and returns the plain formatted message.
func (e *Entry) Info(msg string, errs ...error) string {
	return e.emit(LevelInfo, 2, msg, errs)
}

// Warn logs at warning level and returns the plain formatted message.
func (e *Entry) Warn(msg string, errs ...error) string {
	return e.emit(LevelWarn, 2, msg, errs)
}

// Error logs at error level and returns the plain formatted message.
func (e *Entry) Error(msg string, errs ...error) string {
	return e.emit(LevelError, 2, msg, errs)
}

// Critical persists the record and returns the rendered message as an
// error instead of printing it; the caller decides whether to
// propagate or exit.
func (e *Entry) Critical(msg string, errs ...error) error {
	e.quiet = true
	e.stack = true
	rendered := e.emitRendered(LevelCritical, 2, msg, errs)
	return trace.NewCritical(rendered)
}

// Info logs at info level with default options.
func (l *Logger) Info(msg string, errs ...error) string {
	return l.With().emit(LevelInfo, 2, msg, errs)
}

// KeyInfo logs a highlighted key-node info message.
func (l *Logger) KeyInfo(msg string, errs ...error) string {
	return l.With(Key()).emit(LevelInfo, 2, msg, errs)
}

// Warn logs at warning level with default options.
func (l *Logger) Warn(msg string, errs ...error) string {
	return l.With().emit(LevelWarn, 2, msg, errs)
}

// Error logs at error level with default options.
func (l *Logger) Error(msg string, errs ...error) string {
	return l.With().emit(LevelError, 2, msg, errs)
}

// Critical logs at critical level with default options and returns
// the rendered message as an error.
func (l *Logger) Critical(msg string, errs ...error) error {
	return l.With(Skip(1)).Critical(msg, errs...)
}

// Debug persists each argument on its own line. Debug records are
// never displayed.
func (l *Logger) Debug(args ...interface{}) {
	l.debugArgs(2, args)
}

// Debugf persists a formatted debug record.
func (l *Logger) Debugf(format string, args ...interface{}) {
	l.debugf(2, format, args)
}

// Exception persists an error chain at critical level with its deep
// trace. Nothing is displayed.
func (l *Logger) Exception(err error) {
	l.exception(2, err)
}

func (l *Logger) debugArgs(calldepth int, args []interface{}) {
	if l.file == nil || len(args) == 0 {
		return
	}
	var b strings.Builder
	for _, arg := range args {
		fmt.Fprintf(&b, "\n%v", arg)
	}
	l.fileEntry(calldepth, false).Log(LevelDebug.logrusLevel(), b.String())
}

func (l *Logger) debugf(calldepth int, format string, args []interface{}) {
	if l.file == nil {
		return
	}
	l.fileEntry(calldepth, false).Log(LevelDebug.logrusLevel(), fmt.Sprintf(format, args...))
}

func (l *Logger) exception(calldepth int, err error) {
	if l.file == nil || err == nil {
		return
	}
	record := fmt.Sprintf("[%T] - %s\n%s", err, err.Error(), trace.FormatTree(err, l.cfg.Trace))
	l.fileEntry(calldepth, true).Log(LevelCritical.logrusLevel(), record)
}

// emit formats, persists and displays one record, returning the plain
// message. calldepth is the number of stack frames between emit and
// the user's call site.
func (e *Entry) emit(level Level, calldepth int, msg string, errs []error) string {
	rendered := e.emitRendered(level, calldepth+1, msg, errs)
	return stripEscapes(rendered)
}

// emitRendered is emit returning the display-rendered form. calldepth
// counts frames between emitRendered and the user's call site.
func (e *Entry) emitRendered(level Level, calldepth int, msg string, errs []error) string {
	plain := trace.FormatChain(msg, errs...)

	loc := ""
	if !e.noLoc {
		loc = trace.Location(calldepth + e.skip)
	}

	if e.l.file != nil {
		e.l.fileEntry(calldepth+e.skip, e.stack).Log(level.logrusLevel(), plain)
	}

	heading := e.heading(level, loc, plain)
	rendered := heading.Render(e.l.DisplayMode())

	if e.boxed && len(errs) > 0 {
		if boxed := e.boxedTrace(level, errs); boxed != "" {
			rendered += "\n" + boxed
		}
	}

	if !e.quiet {
		fmt.Fprintln(e.l.writer(), rendered)
	}
	return rendered
}

// heading builds the styled "TAG [loc]: message" line.
func (e *Entry) heading(level Level, loc, plain string) termstyle.Text {
	tag := level.Tag()
	var opts []termstyle.Option

	switch level {
	case LevelInfo:
		if e.key {
			tag = "KEY-INFO"
			opts = append(opts, termstyle.Fg(termstyle.ColorMagenta), termstyle.Styles(termstyle.Bold))
		} else if e.depth <= 1 {
			opts = append(opts, termstyle.Fg(termstyle.ColorGreen), termstyle.Styles(termstyle.Bold))
		} else {
			opts = append(opts, termstyle.Styles(termstyle.Bold))
		}
	case LevelWarn:
		if e.dim {
			opts = append(opts, termstyle.Fg(termstyle.ColorYellow), termstyle.Styles(termstyle.Dim))
		} else {
			opts = append(opts, termstyle.Fg(termstyle.ColorYellow), termstyle.Styles(termstyle.Bold))
		}
	case LevelError:
		opts = append(opts, termstyle.Fg(termstyle.ColorBlack), termstyle.Bg(termstyle.ColorYellow), termstyle.Styles(termstyle.Bold))
	case LevelCritical:
		tag = "CRITICAL-ERROR"
		opts = append(opts, termstyle.Fg(termstyle.ColorWhite), termstyle.Bg(termstyle.ColorRed), termstyle.Styles(termstyle.Bold))
	}

	prefix := ""
	if level == LevelInfo && !e.key && e.depth > 1 {
		prefix = strings.Repeat("    ", e.depth-2) + " |--"
	}

	return termstyle.New(prefix+tag+loc+": "+plain, opts...)
}

// boxedTrace renders the deep trace of errs inside a frame matching
// the severity.
func (e *Entry) boxedTrace(level Level, errs []error) string {
	style := trace.FrameLight
	if level >= LevelError {
		style = trace.FrameDouble
	}
	var lines []string
	for _, err := range errs {
		if err == nil {
			continue
		}
		if tree := trace.FormatTree(err, e.l.cfg.Trace); tree != "" {
			lines = append(lines, strings.Split(tree, "\n")...)
		}
	}
	if len(lines) == 0 {
		return ""
	}
	return trace.Box(lines, trace.BoxConfig{
		Style:      style,
		RestIndent: frameGap,
		MinWidth:   e.l.cfg.Trace.MinWidth,
	})
}

// fileEntry builds a logrus entry with the call-site field attached.
// calldepth counts frames between fileEntry and the user's call site.
func (l *Logger) fileEntry(calldepth int, withStack bool) *logrus.Entry {
	fields := logrus.Fields{
		"loc": trace.Stack(calldepth+1, trace.DefaultFormat),
	}
	if withStack {
		fields["stack"] = string(debug.Stack())
	}
	return l.file.WithFields(fields)
}

// stripEscapes removes CSI escape sequences, recovering the plain form
// of a rendered message.
func stripEscapes(s string) string {
	if !strings.Contains(s, "\x1b") {
		return s
	}
	var b strings.Builder
	for i := 0; i < len(s); {
		if s[i] == 0x1b {
			j := i + 1
			if j < len(s) && s[j] == '[' {
				j++
				for j < len(s) && (s[j] < 0x40 || s[j] > 0x7e) {
					j++
				}
				if j < len(s) {
					j++
				}
			}
			i = j
			continue
		}
		b.WriteByte(s[i])
		i++
	}
	return b.String()
}
