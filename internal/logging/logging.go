package logging

import (
	"io"
	"strings"
	"sync"
	"time"

	"github.com/sirupsen/logrus"

	"termglyph/internal/rotate"
	"termglyph/internal/termstyle"
	"termglyph/internal/trace"
)

// Config holds all logger configuration.
type Config struct {
	// FilePath is the log file destination. Persistence is enabled
	// only when the path ends in ".log"; otherwise no file stream is
	// created and the logger is display-only.
	FilePath string

	// Level is the lowest level persisted to the file. Terminal
	// display is independent of this threshold.
	Level Level

	// MaxBytes is the rotation size threshold (default 100 KiB).
	MaxBytes int64

	// BackupCount is the number of rotated files to keep. Zero or
	// negative stores everything in one growing file.
	BackupCount int

	// MaxAgeDays prunes rotated files older than this. Zero keeps
	// them.
	MaxAgeDays int

	// Compress gzips rotated files.
	Compress bool

	// RotateEvery rotates the file after this much time regardless of
	// size. Zero disables time-based rotation.
	RotateEvery time.Duration

	// Display selects the terminal rendering mode.
	Display termstyle.Mode

	// TimeFormat is the file timestamp layout (DefaultTimeFormat when
	// empty).
	TimeFormat string

	// Trace controls how error chains passed to log calls are
	// expanded in boxed traces.
	Trace trace.Options
}

// Logger is a leveled logger with colored terminal display and
// optional rotating file persistence. Safe for concurrent use.
type Logger struct {
	mu      sync.Mutex
	cfg     Config
	file    *logrus.Logger
	rot     *rotate.Writer
	out     io.Writer
	display termstyle.Mode
}

// New creates a Logger from cfg. The log file, when configured, is
// opened lazily on the first persisted record.
func New(cfg Config) *Logger {
	l := &Logger{cfg: cfg, display: cfg.Display}

	if strings.HasSuffix(cfg.FilePath, ".log") {
		l.rot = rotate.New(rotate.Config{
			Filename:   cfg.FilePath,
			MaxBytes:   cfg.MaxBytes,
			MaxBackups: cfg.BackupCount,
			MaxAge:     cfg.MaxAgeDays,
			Compress:   cfg.Compress,
			Interval:   cfg.RotateEvery,
		})
		l.file = logrus.New()
		l.file.SetOutput(l.rot)
		l.file.SetLevel(cfg.Level.logrusLevel())
		l.file.SetFormatter(&fileFormatter{timeFormat: cfg.TimeFormat})
	}

	return l
}

// Close flushes and closes the log file, if any.
func (l *Logger) Close() error {
	if l.rot == nil {
		return nil
	}
	return l.rot.Close()
}

// FileEnabled reports whether records are persisted to a file.
func (l *Logger) FileEnabled() bool { return l.file != nil }

// SetDisplayMode changes the terminal rendering mode. Unknown modes
// are ignored with a displayed warning, keeping the current mode.
func (l *Logger) SetDisplayMode(m termstyle.Mode) {
	switch m {
	case termstyle.ModeColor, termstyle.ModeStyle, termstyle.ModePlain:
		l.mu.Lock()
		l.display = m
		l.mu.Unlock()
	default:
		l.Warn("Invalid display mode, keeping " + l.DisplayMode().String())
	}
}

// DisplayMode returns the current terminal rendering mode.
func (l *Logger) DisplayMode() termstyle.Mode {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.display
}

// SetOutput overrides the terminal display writer. Passing nil
// restores the process terminal.
func (l *Logger) SetOutput(w io.Writer) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.out = w
}

// writer returns the terminal display writer.
func (l *Logger) writer() io.Writer {
	l.mu.Lock()
	defer l.mu.Unlock()
	if l.out != nil {
		return l.out
	}
	return termstyle.Output()
}
