package logging

import (
	"os"
	"strings"
	"sync/atomic"

	"termglyph/internal/termstyle"
)

var std atomic.Pointer[Logger]

// levelFromEnv reads the initial level from the DEBUG and LOG_LEVEL
// environment variables, defaulting to info.
func levelFromEnv() Level {
	if debug := os.Getenv("DEBUG"); debug != "" {
		switch strings.ToLower(debug) {
		case "1", "true", "yes", "on":
			return LevelDebug
		}
	}
	if level, err := ParseLevel(os.Getenv("LOG_LEVEL")); err == nil {
		return level
	}
	return LevelInfo
}

// Default returns the process-wide logger. Until Init is called it is
// a display-only logger at the level given by LOG_LEVEL/DEBUG.
func Default() *Logger {
	if l := std.Load(); l != nil {
		return l
	}
	l := New(Config{Level: levelFromEnv(), Display: termstyle.ModeColor})
	if std.CompareAndSwap(nil, l) {
		return l
	}
	return std.Load()
}

// Init replaces the default logger with one built from cfg and returns
// it. The previous logger's file, if any, is closed.
func Init(cfg Config) *Logger {
	l := New(cfg)
	if old := std.Swap(l); old != nil {
		_ = old.Close()
	}
	return l
}

// Info logs at info level on the default logger.
func Info(msg string, errs ...error) string {
	return Default().With(Skip(1)).Info(msg, errs...)
}

// KeyInfo logs a highlighted key-node info message on the default
// logger.
func KeyInfo(msg string, errs ...error) string {
	return Default().With(Key(), Skip(1)).Info(msg, errs...)
}

// Warn logs at warning level on the default logger.
func Warn(msg string, errs ...error) string {
	return Default().With(Skip(1)).Warn(msg, errs...)
}

// Error logs at error level on the default logger.
func Error(msg string, errs ...error) string {
	return Default().With(Skip(1)).Error(msg, errs...)
}

// Critical logs at critical level on the default logger and returns
// the rendered message as an error.
func Critical(msg string, errs ...error) error {
	return Default().With(Skip(1)).Critical(msg, errs...)
}

// Debug persists a debug record on the default logger.
func Debug(args ...interface{}) {
	Default().debugArgs(2, args)
}

// Debugf persists a formatted debug record on the default logger.
func Debugf(format string, args ...interface{}) {
	Default().debugf(2, format, args)
}

// Exception persists an error chain on the default logger.
func Exception(err error) {
	Default().exception(2, err)
}
