package rotate

import (
	"os"
	"sync"
	"time"

	"gopkg.in/natefinch/lumberjack.v2"
)

// DefaultMaxBytes is the size threshold used when Config.MaxBytes is
// zero.
const DefaultMaxBytes = 100 * 1024

// lumberjack's MaxSize is megabyte-granular; the byte threshold is
// enforced here, so its own limit just needs to stay out of the way.
const lumberjackMaxSizeMB = 1 << 20

// Config controls the rotating writer.
type Config struct {
	// Filename is the log file path. The parent directory is created
	// on the first write.
	Filename string

	// MaxBytes is the rotation size threshold. Zero means
	// DefaultMaxBytes.
	MaxBytes int64

	// MaxBackups is the number of rotated files to retain. Zero or
	// negative disables rotation entirely: the file grows without
	// bound.
	MaxBackups int

	// MaxAge is the retention age of rotated files in days. Zero keeps
	// them indefinitely.
	MaxAge int

	// Compress gzips rotated files.
	Compress bool

	// Interval rotates on the first write after this much time has
	// passed since the previous rotation. Zero disables time-based
	// rotation.
	Interval time.Duration
}

// Writer is an io.WriteCloser that appends to a log file and rotates it
// once the size or time threshold is exceeded.
type Writer struct {
	mu       sync.Mutex
	lj       *lumberjack.Logger
	maxBytes int64
	interval time.Duration
	rotating bool

	size      int64
	sized     bool
	lastCycle time.Time

	now func() time.Time // for tests
}

// New creates a rotating writer. The file is not opened until the first
// write.
func New(cfg Config) *Writer {
	maxBytes := cfg.MaxBytes
	if maxBytes <= 0 {
		maxBytes = DefaultMaxBytes
	}
	return &Writer{
		lj: &lumberjack.Logger{
			Filename:   cfg.Filename,
			MaxSize:    lumberjackMaxSizeMB,
			MaxBackups: cfg.MaxBackups,
			MaxAge:     cfg.MaxAge,
			Compress:   cfg.Compress,
			LocalTime:  true,
		},
		maxBytes: maxBytes,
		interval: cfg.Interval,
		rotating: cfg.MaxBackups > 0,
		now:      time.Now,
	}
}

// Write appends p to the log file, rotating first if the write would
// cross the size threshold or the rotation interval has elapsed.
func (w *Writer) Write(p []byte) (int, error) {
	w.mu.Lock()
	defer w.mu.Unlock()

	if !w.sized {
		if fi, err := os.Stat(w.lj.Filename); err == nil {
			w.size = fi.Size()
		}
		w.sized = true
		w.lastCycle = w.now()
	}

	if w.rotating {
		due := w.interval > 0 && w.now().Sub(w.lastCycle) >= w.interval
		if due || (w.size > 0 && w.size+int64(len(p)) > w.maxBytes) {
			if err := w.rotate(); err != nil {
				return 0, err
			}
		}
	}

	n, err := w.lj.Write(p)
	w.size += int64(n)
	return n, err
}

// Rotate closes the current file and starts a new one regardless of
// thresholds.
func (w *Writer) Rotate() error {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.rotate()
}

func (w *Writer) rotate() error {
	if err := w.lj.Rotate(); err != nil {
		return err
	}
	w.size = 0
	w.sized = true
	w.lastCycle = w.now()
	return nil
}

// Close closes the underlying file.
func (w *Writer) Close() error {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.lj.Close()
}
