package startup

import (
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"strconv"
	"time"

	"termglyph/internal/logging"
	"termglyph/internal/render"
	"termglyph/internal/termstyle"
)

// Build-time variables (injected via -ldflags)
var (
	Version   = "dev"
	Commit    = "unknown"
	BuildTime = "unknown"
	GoVersion = runtime.Version()
)

// BuildInfo contains version and build information
type BuildInfo struct {
	Version   string `json:"version"`
	Commit    string `json:"commit"`
	BuildTime string `json:"buildTime"`
	GoVersion string `json:"goVersion"`
	OS        string `json:"os"`
	Arch      string `json:"arch"`
}

// GetBuildInfo returns the current build information
func GetBuildInfo() BuildInfo {
	return BuildInfo{
		Version:   Version,
		Commit:    Commit,
		BuildTime: BuildTime,
		GoVersion: GoVersion,
		OS:        runtime.GOOS,
		Arch:      runtime.GOARCH,
	}
}

// Config holds all application configuration
type Config struct {
	Logging logging.Config

	// Render defaults; command-line flags override these.
	RenderMode   render.Mode
	RenderWidth  int
	RenderHeight int
	RenderRamp   string
	RenderInvert bool
}

// LoadConfig loads and validates configuration from environment variables
func LoadConfig() (*Config, error) {
	cfg := &Config{
		Logging: logging.Config{
			FilePath:    getEnv("LOG_FILE", ""),
			Level:       getEnvLevel("LOG_LEVEL", logging.LevelInfo),
			MaxBytes:    int64(getEnvInt("LOG_MAX_BYTES", 100*1024)),
			BackupCount: getEnvInt("LOG_BACKUPS", 0),
			MaxAgeDays:  getEnvInt("LOG_MAX_AGE_DAYS", 0),
			Compress:    getEnvBool("LOG_COMPRESS", false),
			RotateEvery: getEnvDuration("LOG_ROTATE_EVERY", 0),
			Display:     getEnvDisplay("LOG_DISPLAY", termstyle.ModeColor),
		},
		RenderMode:   getEnvRenderMode("RENDER_MODE", render.ModeHalfColor),
		RenderWidth:  getEnvInt("RENDER_WIDTH", 0),
		RenderHeight: getEnvInt("RENDER_HEIGHT", 0),
		RenderRamp:   getEnv("RENDER_RAMP", ""),
		RenderInvert: getEnvBool("RENDER_INVERT", false),
	}

	if path := cfg.Logging.FilePath; path != "" {
		if filepath.Ext(path) != ".log" {
			logging.Warn(fmt.Sprintf("LOG_FILE %q does not end in .log, file logging disabled", path))
		} else if err := ensureDirectory(filepath.Dir(path)); err != nil {
			return nil, fmt.Errorf("log directory error: %w", err)
		}
	}

	return cfg, nil
}

// LogStartup records environment details at debug level. Nothing is
// displayed unless something is wrong.
func LogStartup(cfg *Config) {
	logging.Debugf("version=%s commit=%s built=%s", Version, Commit, BuildTime)
	logging.Debugf("go=%s os/arch=%s/%s cpus=%d", runtime.Version(), runtime.GOOS, runtime.GOARCH, runtime.NumCPU())
	if cfg.Logging.FilePath != "" {
		logging.Debugf("log file: %s (level %s, max %d bytes, %d backups)",
			cfg.Logging.FilePath, cfg.Logging.Level, cfg.Logging.MaxBytes, cfg.Logging.BackupCount)
	}
	logging.Debugf("render defaults: mode=%s width=%d height=%d invert=%v",
		cfg.RenderMode, cfg.RenderWidth, cfg.RenderHeight, cfg.RenderInvert)
}

func ensureDirectory(path string) error {
	info, err := os.Stat(path)
	if os.IsNotExist(err) {
		if err := os.MkdirAll(path, 0o755); err != nil {
			return fmt.Errorf("failed to create directory: %w", err)
		}
		return nil
	}
	if err != nil {
		return fmt.Errorf("failed to stat directory: %w", err)
	}
	if !info.IsDir() {
		return fmt.Errorf("path exists but is not a directory")
	}
	return nil
}

// Helper functions

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvBool(key string, defaultValue bool) bool {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	parsed, err := strconv.ParseBool(value)
	if err != nil {
		logging.Warn(fmt.Sprintf("Invalid boolean value for %s: %q, using default: %v", key, value, defaultValue))
		return defaultValue
	}
	return parsed
}

func getEnvInt(key string, defaultValue int) int {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	parsed, err := strconv.Atoi(value)
	if err != nil {
		logging.Warn(fmt.Sprintf("Invalid integer value for %s: %q, using default: %d", key, value, defaultValue))
		return defaultValue
	}
	return parsed
}

func getEnvDuration(key string, defaultValue time.Duration) time.Duration {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	parsed, err := time.ParseDuration(value)
	if err != nil {
		logging.Warn(fmt.Sprintf("Invalid duration value for %s: %q, using default: %v", key, value, defaultValue))
		return defaultValue
	}
	return parsed
}

func getEnvLevel(key string, defaultValue logging.Level) logging.Level {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	parsed, err := logging.ParseLevel(value)
	if err != nil {
		logging.Warn(fmt.Sprintf("Invalid log level for %s: %q, using default: %v", key, value, defaultValue))
		return defaultValue
	}
	return parsed
}

func getEnvDisplay(key string, defaultValue termstyle.Mode) termstyle.Mode {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	parsed, err := termstyle.ParseMode(value)
	if err != nil {
		logging.Warn(fmt.Sprintf("Invalid display mode for %s: %q, using default: %v", key, value, defaultValue))
		return defaultValue
	}
	return parsed
}

func getEnvRenderMode(key string, defaultValue render.Mode) render.Mode {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	parsed, err := render.ParseMode(value)
	if err != nil {
		logging.Warn(fmt.Sprintf("Invalid render mode for %s: %q, using default: %v", key, value, defaultValue))
		return defaultValue
	}
	return parsed
}
