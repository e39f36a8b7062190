package startup

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"termglyph/internal/logging"
	"termglyph/internal/render"
	"termglyph/internal/termstyle"
)

func TestGetBuildInfo(t *testing.T) {
	info := GetBuildInfo()

	// Check that all fields are populated
	if info.Version == "" {
		t.Error("Expected Version to be set")
	}
	if info.GoVersion == "" {
		t.Error("Expected GoVersion to be set")
	}
	if info.OS == "" {
		t.Error("Expected OS to be set")
	}
	if info.Arch == "" {
		t.Error("Expected Arch to be set")
	}

	// Verify that runtime values are correct
	if info.GoVersion != GoVersion {
		t.Errorf("Expected GoVersion=%s, got %s", GoVersion, info.GoVersion)
	}
}

func clearConfigEnv(t *testing.T) {
	t.Helper()
	for _, key := range []string{
		"LOG_FILE", "LOG_LEVEL", "LOG_DISPLAY", "LOG_MAX_BYTES",
		"LOG_BACKUPS", "LOG_MAX_AGE_DAYS", "LOG_COMPRESS",
		"LOG_ROTATE_EVERY", "RENDER_MODE", "RENDER_WIDTH",
		"RENDER_HEIGHT", "RENDER_RAMP", "RENDER_INVERT",
	} {
		t.Setenv(key, "")
		os.Unsetenv(key)
	}
}

func TestLoadConfigDefaults(t *testing.T) {
	clearConfigEnv(t)

	cfg, err := LoadConfig()
	if err != nil {
		t.Fatalf("LoadConfig() error: %v", err)
	}

	if cfg.Logging.FilePath != "" {
		t.Errorf("Expected no log file by default, got %q", cfg.Logging.FilePath)
	}
	if cfg.Logging.Level != logging.LevelInfo {
		t.Errorf("Expected default level info, got %v", cfg.Logging.Level)
	}
	if cfg.Logging.MaxBytes != 100*1024 {
		t.Errorf("Expected default max bytes 102400, got %d", cfg.Logging.MaxBytes)
	}
	if cfg.Logging.BackupCount != 0 {
		t.Errorf("Expected default backup count 0, got %d", cfg.Logging.BackupCount)
	}
	if cfg.Logging.Display != termstyle.ModeColor {
		t.Errorf("Expected default display color, got %v", cfg.Logging.Display)
	}
	if cfg.RenderMode != render.ModeHalfColor {
		t.Errorf("Expected default render mode half-color, got %v", cfg.RenderMode)
	}
	if cfg.RenderWidth != 0 {
		t.Errorf("Expected default render width 0, got %d", cfg.RenderWidth)
	}
}

func TestLoadConfigFromEnv(t *testing.T) {
	clearConfigEnv(t)

	dir := t.TempDir()
	logFile := filepath.Join(dir, "app.log")

	t.Setenv("LOG_FILE", logFile)
	t.Setenv("LOG_LEVEL", "debug")
	t.Setenv("LOG_DISPLAY", "plain")
	t.Setenv("LOG_MAX_BYTES", "4096")
	t.Setenv("LOG_BACKUPS", "3")
	t.Setenv("LOG_ROTATE_EVERY", "1h")
	t.Setenv("RENDER_MODE", "ascii")
	t.Setenv("RENDER_WIDTH", "120")
	t.Setenv("RENDER_INVERT", "true")

	cfg, err := LoadConfig()
	if err != nil {
		t.Fatalf("LoadConfig() error: %v", err)
	}

	if cfg.Logging.FilePath != logFile {
		t.Errorf("FilePath = %q, want %q", cfg.Logging.FilePath, logFile)
	}
	if cfg.Logging.Level != logging.LevelDebug {
		t.Errorf("Level = %v, want debug", cfg.Logging.Level)
	}
	if cfg.Logging.Display != termstyle.ModePlain {
		t.Errorf("Display = %v, want plain", cfg.Logging.Display)
	}
	if cfg.Logging.MaxBytes != 4096 {
		t.Errorf("MaxBytes = %d, want 4096", cfg.Logging.MaxBytes)
	}
	if cfg.Logging.BackupCount != 3 {
		t.Errorf("BackupCount = %d, want 3", cfg.Logging.BackupCount)
	}
	if cfg.Logging.RotateEvery != time.Hour {
		t.Errorf("RotateEvery = %v, want 1h", cfg.Logging.RotateEvery)
	}
	if cfg.RenderMode != render.ModeASCII {
		t.Errorf("RenderMode = %v, want ascii", cfg.RenderMode)
	}
	if cfg.RenderWidth != 120 {
		t.Errorf("RenderWidth = %d, want 120", cfg.RenderWidth)
	}
	if !cfg.RenderInvert {
		t.Error("RenderInvert should be true")
	}
}

func TestLoadConfigCreatesLogDirectory(t *testing.T) {
	clearConfigEnv(t)

	dir := filepath.Join(t.TempDir(), "logs", "nested")
	t.Setenv("LOG_FILE", filepath.Join(dir, "app.log"))

	if _, err := LoadConfig(); err != nil {
		t.Fatalf("LoadConfig() error: %v", err)
	}

	info, err := os.Stat(dir)
	if err != nil {
		t.Fatalf("log directory not created: %v", err)
	}
	if !info.IsDir() {
		t.Error("log directory path is not a directory")
	}
}

func TestLoadConfigInvalidValuesFallBack(t *testing.T) {
	clearConfigEnv(t)

	t.Setenv("LOG_LEVEL", "verbose")
	t.Setenv("LOG_MAX_BYTES", "lots")
	t.Setenv("RENDER_MODE", "sepia")
	t.Setenv("RENDER_INVERT", "maybe")

	cfg, err := LoadConfig()
	if err != nil {
		t.Fatalf("LoadConfig() error: %v", err)
	}

	if cfg.Logging.Level != logging.LevelInfo {
		t.Errorf("invalid LOG_LEVEL should fall back to info, got %v", cfg.Logging.Level)
	}
	if cfg.Logging.MaxBytes != 100*1024 {
		t.Errorf("invalid LOG_MAX_BYTES should fall back to 102400, got %d", cfg.Logging.MaxBytes)
	}
	if cfg.RenderMode != render.ModeHalfColor {
		t.Errorf("invalid RENDER_MODE should fall back to half-color, got %v", cfg.RenderMode)
	}
	if cfg.RenderInvert {
		t.Error("invalid RENDER_INVERT should fall back to false")
	}
}
