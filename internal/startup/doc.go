// Package startup handles application initialization and configuration
// loading.
//
// # Configuration
//
// All configuration is loaded from environment variables via [LoadConfig].
// The following environment variables are supported:
//
//   - LOG_FILE: Log file path, must end in .log to enable persistence (default: none)
//   - LOG_LEVEL: File logging level - debug, info, warn, error, critical (default: info)
//   - LOG_DISPLAY: Terminal display mode - color, style, plain (default: color)
//   - LOG_MAX_BYTES: Rotation size threshold in bytes (default: 102400)
//   - LOG_BACKUPS: Rotated files to keep, 0 disables rotation (default: 0)
//   - LOG_MAX_AGE_DAYS: Prune rotated files older than this (default: keep)
//   - LOG_COMPRESS: Gzip rotated files (default: false)
//   - LOG_ROTATE_EVERY: Time-based rotation interval as Go duration (default: off)
//   - RENDER_MODE: Default render mode - ascii, gray, half-gray, color, half-color (default: half-color)
//   - RENDER_WIDTH: Default output width in cells, 0 fits the terminal (default: 0)
//   - RENDER_HEIGHT: Default output height in cells, 0 preserves aspect (default: 0)
//   - RENDER_RAMP: Custom ascii density ramp, darkest first
//   - RENDER_INVERT: Invert luminance in brightness-mapped modes (default: false)
//
// Command-line flags override the render defaults.
//
// # Build Information
//
// Build-time variables are injected via ldflags and exposed via [GetBuildInfo]:
//   - Version: Application version
//   - Commit: Git commit hash
//   - BuildTime: Build timestamp
//   - GoVersion: Go compiler version
package startup
