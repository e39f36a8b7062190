// Package rotate provides a rotating log file writer.
//
// Rotation is size-based with a byte-level threshold, with optional
// synchronous time-based rotation: a write that crosses the configured
// interval boundary rotates first. Backup pruning, file naming and
// compression are handled by lumberjack.
package rotate
