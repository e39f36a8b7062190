// Package logging provides the leveled terminal logger.
//
// It supports the following log levels:
//   - DEBUG: Verbose debugging information, persisted only
//   - INFO: General operational messages
//   - WARNING: Warning conditions
//   - ERROR: Error conditions
//   - CRITICAL: Fatal conditions, surfaced as an error to the caller
//
// Terminal display renders in one of three modes (color, style,
// plain); persistence goes to a rotating log file when one is
// configured. A Logger is an explicit value created from a Config;
// the package-level functions use a default logger bootstrapped from
// the LOG_LEVEL environment variable and replaceable with Init.
package logging
