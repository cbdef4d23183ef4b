// Package logging provides structured logging configuration for seedctl.
//
// This package wraps log/slog so every component logs the same way. It
// supports configurable log levels and output formats.
//
// # Usage
//
// Create a logger with desired configuration:
//
//	logger := logging.New(logging.Config{
//	    Level:  logging.LevelInfo,
//	    Format: logging.FormatText,
//	})
//
//	logger.Info("fixtures created", "count", 4)
//	logger.Warn("create failed", "fixture_id", id, "error", err)
//
// Logs go to stderr by default so command output on stdout stays clean for
// piping and --save files.
//
// # Integration
//
// Components accept a *slog.Logger in their constructor or options. If no
// logger is provided, they fall back to logging.Nop().
package logging
