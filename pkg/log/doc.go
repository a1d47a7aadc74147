// Package log provides structured logging for the fastulid CLI.
//
// It exposes a small leveled Logger with a typed Field API, pluggable
// formatters (text for terminals, JSON for pipelines), and console output.
// The identifier library itself does not log; only the command-line tool
// wires a Logger.
//
// Usage
//
//	logger := log.NewLogger(
//	    log.WithLevel(log.InfoLevel),
//	    log.WithFormatter(&log.TextFormatter{}),
//	)
//	logger.Info("generated batch", log.Int("count", n), log.Str("strategy", "monotonic"))
package log
