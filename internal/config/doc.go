// Package config provides defaults and environment overlay for the
// fastulid CLI. It exposes a Default() baseline overridden by FASTULID_*
// environment variables; flags override both.
//
// Example:
//
//	cfg, err := config.Load()
//	// cfg.Strategy, cfg.Clock, cfg.MaxWait feed generator construction;
//	// cfg.LogLevel and cfg.LogFormat feed logger construction.
package config
