package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/elijahdou/fastulid/internal/cmd/tool"
	"github.com/elijahdou/fastulid/internal/config"
	logpkg "github.com/elijahdou/fastulid/pkg/log"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	level, err := logpkg.ParseLevel(cfg.LogLevel)
	if err != nil {
		level = logpkg.InfoLevel
	}
	var formatter logpkg.Formatter = &logpkg.TextFormatter{}
	if cfg.LogFormat == "json" {
		formatter = &logpkg.JSONFormatter{}
	}
	logger := logpkg.NewLogger(
		logpkg.WithLevel(level),
		logpkg.WithFormatter(formatter),
	)

	rootCmd := &cobra.Command{
		Use:           "fastulid",
		Short:         "fastulid CLI",
		Long:          "fastulid mints, validates, and inspects lexicographically sortable identifiers.",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	rootCmd.AddCommand(
		tool.NewGenerateCommand(cfg, logger),
		tool.NewValidateCommand(logger),
		tool.NewInspectCommand(),
	)

	if err := rootCmd.Execute(); err != nil {
		logger.Error("command failed", logpkg.Err(err))
		os.Exit(1)
	}
}
