package main

import (
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/edgestar/internal/logging"
)

// Version is the current edgestar version.
var Version = "0.1.0"

type rootOptions struct {
	logLevel  string
	logFormat string
	logger    *slog.Logger
}

func newRootCmd() *cobra.Command {
	ro := &rootOptions{}

	cmd := &cobra.Command{
		Use:           "edgestar",
		Short:         "Least-cost paths with previous-edge-aware costs",
		Long:          `edgestar runs A* over graphs loaded from YAML files or SQLite databases. Edge costs may depend on the edge that precedes them on the path.`,
		Version:       Version,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(cmd *cobra.Command, _ []string) {
			ro.logger = logging.New(cmd.ErrOrStderr(), ro.logLevel, ro.logFormat).With("command", cmd.Name())
		},
	}
	cmd.PersistentFlags().StringVar(&ro.logLevel, "log-level", "warn", "Log level: debug, info, warn or error")
	cmd.PersistentFlags().StringVar(&ro.logFormat, "log-format", "text", "Log format: text or json")

	cmd.AddCommand(
		newPathCmd(ro),
		newLengthCmd(ro),
		newImportCmd(ro),
	)

	return cmd
}
