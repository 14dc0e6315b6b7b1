package main

import (
	"log/slog"
	"os"

	"github.com/spf13/cobra"
)

// newRootCmd builds the dhplanner command tree. Logging is configured once
// here and threaded into each subcommand explicitly, rather than kept in a
// package-level variable.
func newRootCmd() *cobra.Command {
	var verbose bool

	root := &cobra.Command{
		Use:           "dhplanner",
		Short:         "District heating network design pipeline",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	var logger *slog.Logger
	root.PersistentPreRun = func(cmd *cobra.Command, args []string) {
		level := slog.LevelInfo
		if verbose {
			level = slog.LevelDebug
		}
		logger = slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
	}

	root.PersistentFlags().BoolVar(&verbose, "verbose", false, "enable debug logging")

	root.AddCommand(newVersionCmd())
	root.AddCommand(newRunCmd(func() *slog.Logger { return logger }))
	return root
}
