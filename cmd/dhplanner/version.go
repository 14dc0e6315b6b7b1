package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

// buildVersion is overridden at build time via -ldflags "-X main.buildVersion=...".
var buildVersion = "dev"

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the dhplanner build version",
		RunE: func(cmd *cobra.Command, args []string) error {
			_, err := fmt.Fprintln(cmd.OutOrStdout(), buildVersion)
			return err
		},
	}
}
