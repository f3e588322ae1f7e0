// Package main provides the CLI entry point for the Perch bot platform's
// configuration tooling.
//
// Validate a config before starting the bot:
//
//	perch validate --config perch.yaml
//
// Keep validating while editing:
//
//	perch validate --config perch.yaml --watch
//
// Print the config JSON Schema:
//
//	perch schema
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

// Build information, populated by ldflags.
var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

func main() {
	root := &cobra.Command{
		Use:           "perch",
		Short:         "Perch multi-channel bot platform",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	root.AddCommand(buildValidateCmd())
	root.AddCommand(buildSchemaCmd())
	root.AddCommand(buildVersionCmd())

	if err := root.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
}

func buildVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "perch %s (commit %s, built %s)\n", version, commit, date)
		},
	}
}
