package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/proposaltools/proposalcheck/internal/cli"
)

var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	rootCmd := &cobra.Command{
		Use:   "proposalcheck",
		Short: "Verify on-chain proposal source code against a local checkout",
		Long: `proposalcheck verifies that the source code referenced by an on-chain
governance proposal matches the corresponding source tree in a local
repository checkout, reporting missing files and textual divergences as
unified diff artifacts.`,
		Version:       fmt.Sprintf("%s (commit: %s, built: %s)", version, commit, date),
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	// Add global flags
	cli.AddGlobalFlags(rootCmd)

	// Add commands
	rootCmd.AddCommand(cli.NewDiffCommand())
	rootCmd.AddCommand(cli.NewConfigCommand())
	rootCmd.AddCommand(cli.NewVersionCommand())

	return rootCmd.Execute()
}
