package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/octopus-money/octopus/internal/buildinfo"
)

// NewRootCommand creates the root CLI command with all subcommands registered.
func NewRootCommand() *cobra.Command {
	var verbose bool

	rootCmd := &cobra.Command{
		Use:     "octopus",
		Short:   "Bank SMS transaction analyzer",
		Version: fmt.Sprintf("%s (commit: %s, built: %s)", buildinfo.Version, buildinfo.Commit, buildinfo.Date),
		CompletionOptions: cobra.CompletionOptions{
			DisableDefaultCmd: true,
		},
		SilenceUsage: true,
	}

	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable debug logging")

	rootCmd.AddCommand(newInitCommand())
	rootCmd.AddCommand(newAnalyzeCommand(&verbose))
	rootCmd.AddCommand(newBatchCommand(&verbose))
	rootCmd.AddCommand(newRulesCommand())

	return rootCmd
}
