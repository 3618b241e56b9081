package commands

import (
	"fmt"
	"io"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/octopus-money/octopus/internal/config"
	"github.com/octopus-money/octopus/internal/rules"
)

func newRulesCommand() *cobra.Command {
	var dataDir string

	cmd := &cobra.Command{
		Use:   "rules",
		Short: "List the effective merchant rules in match order",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runRules(cmd.OutOrStdout(), dataDir)
		},
	}

	cmd.Flags().StringVar(&dataDir, "data", ".", "data directory")

	return cmd
}

// runRules prints the rule table in the order matching walks it. It works
// without an initialized data directory: a missing config just means the
// built-in table.
func runRules(out io.Writer, dataDir string) error {
	table := rules.Default()
	if cfg, err := config.Load(filepath.Join(dataDir, configFile)); err == nil {
		merged, err := loadRules(dataDir, cfg)
		if err != nil {
			return err
		}
		table = merged
	}

	for i, r := range table {
		fmt.Fprintf(out, "%3d  %-20s %-10s %s\n", i+1, r.Merchant, r.Category, r.Subcategory)
	}
	return nil
}
