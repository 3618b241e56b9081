package commands

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/octopus-money/octopus/internal/config"
	"github.com/octopus-money/octopus/internal/model"
	"github.com/octopus-money/octopus/internal/rules"
	"github.com/octopus-money/octopus/internal/snapshot"
)

func newInitCommand() *cobra.Command {
	var profile string

	cmd := &cobra.Command{
		Use:   "init [directory]",
		Short: "Initialize an octopus data directory",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			dir := "."
			if len(args) > 0 {
				dir = args[0]
			}

			absDir, err := filepath.Abs(dir)
			if err != nil {
				return fmt.Errorf("resolving path: %w", err)
			}

			return runInit(cmd.OutOrStdout(), absDir, profile)
		},
	}

	cmd.Flags().StringVar(&profile, "profile", "personal", "profile name")

	return cmd
}

func runInit(out io.Writer, dir, profile string) error {
	if err := os.MkdirAll(filepath.Join(dir, "logs"), 0o755); err != nil {
		return fmt.Errorf("creating logs directory: %w", err)
	}

	// Write octopus.yaml.
	cfg := config.Default(profile)
	if err := config.Save(filepath.Join(dir, configFile), cfg); err != nil {
		return fmt.Errorf("writing config: %w", err)
	}

	// Write empty snapshot CSVs so the files and headers exist.
	if err := snapshot.Save(dir, model.Snapshot{}); err != nil {
		return fmt.Errorf("writing snapshot files: %w", err)
	}

	// Write the starter rules file.
	if err := os.WriteFile(filepath.Join(dir, rulesFile), []byte(rules.StarterTOML), 0o644); err != nil {
		return fmt.Errorf("writing rules: %w", err)
	}

	fmt.Fprintf(out, "Initialized octopus data directory at %s (profile: %s)\n", dir, profile)
	return nil
}
