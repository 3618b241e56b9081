package commands

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/octopus-money/octopus/internal/analyzer"
	"github.com/octopus-money/octopus/internal/history"
	"github.com/octopus-money/octopus/internal/logger"
)

func newBatchCommand(verbose *bool) *cobra.Command {
	var dataDir string
	var noLog bool

	cmd := &cobra.Command{
		Use:   "batch <file>",
		Short: "Analyze a file of SMS messages, one per line",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			log := logger.New(*verbose)
			return runBatch(cmd.OutOrStdout(), log, dataDir, args[0], noLog)
		},
	}

	cmd.Flags().StringVar(&dataDir, "data", ".", "data directory")
	cmd.Flags().BoolVar(&noLog, "no-log", false, "skip the history log")

	return cmd
}

// runBatch analyzes every non-blank line. Individual failures are reported
// and counted but never abort the batch.
func runBatch(out io.Writer, log zerolog.Logger, dataDir, path string, noLog bool) error {
	e, err := loadEnv(dataDir)
	if err != nil {
		return err
	}

	f, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("opening batch file: %w", err)
	}
	defer f.Close()

	an := analyzer.New(e.snap, e.table)

	var entries []history.Entry
	analyzed, failed := 0, 0
	lineNo := 0

	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		lineNo++
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}

		res := an.Analyze(line)
		if !res.Success {
			failed++
			fmt.Fprintf(out, "line %d: FAILED: %s\n", lineNo, res.Error)
			continue
		}

		analyzed++
		status := e.cfg.Thresholds.Review(res.Confidence)
		fmt.Fprintf(out, "line %d: %-40s %10s  %-7s %s\n",
			lineNo, res.Data.Name, res.Data.Amount.StringFixed(2), res.Data.Type, status)
		log.Debug().Int("line", lineNo).Str("merchant", res.Data.Merchant).Msg("analyzed")

		entries = append(entries, history.NewEntry(line, *res.Data, status))
	}
	if err := scanner.Err(); err != nil {
		return fmt.Errorf("reading batch file: %w", err)
	}

	if !noLog && len(entries) > 0 {
		if err := history.Append(dataDir, entries); err != nil {
			fmt.Fprintf(os.Stderr, "warning: failed to write history: %v\n", err)
		}
	}

	fmt.Fprintf(out, "\n%d analyzed, %d failed\n", analyzed, failed)
	return nil
}
