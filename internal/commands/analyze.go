package commands

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/octopus-money/octopus/internal/analyzer"
	"github.com/octopus-money/octopus/internal/history"
	"github.com/octopus-money/octopus/internal/logger"
	"github.com/octopus-money/octopus/internal/model"
)

func newAnalyzeCommand(verbose *bool) *cobra.Command {
	var dataDir string
	var jsonOut bool
	var noLog bool

	cmd := &cobra.Command{
		Use:   "analyze <sms-text>",
		Short: "Analyze a bank SMS and print the transaction guess",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			log := logger.New(*verbose)
			return runAnalyze(cmd.OutOrStdout(), log, dataDir, args[0], jsonOut, noLog)
		},
	}

	cmd.Flags().StringVar(&dataDir, "data", ".", "data directory")
	cmd.Flags().BoolVar(&jsonOut, "json", false, "print the result as JSON")
	cmd.Flags().BoolVar(&noLog, "no-log", false, "skip the history log")

	return cmd
}

func runAnalyze(out io.Writer, log zerolog.Logger, dataDir, smsText string, jsonOut, noLog bool) error {
	e, err := loadEnv(dataDir)
	if err != nil {
		return err
	}

	an := analyzer.New(e.snap, e.table)
	res := an.Analyze(smsText)

	if res.Extracted != nil {
		log.Debug().
			Str("type", string(res.Extracted.Type)).
			Str("merchant", res.Extracted.Merchant).
			Str("bank", res.Extracted.BankName).
			Str("card", res.Extracted.CardNumber).
			Msg("extracted fields")
	}

	if !res.Success {
		return fmt.Errorf("analyze: %s", res.Error)
	}

	status := e.cfg.Thresholds.Review(res.Confidence)

	if !noLog {
		entry := history.NewEntry(smsText, *res.Data, status)
		if err := history.Append(dataDir, []history.Entry{entry}); err != nil {
			fmt.Fprintf(os.Stderr, "warning: failed to write history: %v\n", err)
		}
	}

	if jsonOut {
		return printJSON(out, res.Data, status)
	}
	printSummary(out, e.cfg.Profile.Currency, res.Data, status)
	return nil
}

func printJSON(out io.Writer, txn *model.Transaction, status model.ReviewStatus) error {
	payload := struct {
		*model.Transaction
		Status model.ReviewStatus `json:"status"`
	}{txn, status}

	enc := json.NewEncoder(out)
	enc.SetIndent("", "  ")
	return enc.Encode(payload)
}

func printSummary(out io.Writer, currency string, txn *model.Transaction, status model.ReviewStatus) {
	fmt.Fprintf(out, "Name:        %s\n", txn.Name)
	fmt.Fprintf(out, "Amount:      %s %s (%s)\n", currency, txn.Amount.StringFixed(2), txn.Type)
	if txn.CategoryName != "" {
		line := txn.CategoryName
		if txn.SubcategoryName != "" {
			line += " / " + txn.SubcategoryName
		}
		if txn.CategoryID == "" {
			line += " (not in your categories)"
		}
		fmt.Fprintf(out, "Category:    %s\n", line)
	}
	if txn.AccountName != "" {
		line := fmt.Sprintf("%s (%s)", txn.AccountName, txn.AccountType)
		if txn.AccountID == "" {
			line += " (unmatched)"
		}
		fmt.Fprintf(out, "Account:     %s\n", line)
	}
	fmt.Fprintf(out, "Date:        %s\n", txn.Date)
	fmt.Fprintf(out, "Confidence:  %s (%s)\n", txn.Confidence.StringFixed(2), status)
}
