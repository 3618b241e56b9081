package commands

import (
	"bytes"
	"encoding/json"
	"io"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/octopus-money/octopus/internal/history"
	"github.com/octopus-money/octopus/internal/logger"
	"github.com/octopus-money/octopus/internal/model"
	"github.com/octopus-money/octopus/internal/snapshot"
)

const testSMS = "Rs.999.00 spent on IND*AMAZON using HDFC Card XX1234 on 12-05-2024"

// initDirWithData scaffolds a data directory and fills the snapshot so the
// test SMS resolves completely.
func initDirWithData(t *testing.T) string {
	t.Helper()
	dir := initDir(t)

	snap := model.Snapshot{
		Categories: []model.Category{{ID: "c1", Name: "Wants"}},
		Subcategories: []model.Subcategory{
			{ID: "s1", Name: "Shopping", CategoryID: "c1"},
		},
		CreditCards: []model.CreditCard{
			{ID: "cc1", Name: "HDFC Card", Bank: "HDFC", CardNumber: "1234"},
		},
	}
	require.NoError(t, snapshot.Save(dir, snap))
	return dir
}

func TestRunAnalyze_Summary(t *testing.T) {
	dir := initDirWithData(t)
	var out bytes.Buffer
	log := logger.NewWithWriter(io.Discard, false)

	require.NoError(t, runAnalyze(&out, log, dir, testSMS, false, false))

	got := out.String()
	assert.Contains(t, got, "AMAZON - Card XX1234")
	assert.Contains(t, got, "INR 999.00 (expense)")
	assert.Contains(t, got, "Wants / Shopping")
	assert.Contains(t, got, "HDFC 1234 (credit_card)")
	assert.Contains(t, got, "2024-05-12")
	assert.Contains(t, got, "1.00 (auto-confirmed)")
	assert.NotContains(t, got, "(unmatched)")
	assert.NotContains(t, got, "(not in your categories)")

	entries, err := history.Read(dir)
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, "AMAZON - Card XX1234", entries[0].Name)
	assert.Equal(t, model.StatusAutoConfirmed, entries[0].Status)
}

func TestRunAnalyze_JSON(t *testing.T) {
	dir := initDirWithData(t)
	var out bytes.Buffer
	log := logger.NewWithWriter(io.Discard, false)

	require.NoError(t, runAnalyze(&out, log, dir, testSMS, true, true))

	var payload map[string]any
	require.NoError(t, json.Unmarshal(out.Bytes(), &payload))
	assert.Equal(t, "AMAZON - Card XX1234", payload["name"])
	assert.Equal(t, "999", payload["amount"])
	assert.Equal(t, "expense", payload["type"])
	assert.Equal(t, "c1", payload["category_id"])
	assert.Equal(t, "auto-confirmed", payload["status"])
}

func TestRunAnalyze_UnmatchedAnnotations(t *testing.T) {
	// Recognized merchant and bank, but an empty snapshot: the summary
	// flags both as unresolved.
	dir := initDir(t)
	var out bytes.Buffer
	log := logger.NewWithWriter(io.Discard, false)

	require.NoError(t, runAnalyze(&out, log, dir, testSMS, false, true))

	got := out.String()
	assert.Contains(t, got, "(not in your categories)")
	assert.Contains(t, got, "(unmatched)")
}

func TestRunAnalyze_NoAmount(t *testing.T) {
	dir := initDirWithData(t)
	var out bytes.Buffer
	log := logger.NewWithWriter(io.Discard, false)

	err := runAnalyze(&out, log, dir, "your OTP is 123456", false, false)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unable to extract amount")

	entries, readErr := history.Read(dir)
	require.NoError(t, readErr)
	assert.Empty(t, entries)
}

func TestRunAnalyze_NoLogSkipsHistory(t *testing.T) {
	dir := initDirWithData(t)
	var out bytes.Buffer
	log := logger.NewWithWriter(io.Discard, false)

	require.NoError(t, runAnalyze(&out, log, dir, testSMS, false, true))

	entries, err := history.Read(dir)
	require.NoError(t, err)
	assert.Empty(t, entries)
}

func TestRunAnalyze_NotInitialized(t *testing.T) {
	var out bytes.Buffer
	log := logger.NewWithWriter(io.Discard, false)

	err := runAnalyze(&out, log, t.TempDir(), testSMS, false, false)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "octopus init")
}
