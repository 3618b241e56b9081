package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/octopus-money/octopus/internal/model"
)

func TestSaveLoad_RoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "octopus.yaml")

	want := Default("personal")
	require.NoError(t, Save(path, want))

	got, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, want, got)
}

func TestDefault(t *testing.T) {
	cfg := Default("household")

	assert.Equal(t, "household", cfg.Profile.Name)
	assert.Equal(t, "INR", cfg.Profile.Currency)
	assert.Equal(t, 0.9, cfg.Thresholds.AutoConfirm)
	assert.Equal(t, 0.5, cfg.Thresholds.ReviewFlag)
	assert.Equal(t, "rules.toml", cfg.Rules.Path)
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	assert.Error(t, err)
}

func TestLoad_BadYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "octopus.yaml")
	require.NoError(t, os.WriteFile(path, []byte("profile: [unclosed"), 0o644))

	_, err := Load(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "parsing config")
}

func TestThresholds_Review(t *testing.T) {
	th := ThresholdsConfig{AutoConfirm: 0.9, ReviewFlag: 0.5}

	tests := []struct {
		confidence string
		want       model.ReviewStatus
	}{
		{"1", model.StatusAutoConfirmed},
		{"0.9", model.StatusAutoConfirmed},
		{"0.8", model.StatusPendingReview},
		{"0.5", model.StatusPendingReview},
		{"0.4", model.StatusManual},
		{"0", model.StatusManual},
	}
	for _, tt := range tests {
		got := th.Review(decimal.RequireFromString(tt.confidence))
		assert.Equal(t, tt.want, got, "confidence %s", tt.confidence)
	}
}
