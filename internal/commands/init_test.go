package commands

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRunInit(t *testing.T) {
	dir := t.TempDir()
	var out bytes.Buffer

	require.NoError(t, runInit(&out, dir, "personal"))
	assert.Contains(t, out.String(), "Initialized octopus data directory")
	assert.Contains(t, out.String(), "personal")

	for _, name := range []string{
		"octopus.yaml",
		"rules.toml",
		"categories.csv",
		"subcategories.csv",
		"accounts.csv",
		"credit-cards.csv",
	} {
		_, err := os.Stat(filepath.Join(dir, name))
		assert.NoError(t, err, "missing %s", name)
	}

	info, err := os.Stat(filepath.Join(dir, "logs"))
	require.NoError(t, err)
	assert.True(t, info.IsDir())
}

func TestRunInit_ResultLoadsClean(t *testing.T) {
	dir := t.TempDir()
	var out bytes.Buffer
	require.NoError(t, runInit(&out, dir, "household"))

	e, err := loadEnv(dir)
	require.NoError(t, err)
	assert.Equal(t, "household", e.cfg.Profile.Name)
	assert.Empty(t, e.snap.Categories)
	assert.NotEmpty(t, e.table)
}

func TestRunInit_Rerun(t *testing.T) {
	dir := t.TempDir()
	var out bytes.Buffer

	require.NoError(t, runInit(&out, dir, "personal"))
	require.NoError(t, runInit(&out, dir, "personal"))
}
