package snapshot

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/octopus-money/octopus/internal/model"
)

func TestSaveLoad_RoundTrip(t *testing.T) {
	dir := t.TempDir()

	want := model.Snapshot{
		Categories: []model.Category{
			{ID: "c1", Name: "Wants"},
			{ID: "c2", Name: "Needs"},
		},
		Subcategories: []model.Subcategory{
			{ID: "s1", Name: "Shopping", CategoryID: "c1"},
		},
		Accounts: []model.BankAccount{
			{ID: "a1", Name: "Salary Account", Institution: "HDFC Bank"},
		},
		CreditCards: []model.CreditCard{
			{ID: "cc1", Name: "Regalia", Bank: "HDFC", CardNumber: "1234"},
		},
	}

	require.NoError(t, Save(dir, want))

	got, err := Load(dir)
	require.NoError(t, err)
	assert.Equal(t, want, got)
}

func TestSave_EmptySnapshotWritesHeaders(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, Save(dir, model.Snapshot{}))

	data, err := os.ReadFile(filepath.Join(dir, "categories.csv"))
	require.NoError(t, err)
	assert.Equal(t, "category_id,name\n", string(data))

	data, err = os.ReadFile(filepath.Join(dir, "credit-cards.csv"))
	require.NoError(t, err)
	assert.Equal(t, "card_id,name,bank,card_number\n", string(data))
}

func TestLoad_MissingFilesAreEmptySections(t *testing.T) {
	got, err := Load(t.TempDir())
	require.NoError(t, err)
	assert.Equal(t, model.Snapshot{}, got)
}

func TestLoad_PartialDirectory(t *testing.T) {
	dir := t.TempDir()
	content := "category_id,name\nc1,Wants\n"
	require.NoError(t, os.WriteFile(filepath.Join(dir, "categories.csv"), []byte(content), 0o644))

	got, err := Load(dir)
	require.NoError(t, err)
	assert.Equal(t, []model.Category{{ID: "c1", Name: "Wants"}}, got.Categories)
	assert.Empty(t, got.CreditCards)
}

func TestLoad_BadRowReportsFile(t *testing.T) {
	dir := t.TempDir()
	content := "category_id,name\n,Wants\n"
	require.NoError(t, os.WriteFile(filepath.Join(dir, "categories.csv"), []byte(content), 0o644))

	_, err := Load(dir)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "categories.csv")
	assert.Contains(t, err.Error(), "row 2")
}

func TestLoad_WrongColumnCount(t *testing.T) {
	dir := t.TempDir()
	content := "category_id,name\nc1,Wants,extra\n"
	require.NoError(t, os.WriteFile(filepath.Join(dir, "categories.csv"), []byte(content), 0o644))

	_, err := Load(dir)
	assert.Error(t, err)
}
