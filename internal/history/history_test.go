package history

import (
	"strings"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/octopus-money/octopus/internal/model"
)

func sampleTxn() model.Transaction {
	return model.Transaction{
		Name:       "AMAZON - Card XX1234",
		Amount:     decimal.NewFromInt(999),
		Type:       model.DirectionExpense,
		Confidence: decimal.RequireFromString("0.8"),
	}
}

func TestNewEntry(t *testing.T) {
	e := NewEntry("Rs.999 spent on AMAZON", sampleTxn(), model.StatusPendingReview)

	assert.NotEmpty(t, e.ID)
	assert.False(t, e.Timestamp.IsZero())
	assert.Equal(t, "Rs.999 spent on AMAZON", e.SMS)
	assert.Equal(t, "AMAZON - Card XX1234", e.Name)
	assert.Equal(t, model.StatusPendingReview, e.Status)
}

func TestNewEntry_DigestsSMS(t *testing.T) {
	sms := "Rs.999\nspent  on\tAMAZON " + strings.Repeat("x", 200)

	e := NewEntry(sms, sampleTxn(), model.StatusManual)
	assert.NotContains(t, e.SMS, "\n")
	assert.NotContains(t, e.SMS, "\t")
	assert.Len(t, e.SMS, 80)
}

func TestMarshalUnmarshalEntry(t *testing.T) {
	orig := NewEntry("Rs.999 spent on AMAZON", sampleTxn(), model.StatusAutoConfirmed)

	row := MarshalEntry(orig)
	require.Len(t, row, 8)

	got, err := UnmarshalEntry(row)
	require.NoError(t, err)
	assert.Equal(t, orig.ID, got.ID)
	assert.Equal(t, orig.SMS, got.SMS)
	assert.Equal(t, orig.Name, got.Name)
	assert.True(t, got.Amount.Equal(orig.Amount))
	assert.Equal(t, orig.Type, got.Type)
	assert.True(t, got.Confidence.Equal(orig.Confidence))
	assert.Equal(t, orig.Status, got.Status)
}

func TestUnmarshalEntry_WrongFieldCount(t *testing.T) {
	_, err := UnmarshalEntry([]string{"only", "three", "fields"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "expected 8 fields")
}

func TestUnmarshalEntry_BadAmount(t *testing.T) {
	row := MarshalEntry(NewEntry("sms", sampleTxn(), model.StatusManual))
	row[4] = "not-a-number"

	_, err := UnmarshalEntry(row)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "parsing amount")
}

func TestAppendRead(t *testing.T) {
	dir := t.TempDir()

	first := NewEntry("Rs.999 spent on AMAZON", sampleTxn(), model.StatusAutoConfirmed)
	require.NoError(t, Append(dir, []Entry{first}))

	// A second append must not repeat the header.
	second := NewEntry("Rs.120 paid to ZOMATO", sampleTxn(), model.StatusPendingReview)
	require.NoError(t, Append(dir, []Entry{second}))

	entries, err := Read(dir)
	require.NoError(t, err)
	require.Len(t, entries, 2)
	assert.Equal(t, first.ID, entries[0].ID)
	assert.Equal(t, second.ID, entries[1].ID)
	assert.Equal(t, model.StatusPendingReview, entries[1].Status)
}

func TestRead_NoLog(t *testing.T) {
	entries, err := Read(t.TempDir())
	require.NoError(t, err)
	assert.Empty(t, entries)
}
