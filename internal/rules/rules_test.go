package rules

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDefault_WellFormed(t *testing.T) {
	table := Default()
	assert.NotEmpty(t, table)

	seen := make(map[string]bool)
	for _, r := range table {
		assert.NotEmpty(t, r.Merchant)
		assert.NotEmpty(t, r.Category)
		assert.Equal(t, strings.ToUpper(r.Merchant), r.Merchant, "merchant keys are uppercase: %s", r.Merchant)
		assert.False(t, seen[r.Merchant], "duplicate merchant key: %s", r.Merchant)
		seen[r.Merchant] = true
	}
}

func TestDefault_FreshCopy(t *testing.T) {
	// Callers may reorder or merge; the builtin table must not be shared.
	a := Default()
	a[0].Category = "mutated"
	assert.NotEqual(t, "mutated", Default()[0].Category)
}

func TestMerge_UserRulesFirst(t *testing.T) {
	user := []Rule{{Merchant: "CORNER BAKERY", Category: "Wants", Subcategory: "Dining Out"}}

	merged := Merge(user, Default())
	assert.Equal(t, "CORNER BAKERY", merged[0].Merchant)
	assert.Len(t, merged, len(Default())+1)
}

func TestMerge_UserOverridesDefault(t *testing.T) {
	user := []Rule{{Merchant: "AMAZON", Category: "Needs", Subcategory: "Household"}}

	merged := Merge(user, Default())
	assert.Len(t, merged, len(Default()))

	var got Rule
	for _, r := range merged {
		if r.Merchant == "AMAZON" {
			got = r
			break
		}
	}
	assert.Equal(t, "Needs", got.Category)
	assert.Equal(t, "Household", got.Subcategory)
}

func TestMerge_DropsDuplicateUserRules(t *testing.T) {
	user := []Rule{
		{Merchant: "CORNER BAKERY", Category: "Wants", Subcategory: "Dining Out"},
		{Merchant: "CORNER BAKERY", Category: "Needs", Subcategory: "Groceries"},
	}

	merged := Merge(user, nil)
	assert.Len(t, merged, 1)
	assert.Equal(t, "Wants", merged[0].Category)
}
