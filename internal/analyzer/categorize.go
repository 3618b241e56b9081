package analyzer

import (
	"strings"

	"github.com/agnivade/levenshtein"

	"github.com/octopus-money/octopus/internal/model"
	"github.com/octopus-money/octopus/internal/rules"
)

// Fuzzy matching bounds. Short keys and large edit distances produce junk
// matches, so both are capped.
const (
	fuzzyMaxDistance = 2
	fuzzyMinKeyLen   = 5
)

// categorize maps a merchant string to category labels via the rule table,
// then resolves those labels to ids via the indexes. Labels are returned
// even when no id resolves: a recognized merchant type is still useful for
// UI pre-fill.
func categorize(merchant string, table []rules.Rule, idx indexes) model.Categorization {
	var cat model.Categorization
	if merchant == "" {
		return cat
	}

	rule, ok := matchRule(strings.ToUpper(strings.TrimSpace(merchant)), table)
	if !ok {
		return cat
	}

	cat.CategoryName = rule.Category
	cat.SubcategoryName = rule.Subcategory
	cat.CategoryID = idx.lookupCategory(rule.Category)
	if ref, found := idx.lookupSubcategory(rule.Subcategory); found {
		cat.SubcategoryID = ref.ID
	}
	return cat
}

// matchRule finds the rule for a merchant. Exact key equality always wins;
// then bidirectional containment in table order (the declared order is the
// tie-break); then a bounded Levenshtein pass for near-miss spellings like
// "AMAZN". Containment is deliberately bidirectional even though short keys
// can over-match; tightening it changes observed behavior.
func matchRule(merchant string, table []rules.Rule) (rules.Rule, bool) {
	for _, r := range table {
		if r.Merchant == merchant {
			return r, true
		}
	}

	for _, r := range table {
		if strings.Contains(merchant, r.Merchant) || strings.Contains(r.Merchant, merchant) {
			return r, true
		}
	}

	if len(merchant) >= fuzzyMinKeyLen {
		best := fuzzyMaxDistance + 1
		var bestRule rules.Rule
		for _, r := range table {
			if len(r.Merchant) < fuzzyMinKeyLen {
				continue
			}
			if d := levenshtein.ComputeDistance(merchant, r.Merchant); d < best {
				best = d
				bestRule = r
			}
		}
		if best <= fuzzyMaxDistance {
			return bestRule, true
		}
	}

	return rules.Rule{}, false
}
