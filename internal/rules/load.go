package rules

import (
	"fmt"
	"strings"

	"github.com/BurntSushi/toml"
)

// File is the on-disk rule table: a sequence of [[rule]] blocks. TOML array
// tables keep their declaration order, which matters for partial matching.
type File struct {
	Rule []Rule `toml:"rule"`
}

// Load reads user rules from a TOML file. Merchant keys are normalized to
// uppercase; rules with an empty merchant or category are rejected.
func Load(path string) ([]Rule, error) {
	var f File
	if _, err := toml.DecodeFile(path, &f); err != nil {
		return nil, fmt.Errorf("parsing rules %s: %w", path, err)
	}

	for i := range f.Rule {
		f.Rule[i].Merchant = strings.ToUpper(strings.TrimSpace(f.Rule[i].Merchant))
		if f.Rule[i].Merchant == "" {
			return nil, fmt.Errorf("rule %d: merchant must not be empty", i+1)
		}
		if f.Rule[i].Category == "" {
			return nil, fmt.Errorf("rule %d (%s): category must not be empty", i+1, f.Rule[i].Merchant)
		}
	}
	return f.Rule, nil
}

// Merge places user rules ahead of defaults so they win both exact lookups
// and partial-match ties. A user rule with the same merchant key replaces
// the default outright.
func Merge(user, defaults []Rule) []Rule {
	seen := make(map[string]bool, len(user))
	merged := make([]Rule, 0, len(user)+len(defaults))
	for _, r := range user {
		if seen[r.Merchant] {
			continue
		}
		seen[r.Merchant] = true
		merged = append(merged, r)
	}
	for _, r := range defaults {
		if seen[r.Merchant] {
			continue
		}
		merged = append(merged, r)
	}
	return merged
}

// StarterTOML is the rules file written by octopus init.
const StarterTOML = `# Octopus merchant rules
# Rules here take priority over the built-in table. Order matters:
# partial matching walks rules top to bottom and the first hit wins.
#
# [[rule]]
# merchant = "CORNER BAKERY"
# category = "Wants"
# subcategory = "Dining Out"
`
