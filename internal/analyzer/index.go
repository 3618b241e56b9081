package analyzer

import (
	"strings"

	"github.com/octopus-money/octopus/internal/model"
)

// subcategoryRef ties a subcategory id to its parent category.
type subcategoryRef struct {
	ID         string
	CategoryID string
}

// indexes are the uppercase-keyed lookup tables built once per analyzer.
// Multiple name variants may map to the same id; last write wins, which is
// acceptable because names are expected distinct in practice. cardKeys keeps
// the card index keys in insertion order so substring scans resolve the same
// key on every call.
type indexes struct {
	categories    map[string]string
	subcategories map[string]subcategoryRef
	accounts      map[string]string
	creditCards   map[string]string
	cardKeys      []string
}

// buildIndexes normalizes every snapshot name to uppercase and indexes it.
// Accounts are indexed under both the institution and the display name so
// either can resolve the id. Cards are additionally indexed under
// "<BANK> <NUMBER>" and the bare "<NUMBER>" so digits alone can resolve them.
// An empty snapshot produces empty indexes; lookups simply miss.
func buildIndexes(snap model.Snapshot) indexes {
	idx := indexes{
		categories:    make(map[string]string, len(snap.Categories)),
		subcategories: make(map[string]subcategoryRef, len(snap.Subcategories)),
		accounts:      make(map[string]string, len(snap.Accounts)*2),
		creditCards:   make(map[string]string, len(snap.CreditCards)*4),
	}

	for _, c := range snap.Categories {
		idx.categories[strings.ToUpper(c.Name)] = c.ID
	}

	for _, s := range snap.Subcategories {
		idx.subcategories[strings.ToUpper(s.Name)] = subcategoryRef{
			ID:         s.ID,
			CategoryID: s.CategoryID,
		}
	}

	for _, a := range snap.Accounts {
		if a.Institution != "" {
			idx.accounts[strings.ToUpper(a.Institution)] = a.ID
		}
		if a.Name != "" {
			idx.accounts[strings.ToUpper(a.Name)] = a.ID
		}
	}

	for _, cc := range snap.CreditCards {
		if cc.Bank != "" {
			idx.addCard(strings.ToUpper(cc.Bank), cc.ID)
		}
		if cc.Name != "" {
			idx.addCard(strings.ToUpper(cc.Name), cc.ID)
		}
		if cc.CardNumber != "" {
			if cc.Bank != "" {
				idx.addCard(strings.ToUpper(cc.Bank)+" "+cc.CardNumber, cc.ID)
			}
			idx.addCard(cc.CardNumber, cc.ID)
		}
	}

	return idx
}

// addCard records a card index key, tracking first-seen insertion order.
func (idx *indexes) addCard(key, id string) {
	if _, ok := idx.creditCards[key]; !ok {
		idx.cardKeys = append(idx.cardKeys, key)
	}
	idx.creditCards[key] = id
}

// lookupCategory resolves a category label to an id. The direct uppercase
// lookup is tried first; a case-insensitive exact scan follows because
// caller-supplied names are not guaranteed to be consistently cased.
func (idx indexes) lookupCategory(name string) string {
	if id, ok := idx.categories[strings.ToUpper(name)]; ok {
		return id
	}
	for key, id := range idx.categories {
		if strings.EqualFold(key, name) {
			return id
		}
	}
	return ""
}

// lookupSubcategory resolves a subcategory label the same way.
func (idx indexes) lookupSubcategory(name string) (subcategoryRef, bool) {
	if ref, ok := idx.subcategories[strings.ToUpper(name)]; ok {
		return ref, true
	}
	for key, ref := range idx.subcategories {
		if strings.EqualFold(key, name) {
			return ref, true
		}
	}
	return subcategoryRef{}, false
}
