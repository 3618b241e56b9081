package snapshot

import (
	"encoding/csv"
	"fmt"
	"io"

	"github.com/octopus-money/octopus/internal/model"
)

// Column layouts. Every file carries a header row.
const (
	categoryFields = 2
	catColID       = 0
	catColName     = 1

	subcategoryFields = 3
	subColID          = 0
	subColName        = 1
	subColCategoryID  = 2

	accountFields      = 3
	acctColID          = 0
	acctColName        = 1
	acctColInstitution = 2

	cardFields    = 4
	cardColID     = 0
	cardColName   = 1
	cardColBank   = 2
	cardColNumber = 3
)

// ReadCategories reads categories.csv.
func ReadCategories(r io.Reader) ([]model.Category, error) {
	records, err := readRecords(r, categoryFields, "categories")
	if err != nil {
		return nil, err
	}

	var cats []model.Category
	for i, rec := range records {
		if rec[catColID] == "" || rec[catColName] == "" {
			return nil, fmt.Errorf("row %d: category id and name must not be empty", i+2)
		}
		cats = append(cats, model.Category{ID: rec[catColID], Name: rec[catColName]})
	}
	return cats, nil
}

// WriteCategories writes categories.csv.
func WriteCategories(w io.Writer, cats []model.Category) error {
	cw := csv.NewWriter(w)
	defer cw.Flush()

	if err := cw.Write([]string{"category_id", "name"}); err != nil {
		return fmt.Errorf("writing header: %w", err)
	}
	for i, c := range cats {
		if err := cw.Write([]string{c.ID, c.Name}); err != nil {
			return fmt.Errorf("writing row %d: %w", i+2, err)
		}
	}
	return cw.Error()
}

// ReadSubcategories reads subcategories.csv.
func ReadSubcategories(r io.Reader) ([]model.Subcategory, error) {
	records, err := readRecords(r, subcategoryFields, "subcategories")
	if err != nil {
		return nil, err
	}

	var subs []model.Subcategory
	for i, rec := range records {
		if rec[subColID] == "" || rec[subColName] == "" {
			return nil, fmt.Errorf("row %d: subcategory id and name must not be empty", i+2)
		}
		subs = append(subs, model.Subcategory{
			ID:         rec[subColID],
			Name:       rec[subColName],
			CategoryID: rec[subColCategoryID],
		})
	}
	return subs, nil
}

// WriteSubcategories writes subcategories.csv.
func WriteSubcategories(w io.Writer, subs []model.Subcategory) error {
	cw := csv.NewWriter(w)
	defer cw.Flush()

	if err := cw.Write([]string{"subcategory_id", "name", "category_id"}); err != nil {
		return fmt.Errorf("writing header: %w", err)
	}
	for i, s := range subs {
		if err := cw.Write([]string{s.ID, s.Name, s.CategoryID}); err != nil {
			return fmt.Errorf("writing row %d: %w", i+2, err)
		}
	}
	return cw.Error()
}

// ReadAccounts reads accounts.csv.
func ReadAccounts(r io.Reader) ([]model.BankAccount, error) {
	records, err := readRecords(r, accountFields, "accounts")
	if err != nil {
		return nil, err
	}

	var accts []model.BankAccount
	for i, rec := range records {
		if rec[acctColID] == "" {
			return nil, fmt.Errorf("row %d: account id must not be empty", i+2)
		}
		accts = append(accts, model.BankAccount{
			ID:          rec[acctColID],
			Name:        rec[acctColName],
			Institution: rec[acctColInstitution],
		})
	}
	return accts, nil
}

// WriteAccounts writes accounts.csv.
func WriteAccounts(w io.Writer, accts []model.BankAccount) error {
	cw := csv.NewWriter(w)
	defer cw.Flush()

	if err := cw.Write([]string{"account_id", "name", "institution"}); err != nil {
		return fmt.Errorf("writing header: %w", err)
	}
	for i, a := range accts {
		if err := cw.Write([]string{a.ID, a.Name, a.Institution}); err != nil {
			return fmt.Errorf("writing row %d: %w", i+2, err)
		}
	}
	return cw.Error()
}

// ReadCreditCards reads credit-cards.csv.
func ReadCreditCards(r io.Reader) ([]model.CreditCard, error) {
	records, err := readRecords(r, cardFields, "credit cards")
	if err != nil {
		return nil, err
	}

	var cards []model.CreditCard
	for i, rec := range records {
		if rec[cardColID] == "" {
			return nil, fmt.Errorf("row %d: card id must not be empty", i+2)
		}
		cards = append(cards, model.CreditCard{
			ID:         rec[cardColID],
			Name:       rec[cardColName],
			Bank:       rec[cardColBank],
			CardNumber: rec[cardColNumber],
		})
	}
	return cards, nil
}

// WriteCreditCards writes credit-cards.csv.
func WriteCreditCards(w io.Writer, cards []model.CreditCard) error {
	cw := csv.NewWriter(w)
	defer cw.Flush()

	if err := cw.Write([]string{"card_id", "name", "bank", "card_number"}); err != nil {
		return fmt.Errorf("writing header: %w", err)
	}
	for i, c := range cards {
		if err := cw.Write([]string{c.ID, c.Name, c.Bank, c.CardNumber}); err != nil {
			return fmt.Errorf("writing row %d: %w", i+2, err)
		}
	}
	return cw.Error()
}

// readRecords reads all rows and drops the header.
func readRecords(r io.Reader, fields int, what string) ([][]string, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = fields

	records, err := cr.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("reading %s CSV: %w", what, err)
	}
	if len(records) <= 1 {
		return nil, nil
	}
	return records[1:], nil
}
