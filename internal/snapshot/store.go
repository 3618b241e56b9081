// Package snapshot persists the analyzer's lookup universe as plain CSV
// files under a data directory. The files are a local convenience, not a
// database: the analyzer itself only ever sees the in-memory model.Snapshot.
package snapshot

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/octopus-money/octopus/internal/model"
)

const (
	categoriesFile    = "categories.csv"
	subcategoriesFile = "subcategories.csv"
	accountsFile      = "accounts.csv"
	creditCardsFile   = "credit-cards.csv"
)

// Load reads a snapshot from a data directory. A missing file is an empty
// section, not an error, so a freshly scaffolded directory loads fine.
func Load(dir string) (model.Snapshot, error) {
	var snap model.Snapshot

	err := readFile(filepath.Join(dir, categoriesFile), func(r io.Reader) error {
		var err error
		snap.Categories, err = ReadCategories(r)
		return err
	})
	if err != nil {
		return model.Snapshot{}, err
	}

	err = readFile(filepath.Join(dir, subcategoriesFile), func(r io.Reader) error {
		var err error
		snap.Subcategories, err = ReadSubcategories(r)
		return err
	})
	if err != nil {
		return model.Snapshot{}, err
	}

	err = readFile(filepath.Join(dir, accountsFile), func(r io.Reader) error {
		var err error
		snap.Accounts, err = ReadAccounts(r)
		return err
	})
	if err != nil {
		return model.Snapshot{}, err
	}

	err = readFile(filepath.Join(dir, creditCardsFile), func(r io.Reader) error {
		var err error
		snap.CreditCards, err = ReadCreditCards(r)
		return err
	})
	if err != nil {
		return model.Snapshot{}, err
	}

	return snap, nil
}

// Save writes all four snapshot files to a data directory, headers included
// even when a section is empty.
func Save(dir string, snap model.Snapshot) error {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("creating data dir: %w", err)
	}

	if err := writeFile(filepath.Join(dir, categoriesFile), func(w io.Writer) error {
		return WriteCategories(w, snap.Categories)
	}); err != nil {
		return err
	}
	if err := writeFile(filepath.Join(dir, subcategoriesFile), func(w io.Writer) error {
		return WriteSubcategories(w, snap.Subcategories)
	}); err != nil {
		return err
	}
	if err := writeFile(filepath.Join(dir, accountsFile), func(w io.Writer) error {
		return WriteAccounts(w, snap.Accounts)
	}); err != nil {
		return err
	}
	return writeFile(filepath.Join(dir, creditCardsFile), func(w io.Writer) error {
		return WriteCreditCards(w, snap.CreditCards)
	})
}

func readFile(path string, read func(io.Reader) error) error {
	f, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return fmt.Errorf("opening %s: %w", filepath.Base(path), err)
	}
	defer f.Close()

	if err := read(f); err != nil {
		return fmt.Errorf("%s: %w", filepath.Base(path), err)
	}
	return nil
}

func writeFile(path string, write func(io.Writer) error) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("creating %s: %w", filepath.Base(path), err)
	}
	defer f.Close()

	if err := write(f); err != nil {
		return fmt.Errorf("%s: %w", filepath.Base(path), err)
	}
	return nil
}
