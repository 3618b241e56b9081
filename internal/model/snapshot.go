package model

// Category is a top-level budget category (e.g. "Needs", "Wants").
type Category struct {
	ID   string
	Name string
}

// Subcategory is a second-level category tied to a parent category.
type Subcategory struct {
	ID         string
	Name       string
	CategoryID string
}

// BankAccount is a known bank account in the user's data.
type BankAccount struct {
	ID          string
	Name        string
	Institution string
}

// CreditCard is a known credit card in the user's data.
type CreditCard struct {
	ID         string
	Name       string
	Bank       string
	CardNumber string // last four digits, may be empty
}

// Snapshot is the read-only lookup universe for one analyzer instance.
// It is supplied fresh at construction and never mutated.
type Snapshot struct {
	Categories    []Category
	Subcategories []Subcategory
	Accounts      []BankAccount
	CreditCards   []CreditCard
}
