package model

import (
	"time"

	"github.com/shopspring/decimal"
)

// Direction is the direction of money movement inferred from an SMS.
type Direction string

const (
	DirectionExpense Direction = "expense"
	DirectionIncome  Direction = "income"
)

// AccountType distinguishes resolved account kinds.
type AccountType string

const (
	AccountTypeBank       AccountType = "bank"
	AccountTypeCreditCard AccountType = "credit_card"
)

// ReviewStatus classifies how much human attention a transaction guess needs.
type ReviewStatus string

const (
	StatusAutoConfirmed ReviewStatus = "auto-confirmed"
	StatusPendingReview ReviewStatus = "pending-review"
	StatusManual        ReviewStatus = "manual"
)

// Fields holds everything the extractor pulled out of one SMS. Every field
// other than Amount is best-effort; a miss leaves the zero value.
type Fields struct {
	Type         Direction
	Amount       decimal.NullDecimal // invalid when no amount token matched
	Date         time.Time
	Merchant     string
	CardNumber   string // last four digits
	BankName     string
	OriginalText string
}

// Categorization maps a merchant to category labels and, when the snapshot
// knows them, ids. Labels can be set while ids stay empty: the merchant type
// was recognized but is unknown in this user's data.
type Categorization struct {
	CategoryName    string
	CategoryID      string
	SubcategoryName string
	SubcategoryID   string
}

// AccountInfo is a resolved (or synthesized) account reference.
type AccountInfo struct {
	AccountID   string
	AccountName string
	AccountType AccountType
}

// Transaction is the assembled transaction guess handed to callers.
type Transaction struct {
	Name            string          `json:"name"`
	Amount          decimal.Decimal `json:"amount"`
	Type            Direction       `json:"type"`
	CategoryID      string          `json:"category_id,omitempty"`
	CategoryName    string          `json:"category_name,omitempty"`
	SubcategoryID   string          `json:"subcategory_id,omitempty"`
	SubcategoryName string          `json:"subcategory_name,omitempty"`
	Date            string          `json:"date"` // ISO YYYY-MM-DD
	AccountID       string          `json:"account_id,omitempty"`
	AccountName     string          `json:"account_name,omitempty"`
	AccountType     AccountType     `json:"account_type,omitempty"`
	IsRecurring     bool            `json:"is_recurring"`
	Merchant        string          `json:"merchant,omitempty"`
	Confidence      decimal.Decimal `json:"confidence"`
}

// AnalysisResult is the outcome of analyzing one SMS. Data is set only when
// Success is true; Extracted is kept on failure too, for debugging.
type AnalysisResult struct {
	Success    bool
	Data       *Transaction
	Error      string
	Confidence decimal.Decimal
	Extracted  *Fields
}
