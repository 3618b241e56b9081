// Package analyzer implements a best-effort, rule-based parser for bank
// transaction SMS messages. Given a raw SMS and a snapshot of the user's
// categories, accounts, and cards, it produces a structured transaction
// guess with a confidence score. Soft misses (unknown merchant, unresolved
// account) degrade confidence instead of failing; only a missing amount
// aborts an analysis.
package analyzer

import (
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/octopus-money/octopus/internal/model"
	"github.com/octopus-money/octopus/internal/rules"
)

// ErrNoAmount is the message reported when no amount token can be found.
const ErrNoAmount = "unable to extract amount from SMS"

// Analyzer turns raw bank SMS text into a transaction guess. Construction
// builds the lookup indexes once; Analyze only reads them, so one Analyzer
// is safe for concurrent use.
type Analyzer struct {
	idx   indexes
	table []rules.Rule
	ext   extractor
}

// New creates an Analyzer over a context snapshot and a rule table
// (typically rules.Default(), possibly merged with user rules).
func New(snap model.Snapshot, table []rules.Rule) *Analyzer {
	return &Analyzer{
		idx:   buildIndexes(snap),
		table: table,
		ext:   newExtractor(),
	}
}

// Analyze runs the pipeline: extract, categorize, resolve account, score,
// assemble. It never panics across its boundary; anything unexpected comes
// back as a failed result.
func (a *Analyzer) Analyze(smsText string) (result model.AnalysisResult) {
	defer func() {
		if r := recover(); r != nil {
			result = model.AnalysisResult{Error: fmt.Sprintf("analysis failed: %v", r)}
		}
	}()

	fields := a.ext.extract(smsText)
	if !fields.Amount.Valid {
		return model.AnalysisResult{Error: ErrNoAmount, Extracted: &fields}
	}

	cat := categorize(fields.Merchant, a.table, a.idx)

	acct, ok := resolveByCard(fields.CardNumber, a.idx)
	if !ok {
		acct = resolveByBank(fields.BankName, a.idx)
	}

	confidence := score(fields, cat, acct)
	txn := assemble(fields, cat, acct, confidence)

	return model.AnalysisResult{
		Success:    true,
		Data:       &txn,
		Confidence: confidence,
		Extracted:  &fields,
	}
}

// assemble packages the pipeline outputs into the transaction-shaped object
// callers persist.
func assemble(fields model.Fields, cat model.Categorization, acct model.AccountInfo, confidence decimal.Decimal) model.Transaction {
	name := fields.Merchant
	if name == "" {
		if fields.Type == model.DirectionIncome {
			name = "Income Transaction"
		} else {
			name = "Expense Transaction"
		}
	}
	if fields.CardNumber != "" {
		name += " - Card XX" + fields.CardNumber
	}

	// Surface the specific card to the user when we know both halves.
	accountName := acct.AccountName
	if fields.BankName != "" && fields.CardNumber != "" && acct.AccountType == model.AccountTypeCreditCard {
		accountName = fields.BankName + " " + fields.CardNumber
	}

	return model.Transaction{
		Name:            name,
		Amount:          fields.Amount.Decimal,
		Type:            fields.Type,
		CategoryID:      cat.CategoryID,
		CategoryName:    cat.CategoryName,
		SubcategoryID:   cat.SubcategoryID,
		SubcategoryName: cat.SubcategoryName,
		Date:            fields.Date.Format("2006-01-02"),
		AccountID:       acct.AccountID,
		AccountName:     accountName,
		AccountType:     acct.AccountType,
		IsRecurring:     false,
		Merchant:        fields.Merchant,
		Confidence:      confidence,
	}
}
