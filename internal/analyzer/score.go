package analyzer

import (
	"github.com/shopspring/decimal"

	"github.com/octopus-money/octopus/internal/model"
)

// Confidence weights. Each term is all-or-nothing; this is a coarse
// presence score, not a statistical classifier.
var (
	weightAmount   = decimal.RequireFromString("0.3")
	weightDate     = decimal.RequireFromString("0.1")
	weightMerchant = decimal.RequireFromString("0.2")
	weightCategory = decimal.RequireFromString("0.2")
	weightAccount  = decimal.RequireFromString("0.2")

	maxConfidence = decimal.NewFromInt(1)
)

// score combines extracted fields and resolved ids into a confidence in
// [0,1]. The date term effectively always applies since extraction defaults
// the date to today.
func score(fields model.Fields, cat model.Categorization, acct model.AccountInfo) decimal.Decimal {
	total := decimal.Zero
	if fields.Amount.Valid && fields.Amount.Decimal.IsPositive() {
		total = total.Add(weightAmount)
	}
	if !fields.Date.IsZero() {
		total = total.Add(weightDate)
	}
	if fields.Merchant != "" {
		total = total.Add(weightMerchant)
	}
	if cat.CategoryID != "" {
		total = total.Add(weightCategory)
	}
	if acct.AccountID != "" {
		total = total.Add(weightAccount)
	}
	if total.GreaterThan(maxConfidence) {
		return maxConfidence
	}
	return total
}
