package analyzer

import (
	"strings"

	"github.com/octopus-money/octopus/internal/model"
)

// resolveByCard scans the credit-card index for the first key containing the
// extracted last-four digits. The matched key doubles as the display name.
// The scan walks cardKeys, not the map, so identical inputs always resolve
// the same key. A miss is not an error; the caller falls back to bank-name
// resolution.
func resolveByCard(cardNumber string, idx indexes) (model.AccountInfo, bool) {
	if cardNumber == "" {
		return model.AccountInfo{}, false
	}
	for _, key := range idx.cardKeys {
		if strings.Contains(key, cardNumber) {
			return model.AccountInfo{
				AccountID:   idx.creditCards[key],
				AccountName: key,
				AccountType: model.AccountTypeCreditCard,
			}, true
		}
	}
	return model.AccountInfo{}, false
}

// resolveByBank maps an extracted bank name to a known credit card or bank
// account. Credit cards are preferred: most SMS alerts in this domain are
// card transactions. Name variants with and without a " BANK" suffix absorb
// naming inconsistencies between the SMS and the user's data.
//
// When the bank name is recognized but nothing resolves, a synthetic
// credit-card label is still returned so the UI always has a plausible
// pre-fill. That assume-credit-card fallback is a deliberate heuristic, not
// a correctness guarantee: it can mislabel pure bank-transfer SMS.
func resolveByBank(bankName string, idx indexes) model.AccountInfo {
	if bankName == "" {
		return model.AccountInfo{}
	}

	upper := strings.ToUpper(bankName)
	stripped := strings.TrimSuffix(upper, " BANK")
	variants := []string{upper, upper + " BANK", stripped, stripped + " BANK"}

	for _, v := range variants {
		if id, ok := idx.creditCards[v]; ok {
			return model.AccountInfo{
				AccountID:   id,
				AccountName: bankName + " Credit Card",
				AccountType: model.AccountTypeCreditCard,
			}
		}
	}

	for _, v := range []string{upper, bankName} {
		if id, ok := idx.accounts[v]; ok {
			return model.AccountInfo{
				AccountID:   id,
				AccountName: bankName + " Account",
				AccountType: model.AccountTypeBank,
			}
		}
	}

	return model.AccountInfo{
		AccountName: bankName + " Credit Card",
		AccountType: model.AccountTypeCreditCard,
	}
}
