package analyzer

import (
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"github.com/octopus-money/octopus/internal/model"
)

// All extraction runs over an uppercased copy of the SMS, so the patterns
// below are written in uppercase. Each field is pulled independently and a
// miss (except amount) leaves the zero value: this is a best-effort
// assistant, not a strict parser.

// incomeKeywords flip the direction from expense to income.
var incomeKeywords = []string{"CREDITED", "DEPOSIT", "RECEIVED", "REFUND", "CASHBACK", "SALARY"}

// bankNames is scanned in order; the first substring hit wins.
var bankNames = []string{"HDFC", "ICICI", "AXIS", "SBI", "KOTAK", "INDUSIND"}

// cityNames and corpSuffixes get stripped from the tail of a merchant.
var (
	cityNames    = []string{"BANGALORE", "MUMBAI", "DELHI", "CHENNAI", "HYDERABAD", "PUNE", "KOLKATA"}
	corpSuffixes = []string{"PVT", "LTD", "LIMITED", "PRIVATE", "INDIA"}
)

// amountPatterns are tried in order; the first match wins.
var amountPatterns = []*regexp.Regexp{
	// Currency marker before the number: "Rs.1,234.50", "INR 500".
	regexp.MustCompile(`(?:RS\.?|INR|₹)\s*([\d,]+(?:\.\d{1,2})?)`),
	// Currency marker after the number: "500 INR".
	regexp.MustCompile(`([\d,]+(?:\.\d{1,2})?)\s*(?:RS\.?|INR|₹)`),
	// Amount keyword: "amount of Rs. 500", "amount 500".
	regexp.MustCompile(`AMOUNT\s*(?:OF\s+)?(?:RS\.?|INR|₹)?\s*([\d,]+(?:\.\d{1,2})?)`),
	// Bare number followed by a transaction verb: "500 debited".
	regexp.MustCompile(`([\d,]+(?:\.\d{1,2})?)\s*(?:DEBITED|CREDITED|SPENT|PAID)`),
}

var (
	numericDatePattern = regexp.MustCompile(`\b(\d{1,2})[-/](\d{1,2})[-/](\d{2,4})\b`)
	textualDatePattern = regexp.MustCompile(`\b(\d{1,2})(?:ST|ND|RD|TH)?\s*(JAN|FEB|MAR|APR|MAY|JUN|JUL|AUG|SEP|OCT|NOV|DEC)[A-Z]*\.?,?\s*(\d{2,4})\b`)
	onDatePattern      = regexp.MustCompile(`\bON\s+(\d{1,2}[-/]\d{1,2}[-/]\d{2,4})\b`)
)

var monthsByPrefix = map[string]time.Month{
	"JAN": time.January, "FEB": time.February, "MAR": time.March,
	"APR": time.April, "MAY": time.May, "JUN": time.June,
	"JUL": time.July, "AUG": time.August, "SEP": time.September,
	"OCT": time.October, "NOV": time.November, "DEC": time.December,
}

// cardPatterns capture the trailing four digits of a masked card or account
// number.
var cardPatterns = []*regexp.Regexp{
	regexp.MustCompile(`(?:X+|\*+)(\d{4})\b`),
	regexp.MustCompile(`CARD\s*(?:NO\.?\s*)?[X*]*(\d{4})\b`),
	regexp.MustCompile(`A/C\s*[X*]*(\d{4})\b`),
}

// merchantStop bounds a merchant capture: a following keyword, dash, digit,
// or end of string.
const merchantStop = `(?:\s+(?:ON|USING|VIA|AVL|REF)\b|\s*-|\s*\d|\s*$)`

// merchantBody requires a leading letter so date-like "ON 12-05-2024" never
// starts a capture.
const merchantBody = `([A-Z][A-Z&.'*\s]*?)`

// merchantPatterns are tried in order; the first pattern whose capture
// survives cleanup wins.
var merchantPatterns = []*regexp.Regexp{
	regexp.MustCompile(`(?:\bON\b|\bAT\b|@)\s*` + merchantBody + merchantStop),
	regexp.MustCompile(`(?:PAID\s+TO|\bTO\b)\s*` + merchantBody + merchantStop),
	regexp.MustCompile(`(?:\bFROM\b|\bVIA\b)\s*` + merchantBody + merchantStop),
	regexp.MustCompile(`(?:\bFOR\b|\bAT\b)\s*` + merchantBody + merchantStop),
}

// extractor pulls structured fields out of raw SMS text. The clock is a
// field so tests can pin "today".
type extractor struct {
	now func() time.Time
}

func newExtractor() extractor {
	return extractor{now: time.Now}
}

// extract applies every field heuristic to one SMS. Only a missing amount is
// fatal, and even that is reported through the invalid NullDecimal rather
// than an error.
func (e extractor) extract(raw string) model.Fields {
	upper := strings.ToUpper(raw)

	fields := model.Fields{
		Type:         extractDirection(upper),
		Amount:       extractAmount(upper),
		Date:         e.now(),
		CardNumber:   extractCardNumber(upper),
		BankName:     extractBankName(upper),
		Merchant:     extractMerchant(upper),
		OriginalText: raw,
	}
	if d, ok := extractDate(upper); ok {
		fields.Date = d
	}
	return fields
}

// extractDirection defaults to expense and switches to income on any income
// keyword.
func extractDirection(upper string) model.Direction {
	for _, kw := range incomeKeywords {
		if strings.Contains(upper, kw) {
			return model.DirectionIncome
		}
	}
	return model.DirectionExpense
}

// extractAmount returns the first amount any pattern captures, with
// thousands separators stripped. An invalid NullDecimal means no pattern
// matched.
func extractAmount(upper string) decimal.NullDecimal {
	for _, p := range amountPatterns {
		m := p.FindStringSubmatch(upper)
		if m == nil {
			continue
		}
		amt, err := decimal.NewFromString(strings.ReplaceAll(m[1], ",", ""))
		if err != nil {
			continue
		}
		return decimal.NullDecimal{Decimal: amt, Valid: true}
	}
	return decimal.NullDecimal{}
}

// extractDate returns the first date any pattern captures. Invalid parses
// (month 13, day 32) are skipped silently so the caller keeps its default.
func extractDate(upper string) (time.Time, bool) {
	if m := numericDatePattern.FindStringSubmatch(upper); m != nil {
		if d, ok := makeDate(m[1], m[2], m[3]); ok {
			return d, true
		}
	}
	if m := textualDatePattern.FindStringSubmatch(upper); m != nil {
		if d, ok := makeTextualDate(m[1], m[2], m[3]); ok {
			return d, true
		}
	}
	if m := onDatePattern.FindStringSubmatch(upper); m != nil {
		if n := numericDatePattern.FindStringSubmatch(m[1]); n != nil {
			if d, ok := makeDate(n[1], n[2], n[3]); ok {
				return d, true
			}
		}
	}
	return time.Time{}, false
}

// makeDate builds a date from D-M-Y strings, rejecting out-of-range parts.
// The inputs are regex-captured digit runs, so Atoi cannot fail here.
func makeDate(dayStr, monthStr, yearStr string) (time.Time, bool) {
	day, _ := strconv.Atoi(dayStr)
	month, _ := strconv.Atoi(monthStr)
	year, _ := strconv.Atoi(yearStr)
	year = normalizeYear(year)
	if month < 1 || month > 12 || day < 1 || day > 31 {
		return time.Time{}, false
	}
	d := time.Date(year, time.Month(month), day, 0, 0, 0, 0, time.UTC)
	// time.Date normalizes overflow (Feb 30 -> Mar 2); treat that as invalid.
	if d.Day() != day || int(d.Month()) != month {
		return time.Time{}, false
	}
	return d, true
}

func makeTextualDate(dayStr, monthStr, yearStr string) (time.Time, bool) {
	month, ok := monthsByPrefix[monthStr]
	if !ok {
		return time.Time{}, false
	}
	day, _ := strconv.Atoi(dayStr)
	year, _ := strconv.Atoi(yearStr)
	year = normalizeYear(year)
	if day < 1 || day > 31 {
		return time.Time{}, false
	}
	d := time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
	if d.Day() != day || d.Month() != month {
		return time.Time{}, false
	}
	return d, true
}

func normalizeYear(y int) int {
	if y < 100 {
		return y + 2000
	}
	return y
}

// extractCardNumber returns the last four digits of a masked card number,
// or "" when no pattern matches.
func extractCardNumber(upper string) string {
	for _, p := range cardPatterns {
		if m := p.FindStringSubmatch(upper); m != nil {
			return m[1]
		}
	}
	return ""
}

// extractBankName scans the fixed bank list in order for a literal hit.
func extractBankName(upper string) string {
	for _, bank := range bankNames {
		if strings.Contains(upper, bank) {
			return bank
		}
	}
	return ""
}

// extractMerchant returns the first cleaned merchant capture, or "".
func extractMerchant(upper string) string {
	for _, p := range merchantPatterns {
		m := p.FindStringSubmatch(upper)
		if m == nil {
			continue
		}
		if cleaned := cleanMerchant(m[1]); cleaned != "" {
			return cleaned
		}
	}
	return ""
}

// cleanMerchant strips payment-gateway and location noise: a leading "IND*"
// token, trailing city names, trailing corporate suffixes, and trailing
// dashes or dots. Runs to a fixed point, so cleaning an already-clean
// merchant is a no-op.
func cleanMerchant(s string) string {
	s = strings.TrimSpace(s)
	s = strings.TrimPrefix(s, "IND*")
	for {
		trimmed := strings.TrimSpace(strings.TrimRight(s, "-. "))
		trimmed = trimTrailingWord(trimmed, cityNames)
		trimmed = trimTrailingWord(trimmed, corpSuffixes)
		if trimmed == s {
			return s
		}
		s = trimmed
	}
}

func trimTrailingWord(s string, words []string) string {
	for _, w := range words {
		if strings.HasSuffix(s, " "+w) {
			return strings.TrimSpace(strings.TrimSuffix(s, w))
		}
	}
	return s
}
