package fields

import (
	"regexp"
	"strconv"
	"strings"
)

// Metadata holds the best-effort structured fields pulled from raw document
// text. Every field is independently optional: Amount defaults to 0, the
// string fields stay empty when no match is found.
type Metadata struct {
	Amount        float64
	Date          string
	AccountNumber string
}

var (
	amountPattern  = regexp.MustCompile(`\$[\d,]+\.?\d*`)
	datePattern    = regexp.MustCompile(`\d{1,2}/\d{1,2}/\d{4}`)
	accountPattern = regexp.MustCompile(`Account\s*#?\s*:?\s*(\d{8,12})`)
)

// Extract scans text for a dollar amount, a US-style date and an account
// number. First match wins for every field; there is no validation that a
// match is genuinely what it looks like (a stray "$" sequence false-positives,
// accepted trade-off for pattern simplicity).
func Extract(text string) Metadata {
	var meta Metadata

	for _, raw := range amountPattern.FindAllString(text, -1) {
		cleaned := strings.NewReplacer("$", "", ",", "").Replace(raw)
		amount, err := strconv.ParseFloat(cleaned, 64)
		if err != nil {
			continue
		}
		meta.Amount = amount
		break
	}

	// Taken verbatim, no calendar validation.
	meta.Date = datePattern.FindString(text)

	if m := accountPattern.FindStringSubmatch(text); m != nil {
		meta.AccountNumber = m[1]
	}

	return meta
}
