package fields

import (
	"regexp"
	"strings"
)

// Identity is the person-identifying signal set extracted from one document.
// Fields with no match stay empty.
type Identity struct {
	Name           string `json:"name,omitempty"`
	Email          string `json:"email,omitempty"`
	SSN            string `json:"ssn,omitempty"`
	DriversLicense string `json:"driversLicense,omitempty"`
	Passport       string `json:"passport,omitempty"`
}

// namePatterns are ordered most-constrained first; the first pattern that
// matches anywhere in the text wins, so reliable signals beat noisy fallbacks.
var namePatterns = []*regexp.Regexp{
	regexp.MustCompile(`(?:Mr\.|Mrs\.|Ms\.|Dr\.)\s+([A-Z][a-z]+(?:\s+[A-Z][a-z]+)+)`),
	regexp.MustCompile(`Name:?\s*([A-Z][a-z]+(?:\s+[A-Z][a-z]+)+)`),
	regexp.MustCompile(`(?m)^([A-Z][a-z]+(?:\s+[A-Z][a-z]+)+)$`),
	regexp.MustCompile(`([A-Z][a-z]+(?:\s+[A-Z][a-z]+)+)`),
}

var (
	ssnPattern      = regexp.MustCompile(`\d{3}-\d{2}-\d{4}`)
	licensePattern  = regexp.MustCompile(`[A-Z]\d{7}`)
	passportPattern = regexp.MustCompile(`[A-Z]\d{8}`)
	emailPattern    = regexp.MustCompile(`[\w.-]+@[\w.-]+\.\w+`)
)

// Identify runs the ordered name patterns and the ID token patterns over text,
// taking the first match for each field.
func Identify(text string) Identity {
	var id Identity

	for _, pattern := range namePatterns {
		if m := pattern.FindStringSubmatch(text); m != nil {
			id.Name = strings.TrimSpace(m[1])
			break
		}
	}

	for _, token := range ssnPattern.FindAllString(text, -1) {
		if validSSN(token) {
			id.SSN = token
			break
		}
	}

	id.DriversLicense = licensePattern.FindString(text)
	id.Passport = passportPattern.FindString(text)
	id.Email = emailPattern.FindString(text)

	return id
}

// Empty reports whether no identity signal was found at all.
func (i Identity) Empty() bool {
	return i.Name == "" && i.Email == "" && i.SSN == "" && i.DriversLicense == "" && i.Passport == ""
}

// validSSN rejects SSN-shaped tokens in the reserved ranges: area 000, 666 or
// 900-999, group 00, serial 0000. RE2 has no lookaheads, so the exclusions are
// checked after matching.
func validSSN(token string) bool {
	area, group, serial := token[0:3], token[4:6], token[7:11]
	if area == "000" || area == "666" || area[0] == '9' {
		return false
	}
	if group == "00" {
		return false
	}
	return serial != "0000"
}
