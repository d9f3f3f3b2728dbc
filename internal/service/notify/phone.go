package notify

import (
	"regexp"
	"strings"
)

var digitsOnly = regexp.MustCompile(`\D`)

// IsDomestic classifies a phone number as using country calling code 1.
// The heuristic is deliberately crude: the whitespace-stripped string
// starts with "+1", or starts with a bare "1" and carries exactly 11
// digits. Caribbean +1 numbers pass; that is an accepted imprecision.
func IsDomestic(phone string) bool {
	cleaned := strings.ReplaceAll(phone, " ", "")
	if strings.HasPrefix(cleaned, "+1") {
		return true
	}
	return strings.HasPrefix(cleaned, "1") && len(digitsOnly.ReplaceAllString(cleaned, "")) == 11
}
