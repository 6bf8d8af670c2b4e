package pipeline

import (
	"regexp"
	"strings"
)

// nonDigitRegexp strips currency symbols and thousands separators
var nonDigitRegexp = regexp.MustCompile(`[^0-9]`)

// NormalizePrice reduces a locale-formatted price string to its bare integer
// digits. The fractional part and anything after it are dropped.
//
// Example: "5'990.00 руб." → "5990"
func NormalizePrice(raw string) string {
	head, _, _ := strings.Cut(raw, ".")
	return nonDigitRegexp.ReplaceAllString(head, "")
}
