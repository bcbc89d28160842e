package util

import "strings"

// StripLeadingHyphens removes one "--" or one "-" prefix from s
func StripLeadingHyphens(s string) string {
	if strings.HasPrefix(s, "--") {
		return s[2:]
	}

	return strings.TrimPrefix(s, "-")
}

// StripLeadingAndTrailingQuotes removes a single leading and a single trailing double quote
func StripLeadingAndTrailingQuotes(s string) string {
	s = strings.TrimPrefix(s, `"`)

	return strings.TrimSuffix(s, `"`)
}
