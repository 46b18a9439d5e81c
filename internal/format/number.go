package format

import "strings"

// FormatNumberString inserts a comma between every group of three digits.
// A leading minus sign is preserved.
//
// Parameters:
//   - s: A string of decimal digits, optionally prefixed with '-'.
//
// Returns:
//   - string: The grouped representation, e.g. "12,345".
func FormatNumberString(s string) string {
	sign := ""
	if strings.HasPrefix(s, "-") {
		sign, s = "-", s[1:]
	}
	if len(s) <= 3 {
		return sign + s
	}

	var b strings.Builder
	b.Grow(len(sign) + len(s) + len(s)/3)
	b.WriteString(sign)
	head := len(s) % 3
	if head > 0 {
		b.WriteString(s[:head])
	}
	for i := head; i < len(s); i += 3 {
		if b.Len() > len(sign) {
			b.WriteByte(',')
		}
		b.WriteString(s[i : i+3])
	}
	return b.String()
}

// TruncateDigits shortens s to its first and last edges characters joined
// by "..." when it is longer than limit. Shorter strings are returned as is.
func TruncateDigits(s string, limit, edges int) (string, bool) {
	if len(s) <= limit || 2*edges >= len(s) {
		return s, false
	}
	return s[:edges] + "..." + s[len(s)-edges:], true
}
