package validation

import (
	"strconv"
	"strings"
)

// ToStringSafe renders a numeric value for a form field. Zero stays "0";
// trailing zeros after the decimal point are trimmed.
func ToStringSafe(v float64) string {
	s := strconv.FormatFloat(v, 'f', -1, 64)
	return s
}

// ToNumberSafe parses a form-friendly numeric string. Empty or malformed
// input yields 0, never an error: boundary coercion must not throw.
func ToNumberSafe(s string) float64 {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0
	}
	n, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0
	}
	return n
}

// ToIDSafe parses a numeric identifier from a form string. Empty or
// malformed input yields 0, which callers treat as "no reference".
func ToIDSafe(s string) uint {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0
	}
	n, err := strconv.ParseUint(s, 10, 64)
	if err != nil {
		return 0
	}
	return uint(n)
}

// IDToString renders an identifier for a form field, empty for "none".
func IDToString(id uint) string {
	if id == 0 {
		return ""
	}
	return strconv.FormatUint(uint64(id), 10)
}
