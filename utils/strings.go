package utils

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"golang.org/x/text/unicode/norm"
)

// NormalizeString normalizes a string as NFKC
func NormalizeString(str string) string {
	return norm.NFKC.String(str)
}

// ValidateString checks if the given string is:
//
// 1. non-empty
// 2. entirely composed of utf8 runes
// 3. normalized as NFKC
// 4. does not contain any of the forbidden characters
func ValidateString(str string, forbidden ...string) error {
	if len(str) == 0 {
		return fmt.Errorf("string is empty")
	}

	if !utf8.ValidString(str) {
		return fmt.Errorf("not an utf8 string")
	}

	if !norm.NFKC.IsNormalString(str) {
		return fmt.Errorf("wrong normalization")
	}

	f := norm.NFKC.String(strings.Join(forbidden, ""))
	if len(f) > 0 && strings.ContainsAny(str, f) {
		return fmt.Errorf("string '%s' must not contain any of '%s'", str, f)
	}

	return nil
}
