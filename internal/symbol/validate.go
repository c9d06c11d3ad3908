package symbol

import (
	"unicode"
	"unicode/utf8"
)

// MaxSymbolLength bounds a generated symbol to 15 code points.
const MaxSymbolLength = 15

// allowedCategories lists the Unicode general categories a generated symbol
// may contain: other/math symbols, nonspacing/enclosing marks, dash
// punctuation and uppercase letters.
var allowedCategories = []*unicode.RangeTable{
	unicode.So,
	unicode.Sm,
	unicode.Mn,
	unicode.Me,
	unicode.Pd,
	unicode.Lu,
}

// IsValid reports whether a candidate symbol may be shown to the user.
// Malformed text is invalid rather than an error, overlong strings are
// invalid, and every rune must fall in an allowed Unicode category.
func IsValid(candidate string) bool {
	if !utf8.ValidString(candidate) {
		return false
	}
	if utf8.RuneCountInString(candidate) > MaxSymbolLength {
		return false
	}
	for _, r := range candidate {
		if !unicode.In(r, allowedCategories...) {
			return false
		}
	}
	return true
}
