package symbol

import (
	"unicode/utf8"

	"golang.org/x/text/unicode/runenames"
)

// Name returns the Unicode character name of a base symbol, used by the
// catalog views. Multi-rune strings are named after their first rune and an
// empty string has no name.
func Name(s string) string {
	if s == "" {
		return ""
	}
	r, _ := utf8.DecodeRuneInString(s)
	if r == utf8.RuneError {
		return ""
	}
	return runenames.Name(r)
}
