package sanitizer

import (
	"strings"

	"golang.org/x/text/unicode/norm"
)

// Trim removes leading and trailing whitespace from a string.
func Trim(s string) string {
	return strings.TrimSpace(s)
}

// TrimToLower removes leading and trailing whitespace and converts to lowercase.
func TrimToLower(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}

// NormalizeUnicode composes the string to NFC. Text pasted from some editors
// carries decomposed letters (Ё as Е followed by U+0308), which would not
// match patterns written with precomposed characters.
func NormalizeUnicode(s string) string {
	return norm.NFC.String(s)
}

// Field is the standard cleanup for a single-line form value.
var Field = Compose(NormalizeUnicode, Trim)
