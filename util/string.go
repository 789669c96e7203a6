package util

import (
	"fmt"
	"strings"
	"unicode"
)

// StringTakeUntil returns the string up to and excluding char as well as the remainder excluding char
//
// if char was not found, then tail returns the empty string
func StringTakeUntil(s string, char rune) (head string, tail string) {
	for i, r := range s {
		if r == char {
			return s[:i], s[i+1:]
		}
	}
	return s, ""
}

// MangledIdent returns a valid Go identifier that is unique to name
//
// The result always starts with v_, so it never collides with a Go keyword,
// builtin or a helper that does not start with v_. Runes that cannot appear
// in an identifier, as well as '_' itself, are escaped as _XX_ with their
// code point in hex. The mapping is injective, so distinct names never share
// an identifier.
func MangledIdent(name string) string {
	sb := strings.Builder{}
	sb.WriteString("v_")
	for _, r := range name {
		if r != '_' && (unicode.IsLetter(r) || unicode.IsDigit(r)) {
			sb.WriteRune(r)
			continue
		}
		sb.WriteString(fmt.Sprintf("_%x_", r))
	}
	return sb.String()
}
