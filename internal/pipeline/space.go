package pipeline

import (
	"strings"
	"unicode"
)

// isSpace matches the whitespace browsers strip when trimming strings: Unicode
// space separators, line terminators and the byte order mark U+FEFF.
// NEL (U+0085) is not whitespace there, although unicode.IsSpace says it is.
func isSpace(r rune) bool {
	if r == '\ufeff' {
		return true
	}
	return r != '\u0085' && unicode.IsSpace(r)
}

// trimSpace removes leading and trailing isSpace runes.
func trimSpace(s string) string {
	return strings.TrimFunc(s, isSpace)
}
