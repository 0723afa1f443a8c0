// Package nicename turns field identifiers into inspector display labels.
package nicename

import (
	"strings"
	"unicode"
	"unicode/utf8"
)

// Format converts an identifier such as "_fieldName" into "Field Name".
//
// Leading underscores are dropped, the first rune is upper-cased and a space
// is inserted wherever an upper-case rune follows a lower-case one. Runs of
// capitals are left alone, so "HTTPServer" is returned as is. Strings of one
// rune or less come back unchanged. An identifier made only of underscores
// formats to "". Bytes that are not valid UTF-8 are copied unchanged.
func Format(s string) string {
	if utf8.RuneCountInString(s) <= 1 {
		return s
	}

	t := strings.TrimLeft(s, "_")
	if t == "" {
		return ""
	}

	var sb strings.Builder
	sb.Grow(len(t) + len(t)/4)

	first, size := utf8.DecodeRuneInString(t)
	if first == utf8.RuneError && size <= 1 {
		sb.WriteString(t[:size])
	} else {
		sb.WriteRune(unicode.ToUpper(first))
	}

	// Later runes are copied as raw bytes so invalid UTF-8 passes through.
	prev := first
	for i := size; i < len(t); {
		r, n := utf8.DecodeRuneInString(t[i:])
		if unicode.IsUpper(r) && unicode.IsLower(prev) {
			sb.WriteByte(' ')
		}
		sb.WriteString(t[i : i+n])
		prev = r
		i += n
	}

	return sb.String()
}
