// Package strutil implements the string-literal unescape helper the
// import resolver delegates to, plus Unicode normal-form (NFC) helpers.
package strutil

import (
	"fmt"
	"strconv"
	"strings"

	"golang.org/x/text/unicode/norm"
)

// Unescape decodes a Solidity string-literal body (the text between the
// quotes, already stripped of its surrounding `"`/`'` and `unicode`/`hex`
// prefix) following the escape sequences `\n \r \t \\ \' \" \0`,
// `\xHH`, and `\uHHHH`. It returns the decoded bytes, or an error
// identifying the first invalid escape.
func Unescape(raw string) (string, error) {
	var b strings.Builder
	i := 0
	for i < len(raw) {
		c := raw[i]
		if c != '\\' {
			b.WriteByte(c)
			i++
			continue
		}
		if i+1 >= len(raw) {
			return "", fmt.Errorf("strutil: dangling escape at end of literal")
		}
		switch raw[i+1] {
		case 'n':
			b.WriteByte('\n')
			i += 2
		case 'r':
			b.WriteByte('\r')
			i += 2
		case 't':
			b.WriteByte('\t')
			i += 2
		case '\\':
			b.WriteByte('\\')
			i += 2
		case '\'':
			b.WriteByte('\'')
			i += 2
		case '"':
			b.WriteByte('"')
			i += 2
		case '0':
			b.WriteByte(0)
			i += 2
		case 'x':
			if i+3 >= len(raw) {
				return "", fmt.Errorf("strutil: incomplete \\x escape at offset %d", i)
			}
			n, err := strconv.ParseUint(raw[i+2:i+4], 16, 8)
			if err != nil {
				return "", fmt.Errorf("strutil: invalid \\x escape at offset %d: %w", i, err)
			}
			b.WriteByte(byte(n))
			i += 4
		case 'u':
			if i+5 >= len(raw) {
				return "", fmt.Errorf("strutil: incomplete \\u escape at offset %d", i)
			}
			n, err := strconv.ParseUint(raw[i+2:i+6], 16, 32)
			if err != nil {
				return "", fmt.Errorf("strutil: invalid \\u escape at offset %d: %w", i, err)
			}
			b.WriteRune(rune(n))
			i += 6
		default:
			return "", fmt.Errorf("strutil: unrecognised escape '\\%c' at offset %d", raw[i+1], i)
		}
	}
	return b.String(), nil
}

// IsNFC reports whether s is already in Unicode Normal Form C.
func IsNFC(s string) bool {
	return norm.NFC.IsNormalString(s)
}

// ToNFC returns s normalized to NFC, for callers that want to compare two
// unicode string literals by content rather than by byte sequence.
func ToNFC(s string) string {
	return norm.NFC.String(s)
}
