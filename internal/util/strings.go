package util

import (
	"unicode/utf8"

	"golang.org/x/text/encoding/charmap"
)

// ToValidUTF8 ensures a string is valid UTF-8.
// Query results and record files occasionally carry Latin-1 text; decoding
// as ISO-8859-1 preserves characters like ä, ö, ü, é instead of replacing
// them with the replacement rune.
func ToValidUTF8(s string) string {
	if utf8.ValidString(s) {
		return s
	}

	decoded, err := charmap.ISO8859_1.NewDecoder().String(s)
	if err == nil {
		return decoded
	}

	// Fallback: decode byte-by-byte as Latin-1.
	// This always works since Latin-1 maps 1:1 to Unicode codepoints 0-255.
	runes := make([]rune, len(s))
	for i := 0; i < len(s); i++ {
		runes[i] = rune(s[i])
	}
	return string(runes)
}
