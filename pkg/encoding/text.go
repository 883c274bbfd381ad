// Package encoding provides text encoding utilities for model source files.
package encoding

import (
	"unicode/utf8"

	"golang.org/x/text/encoding/charmap"
	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/transform"
)

// ToUTF8 normalizes model text to BOM-less UTF-8.
// A UTF-8 or UTF-16 byte order mark selects that encoding and is removed.
// Without a BOM, valid UTF-8 passes through unchanged and anything else is
// decoded as Windows-1252, which is what most legacy exporters write into
// object and material names. Returns the original bytes if decoding fails.
func ToUTF8(data []byte) []byte {
	var fallback transform.Transformer = transform.Nop
	if !utf8.Valid(data) {
		fallback = charmap.Windows1252.NewDecoder()
	}

	result, _, err := transform.Bytes(unicode.BOMOverride(fallback), data)
	if err != nil {
		return data
	}
	return result
}

// HasBOM reports whether data starts with a UTF-8 or UTF-16 byte order mark.
func HasBOM(data []byte) bool {
	switch {
	case len(data) >= 3 && data[0] == 0xEF && data[1] == 0xBB && data[2] == 0xBF:
		return true
	case len(data) >= 2 && data[0] == 0xFE && data[1] == 0xFF:
		return true
	case len(data) >= 2 && data[0] == 0xFF && data[1] == 0xFE:
		return true
	}
	return false
}
