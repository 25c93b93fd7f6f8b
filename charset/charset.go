// Package charset converts message text to and from the byte encodings a QR
// code can carry.
package charset

import (
	"fmt"
	"unicode/utf8"

	"golang.org/x/text/encoding/charmap"
	"golang.org/x/text/encoding/japanese"

	qrcodegen "github.com/nikhil4902/qrcodegen"
)

// IsLatin1 reports whether every code point in s is at most 255.
func IsLatin1(s string) bool {
	for _, r := range s {
		if r > 0xFF {
			return false
		}
	}
	return true
}

// EncodeLatin1 maps each code point of s to one ISO-8859-1 byte. It fails
// with ErrCharacterOutOfRange on the first code point above 255.
func EncodeLatin1(s string) ([]byte, error) {
	out := make([]byte, 0, utf8.RuneCountInString(s))
	for i, r := range s {
		b, ok := charmap.ISO8859_1.EncodeRune(r)
		if !ok {
			return nil, fmt.Errorf("%w: code point U+%04X at offset %d does not fit in a byte",
				qrcodegen.ErrCharacterOutOfRange, r, i)
		}
		out = append(out, b)
	}
	return out, nil
}

// DecodeLatin1 is the inverse of EncodeLatin1.
func DecodeLatin1(data []byte) string {
	runes := make([]rune, len(data))
	for i, b := range data {
		runes[i] = charmap.ISO8859_1.DecodeByte(b)
	}
	return string(runes)
}

// IsOnlyDoubleByteKanji reports whether s encodes in Shift_JIS entirely as
// double-byte characters from the QR Kanji ranges 0x8140-0x9FFC and
// 0xE040-0xEBBF.
func IsOnlyDoubleByteKanji(s string) bool {
	if s == "" {
		return false
	}
	encoded, err := japanese.ShiftJIS.NewEncoder().Bytes([]byte(s))
	if err != nil || len(encoded)%2 != 0 {
		return false
	}
	for i := 0; i < len(encoded); i += 2 {
		code := int(encoded[i])<<8 | int(encoded[i+1])
		if !(code >= 0x8140 && code <= 0x9FFC) && !(code >= 0xE040 && code <= 0xEBBF) {
			return false
		}
	}
	return true
}
