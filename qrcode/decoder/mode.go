package decoder

import (
	"fmt"
	"strings"

	qrcodegen "github.com/nikhil4902/qrcodegen"
)

// Mode represents a QR code data encoding mode. Its value is the 4-bit mode
// indicator written before each segment.
type Mode int

const (
	ModeTerminator   Mode = 0x00
	ModeNumeric      Mode = 0x01
	ModeAlphanumeric Mode = 0x02
	ModeByte         Mode = 0x04
	ModeECI          Mode = 0x07
	ModeKanji        Mode = 0x08
)

// characterCountBits contains [v1-9, v10-26, v27-40] bit counts.
var characterCountBits = map[Mode][3]int{
	ModeNumeric:      {10, 12, 14},
	ModeAlphanumeric: {9, 11, 13},
	ModeByte:         {8, 16, 16},
	ModeKanji:        {8, 10, 12},
}

// ModeForBits returns the Mode for a 4-bit mode indicator.
func ModeForBits(bits int) (Mode, error) {
	switch m := Mode(bits); m {
	case ModeTerminator, ModeNumeric, ModeAlphanumeric, ModeByte, ModeECI, ModeKanji:
		return m, nil
	}
	return 0, fmt.Errorf("%w: mode indicator %#x", qrcodegen.ErrFormat, bits)
}

// ParseMode parses a mode name as accepted by EncodeOptions.Mode.
func ParseMode(s string) (Mode, error) {
	switch strings.ToUpper(s) {
	case "NUMERIC":
		return ModeNumeric, nil
	case "ALPHANUMERIC":
		return ModeAlphanumeric, nil
	case "BYTE":
		return ModeByte, nil
	case "KANJI":
		return ModeKanji, nil
	case "ECI":
		return ModeECI, nil
	}
	return 0, fmt.Errorf("%w: unknown mode %q", qrcodegen.ErrConfiguration, s)
}

// CharacterCountBits returns the width of the character count field for this
// mode in the given version number. Modes without a count field return 0.
func (m Mode) CharacterCountBits(version int) int {
	var offset int
	switch {
	case version <= 9:
		offset = 0
	case version <= 26:
		offset = 1
	default:
		offset = 2
	}
	return characterCountBits[m][offset]
}

// Bits returns the 4-bit mode indicator.
func (m Mode) Bits() int {
	return int(m)
}

func (m Mode) String() string {
	switch m {
	case ModeTerminator:
		return "TERMINATOR"
	case ModeNumeric:
		return "NUMERIC"
	case ModeAlphanumeric:
		return "ALPHANUMERIC"
	case ModeByte:
		return "BYTE"
	case ModeECI:
		return "ECI"
	case ModeKanji:
		return "KANJI"
	}
	return fmt.Sprintf("Mode(%d)", int(m))
}
