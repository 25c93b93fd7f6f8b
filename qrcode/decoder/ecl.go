// Package decoder holds the QR code tables shared by the encoder (versions,
// block structure, character capacities, modes, masks) and a reader that
// decodes a finished symbol back to text.
package decoder

import (
	"fmt"
	"strings"

	qrcodegen "github.com/nikhil4902/qrcodegen"
)

// ErrorCorrectionLevel represents the four QR code error correction levels.
type ErrorCorrectionLevel int

const (
	ECLevelL ErrorCorrectionLevel = iota // ~7% correction
	ECLevelM                             // ~15% correction
	ECLevelQ                             // ~25% correction
	ECLevelH                             // ~30% correction
)

// ECLevelsStrongestFirst is the order in which automatic selection tries
// levels within a version.
var ECLevelsStrongestFirst = [4]ErrorCorrectionLevel{ECLevelH, ECLevelQ, ECLevelM, ECLevelL}

// Bits returns the 2-bit format information indicator of this level.
func (ecl ErrorCorrectionLevel) Bits() int {
	switch ecl {
	case ECLevelL:
		return 0x01
	case ECLevelM:
		return 0x00
	case ECLevelQ:
		return 0x03
	case ECLevelH:
		return 0x02
	}
	return 0
}

// Ordinal returns the ordinal position (L=0, M=1, Q=2, H=3).
func (ecl ErrorCorrectionLevel) Ordinal() int {
	return int(ecl)
}

// String returns the level name.
func (ecl ErrorCorrectionLevel) String() string {
	switch ecl {
	case ECLevelL:
		return "L"
	case ECLevelM:
		return "M"
	case ECLevelQ:
		return "Q"
	case ECLevelH:
		return "H"
	}
	return "?"
}

// ParseECLevel parses "L", "M", "Q" or "H", ignoring case.
func ParseECLevel(s string) (ErrorCorrectionLevel, error) {
	switch strings.ToUpper(s) {
	case "L":
		return ECLevelL, nil
	case "M":
		return ECLevelM, nil
	case "Q":
		return ECLevelQ, nil
	case "H":
		return ECLevelH, nil
	}
	return 0, fmt.Errorf("%w: unknown error correction level %q", qrcodegen.ErrConfiguration, s)
}

// ECLevelForBits returns the ErrorCorrectionLevel for a 2-bit format indicator.
func ECLevelForBits(bits int) (ErrorCorrectionLevel, error) {
	switch bits {
	case 0:
		return ECLevelM, nil
	case 1:
		return ECLevelL, nil
	case 2:
		return ECLevelH, nil
	case 3:
		return ECLevelQ, nil
	}
	return 0, fmt.Errorf("%w: error correction indicator %d", qrcodegen.ErrFormat, bits)
}
