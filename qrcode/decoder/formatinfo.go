package decoder

import "math/bits"

// FormatInfoMask is XORed into every 15-bit format information word.
const FormatInfoMask = 0x5412

// FormatInformation is the error correction level and mask read from a symbol.
type FormatInformation struct {
	ECLevel  ErrorCorrectionLevel
	DataMask int
}

// formatInfoDecodeLookup pairs each masked 15-bit word with its 5-bit payload.
var formatInfoDecodeLookup = [32][2]int{
	{0x5412, 0x00}, {0x5125, 0x01}, {0x5E7C, 0x02}, {0x5B4B, 0x03},
	{0x45F9, 0x04}, {0x40CE, 0x05}, {0x4F97, 0x06}, {0x4AA0, 0x07},
	{0x77C4, 0x08}, {0x72F3, 0x09}, {0x7DAA, 0x0A}, {0x789D, 0x0B},
	{0x662F, 0x0C}, {0x6318, 0x0D}, {0x6C41, 0x0E}, {0x6976, 0x0F},
	{0x1689, 0x10}, {0x13BE, 0x11}, {0x1CE7, 0x12}, {0x19D0, 0x13},
	{0x0762, 0x14}, {0x0255, 0x15}, {0x0D0C, 0x16}, {0x083B, 0x17},
	{0x355F, 0x18}, {0x3068, 0x19}, {0x3F31, 0x1A}, {0x3A06, 0x1B},
	{0x24B4, 0x1C}, {0x2183, 0x1D}, {0x2EDA, 0x1E}, {0x2BED, 0x1F},
}

func newFormatInformation(formatInfo int) *FormatInformation {
	// Every 2-bit value is a valid level.
	ecLevel, _ := ECLevelForBits((formatInfo >> 3) & 0x03)
	return &FormatInformation{
		ECLevel:  ecLevel,
		DataMask: formatInfo & 0x07,
	}
}

// DecodeFormatInformation decodes the two masked copies read from a symbol,
// tolerating up to 3 bit errors. It returns nil if neither copy is close
// enough to a valid word.
func DecodeFormatInformation(maskedFormatInfo1, maskedFormatInfo2 int) *FormatInformation {
	bestDifference := 32
	bestFormatInfo := 0
	for _, entry := range formatInfoDecodeLookup {
		target := entry[0]
		if target == maskedFormatInfo1 || target == maskedFormatInfo2 {
			return newFormatInformation(entry[1])
		}
		for _, candidate := range [2]int{maskedFormatInfo1, maskedFormatInfo2} {
			if bitsDiff := bits.OnesCount(uint(candidate ^ target)); bitsDiff < bestDifference {
				bestFormatInfo = entry[1]
				bestDifference = bitsDiff
			}
		}
	}
	if bestDifference <= 3 {
		return newFormatInformation(bestFormatInfo)
	}
	return nil
}
