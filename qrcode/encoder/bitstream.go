package encoder

import (
	"fmt"
	"unicode/utf8"

	qrcodegen "github.com/nikhil4902/qrcodegen"
	"github.com/nikhil4902/qrcodegen/bitutil"
	"github.com/nikhil4902/qrcodegen/charset"
	"github.com/nikhil4902/qrcodegen/qrcode/decoder"
)

const (
	padByte1 = 0xEC
	padByte2 = 0x11
)

// alphanumericTable maps ASCII values to alphanumeric codes.
var alphanumericTable = [128]int{
	-1, -1, -1, -1, -1, -1, -1, -1, -1, -1, -1, -1, -1, -1, -1, -1,
	-1, -1, -1, -1, -1, -1, -1, -1, -1, -1, -1, -1, -1, -1, -1, -1,
	36, -1, -1, -1, 37, 38, -1, -1, -1, -1, 39, 40, -1, 41, 42, 43,
	0, 1, 2, 3, 4, 5, 6, 7, 8, 9, 44, -1, -1, -1, -1, -1,
	-1, 10, 11, 12, 13, 14, 15, 16, 17, 18, 19, 20, 21, 22, 23, 24,
	25, 26, 27, 28, 29, 30, 31, 32, 33, 34, 35, -1, -1, -1, -1, -1,
	-1, -1, -1, -1, -1, -1, -1, -1, -1, -1, -1, -1, -1, -1, -1, -1,
	-1, -1, -1, -1, -1, -1, -1, -1, -1, -1, -1, -1, -1, -1, -1, -1,
}

// AlphanumericCode returns the alphanumeric code of c, or -1.
func AlphanumericCode(c rune) int {
	if c >= 0 && c < 128 {
		return alphanumericTable[c]
	}
	return -1
}

func isNumeric(content string) bool {
	for _, c := range content {
		if c < '0' || c > '9' {
			return false
		}
	}
	return true
}

func isAlphanumeric(content string) bool {
	for _, c := range content {
		if AlphanumericCode(c) == -1 {
			return false
		}
	}
	return true
}

// ChooseMode returns the most restrictive mode whose character set covers
// content: numeric, then alphanumeric, then byte, then Kanji. Anything else
// needs ECI.
func ChooseMode(content string) decoder.Mode {
	switch {
	case isNumeric(content):
		return decoder.ModeNumeric
	case isAlphanumeric(content):
		return decoder.ModeAlphanumeric
	case charset.IsLatin1(content):
		return decoder.ModeByte
	case charset.IsOnlyDoubleByteKanji(content):
		return decoder.ModeKanji
	}
	return decoder.ModeECI
}

// checkMode verifies that every character of content can be written in mode.
func checkMode(content string, mode decoder.Mode) error {
	switch mode {
	case decoder.ModeNumeric:
		for i, c := range content {
			if c < '0' || c > '9' {
				return fmt.Errorf("%w: %q at offset %d is not numeric", qrcodegen.ErrCharacterOutOfRange, c, i)
			}
		}
	case decoder.ModeAlphanumeric:
		for i, c := range content {
			if AlphanumericCode(c) == -1 {
				return fmt.Errorf("%w: %q at offset %d is not alphanumeric", qrcodegen.ErrCharacterOutOfRange, c, i)
			}
		}
	case decoder.ModeByte:
		_, err := charset.EncodeLatin1(content)
		return err
	default:
		return fmt.Errorf("%w: %s mode for %d characters", qrcodegen.ErrModeNotImplemented, mode, utf8.RuneCountInString(content))
	}
	return nil
}

// chooseVersion picks the version and level for length characters of mode.
// With autoLevel it scans versions upward and, within each, levels from H
// down to L; otherwise it scans versions at ecLevel. A nonzero
// forcedVersion restricts the scan to that version.
func chooseVersion(mode decoder.Mode, length int, ecLevel decoder.ErrorCorrectionLevel, autoLevel bool,
	forcedVersion int) (*decoder.Version, decoder.ErrorCorrectionLevel, error) {
	first, last := 1, 40
	if forcedVersion != 0 {
		if _, err := decoder.VersionForNumber(forcedVersion); err != nil {
			return nil, 0, err
		}
		first, last = forcedVersion, forcedVersion
	}
	levels := []decoder.ErrorCorrectionLevel{ecLevel}
	if autoLevel {
		levels = decoder.ECLevelsStrongestFirst[:]
	}
	for number := first; number <= last; number++ {
		for _, level := range levels {
			if length <= decoder.CharacterCapacity(mode, number, level) {
				version, err := decoder.VersionForNumber(number)
				return version, level, err
			}
		}
	}

	levelName := ecLevel.String()
	if autoLevel {
		levelName = "any"
	}
	if forcedVersion != 0 {
		return nil, 0, fmt.Errorf("%w: %d characters in %s mode at level %s exceed version %d",
			qrcodegen.ErrDataTooLarge, length, mode, levelName, forcedVersion)
	}
	return nil, 0, fmt.Errorf("%w: %d characters in %s mode at level %s exceed version 40",
		qrcodegen.ErrDataTooLarge, length, mode, levelName)
}

// EncodeBitStream packs content into exactly version.DataCodewords(ecLevel)
// data codewords: mode indicator, character count, payload, terminator and
// pad bytes.
func EncodeBitStream(content string, mode decoder.Mode, version *decoder.Version,
	ecLevel decoder.ErrorCorrectionLevel) ([]byte, error) {
	if err := checkMode(content, mode); err != nil {
		return nil, err
	}
	length := utf8.RuneCountInString(content)
	countBits := mode.CharacterCountBits(version.Number)
	if length >= 1<<uint(countBits) {
		return nil, fmt.Errorf("%w: %d characters overflow the %d-bit count field of version %d",
			qrcodegen.ErrDataTooLarge, length, countBits, version.Number)
	}

	bits := bitutil.NewBitArray(0)
	bits.AppendBits(uint32(mode.Bits()), 4)
	bits.AppendBits(uint32(length), countBits)
	if err := appendBytes(content, mode, bits); err != nil {
		return nil, err
	}

	numDataBytes := version.DataCodewords(ecLevel)
	if err := terminateBits(numDataBytes, bits); err != nil {
		return nil, fmt.Errorf("%w: %d characters in %s mode at %d-%s", err, length, mode, version.Number, ecLevel)
	}
	return bits.Bytes(), nil
}

// terminateBits appends up to four terminator bits, zero bits up to the
// next byte boundary, and alternating pad bytes until numDataBytes.
func terminateBits(numDataBytes int, bits *bitutil.BitArray) error {
	capacity := numDataBytes * 8
	if bits.Size() > capacity {
		return fmt.Errorf("%w: %d data bits exceed %d", qrcodegen.ErrDataTooLarge, bits.Size(), capacity)
	}

	for i := 0; i < 4 && bits.Size() < capacity; i++ {
		bits.AppendBit(false)
	}

	if numBitsInLastByte := bits.Size() & 0x07; numBitsInLastByte > 0 {
		for i := numBitsInLastByte; i < 8; i++ {
			bits.AppendBit(false)
		}
	}

	numPaddingBytes := numDataBytes - bits.SizeInBytes()
	for i := 0; i < numPaddingBytes; i++ {
		if i%2 == 0 {
			bits.AppendBits(padByte1, 8)
		} else {
			bits.AppendBits(padByte2, 8)
		}
	}
	return nil
}

func appendBytes(content string, mode decoder.Mode, bits *bitutil.BitArray) error {
	switch mode {
	case decoder.ModeNumeric:
		appendNumericBytes(content, bits)
	case decoder.ModeAlphanumeric:
		appendAlphanumericBytes(content, bits)
	case decoder.ModeByte:
		data, err := charset.EncodeLatin1(content)
		if err != nil {
			return err
		}
		bits.AppendBytes(data)
	default:
		return fmt.Errorf("%w: %s mode", qrcodegen.ErrModeNotImplemented, mode)
	}
	return nil
}

// appendNumericBytes writes digit groups of three as 10 bits, and a trailing
// pair or single digit as 7 or 4 bits. content must be ASCII digits.
func appendNumericBytes(content string, bits *bitutil.BitArray) {
	length := len(content)
	for i := 0; i < length; {
		num1 := int(content[i] - '0')
		switch {
		case i+2 < length:
			num2 := int(content[i+1] - '0')
			num3 := int(content[i+2] - '0')
			bits.AppendBits(uint32(num1*100+num2*10+num3), 10)
			i += 3
		case i+1 < length:
			num2 := int(content[i+1] - '0')
			bits.AppendBits(uint32(num1*10+num2), 7)
			i += 2
		default:
			bits.AppendBits(uint32(num1), 4)
			i++
		}
	}
}

// appendAlphanumericBytes writes pairs as 45*a+b in 11 bits and a trailing
// character in 6 bits. content must be in the alphanumeric alphabet.
func appendAlphanumericBytes(content string, bits *bitutil.BitArray) {
	length := len(content)
	for i := 0; i < length; i += 2 {
		code1 := alphanumericTable[content[i]]
		if i+1 < length {
			code2 := alphanumericTable[content[i+1]]
			bits.AppendBits(uint32(code1*45+code2), 11)
		} else {
			bits.AppendBits(uint32(code1), 6)
		}
	}
}
