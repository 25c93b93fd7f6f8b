package decoder

import (
	"fmt"
	"strings"

	qrcodegen "github.com/nikhil4902/qrcodegen"
	"github.com/nikhil4902/qrcodegen/bitutil"
	"github.com/nikhil4902/qrcodegen/charset"
	"github.com/nikhil4902/qrcodegen/internal"
)

// AlphanumericChars is the 45-symbol alphanumeric alphabet in code order.
const AlphanumericChars = "0123456789ABCDEFGHIJKLMNOPQRSTUVWXYZ $%*+-./:"

// DecodeBitStream parses the data codewords of a symbol into text. Numeric,
// alphanumeric and byte segments are supported; byte segments are read as
// ISO-8859-1.
func DecodeBitStream(bytes []byte, version *Version, ecLevel ErrorCorrectionLevel) (*internal.DecoderResult, error) {
	bs := bitutil.NewBitSource(bytes)
	var result strings.Builder
	var byteSegments [][]byte

	for {
		if bs.Available() < 4 {
			break
		}
		modeBits, err := bs.ReadBits(4)
		if err != nil {
			return nil, fmt.Errorf("%w: %v", qrcodegen.ErrFormat, err)
		}
		mode, err := ModeForBits(modeBits)
		if err != nil {
			return nil, err
		}
		if mode == ModeTerminator {
			break
		}
		if mode == ModeKanji || mode == ModeECI {
			return nil, fmt.Errorf("%w: %s segment", qrcodegen.ErrModeNotImplemented, mode)
		}

		count, err := bs.ReadBits(mode.CharacterCountBits(version.Number))
		if err != nil {
			return nil, fmt.Errorf("%w: %s character count: %v", qrcodegen.ErrFormat, mode, err)
		}
		switch mode {
		case ModeNumeric:
			err = decodeNumericSegment(bs, &result, count)
		case ModeAlphanumeric:
			err = decodeAlphanumericSegment(bs, &result, count)
		case ModeByte:
			var seg []byte
			seg, err = decodeByteSegment(bs, &result, count)
			byteSegments = append(byteSegments, seg)
		}
		if err != nil {
			return nil, err
		}
	}

	return internal.NewDecoderResult(bytes, result.String(), byteSegments, ecLevel.String()), nil
}

func decodeByteSegment(bs *bitutil.BitSource, result *strings.Builder, count int) ([]byte, error) {
	if 8*count > bs.Available() {
		return nil, fmt.Errorf("%w: byte segment of %d needs %d bits, %d left",
			qrcodegen.ErrFormat, count, 8*count, bs.Available())
	}
	readBytes := make([]byte, count)
	for i := range readBytes {
		val, _ := bs.ReadBits(8)
		readBytes[i] = byte(val)
	}
	result.WriteString(charset.DecodeLatin1(readBytes))
	return readBytes, nil
}

func toAlphaNumericChar(value int) (byte, error) {
	if value >= len(AlphanumericChars) {
		return 0, fmt.Errorf("%w: alphanumeric code %d", qrcodegen.ErrFormat, value)
	}
	return AlphanumericChars[value], nil
}

func decodeAlphanumericSegment(bs *bitutil.BitSource, result *strings.Builder, count int) error {
	for count > 1 {
		nextTwo, err := bs.ReadBits(11)
		if err != nil {
			return fmt.Errorf("%w: %v", qrcodegen.ErrFormat, err)
		}
		c1, err := toAlphaNumericChar(nextTwo / 45)
		if err != nil {
			return err
		}
		c2, err := toAlphaNumericChar(nextTwo % 45)
		if err != nil {
			return err
		}
		result.WriteByte(c1)
		result.WriteByte(c2)
		count -= 2
	}
	if count == 1 {
		val, err := bs.ReadBits(6)
		if err != nil {
			return fmt.Errorf("%w: %v", qrcodegen.ErrFormat, err)
		}
		c, err := toAlphaNumericChar(val)
		if err != nil {
			return err
		}
		result.WriteByte(c)
	}
	return nil
}

func decodeNumericSegment(bs *bitutil.BitSource, result *strings.Builder, count int) error {
	for count >= 3 {
		threeDigits, err := bs.ReadBits(10)
		if err != nil {
			return fmt.Errorf("%w: %v", qrcodegen.ErrFormat, err)
		}
		if threeDigits >= 1000 {
			return fmt.Errorf("%w: numeric group %d", qrcodegen.ErrFormat, threeDigits)
		}
		fmt.Fprintf(result, "%03d", threeDigits)
		count -= 3
	}
	switch count {
	case 2:
		twoDigits, err := bs.ReadBits(7)
		if err != nil {
			return fmt.Errorf("%w: %v", qrcodegen.ErrFormat, err)
		}
		if twoDigits >= 100 {
			return fmt.Errorf("%w: numeric group %d", qrcodegen.ErrFormat, twoDigits)
		}
		fmt.Fprintf(result, "%02d", twoDigits)
	case 1:
		digit, err := bs.ReadBits(4)
		if err != nil {
			return fmt.Errorf("%w: %v", qrcodegen.ErrFormat, err)
		}
		if digit >= 10 {
			return fmt.Errorf("%w: numeric digit %d", qrcodegen.ErrFormat, digit)
		}
		fmt.Fprintf(result, "%d", digit)
	}
	return nil
}
