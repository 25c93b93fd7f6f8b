package decoder

import (
	"fmt"

	qrcodegen "github.com/nikhil4902/qrcodegen"
	"github.com/nikhil4902/qrcodegen/bitutil"
)

// BitMatrixParser reads format information, version and raw codewords from
// a symbol. It works on its own copy of the matrix.
type BitMatrixParser struct {
	bitMatrix        *bitutil.BitMatrix
	parsedVersion    *Version
	parsedFormatInfo *FormatInformation
}

// NewBitMatrixParser creates a new parser for the given BitMatrix.
func NewBitMatrixParser(bitMatrix *bitutil.BitMatrix) (*BitMatrixParser, error) {
	dimension := bitMatrix.Height()
	if bitMatrix.Width() != dimension {
		return nil, fmt.Errorf("%w: matrix is %dx%d", qrcodegen.ErrFormat, bitMatrix.Width(), dimension)
	}
	if _, err := VersionForDimension(dimension); err != nil {
		return nil, err
	}
	return &BitMatrixParser{bitMatrix: bitMatrix.Clone()}, nil
}

// ReadFormatInformation reads format info from one of its two locations.
func (p *BitMatrixParser) ReadFormatInformation() (*FormatInformation, error) {
	if p.parsedFormatInfo != nil {
		return p.parsedFormatInfo, nil
	}

	// Around the top-left finder, most significant bit first.
	formatInfoBits1 := 0
	for i := 0; i < 6; i++ {
		formatInfoBits1 = p.copyBit(i, 8, formatInfoBits1)
	}
	formatInfoBits1 = p.copyBit(7, 8, formatInfoBits1)
	formatInfoBits1 = p.copyBit(8, 8, formatInfoBits1)
	formatInfoBits1 = p.copyBit(8, 7, formatInfoBits1)
	for j := 5; j >= 0; j-- {
		formatInfoBits1 = p.copyBit(8, j, formatInfoBits1)
	}

	// Split between the bottom-left and top-right finders.
	dimension := p.bitMatrix.Height()
	formatInfoBits2 := 0
	for j := dimension - 1; j >= dimension-7; j-- {
		formatInfoBits2 = p.copyBit(8, j, formatInfoBits2)
	}
	for i := dimension - 8; i < dimension; i++ {
		formatInfoBits2 = p.copyBit(i, 8, formatInfoBits2)
	}

	p.parsedFormatInfo = DecodeFormatInformation(formatInfoBits1, formatInfoBits2)
	if p.parsedFormatInfo == nil {
		return nil, fmt.Errorf("%w: unreadable format information %#04x/%#04x",
			qrcodegen.ErrFormat, formatInfoBits1, formatInfoBits2)
	}
	return p.parsedFormatInfo, nil
}

// ReadVersion reads version information. Versions below 7 are implied by
// the dimension.
func (p *BitMatrixParser) ReadVersion() (*Version, error) {
	if p.parsedVersion != nil {
		return p.parsedVersion, nil
	}

	dimension := p.bitMatrix.Height()
	provisional, err := VersionForDimension(dimension)
	if err != nil {
		return nil, err
	}
	if provisional.Number <= 6 {
		p.parsedVersion = provisional
		return provisional, nil
	}

	// Top right: 3 wide by 6 tall.
	versionBits := 0
	ijMin := dimension - 11
	for j := 5; j >= 0; j-- {
		for i := dimension - 9; i >= ijMin; i-- {
			versionBits = p.copyBit(i, j, versionBits)
		}
	}
	if v := DecodeVersionInformation(versionBits); v != nil && v.Dimension() == dimension {
		p.parsedVersion = v
		return v, nil
	}

	// Bottom left: 6 wide by 3 tall.
	versionBits = 0
	for i := 5; i >= 0; i-- {
		for j := dimension - 9; j >= ijMin; j-- {
			versionBits = p.copyBit(i, j, versionBits)
		}
	}
	if v := DecodeVersionInformation(versionBits); v != nil && v.Dimension() == dimension {
		p.parsedVersion = v
		return v, nil
	}
	return nil, fmt.Errorf("%w: unreadable version information for dimension %d", qrcodegen.ErrFormat, dimension)
}

func (p *BitMatrixParser) copyBit(x, y, bits int) int {
	if p.bitMatrix.Get(x, y) {
		return (bits << 1) | 0x1
	}
	return bits << 1
}

// ReadCodewords unmasks the data region and reads the codewords in
// placement order.
func (p *BitMatrixParser) ReadCodewords() ([]byte, error) {
	formatInfo, err := p.ReadFormatInformation()
	if err != nil {
		return nil, err
	}
	version, err := p.ReadVersion()
	if err != nil {
		return nil, err
	}

	functionPattern := version.BuildFunctionPattern()
	UnmaskBitMatrix(p.bitMatrix, functionPattern, formatInfo.DataMask)

	readingUp := true
	result := make([]byte, version.TotalCodewords)
	resultOffset := 0
	currentByte := 0
	bitsRead := 0
	dimension := p.bitMatrix.Height()

	for j := dimension - 1; j > 0; j -= 2 {
		if j == 6 {
			j--
		}
		for count := 0; count < dimension; count++ {
			i := count
			if readingUp {
				i = dimension - 1 - count
			}
			for col := 0; col < 2; col++ {
				if functionPattern.Get(j-col, i) {
					continue
				}
				bitsRead++
				currentByte <<= 1
				if p.bitMatrix.Get(j-col, i) {
					currentByte |= 1
				}
				if bitsRead == 8 {
					result[resultOffset] = byte(currentByte)
					resultOffset++
					bitsRead = 0
					currentByte = 0
				}
			}
		}
		readingUp = !readingUp
	}

	if resultOffset != version.TotalCodewords {
		return nil, fmt.Errorf("%w: read %d of %d codewords", qrcodegen.ErrFormat, resultOffset, version.TotalCodewords)
	}
	return result, nil
}
