package decoder

import (
	"errors"
	"fmt"

	log "github.com/sirupsen/logrus"

	qrcodegen "github.com/nikhil4902/qrcodegen"
	"github.com/nikhil4902/qrcodegen/bitutil"
	"github.com/nikhil4902/qrcodegen/internal"
	"github.com/nikhil4902/qrcodegen/reedsolomon"
)

// Decoder reads a finished symbol back to its text. It is the inverse of the
// encoder and is used to verify encoder output.
type Decoder struct {
	rsDecoder *reedsolomon.Decoder
}

// NewDecoder creates a new QR code Decoder.
func NewDecoder() *Decoder {
	return &Decoder{
		rsDecoder: reedsolomon.NewDecoder(reedsolomon.QRCodeField256),
	}
}

// Decode decodes a symbol, one bit per module with no quiet zone.
func (d *Decoder) Decode(bits *bitutil.BitMatrix) (*internal.DecoderResult, error) {
	parser, err := NewBitMatrixParser(bits)
	if err != nil {
		return nil, err
	}
	version, err := parser.ReadVersion()
	if err != nil {
		return nil, err
	}
	formatInfo, err := parser.ReadFormatInformation()
	if err != nil {
		return nil, err
	}
	ecLevel := formatInfo.ECLevel

	codewords, err := parser.ReadCodewords()
	if err != nil {
		return nil, err
	}
	dataBlocks, err := SplitDataBlocks(codewords, version, ecLevel)
	if err != nil {
		return nil, err
	}

	resultBytes := make([]byte, 0, version.DataCodewords(ecLevel))
	errorsCorrected := 0
	for i, db := range dataBlocks {
		corrected, err := d.rsDecoder.Decode(db.Codewords, len(db.Codewords)-db.NumDataCodewords)
		if err != nil {
			if errors.Is(err, reedsolomon.ErrReedSolomon) {
				return nil, fmt.Errorf("%w: block %d of version %d-%s", qrcodegen.ErrChecksum, i, version.Number, ecLevel)
			}
			return nil, err
		}
		errorsCorrected += corrected
		resultBytes = append(resultBytes, db.Codewords[:db.NumDataCodewords]...)
	}

	result, err := DecodeBitStream(resultBytes, version, ecLevel)
	if err != nil {
		return nil, err
	}
	result.Version = version.Number
	result.DataMask = formatInfo.DataMask
	result.ErrorsCorrected = errorsCorrected
	log.WithFields(log.Fields{
		"version":   version.Number,
		"ecLevel":   ecLevel.String(),
		"mask":      formatInfo.DataMask,
		"corrected": errorsCorrected,
	}).Debug("decoded symbol")
	return result, nil
}
