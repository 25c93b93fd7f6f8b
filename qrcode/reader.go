// Package qrcode provides QR code writing and a reader for verifying what
// was written.
package qrcode

import (
	qrcodegen "github.com/nikhil4902/qrcodegen"
	"github.com/nikhil4902/qrcodegen/bitutil"
	"github.com/nikhil4902/qrcodegen/qrcode/decoder"
)

// Reader decodes symbols given one bit per module with no quiet zone, as
// Writer produces them.
type Reader struct {
	dec *decoder.Decoder
}

var _ qrcodegen.Reader = (*Reader)(nil)

// NewReader creates a new QR code Reader.
func NewReader() *Reader {
	return &Reader{
		dec: decoder.NewDecoder(),
	}
}

// Decode decodes matrix and reports its parameters as metadata.
func (r *Reader) Decode(matrix *bitutil.BitMatrix) (*qrcodegen.Result, error) {
	dr, err := r.dec.Decode(matrix)
	if err != nil {
		return nil, err
	}
	result := qrcodegen.NewResult(dr.Text, dr.RawBytes)
	if len(dr.ByteSegments) > 0 {
		result.PutMetadata(qrcodegen.MetadataByteSegments, dr.ByteSegments)
	}
	result.PutMetadata(qrcodegen.MetadataErrorCorrectionLevel, dr.ECLevel)
	result.PutMetadata(qrcodegen.MetadataErrorsCorrected, dr.ErrorsCorrected)
	result.PutMetadata(qrcodegen.MetadataVersion, dr.Version)
	result.PutMetadata(qrcodegen.MetadataMaskPattern, dr.DataMask)
	return result, nil
}
