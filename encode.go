package qrcodegen

import "github.com/nikhil4902/qrcodegen/bitutil"

// Writer encodes text into a symbol, one bit per module, set for dark.
type Writer interface {
	Encode(contents string, opts *EncodeOptions) (*bitutil.BitMatrix, error)
}

// Reader decodes a symbol produced by a Writer.
type Reader interface {
	Decode(matrix *bitutil.BitMatrix) (*Result, error)
}
