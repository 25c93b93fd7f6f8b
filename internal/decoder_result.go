// Package internal provides the result type produced by the verification reader.
package internal

// DecoderResult is what the reader recovers from a symbol.
type DecoderResult struct {
	RawBytes        []byte
	Text            string
	ByteSegments    [][]byte
	ECLevel         string
	Version         int
	DataMask        int
	ErrorsCorrected int
}

// NewDecoderResult creates a DecoderResult with the basic fields.
func NewDecoderResult(rawBytes []byte, text string, byteSegments [][]byte, ecLevel string) *DecoderResult {
	return &DecoderResult{
		RawBytes:     rawBytes,
		Text:         text,
		ByteSegments: byteSegments,
		ECLevel:      ecLevel,
		DataMask:     -1,
	}
}

// NumBits returns the number of data bits the result was decoded from.
func (d *DecoderResult) NumBits() int {
	return 8 * len(d.RawBytes)
}
