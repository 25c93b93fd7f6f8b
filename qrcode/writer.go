package qrcode

import (
	qrcodegen "github.com/nikhil4902/qrcodegen"
	"github.com/nikhil4902/qrcodegen/bitutil"
	"github.com/nikhil4902/qrcodegen/qrcode/encoder"
)

// Writer encodes QR codes.
type Writer struct{}

var _ qrcodegen.Writer = (*Writer)(nil)

// NewWriter creates a new QR code Writer.
func NewWriter() *Writer {
	return &Writer{}
}

// Encode encodes contents into a symbol, one bit per module and no quiet
// zone. Scaling and margins belong to the renderer.
func (w *Writer) Encode(contents string, opts *qrcodegen.EncodeOptions) (*bitutil.BitMatrix, error) {
	code, err := encoder.Encode(contents, opts)
	if err != nil {
		return nil, err
	}
	return code.Matrix, nil
}
