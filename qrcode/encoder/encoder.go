// Package encoder turns text into a QR code symbol: mode and version
// selection, bit stream packing, Reed-Solomon error correction, module
// placement and mask selection.
package encoder

import (
	"fmt"
	"unicode/utf8"

	log "github.com/sirupsen/logrus"

	qrcodegen "github.com/nikhil4902/qrcodegen"
	"github.com/nikhil4902/qrcodegen/bitutil"
	"github.com/nikhil4902/qrcodegen/qrcode/decoder"
)

// QRCode is an encoded symbol and the parameters chosen for it.
type QRCode struct {
	Mode        decoder.Mode
	ECLevel     decoder.ErrorCorrectionLevel
	Version     *decoder.Version
	MaskPattern int
	// Codewords are the interleaved data and EC codewords in placement order.
	Codewords []byte
	// Matrix holds one bit per module, set for dark, without a quiet zone.
	Matrix *bitutil.BitMatrix
}

// params is EncodeOptions after validation.
type params struct {
	ecLevel     decoder.ErrorCorrectionLevel
	autoLevel   bool
	version     int
	maskPattern int // -1 selects by penalty
	mode        decoder.Mode
	autoMode    bool
}

func parseOptions(opts *qrcodegen.EncodeOptions) (params, error) {
	p := params{autoLevel: true, maskPattern: -1, autoMode: true}
	if opts == nil {
		return p, nil
	}
	if opts.ErrorCorrection != "" {
		level, err := decoder.ParseECLevel(opts.ErrorCorrection)
		if err != nil {
			return p, err
		}
		p.ecLevel, p.autoLevel = level, false
	}
	if opts.QRVersion != 0 {
		if _, err := decoder.VersionForNumber(opts.QRVersion); err != nil {
			return p, err
		}
		p.version = opts.QRVersion
	}
	if opts.QRMaskPattern != nil {
		mask := *opts.QRMaskPattern
		if mask < 0 || mask >= decoder.NumMaskPatterns {
			return p, fmt.Errorf("%w: mask pattern %d outside 0..7", qrcodegen.ErrConfiguration, mask)
		}
		p.maskPattern = mask
	}
	if opts.Mode != "" {
		mode, err := decoder.ParseMode(opts.Mode)
		if err != nil {
			return p, err
		}
		p.mode, p.autoMode = mode, false
	}
	return p, nil
}

// Encode encodes content into a QRCode. A nil opts selects everything
// automatically.
func Encode(content string, opts *qrcodegen.EncodeOptions) (*QRCode, error) {
	p, err := parseOptions(opts)
	if err != nil {
		return nil, err
	}

	mode := p.mode
	if p.autoMode {
		mode = ChooseMode(content)
	}
	length := utf8.RuneCountInString(content)
	if mode == decoder.ModeKanji || mode == decoder.ModeECI {
		return nil, fmt.Errorf("%w: %s mode for %d characters", qrcodegen.ErrModeNotImplemented, mode, length)
	}
	if err := checkMode(content, mode); err != nil {
		return nil, err
	}

	version, ecLevel, err := chooseVersion(mode, length, p.ecLevel, p.autoLevel, p.version)
	if err != nil {
		return nil, err
	}
	log.WithFields(log.Fields{
		"mode":    mode.String(),
		"length":  length,
		"version": version.Number,
		"ecLevel": ecLevel.String(),
	}).Debug("selected symbol parameters")

	dataBytes, err := EncodeBitStream(content, mode, version, ecLevel)
	if err != nil {
		return nil, err
	}
	codewords, err := InterleaveWithECBytes(dataBytes, version, ecLevel)
	if err != nil {
		return nil, err
	}

	grid, err := BuildFunctionPatterns(version)
	if err != nil {
		return nil, err
	}
	sequence := ModuleSequence(grid)
	if err := Fill(grid, sequence, codewords); err != nil {
		return nil, err
	}
	unmasked, err := grid.ToBitMatrix()
	if err != nil {
		return nil, err
	}

	masker := NewMasker(unmasked, sequence, ecLevel)
	qr := &QRCode{
		Mode:      mode,
		ECLevel:   ecLevel,
		Version:   version,
		Codewords: codewords,
	}
	if p.maskPattern >= 0 {
		qr.MaskPattern = p.maskPattern
		qr.Matrix = masker.ApplyMask(p.maskPattern)
	} else {
		qr.MaskPattern, qr.Matrix = masker.SelectBestMask()
	}
	log.WithFields(log.Fields{
		"version": version.Number,
		"ecLevel": ecLevel.String(),
		"mask":    qr.MaskPattern,
	}).Debug("encoded symbol")
	return qr, nil
}

// String returns a visual representation of the QR code.
func (qr *QRCode) String() string {
	return qr.Matrix.StringWithChars("##", "  ")
}
