// Package qrcodegen holds the options and error values shared by the QR code
// encoding packages.
package qrcodegen

import "errors"

var (
	// ErrDataTooLarge is returned when the content does not fit any version
	// up to 40 for the selected mode and error correction level.
	ErrDataTooLarge = errors.New("data too large")

	// ErrModeNotImplemented is returned when the content needs Kanji or ECI mode.
	ErrModeNotImplemented = errors.New("mode not implemented")

	// ErrCharacterOutOfRange is returned when a character cannot be represented
	// in the selected mode.
	ErrCharacterOutOfRange = errors.New("character out of range")

	// ErrConfiguration is returned for invalid field or polynomial operations
	// and for invalid encode options.
	ErrConfiguration = errors.New("configuration error")

	// ErrCannotDrawPattern is returned when a function pattern does not fit
	// the symbol.
	ErrCannotDrawPattern = errors.New("cannot draw pattern")

	// ErrFormat is returned when a symbol cannot be read back.
	ErrFormat = errors.New("format error")

	// ErrChecksum is returned when error correction fails while reading a symbol.
	ErrChecksum = errors.New("checksum error")
)
