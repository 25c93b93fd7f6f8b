package qrcodegen

// EncodeOptions configures QR code encoding behavior.
type EncodeOptions struct {
	// ErrorCorrection specifies the error correction level (L, M, Q or H).
	// When empty the strongest level that fits the smallest version is used.
	ErrorCorrection string

	// QRVersion forces a specific QR version (1-40). Zero selects the
	// smallest version that fits.
	QRVersion int

	// QRMaskPattern forces a specific mask pattern (0-7). Nil runs the
	// penalty search.
	QRMaskPattern *int

	// Mode forces an encoding mode (NUMERIC, ALPHANUMERIC or BYTE). When
	// empty the most restrictive mode that accepts the content is used.
	Mode string
}
