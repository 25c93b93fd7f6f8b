package qrcode

import (
	"errors"
	"strings"
	"testing"

	qrcodegen "github.com/nikhil4902/qrcodegen"
	"github.com/nikhil4902/qrcodegen/bitutil"
)

func intPtr(i int) *int { return &i }

func TestRoundTripNumeric(t *testing.T) {
	testRoundTrip(t, "1234567890", &qrcodegen.EncodeOptions{ErrorCorrection: "M"})
}

func TestRoundTripAlphanumeric(t *testing.T) {
	testRoundTrip(t, "HELLO WORLD", &qrcodegen.EncodeOptions{ErrorCorrection: "L"})
}

func TestRoundTripByte(t *testing.T) {
	testRoundTrip(t, "Hello, World! This is a test.", &qrcodegen.EncodeOptions{ErrorCorrection: "Q"})
}

func TestRoundTripHighEC(t *testing.T) {
	testRoundTrip(t, "TEST123", &qrcodegen.EncodeOptions{ErrorCorrection: "H"})
}

func TestRoundTripAutomatic(t *testing.T) {
	testRoundTrip(t, "", nil)
	testRoundTrip(t, "https://example.com/?q=qr", nil)
	testRoundTrip(t, "Grüße aus Köln", nil)
}

func TestRoundTripAllECLevels(t *testing.T) {
	content := "Testing all EC levels"
	for _, level := range []string{"L", "M", "Q", "H"} {
		t.Run(level, func(t *testing.T) {
			result := testRoundTrip(t, content, &qrcodegen.EncodeOptions{ErrorCorrection: level})
			if got := result.Metadata[qrcodegen.MetadataErrorCorrectionLevel]; got != level {
				t.Errorf("level metadata = %v, want %s", got, level)
			}
		})
	}
}

func TestRoundTripAllMasks(t *testing.T) {
	for mask := 0; mask < 8; mask++ {
		result := testRoundTrip(t, "MASK 0123", &qrcodegen.EncodeOptions{QRMaskPattern: intPtr(mask)})
		if got := result.Metadata[qrcodegen.MetadataMaskPattern]; got != mask {
			t.Errorf("mask metadata = %v, want %d", got, mask)
		}
	}
}

func TestRoundTripVersions(t *testing.T) {
	cases := []struct {
		name    string
		content string
		opts    *qrcodegen.EncodeOptions
		version int
	}{
		{"multi-block 5-Q", "HELLO WORLD", &qrcodegen.EncodeOptions{ErrorCorrection: "Q", QRVersion: 5}, 5},
		{"version info 7", "VERSION SEVEN", &qrcodegen.EncodeOptions{QRVersion: 7}, 7},
		{"two block groups", strings.Repeat("Lorem ipsum dolor sit amet. ", 12), &qrcodegen.EncodeOptions{ErrorCorrection: "H"}, 0},
		{"full version 40", strings.Repeat("9", 7089), &qrcodegen.EncodeOptions{ErrorCorrection: "L"}, 40},
		{"alphanumeric version 40", strings.Repeat("A1 $", 605), &qrcodegen.EncodeOptions{ErrorCorrection: "Q"}, 40},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			result := testRoundTrip(t, c.content, c.opts)
			if c.version != 0 {
				if got := result.Metadata[qrcodegen.MetadataVersion]; got != c.version {
					t.Errorf("version metadata = %v, want %d", got, c.version)
				}
			}
		})
	}
}

func TestWriterEncode(t *testing.T) {
	w := NewWriter()
	matrix, err := w.Encode("Hello", nil)
	if err != nil {
		t.Fatalf("Encode failed: %v", err)
	}
	if matrix.Width() != 21 || matrix.Height() != 21 {
		t.Fatalf("matrix is %dx%d, want 21x21", matrix.Width(), matrix.Height())
	}
	// Finder corners are dark and the symbol carries no quiet zone.
	for _, corner := range [][2]int{{0, 0}, {20, 0}, {0, 20}} {
		if !matrix.Get(corner[0], corner[1]) {
			t.Errorf("module %v is light", corner)
		}
	}
}

func TestWriterErrors(t *testing.T) {
	w := NewWriter()
	cases := []struct {
		name    string
		content string
		opts    *qrcodegen.EncodeOptions
		want    error
	}{
		{"bad level", "Hello", &qrcodegen.EncodeOptions{ErrorCorrection: "Z"}, qrcodegen.ErrConfiguration},
		{"bad mask", "Hello", &qrcodegen.EncodeOptions{QRMaskPattern: intPtr(9)}, qrcodegen.ErrConfiguration},
		{"kanji", "漢字", nil, qrcodegen.ErrModeNotImplemented},
		{"too large", strings.Repeat("x", 2954), nil, qrcodegen.ErrDataTooLarge},
		{"wrong mode", "hello", &qrcodegen.EncodeOptions{Mode: "ALPHANUMERIC"}, qrcodegen.ErrCharacterOutOfRange},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			matrix, err := w.Encode(c.content, c.opts)
			if !errors.Is(err, c.want) {
				t.Errorf("err = %v, want %v", err, c.want)
			}
			if matrix != nil {
				t.Error("matrix returned with error")
			}
		})
	}
}

func TestReaderMetadata(t *testing.T) {
	result := testRoundTrip(t, "café", &qrcodegen.EncodeOptions{ErrorCorrection: "M"})
	segments, ok := result.Metadata[qrcodegen.MetadataByteSegments].([][]byte)
	if !ok || len(segments) != 1 || string(segments[0]) != "caf\xe9" {
		t.Errorf("byte segments = %v", result.Metadata[qrcodegen.MetadataByteSegments])
	}
	if got := result.Metadata[qrcodegen.MetadataErrorsCorrected]; got != 0 {
		t.Errorf("errors corrected = %v, want 0", got)
	}
	if result.NumBits != 8*len(result.RawBytes) {
		t.Errorf("NumBits = %d for %d raw bytes", result.NumBits, len(result.RawBytes))
	}
}

func TestReaderCorrectsDamage(t *testing.T) {
	matrix, err := NewWriter().Encode("DAMAGED", &qrcodegen.EncodeOptions{ErrorCorrection: "H"})
	if err != nil {
		t.Fatal(err)
	}
	// The bottom-right modules hold the first codeword.
	matrix.Flip(20, 20)
	matrix.Flip(19, 20)
	// One bit of the first format information copy.
	matrix.Flip(8, 0)

	result, err := NewReader().Decode(matrix)
	if err != nil {
		t.Fatalf("Decode failed: %v", err)
	}
	if result.Text != "DAMAGED" {
		t.Errorf("decoded %q, want DAMAGED", result.Text)
	}
	if got := result.Metadata[qrcodegen.MetadataErrorsCorrected]; got != 1 {
		t.Errorf("errors corrected = %v, want 1", got)
	}
}

func TestReaderRejectsBadDimension(t *testing.T) {
	_, err := NewReader().Decode(bitutil.NewBitMatrix(23))
	if !errors.Is(err, qrcodegen.ErrFormat) {
		t.Errorf("err = %v, want ErrFormat", err)
	}
}

func testRoundTrip(t *testing.T, content string, opts *qrcodegen.EncodeOptions) *qrcodegen.Result {
	t.Helper()

	matrix, err := NewWriter().Encode(content, opts)
	if err != nil {
		t.Fatalf("Encode failed: %v", err)
	}
	result, err := NewReader().Decode(matrix)
	if err != nil {
		t.Fatalf("Decode failed: %v", err)
	}
	if result.Text != content {
		t.Errorf("round-trip mismatch: got %q, want %q", result.Text, content)
	}
	return result
}
