package qrcodegen

// ResultMetadataKey identifies a type of metadata about a decoded symbol.
type ResultMetadataKey int

const (
	MetadataByteSegments ResultMetadataKey = iota
	MetadataErrorCorrectionLevel
	MetadataErrorsCorrected
	MetadataVersion
	MetadataMaskPattern
)

func (k ResultMetadataKey) String() string {
	switch k {
	case MetadataByteSegments:
		return "BYTE_SEGMENTS"
	case MetadataErrorCorrectionLevel:
		return "ERROR_CORRECTION_LEVEL"
	case MetadataErrorsCorrected:
		return "ERRORS_CORRECTED"
	case MetadataVersion:
		return "VERSION"
	case MetadataMaskPattern:
		return "MASK_PATTERN"
	}
	return "UNKNOWN"
}

// Result is the text read back from a symbol.
type Result struct {
	Text     string
	RawBytes []byte
	NumBits  int
	Metadata map[ResultMetadataKey]interface{}
}

// NewResult creates a new Result with the given text and data codewords.
func NewResult(text string, rawBytes []byte) *Result {
	return &Result{
		Text:     text,
		RawBytes: rawBytes,
		NumBits:  8 * len(rawBytes),
		Metadata: make(map[ResultMetadataKey]interface{}),
	}
}

// PutMetadata adds a metadata key/value pair.
func (r *Result) PutMetadata(key ResultMetadataKey, value interface{}) {
	r.Metadata[key] = value
}
