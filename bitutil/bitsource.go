package bitutil

import "fmt"

// BitSource reads bit fields of arbitrary width from a byte sequence, first
// byte first and most-significant bit first within each byte.
type BitSource struct {
	bytes  []byte
	offset int // in bits
}

// NewBitSource creates a new BitSource from a byte slice.
func NewBitSource(bytes []byte) *BitSource {
	return &BitSource{bytes: bytes}
}

// ReadBits reads numBits bits and returns them as the least-significant bits of an int.
func (bs *BitSource) ReadBits(numBits int) (int, error) {
	if numBits < 1 || numBits > 32 || numBits > bs.Available() {
		return 0, &BitSourceError{NumBits: numBits, Available: bs.Available()}
	}
	result := 0
	for i := 0; i < numBits; i++ {
		b := bs.bytes[bs.offset>>3] >> uint(7-bs.offset&0x07) & 1
		result = result<<1 | int(b)
		bs.offset++
	}
	return result, nil
}

// Available returns the number of bits that can still be read.
func (bs *BitSource) Available() int {
	return 8*len(bs.bytes) - bs.offset
}

// BitSourceError is returned when an invalid number of bits is requested.
type BitSourceError struct {
	NumBits   int
	Available int
}

func (e *BitSourceError) Error() string {
	return fmt.Sprintf("bitsource: cannot read %d bits, %d available", e.NumBits, e.Available)
}
