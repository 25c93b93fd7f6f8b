package reedsolomon

import (
	"fmt"
	"sync"

	qrcodegen "github.com/nikhil4902/qrcodegen"
)

// Encoder computes Reed-Solomon error correction codewords. Generator
// polynomials are cached; an Encoder is safe for concurrent use.
type Encoder struct {
	field *Field

	mu               sync.Mutex
	cachedGenerators []*Poly
}

// NewEncoder creates a new Encoder for the given field.
func NewEncoder(field *Field) *Encoder {
	return &Encoder{
		field:            field,
		cachedGenerators: []*Poly{field.one},
	}
}

// GeneratorPolynomial returns (x - 2^0)(x - 2^1)...(x - 2^(degree-1)).
func (e *Encoder) GeneratorPolynomial(degree int) (*Poly, error) {
	if degree < 0 {
		return nil, fmt.Errorf("%w: negative generator degree %d", qrcodegen.ErrConfiguration, degree)
	}
	e.mu.Lock()
	defer e.mu.Unlock()
	for d := len(e.cachedGenerators); d <= degree; d++ {
		last := e.cachedGenerators[d-1]
		factor := NewPoly(e.field, []int{1, e.field.Exp(d - 1)})
		e.cachedGenerators = append(e.cachedGenerators, last.Multiply(factor))
	}
	return e.cachedGenerators[degree], nil
}

// ErrorCorrectionCodewords returns the totalCodewords-len(data) error
// correction codewords for data: the remainder of data*x^n divided by the
// degree-n generator, left-padded with zeros to exactly n entries.
func (e *Encoder) ErrorCorrectionCodewords(data []byte, totalCodewords int) ([]byte, error) {
	if len(data) == 0 {
		return nil, fmt.Errorf("%w: no data codewords", qrcodegen.ErrConfiguration)
	}
	degree := totalCodewords - len(data)
	if degree <= 0 {
		return nil, fmt.Errorf("%w: %d total codewords leave no room for error correction after %d data codewords",
			qrcodegen.ErrConfiguration, totalCodewords, len(data))
	}
	generator, err := e.GeneratorPolynomial(degree)
	if err != nil {
		return nil, err
	}
	shifted, err := NewPolyFromBytes(e.field, data).Shift(degree)
	if err != nil {
		return nil, err
	}
	remainder, err := shifted.Mod(generator)
	if err != nil {
		return nil, err
	}
	coefficients := remainder.coefficients
	if remainder.IsZero() {
		coefficients = nil
	}
	ec := make([]byte, degree)
	numZero := degree - len(coefficients)
	for i, c := range coefficients {
		ec[numZero+i] = byte(c)
	}
	return ec, nil
}
