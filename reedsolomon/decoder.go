package reedsolomon

import "errors"

// ErrReedSolomon indicates a Reed-Solomon decoding failure.
var ErrReedSolomon = errors.New("reedsolomon: decoding error")

// Decoder corrects errors in received codewords. It is only used to read
// back symbols, so it handles the QR generator base of zero.
type Decoder struct {
	field *Field
}

// NewDecoder creates a new Decoder for the given field.
func NewDecoder(field *Field) *Decoder {
	return &Decoder{field: field}
}

// Decode corrects errors in received in place and returns the number of
// errors corrected. twoS is the number of error-correction codewords.
func (d *Decoder) Decode(received []byte, twoS int) (int, error) {
	values := make([]int, len(received))
	for i, b := range received {
		values[i] = int(b)
	}
	poly := NewPoly(d.field, values)
	syndromeCoefficients := make([]int, twoS)
	noError := true
	for i := 0; i < twoS; i++ {
		eval := poly.EvaluateAt(d.field.Exp(i))
		syndromeCoefficients[twoS-1-i] = eval
		if eval != 0 {
			noError = false
		}
	}
	if noError {
		return 0, nil
	}

	syndrome := NewPoly(d.field, syndromeCoefficients)
	monomial, err := Monomial(d.field, 1, twoS)
	if err != nil {
		return 0, err
	}
	sigma, omega, err := d.runEuclideanAlgorithm(monomial, syndrome, twoS)
	if err != nil {
		return 0, err
	}
	errorLocations, err := d.findErrorLocations(sigma)
	if err != nil {
		return 0, err
	}
	errorMagnitudes := d.findErrorMagnitudes(omega, errorLocations)
	for i, location := range errorLocations {
		position := len(received) - 1 - d.field.Log(location)
		if position < 0 {
			return 0, ErrReedSolomon
		}
		received[position] ^= byte(errorMagnitudes[i])
	}
	return len(errorLocations), nil
}

func (d *Decoder) runEuclideanAlgorithm(a, b *Poly, R int) (sigma, omega *Poly, err error) {
	if a.Degree() < b.Degree() {
		a, b = b, a
	}

	rLast, r := a, b
	tLast, t := d.field.zero, d.field.one

	for 2*r.Degree() >= R {
		rLastLast, tLastLast := rLast, tLast
		rLast, tLast = r, t

		if rLast.IsZero() {
			return nil, nil, ErrReedSolomon
		}
		r = rLastLast
		q := d.field.zero
		dltInverse := d.field.Inverse(rLast.LeadingCoefficient())
		for r.Degree() >= rLast.Degree() && !r.IsZero() {
			degreeDiff := r.Degree() - rLast.Degree()
			scale := d.field.Multiply(r.LeadingCoefficient(), dltInverse)
			q = q.Add(d.field.one.multiplyByMonomial(degreeDiff, scale))
			r = r.Add(rLast.multiplyByMonomial(degreeDiff, scale))
		}

		t = q.Multiply(tLast).Add(tLastLast)

		if r.Degree() >= rLast.Degree() {
			return nil, nil, ErrReedSolomon
		}
	}

	sigmaTildeAtZero := t.Coefficient(0)
	if sigmaTildeAtZero == 0 {
		return nil, nil, ErrReedSolomon
	}

	inverse := d.field.Inverse(sigmaTildeAtZero)
	return t.MultiplyScalar(inverse), r.MultiplyScalar(inverse), nil
}

func (d *Decoder) findErrorLocations(errorLocator *Poly) ([]int, error) {
	numErrors := errorLocator.Degree()
	if numErrors == 1 {
		return []int{errorLocator.Coefficient(1)}, nil
	}
	result := make([]int, 0, numErrors)
	for i := 1; i < fieldSize && len(result) < numErrors; i++ {
		if errorLocator.EvaluateAt(i) == 0 {
			result = append(result, d.field.Inverse(i))
		}
	}
	if len(result) != numErrors {
		return nil, ErrReedSolomon
	}
	return result, nil
}

func (d *Decoder) findErrorMagnitudes(errorEvaluator *Poly, errorLocations []int) []int {
	result := make([]int, len(errorLocations))
	for i, location := range errorLocations {
		xiInverse := d.field.Inverse(location)
		denominator := 1
		for j, other := range errorLocations {
			if i != j {
				// 1 + X_j * X_i^-1
				denominator = d.field.Multiply(denominator, AddOrSubtract(1, d.field.Multiply(other, xiInverse)))
			}
		}
		result[i] = d.field.Multiply(errorEvaluator.EvaluateAt(xiInverse), d.field.Inverse(denominator))
	}
	return result
}
