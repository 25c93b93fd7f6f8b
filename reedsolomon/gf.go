// Package reedsolomon implements GF(256) arithmetic and Reed-Solomon coding
// as used by QR codes.
package reedsolomon

import (
	"fmt"

	qrcodegen "github.com/nikhil4902/qrcodegen"
)

const (
	fieldSize  = 256
	fieldOrder = fieldSize - 1 // order of the multiplicative group
)

// Field is GF(256) defined by a primitive polynomial, with 2 as generator.
// Its tables are filled once by NewField and never written again, so a Field
// may be shared between goroutines.
type Field struct {
	expTable  [fieldSize]int
	logTable  [fieldSize]int
	primitive int
	zero      *Poly
	one       *Poly
}

// QRCodeField256 is the QR code field, x^8 + x^4 + x^3 + x^2 + 1.
var QRCodeField256 = NewField(0x011D)

// NewField builds the exponent and log tables for GF(256) reduced by primitive.
func NewField(primitive int) *Field {
	f := &Field{primitive: primitive}
	f.expTable[0] = 1
	x := 1
	for exp := 1; exp <= fieldOrder; exp++ {
		x <<= 1
		if x >= fieldSize {
			x ^= primitive
		}
		f.logTable[x] = exp % fieldOrder
		f.expTable[exp%fieldOrder] = x
	}
	f.zero = &Poly{field: f, coefficients: []int{0}}
	f.one = &Poly{field: f, coefficients: []int{1}}
	return f
}

// Zero returns the zero polynomial.
func (f *Field) Zero() *Poly { return f.zero }

// One returns the one polynomial.
func (f *Field) One() *Poly { return f.one }

// Exp returns 2^a in this field.
func (f *Field) Exp(a int) int {
	return f.expTable[a%fieldOrder]
}

// Log returns log2(a) in this field. Log(0) is undefined and reported as 0.
func (f *Field) Log(a int) int {
	return f.logTable[a]
}

// Multiply returns a * b in this field.
func (f *Field) Multiply(a, b int) int {
	if a == 0 || b == 0 {
		return 0
	}
	return f.expTable[(f.logTable[a]+f.logTable[b])%fieldOrder]
}

// Divide returns a / b in this field, using b^254 == b^-1.
func (f *Field) Divide(a, b int) (int, error) {
	if b == 0 {
		return 0, fmt.Errorf("%w: division by zero in %s", qrcodegen.ErrConfiguration, f)
	}
	if a == 0 {
		return 0, nil
	}
	return f.expTable[(f.logTable[a]+f.logTable[b]*(fieldOrder-1))%fieldOrder], nil
}

// Inverse returns the multiplicative inverse of a. It panics if a is zero.
func (f *Field) Inverse(a int) int {
	if a == 0 {
		panic("reedsolomon: inverse(0)")
	}
	return f.expTable[(fieldOrder-f.logTable[a])%fieldOrder]
}

// AddOrSubtract computes a XOR b (addition and subtraction are the same in GF(2^n)).
func AddOrSubtract(a, b int) int {
	return a ^ b
}

// String returns a string representation.
func (f *Field) String() string {
	return fmt.Sprintf("GF(0x%x,%d)", f.primitive, fieldSize)
}
