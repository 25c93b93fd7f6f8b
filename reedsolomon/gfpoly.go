package reedsolomon

import (
	"fmt"

	qrcodegen "github.com/nikhil4902/qrcodegen"
)

// Poly is a polynomial whose coefficients are elements of a Field, highest
// degree first. It never has a leading zero coefficient except for the zero
// polynomial [0]. Instances are immutable: arithmetic returns new values.
type Poly struct {
	field        *Field
	coefficients []int
}

// NewPoly creates a polynomial from coefficients ordered from highest-degree
// to lowest-degree. Leading zeros are stripped; an empty slice is zero.
func NewPoly(field *Field, coefficients []int) *Poly {
	first := 0
	for first < len(coefficients) && coefficients[first] == 0 {
		first++
	}
	if first == len(coefficients) {
		return field.zero
	}
	c := make([]int, len(coefficients)-first)
	copy(c, coefficients[first:])
	return &Poly{field: field, coefficients: c}
}

// NewPolyFromBytes creates a polynomial whose coefficients are data, first
// byte highest.
func NewPolyFromBytes(field *Field, data []byte) *Poly {
	c := make([]int, len(data))
	for i, b := range data {
		c[i] = int(b)
	}
	return NewPoly(field, c)
}

// Monomial returns coefficient * x^degree.
func Monomial(field *Field, coefficient, degree int) (*Poly, error) {
	if coefficient < 1 || coefficient >= fieldSize || degree < 0 {
		return nil, fmt.Errorf("%w: monomial with coefficient %d and degree %d",
			qrcodegen.ErrConfiguration, coefficient, degree)
	}
	c := make([]int, degree+1)
	c[0] = coefficient
	return &Poly{field: field, coefficients: c}, nil
}

// Coefficients returns a copy of the coefficients, highest degree first.
func (p *Poly) Coefficients() []int {
	c := make([]int, len(p.coefficients))
	copy(c, p.coefficients)
	return c
}

// Degree returns the degree of this polynomial.
func (p *Poly) Degree() int {
	return len(p.coefficients) - 1
}

// IsZero returns true if this is the zero polynomial.
func (p *Poly) IsZero() bool {
	return p.coefficients[0] == 0
}

// Coefficient returns the coefficient of x^degree.
func (p *Poly) Coefficient(degree int) int {
	return p.coefficients[len(p.coefficients)-1-degree]
}

// LeadingCoefficient returns the coefficient of the highest-degree term.
func (p *Poly) LeadingCoefficient() int {
	return p.coefficients[0]
}

// EvaluateAt evaluates this polynomial at a.
func (p *Poly) EvaluateAt(a int) int {
	if a == 0 {
		return p.Coefficient(0)
	}
	result := 0
	for _, c := range p.coefficients {
		result = AddOrSubtract(p.field.Multiply(a, result), c)
	}
	return result
}

// Add returns p + other. The shorter operand is left-padded with zeros.
func (p *Poly) Add(other *Poly) *Poly {
	larger, smaller := p.coefficients, other.coefficients
	if len(smaller) > len(larger) {
		larger, smaller = smaller, larger
	}
	sum := make([]int, len(larger))
	lengthDiff := len(larger) - len(smaller)
	copy(sum, larger[:lengthDiff])
	for i := lengthDiff; i < len(larger); i++ {
		sum[i] = AddOrSubtract(smaller[i-lengthDiff], larger[i])
	}
	return NewPoly(p.field, sum)
}

// Subtract returns p - other, which equals p + other in GF(2^n).
func (p *Poly) Subtract(other *Poly) *Poly {
	return p.Add(other)
}

// Multiply returns the product of p and other.
func (p *Poly) Multiply(other *Poly) *Poly {
	if p.IsZero() || other.IsZero() {
		return p.field.zero
	}
	product := make([]int, p.Degree()+other.Degree()+1)
	for i, a := range p.coefficients {
		for j, b := range other.coefficients {
			product[i+j] = AddOrSubtract(product[i+j], p.field.Multiply(a, b))
		}
	}
	return NewPoly(p.field, product)
}

// MultiplyScalar multiplies every coefficient by scalar.
func (p *Poly) MultiplyScalar(scalar int) *Poly {
	if scalar == 0 {
		return p.field.zero
	}
	if scalar == 1 {
		return p
	}
	product := make([]int, len(p.coefficients))
	for i, c := range p.coefficients {
		product[i] = p.field.Multiply(c, scalar)
	}
	return NewPoly(p.field, product)
}

// multiplyByMonomial returns p * coefficient * x^degree. degree must be >= 0.
func (p *Poly) multiplyByMonomial(degree, coefficient int) *Poly {
	if coefficient == 0 {
		return p.field.zero
	}
	product := make([]int, len(p.coefficients)+degree)
	for i, c := range p.coefficients {
		product[i] = p.field.Multiply(c, coefficient)
	}
	return NewPoly(p.field, product)
}

// Shift returns p * x^places, appending places zero coefficients.
func (p *Poly) Shift(places int) (*Poly, error) {
	if places < 0 {
		return nil, fmt.Errorf("%w: negative shift %d", qrcodegen.ErrConfiguration, places)
	}
	return p.multiplyByMonomial(places, 1), nil
}

// Mod returns the remainder of p divided by divisor. The reduction is
// iterative: each step cancels the leading term of the running remainder.
func (p *Poly) Mod(divisor *Poly) (*Poly, error) {
	if divisor.IsZero() {
		return nil, fmt.Errorf("%w: polynomial division by zero", qrcodegen.ErrConfiguration)
	}
	remainder := p
	for remainder.Degree() >= divisor.Degree() && !remainder.IsZero() {
		factor, err := p.field.Divide(remainder.LeadingCoefficient(), divisor.LeadingCoefficient())
		if err != nil {
			return nil, err
		}
		term := divisor.multiplyByMonomial(remainder.Degree()-divisor.Degree(), factor)
		remainder = remainder.Subtract(term)
	}
	return remainder, nil
}

// Equal reports whether p and other have the same coefficients.
func (p *Poly) Equal(other *Poly) bool {
	if len(p.coefficients) != len(other.coefficients) {
		return false
	}
	for i, c := range p.coefficients {
		if other.coefficients[i] != c {
			return false
		}
	}
	return true
}

// String renders the polynomial as a sum of terms, e.g. "x^2 + 3x + 2".
func (p *Poly) String() string {
	if p.IsZero() {
		return "0"
	}
	var s string
	for i, c := range p.coefficients {
		if c == 0 {
			continue
		}
		if s != "" {
			s += " + "
		}
		exp := p.Degree() - i
		switch {
		case exp == 0:
			s += fmt.Sprint(c)
		case c == 1 && exp == 1:
			s += "x"
		case c == 1:
			s += fmt.Sprintf("x^%d", exp)
		case exp == 1:
			s += fmt.Sprintf("%dx", c)
		default:
			s += fmt.Sprintf("%dx^%d", c, exp)
		}
	}
	return s
}
