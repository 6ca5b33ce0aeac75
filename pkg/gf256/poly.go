package gf256

import (
	"strconv"
	"strings"
)

// Poly is a polynomial over a Field. Coefficient i belongs to x^i, so the
// slice is stored lowest degree first. Trailing zero coefficients are kept.
// A Poly is never modified after construction.
type Poly struct {
	coefs []byte
	field *Field
}

// NewPoly validates that every coefficient is a field element and binds the
// coefficients to f.
func NewPoly(coefs []int, f *Field) (*Poly, error) {
	if f == nil {
		return nil, domainErr("NewPoly", 0, "nil field")
	}
	b := make([]byte, len(coefs))
	for i, c := range coefs {
		if c < 0 || c > 255 {
			return nil, domainErr("NewPoly", c, "coefficient %d is not a field element", i)
		}
		b[i] = byte(c)
	}
	return &Poly{coefs: b, field: f}, nil
}

// NewPolyBytes is like NewPoly for coefficients that are already bytes. The
// slice is copied.
func NewPolyBytes(coefs []byte, f *Field) (*Poly, error) {
	if f == nil {
		return nil, domainErr("NewPolyBytes", 0, "nil field")
	}
	return &Poly{coefs: append([]byte(nil), coefs...), field: f}, nil
}

// Field returns the field the coefficients belong to.
func (p *Poly) Field() *Field {
	return p.field
}

// Coefficients returns a copy of the coefficients, lowest degree first.
func (p *Poly) Coefficients() []byte {
	out := make([]byte, len(p.coefs))
	copy(out, p.coefs)
	return out
}

// Len returns the number of stored coefficients, including trailing zeros.
func (p *Poly) Len() int {
	return len(p.coefs)
}

// Degree returns the index of the highest nonzero coefficient, or -1 for the
// zero polynomial.
func (p *Poly) Degree() int {
	for i := len(p.coefs) - 1; i >= 0; i-- {
		if p.coefs[i] != 0 {
			return i
		}
	}
	return -1
}

func (p *Poly) sameField(op string, q *Poly) error {
	if q == nil {
		return domainErr(op, 0, "nil operand")
	}
	if p.field != q.field && p.field.poly != q.field.poly {
		return domainErr(op, q.field.poly, "operand field differs from receiver field %d", p.field.poly)
	}
	return nil
}

// Mul returns the product p * q. The result has len(p)+len(q)-1 coefficients,
// or none when either operand is empty. Leading zeros are not trimmed.
func (p *Poly) Mul(q *Poly) (*Poly, error) {
	if err := p.sameField("Mul", q); err != nil {
		return nil, err
	}
	if len(p.coefs) == 0 || len(q.coefs) == 0 {
		return &Poly{coefs: []byte{}, field: p.field}, nil
	}

	f := p.field
	out := make([]byte, len(p.coefs)+len(q.coefs)-1)
	for i, a := range p.coefs {
		if a == 0 {
			continue
		}
		for j, b := range q.coefs {
			out[i+j] = f.Add(out[i+j], f.Mul(a, b))
		}
	}
	return &Poly{coefs: out, field: f}, nil
}

// Add returns p + q. The result is as long as the longer operand.
func (p *Poly) Add(q *Poly) (*Poly, error) {
	if err := p.sameField("Add", q); err != nil {
		return nil, err
	}
	long, short := p.coefs, q.coefs
	if len(short) > len(long) {
		long, short = short, long
	}
	out := append([]byte(nil), long...)
	for i, c := range short {
		out[i] = p.field.Add(out[i], c)
	}
	return &Poly{coefs: out, field: p.field}, nil
}

// Scale multiplies every coefficient by c.
func (p *Poly) Scale(c byte) *Poly {
	out := make([]byte, len(p.coefs))
	for i, a := range p.coefs {
		out[i] = p.field.Mul(a, c)
	}
	return &Poly{coefs: out, field: p.field}
}

// Eval evaluates p at x.
func (p *Poly) Eval(x byte) byte {
	var acc byte
	for i := len(p.coefs) - 1; i >= 0; i-- {
		acc = p.field.Add(p.field.Mul(acc, x), p.coefs[i])
	}
	return acc
}

// Render formats p in ascending degree, e.g. "1 + a^25 x^2". A coefficient
// is written as a power of the generator a, and a coefficient of 1 is left
// implicit. The zero polynomial renders as "0".
func (p *Poly) Render() (string, error) {
	var terms []string
	for i, c := range p.coefs {
		if c == 0 {
			continue
		}
		l, err := p.field.Log(c)
		if err != nil {
			return "", err
		}
		terms = append(terms, term(coefFactor(l), varFactor(i)))
	}
	if len(terms) == 0 {
		return "0", nil
	}
	return strings.Join(terms, " + "), nil
}

// String implements fmt.Stringer.
func (p *Poly) String() string {
	s, err := p.Render()
	if err != nil {
		return "<" + err.Error() + ">"
	}
	return s
}

func coefFactor(l int) string {
	switch l {
	case 0:
		return ""
	case 1:
		return "a"
	default:
		return "a^" + strconv.Itoa(l)
	}
}

func varFactor(i int) string {
	switch i {
	case 0:
		return ""
	case 1:
		return "x"
	default:
		return "x^" + strconv.Itoa(i)
	}
}

func term(coef, v string) string {
	switch {
	case coef == "" && v == "":
		return "1"
	case coef == "":
		return v
	case v == "":
		return coef
	default:
		return coef + " " + v
	}
}
