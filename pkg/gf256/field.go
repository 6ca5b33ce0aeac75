// Package gf256 implements arithmetic over GF(2^8) using power and logarithm
// tables generated by repeated doubling modulo a reducing polynomial, and
// polynomials whose coefficients are elements of that field.
package gf256

const (
	// DefaultReducingPolynomial is x^8 + x^4 + x^3 + x^2 + 1 (0x11D).
	DefaultReducingPolynomial = 285

	// Order is the order of the multiplicative group.
	Order = 255

	// TableSize covers the sum of any two logarithms without a modulo step.
	TableSize = 512

	minReducingPolynomial = 1 << 8
	maxReducingPolynomial = 1<<9 - 1
)

// Field holds the power and logarithm tables for one reducing polynomial.
// It is immutable after NewField returns and may be shared between goroutines.
type Field struct {
	poly int
	exp  [TableSize]byte
	// log[v] is the exponent of v, or -1 when v does not appear in exp[0:255].
	log [256]int16
}

// NewField builds the tables for the given reducing polynomial. The value
// must encode a primitive polynomial of degree 8, i.e. doubling from 1 must
// visit every nonzero byte exactly once before returning to 1 at step 255.
func NewField(poly int) (*Field, error) {
	if poly < minReducingPolynomial || poly > maxReducingPolynomial {
		return nil, domainErr("NewField", poly, "reducing polynomial must be in [%d, %d]",
			minReducingPolynomial, maxReducingPolynomial)
	}

	f := &Field{poly: poly}
	for i := range f.log {
		f.log[i] = -1
	}

	x := 1
	for i := 0; i < TableSize; i++ {
		f.exp[i] = byte(x)
		if i < Order {
			if f.log[x] >= 0 {
				return nil, domainErr("NewField", poly, "power table repeats %d at exponents %d and %d",
					x, f.log[x], i)
			}
			f.log[x] = int16(i)
		}
		x = double(x, poly)
	}

	if f.exp[Order] != 1 {
		return nil, domainErr("NewField", poly, "power table does not close at period %d", Order)
	}

	return f, nil
}

// MustField is like NewField but panics on error. It is meant for package
// level variables built from known-good constants.
func MustField(poly int) *Field {
	f, err := NewField(poly)
	if err != nil {
		panic(err)
	}
	return f
}

// double multiplies v by x and reduces the overflow bit.
func double(v, poly int) int {
	v <<= 1
	if v >= 1<<8 {
		v ^= poly
	}
	return v
}

// ReducingPolynomial returns the polynomial the tables were built from.
func (f *Field) ReducingPolynomial() int {
	return f.poly
}

// Power returns the generator raised to e. Exponents past the table wrap
// with period 255.
func (f *Field) Power(e int) byte {
	if e < 0 || e >= TableSize {
		e %= Order
		if e < 0 {
			e += Order
		}
	}
	return f.exp[e]
}

// Log returns the unique exponent i in [0,254] with Power(i) == v.
func (f *Field) Log(v byte) (int, error) {
	if v == 0 {
		return 0, domainErr("Log", 0, "zero has no logarithm")
	}
	l := f.log[v]
	if l < 0 {
		return 0, &ConsistencyError{Op: "Log", Value: int(v), Reason: "value missing from power table"}
	}
	return int(l), nil
}

// Add returns a + b, which in characteristic 2 is XOR. It is also subtraction.
func (f *Field) Add(a, b byte) byte {
	return a ^ b
}

// Mul returns a * b.
func (f *Field) Mul(a, b byte) byte {
	if a == 0 || b == 0 {
		return 0
	}
	return f.exp[int(f.log[a])+int(f.log[b])]
}

// Inverse returns the multiplicative inverse of a.
func (f *Field) Inverse(a byte) (byte, error) {
	if a == 0 {
		return 0, domainErr("Inverse", 0, "zero has no inverse")
	}
	return f.exp[Order-int(f.log[a])], nil
}

// Div returns a / b.
func (f *Field) Div(a, b byte) (byte, error) {
	if b == 0 {
		return 0, domainErr("Div", int(a), "division by zero")
	}
	if a == 0 {
		return 0, nil
	}
	return f.exp[int(f.log[a])+Order-int(f.log[b])], nil
}

// Pow returns a raised to n. Pow(0, 0) is 1.
func (f *Field) Pow(a byte, n int) byte {
	if n == 0 {
		return 1
	}
	if a == 0 {
		return 0
	}
	return f.Power(int(f.log[a]) * (n % Order) % Order)
}

// PowerTable returns a copy of the full power table.
func (f *Field) PowerTable() []byte {
	out := make([]byte, TableSize)
	copy(out, f.exp[:])
	return out
}

// LogTable returns the logarithm of every byte value; entry 0 is -1.
func (f *Field) LogTable() []int {
	out := make([]int, len(f.log))
	for i, l := range f.log {
		out[i] = int(l)
	}
	return out
}

// Primitive reports whether poly is accepted by NewField.
func Primitive(poly int) bool {
	_, err := NewField(poly)
	return err == nil
}

// PrimitivePolynomials lists every reducing polynomial NewField accepts, in
// ascending order.
func PrimitivePolynomials() []int {
	var out []int
	for p := minReducingPolynomial; p <= maxReducingPolynomial; p++ {
		if Primitive(p) {
			out = append(out, p)
		}
	}
	return out
}
