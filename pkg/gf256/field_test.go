package gf256

import (
	"errors"
	"math"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewField_DefaultPolynomial(t *testing.T) {
	f, err := NewField(DefaultReducingPolynomial)
	require.NoError(t, err)
	assert.Equal(t, DefaultReducingPolynomial, f.ReducingPolynomial())

	table := f.PowerTable()
	require.Len(t, table, TableSize)
	assert.Equal(t, byte(1), table[0])
	assert.Equal(t, byte(1), table[Order])

	seen := make(map[byte]bool)
	for _, v := range table[:Order] {
		assert.NotZero(t, v)
		assert.False(t, seen[v], "value %d appears twice", v)
		seen[v] = true
	}
	assert.Len(t, seen, Order)

	for i := 0; i < TableSize; i++ {
		assert.Equal(t, table[i%Order], table[i], "exponent %d", i)
	}
}

func TestNewField_KnownValues(t *testing.T) {
	f := MustField(DefaultReducingPolynomial)

	assert.Equal(t, byte(2), f.Power(1))
	assert.Equal(t, byte(128), f.Power(7))
	assert.Equal(t, byte(29), f.Power(8))
	assert.Equal(t, byte(3), f.Power(25))
	assert.Equal(t, byte(142), f.Power(254))

	l, err := f.Log(3)
	require.NoError(t, err)
	assert.Equal(t, 25, l)

	l, err = f.Log(1)
	require.NoError(t, err)
	assert.Equal(t, 0, l)
}

func TestNewField_Invalid(t *testing.T) {
	tests := []struct {
		name string
		poly int
	}{
		{"Zero", 0},
		{"Below range", 255},
		{"Above range", 512},
		{"Negative", -285},
		{"Reducible x^8", 256},
		{"Reducible x^8+1", 257},
		{"Irreducible but not primitive (AES)", 283},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f, err := NewField(tt.poly)
			require.Error(t, err)
			assert.Nil(t, f)

			var de *DomainError
			require.True(t, errors.As(err, &de))
			assert.Equal(t, "NewField", de.Op)
			assert.Equal(t, tt.poly, de.Value)
		})
	}
}

func TestMustField_Panics(t *testing.T) {
	assert.Panics(t, func() { MustField(283) })
	assert.NotPanics(t, func() { MustField(301) })
}

func TestPrimitivePolynomials(t *testing.T) {
	polys := PrimitivePolynomials()
	assert.Len(t, polys, 16)
	assert.Contains(t, polys, DefaultReducingPolynomial)
	assert.Contains(t, polys, 301)
	assert.NotContains(t, polys, 283)
	assert.True(t, Primitive(285))
	assert.False(t, Primitive(0))

	for _, p := range polys {
		f := MustField(p)
		assert.Equal(t, byte(1), f.Power(Order), "poly %d", p)
	}
}

func TestPower_Wraps(t *testing.T) {
	f := MustField(DefaultReducingPolynomial)

	assert.Equal(t, f.Power(3), f.Power(3+Order))
	assert.Equal(t, f.Power(3), f.Power(3+4*Order))
	assert.Equal(t, f.Power(Order-1), f.Power(-1))
	assert.Equal(t, byte(1), f.Power(2*Order))
	assert.Equal(t, f.Power(1), f.Power(TableSize-1))
}

func TestLog_Zero(t *testing.T) {
	f := MustField(DefaultReducingPolynomial)

	_, err := f.Log(0)
	var de *DomainError
	require.True(t, errors.As(err, &de))
	assert.Equal(t, "Log", de.Op)
}

func TestLog_InverseOfPower(t *testing.T) {
	f := MustField(DefaultReducingPolynomial)

	for i := 0; i < Order; i++ {
		l, err := f.Log(f.Power(i))
		require.NoError(t, err)
		assert.Equal(t, i, l)
	}
}

func TestLog_ConsistencyError(t *testing.T) {
	broken := *MustField(DefaultReducingPolynomial)
	broken.log[3] = -1

	_, err := broken.Log(3)
	var ce *ConsistencyError
	require.True(t, errors.As(err, &ce))
	assert.Equal(t, 3, ce.Value)

	var de *DomainError
	assert.False(t, errors.As(err, &de))
}

func TestAdd_Properties(t *testing.T) {
	f := MustField(DefaultReducingPolynomial)

	for a := 0; a < 256; a++ {
		assert.Equal(t, byte(0), f.Add(byte(a), byte(a)))
		assert.Equal(t, byte(a), f.Add(byte(a), 0))
		for b := 0; b < 256; b++ {
			if f.Add(byte(a), byte(b)) != f.Add(byte(b), byte(a)) {
				t.Fatalf("Add(%d, %d) not commutative", a, b)
			}
		}
	}
}

func TestMul_Properties(t *testing.T) {
	f := MustField(DefaultReducingPolynomial)

	for a := 0; a < 256; a++ {
		x := byte(a)
		assert.Equal(t, byte(0), f.Mul(x, 0))
		assert.Equal(t, byte(0), f.Mul(0, x))

		if x != 0 {
			assert.Equal(t, x, f.Mul(x, 1))
			l, err := f.Log(x)
			require.NoError(t, err)
			assert.Equal(t, f.Power(2*l), f.Mul(x, x))
		}

		for b := 0; b < 256; b++ {
			y := byte(b)
			if f.Mul(x, y) != f.Mul(y, x) {
				t.Fatalf("Mul(%d, %d) not commutative", a, b)
			}
		}
	}
}

// Schoolbook carryless multiplication with reduction, independent of the tables.
func slowMul(a, b byte, poly int) byte {
	var acc int
	x := int(a)
	for i := 0; i < 8; i++ {
		if b>>i&1 == 1 {
			acc ^= x
		}
		x = double(x, poly)
	}
	return byte(acc)
}

func TestMul_MatchesCarrylessProduct(t *testing.T) {
	for _, poly := range []int{285, 301, 487} {
		f := MustField(poly)
		for a := 0; a < 256; a++ {
			for b := 0; b < 256; b++ {
				want := slowMul(byte(a), byte(b), poly)
				if got := f.Mul(byte(a), byte(b)); got != want {
					t.Fatalf("poly %d: Mul(%d, %d) = %d, want %d", poly, a, b, got, want)
				}
			}
		}
	}
}

func TestMul_Distributive(t *testing.T) {
	f := MustField(DefaultReducingPolynomial)
	samples := []byte{0, 1, 2, 3, 29, 77, 128, 142, 200, 255}

	for a := 0; a < 256; a++ {
		for b := 0; b < 256; b++ {
			for _, c := range samples {
				x, y := byte(a), byte(b)
				lhs := f.Mul(x, f.Add(y, c))
				rhs := f.Add(f.Mul(x, y), f.Mul(x, c))
				if lhs != rhs {
					t.Fatalf("distributivity fails for %d, %d, %d", a, b, c)
				}
			}
		}
	}
}

func TestMul_Associative(t *testing.T) {
	f := MustField(DefaultReducingPolynomial)
	samples := []byte{0, 1, 2, 3, 29, 77, 128, 142, 200, 255}

	for _, a := range samples {
		for _, b := range samples {
			for _, c := range samples {
				assert.Equal(t, f.Mul(f.Mul(a, b), c), f.Mul(a, f.Mul(b, c)))
			}
		}
	}
}

func TestInverseAndDiv(t *testing.T) {
	f := MustField(DefaultReducingPolynomial)

	inv, err := f.Inverse(2)
	require.NoError(t, err)
	assert.Equal(t, byte(142), inv)

	for a := 1; a < 256; a++ {
		inv, err := f.Inverse(byte(a))
		require.NoError(t, err)
		assert.Equal(t, byte(1), f.Mul(byte(a), inv))

		q, err := f.Div(byte(a), byte(a))
		require.NoError(t, err)
		assert.Equal(t, byte(1), q)

		q, err = f.Div(f.Mul(byte(a), 77), 77)
		require.NoError(t, err)
		assert.Equal(t, byte(a), q)
	}

	q, err := f.Div(0, 5)
	require.NoError(t, err)
	assert.Equal(t, byte(0), q)

	_, err = f.Inverse(0)
	var de *DomainError
	assert.True(t, errors.As(err, &de))

	_, err = f.Div(5, 0)
	assert.True(t, errors.As(err, &de))
}

func TestPow(t *testing.T) {
	f := MustField(DefaultReducingPolynomial)

	assert.Equal(t, byte(1), f.Pow(0, 0))
	assert.Equal(t, byte(0), f.Pow(0, 3))
	assert.Equal(t, byte(29), f.Pow(2, 8))
	assert.Equal(t, byte(1), f.Pow(3, Order))
	assert.Equal(t, f.Mul(7, f.Mul(7, 7)), f.Pow(7, 3))
	assert.Equal(t, byte(142), f.Pow(2, -1))
}

func TestPow_LargeExponents(t *testing.T) {
	f := MustField(DefaultReducingPolynomial)

	l, err := f.Log(3)
	require.NoError(t, err)

	assert.Equal(t, f.Power(l*(math.MaxInt%Order)), f.Pow(3, math.MaxInt))
	assert.Equal(t, byte(1), f.Mul(f.Pow(3, math.MaxInt), f.Pow(3, -math.MaxInt)))
	assert.Equal(t, byte(1), f.Pow(3, Order*(math.MaxInt/Order)))
	assert.Equal(t, f.Pow(142, math.MinInt%Order), f.Pow(142, math.MinInt))
}

func TestLogTable(t *testing.T) {
	f := MustField(DefaultReducingPolynomial)
	logs := f.LogTable()

	require.Len(t, logs, 256)
	assert.Equal(t, -1, logs[0])
	assert.Equal(t, 0, logs[1])
	assert.Equal(t, 1, logs[2])
	assert.Equal(t, 25, logs[3])
}

func TestCache_SharesFields(t *testing.T) {
	var c Cache

	var wg sync.WaitGroup
	got := make([]*Field, 32)
	for i := range got {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			f, err := c.Get(DefaultReducingPolynomial)
			assert.NoError(t, err)
			got[i] = f
		}(i)
	}
	wg.Wait()

	for _, f := range got {
		assert.Same(t, got[0], f)
	}
	assert.Equal(t, 1, c.Len())

	_, err := c.Get(283)
	assert.Error(t, err)
	assert.Equal(t, 1, c.Len())
}
