package fibonacci

import (
	"fmt"
	"math/big"
	"math/bits"
)

// FastDoubling computes F(n) in O(log n) big-integer steps.
//
// Uses the identities:
//
//	F(2k)   = F(k) * (2*F(k+1) - F(k))
//	F(2k+1) = F(k+1)² + F(k)²
func FastDoubling(n uint64) *big.Int {
	fk, fk1 := big.NewInt(0), big.NewInt(1)
	t1, t2 := new(big.Int), new(big.Int)

	for i := bits.Len64(n) - 1; i >= 0; i-- {
		t1.Lsh(fk1, 1)
		t1.Sub(t1, fk)
		t1.Mul(t1, fk)

		t2.Mul(fk1, fk1)
		fk.Mul(fk, fk)
		t2.Add(t2, fk)

		fk.Set(t1)
		fk1.Set(t2)

		if (n>>uint(i))&1 == 1 {
			t1.Add(fk, fk1)
			fk.Set(fk1)
			fk1.Set(t1)
		}
	}
	return fk
}

// FastDoublingMod computes F(n) mod m with the same doubling steps as
// FastDoubling, reducing after every operation. Memory usage is O(log m)
// regardless of n.
func FastDoublingMod(n uint64, m *big.Int) (*big.Int, error) {
	if m == nil || m.Sign() <= 0 {
		return nil, fmt.Errorf("modulus must be positive")
	}
	if n == 0 {
		return big.NewInt(0), nil
	}

	fk := big.NewInt(0)
	fk1 := big.NewInt(1)
	t1 := new(big.Int)
	t2 := new(big.Int)

	for i := bits.Len64(n) - 1; i >= 0; i-- {
		// F(2k) mod m; Mod keeps the result non-negative.
		t1.Lsh(fk1, 1)
		t1.Sub(t1, fk)
		t1.Mod(t1, m)
		t1.Mul(t1, fk)
		t1.Mod(t1, m)

		// F(2k+1) mod m
		t2.Mul(fk1, fk1)
		fk.Mul(fk, fk)
		t2.Add(t2, fk)
		t2.Mod(t2, m)

		fk.Set(t1)
		fk1.Set(t2)

		if (n>>uint(i))&1 == 1 {
			t1.Add(fk, fk1)
			t1.Mod(t1, m)
			fk.Set(fk1)
			fk1.Set(t1)
		}
	}
	return fk, nil
}

// LastDigits returns the last k decimal digits of F(n), without leading
// zeros.
func LastDigits(n uint64, k int) (*big.Int, error) {
	if k <= 0 {
		return nil, fmt.Errorf("digit count must be positive, got %d", k)
	}
	m := new(big.Int).Exp(big.NewInt(10), big.NewInt(int64(k)), nil)
	return FastDoublingMod(n, m)
}
