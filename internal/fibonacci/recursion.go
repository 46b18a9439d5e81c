package fibonacci

import (
	"errors"
	"math/big"
)

// ErrNegative is returned when an index or operand is below zero.
var ErrNegative = errors.New("not defined for negative numbers")

// MaxRecursive is the largest index Recursive accepts. F(93) is the last
// Fibonacci number that fits in a uint64.
const MaxRecursive = 93

// ErrTooLarge is returned by Recursive for indices above MaxRecursive.
var ErrTooLarge = errors.New("index too large for recursive evaluation")

// Recursive returns F(n) using the textbook definition
// F(n) = F(n-1) + F(n-2) with F(0) = 0 and F(1) = 1.
//
// The running time is exponential in n.
//
// Parameters:
//   - n: The index in the sequence.
//
// Returns:
//   - uint64: F(n).
//   - error: ErrNegative if n < 0, ErrTooLarge if n > MaxRecursive.
func Recursive(n int) (uint64, error) {
	if n < 0 {
		return 0, ErrNegative
	}
	if n > MaxRecursive {
		return 0, ErrTooLarge
	}
	return recursive(n), nil
}

func recursive(n int) uint64 {
	if n <= 1 {
		return uint64(n)
	}
	return recursive(n-1) + recursive(n-2)
}

// Factorial returns n! computed recursively. 0! is 1.
//
// Returns:
//   - *big.Int: n!.
//   - error: ErrNegative if n < 0.
func Factorial(n int) (*big.Int, error) {
	if n < 0 {
		return nil, ErrNegative
	}
	return factorial(n), nil
}

func factorial(n int) *big.Int {
	if n == 0 {
		return big.NewInt(1)
	}
	return new(big.Int).Mul(big.NewInt(int64(n)), factorial(n-1))
}
