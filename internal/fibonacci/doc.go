// Package fibonacci computes Fibonacci numbers and factorials.
//
// Recursive and Factorial are the plain recursive definitions and are meant
// for small inputs. Sequence and FastDoubling use math/big and stay fast for
// large indices. FastDoublingMod returns F(n) mod m in memory bounded by m,
// which makes it suitable for the last digits of very large indices.
package fibonacci
