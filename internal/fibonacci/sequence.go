package fibonacci

import (
	"math/big"
	"strings"
)

// Sequence returns F(0), F(1), ..., F(n), so the result has n+1 elements.
func Sequence(n int) ([]*big.Int, error) {
	if n < 0 {
		return nil, ErrNegative
	}
	seq := make([]*big.Int, n+1)
	seq[0] = big.NewInt(0)
	if n == 0 {
		return seq, nil
	}
	seq[1] = big.NewInt(1)
	for i := 2; i <= n; i++ {
		seq[i] = new(big.Int).Add(seq[i-1], seq[i-2])
	}
	return seq, nil
}

// Join renders a sequence as decimal values separated by sep.
func Join(seq []*big.Int, sep string) string {
	var b strings.Builder
	for i, v := range seq {
		if i > 0 {
			b.WriteString(sep)
		}
		b.WriteString(v.String())
	}
	return b.String()
}
