package numtheory

import (
	"errors"
	"math/big"
)

// ErrNoInverse is returned by ModInverse when the operands share a
// factor. During key generation callers treat it as fatal to the attempt
// in progress and resample their parameters.
var ErrNoInverse = errors.New("modular inverse does not exist")

// ExtendedGCD returns g = gcd(a, b) together with Bézout coefficients
// x, y satisfying a*x + b*y = g. The remainder sequence is unrolled into
// an explicit loop so coefficient growth never touches the call stack.
func ExtendedGCD(a, b *big.Int) (g, x, y *big.Int) {
	oldR, r := new(big.Int).Set(a), new(big.Int).Set(b)
	oldS, s := big.NewInt(1), new(big.Int)
	oldT, t := new(big.Int), big.NewInt(1)

	q := new(big.Int)
	tmp := new(big.Int)
	for r.Sign() != 0 {
		q.Quo(oldR, r)

		tmp.Mul(q, r)
		oldR.Sub(oldR, tmp)
		oldR, r = r, oldR

		tmp.Mul(q, s)
		oldS.Sub(oldS, tmp)
		oldS, s = s, oldS

		tmp.Mul(q, t)
		oldT.Sub(oldT, tmp)
		oldT, t = t, oldT
	}
	return oldR, oldS, oldT
}

// ModInverse returns the unique d in [0, m) with a*d ≡ 1 (mod m), or
// ErrNoInverse when gcd(a, m) != 1.
func ModInverse(a, m *big.Int) (*big.Int, error) {
	g, x, _ := ExtendedGCD(a, m)
	if g.Cmp(one) != 0 {
		return nil, ErrNoInverse
	}
	return x.Mod(x, m), nil
}
