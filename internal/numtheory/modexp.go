package numtheory

import "math/big"

var (
	one   = big.NewInt(1)
	two   = big.NewInt(2)
	three = big.NewInt(3)
)

// ModExp returns m^e mod n using binary square-and-multiply, walking the
// exponent from its least significant bit. Both the running product and
// the running base are reduced after every multiplication, so no
// intermediate grows past n^2. An exponent of zero yields 1 for any base.
// n must be positive.
func ModExp(m, e, n *big.Int) *big.Int {
	if n.Cmp(one) == 0 {
		return new(big.Int)
	}
	result := big.NewInt(1)
	base := new(big.Int).Mod(m, n)
	exp := new(big.Int).Set(e)
	for exp.Sign() > 0 {
		if exp.Bit(0) == 1 {
			result.Mul(result, base)
			result.Mod(result, n)
		}
		base.Mul(base, base)
		base.Mod(base, n)
		exp.Rsh(exp, 1)
	}
	return result
}
