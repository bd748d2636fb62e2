package numtheory

import (
	crand "crypto/rand"
	"errors"
	"fmt"
	"io"
	"math/big"
)

// ErrNoGenerator is returned when a finder exhausts its candidates. For a
// genuine safe prime this is unreachable: the group mod p has order
// 2q with q prime, so any element failing both subgroup checks below
// generates the whole group, and most elements do.
var ErrNoGenerator = errors.New("no generator found; modulus is not a safe prime")

// GeneratorFinder locates a generator of the multiplicative group modulo
// a safe prime. It is an interface so the discovery strategy can be
// swapped without touching key generation.
type GeneratorFinder interface {
	Find(p *big.Int) (*big.Int, error)
}

// LinearScan tries g = 2, 3, 4, ... in order and returns the first valid
// generator. Deterministic for a given p, which keeps test vectors
// stable; worst-case slow for adversarial moduli.
type LinearScan struct{}

func (LinearScan) Find(p *big.Int) (*big.Int, error) {
	q := subgroupOrder(p)
	for g := big.NewInt(2); g.Cmp(p) < 0; g.Add(g, one) {
		if isGenerator(g, q, p) {
			return g, nil
		}
	}
	return nil, ErrNoGenerator
}

// RandomWalk samples candidates uniformly from [2, p-2] until one passes
// the generator test. Roughly half the group qualifies, so a couple of
// draws suffice in expectation.
type RandomWalk struct {
	Rand io.Reader
}

func (f RandomWalk) Find(p *big.Int) (*big.Int, error) {
	q := subgroupOrder(p)
	span := new(big.Int).Sub(p, three)
	for {
		g, err := crand.Int(f.Rand, span)
		if err != nil {
			return nil, fmt.Errorf("drawing generator candidate: %w", err)
		}
		g.Add(g, two)
		if isGenerator(g, q, p) {
			return g, nil
		}
	}
}

// isGenerator reports whether g generates the full order-(p-1) group.
// With p = 2q+1 the proper divisors of p-1 are 1, 2 and q, so g has full
// order exactly when g^2 mod p != 1 and g^q mod p != 1.
func isGenerator(g, q, p *big.Int) bool {
	return ModExp(g, two, p).Cmp(one) != 0 && ModExp(g, q, p).Cmp(one) != 0
}

func subgroupOrder(p *big.Int) *big.Int {
	q := new(big.Int).Sub(p, one)
	return q.Rsh(q, 1)
}
