package numtheory

import (
	crand "crypto/rand"
	"fmt"
	"io"
	"math/big"
)

// DefaultRounds is the Miller-Rabin round count used when callers have no
// reason to pick their own. Five rounds bound the error at 4^-5.
const DefaultRounds = 5

// IsPrime reports whether n is prime using `rounds` independent
// Miller-Rabin trials with witnesses drawn from random. The answer is
// exact for n <= 3 and for even n; otherwise a composite slips through
// with probability at most 4^-rounds. The only error condition is a
// failing random source.
func IsPrime(random io.Reader, n *big.Int, rounds int) (bool, error) {
	if n.Cmp(two) < 0 {
		return false, nil
	}
	if n.Cmp(three) <= 0 {
		return true, nil
	}
	if n.Bit(0) == 0 {
		return false, nil
	}

	// n-1 = d * 2^s with d odd.
	nMinus1 := new(big.Int).Sub(n, one)
	d := new(big.Int).Set(nMinus1)
	s := 0
	for d.Bit(0) == 0 {
		d.Rsh(d, 1)
		s++
	}

	// Witnesses are uniform over [2, n-2]; the extremes 0, 1 and n-1
	// satisfy the congruence for every n and would waste a trial.
	span := new(big.Int).Sub(n, three)
	for i := 0; i < rounds; i++ {
		a, err := crand.Int(random, span)
		if err != nil {
			return false, fmt.Errorf("drawing witness: %w", err)
		}
		a.Add(a, two)

		x := ModExp(a, d, n)
		if x.Cmp(one) == 0 || x.Cmp(nMinus1) == 0 {
			continue
		}
		witnessed := false
		for j := 0; j < s-1; j++ {
			x.Mul(x, x)
			x.Mod(x, n)
			if x.Cmp(nMinus1) == 0 {
				witnessed = true
				break
			}
		}
		if !witnessed {
			return false, nil
		}
	}
	return true, nil
}

// GeneratePrime returns a prime of at least bits bits. It draws one
// uniform candidate of exactly bits bits and probes linearly upward from
// it, which by the prime number theorem takes O(ln n) tests in
// expectation.
func GeneratePrime(random io.Reader, bits, rounds int) (*big.Int, error) {
	if bits < 2 {
		return nil, fmt.Errorf("prime size %d bits is too small", bits)
	}
	cand, err := randomWithBits(random, bits)
	if err != nil {
		return nil, err
	}
	for {
		ok, err := IsPrime(random, cand, rounds)
		if err != nil {
			return nil, err
		}
		if ok {
			return cand, nil
		}
		cand.Add(cand, one)
	}
}

// GenerateSafePrime returns a prime p of exactly bits bits for which
// (p-1)/2 is also prime. Unlike GeneratePrime it resamples a fresh
// candidate on every failure: incrementing would preserve primality
// probing but break the p = 2q+1 relation being searched for.
func GenerateSafePrime(random io.Reader, bits, rounds int) (*big.Int, error) {
	if bits < 3 {
		return nil, fmt.Errorf("safe prime size %d bits is too small", bits)
	}
	q := new(big.Int)
	for {
		p, err := randomWithBits(random, bits)
		if err != nil {
			return nil, err
		}
		ok, err := IsPrime(random, p, rounds)
		if err != nil {
			return nil, err
		}
		if !ok {
			continue
		}
		q.Sub(p, one)
		q.Rsh(q, 1)
		ok, err = IsPrime(random, q, rounds)
		if err != nil {
			return nil, err
		}
		if ok {
			return p, nil
		}
	}
}

// randomWithBits draws a uniform integer in [2^(bits-1), 2^bits).
func randomWithBits(random io.Reader, bits int) (*big.Int, error) {
	half := new(big.Int).Lsh(one, uint(bits-1))
	r, err := crand.Int(random, half)
	if err != nil {
		return nil, fmt.Errorf("drawing candidate: %w", err)
	}
	return r.Add(r, half), nil
}
