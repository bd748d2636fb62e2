package elgamal

import (
	crand "crypto/rand"
	"crypto/sha256"
	"fmt"
	"io"
	"math/big"

	"numerix/internal/numtheory"
)

// DefaultBits is the safe-prime size used when callers pass no size.
// Small by cryptographic standards; keeps textbook-scale key generation
// fast. Pass a larger size for anything resembling real use.
const DefaultBits = 64

var (
	one   = big.NewInt(1)
	two   = big.NewInt(2)
	three = big.NewInt(3)
)

// PublicKey is the verification half of an ElGamal key pair.
type PublicKey struct {
	P *big.Int // safe prime modulus
	G *big.Int // generator of the order-(p-1) group
	Y *big.Int // g^x mod p
}

// PrivateKey holds the full key pair. Immutable once generated.
type PrivateKey struct {
	PublicKey
	X *big.Int // private exponent, 1 < x < p-1
}

// GenerateKey produces an ElGamal key pair over a fresh safe prime of
// the given bit size, using finder to locate the group generator.
func GenerateKey(random io.Reader, bits int, finder numtheory.GeneratorFinder) (*PrivateKey, error) {
	if bits <= 0 {
		bits = DefaultBits
	}
	if finder == nil {
		finder = numtheory.LinearScan{}
	}

	p, err := numtheory.GenerateSafePrime(random, bits, numtheory.DefaultRounds)
	if err != nil {
		return nil, fmt.Errorf("generating safe prime: %w", err)
	}
	g, err := finder.Find(p)
	if err != nil {
		return nil, err
	}

	// x uniform in [2, p-2].
	x, err := crand.Int(random, new(big.Int).Sub(p, three))
	if err != nil {
		return nil, fmt.Errorf("drawing private exponent: %w", err)
	}
	x.Add(x, two)

	return &PrivateKey{
		PublicKey: PublicKey{P: p, G: g, Y: numtheory.ModExp(g, x, p)},
		X:         x,
	}, nil
}

// Sign produces a signature (r, s) over msg. A fresh nonce k coprime to
// p-1 is drawn per call, so repeated signatures over one message differ;
// all of them verify.
func Sign(random io.Reader, priv *PrivateKey, msg []byte) (r, s *big.Int, err error) {
	pMinus1 := new(big.Int).Sub(priv.P, one)
	span := new(big.Int).Sub(priv.P, three)

	var k, kInv *big.Int
	for {
		k, err = crand.Int(random, span)
		if err != nil {
			return nil, nil, fmt.Errorf("drawing nonce: %w", err)
		}
		k.Add(k, two) // [2, p-2]

		// One Euclidean pass yields both the coprimality check and,
		// when it succeeds, the inverse.
		g, inv, _ := numtheory.ExtendedGCD(k, pMinus1)
		if g.Cmp(one) == 0 {
			kInv = inv.Mod(inv, pMinus1)
			break
		}
	}

	h := hashToInt(msg)
	r = numtheory.ModExp(priv.G, k, priv.P)

	// s = kInv * (H - x*r) mod (p-1). H - x*r is usually negative;
	// big.Int.Mod normalizes into [0, p-1).
	s = new(big.Int).Mul(priv.X, r)
	s.Sub(h, s)
	s.Mul(s, kInv)
	s.Mod(s, pMinus1)

	return r, s, nil
}

// Verify reports whether (r, s) is a valid signature over msg. It checks
// y^r * r^s mod p == g^H mod p after rejecting r outside [1, p) and s
// outside [0, p-1); out-of-range values are simply invalid, not errors.
func Verify(pub *PublicKey, msg []byte, r, s *big.Int) bool {
	pMinus1 := new(big.Int).Sub(pub.P, one)
	if r.Sign() < 1 || r.Cmp(pub.P) >= 0 {
		return false
	}
	if s.Sign() < 0 || s.Cmp(pMinus1) >= 0 {
		return false
	}

	h := hashToInt(msg)
	left := new(big.Int).Mul(
		numtheory.ModExp(pub.Y, r, pub.P),
		numtheory.ModExp(r, s, pub.P),
	)
	left.Mod(left, pub.P)
	right := numtheory.ModExp(pub.G, h, pub.P)
	return left.Cmp(right) == 0
}

// hashToInt digests msg with SHA-256 and interprets the digest as a
// big-endian integer. Signer and verifier must agree on this mapping.
func hashToInt(msg []byte) *big.Int {
	sum := sha256.Sum256(msg)
	return new(big.Int).SetBytes(sum[:])
}
