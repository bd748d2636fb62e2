package rsa

import (
	"errors"
	"fmt"
	"io"
	"math/big"

	"numerix/internal/numtheory"
)

// DefaultBits is the size of each generated prime factor.
const DefaultBits = 1024

// publicExponent is the conventional e = 65537. Valid whenever
// gcd(e, phi) = 1, which holds for virtually all random prime pairs;
// GenerateKey resamples the primes on the rare failure.
const publicExponent = 65537

// ErrMessageTooLarge is returned when a plaintext or ciphertext element
// falls outside [0, n). Without the check the value would silently wrap
// and decrypt to garbage.
var ErrMessageTooLarge = errors.New("rsa: message element out of range of the modulus")

// PublicKey holds the encryption half of an RSA key pair.
type PublicKey struct {
	N *big.Int // modulus, p*q
	E *big.Int // public exponent
}

// PrivateKey holds a full RSA key pair. Immutable once generated.
type PrivateKey struct {
	PublicKey
	D   *big.Int // private exponent, inverse of E mod Phi
	P   *big.Int
	Q   *big.Int
	Phi *big.Int // (p-1)*(q-1)
}

// GenerateKey produces an RSA key pair with two independent primes of
// the given bit size each. Randomness comes from random, which must be
// cryptographically strong for anything beyond teaching use.
func GenerateKey(random io.Reader, bits int) (*PrivateKey, error) {
	if bits <= 0 {
		bits = DefaultBits
	}
	e := big.NewInt(publicExponent)
	for {
		p, err := numtheory.GeneratePrime(random, bits, numtheory.DefaultRounds)
		if err != nil {
			return nil, fmt.Errorf("generating p: %w", err)
		}
		q, err := numtheory.GeneratePrime(random, bits, numtheory.DefaultRounds)
		if err != nil {
			return nil, fmt.Errorf("generating q: %w", err)
		}
		if p.Cmp(q) == 0 {
			continue
		}

		n := new(big.Int).Mul(p, q)
		phi := new(big.Int).Mul(
			new(big.Int).Sub(p, big.NewInt(1)),
			new(big.Int).Sub(q, big.NewInt(1)),
		)

		d, err := numtheory.ModInverse(e, phi)
		if errors.Is(err, numtheory.ErrNoInverse) {
			// e shares a factor with phi; fresh primes fix it.
			continue
		}
		if err != nil {
			return nil, err
		}

		return &PrivateKey{
			PublicKey: PublicKey{N: n, E: e},
			D:         d,
			P:         p,
			Q:         q,
			Phi:       phi,
		}, nil
	}
}

// Encrypt maps each plaintext element m to m^E mod N, independently and
// order-preserving. Every element must lie in [0, N); violations return
// ErrMessageTooLarge and no ciphertext.
func Encrypt(pub *PublicKey, plaintext []*big.Int) ([]*big.Int, error) {
	ciphertext := make([]*big.Int, len(plaintext))
	for i, m := range plaintext {
		if m.Sign() < 0 || m.Cmp(pub.N) >= 0 {
			return nil, fmt.Errorf("element %d: %w", i, ErrMessageTooLarge)
		}
		ciphertext[i] = numtheory.ModExp(m, pub.E, pub.N)
	}
	return ciphertext, nil
}

// Decrypt inverts Encrypt: each ciphertext element c becomes c^D mod N.
// For any m < N, Decrypt(Encrypt([m])) == [m].
func Decrypt(priv *PrivateKey, ciphertext []*big.Int) []*big.Int {
	plaintext := make([]*big.Int, len(ciphertext))
	for i, c := range ciphertext {
		plaintext[i] = numtheory.ModExp(c, priv.D, priv.N)
	}
	return plaintext
}
