package rsa_test

import (
	crand "crypto/rand"
	"errors"
	"math/big"
	"testing"

	"github.com/stretchr/testify/require"

	"numerix/internal/scheme/rsa"
)

// textbookKey is the classic worked example: p=61, q=53, e=17.
func textbookKey() *rsa.PrivateKey {
	return &rsa.PrivateKey{
		PublicKey: rsa.PublicKey{N: big.NewInt(3233), E: big.NewInt(17)},
		D:         big.NewInt(2753),
		P:         big.NewInt(61),
		Q:         big.NewInt(53),
		Phi:       big.NewInt(3120),
	}
}

func TestEncryptDecrypt_TextbookScenario(t *testing.T) {
	key := textbookKey()

	ct, err := rsa.Encrypt(&key.PublicKey, []*big.Int{big.NewInt(65)})
	require.NoError(t, err)
	require.Len(t, ct, 1)
	require.Equal(t, int64(2790), ct[0].Int64())

	pt := rsa.Decrypt(key, ct)
	require.Len(t, pt, 1)
	require.Equal(t, int64(65), pt[0].Int64())
}

func TestEncryptDecrypt_RoundTripsEveryResidue(t *testing.T) {
	key := textbookKey()
	ms := make([]*big.Int, 0, 64)
	for m := int64(0); m < 3233; m += 51 {
		ms = append(ms, big.NewInt(m))
	}
	ct, err := rsa.Encrypt(&key.PublicKey, ms)
	require.NoError(t, err)
	pt := rsa.Decrypt(key, ct)
	require.Len(t, pt, len(ms))
	for i := range ms {
		require.Zero(t, ms[i].Cmp(pt[i]), "element %d: %s round-tripped to %s", i, ms[i], pt[i])
	}
}

func TestEncrypt_PreservesOrderAndLength(t *testing.T) {
	key := textbookKey()
	ms := []*big.Int{big.NewInt(1), big.NewInt(2), big.NewInt(1)}
	ct, err := rsa.Encrypt(&key.PublicKey, ms)
	require.NoError(t, err)
	require.Len(t, ct, 3)
	// Equal plaintexts map to equal ciphertexts: textbook RSA is
	// deterministic per element.
	require.Zero(t, ct[0].Cmp(ct[2]))
	require.NotZero(t, ct[0].Cmp(ct[1]))
}

func TestEncrypt_RejectsOutOfRange(t *testing.T) {
	key := textbookKey()

	_, err := rsa.Encrypt(&key.PublicKey, []*big.Int{big.NewInt(3233)})
	require.ErrorIs(t, err, rsa.ErrMessageTooLarge)

	_, err = rsa.Encrypt(&key.PublicKey, []*big.Int{big.NewInt(-1)})
	require.ErrorIs(t, err, rsa.ErrMessageTooLarge)

	// The offending index is named so callers can report it.
	_, err = rsa.Encrypt(&key.PublicKey, []*big.Int{big.NewInt(7), big.NewInt(5000)})
	require.Error(t, err)
	require.True(t, errors.Is(err, rsa.ErrMessageTooLarge))
	require.Contains(t, err.Error(), "element 1")
}

func TestGenerateKey_Invariants(t *testing.T) {
	key, err := rsa.GenerateKey(crand.Reader, 128)
	require.NoError(t, err)

	require.Zero(t, new(big.Int).Mul(key.P, key.Q).Cmp(key.N), "n = p*q")

	phi := new(big.Int).Mul(
		new(big.Int).Sub(key.P, big.NewInt(1)),
		new(big.Int).Sub(key.Q, big.NewInt(1)),
	)
	require.Zero(t, phi.Cmp(key.Phi), "phi = (p-1)(q-1)")

	ed := new(big.Int).Mul(key.E, key.D)
	ed.Mod(ed, key.Phi)
	require.Equal(t, int64(1), ed.Int64(), "e*d = 1 mod phi")

	require.Equal(t, int64(65537), key.E.Int64())
	require.NotZero(t, key.P.Cmp(key.Q), "p and q are distinct")
}

func TestGenerateKey_RoundTripWithFreshKey(t *testing.T) {
	key, err := rsa.GenerateKey(crand.Reader, 96)
	require.NoError(t, err)

	m, err := crand.Int(crand.Reader, key.N)
	require.NoError(t, err)

	ct, err := rsa.Encrypt(&key.PublicKey, []*big.Int{m})
	require.NoError(t, err)
	pt := rsa.Decrypt(key, ct)
	require.Zero(t, m.Cmp(pt[0]))
}
