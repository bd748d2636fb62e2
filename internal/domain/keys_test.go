package domain_test

import (
	"math/big"
	"testing"

	"numerix/internal/domain"
	"numerix/internal/scheme/elgamal"
	"numerix/internal/scheme/rsa"
)

func TestRSAKey_RecordRoundTrip(t *testing.T) {
	key := &rsa.PrivateKey{
		PublicKey: rsa.PublicKey{N: big.NewInt(3233), E: big.NewInt(17)},
		D:         big.NewInt(2753),
		P:         big.NewInt(61),
		Q:         big.NewInt(53),
		Phi:       big.NewInt(3120),
	}
	got, err := domain.RecordRSA(key).Key()
	if err != nil {
		t.Fatalf("parse record: %v", err)
	}
	if got.N.Cmp(key.N) != 0 || got.E.Cmp(key.E) != 0 || got.D.Cmp(key.D) != 0 ||
		got.P.Cmp(key.P) != 0 || got.Q.Cmp(key.Q) != 0 || got.Phi.Cmp(key.Phi) != 0 {
		t.Fatalf("mismatch after round trip: %+v", got)
	}
}

func TestElGamalKey_RecordRoundTrip(t *testing.T) {
	key := &elgamal.PrivateKey{
		PublicKey: elgamal.PublicKey{P: big.NewInt(23), G: big.NewInt(5), Y: big.NewInt(8)},
		X:         big.NewInt(6),
	}
	got, err := domain.RecordElGamal(key).Key()
	if err != nil {
		t.Fatalf("parse record: %v", err)
	}
	if got.P.Cmp(key.P) != 0 || got.G.Cmp(key.G) != 0 ||
		got.Y.Cmp(key.Y) != 0 || got.X.Cmp(key.X) != 0 {
		t.Fatalf("mismatch after round trip: %+v", got)
	}
}

func TestKey_RejectsCorruptRecord(t *testing.T) {
	bad := domain.RSAKey{N: "not-a-number", E: "17", D: "2753", P: "61", Q: "53", Phi: "3120"}
	if _, err := bad.Key(); err == nil {
		t.Fatal("want error for corrupt record")
	}

	badEG := domain.ElGamalKey{P: "23", G: "", Y: "8", X: "6"}
	if _, err := badEG.Key(); err == nil {
		t.Fatal("want error for empty field")
	}
}
