package domain

import (
	"fmt"
	"math/big"

	"numerix/internal/scheme/elgamal"
	"numerix/internal/scheme/rsa"
)

// RSAKey is the on-disk form of an RSA key pair. All values are decimal
// strings so the JSON stays readable and diffable at any key size.
type RSAKey struct {
	N   string `json:"n"`
	E   string `json:"e"`
	D   string `json:"d"`
	P   string `json:"p"`
	Q   string `json:"q"`
	Phi string `json:"phi"`
}

// ElGamalKey is the on-disk form of an ElGamal key pair.
type ElGamalKey struct {
	P string `json:"p"`
	G string `json:"g"`
	Y string `json:"y"`
	X string `json:"x"`
}

// RecordRSA converts a live key pair into its stored form.
func RecordRSA(k *rsa.PrivateKey) RSAKey {
	return RSAKey{
		N:   k.N.String(),
		E:   k.E.String(),
		D:   k.D.String(),
		P:   k.P.String(),
		Q:   k.Q.String(),
		Phi: k.Phi.String(),
	}
}

// Key parses the record back into a usable key pair.
func (r RSAKey) Key() (*rsa.PrivateKey, error) {
	vals, err := parseAll(map[string]string{
		"n": r.N, "e": r.E, "d": r.D, "p": r.P, "q": r.Q, "phi": r.Phi,
	})
	if err != nil {
		return nil, err
	}
	return &rsa.PrivateKey{
		PublicKey: rsa.PublicKey{N: vals["n"], E: vals["e"]},
		D:         vals["d"],
		P:         vals["p"],
		Q:         vals["q"],
		Phi:       vals["phi"],
	}, nil
}

// RecordElGamal converts a live key pair into its stored form.
func RecordElGamal(k *elgamal.PrivateKey) ElGamalKey {
	return ElGamalKey{
		P: k.P.String(),
		G: k.G.String(),
		Y: k.Y.String(),
		X: k.X.String(),
	}
}

// Key parses the record back into a usable key pair.
func (r ElGamalKey) Key() (*elgamal.PrivateKey, error) {
	vals, err := parseAll(map[string]string{
		"p": r.P, "g": r.G, "y": r.Y, "x": r.X,
	})
	if err != nil {
		return nil, err
	}
	return &elgamal.PrivateKey{
		PublicKey: elgamal.PublicKey{P: vals["p"], G: vals["g"], Y: vals["y"]},
		X:         vals["x"],
	}, nil
}

func parseAll(fields map[string]string) (map[string]*big.Int, error) {
	out := make(map[string]*big.Int, len(fields))
	for name, text := range fields {
		v, ok := new(big.Int).SetString(text, 10)
		if !ok {
			return nil, fmt.Errorf("key field %q is not a decimal integer", name)
		}
		out[name] = v
	}
	return out, nil
}
