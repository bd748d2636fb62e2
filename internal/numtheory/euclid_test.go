package numtheory_test

import (
	"crypto/rand"
	"errors"
	"math/big"
	"testing"

	"numerix/internal/numtheory"
)

func TestExtendedGCD_BezoutIdentity(t *testing.T) {
	cases := []struct {
		a, b, gcd int64
	}{
		{240, 46, 2},
		{17, 3120, 1},
		{65537, 3120, 1},
		{12, 18, 6},
		{7, 1, 1},
		{1, 7, 1},
		{100, 0, 100},
	}
	for _, c := range cases {
		a, b := big.NewInt(c.a), big.NewInt(c.b)
		g, x, y := numtheory.ExtendedGCD(a, b)
		if g.Int64() != c.gcd {
			t.Errorf("gcd(%d, %d) = %s, want %d", c.a, c.b, g, c.gcd)
		}
		// a*x + b*y must equal g.
		sum := new(big.Int).Mul(a, x)
		sum.Add(sum, new(big.Int).Mul(b, y))
		if sum.Cmp(g) != 0 {
			t.Errorf("Bezout identity broken for (%d, %d): %s*%s + %s*%s = %s != %s",
				c.a, c.b, a, x, b, y, sum, g)
		}
	}
}

func TestModInverse_Correctness(t *testing.T) {
	cases := []struct {
		a, m int64
	}{
		{17, 3120},
		{65537, 3120},
		{3, 11},
		{7, 22},
		{2, 5},
	}
	for _, c := range cases {
		inv, err := numtheory.ModInverse(big.NewInt(c.a), big.NewInt(c.m))
		if err != nil {
			t.Fatalf("ModInverse(%d, %d): %v", c.a, c.m, err)
		}
		if inv.Sign() < 0 || inv.Cmp(big.NewInt(c.m)) >= 0 {
			t.Errorf("inverse %s of %d mod %d outside [0, m)", inv, c.a, c.m)
		}
		prod := new(big.Int).Mul(big.NewInt(c.a), inv)
		prod.Mod(prod, big.NewInt(c.m))
		if prod.Int64() != 1 {
			t.Errorf("(%d * %s) mod %d = %s, want 1", c.a, inv, c.m, prod)
		}
	}
}

func TestModInverse_TextbookRSAExponent(t *testing.T) {
	// phi(61*53) = 3120; the inverse of 17 is the textbook d = 2753.
	d, err := numtheory.ModInverse(big.NewInt(17), big.NewInt(3120))
	if err != nil {
		t.Fatalf("ModInverse: %v", err)
	}
	if d.Int64() != 2753 {
		t.Fatalf("d = %s, want 2753", d)
	}
}

func TestModInverse_NoInverse(t *testing.T) {
	_, err := numtheory.ModInverse(big.NewInt(6), big.NewInt(9))
	if !errors.Is(err, numtheory.ErrNoInverse) {
		t.Fatalf("want ErrNoInverse, got %v", err)
	}
}

func TestModInverse_RandomCoprimePairs(t *testing.T) {
	m := big.NewInt(1 << 20)
	for i := 0; i < 32; i++ {
		a, err := rand.Int(rand.Reader, m)
		if err != nil {
			t.Fatal(err)
		}
		a.Or(a, big.NewInt(1)) // odd, hence coprime to 2^20
		inv, err := numtheory.ModInverse(a, m)
		if err != nil {
			t.Fatalf("ModInverse(%s, %s): %v", a, m, err)
		}
		prod := new(big.Int).Mul(a, inv)
		prod.Mod(prod, m)
		if prod.Int64() != 1 {
			t.Fatalf("(%s * %s) mod %s = %s, want 1", a, inv, m, prod)
		}
	}
}
