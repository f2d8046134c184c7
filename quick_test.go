package permutations_test

import (
	"math/rand/v2"
	"testing"
	"testing/quick"

	permutations "github.com/AK1089/permutation-groups"
)

const quickGroundSize = 6

// randPerm builds a pseudo-random element of S_n as a product of random
// transpositions.
func randPerm(t *testing.T, r *rand.Rand, n int) permutations.Perm {
	t.Helper()
	p := permutations.Identity(n)
	for k := r.IntN(8); k >= 0; k-- {
		i := r.IntN(n) + 1
		j := r.IntN(n) + 1
		if i == j {
			continue
		}
		swap, err := permutations.New(n, [][]int{{i, j}})
		if err != nil {
			t.Fatalf("New transposition: %v", err)
		}
		p = p.Mul(swap)
	}
	return p
}

func quickRand(seed1, seed2 uint64) *rand.Rand {
	return rand.New(rand.NewPCG(seed1, seed2))
}

func TestQuickAssociativity(t *testing.T) {
	cfg := &quick.Config{MaxCount: 200}
	err := quick.Check(func(s1, s2 uint64) bool {
		r := quickRand(s1, s2)
		a := randPerm(t, r, quickGroundSize)
		b := randPerm(t, r, quickGroundSize)
		c := randPerm(t, r, quickGroundSize)
		return a.Mul(b).Mul(c).Equal(a.Mul(b.Mul(c)))
	}, cfg)
	if err != nil {
		t.Fatal(err)
	}
}

func TestQuickInverseLaw(t *testing.T) {
	cfg := &quick.Config{MaxCount: 200}
	e := permutations.Identity(quickGroundSize)
	err := quick.Check(func(s1, s2 uint64) bool {
		r := quickRand(s1, s2)
		x := randPerm(t, r, quickGroundSize)
		return x.Mul(x.Inverse()).Equal(e) && x.Inverse().Mul(x).Equal(e)
	}, cfg)
	if err != nil {
		t.Fatal(err)
	}
}

func TestQuickOrderPowerLaw(t *testing.T) {
	cfg := &quick.Config{MaxCount: 200}
	e := permutations.Identity(quickGroundSize)
	err := quick.Check(func(s1, s2 uint64) bool {
		r := quickRand(s1, s2)
		x := randPerm(t, r, quickGroundSize)
		order := x.Order()
		if order < 1 {
			return false
		}
		if !x.Pow(order).Equal(e) {
			return false
		}
		// Order is minimal.
		for k := 1; k < order; k++ {
			if x.Pow(k).Equal(e) {
				return false
			}
		}
		return true
	}, cfg)
	if err != nil {
		t.Fatal(err)
	}
}

func TestQuickSignHomomorphism(t *testing.T) {
	cfg := &quick.Config{MaxCount: 200}
	err := quick.Check(func(s1, s2 uint64) bool {
		r := quickRand(s1, s2)
		a := randPerm(t, r, quickGroundSize)
		b := randPerm(t, r, quickGroundSize)
		return a.Mul(b).Sign() == a.Sign()*b.Sign()
	}, cfg)
	if err != nil {
		t.Fatal(err)
	}
}

func TestQuickRenderRoundTrip(t *testing.T) {
	cfg := &quick.Config{MaxCount: 200}
	err := quick.Check(func(s1, s2 uint64) bool {
		r := quickRand(s1, s2)
		x := randPerm(t, r, quickGroundSize)
		y, parseErr := permutations.Parse(x.String())
		if parseErr != nil {
			return false
		}
		// The ground size is recoverable from the full form, which lists
		// every element.
		return y.Equal(x)
	}, cfg)
	if err != nil {
		t.Fatal(err)
	}
}

func TestQuickCyclicClosure(t *testing.T) {
	cfg := &quick.Config{MaxCount: 50}
	err := quick.Check(func(s1, s2 uint64) bool {
		r := quickRand(s1, s2)
		x := randPerm(t, r, quickGroundSize)
		group := permutations.Generate([]permutations.Perm{x})
		if len(group) != x.Order() {
			return false
		}
		for _, g := range group {
			found := false
			for k := 1; k <= x.Order(); k++ {
				if g.Equal(x.Pow(k)) {
					found = true
					break
				}
			}
			if !found {
				return false
			}
		}
		return true
	}, cfg)
	if err != nil {
		t.Fatal(err)
	}
}
