package permutations

import (
	"slices"

	"github.com/AK1089/permutation-groups/internal/cycles"
)

// Mul returns the composition p∘q: apply q first, then p. The result's
// ground size is the larger of the operands'; the smaller operand is padded
// with fixed points. Composition re-normalizes the concatenated cycle
// descriptions, so normalization stays the single source of truth for what a
// cycle list means.
func (p Perm) Mul(q Perm) Perm {
	n := max(p.n, q.n)
	desc := make([][]int, 0, len(q.cycles)+len(p.cycles))
	desc = append(desc, q.cycles...)
	desc = append(desc, p.cycles...)
	return Perm{n: n, cycles: cycles.Normalize(n, desc)}
}

// Pow returns the k-th power of p: the identity for k = 0, repeated
// multiplication for k > 0, and the inverse of the positive power for k < 0.
func (p Perm) Pow(k int) Perm {
	if k < 0 {
		return p.Pow(-k).Inverse()
	}
	out := Identity(p.n)
	for ; k > 0; k-- {
		out = out.Mul(p)
	}
	return out
}

// Inverse returns the unique element q with p.Mul(q) equal to the identity.
// Reversing each canonical cycle describes the inverse mapping directly.
func (p Perm) Inverse() Perm {
	return Perm{n: p.n, cycles: cycles.Normalize(p.n, cycles.Reverse(p.cycles))}
}

// Order returns the smallest positive k with p.Pow(k) equal to the identity:
// the least common multiple of the canonical cycle lengths.
func (p Perm) Order() int {
	order := 1
	for _, l := range cycles.Lengths(p.cycles) {
		order = lcm(order, l)
	}
	return order
}

// Equal reports whether p and q are the same element of the same symmetric
// group: equal ground sizes and identical canonical cycle decompositions.
func (p Perm) Equal(q Perm) bool {
	if p.n != q.n || len(p.cycles) != len(q.cycles) {
		return false
	}
	for i, cycle := range p.cycles {
		if !slices.Equal(cycle, q.cycles[i]) {
			return false
		}
	}
	return true
}

// Compare imposes the deterministic display order used when listing a
// generated group: descending numeric order of the canonical form's digit
// key, so the identity sorts first and long cycles sort last. Ties (possible
// only across ground sets past nine) break on ground size, then on the
// canonical cycle lists. The order carries no group-theoretic meaning.
func (p Perm) Compare(q Perm) int {
	if c := cycles.CompareKeys(cycles.DisplayKey(p.String()), cycles.DisplayKey(q.String())); c != 0 {
		return -c
	}
	if p.n != q.n {
		if p.n < q.n {
			return -1
		}
		return 1
	}
	return slices.CompareFunc(p.cycles, q.cycles, slices.Compare)
}

func lcm(a, b int) int {
	return a / gcd(a, b) * b
}

func gcd(a, b int) int {
	for b != 0 {
		a, b = b, a%b
	}
	return a
}
