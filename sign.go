package permutations

// Sign returns the parity of the permutation: +1 for even, -1 for odd. A
// cycle of length L decomposes into L-1 transpositions, so each non-trivial
// cycle contributes (-1)^(L+1) and the product over the canonical cycle
// decomposition is the sign. Sign is a homomorphism:
// a.Mul(b).Sign() == a.Sign()*b.Sign().
func (p Perm) Sign() int {
	sum := 0
	for _, cycle := range p.cycles {
		if len(cycle) > 1 {
			sum += len(cycle) + 1
		}
	}
	if sum%2 == 0 {
		return 1
	}
	return -1
}
