// Package permutations models elements of finite symmetric groups S_n in
// disjoint-cycle notation and computes the subgroups they generate.
//
// A [Perm] is an immutable value: construction normalizes any cycle
// description into the unique canonical decomposition over its ground set
// {1..n}, and every operation returns a new value. Perm values are safe for
// concurrent use by multiple goroutines.
package permutations

import (
	"fmt"

	"github.com/AK1089/permutation-groups/errors"
	"github.com/AK1089/permutation-groups/internal/cycles"
)

// Perm is one element of a symmetric group S_n, held in canonical
// disjoint-cycle form: every element of {1..n} appears in exactly one cycle
// (fixed points as singletons), cycles are ordered by least element, and
// each cycle starts at its least element. Canonical form is unique per
// (ground size, mapping) pair; equality and group generation rely on that.
//
// The zero value is the empty permutation on a zero-size ground set; it acts
// as an identity under Mul.
type Perm struct {
	n      int
	cycles [][]int
}

// Parse constructs a permutation from cycle notation such as "(1234)" or
// "(12)(34)". Each cycle member is a single digit; cycles may overlap (they
// compose left to right) and need not mention every element. The ground size
// is the largest element mentioned. Empty input is rejected with
// [errors.ErrGroundSize], since no ground size can be inferred; use
// [ParseWithGroundSize] or [Identity] for identities.
func Parse(text string) (Perm, error) {
	desc, max, err := cycles.Parse(text)
	if err != nil {
		return Perm{}, fmt.Errorf("parse %q: %w", text, err)
	}
	if max == 0 {
		return Perm{}, fmt.Errorf("parse %q: %w", text,
			errors.NewParse(errors.ErrGroundSize, "empty notation has no ground size; supply one explicitly", -1))
	}
	return Perm{n: max, cycles: cycles.Normalize(max, desc)}, nil
}

// ParseWithGroundSize constructs a permutation from cycle notation over a
// fixed ground set {1..n}. Elements omitted from the notation are fixed
// points; elements exceeding n are rejected with [errors.ErrOutOfRange].
// Empty notation yields the identity of S_n.
func ParseWithGroundSize(text string, n int) (Perm, error) {
	if n < 1 {
		return Perm{}, fmt.Errorf("parse %q: %w", text,
			errors.NewParsef(errors.ErrGroundSize, -1, "ground size %d: must be positive", n))
	}
	desc, max, err := cycles.Parse(text)
	if err != nil {
		return Perm{}, fmt.Errorf("parse %q: %w", text, err)
	}
	if max > n {
		return Perm{}, fmt.Errorf("parse %q: %w", text,
			errors.NewParsef(errors.ErrOutOfRange, -1, "element %d exceeds ground size %d", max, n))
	}
	return Perm{n: n, cycles: cycles.Normalize(n, desc)}, nil
}

// New constructs a permutation from a programmatic cycle list over {1..n}.
// Unlike [Parse], elements are not limited to single digits, so this is the
// way to build permutations on ground sets larger than nine. The cycles may
// overlap (composing left to right) and need not cover the ground set.
func New(n int, desc [][]int) (Perm, error) {
	if n < 1 {
		return Perm{}, fmt.Errorf("new permutation: %w",
			errors.NewParsef(errors.ErrGroundSize, -1, "ground size %d: must be positive", n))
	}
	if err := cycles.Validate(n, desc); err != nil {
		return Perm{}, fmt.Errorf("new permutation: %w", err)
	}
	return Perm{n: n, cycles: cycles.Normalize(n, desc)}, nil
}

// Identity returns the identity of S_n. A non-positive n yields the zero
// Perm.
func Identity(n int) Perm {
	if n < 1 {
		return Perm{}
	}
	return Perm{n: n, cycles: cycles.Normalize(n, nil)}
}

// GroundSize returns n, the size of the ground set {1..n} the permutation
// acts on.
func (p Perm) GroundSize() int { return p.n }

// Cycles returns a copy of the canonical cycle decomposition, fixed points
// included.
func (p Perm) Cycles() [][]int {
	out := make([][]int, len(p.cycles))
	for i, cycle := range p.cycles {
		out[i] = append([]int(nil), cycle...)
	}
	return out
}

// String renders the full canonical form, fixed points included, e.g.
// "(132)(4)". Members are space-separated within cycles once the ground set
// grows past nine.
func (p Perm) String() string {
	return cycles.Render(p.cycles)
}

// Reduced renders the canonical form with fixed points omitted; the identity
// renders as "e".
func (p Perm) Reduced() string {
	return cycles.RenderReduced(p.cycles)
}

// Key returns a string that uniquely identifies the permutation, suitable as
// a map key. Because the full canonical form lists every element of the
// ground set exactly once, the key distinguishes permutations across ground
// sizes as well.
func (p Perm) Key() string {
	return p.String()
}
