// Package cycles implements cycle-notation lexing, canonical normalization,
// and rendering for permutations over a ground set {1..n}.
package cycles

import (
	"github.com/AK1089/permutation-groups/errors"
)

func isDigit(b byte) bool {
	return b >= '0' && b <= '9'
}

// Parse scans cycle notation such as "(1234)(56)" into a cycle list.
// Each cycle member is a single digit; cycles need not be disjoint or cover
// the ground set. Returns the cycles and the largest element mentioned
// (0 for empty input).
func Parse(text string) ([][]int, int, error) {
	var (
		out [][]int
		max int
	)
	i := 0
	for i < len(text) {
		if text[i] != '(' {
			if isDigit(text[i]) {
				return nil, 0, errors.NewParsef(errors.ErrSyntax, i, "element %c outside a cycle", text[i])
			}
			return nil, 0, errors.NewParsef(errors.ErrSyntax, i, "expected '(', found %q", text[i])
		}
		open := i
		i++

		var cycle []int
		var seen [10]bool
		for i < len(text) && text[i] != ')' {
			b := text[i]
			if !isDigit(b) {
				return nil, 0, errors.NewParsef(errors.ErrNotNumeric, i, "cycle member %q is not a digit", b)
			}
			if b == '0' {
				return nil, 0, errors.NewParse(errors.ErrOutOfRange, "element 0: elements are numbered from 1", i)
			}
			e := int(b - '0')
			if seen[e] {
				return nil, 0, errors.NewParsef(errors.ErrDuplicateElement, i, "element %d repeats within a cycle", e)
			}
			seen[e] = true
			cycle = append(cycle, e)
			if e > max {
				max = e
			}
			i++
		}
		if i == len(text) {
			return nil, 0, errors.NewParse(errors.ErrSyntax, "unterminated cycle", open)
		}
		i++ // ')'
		if len(cycle) == 0 {
			return nil, 0, errors.NewParse(errors.ErrSyntax, "empty cycle", open)
		}
		out = append(out, cycle)
	}
	return out, max, nil
}

// Validate checks that every element of every cycle lies in {1..n} and that
// no element repeats within a single cycle. Used for programmatic cycle
// lists, which are not limited to single-digit elements.
func Validate(n int, cycles [][]int) error {
	for _, cycle := range cycles {
		if len(cycle) == 0 {
			return errors.NewParse(errors.ErrSyntax, "empty cycle", -1)
		}
		seen := make(map[int]bool, len(cycle))
		for _, e := range cycle {
			if e < 1 {
				return errors.NewParsef(errors.ErrOutOfRange, -1, "element %d: elements are numbered from 1", e)
			}
			if e > n {
				return errors.NewParsef(errors.ErrOutOfRange, -1, "element %d exceeds ground size %d", e, n)
			}
			if seen[e] {
				return errors.NewParsef(errors.ErrDuplicateElement, -1, "element %d repeats within a cycle", e)
			}
			seen[e] = true
		}
	}
	return nil
}
