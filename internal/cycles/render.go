package cycles

import (
	"strconv"
	"strings"
)

// IdentitySymbol is the reduced rendering of the identity permutation.
const IdentitySymbol = "e"

// Render writes a cycle list in parenthesized notation, e.g. "(132)(4)".
// When any element needs more than one digit the members of every cycle are
// space-separated, e.g. "(1 12)(2)", keeping the notation unambiguous.
func Render(cycles [][]int) string {
	spaced := false
	for _, cycle := range cycles {
		for _, e := range cycle {
			if e > 9 {
				spaced = true
			}
		}
	}

	var b strings.Builder
	for _, cycle := range cycles {
		b.WriteByte('(')
		for i, e := range cycle {
			if spaced && i > 0 {
				b.WriteByte(' ')
			}
			b.WriteString(strconv.Itoa(e))
		}
		b.WriteByte(')')
	}
	return b.String()
}

// RenderReduced renders with singleton cycles omitted; an all-fixed-point
// permutation renders as the identity symbol.
func RenderReduced(cycles [][]int) string {
	reduced := make([][]int, 0, len(cycles))
	for _, cycle := range cycles {
		if len(cycle) > 1 {
			reduced = append(reduced, cycle)
		}
	}
	if len(reduced) == 0 {
		return IdentitySymbol
	}
	return Render(reduced)
}

// DisplayKey maps a canonical rendering to the numeric ordering key used for
// deterministic display order: non-digit bytes become '0' and leading zeros
// are stripped, leaving a decimal numeral compared by CompareKeys.
func DisplayKey(rendered string) string {
	b := []byte(rendered)
	for i, c := range b {
		if c < '0' || c > '9' {
			b[i] = '0'
		}
	}
	i := 0
	for i < len(b) && b[i] == '0' {
		i++
	}
	return string(b[i:])
}

// CompareKeys orders two DisplayKey numerals as integers: a shorter numeral
// is smaller, equal lengths compare lexicographically.
func CompareKeys(a, b string) int {
	if len(a) != len(b) {
		if len(a) < len(b) {
			return -1
		}
		return 1
	}
	return strings.Compare(a, b)
}
