package cycles

// Image applies a cycle description to a single element. Cycles are applied
// left to right: each cycle containing the current value advances it to the
// cyclic successor within that cycle. For a disjoint description this is the
// ordinary cycle-notation mapping; for a concatenated description it is the
// sequential composition of the listed cycles.
func Image(x int, desc [][]int) int {
	for _, cycle := range desc {
		for i, e := range cycle {
			if e == x {
				x = cycle[(i+1)%len(cycle)]
				break
			}
		}
	}
	return x
}

// Normalize computes the canonical disjoint-cycle decomposition over {1..n}
// of the mapping described by desc: every element appears in exactly one
// output cycle (fixed points as singletons), cycles are ordered by least
// element, and each cycle starts at its least element. desc must mention
// only elements of {1..n}; callers validate before normalizing. Termination
// is guaranteed: the described mapping is a bijection on a finite set, so
// tracing from any element returns to it.
func Normalize(n int, desc [][]int) [][]int {
	if n <= 0 {
		return nil
	}
	placed := make([]bool, n+1)
	out := make([][]int, 0, n)
	for start := 1; start <= n; start++ {
		if placed[start] {
			continue
		}
		orbit := []int{start}
		placed[start] = true
		for x := Image(start, desc); x != start; x = Image(x, desc) {
			orbit = append(orbit, x)
			placed[x] = true
		}
		out = append(out, orbit)
	}
	return out
}

// Lengths returns the multiset of cycle lengths as a slice, in cycle order.
func Lengths(cycles [][]int) []int {
	out := make([]int, len(cycles))
	for i, cycle := range cycles {
		out[i] = len(cycle)
	}
	return out
}

// Reverse returns a description of the inverse mapping: every cycle with its
// member order reversed. The result is not canonical; callers renormalize.
func Reverse(cycles [][]int) [][]int {
	out := make([][]int, len(cycles))
	for i, cycle := range cycles {
		rev := make([]int, len(cycle))
		for j, e := range cycle {
			rev[len(cycle)-1-j] = e
		}
		out[i] = rev
	}
	return out
}
