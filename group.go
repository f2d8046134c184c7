package permutations

import (
	"runtime"
	"slices"
	"sync"
)

// GenerateOption configures group generation.
type GenerateOption interface{ apply(*generateOptions) }

type generateOptions struct {
	workers int
}

type generateOptionFunc func(*generateOptions)

func (f generateOptionFunc) apply(cfg *generateOptions) {
	if cfg == nil {
		return
	}
	f(cfg)
}

// WithParallelism sets the number of worker goroutines used to compute each
// pass of pairwise products. n <= 0 selects GOMAXPROCS. The result is
// identical to the serial computation: products are collected in pair order
// and the closure fixed point does not depend on discovery order.
func WithParallelism(n int) GenerateOption {
	return generateOptionFunc(func(cfg *generateOptions) {
		cfg.workers = n
	})
}

// Generate computes the subgroup generated by the given permutations:
// the smallest set containing them that is closed under multiplication.
//
// Starting from the (deduplicated) generators, every ordered pair of known
// elements is multiplied and any products not seen before are added; passes
// repeat until one finds nothing new. Termination follows from the finiteness
// of the ambient symmetric group. Each pass costs O(k²) multiplications for k
// known elements, which is the intended trade-off for small ground sets.
//
// Generators normally share a ground size; mixed sizes are not rejected, but
// products are promoted to the larger ground size, so the result then mixes
// elements of different symmetric groups.
//
// The result is sorted by [Perm.Compare]. An empty generator list yields nil.
func Generate(generators []Perm, opts ...GenerateOption) []Perm {
	cfg := generateOptions{workers: 1}
	for _, opt := range opts {
		opt.apply(&cfg)
	}
	if cfg.workers <= 0 {
		cfg.workers = runtime.GOMAXPROCS(0)
	}
	if len(generators) == 0 {
		return nil
	}

	seen := make(map[string]struct{}, len(generators))
	group := make([]Perm, 0, len(generators))
	for _, g := range generators {
		key := g.Key()
		if _, ok := seen[key]; ok {
			continue
		}
		seen[key] = struct{}{}
		group = append(group, g)
	}

	for {
		products := pairwiseProducts(group, cfg.workers)

		added := 0
		for _, product := range products {
			key := product.Key()
			if _, ok := seen[key]; ok {
				continue
			}
			seen[key] = struct{}{}
			group = append(group, product)
			added++
		}
		if added == 0 {
			break
		}
	}

	slices.SortFunc(group, Perm.Compare)
	return group
}

// pairwiseProducts returns group[i].Mul(group[j]) for every ordered pair
// (i, j), in pair order. With more than one worker the index space is split
// into contiguous row ranges; each worker writes only its own slots, so the
// result is independent of scheduling.
func pairwiseProducts(group []Perm, workers int) []Perm {
	k := len(group)
	products := make([]Perm, k*k)

	fill := func(lo, hi int) {
		for i := lo; i < hi; i++ {
			for j := 0; j < k; j++ {
				products[i*k+j] = group[i].Mul(group[j])
			}
		}
	}

	if workers <= 1 || k < workers {
		fill(0, k)
		return products
	}

	var wg sync.WaitGroup
	rows := (k + workers - 1) / workers
	for lo := 0; lo < k; lo += rows {
		hi := min(lo+rows, k)
		wg.Add(1)
		go func() {
			defer wg.Done()
			fill(lo, hi)
		}()
	}
	wg.Wait()
	return products
}
