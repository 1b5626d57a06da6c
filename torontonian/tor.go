package torontonian

import (
	"fmt"
	"math/cmplx"

	"golang.org/x/sync/errgroup"
	"gonum.org/v1/gonum/mat"

	"github.com/photonq/hafnia/cmat"
	"github.com/photonq/hafnia/subset"
)

// Tor returns the torontonian of the 2k×2k complex operator o. A nil
// opts means DefaultOptions. The input is never modified.
//
// Blueprint:
//
//	Stage 1 (Validate): o non-nil, square, even, k ≤ 63.
//	Stage 2 (Flatten): copy o into a row-major scratch slice.
//	Stage 3 (Reduce): for every mode subset S build I − O_S, factor it
//	        (LU), and add (−1)^(k−|S|)/√det with the principal branch;
//	        one contiguous counter chunk per worker.
//	Stage 4 (Finalize): combine partials in chunk order.
//
// The 0×0 operator returns 1 (the bare empty-subset term); the all-zero
// operator returns exact 0 — every term is ±1 and the binomial signs
// cancel, which integer-valued floating-point addition preserves.
//
// Errors: ErrNilMatrix, ErrNonSquare, ErrOddDimension, ErrTooLarge.
// Complexity: O(k³·2ᵏ) time, O(k²) memory per worker.
func Tor(o *mat.CDense, opts *Options) (complex128, error) {
	// Stage 1: Validate operator shape
	if o == nil {
		return 0, fmt.Errorf("Tor: %w", ErrNilMatrix)
	}
	r, c := o.Dims()
	if r != c {
		return 0, fmt.Errorf("Tor: non-square %dx%d: %w", r, c, ErrNonSquare)
	}
	if r%2 == 1 {
		return 0, fmt.Errorf("Tor: dimension %d: %w", r, ErrOddDimension)
	}
	k := r / 2
	if k == 0 {
		return 1, nil
	}
	if k > 63 {
		return 0, fmt.Errorf("Tor: k=%d modes: %w", k, ErrTooLarge)
	}
	opt := DefaultOptions()
	if opts != nil {
		opt = *opts
	}

	// Stage 2: Flatten into a row-major scratch slice
	n := 2 * k
	flat := make([]complex128, n*n)
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			flat[i*n+j] = o.At(i, j)
		}
	}

	// Stage 3: Parallel reduction over the 2ᵏ mode subsets
	total := uint64(1) << uint(k)
	ranges := subset.Partition(total, opt.Workers)
	partials := make([]cmat.Accumulator, len(ranges))

	var g errgroup.Group
	for w := range ranges {
		rg := ranges[w]
		w := w
		g.Go(func() error {
			partials[w] = torChunk(flat, k, rg.Lo, rg.Hi)
			return nil
		})
	}
	_ = g.Wait() // workers cannot fail; errgroup provides the join

	// Stage 4: Deterministic combine in chunk order
	var acc cmat.Accumulator
	for w := range partials {
		acc.Combine(partials[w])
	}
	return acc.Sum(), nil
}

// torChunk accumulates the inclusion–exclusion terms for mode-subset
// counters x ∈ [lo, hi). Mode i of the 2k×2k operator occupies rows and
// columns i and i+k, so a subset of s modes selects a 2s×2s principal
// block.
func torChunk(flat []complex128, k int, lo, hi uint64) cmat.Accumulator {
	var (
		n   = 2 * k
		acc cmat.Accumulator
		idx = make([]int, 0, n)
		lu  cmat.LU
	)
	for x := lo; x < hi; x++ {
		// expand the mode mask into operator indices {i} ∪ {i+k}
		idx = subset.Indices(x, idx[:0])
		s := len(idx)
		for i := 0; i < s; i++ {
			idx = append(idx, idx[i]+k)
		}

		// sign (−1)^(k−s); the empty subset term is just that sign
		sign := 1.0
		if (k-s)%2 == 1 {
			sign = -1.0
		}
		if s == 0 {
			acc.Add(complex(sign, 0))
			continue
		}

		// build I − O_S and take the principal root of its determinant
		d := len(idx)
		sub := mat.NewCDense(d, d, nil)
		for i := 0; i < d; i++ {
			for j := 0; j < d; j++ {
				v := -flat[idx[i]*n+idx[j]]
				if i == j {
					v++
				}
				sub.Set(i, j, v)
			}
		}
		if err := lu.Factorize(sub); err != nil {
			continue // unreachable: sub is square by construction
		}
		// principal branch, uniformly across all terms — the
		// inclusion–exclusion cancellation depends on it
		acc.Add(complex(sign, 0) / cmplx.Sqrt(lu.Det()))
	}
	return acc
}
