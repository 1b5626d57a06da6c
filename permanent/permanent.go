package permanent

import (
	"fmt"
	"math/bits"

	"golang.org/x/sync/errgroup"
	"gonum.org/v1/gonum/mat"

	"github.com/photonq/hafnia/cmat"
	"github.com/photonq/hafnia/subset"
)

// Permanent returns the permanent of the square complex matrix a via
// Ryser's formula over Gray-ordered column subsets. A nil opts means
// DefaultOptions. The input is never modified.
//
// Blueprint:
//
//	Stage 1 (Validate): a non-nil, square, n ≤ 63.
//	Stage 2 (Flatten): copy a into a row-major scratch slice.
//	Stage 3 (Reduce): walk the 2ⁿ−1 nonempty subsets in Gray order,
//	        one contiguous chunk per worker, compensated partial sums.
//	Stage 4 (Finalize): combine partials in chunk order, apply (−1)ⁿ.
//
// Errors: ErrNilMatrix, ErrNonSquare, ErrTooLarge.
// Complexity: O(n·2ⁿ) time, O(n) memory per worker.
func Permanent(a *mat.CDense, opts *Options) (complex128, error) {
	// Stage 1: Validate input shape
	if a == nil {
		return 0, fmt.Errorf("Permanent: %w", ErrNilMatrix)
	}
	r, c := a.Dims()
	if r != c {
		return 0, fmt.Errorf("Permanent: non-square %dx%d: %w", r, c, ErrNonSquare)
	}
	n := r
	if n == 0 {
		return 1, nil // empty product convention
	}
	if n > 63 {
		return 0, fmt.Errorf("Permanent: n=%d: %w", n, ErrTooLarge)
	}
	o := DefaultOptions()
	if opts != nil {
		o = *opts
	}

	// Stage 2: Flatten into a row-major scratch slice
	flat := make([]complex128, n*n)
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			flat[i*n+j] = a.At(i, j)
		}
	}

	// Stage 3: Parallel reduction over the nonempty subset counters.
	// Counter x ∈ [1, 2ⁿ) maps to column subset Gray(x); Gray is a
	// bijection with Gray(0)=0, so the nonempty subsets are covered
	// exactly once.
	total := (uint64(1) << uint(n)) - 1
	ranges := subset.Partition(total, o.Workers)
	partials := make([]cmat.Accumulator, len(ranges))

	var g errgroup.Group
	for w := range ranges {
		rg := ranges[w]
		w := w
		g.Go(func() error {
			partials[w] = ryserChunk(flat, n, rg.Lo+1, rg.Hi+1)
			return nil
		})
	}
	_ = g.Wait() // workers cannot fail; errgroup provides the join

	// Stage 4: Deterministic combine in chunk order, then (−1)ⁿ
	var acc cmat.Accumulator
	for w := range partials {
		acc.Combine(partials[w])
	}
	sum := acc.Sum()
	if n%2 == 1 {
		sum = -sum
	}
	return sum, nil
}

// ryserChunk accumulates the Ryser terms for counters x ∈ [lo, hi).
// Row sums are seeded from the chunk's first subset in O(n²), then
// maintained incrementally: each Gray step flips one column in or out.
func ryserChunk(flat []complex128, n int, lo, hi uint64) cmat.Accumulator {
	var (
		acc  cmat.Accumulator
		rows = make([]complex128, n) // rows[i] = Σ_{j∈S} a[i][j]
		mask = subset.Gray(lo)       // current column subset
	)
	// seed the row sums for the chunk's first subset
	for m := mask; m != 0; m &= m - 1 {
		j := bits.TrailingZeros64(m)
		for i := 0; i < n; i++ {
			rows[i] += flat[i*n+j]
		}
	}

	for x := lo; x < hi; x++ {
		// term: ±∏ᵢ rows[i], sign by subset parity
		prod := complex128(1)
		for i := 0; i < n; i++ {
			prod *= rows[i]
		}
		if subset.Count(mask)%2 == 1 {
			prod = -prod
		}
		acc.Add(prod)

		// advance to Gray(x+1): exactly one column flips
		if x+1 < hi {
			j := subset.FlipBit(x)
			bit := uint64(1) << uint(j)
			if mask&bit == 0 {
				for i := 0; i < n; i++ {
					rows[i] += flat[i*n+j]
				}
			} else {
				for i := 0; i < n; i++ {
					rows[i] -= flat[i*n+j]
				}
			}
			mask ^= bit
		}
	}
	return acc
}
