package hafnian

import (
	"fmt"

	"golang.org/x/sync/errgroup"
	"gonum.org/v1/gonum/mat"

	"github.com/photonq/hafnia/cmat"
	"github.com/photonq/hafnia/subset"
)

// Hafnian returns the hafnian of the symmetric 2m×2m complex matrix a,
// or the loop hafnian when opts.Loop is set. A nil opts means
// DefaultOptions. The input is never modified and symmetry is the
// caller's contract (see the package doc).
//
// Blueprint:
//
//	Stage 1 (Validate): a non-nil and square; odd dimension → exact 0.
//	Stage 2 (Flatten): copy a into a row-major scratch slice; for the
//	        loop variant, extract the diagonal D and its pair-swapped
//	        companion C.
//	Stage 3 (Reduce): for every subset of the m mode-pairs, build the
//	        pair submatrix, take trace powers, fold through the
//	        symmetric-polynomial recurrence with a parity sign; one
//	        contiguous counter chunk per worker.
//	Stage 4 (Finalize): combine partials in chunk order.
//
// Errors: ErrNilMatrix, ErrNonSquare, ErrTooLarge.
// Complexity: O(m³·2ᵐ)-class time (O(m⁴·2ᵐ) worst case, see package
// doc), O(m²) memory per worker.
func Hafnian(a *mat.CDense, opts *Options) (complex128, error) {
	// Stage 1: Validate input shape
	if a == nil {
		return 0, fmt.Errorf("Hafnian: %w", ErrNilMatrix)
	}
	r, c := a.Dims()
	if r != c {
		return 0, fmt.Errorf("Hafnian: non-square %dx%d: %w", r, c, ErrNonSquare)
	}
	n := r
	if n == 0 {
		return 1, nil // empty matching convention
	}
	if n%2 == 1 {
		return 0, nil // no perfect matching exists; documented terminal value
	}
	m := n / 2
	if m > 63 {
		return 0, fmt.Errorf("Hafnian: m=%d pairs: %w", m, ErrTooLarge)
	}
	o := DefaultOptions()
	if opts != nil {
		o = *opts
	}

	// Stage 2: Flatten; extract loop vectors if requested
	flat := make([]complex128, n*n)
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			flat[i*n+j] = a.At(i, j)
		}
	}
	var loopC, loopD []complex128
	if o.Loop {
		loopD = make([]complex128, n)
		loopC = make([]complex128, n)
		for i := 0; i < n; i++ {
			loopD[i] = a.At(i, i)
		}
		// C is D with each pair swapped: the matching partner's loop weight
		for i := 0; i < n; i += 2 {
			loopC[i] = loopD[i+1]
			loopC[i+1] = loopD[i]
		}
	}

	// Stage 3: Parallel reduction over the 2ᵐ pair subsets
	total := uint64(1) << uint(m)
	ranges := subset.Partition(total, o.Workers)
	partials := make([]cmat.Accumulator, len(ranges))

	var g errgroup.Group
	for w := range ranges {
		rg := ranges[w]
		w := w
		g.Go(func() error {
			partials[w] = traceChunk(flat, n, loopC, loopD, rg.Lo, rg.Hi)
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
