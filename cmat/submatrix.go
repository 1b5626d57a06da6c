package cmat

import (
	"fmt"

	"gonum.org/v1/gonum/mat"
)

// Principal returns the principal submatrix a[idx, idx]: rows and
// columns restricted to the given index list, in the given order.
// Indices may repeat (repeated-mode reductions rely on this).
// An empty index list yields nil; Det and Factorize reject nil input
// (ErrNilMatrix), so callers that can see an empty selection must
// special-case it — the 0×0 matrix is &mat.CDense{}, not nil.
// Returns ErrDimensionMismatch if any index is out of range.
// Complexity: O(s²) for s = len(idx).
func Principal(a *mat.CDense, idx []int) (*mat.CDense, error) {
	if a == nil {
		return nil, fmt.Errorf("Principal: %w", ErrNilMatrix)
	}
	r, c := a.Dims()
	if r != c {
		return nil, fmt.Errorf("Principal: non-square %dx%d: %w", r, c, ErrNonSquare)
	}
	for _, i := range idx {
		if i < 0 || i >= r {
			return nil, fmt.Errorf("Principal: index %d outside %dx%d: %w", i, r, c, ErrDimensionMismatch)
		}
	}
	s := len(idx)
	if s == 0 {
		return nil, nil
	}
	out := mat.NewCDense(s, s, nil)
	for i := 0; i < s; i++ {
		for j := 0; j < s; j++ {
			out.Set(i, j, a.At(idx[i], idx[j]))
		}
	}
	return out, nil
}

// MulVec returns a·x for a square complex matrix and a vector.
// Returns ErrDimensionMismatch if len(x) differs from the dimension.
// Complexity: O(n²).
func MulVec(a *mat.CDense, x []complex128) ([]complex128, error) {
	if a == nil {
		return nil, fmt.Errorf("MulVec: %w", ErrNilMatrix)
	}
	r, c := a.Dims()
	if c != len(x) {
		return nil, fmt.Errorf("MulVec: vector length %d, want %d: %w", len(x), c, ErrDimensionMismatch)
	}
	out := make([]complex128, r)
	for i := 0; i < r; i++ {
		var sum complex128
		for j := 0; j < c; j++ {
			sum += a.At(i, j) * x[j]
		}
		out[i] = sum
	}
	return out, nil
}
