package cmat

import (
	"fmt"
	"math/cmplx"

	"gonum.org/v1/gonum/mat"
)

// LU holds an in-place LU factorization P·A = L·U of a square complex
// matrix, with partial (row) pivoting. L is unit lower triangular, U is
// upper triangular; both are packed into lu. The zero value is unusable
// until Factorize succeeds.
type LU struct {
	lu   *mat.CDense // packed L (strict lower) and U (upper incl. diagonal)
	piv  []int       // pivot row chosen at each elimination step
	sign int         // +1 or -1: parity of the row swaps, det(P)
	n    int         // dimension
	ok   bool        // Factorize completed
}

// Factorize computes the pivoted factorization of a. It does not retain
// or modify a. A matrix that is exactly singular still factorizes (a
// zero pivot column is skipped); Det then reports exact zero, while
// SolveVec and Inverse return ErrSingular.
//
// Blueprint:
//
//	Stage 1 (Validate): a non-nil and square.
//	Stage 2 (Copy): clone a into the working buffer.
//	Stage 3 (Eliminate): for each column, pick the largest-magnitude
//	        pivot, swap rows, scale and subtract.
//
// Complexity: O(n³) time, O(n²) memory.
func (f *LU) Factorize(a *mat.CDense) error {
	// Stage 1: Validate input shape
	if a == nil {
		return fmt.Errorf("Factorize: %w", ErrNilMatrix)
	}
	r, c := a.Dims()
	if r != c {
		return fmt.Errorf("Factorize: non-square %dx%d: %w", r, c, ErrNonSquare)
	}

	// Stage 2: Copy a into the working buffer
	n := r
	f.n = n
	f.sign = 1
	f.ok = true
	if n == 0 {
		// empty matrix: det is the empty product, nothing to eliminate
		f.lu = nil
		f.piv = nil
		return nil
	}
	f.piv = make([]int, n)
	f.lu = mat.NewCDense(n, n, nil)
	f.lu.Copy(a)

	// Stage 3: Eliminate column by column with partial pivoting
	var (
		k, i, j int        // loop indices
		p       int        // pivot row for the current column
		best    float64    // largest pivot magnitude seen
		pivot   complex128 // pivot value
		factor  complex128 // multiplier stored into L
	)
	for k = 0; k < n; k++ {
		// pick the row with the largest |lu[i][k]|, i >= k
		p, best = k, cmplx.Abs(f.lu.At(k, k))
		for i = k + 1; i < n; i++ {
			if m := cmplx.Abs(f.lu.At(i, k)); m > best {
				p, best = i, m
			}
		}
		f.piv[k] = p
		if p != k {
			swapRows(f.lu, p, k)
			f.sign = -f.sign
		}
		pivot = f.lu.At(k, k)
		if pivot == 0 {
			continue // singular column; Det()==0, solves will refuse
		}
		for i = k + 1; i < n; i++ {
			factor = f.lu.At(i, k) / pivot
			f.lu.Set(i, k, factor)
			if factor == 0 {
				continue
			}
			for j = k + 1; j < n; j++ {
				f.lu.Set(i, j, f.lu.At(i, j)-factor*f.lu.At(k, j))
			}
		}
	}
	return nil
}

// Det returns det(A) = det(P)·∏ U[k][k]. The 0×0 factorization has
// determinant 1 (empty product). Calling Det before a successful
// Factorize returns 0.
// Complexity: O(n).
func (f *LU) Det() complex128 {
	if !f.ok {
		return 0
	}
	if f.n == 0 {
		return 1
	}
	d := complex(float64(f.sign), 0)
	for k := 0; k < f.n; k++ {
		d *= f.lu.At(k, k)
	}
	return d
}

// SolveVec solves A·x = b and returns x. The right-hand side is not
// modified. Returns ErrSingular if a zero pivot was recorded and
// ErrDimensionMismatch if len(b) != n.
// Complexity: O(n²).
func (f *LU) SolveVec(b []complex128) ([]complex128, error) {
	if !f.ok {
		return nil, fmt.Errorf("SolveVec: %w", ErrNilMatrix)
	}
	if len(b) != f.n {
		return nil, fmt.Errorf("SolveVec: rhs length %d, want %d: %w", len(b), f.n, ErrDimensionMismatch)
	}
	var (
		n   = f.n
		x   = make([]complex128, n)
		sum complex128
		i, k int
	)
	copy(x, b)
	// apply the recorded row swaps to the right-hand side
	for k = 0; k < n; k++ {
		if p := f.piv[k]; p != k {
			x[k], x[p] = x[p], x[k]
		}
	}
	// forward substitution: L·y = P·b (unit diagonal)
	for i = 1; i < n; i++ {
		sum = 0
		for k = 0; k < i; k++ {
			sum += f.lu.At(i, k) * x[k]
		}
		x[i] -= sum
	}
	// backward substitution: U·x = y
	for i = n - 1; i >= 0; i-- {
		sum = 0
		for k = i + 1; k < n; k++ {
			sum += f.lu.At(i, k) * x[k]
		}
		pivot := f.lu.At(i, i)
		if pivot == 0 {
			return nil, fmt.Errorf("SolveVec: zero pivot at %d: %w", i, ErrSingular)
		}
		x[i] = (x[i] - sum) / pivot
	}
	return x, nil
}

// Inverse assembles A⁻¹ column by column from SolveVec against the
// identity basis. Returns ErrSingular for singular factorizations.
// Complexity: O(n³) time, O(n²) memory.
func (f *LU) Inverse() (*mat.CDense, error) {
	if !f.ok || f.n == 0 {
		return nil, fmt.Errorf("Inverse: %w", ErrNilMatrix)
	}
	var (
		n   = f.n
		inv = mat.NewCDense(n, n, nil)
		e   = make([]complex128, n)
	)
	for col := 0; col < n; col++ {
		for i := range e {
			e[i] = 0
		}
		e[col] = 1
		x, err := f.SolveVec(e)
		if err != nil {
			return nil, fmt.Errorf("Inverse: %w", err)
		}
		for i := 0; i < n; i++ {
			inv.Set(i, col, x[i])
		}
	}
	return inv, nil
}

// Det is the one-shot convenience: factorize a and return its
// determinant. The empty 0×0 matrix has determinant 1 (empty product).
func Det(a *mat.CDense) (complex128, error) {
	var f LU
	if err := f.Factorize(a); err != nil {
		return 0, err
	}
	return f.Det(), nil
}

// swapRows exchanges rows i and j of m in place.
func swapRows(m *mat.CDense, i, j int) {
	_, c := m.Dims()
	for k := 0; k < c; k++ {
		vi, vj := m.At(i, k), m.At(j, k)
		m.Set(i, k, vj)
		m.Set(j, k, vi)
	}
}
