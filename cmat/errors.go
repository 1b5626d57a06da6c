// Package cmat: sentinel error set.
// All routines MUST return these sentinels on user-triggered error
// conditions and tests MUST check them via errors.Is. If context is
// essential, wrap with fmt.Errorf("ctx: %w", ErrX) at the boundary.

package cmat

import "errors"

var (
	// ErrNilMatrix indicates that a nil matrix was passed where a value
	// was required.
	ErrNilMatrix = errors.New("cmat: nil matrix")

	// ErrNonSquare signals that a square matrix was required but the
	// input wasn't.
	ErrNonSquare = errors.New("cmat: matrix is not square")

	// ErrDimensionMismatch indicates incompatible dimensions between
	// operands (solve right-hand side, submatrix index out of range).
	ErrDimensionMismatch = errors.New("cmat: dimension mismatch")

	// ErrSingular is returned when no usable pivot remains during
	// factorization — the matrix is singular to working precision.
	ErrSingular = errors.New("cmat: singular matrix")
)
