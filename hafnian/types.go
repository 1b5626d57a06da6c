// Package hafnian: sentinel errors and evaluation options.

package hafnian

import (
	"errors"
	"runtime"
)

var (
	// ErrNilMatrix indicates a nil input matrix.
	ErrNilMatrix = errors.New("hafnian: nil matrix")

	// ErrNonSquare signals that the input matrix is not square.
	ErrNonSquare = errors.New("hafnian: matrix is not square")

	// ErrTooLarge signals that the number of mode-pairs exceeds the
	// 63-bit subset counter. 2⁶³ subsets are out of reach regardless;
	// the sentinel only makes the representation limit explicit.
	ErrTooLarge = errors.New("hafnian: mode-pair count exceeds subset counter width")

	// ErrRankExceedsRows is returned by LowRankHafnian when the factor
	// has more columns than rows — GGᵗ is then not a low-rank product.
	ErrRankExceedsRows = errors.New("hafnian: factor rank exceeds row count")

	// ErrRankTooLarge is returned by LowRankHafnian when the rank
	// exceeds the packed-exponent table width (rank ≤ 8, n < 256).
	// Beyond that the low-rank method has no advantage anyway.
	ErrRankTooLarge = errors.New("hafnian: factor rank exceeds exponent packing width")
)

// Options configures the evaluation.
//
// Fields:
//   - Loop    — include self-loop (diagonal) contributions: compute the
//     loop hafnian instead of the plain hafnian.
//   - Workers — number of parallel chunks the subset range is split
//     into. 1 means fully serial. A fixed worker count is
//     bit-reproducible; changing it may move the least-significant bits
//     (floating-point addition is not associative). Accepted
//     non-determinism, not a defect.
type Options struct {
	Loop    bool
	Workers int
}

// DefaultOptions returns the defaults: plain hafnian, one worker per
// available CPU.
func DefaultOptions() Options {
	return Options{Loop: false, Workers: runtime.NumCPU()}
}
