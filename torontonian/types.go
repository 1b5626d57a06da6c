// Package torontonian: sentinel errors and evaluation options.

package torontonian

import (
	"errors"
	"runtime"
)

var (
	// ErrNilMatrix indicates a nil input operator.
	ErrNilMatrix = errors.New("torontonian: nil matrix")

	// ErrNonSquare signals that the input operator is not square.
	ErrNonSquare = errors.New("torontonian: matrix is not square")

	// ErrOddDimension signals an odd operator size: the torontonian is
	// defined over k modes occupying 2k rows and columns, so an odd
	// dimension has no mode structure to sum over.
	ErrOddDimension = errors.New("torontonian: operator dimension is odd")

	// ErrTooLarge signals that the mode count exceeds the 63-bit subset
	// counter. 2⁶³ subsets are out of reach regardless; the sentinel
	// only makes the representation limit explicit.
	ErrTooLarge = errors.New("torontonian: mode count exceeds subset counter width")
)

// Options configures the evaluation.
//
// Fields:
//   - Workers — number of parallel chunks the subset range is split
//     into. 1 means fully serial. A fixed worker count is
//     bit-reproducible; changing it may move the least-significant
//     bits (floating-point addition is not associative). Accepted
//     non-determinism, not a defect.
type Options struct {
	Workers int
}

// DefaultOptions returns the defaults: one worker per available CPU.
func DefaultOptions() Options {
	return Options{Workers: runtime.NumCPU()}
}
