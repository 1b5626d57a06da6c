// Package permanent: sentinel errors and evaluation options.

package permanent

import (
	"errors"
	"runtime"
)

var (
	// ErrNilMatrix indicates a nil input matrix.
	ErrNilMatrix = errors.New("permanent: nil matrix")

	// ErrNonSquare signals that the input matrix is not square.
	ErrNonSquare = errors.New("permanent: matrix is not square")

	// ErrTooLarge signals that n exceeds the 63-bit subset space of the
	// enumeration counter. 2⁶³ terms are out of reach regardless; the
	// sentinel only makes the representation limit explicit.
	ErrTooLarge = errors.New("permanent: dimension exceeds subset counter width")
)

// Options configures the evaluation.
//
// Fields:
//   - Workers — number of parallel chunks the subset range is split
//     into. 1 means fully serial. For a fixed worker count results are
//     bit-reproducible; changing it may move the least-significant bits
//     of the result (floating-point addition is not associative). That
//     is an accepted non-determinism class, not a defect.
type Options struct {
	Workers int
}

// DefaultOptions returns the defaults: one worker per available CPU.
func DefaultOptions() Options {
	return Options{Workers: runtime.NumCPU()}
}
