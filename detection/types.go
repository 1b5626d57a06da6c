package detection

import "errors"

// Sentinel errors for input validation. Match with errors.Is.
var (
	// ErrNilCovariance is returned when the covariance matrix is nil.
	ErrNilCovariance = errors.New("detection: covariance matrix must not be nil")
	// ErrOddDimension is returned when the covariance dimension is odd:
	// a k-mode quadrature covariance is 2k×2k.
	ErrOddDimension = errors.New("detection: covariance dimension must be even")
	// ErrDimensionMismatch is returned when the mean vector or the
	// detection pattern does not match the covariance dimension.
	ErrDimensionMismatch = errors.New("detection: mean/pattern length does not match covariance")
	// ErrPatternValue is returned for pattern entries outside the
	// detector's range: {0,1} for threshold, non-negative for PNR.
	ErrPatternValue = errors.New("detection: invalid pattern entry")
	// ErrNotPositiveDefinite is returned when a quantity that must be
	// positive definite for a physical Gaussian state is not.
	ErrNotPositiveDefinite = errors.New("detection: covariance block is not positive definite")
	// ErrTooLarge is returned when a threshold pattern has more than 63
	// click modes; the inclusion–exclusion index would overflow uint64.
	ErrTooLarge = errors.New("detection: too many click modes (limit 63)")
)
