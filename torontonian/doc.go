// Package torontonian computes the torontonian — the inclusion–
// exclusion sum that turns a Gaussian state's covariance-derived
// operator into threshold (click / no-click) detection statistics,
// the counterpart of the hafnian for detectors that cannot resolve
// photon number.
//
// 🚀 Definition
//
//	For an operator O of size 2k×2k over k modes (mode i occupies rows
//	and columns i and i+k):
//
//	  tor(O) = Σ_{S⊆{1..k}} (−1)^(k−|S|) / √det(I − O_S)
//
//	where O_S is the principal submatrix on the rows/columns of the
//	modes in S. The empty subset contributes (−1)ᵏ; the all-zero
//	operator (vacuum) sums to exact 0.
//
// ⚠️ Branch consistency: every term's square root is taken with the
// principal branch, uniformly. Ad hoc per-term branch choices break the
// inclusion–exclusion cancellation — this is a correctness-sensitive
// point with explicit test coverage, not an implementation detail.
//
// Each subset term factors I − O_S fresh (LU, O(s³)). Rank-one
// determinant updates under single-bit subset steps were considered and
// rejected: a Gray step changes the submatrix dimension, so there is no
// fixed factorization to update — the trade-off the hafnian's trace
// recursion avoids by construction.
//
// Performance: O(k³·2ᵏ) time, O(k²) memory per worker. Exponential by
// nature; no caps, no truncation.
package torontonian
