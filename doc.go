// Package hafnia evaluates the exponential-complexity matrix functions
// behind Gaussian boson sampling — exact photon-detection probabilities
// from the algebraic description of a Gaussian bosonic state.
//
// 🚀 What is hafnia?
//
//	A pure-Go library of exact combinatorial matrix evaluators:
//		• Permanent: Ryser/Gray inclusion–exclusion over column subsets
//		• Hafnian: trace-power recursion over perfect matchings
//		• Loop hafnian: self-loop (diagonal) extension for displaced states
//		• Low-rank hafnian: GGᵗ factorized inputs, exponential only in rank
//		• Torontonian: threshold (click/no-click) detector statistics
//		• Detection dispatch: (mean, covariance, pattern) → probability
//
// ✨ Why choose hafnia?
//
//   - Exact — no Monte-Carlo estimation, no truncation, no iteration caps
//   - Deterministic — fixed reduction order; same worker count, same bits
//   - Pure functions — no shared state, no I/O, per-call scratch buffers
//   - Parallel — opt-in chunked subset reduction via worker pools
//
// Everything is organized under six subpackages:
//
//	subset/      — Gray-code bitmask enumeration & range partitioning
//	cmat/        — complex dense LU, determinants, compensated summation
//	permanent/   — permanent engine
//	hafnian/     — hafnian, loop hafnian and low-rank hafnian engines
//	torontonian/ — torontonian engine
//	detection/   — detection-probability dispatch over Gaussian states
//
// All engines cost exponential time in the matrix size — O(n·2ⁿ) for the
// permanent, O(m³·2ᵐ)-class for the hafnian family and torontonian. That
// is intrinsic to the functions, not an implementation limit: graceful
// degradation is "runs a long time", never silent truncation.
//
//	go get github.com/photonq/hafnia
package hafnia
