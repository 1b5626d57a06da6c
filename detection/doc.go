// Package detection is the dispatch layer between Gaussian-state
// parameters and the combinatorial engines: it turns (mean vector,
// covariance matrix, detection pattern) into a probability, routing to
// the loop hafnian for photon-number-resolving detectors and to
// torontonian-style inclusion–exclusion for threshold detectors.
//
// 🚀 Conventions
//
//	Quadrature (xxpp) ordering with ħ = 2: a k-mode state is a real
//	mean vector of length 2k and a real symmetric 2k×2k covariance
//	matrix, vacuum covariance = identity. The complex side (Husimi
//	covariance Q, pair matrix A = X·(I − Q⁻¹), displacement vector β)
//	is derived internally.
//
// ✨ Entry points:
//   - ThresholdDetectionProb(mu, cov, pattern): click/no-click pattern
//     of 0s and 1s, one per mode. Inclusion–exclusion over the click
//     modes of marginal vacuum overlaps, each evaluated by a Cholesky
//     factorization of the positive-definite block (Σ_M + I)/2.
//   - Probability(mu, cov, pattern): photon-number pattern, one count
//     per mode. A mode requested with count c contributes c repeated
//     rows and columns of A (and entries of the loop vector γ), the
//     loop hafnian of the reduction is taken, and the physical
//     normalization exp(−½ β̄ᵀQ⁻¹β)/(√det Q · ∏ nᵢ!) is applied — the
//     normalization is part of the contract, not the caller's burden.
//
// Pattern length must equal the mode count; mismatches and invalid
// entries fail fast with sentinels. Probabilities are exponentially
// expensive in the number of clicked/occupied modes — vacuum terms are
// cheap, dense patterns are not.
package detection
