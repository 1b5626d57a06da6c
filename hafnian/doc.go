// Package hafnian computes hafnians of symmetric complex matrices — the
// sum over all perfect matchings of the product of matched-pair
// entries — plus the loop-hafnian and low-rank specializations used for
// photon-number statistics of Gaussian states.
//
// 🚀 How?
//
//	The trace-power recursion (Cygan–Pilipczuk): for every subset of the
//	m mode-pairs of a 2m×2m matrix, form the pair submatrix B, take the
//	traces of B¹..Bᵐ, and fold them through a Newton's-identity-style
//	recurrence relating power sums to the elementary symmetric
//	polynomial that weights the matchings, with a parity sign per
//	subset. No permutations and no eigendecomposition: the traces come
//	from iterated matrix products.
//
// ✨ Engines:
//   - Hafnian(a, opts): plain hafnian, or the loop hafnian when
//     opts.Loop is set — the diagonal then contributes self-loop terms,
//     the surviving displacement of a Gaussian state. A zero diagonal
//     reproduces the plain hafnian exactly.
//   - LowRankHafnian(g): hafnian of A = G·Gᵗ given only the n×r factor
//     G, never materializing A. Exponential only in r, polynomial in n.
//
// ⚠️ Contract: the hafnian is defined on symmetric matrices. Symmetry
// is NOT re-validated on the fast path; callers own it, and asymmetric
// input yields silently wrong results.
//
// Edge cases: odd dimension returns exact 0 — a well-defined terminal
// value, not an error (no perfect matching exists); the 0×0 hafnian
// is 1.
//
// Performance: O(m³·2ᵐ) subset work dominated by the trace products —
// O(m⁴·2ᵐ) worst case with full-size submatrices, typically far less
// since a subset of p pairs costs O(m·(2p)³). Memory is O(m²) per
// worker. Cost is exponential by nature; no caps, no truncation.
package hafnian
