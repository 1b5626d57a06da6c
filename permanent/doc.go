// Package permanent computes the permanent of a square complex matrix —
// the sum over all n! permutations σ of ∏ᵢ A[i, σ(i)].
//
// 🚀 How?
//
//	Ryser's inclusion–exclusion identity over the 2ⁿ⁻¹ nonempty column
//	subsets, walked in binary-reflected Gray order so each step flips a
//	single column in or out of the running row sums:
//
//	  perm(A) = (−1)ⁿ · Σ_{S≠∅} (−1)^|S| · ∏ᵢ Σ_{j∈S} A[i,j]
//
//	Per subset the update is O(n) instead of O(n²), for O(n·2ⁿ) total
//	time and O(n) extra space. Terms are folded through a compensated
//	accumulator; parallel runs partition the subset range into
//	contiguous chunks, each seeding its own row sums.
//
// ✨ Edge cases:
//   - n = 0 returns 1 (empty product) by convention.
//   - Non-square input fails fast with ErrNonSquare.
//   - Real matrices are the zero-imaginary-part specialization of the
//     complex input; no separate real path exists.
//
// ⚙️ Usage:
//
//	p, err := permanent.Permanent(a, nil) // nil opts → DefaultOptions
//
// Performance: O(n·2ⁿ) time, O(n) memory per worker. Cost is
// exponential in n by nature; there is no cap and no truncation.
package permanent
