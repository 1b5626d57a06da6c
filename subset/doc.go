// Package subset provides bitmask subset enumeration for the
// combinatorial engines: binary-reflected Gray codes, pair-index
// expansion, and deterministic partitioning of a subset range into
// worker chunks.
//
// 🚀 Why bitmasks?
//
//	Every engine in this module sums over all 2ᵏ subsets of some index
//	set (columns for the permanent, mode-pairs for the hafnian and the
//	torontonian). Subsets are plain uint64 masks — an arena of integers
//	rather than a recursion tree — so the enumeration state is a single
//	counter and the per-step delta is one flipped bit.
//
// ✨ Key pieces:
//   - Gray(x): the binary-reflected Gray code of x. Consecutive codes
//     differ in exactly one bit, which lets callers update running
//     accumulators incrementally instead of recomputing from scratch.
//   - FlipBit(x): which bit changes between Gray(x) and Gray(x+1).
//   - PairIndices(mask): expand a mask over k pairs into the flat
//     2·popcount row/column indices {2i, 2i+1}.
//   - Partition(total, chunks): contiguous, deterministic subranges for
//     data-parallel reduction. The chunk boundaries depend only on the
//     inputs, so a fixed worker count reproduces bit-identical sums.
//
// Complexity: all helpers are O(1) or O(k) with k ≤ 64; no allocation
// except PairIndices' result slice.
package subset
