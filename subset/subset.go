package subset

import "math/bits"

// Gray returns the binary-reflected Gray code of x.
// Consecutive values Gray(x) and Gray(x+1) differ in exactly one bit.
// Complexity: O(1).
func Gray(x uint64) uint64 {
	return x ^ (x >> 1)
}

// FlipBit returns the index of the single bit in which Gray(x) and
// Gray(x+1) differ: the position of the lowest set bit of x+1.
// Complexity: O(1).
func FlipBit(x uint64) int {
	return bits.TrailingZeros64(x + 1)
}

// Count returns the number of set bits in mask.
// Complexity: O(1).
func Count(mask uint64) int {
	return bits.OnesCount64(mask)
}

// Indices appends to dst the indices of the set bits of mask, in
// ascending order, and returns the extended slice. Passing a
// preallocated dst[:0] avoids garbage on hot paths.
// Complexity: O(popcount).
func Indices(mask uint64, dst []int) []int {
	for m := mask; m != 0; m &= m - 1 {
		dst = append(dst, bits.TrailingZeros64(m))
	}
	return dst
}

// PairIndices appends to dst the flat indices {2i, 2i+1} for every set
// bit i of mask, in ascending order, and returns the extended slice.
// A mask over k mode-pairs thus expands to 2·popcount row/column
// indices into a 2k×2k matrix.
// Complexity: O(popcount).
func PairIndices(mask uint64, dst []int) []int {
	for m := mask; m != 0; m &= m - 1 {
		i := bits.TrailingZeros64(m)
		dst = append(dst, 2*i, 2*i+1)
	}
	return dst
}
